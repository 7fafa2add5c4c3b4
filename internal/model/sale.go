package model

// Sale records a completed sale of a product to a customer by an employee
type Sale struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	CustomerID uint `json:"customer_id" gorm:"index;not null"`
	ProductID  uint `json:"product_id" gorm:"index;not null"`
	EmployeeID uint `json:"employee_id" gorm:"index;not null"`
	SaleDate   Date `json:"sale_date" gorm:"not null"`
	Quantity   int  `json:"quantity" gorm:"not null"`
}
