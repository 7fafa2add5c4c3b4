package model

// Product represents a vehicle in stock. Branch and supplier assignments
// are optional: a NULL foreign key means unassigned, not an error.
type Product struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Brand      string  `json:"brand" gorm:"type:varchar(100);not null"`
	Model      string  `json:"model" gorm:"type:varchar(100);not null"`
	Year       int     `json:"year" gorm:"not null"`
	Price      float64 `json:"price" gorm:"not null"`
	BranchID   *uint   `json:"branch_id" gorm:"index"`
	SupplierID *uint   `json:"supplier_id" gorm:"index"`
}
