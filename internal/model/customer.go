package model

// Customer represents a dealership customer
type Customer struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	Name    string  `json:"name" gorm:"type:varchar(100);not null"`
	Surname string  `json:"surname" gorm:"type:varchar(100);not null"`
	Phone   *string `json:"phone" gorm:"type:varchar(20)"`
	Email   string  `json:"email" gorm:"type:varchar(100);not null"`
	Address *string `json:"address" gorm:"type:text"`
}
