package model

// Supplier represents an external vendor providing vehicles to branches
type Supplier struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"type:varchar(100);not null"`
	Phone *string `json:"phone" gorm:"type:varchar(20)"`
	Email string  `json:"email" gorm:"type:varchar(100);not null"`
}
