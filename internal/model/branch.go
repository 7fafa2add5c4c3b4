package model

// Branch represents a physical dealership location
type Branch struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	Name    string  `json:"name" gorm:"type:varchar(100);not null"`
	Address *string `json:"address" gorm:"type:text"`
	Phone   *string `json:"phone" gorm:"type:varchar(20)"`
}
