package model

// Employee represents a dealership employee, optionally assigned to a branch
type Employee struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"type:varchar(100);not null"`
	Surname  string  `json:"surname" gorm:"type:varchar(100);not null"`
	Position *string `json:"position" gorm:"type:varchar(100)"`
	Phone    *string `json:"phone" gorm:"type:varchar(20)"`
	Email    string  `json:"email" gorm:"type:varchar(100);not null"`
	BranchID *uint   `json:"branch_id" gorm:"index"`
}
