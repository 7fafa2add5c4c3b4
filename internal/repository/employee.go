package repository

import (
	"kbikes-api/internal/errs"
	"kbikes-api/internal/model"

	"gorm.io/gorm"
)

// CreateEmployee inserts a single employee and fills in its assigned ID
func CreateEmployee(db *gorm.DB, employee *model.Employee) error {
	if err := db.Create(employee).Error; err != nil {
		return &errs.PersistenceError{Op: "insert employee", Err: err}
	}
	return nil
}

// CreateEmployeesBulk inserts employees in input order within one
// transaction spanning the whole batch
func CreateEmployeesBulk(db *gorm.DB, employees []model.Employee) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range employees {
			if err := tx.Create(&employees[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &errs.PersistenceError{Op: "bulk insert employees", Err: err}
	}
	return nil
}

// ListEmployees returns all employees in store order
func ListEmployees(db *gorm.DB) ([]model.Employee, error) {
	employees := make([]model.Employee, 0)
	if err := db.Find(&employees).Error; err != nil {
		return nil, &errs.PersistenceError{Op: "list employees", Err: err}
	}
	return employees, nil
}
