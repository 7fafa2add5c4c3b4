package repository

import (
	"kbikes-api/internal/errs"
	"kbikes-api/internal/model"

	"gorm.io/gorm"
)

// CreateCustomer inserts a single customer and fills in its assigned ID
func CreateCustomer(db *gorm.DB, customer *model.Customer) error {
	if err := db.Create(customer).Error; err != nil {
		return &errs.PersistenceError{Op: "insert customer", Err: err}
	}
	return nil
}

// CreateCustomersBulk inserts customers in input order within one
// transaction spanning the whole batch
func CreateCustomersBulk(db *gorm.DB, customers []model.Customer) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range customers {
			if err := tx.Create(&customers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &errs.PersistenceError{Op: "bulk insert customers", Err: err}
	}
	return nil
}

// ListCustomers returns all customers in store order
func ListCustomers(db *gorm.DB) ([]model.Customer, error) {
	customers := make([]model.Customer, 0)
	if err := db.Find(&customers).Error; err != nil {
		return nil, &errs.PersistenceError{Op: "list customers", Err: err}
	}
	return customers, nil
}
