package repository

import (
	"kbikes-api/internal/errs"
	"kbikes-api/internal/model"

	"gorm.io/gorm"
)

// CreateSupplier inserts a single supplier and fills in its assigned ID
func CreateSupplier(db *gorm.DB, supplier *model.Supplier) error {
	if err := db.Create(supplier).Error; err != nil {
		return &errs.PersistenceError{Op: "insert supplier", Err: err}
	}
	return nil
}

// CreateSuppliersBulk inserts suppliers in input order within one
// transaction spanning the whole batch
func CreateSuppliersBulk(db *gorm.DB, suppliers []model.Supplier) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range suppliers {
			if err := tx.Create(&suppliers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &errs.PersistenceError{Op: "bulk insert suppliers", Err: err}
	}
	return nil
}

// ListSuppliers returns all suppliers in store order
func ListSuppliers(db *gorm.DB) ([]model.Supplier, error) {
	suppliers := make([]model.Supplier, 0)
	if err := db.Find(&suppliers).Error; err != nil {
		return nil, &errs.PersistenceError{Op: "list suppliers", Err: err}
	}
	return suppliers, nil
}
