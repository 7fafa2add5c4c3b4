package repository

import (
	"kbikes-api/internal/errs"
	"kbikes-api/internal/model"

	"gorm.io/gorm"
)

// CreateSale inserts a single sale and fills in its assigned ID
func CreateSale(db *gorm.DB, sale *model.Sale) error {
	if err := db.Create(sale).Error; err != nil {
		return &errs.PersistenceError{Op: "insert sale", Err: err}
	}
	return nil
}

// CreateSalesBulk inserts sales in input order within one transaction
// spanning the whole batch
func CreateSalesBulk(db *gorm.DB, sales []model.Sale) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range sales {
			if err := tx.Create(&sales[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &errs.PersistenceError{Op: "bulk insert sales", Err: err}
	}
	return nil
}

// ListSales returns all sales in store order
func ListSales(db *gorm.DB) ([]model.Sale, error) {
	sales := make([]model.Sale, 0)
	if err := db.Find(&sales).Error; err != nil {
		return nil, &errs.PersistenceError{Op: "list sales", Err: err}
	}
	return sales, nil
}
