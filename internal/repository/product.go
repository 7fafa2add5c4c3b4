package repository

import (
	"kbikes-api/internal/errs"
	"kbikes-api/internal/model"

	"gorm.io/gorm"
)

// CreateProduct inserts a single product and fills in its assigned ID
func CreateProduct(db *gorm.DB, product *model.Product) error {
	if err := db.Create(product).Error; err != nil {
		return &errs.PersistenceError{Op: "insert product", Err: err}
	}
	return nil
}

// CreateProductsBulk inserts products in input order within one
// transaction spanning the whole batch
func CreateProductsBulk(db *gorm.DB, products []model.Product) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &errs.PersistenceError{Op: "bulk insert products", Err: err}
	}
	return nil
}

// ListProducts returns all products in store order
func ListProducts(db *gorm.DB) ([]model.Product, error) {
	products := make([]model.Product, 0)
	if err := db.Find(&products).Error; err != nil {
		return nil, &errs.PersistenceError{Op: "list products", Err: err}
	}
	return products, nil
}
