package repository

import (
	"kbikes-api/internal/errs"
	"kbikes-api/internal/model"

	"gorm.io/gorm"
)

// CreateBranch inserts a single branch and fills in its assigned ID
func CreateBranch(db *gorm.DB, branch *model.Branch) error {
	if err := db.Create(branch).Error; err != nil {
		return &errs.PersistenceError{Op: "insert branch", Err: err}
	}
	return nil
}

// CreateBranchesBulk inserts branches in input order within one
// transaction spanning the whole batch
func CreateBranchesBulk(db *gorm.DB, branches []model.Branch) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range branches {
			if err := tx.Create(&branches[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &errs.PersistenceError{Op: "bulk insert branches", Err: err}
	}
	return nil
}

// ListBranches returns all branches in store order
func ListBranches(db *gorm.DB) ([]model.Branch, error) {
	branches := make([]model.Branch, 0)
	if err := db.Find(&branches).Error; err != nil {
		return nil, &errs.PersistenceError{Op: "list branches", Err: err}
	}
	return branches, nil
}
