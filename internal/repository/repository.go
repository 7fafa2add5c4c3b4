// Package repository handles all writes and reads of dealership entities.
//
// Every entity gets the same three operations: Create (single insert),
// CreateBulk (ordered multi-row insert inside one transaction, all rows
// committed or none) and List (all rows in store order). Connections are
// scoped by gorm's pool and released on every exit path.
package repository
