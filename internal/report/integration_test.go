//go:build integration
// +build integration

package report_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"kbikes-api/internal/model"
	"kbikes-api/internal/report"
	"kbikes-api/internal/repository"
	"kbikes-api/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB starts a throwaway PostgreSQL container, opens a gorm
// connection and migrates the dealership schema
func setupTestDB(t *testing.T) *gorm.DB {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("kbikes_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func date(t *testing.T, s string) model.Date {
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

// asFloat normalizes the scalar types the driver may hand back for
// numeric report columns
func asFloat(t *testing.T, v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		require.NoError(t, err)
		return f
	case []byte:
		f, err := strconv.ParseFloat(string(n), 64)
		require.NoError(t, err)
		return f
	default:
		t.Fatalf("unexpected numeric type %T (%v)", v, v)
		return 0
	}
}

func TestCreateThenListIncludesRecord(t *testing.T) {
	db := setupTestDB(t)

	branch := model.Branch{Name: "Centro", Address: strPtr("Av. Principal 123")}
	require.NoError(t, repository.CreateBranch(db, &branch))
	assert.NotZero(t, branch.ID)

	branches, err := repository.ListBranches(db)
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, branch.ID, branches[0].ID)
	assert.Equal(t, "Centro", branches[0].Name)
	require.NotNil(t, branches[0].Address)
	assert.Equal(t, "Av. Principal 123", *branches[0].Address)
}

func TestListOnEmptyTableReturnsEmptySequence(t *testing.T) {
	db := setupTestDB(t)

	sales, err := repository.ListSales(db)
	require.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)
}

func TestBulkCreatePreservesOrderAndAssignsIdentities(t *testing.T) {
	db := setupTestDB(t)

	customers := []model.Customer{
		{Name: "Ana", Surname: "Lopez", Email: "ana@kbikes.com"},
		{Name: "Luis", Surname: "Mora", Email: "luis@kbikes.com"},
		{Name: "Rosa", Surname: "Paz", Email: "rosa@kbikes.com"},
	}
	require.NoError(t, repository.CreateCustomersBulk(db, customers))

	seen := map[uint]bool{}
	for i, c := range customers {
		assert.NotZero(t, c.ID, "row %d missing identity", i)
		assert.False(t, seen[c.ID], "duplicate identity on row %d", i)
		seen[c.ID] = true
	}
	assert.Less(t, customers[0].ID, customers[1].ID)
	assert.Less(t, customers[1].ID, customers[2].ID)
}

func TestBulkCreateRollsBackWholeBatchOnFailure(t *testing.T) {
	db := setupTestDB(t)

	// The second row exceeds the varchar(100) name column, so the insert
	// fails mid-batch.
	branches := []model.Branch{
		{Name: "Norte"},
		{Name: strings.Repeat("x", 150)},
		{Name: "Sur"},
	}
	err := repository.CreateBranchesBulk(db, branches)
	require.Error(t, err)

	remaining, listErr := repository.ListBranches(db)
	require.NoError(t, listErr)
	assert.Empty(t, remaining, "failed batch must leave the store unchanged")
}

func TestProductsByPriceRangeBoundaries(t *testing.T) {
	db := setupTestDB(t)

	products := []model.Product{
		{Brand: "Honda", Model: "CB300", Year: 2021, Price: 1000},
		{Brand: "Honda", Model: "CB500", Year: 2022, Price: 2000},
		{Brand: "Yamaha", Model: "MT-07", Year: 2023, Price: 3000},
	}
	require.NoError(t, repository.CreateProductsBulk(db, products))

	rows, err := report.ProductsByPriceRange(db, 1000, 2000)
	require.NoError(t, err)
	require.Len(t, rows, 2, "both boundary prices must be included")

	rows, err = report.ProductsByPriceRange(db, 1000.01, 2999.99)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CB500", rows[0]["model"])

	rows, err = report.ProductsByPriceRange(db, 5000, 9000)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// seedSalesScenario loads the fixture used by the aggregate report tests:
// one branch, one supplier, one employee, two customers, two products and
// sales spread over January 2024.
func seedSalesScenario(t *testing.T, db *gorm.DB) (model.Branch, []model.Product) {
	branch := model.Branch{Name: "Centro"}
	require.NoError(t, repository.CreateBranch(db, &branch))

	supplier := model.Supplier{Name: "Moto Parts SA", Email: "ventas@motoparts.com"}
	require.NoError(t, repository.CreateSupplier(db, &supplier))

	employee := model.Employee{
		Name: "Carla", Surname: "Ruiz", Email: "carla@kbikes.com",
		BranchID: uintPtr(branch.ID),
	}
	require.NoError(t, repository.CreateEmployee(db, &employee))

	customers := []model.Customer{
		{Name: "Ana", Surname: "Lopez", Email: "ana@kbikes.com"},
		{Name: "Luis", Surname: "Mora", Email: "luis@kbikes.com"},
	}
	require.NoError(t, repository.CreateCustomersBulk(db, customers))

	products := []model.Product{
		{Brand: "Honda", Model: "CB500", Year: 2022, Price: 8000,
			BranchID: uintPtr(branch.ID), SupplierID: uintPtr(supplier.ID)},
		{Brand: "Yamaha", Model: "MT-07", Year: 2023, Price: 9500,
			BranchID: uintPtr(branch.ID), SupplierID: uintPtr(supplier.ID)},
	}
	require.NoError(t, repository.CreateProductsBulk(db, products))

	sales := []model.Sale{
		{CustomerID: customers[0].ID, ProductID: products[0].ID, EmployeeID: employee.ID,
			SaleDate: date(t, "2024-01-10"), Quantity: 2},
		{CustomerID: customers[1].ID, ProductID: products[0].ID, EmployeeID: employee.ID,
			SaleDate: date(t, "2024-01-15"), Quantity: 1},
		{CustomerID: customers[1].ID, ProductID: products[1].ID, EmployeeID: employee.ID,
			SaleDate: date(t, "2024-02-20"), Quantity: 1},
	}
	require.NoError(t, repository.CreateSalesBulk(db, sales))

	return branch, products
}

func TestSalesByBranchSingleSale(t *testing.T) {
	db := setupTestDB(t)

	branch := model.Branch{Name: "Centro"}
	require.NoError(t, repository.CreateBranch(db, &branch))
	customer := model.Customer{Name: "Ana", Surname: "Lopez", Email: "ana@kbikes.com"}
	require.NoError(t, repository.CreateCustomer(db, &customer))
	employee := model.Employee{Name: "Carla", Surname: "Ruiz", Email: "carla@kbikes.com"}
	require.NoError(t, repository.CreateEmployee(db, &employee))
	product := model.Product{Brand: "Honda", Model: "CB500", Year: 2022, Price: 8000,
		BranchID: uintPtr(branch.ID)}
	require.NoError(t, repository.CreateProduct(db, &product))
	sale := model.Sale{CustomerID: customer.ID, ProductID: product.ID,
		EmployeeID: employee.ID, SaleDate: date(t, "2024-01-10"), Quantity: 2}
	require.NoError(t, repository.CreateSale(db, &sale))

	rows, err := report.SalesByBranch(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Centro", rows[0]["branch"])
	assert.GreaterOrEqual(t, asFloat(t, rows[0]["total_sales"]), float64(1))
	assert.Equal(t, float64(8000), asFloat(t, rows[0]["average_price"]))
}

func TestBestSellingProductsRespectsRangeOrderAndLimit(t *testing.T) {
	db := setupTestDB(t)
	seedSalesScenario(t, db)

	// January only: the February MT-07 sale must be excluded.
	rows, err := report.BestSellingProducts(db,
		date(t, "2024-01-01"), date(t, "2024-01-31"), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CB500", rows[0]["model"])
	assert.Equal(t, float64(3), asFloat(t, rows[0]["units_sold"]))

	// Full range, descending by units sold.
	rows, err = report.BestSellingProducts(db,
		date(t, "2024-01-01"), date(t, "2024-12-31"), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "CB500", rows[0]["model"])
	assert.GreaterOrEqual(t,
		asFloat(t, rows[0]["units_sold"]),
		asFloat(t, rows[1]["units_sold"]))

	// Limit bounds the result set.
	rows, err = report.BestSellingProducts(db,
		date(t, "2024-01-01"), date(t, "2024-12-31"), 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestUnsoldProductsOrderedByPriceDescending(t *testing.T) {
	db := setupTestDB(t)
	seedSalesScenario(t, db)

	unsold := []model.Product{
		{Brand: "Suzuki", Model: "GSX-S750", Year: 2023, Price: 10500},
		{Brand: "Kawasaki", Model: "Z400", Year: 2022, Price: 6800},
	}
	require.NoError(t, repository.CreateProductsBulk(db, unsold))

	rows, err := report.UnsoldProducts(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "GSX-S750", rows[0]["model"])
	assert.Equal(t, "Z400", rows[1]["model"])
}

func TestFrequentCustomersThreshold(t *testing.T) {
	db := setupTestDB(t)
	seedSalesScenario(t, db)

	rows, err := report.FrequentCustomers(db, 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Luis", rows[0]["name"])
	assert.Equal(t, float64(2), asFloat(t, rows[0]["purchases"]))

	rows, err = report.FrequentCustomers(db, 3)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSellerEfficiencyRate(t *testing.T) {
	db := setupTestDB(t)
	seedSalesScenario(t, db)

	rows, err := report.SellerEfficiency(db,
		date(t, "2024-01-10"), date(t, "2024-01-15"))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Two sales over an inclusive six-day range.
	assert.InDelta(t, 2.0/6.0, asFloat(t, rows[0]["sales_per_day"]), 0.01)
}

func TestSalesByPeriodAndBranchMonthlyBuckets(t *testing.T) {
	db := setupTestDB(t)
	branch, _ := seedSalesScenario(t, db)

	rows, err := report.SalesByPeriodAndBranch(db,
		date(t, "2024-01-01"), date(t, "2024-12-31"), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01", rows[0]["month"])
	assert.Equal(t, "2024-02", rows[1]["month"])

	other := uint(branch.ID + 1000)
	rows, err = report.SalesByPeriodAndBranch(db,
		date(t, "2024-01-01"), date(t, "2024-12-31"), &other)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
