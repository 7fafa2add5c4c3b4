// Package report implements the fifteen fixed analytical queries of the
// dealership API. Each report is a single read-only parameterized SQL
// statement over the entity tables; results come back as loosely-typed
// row mappings because the report schemas are heterogeneous.
package report

import (
	"kbikes-api/internal/errs"
	"kbikes-api/internal/model"

	"gorm.io/gorm"
)

// Row is one loosely-typed report row: column name -> scalar value
type Row = map[string]interface{}

func run(db *gorm.DB, name, query string, args ...interface{}) ([]Row, error) {
	rows := make([]Row, 0)
	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, &errs.QueryError{Report: name, Err: err}
	}
	return rows, nil
}

// SalesByBranch returns per-branch sale counts and the average price of
// the products sold there
func SalesByBranch(db *gorm.DB) ([]Row, error) {
	return run(db, "sales-by-branch", `
		SELECT b.name AS branch,
		       COUNT(s.id) AS total_sales,
		       AVG(p.price) AS average_price
		FROM branches b
		JOIN products p ON p.branch_id = b.id
		JOIN sales s ON s.product_id = p.id
		GROUP BY b.id, b.name`)
}

// ProductsByPriceRange returns products priced within [min, max] along
// with their branch and supplier names
func ProductsByPriceRange(db *gorm.DB, min, max float64) ([]Row, error) {
	return run(db, "products-by-price-range", `
		SELECT p.id, p.brand, p.model, p.year, p.price,
		       b.name AS branch_name,
		       su.name AS supplier_name
		FROM products p
		LEFT JOIN branches b ON b.id = p.branch_id
		LEFT JOIN suppliers su ON su.id = p.supplier_id
		WHERE p.price BETWEEN ? AND ?
		ORDER BY p.price`, min, max)
}

// TopSellers returns the employees with the most sales, descending
func TopSellers(db *gorm.DB, limit int) ([]Row, error) {
	return run(db, "top-sellers", `
		SELECT e.name, e.surname,
		       b.name AS branch_name,
		       COUNT(s.id) AS total_sales,
		       SUM(p.price * s.quantity) AS total_value
		FROM employees e
		JOIN sales s ON s.employee_id = e.id
		JOIN products p ON p.id = s.product_id
		LEFT JOIN branches b ON b.id = e.branch_id
		GROUP BY e.id, e.name, e.surname, b.name
		ORDER BY total_sales DESC
		LIMIT ?`, limit)
}

// PurchaseHistoryForCustomer returns one row per sale made to the given
// customer, most recent first
func PurchaseHistoryForCustomer(db *gorm.DB, customerID uint) ([]Row, error) {
	return run(db, "purchase-history-for-customer", `
		SELECT s.id AS sale_id, s.sale_date, s.quantity,
		       p.brand, p.model, p.price,
		       e.name AS employee_name, e.surname AS employee_surname
		FROM sales s
		JOIN products p ON p.id = s.product_id
		JOIN employees e ON e.id = s.employee_id
		WHERE s.customer_id = ?
		ORDER BY s.sale_date DESC`, customerID)
}

// BranchInventory returns the products assigned to a branch with their
// supplier name and how many times each has been sold
func BranchInventory(db *gorm.DB, branchID uint) ([]Row, error) {
	return run(db, "branch-inventory", `
		SELECT p.id, p.brand, p.model, p.year, p.price,
		       su.name AS supplier_name,
		       COUNT(s.id) AS times_sold
		FROM products p
		LEFT JOIN suppliers su ON su.id = p.supplier_id
		LEFT JOIN sales s ON s.product_id = p.id
		WHERE p.branch_id = ?
		GROUP BY p.id, p.brand, p.model, p.year, p.price, su.name`, branchID)
}

// BestSellingProducts returns brand/model aggregates for sales inside
// [from, to], ordered by units sold descending, at most limit rows
func BestSellingProducts(db *gorm.DB, from, to model.Date, limit int) ([]Row, error) {
	return run(db, "best-selling-products", `
		SELECT p.brand, p.model,
		       SUM(s.quantity) AS units_sold,
		       SUM(p.price * s.quantity) AS total_value
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.sale_date BETWEEN ? AND ?
		GROUP BY p.brand, p.model
		ORDER BY units_sold DESC
		LIMIT ?`, from.Time, to.Time, limit)
}

// BranchPerformance returns per-branch headcount, sale count, revenue and
// average ticket, ordered by revenue descending. Sales are attributed to
// the branch of the selling employee.
func BranchPerformance(db *gorm.DB) ([]Row, error) {
	return run(db, "branch-performance", `
		SELECT b.name AS branch,
		       COUNT(DISTINCT e.id) AS employees,
		       COUNT(s.id) AS total_sales,
		       COALESCE(SUM(p.price * s.quantity), 0) AS revenue,
		       AVG(p.price * s.quantity) AS average_ticket
		FROM branches b
		LEFT JOIN employees e ON e.branch_id = b.id
		LEFT JOIN sales s ON s.employee_id = e.id
		LEFT JOIN products p ON p.id = s.product_id
		GROUP BY b.id, b.name
		ORDER BY revenue DESC`)
}

// SupplierAnalysis returns per-supplier product counts, price statistics
// and total sales, ordered by total sales descending. Sale counts come
// from a subquery so repeat sales do not distort the price aggregates.
func SupplierAnalysis(db *gorm.DB) ([]Row, error) {
	return run(db, "supplier-analysis", `
		SELECT su.name AS supplier,
		       COUNT(p.id) AS products,
		       MIN(p.price) AS min_price,
		       MAX(p.price) AS max_price,
		       AVG(p.price) AS average_price,
		       COALESCE(SUM(sc.sale_count), 0) AS total_sales
		FROM suppliers su
		LEFT JOIN products p ON p.supplier_id = su.id
		LEFT JOIN (
			SELECT product_id, COUNT(*) AS sale_count
			FROM sales
			GROUP BY product_id
		) sc ON sc.product_id = p.id
		GROUP BY su.id, su.name
		ORDER BY total_sales DESC`)
}

// FrequentCustomers returns customers with at least minPurchases sales,
// ordered by purchase count descending
func FrequentCustomers(db *gorm.DB, minPurchases int) ([]Row, error) {
	return run(db, "frequent-customers", `
		SELECT c.id, c.name, c.surname, c.email,
		       COUNT(s.id) AS purchases
		FROM customers c
		JOIN sales s ON s.customer_id = c.id
		GROUP BY c.id, c.name, c.surname, c.email
		HAVING COUNT(s.id) >= ?
		ORDER BY purchases DESC`, minPurchases)
}

// ProductsByYear returns products of the given model year with their
// sale counts
func ProductsByYear(db *gorm.DB, year int) ([]Row, error) {
	return run(db, "products-by-year", `
		SELECT p.id, p.brand, p.model, p.year, p.price,
		       COUNT(s.id) AS times_sold
		FROM products p
		LEFT JOIN sales s ON s.product_id = p.id
		WHERE p.year = ?
		GROUP BY p.id, p.brand, p.model, p.year, p.price`, year)
}

// SalesByPeriodAndBranch returns monthly aggregates per branch for sales
// inside [from, to], optionally restricted to a single branch, ordered by
// month then branch name. Sales are attributed to the product's branch.
func SalesByPeriodAndBranch(db *gorm.DB, from, to model.Date, branchID *uint) ([]Row, error) {
	query := `
		SELECT TO_CHAR(s.sale_date, 'YYYY-MM') AS month,
		       b.name AS branch,
		       COUNT(s.id) AS total_sales,
		       SUM(s.quantity) AS units,
		       SUM(p.price * s.quantity) AS revenue
		FROM sales s
		JOIN products p ON p.id = s.product_id
		JOIN branches b ON b.id = p.branch_id
		WHERE s.sale_date BETWEEN ? AND ?`
	args := []interface{}{from.Time, to.Time}
	if branchID != nil {
		query += `
		AND b.id = ?`
		args = append(args, *branchID)
	}
	query += `
		GROUP BY month, b.name
		ORDER BY month, b.name`
	return run(db, "sales-by-period-and-branch", query, args...)
}

// EmployeeSalesSummary returns per-employee sale counts and the date of
// their last sale, ordered ascending by sale count
func EmployeeSalesSummary(db *gorm.DB) ([]Row, error) {
	return run(db, "employee-sales-summary", `
		SELECT e.id, e.name, e.surname,
		       COUNT(s.id) AS total_sales,
		       MAX(s.sale_date) AS last_sale
		FROM employees e
		LEFT JOIN sales s ON s.employee_id = e.id
		GROUP BY e.id, e.name, e.surname
		ORDER BY total_sales ASC`)
}

// UnsoldProducts returns products with no associated sales, most
// expensive first
func UnsoldProducts(db *gorm.DB) ([]Row, error) {
	return run(db, "unsold-products", `
		SELECT p.id, p.brand, p.model, p.year, p.price
		FROM products p
		LEFT JOIN sales s ON s.product_id = p.id
		WHERE s.id IS NULL
		ORDER BY p.price DESC`)
}

// SalesByBrand returns per-brand sale aggregates, optionally filtered by
// model year, ordered by sale count descending
func SalesByBrand(db *gorm.DB, year *int) ([]Row, error) {
	query := `
		SELECT p.brand,
		       COUNT(s.id) AS total_sales,
		       SUM(s.quantity) AS units,
		       SUM(p.price * s.quantity) AS revenue
		FROM sales s
		JOIN products p ON p.id = s.product_id`
	args := []interface{}{}
	if year != nil {
		query += `
		WHERE p.year = ?`
		args = append(args, *year)
	}
	query += `
		GROUP BY p.brand
		ORDER BY total_sales DESC`
	return run(db, "sales-by-brand", query, args...)
}

// SellerEfficiency returns each employee's sales-per-day rate over the
// inclusive [from, to] range, ordered descending
func SellerEfficiency(db *gorm.DB, from, to model.Date) ([]Row, error) {
	return run(db, "seller-efficiency", `
		SELECT e.id, e.name, e.surname,
		       COUNT(s.id) AS total_sales,
		       ROUND(COUNT(s.id)::numeric / ((?::date - ?::date) + 1), 2) AS sales_per_day
		FROM employees e
		JOIN sales s ON s.employee_id = e.id
		WHERE s.sale_date BETWEEN ? AND ?
		GROUP BY e.id, e.name, e.surname
		ORDER BY sales_per_day DESC`,
		to.Time, from.Time, from.Time, to.Time)
}
