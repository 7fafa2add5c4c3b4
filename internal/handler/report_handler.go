package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"kbikes-api/internal/model"
	"kbikes-api/internal/report"
	"kbikes-api/pkg/database"
	"kbikes-api/pkg/logger"
	"kbikes-api/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Query-parameter helpers. A missing required parameter or an unparseable
// value fails the report; the failure surfaces as the usual generic error
// response.

func intQueryParam(c echo.Context, name string, defaultValue int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %q: %s", name, raw)
	}
	return value, nil
}

func requiredFloatQueryParam(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %q: %s", name, raw)
	}
	return value, nil
}

func requiredIntQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %q: %s", name, raw)
	}
	return value, nil
}

func requiredDateQueryParam(c echo.Context, name string) (model.Date, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return model.Date{}, fmt.Errorf("missing required parameter %q", name)
	}
	return model.ParseDate(raw)
}

func idPathParam(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %q: %s", name, c.Param(name))
	}
	return uint(value), nil
}

func reportError(c echo.Context, name string, err error) error {
	logger.FromContext(c).Error("Report failed", zap.String("report", name), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func reportResult(c echo.Context, name string, rows []report.Row) error {
	logger.FromContext(c).Info("Report executed",
		zap.String("report", name),
		zap.Int("rows", len(rows)))
	return c.JSON(http.StatusOK, rows)
}

// SalesByBranch handles GET /query1
func SalesByBranch(c echo.Context) error {
	prometheus.RecordReportExecution("sales-by-branch")
	defer prometheus.TrackDBOperation("query")(time.Now())

	rows, err := report.SalesByBranch(database.GetDB())
	if err != nil {
		return reportError(c, "sales-by-branch", err)
	}
	return reportResult(c, "sales-by-branch", rows)
}

// ProductsByPriceRange handles GET /query2?min_price=&max_price=
func ProductsByPriceRange(c echo.Context) error {
	prometheus.RecordReportExecution("products-by-price-range")

	min, err := requiredFloatQueryParam(c, "min_price")
	if err != nil {
		return reportError(c, "products-by-price-range", err)
	}
	max, err := requiredFloatQueryParam(c, "max_price")
	if err != nil {
		return reportError(c, "products-by-price-range", err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := report.ProductsByPriceRange(database.GetDB(), min, max)
	if err != nil {
		return reportError(c, "products-by-price-range", err)
	}
	return reportResult(c, "products-by-price-range", rows)
}

// TopSellers handles GET /query3?limit=
func TopSellers(c echo.Context) error {
	prometheus.RecordReportExecution("top-sellers")

	limit, err := intQueryParam(c, "limit", 5)
	if err != nil {
		return reportError(c, "top-sellers", err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := report.TopSellers(database.GetDB(), limit)
	if err != nil {
		return reportError(c, "top-sellers", err)
	}
	return reportResult(c, "top-sellers", rows)
}

// PurchaseHistory handles GET /query4/:customer_id
func PurchaseHistory(c echo.Context) error {
	prometheus.RecordReportExecution("purchase-history-for-customer")

	customerID, err := idPathParam(c, "customer_id")
	if err != nil {
		return reportError(c, "purchase-history-for-customer", err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := report.PurchaseHistoryForCustomer(database.GetDB(), customerID)
	if err != nil {
		return reportError(c, "purchase-history-for-customer", err)
	}
	return reportResult(c, "purchase-history-for-customer", rows)
}

// BranchInventory handles GET /query5/:branch_id
func BranchInventory(c echo.Context) error {
	prometheus.RecordReportExecution("branch-inventory")

	branchID, err := idPathParam(c, "branch_id")
	if err != nil {
		return reportError(c, "branch-inventory", err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := report.BranchInventory(database.GetDB(), branchID)
	if err != nil {
		return reportError(c, "branch-inventory", err)
	}
	return reportResult(c, "branch-inventory", rows)
}

// BestSellingProducts handles GET /query6?start_date=&end_date=&limit=
func BestSellingProducts(c echo.Context) error {
	prometheus.RecordReportExecution("best-selling-products")

	from, err := requiredDateQueryParam(c, "start_date")
	if err != nil {
		return reportError(c, "best-selling-products", err)
	}
	to, err := requiredDateQueryParam(c, "end_date")
	if err != nil {
		return reportError(c, "best-selling-products", err)
	}
	limit, err := intQueryParam(c, "limit", 10)
	if err != nil {
		return reportError(c, "best-selling-products", err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := report.BestSellingProducts(database.GetDB(), from, to, limit)
	if err != nil {
		return reportError(c, "best-selling-products", err)
	}
	return reportResult(c, "best-selling-products", rows)
}

// BranchPerformance handles GET /query7
func BranchPerformance(c echo.Context) error {
	prometheus.RecordReportExecution("branch-performance")
	defer prometheus.TrackDBOperation("query")(time.Now())

	rows, err := report.BranchPerformance(database.GetDB())
	if err != nil {
		return reportError(c, "branch-performance", err)
	}
	return reportResult(c, "branch-performance", rows)
}

// SupplierAnalysis handles GET /query8
func SupplierAnalysis(c echo.Context) error {
	prometheus.RecordReportExecution("supplier-analysis")
	defer prometheus.TrackDBOperation("query")(time.Now())

	rows, err := report.SupplierAnalysis(database.GetDB())
	if err != nil {
		return reportError(c, "supplier-analysis", err)
	}
	return reportResult(c, "supplier-analysis", rows)
}

// FrequentCustomers handles GET /query9?min_purchases=
func FrequentCustomers(c echo.Context) error {
	prometheus.RecordReportExecution("frequent-customers")

	minPurchases, err := intQueryParam(c, "min_purchases", 3)
	if err != nil {
		return reportError(c, "frequent-customers", err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := report.FrequentCustomers(database.GetDB(), minPurchases)
	if err != nil {
		return reportError(c, "frequent-customers", err)
	}
	return reportResult(c, "frequent-customers", rows)
}

// ProductsByYear handles GET /query10?year=
func ProductsByYear(c echo.Context) error {
	prometheus.RecordReportExecution("products-by-year")

	year, err := requiredIntQueryParam(c, "year")
	if err != nil {
		return reportError(c, "products-by-year", err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := report.ProductsByYear(database.GetDB(), year)
	if err != nil {
		return reportError(c, "products-by-year", err)
	}
	return reportResult(c, "products-by-year", rows)
}

// SalesByPeriodAndBranch handles GET /query11?start_date=&end_date=&branch_id=
func SalesByPeriodAndBranch(c echo.Context) error {
	prometheus.RecordReportExecution("sales-by-period-and-branch")

	from, err := requiredDateQueryParam(c, "start_date")
	if err != nil {
		return reportError(c, "sales-by-period-and-branch", err)
	}
	to, err := requiredDateQueryParam(c, "end_date")
	if err != nil {
		return reportError(c, "sales-by-period-and-branch", err)
	}

	var branchID *uint
	if raw := c.QueryParam("branch_id"); raw != "" {
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return reportError(c, "sales-by-period-and-branch",
				fmt.Errorf("invalid parameter %q: %s", "branch_id", raw))
		}
		id := uint(value)
		branchID = &id
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := report.SalesByPeriodAndBranch(database.GetDB(), from, to, branchID)
	if err != nil {
		return reportError(c, "sales-by-period-and-branch", err)
	}
	return reportResult(c, "sales-by-period-and-branch", rows)
}

// EmployeeSalesSummary handles GET /query12
func EmployeeSalesSummary(c echo.Context) error {
	prometheus.RecordReportExecution("employee-sales-summary")
	defer prometheus.TrackDBOperation("query")(time.Now())

	rows, err := report.EmployeeSalesSummary(database.GetDB())
	if err != nil {
		return reportError(c, "employee-sales-summary", err)
	}
	return reportResult(c, "employee-sales-summary", rows)
}

// UnsoldProducts handles GET /query13
func UnsoldProducts(c echo.Context) error {
	prometheus.RecordReportExecution("unsold-products")
	defer prometheus.TrackDBOperation("query")(time.Now())

	rows, err := report.UnsoldProducts(database.GetDB())
	if err != nil {
		return reportError(c, "unsold-products", err)
	}
	return reportResult(c, "unsold-products", rows)
}

// SalesByBrand handles GET /query14?year=
func SalesByBrand(c echo.Context) error {
	prometheus.RecordReportExecution("sales-by-brand")

	var year *int
	if raw := c.QueryParam("year"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return reportError(c, "sales-by-brand",
				fmt.Errorf("invalid parameter %q: %s", "year", raw))
		}
		year = &value
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := report.SalesByBrand(database.GetDB(), year)
	if err != nil {
		return reportError(c, "sales-by-brand", err)
	}
	return reportResult(c, "sales-by-brand", rows)
}

// SellerEfficiency handles GET /query15?start_date=&end_date=
func SellerEfficiency(c echo.Context) error {
	prometheus.RecordReportExecution("seller-efficiency")

	from, err := requiredDateQueryParam(c, "start_date")
	if err != nil {
		return reportError(c, "seller-efficiency", err)
	}
	to, err := requiredDateQueryParam(c, "end_date")
	if err != nil {
		return reportError(c, "seller-efficiency", err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := report.SellerEfficiency(database.GetDB(), from, to)
	if err != nil {
		return reportError(c, "seller-efficiency", err)
	}
	return reportResult(c, "seller-efficiency", rows)
}
