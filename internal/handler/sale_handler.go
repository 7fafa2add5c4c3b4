package handler

import (
	"net/http"
	"time"

	"kbikes-api/internal/model"
	"kbikes-api/internal/repository"
	"kbikes-api/pkg/database"
	"kbikes-api/pkg/logger"
	"kbikes-api/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SaleRequest defines the structure for sale creation requests. The
// numeric fields are pointers so only absence is rejected; zero values
// pass validation unchanged.
type SaleRequest struct {
	CustomerID *uint      `json:"customer_id" validate:"required"`
	ProductID  *uint      `json:"product_id" validate:"required"`
	EmployeeID *uint      `json:"employee_id" validate:"required"`
	SaleDate   model.Date `json:"sale_date" validate:"required"`
	Quantity   *int       `json:"quantity" validate:"required"`
}

func (r *SaleRequest) toModel() model.Sale {
	return model.Sale{
		CustomerID: *r.CustomerID,
		ProductID:  *r.ProductID,
		EmployeeID: *r.EmployeeID,
		SaleDate:   r.SaleDate,
		Quantity:   *r.Quantity,
	}
}

// CreateSale creates a single sale
func CreateSale(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("sale", "create")

	var req SaleRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid sale request data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		log.Error("Sale validation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	sale := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateSale(database.GetDB(), &sale); err != nil {
		log.Error("Failed to create sale",
			zap.Uint("customer_id", *req.CustomerID),
			zap.Uint("product_id", *req.ProductID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Sale created", zap.Uint("id", sale.ID), zap.String("sale_date", sale.SaleDate.String()))
	return c.JSON(http.StatusCreated, sale)
}

// CreateSalesBulk creates an ordered batch of sales atomically
func CreateSalesBulk(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("sale", "bulk_create")

	var reqs []SaleRequest
	if err := c.Bind(&reqs); err != nil {
		log.Error("Invalid sale batch data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	sales := make([]model.Sale, 0, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			log.Error("Sale validation failed", zap.Int("index", i), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		sales = append(sales, reqs[i].toModel())
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateSalesBulk(database.GetDB(), sales); err != nil {
		log.Error("Failed to create sale batch", zap.Int("count", len(sales)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Sale batch created", zap.Int("count", len(sales)))
	return c.JSON(http.StatusCreated, sales)
}

// ListSales returns all sales
func ListSales(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("sale", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	sales, err := repository.ListSales(database.GetDB())
	if err != nil {
		log.Error("Failed to list sales", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Sales listed", zap.Int("count", len(sales)))
	return c.JSON(http.StatusOK, sales)
}
