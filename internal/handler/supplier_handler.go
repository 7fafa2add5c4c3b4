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

// SupplierRequest defines the structure for supplier creation requests
type SupplierRequest struct {
	Name  string  `json:"name" validate:"required"`
	Phone *string `json:"phone"`
	Email string  `json:"email" validate:"required,email"`
}

func (r *SupplierRequest) toModel() model.Supplier {
	return model.Supplier{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
	}
}

// CreateSupplier creates a single supplier
func CreateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "create")

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid supplier request data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		log.Error("Supplier validation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	supplier := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateSupplier(database.GetDB(), &supplier); err != nil {
		log.Error("Failed to create supplier", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Supplier created", zap.Uint("id", supplier.ID), zap.String("name", supplier.Name))
	return c.JSON(http.StatusCreated, supplier)
}

// CreateSuppliersBulk creates an ordered batch of suppliers atomically
func CreateSuppliersBulk(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "bulk_create")

	var reqs []SupplierRequest
	if err := c.Bind(&reqs); err != nil {
		log.Error("Invalid supplier batch data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	suppliers := make([]model.Supplier, 0, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			log.Error("Supplier validation failed", zap.Int("index", i), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		suppliers = append(suppliers, reqs[i].toModel())
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateSuppliersBulk(database.GetDB(), suppliers); err != nil {
		log.Error("Failed to create supplier batch", zap.Int("count", len(suppliers)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Supplier batch created", zap.Int("count", len(suppliers)))
	return c.JSON(http.StatusCreated, suppliers)
}

// ListSuppliers returns all suppliers
func ListSuppliers(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	suppliers, err := repository.ListSuppliers(database.GetDB())
	if err != nil {
		log.Error("Failed to list suppliers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Suppliers listed", zap.Int("count", len(suppliers)))
	return c.JSON(http.StatusOK, suppliers)
}
