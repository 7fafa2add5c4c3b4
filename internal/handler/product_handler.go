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

// ProductRequest defines the structure for product creation requests.
// Branch and supplier assignments are optional. Year and price are
// pointers so only absence is rejected; a zero price is legal input.
type ProductRequest struct {
	Brand      string   `json:"brand" validate:"required"`
	Model      string   `json:"model" validate:"required"`
	Year       *int     `json:"year" validate:"required"`
	Price      *float64 `json:"price" validate:"required"`
	BranchID   *uint    `json:"branch_id"`
	SupplierID *uint    `json:"supplier_id"`
}

func (r *ProductRequest) toModel() model.Product {
	return model.Product{
		Brand:      r.Brand,
		Model:      r.Model,
		Year:       *r.Year,
		Price:      *r.Price,
		BranchID:   r.BranchID,
		SupplierID: r.SupplierID,
	}
}

// CreateProduct creates a single product
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "create")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid product request data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		log.Error("Product validation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	product := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateProduct(database.GetDB(), &product); err != nil {
		log.Error("Failed to create product",
			zap.String("brand", req.Brand),
			zap.String("model", req.Model),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Product created",
		zap.Uint("id", product.ID),
		zap.String("brand", product.Brand),
		zap.String("model", product.Model))
	return c.JSON(http.StatusCreated, product)
}

// CreateProductsBulk creates an ordered batch of products atomically
func CreateProductsBulk(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "bulk_create")

	var reqs []ProductRequest
	if err := c.Bind(&reqs); err != nil {
		log.Error("Invalid product batch data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	products := make([]model.Product, 0, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			log.Error("Product validation failed", zap.Int("index", i), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		products = append(products, reqs[i].toModel())
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateProductsBulk(database.GetDB(), products); err != nil {
		log.Error("Failed to create product batch", zap.Int("count", len(products)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Product batch created", zap.Int("count", len(products)))
	return c.JSON(http.StatusCreated, products)
}

// ListProducts returns all products
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	products, err := repository.ListProducts(database.GetDB())
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Products listed", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}
