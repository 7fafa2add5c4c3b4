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

// CustomerRequest defines the structure for customer creation requests
type CustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Surname string  `json:"surname" validate:"required"`
	Phone   *string `json:"phone"`
	Email   string  `json:"email" validate:"required,email"`
	Address *string `json:"address"`
}

func (r *CustomerRequest) toModel() model.Customer {
	return model.Customer{
		Name:    r.Name,
		Surname: r.Surname,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}

// CreateCustomer creates a single customer
func CreateCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "create")

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid customer request data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		log.Error("Customer validation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	customer := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateCustomer(database.GetDB(), &customer); err != nil {
		log.Error("Failed to create customer", zap.String("email", req.Email), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Customer created", zap.Uint("id", customer.ID))
	return c.JSON(http.StatusCreated, customer)
}

// CreateCustomersBulk creates an ordered batch of customers atomically
func CreateCustomersBulk(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "bulk_create")

	var reqs []CustomerRequest
	if err := c.Bind(&reqs); err != nil {
		log.Error("Invalid customer batch data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	customers := make([]model.Customer, 0, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			log.Error("Customer validation failed", zap.Int("index", i), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		customers = append(customers, reqs[i].toModel())
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateCustomersBulk(database.GetDB(), customers); err != nil {
		log.Error("Failed to create customer batch", zap.Int("count", len(customers)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Customer batch created", zap.Int("count", len(customers)))
	return c.JSON(http.StatusCreated, customers)
}

// ListCustomers returns all customers
func ListCustomers(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	customers, err := repository.ListCustomers(database.GetDB())
	if err != nil {
		log.Error("Failed to list customers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Customers listed", zap.Int("count", len(customers)))
	return c.JSON(http.StatusOK, customers)
}
