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

// EmployeeRequest defines the structure for employee creation requests.
// BranchID is optional: employees may be unassigned.
type EmployeeRequest struct {
	Name     string  `json:"name" validate:"required"`
	Surname  string  `json:"surname" validate:"required"`
	Position *string `json:"position"`
	Phone    *string `json:"phone"`
	Email    string  `json:"email" validate:"required,email"`
	BranchID *uint   `json:"branch_id"`
}

func (r *EmployeeRequest) toModel() model.Employee {
	return model.Employee{
		Name:     r.Name,
		Surname:  r.Surname,
		Position: r.Position,
		Phone:    r.Phone,
		Email:    r.Email,
		BranchID: r.BranchID,
	}
}

// CreateEmployee creates a single employee
func CreateEmployee(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("employee", "create")

	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid employee request data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		log.Error("Employee validation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	employee := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateEmployee(database.GetDB(), &employee); err != nil {
		log.Error("Failed to create employee", zap.String("email", req.Email), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Employee created", zap.Uint("id", employee.ID))
	return c.JSON(http.StatusCreated, employee)
}

// CreateEmployeesBulk creates an ordered batch of employees atomically
func CreateEmployeesBulk(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("employee", "bulk_create")

	var reqs []EmployeeRequest
	if err := c.Bind(&reqs); err != nil {
		log.Error("Invalid employee batch data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	employees := make([]model.Employee, 0, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			log.Error("Employee validation failed", zap.Int("index", i), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		employees = append(employees, reqs[i].toModel())
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateEmployeesBulk(database.GetDB(), employees); err != nil {
		log.Error("Failed to create employee batch", zap.Int("count", len(employees)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Employee batch created", zap.Int("count", len(employees)))
	return c.JSON(http.StatusCreated, employees)
}

// ListEmployees returns all employees
func ListEmployees(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("employee", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	employees, err := repository.ListEmployees(database.GetDB())
	if err != nil {
		log.Error("Failed to list employees", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Employees listed", zap.Int("count", len(employees)))
	return c.JSON(http.StatusOK, employees)
}
