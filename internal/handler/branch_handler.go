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

// BranchRequest defines the structure for branch creation requests
type BranchRequest struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

func (r *BranchRequest) toModel() model.Branch {
	return model.Branch{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
	}
}

// CreateBranch creates a single branch
func CreateBranch(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("branch", "create")

	var req BranchRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid branch request data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		log.Error("Branch validation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	branch := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateBranch(database.GetDB(), &branch); err != nil {
		log.Error("Failed to create branch", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Branch created", zap.Uint("id", branch.ID), zap.String("name", branch.Name))
	return c.JSON(http.StatusCreated, branch)
}

// CreateBranchesBulk creates an ordered batch of branches atomically
func CreateBranchesBulk(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("branch", "bulk_create")

	var reqs []BranchRequest
	if err := c.Bind(&reqs); err != nil {
		log.Error("Invalid branch batch data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	branches := make([]model.Branch, 0, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			log.Error("Branch validation failed", zap.Int("index", i), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		branches = append(branches, reqs[i].toModel())
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repository.CreateBranchesBulk(database.GetDB(), branches); err != nil {
		log.Error("Failed to create branch batch", zap.Int("count", len(branches)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Branch batch created", zap.Int("count", len(branches)))
	return c.JSON(http.StatusCreated, branches)
}

// ListBranches returns all branches
func ListBranches(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("branch", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	branches, err := repository.ListBranches(database.GetDB())
	if err != nil {
		log.Error("Failed to list branches", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Branches listed", zap.Int("count", len(branches)))
	return c.JSON(http.StatusOK, branches)
}
