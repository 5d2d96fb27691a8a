package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/services"
)

// GoalHandler handles goal requests nested under a client.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// UpsertGoalRequest represents the request payload for the create-or-overwrite
// goal operation.
type UpsertGoalRequest struct {
	Type        string    `json:"type" binding:"required,min=1,max=100"`
	Subtype     string    `json:"subtype" binding:"max=100"`
	TargetValue float64   `json:"target_value" binding:"required,gt=0"`
	TargetDate  time.Time `json:"target_date" binding:"required"`
	Version     int32     `json:"version" binding:"gte=0"`
}

// UpdateGoalRequest represents the request payload for updating a goal by id.
type UpdateGoalRequest struct {
	Type        *string    `json:"type" binding:"omitempty,min=1,max=100"`
	Subtype     *string    `json:"subtype" binding:"omitempty,max=100"`
	TargetValue *float64   `json:"target_value" binding:"omitempty,gt=0"`
	TargetDate  *time.Time `json:"target_date"`
	Version     *int32     `json:"version" binding:"omitempty,gte=0"`
}

// UpsertGoal handles the create-or-overwrite goal operation
// @Summary     Create or overwrite a goal
// @Description Create a goal, or overwrite the existing goal of the same type
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       request body UpsertGoalRequest true "Goal details"
// @Success     200 {object} models.Goal "Existing goal overwritten"
// @Success     201 {object} models.Goal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/goals [post]
func (h *GoalHandler) UpsertGoal(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, created, err := h.goalService.UpsertGoal(clientID, services.GoalInput{
		Type:        req.Type,
		Subtype:     req.Subtype,
		TargetValue: req.TargetValue,
		TargetDate:  req.TargetDate,
		Version:     req.Version,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"goal": goal})
}

// GetGoals handles listing a client's goals
// @Summary     List goals
// @Description Get all goals of a client
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Success     200 {array} models.Goal "Goals"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.GetGoals(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// UpdateGoal handles updating a goal by id
// @Summary     Update a goal
// @Description Partially update an owned goal by id
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       goalId path string true "Goal ID"
// @Param       request body UpdateGoalRequest true "Fields to update"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     403 {object} ErrorResponse "Goal belongs to another client"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /clients/{clientId}/goals/{goalId} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	goalID, err := parseUUIDParam(c, "goalId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateGoal(clientID, goalID, services.GoalUpdate{
		Type:        req.Type,
		Subtype:     req.Subtype,
		TargetValue: req.TargetValue,
		TargetDate:  req.TargetDate,
		Version:     req.Version,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal handles deleting a goal
// @Summary     Delete a goal
// @Description Delete an owned goal by id
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       goalId path string true "Goal ID"
// @Success     204 "Deleted"
// @Failure     403 {object} ErrorResponse "Goal belongs to another client"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /clients/{clientId}/goals/{goalId} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	goalID, err := parseUUIDParam(c, "goalId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(clientID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
