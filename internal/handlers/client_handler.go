package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/planning"
	"wealthdesk/internal/services"
)

// ClientHandler handles managed-client requests.
type ClientHandler struct {
	clientService services.ClientServicer
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService services.ClientServicer) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClientRequest represents the request payload for creating a client.
type CreateClientRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=255"`
	Email         string `json:"email" binding:"required,email,max=255"`
	Age           int    `json:"age" binding:"required,gte=0,lte=150"`
	FamilyProfile string `json:"family_profile" binding:"omitempty,family_profile"`
}

// UpdateClientRequest represents the request payload for updating a client.
type UpdateClientRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email         *string `json:"email" binding:"omitempty,email,max=255"`
	Age           *int    `json:"age" binding:"omitempty,gte=0,lte=150"`
	IsActive      *bool   `json:"is_active"`
	FamilyProfile *string `json:"family_profile" binding:"omitempty,family_profile"`
}

// CreateClient handles creating a managed client
// @Summary     Create a client
// @Description Register a new managed client
// @Tags        clients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateClientRequest true "Client details"
// @Success     201 {object} models.Client "Client created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already in use"
// @Router      /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	client, err := h.clientService.CreateClient(req.Name, req.Email, req.Age, models.FamilyProfile(req.FamilyProfile))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"client": client})
}

// GetClients handles listing managed clients
// @Summary     List clients
// @Description Get a paginated list of managed clients
// @Tags        clients
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Items per page" default(10)
// @Success     200 {object} pagination.PageResponse[models.Client] "Paginated clients"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /clients [get]
func (h *ClientHandler) GetClients(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.clientService.GetClients(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetClient handles fetching a single managed client
// @Summary     Get a client
// @Description Get a managed client by id
// @Tags        clients
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Success     200 {object} models.Client "Client"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	client, err := h.clientService.GetClientByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client})
}

// UpdateClient handles updating a managed client
// @Summary     Update a client
// @Description Partially update a managed client by id
// @Tags        clients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       request body UpdateClientRequest true "Fields to update"
// @Success     200 {object} models.Client "Updated client"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Failure     409 {object} ErrorResponse "Email already in use"
// @Router      /clients/{clientId} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.ClientUpdateFields{
		Name:     req.Name,
		Email:    req.Email,
		Age:      req.Age,
		IsActive: req.IsActive,
	}
	if req.FamilyProfile != nil {
		profile := models.FamilyProfile(*req.FamilyProfile)
		fields.FamilyProfile = &profile
	}

	client, err := h.clientService.UpdateClient(id, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client})
}

// DeleteClient handles deleting a managed client
// @Summary     Delete a client
// @Description Delete a managed client and all of its planning records
// @Tags        clients
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.clientService.DeleteClient(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPlanningDistribution handles the advisor-facing alignment breakdown
// @Summary     Planning alignment distribution
// @Description Share of scored clients per alignment bucket
// @Tags        clients
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} planning.DistributionReport "Bucket shares"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Router      /clients/planning-distribution [get]
func (h *ClientHandler) GetPlanningDistribution(c *gin.Context) {
	report, err := h.clientService.PlanningDistribution(planning.DefaultBuckets)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetPlanningSummary handles the advisor-facing alignment mean
// @Summary     Planning alignment summary
// @Description Mean alignment score across scored clients
// @Tags        clients
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} planning.SummaryReport "Average score"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Router      /clients/planning-summary [get]
func (h *ClientHandler) GetPlanningSummary(c *gin.Context) {
	report, err := h.clientService.PlanningSummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
