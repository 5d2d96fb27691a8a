package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/services"
)

// SimulationHandler handles growth-simulation requests nested under a client.
type SimulationHandler struct {
	simulationService services.SimulationServicer
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulationService services.SimulationServicer) *SimulationHandler {
	return &SimulationHandler{simulationService: simulationService}
}

// CreateSimulationRequest represents the request payload for creating a
// compound-growth simulation.
type CreateSimulationRequest struct {
	Label               string    `json:"label" binding:"required,min=1,max=255"`
	Rate                float64   `json:"rate" binding:"gte=0,lte=100"`
	StartDate           time.Time `json:"start_date" binding:"required"`
	InitialValue        float64   `json:"initial_value" binding:"gte=0"`
	MonthlyContribution float64   `json:"monthly_contribution" binding:"gte=0"`
	Years               int       `json:"years" binding:"required,gte=1,lte=100"`
}

// CreateSimulation handles creating a growth simulation
// @Summary     Create a simulation
// @Description Project compound growth and store the resulting series
// @Tags        simulations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       request body CreateSimulationRequest true "Simulation parameters"
// @Success     201 {object} models.Simulation "Simulation created with data points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/simulations [post]
func (h *SimulationHandler) CreateSimulation(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	simulation, err := h.simulationService.CreateSimulation(clientID, services.SimulationInput{
		Label:               req.Label,
		Rate:                req.Rate,
		StartDate:           req.StartDate,
		InitialValue:        req.InitialValue,
		MonthlyContribution: req.MonthlyContribution,
		Years:               req.Years,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"simulation": simulation})
}

// GetSimulations handles listing a client's simulations
// @Summary     List simulations
// @Description Get a paginated list of a client's simulations, newest first
// @Tags        simulations
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Items per page" default(10)
// @Success     200 {object} pagination.PageResponse[models.Simulation] "Paginated simulations"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/simulations [get]
func (h *SimulationHandler) GetSimulations(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.simulationService.GetSimulations(clientID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSimulationData handles fetching a simulation's stored series
// @Summary     Get simulation data
// @Description Get the stored projection series of a simulation, ordered by year
// @Tags        simulations
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       simulationId path string true "Simulation ID"
// @Success     200 {array} models.SimulationDataPoint "Data points"
// @Failure     403 {object} ErrorResponse "Simulation belongs to another client"
// @Failure     404 {object} ErrorResponse "Simulation not found"
// @Router      /clients/{clientId}/simulations/{simulationId}/data [get]
func (h *SimulationHandler) GetSimulationData(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	simulationID, err := parseUUIDParam(c, "simulationId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.simulationService.GetSimulationData(clientID, simulationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data_points": points})
}

// DeleteSimulation handles removing a simulation
// @Summary     Delete a simulation
// @Description Delete an owned simulation and its data points
// @Tags        simulations
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       simulationId path string true "Simulation ID"
// @Success     204 "Deleted"
// @Failure     403 {object} ErrorResponse "Simulation belongs to another client"
// @Failure     404 {object} ErrorResponse "Simulation not found"
// @Router      /clients/{clientId}/simulations/{simulationId} [delete]
func (h *SimulationHandler) DeleteSimulation(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	simulationID, err := parseUUIDParam(c, "simulationId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.simulationService.DeleteSimulation(clientID, simulationID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
