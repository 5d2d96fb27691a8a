package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/services"
)

// InsuranceHandler handles insurance requests nested under a client.
type InsuranceHandler struct {
	insuranceService services.InsuranceServicer
}

// NewInsuranceHandler creates a new InsuranceHandler.
func NewInsuranceHandler(insuranceService services.InsuranceServicer) *InsuranceHandler {
	return &InsuranceHandler{insuranceService: insuranceService}
}

// CreateInsuranceRequest represents the request payload for creating a policy.
type CreateInsuranceRequest struct {
	Type           string  `json:"type" binding:"required,min=1,max=100"`
	CoverageAmount float64 `json:"coverage_amount" binding:"required,gt=0"`
}

// UpdateInsuranceRequest represents the request payload for updating a policy.
type UpdateInsuranceRequest struct {
	Type           *string  `json:"type" binding:"omitempty,min=1,max=100"`
	CoverageAmount *float64 `json:"coverage_amount" binding:"omitempty,gt=0"`
}

// CreateInsurance handles adding a coverage policy
// @Summary     Create an insurance policy
// @Description Add a coverage policy to a client
// @Tags        insurance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       request body CreateInsuranceRequest true "Policy details"
// @Success     201 {object} models.Insurance "Policy created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/insurances [post]
func (h *InsuranceHandler) CreateInsurance(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	policy, err := h.insuranceService.CreateInsurance(clientID, req.Type, req.CoverageAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insurance": policy})
}

// GetInsurances handles listing a client's coverage policies
// @Summary     List insurance policies
// @Description Get all coverage policies of a client
// @Tags        insurance
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Success     200 {array} models.Insurance "Policies"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/insurances [get]
func (h *InsuranceHandler) GetInsurances(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	policies, err := h.insuranceService.GetInsurances(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insurances": policies})
}

// UpdateInsurance handles updating a coverage policy
// @Summary     Update an insurance policy
// @Description Partially update an owned coverage policy
// @Tags        insurance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       insuranceId path string true "Insurance ID"
// @Param       request body UpdateInsuranceRequest true "Fields to update"
// @Success     200 {object} models.Insurance "Updated policy"
// @Failure     403 {object} ErrorResponse "Policy belongs to another client"
// @Failure     404 {object} ErrorResponse "Policy not found"
// @Router      /clients/{clientId}/insurances/{insuranceId} [put]
func (h *InsuranceHandler) UpdateInsurance(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	insuranceID, err := parseUUIDParam(c, "insuranceId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	policy, err := h.insuranceService.UpdateInsurance(clientID, insuranceID, req.Type, req.CoverageAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insurance": policy})
}

// DeleteInsurance handles removing a coverage policy
// @Summary     Delete an insurance policy
// @Description Delete an owned coverage policy
// @Tags        insurance
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       insuranceId path string true "Insurance ID"
// @Success     204 "Deleted"
// @Failure     403 {object} ErrorResponse "Policy belongs to another client"
// @Failure     404 {object} ErrorResponse "Policy not found"
// @Router      /clients/{clientId}/insurances/{insuranceId} [delete]
func (h *InsuranceHandler) DeleteInsurance(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	insuranceID, err := parseUUIDParam(c, "insuranceId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.insuranceService.DeleteInsurance(clientID, insuranceID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
