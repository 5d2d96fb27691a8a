package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/services"
)

// RetirementHandler handles retirement-profile requests nested under a client.
type RetirementHandler struct {
	retirementService services.RetirementServicer
}

// NewRetirementHandler creates a new RetirementHandler.
func NewRetirementHandler(retirementService services.RetirementServicer) *RetirementHandler {
	return &RetirementHandler{retirementService: retirementService}
}

// CreateRetirementProfileRequest represents the request payload for creating
// a retirement profile.
type CreateRetirementProfileRequest struct {
	DesiredIncome       float64  `json:"desired_income" binding:"required,gt=0"`
	ExpectedReturn      float64  `json:"expected_return" binding:"gte=0,lte=100"`
	PGBLContribution    float64  `json:"pgbl_contribution" binding:"gte=0"`
	RetirementAge       *int32   `json:"retirement_age" binding:"omitempty,gte=18,lte=120"`
	CurrentContribution *float64 `json:"current_contribution" binding:"omitempty,gte=0"`
}

// UpdateRetirementProfileRequest represents the request payload for updating
// a retirement profile.
type UpdateRetirementProfileRequest struct {
	DesiredIncome       *float64 `json:"desired_income" binding:"omitempty,gt=0"`
	ExpectedReturn      *float64 `json:"expected_return" binding:"omitempty,gte=0,lte=100"`
	PGBLContribution    *float64 `json:"pgbl_contribution" binding:"omitempty,gte=0"`
	RetirementAge       *int32   `json:"retirement_age" binding:"omitempty,gte=18,lte=120"`
	CurrentContribution *float64 `json:"current_contribution" binding:"omitempty,gte=0"`
}

// CreateRetirementProfile handles creating the client's retirement profile
// @Summary     Create a retirement profile
// @Description Create the client's single retirement profile
// @Tags        retirement
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       request body CreateRetirementProfileRequest true "Profile details"
// @Success     201 {object} models.RetirementProfile "Profile created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Failure     409 {object} ErrorResponse "Profile already exists"
// @Router      /clients/{clientId}/retirement [post]
func (h *RetirementHandler) CreateRetirementProfile(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRetirementProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.retirementService.CreateProfile(clientID, services.RetirementProfileInput{
		DesiredIncome:       req.DesiredIncome,
		ExpectedReturn:      req.ExpectedReturn,
		PGBLContribution:    req.PGBLContribution,
		RetirementAge:       req.RetirementAge,
		CurrentContribution: req.CurrentContribution,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"retirement_profile": profile})
}

// GetRetirementProfile handles fetching the client's retirement profile
// @Summary     Get the retirement profile
// @Description Get the client's retirement profile
// @Tags        retirement
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Success     200 {object} models.RetirementProfile "Profile"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Router      /clients/{clientId}/retirement [get]
func (h *RetirementHandler) GetRetirementProfile(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.retirementService.GetProfile(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"retirement_profile": profile})
}

// UpdateRetirementProfile handles updating the client's retirement profile
// @Summary     Update the retirement profile
// @Description Partially update the client's retirement profile
// @Tags        retirement
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       request body UpdateRetirementProfileRequest true "Fields to update"
// @Success     200 {object} models.RetirementProfile "Updated profile"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Router      /clients/{clientId}/retirement [put]
func (h *RetirementHandler) UpdateRetirementProfile(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateRetirementProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.retirementService.UpdateProfile(clientID, services.RetirementProfileUpdate{
		DesiredIncome:       req.DesiredIncome,
		ExpectedReturn:      req.ExpectedReturn,
		PGBLContribution:    req.PGBLContribution,
		RetirementAge:       req.RetirementAge,
		CurrentContribution: req.CurrentContribution,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"retirement_profile": profile})
}

// DeleteRetirementProfile handles removing the client's retirement profile
// @Summary     Delete the retirement profile
// @Description Delete the client's retirement profile
// @Tags        retirement
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Router      /clients/{clientId}/retirement [delete]
func (h *RetirementHandler) DeleteRetirementProfile(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.retirementService.DeleteProfile(clientID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
