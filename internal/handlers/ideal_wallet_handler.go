package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/services"
)

// IdealWalletHandler handles target-allocation requests nested under a client.
type IdealWalletHandler struct {
	idealWalletService services.IdealWalletServicer
}

// NewIdealWalletHandler creates a new IdealWalletHandler.
func NewIdealWalletHandler(idealWalletService services.IdealWalletServicer) *IdealWalletHandler {
	return &IdealWalletHandler{idealWalletService: idealWalletService}
}

// CreateIdealWalletItemRequest represents the request payload for creating
// a target allocation entry.
type CreateIdealWalletItemRequest struct {
	AssetClass string  `json:"asset_class" binding:"required,min=1,max=100"`
	TargetPct  float64 `json:"target_pct" binding:"gte=0,lte=100"`
}

// UpdateIdealWalletItemRequest represents the request payload for updating
// a target allocation entry.
type UpdateIdealWalletItemRequest struct {
	AssetClass *string  `json:"asset_class" binding:"omitempty,min=1,max=100"`
	TargetPct  *float64 `json:"target_pct" binding:"omitempty,gte=0,lte=100"`
}

// CreateIdealWalletItem handles adding a target entry
// @Summary     Create an ideal wallet item
// @Description Add a target allocation entry to a client
// @Tags        ideal-wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       request body CreateIdealWalletItemRequest true "Target details"
// @Success     201 {object} models.IdealWalletItem "Item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/ideal-wallet [post]
func (h *IdealWalletHandler) CreateIdealWalletItem(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIdealWalletItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.idealWalletService.CreateItem(clientID, req.AssetClass, req.TargetPct)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ideal_wallet_item": item})
}

// GetIdealWalletItems handles listing a client's target entries
// @Summary     List ideal wallet items
// @Description Get all target allocation entries of a client
// @Tags        ideal-wallet
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Success     200 {array} models.IdealWalletItem "Ideal wallet items"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/ideal-wallet [get]
func (h *IdealWalletHandler) GetIdealWalletItems(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.idealWalletService.GetItems(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ideal_wallet_items": items})
}

// UpdateIdealWalletItem handles updating a target entry
// @Summary     Update an ideal wallet item
// @Description Partially update an owned target allocation entry
// @Tags        ideal-wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       itemId path string true "Ideal wallet item ID"
// @Param       request body UpdateIdealWalletItemRequest true "Fields to update"
// @Success     200 {object} models.IdealWalletItem "Updated item"
// @Failure     403 {object} ErrorResponse "Item belongs to another client"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /clients/{clientId}/ideal-wallet/{itemId} [put]
func (h *IdealWalletHandler) UpdateIdealWalletItem(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	itemID, err := parseUUIDParam(c, "itemId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIdealWalletItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.idealWalletService.UpdateItem(clientID, itemID, req.AssetClass, req.TargetPct)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ideal_wallet_item": item})
}

// DeleteIdealWalletItem handles removing a target entry
// @Summary     Delete an ideal wallet item
// @Description Delete an owned target allocation entry
// @Tags        ideal-wallet
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       itemId path string true "Ideal wallet item ID"
// @Success     204 "Deleted"
// @Failure     403 {object} ErrorResponse "Item belongs to another client"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /clients/{clientId}/ideal-wallet/{itemId} [delete]
func (h *IdealWalletHandler) DeleteIdealWalletItem(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	itemID, err := parseUUIDParam(c, "itemId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.idealWalletService.DeleteItem(clientID, itemID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
