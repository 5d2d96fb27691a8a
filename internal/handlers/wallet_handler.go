package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/services"
)

// WalletHandler handles actual-allocation requests nested under a client.
type WalletHandler struct {
	walletService services.WalletServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// CreateWalletItemRequest represents the request payload for creating a
// wallet position.
type CreateWalletItemRequest struct {
	AssetClass    string  `json:"asset_class" binding:"required,min=1,max=100"`
	Percentage    float64 `json:"percentage" binding:"gte=0,lte=100"`
	TotalValue    float64 `json:"total_value" binding:"gte=0"`
	Category      string  `json:"category" binding:"required,min=1,max=100"`
	Indexer       string  `json:"indexer" binding:"max=100"`
	Custodian     string  `json:"custodian" binding:"max=100"`
	LiquidityDays *int32  `json:"liquidity_days" binding:"omitempty,gte=0"`
}

// UpdateWalletItemRequest represents the request payload for updating a
// wallet position.
type UpdateWalletItemRequest struct {
	AssetClass    *string  `json:"asset_class" binding:"omitempty,min=1,max=100"`
	Percentage    *float64 `json:"percentage" binding:"omitempty,gte=0,lte=100"`
	TotalValue    *float64 `json:"total_value" binding:"omitempty,gte=0"`
	Category      *string  `json:"category" binding:"omitempty,min=1,max=100"`
	Indexer       *string  `json:"indexer" binding:"omitempty,max=100"`
	Custodian     *string  `json:"custodian" binding:"omitempty,max=100"`
	LiquidityDays *int32   `json:"liquidity_days" binding:"omitempty,gte=0"`
}

// CreateWalletItem handles adding a position to a client's wallet
// @Summary     Create a wallet item
// @Description Add an actual allocation position to a client
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       request body CreateWalletItemRequest true "Position details"
// @Success     201 {object} models.WalletItem "Item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/wallet [post]
func (h *WalletHandler) CreateWalletItem(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateWalletItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.walletService.CreateItem(clientID, services.WalletItemInput{
		AssetClass:    req.AssetClass,
		Percentage:    req.Percentage,
		TotalValue:    req.TotalValue,
		Category:      req.Category,
		Indexer:       req.Indexer,
		Custodian:     req.Custodian,
		LiquidityDays: req.LiquidityDays,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"wallet_item": item})
}

// GetWalletItems handles listing a client's wallet positions
// @Summary     List wallet items
// @Description Get all actual allocation positions of a client
// @Tags        wallet
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Success     200 {array} models.WalletItem "Wallet items"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/wallet [get]
func (h *WalletHandler) GetWalletItems(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.walletService.GetItems(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet_items": items})
}

// UpdateWalletItem handles updating a wallet position
// @Summary     Update a wallet item
// @Description Partially update an owned wallet position
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       itemId path string true "Wallet item ID"
// @Param       request body UpdateWalletItemRequest true "Fields to update"
// @Success     200 {object} models.WalletItem "Updated item"
// @Failure     403 {object} ErrorResponse "Item belongs to another client"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /clients/{clientId}/wallet/{itemId} [put]
func (h *WalletHandler) UpdateWalletItem(c *gin.Context) {
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

	var req UpdateWalletItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.walletService.UpdateItem(clientID, itemID, services.WalletItemUpdate{
		AssetClass:    req.AssetClass,
		Percentage:    req.Percentage,
		TotalValue:    req.TotalValue,
		Category:      req.Category,
		Indexer:       req.Indexer,
		Custodian:     req.Custodian,
		LiquidityDays: req.LiquidityDays,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet_item": item})
}

// DeleteWalletItem handles removing a wallet position
// @Summary     Delete a wallet item
// @Description Delete an owned wallet position
// @Tags        wallet
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       itemId path string true "Wallet item ID"
// @Success     204 "Deleted"
// @Failure     403 {object} ErrorResponse "Item belongs to another client"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /clients/{clientId}/wallet/{itemId} [delete]
func (h *WalletHandler) DeleteWalletItem(c *gin.Context) {
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

	if err := h.walletService.DeleteItem(clientID, itemID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
