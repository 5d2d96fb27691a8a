package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/services"
)

// NetWorthHandler handles patrimony-snapshot requests nested under a client.
type NetWorthHandler struct {
	netWorthService services.NetWorthServicer
}

// NewNetWorthHandler creates a new NetWorthHandler.
func NewNetWorthHandler(netWorthService services.NetWorthServicer) *NetWorthHandler {
	return &NetWorthHandler{netWorthService: netWorthService}
}

// CreateSnapshotRequest represents the request payload for recording a
// patrimony snapshot.
type CreateSnapshotRequest struct {
	Value float64   `json:"value" binding:"required"`
	Date  time.Time `json:"date" binding:"required"`
}

// snapshotRangeQuery holds the optional date-range filter of the list
// endpoint. Dates use YYYY-MM-DD.
type snapshotRangeQuery struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// CreateSnapshot handles recording a patrimony snapshot
// @Summary     Create a net worth snapshot
// @Description Record a dated patrimony value for a client
// @Tags        net-worth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       request body CreateSnapshotRequest true "Snapshot details"
// @Success     201 {object} models.NetWorthSnapshot "Snapshot created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/net-worth [post]
func (h *NetWorthHandler) CreateSnapshot(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	snapshot, err := h.netWorthService.CreateSnapshot(clientID, req.Value, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}

// GetSnapshots handles listing a client's patrimony history
// @Summary     List net worth snapshots
// @Description Get a client's snapshots ordered by date, optionally within a range
// @Tags        net-worth
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       from query string false "Range start (YYYY-MM-DD)"
// @Param       to query string false "Range end (YYYY-MM-DD)"
// @Success     200 {array} models.NetWorthSnapshot "Snapshots"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/net-worth [get]
func (h *NetWorthHandler) GetSnapshots(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query snapshotRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var from, to *time.Time
	if query.From != "" {
		parsed, _ := time.Parse("2006-01-02", query.From)
		from = &parsed
	}
	if query.To != "" {
		parsed, _ := time.Parse("2006-01-02", query.To)
		// Include the whole end day.
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
		to = &parsed
	}

	snapshots, err := h.netWorthService.GetSnapshots(clientID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots})
}

// GetLatestSnapshot handles fetching the most recent snapshot
// @Summary     Get the latest net worth snapshot
// @Description Get a client's most recent patrimony measurement
// @Tags        net-worth
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Success     200 {object} models.NetWorthSnapshot "Latest snapshot"
// @Failure     404 {object} ErrorResponse "No snapshots recorded"
// @Router      /clients/{clientId}/net-worth/latest [get]
func (h *NetWorthHandler) GetLatestSnapshot(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := h.netWorthService.LatestSnapshot(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot": snapshot})
}

// DeleteSnapshot handles removing a snapshot
// @Summary     Delete a net worth snapshot
// @Description Delete an owned snapshot
// @Tags        net-worth
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       snapshotId path string true "Snapshot ID"
// @Success     204 "Deleted"
// @Failure     403 {object} ErrorResponse "Snapshot belongs to another client"
// @Failure     404 {object} ErrorResponse "Snapshot not found"
// @Router      /clients/{clientId}/net-worth/{snapshotId} [delete]
func (h *NetWorthHandler) DeleteSnapshot(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	snapshotID, err := parseUUIDParam(c, "snapshotId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.netWorthService.DeleteSnapshot(clientID, snapshotID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
