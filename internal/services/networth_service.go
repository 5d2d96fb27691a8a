package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
)

// netWorthService handles patrimony snapshots.
type netWorthService struct {
	db *gorm.DB
}

// NewNetWorthService creates a new NetWorthServicer.
func NewNetWorthService(db *gorm.DB) NetWorthServicer {
	return &netWorthService{db: db}
}

// CreateSnapshot records a dated patrimony value for a client.
func (s *netWorthService) CreateSnapshot(clientID string, value float64, date time.Time) (*models.NetWorthSnapshot, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	snapshot := &models.NetWorthSnapshot{
		ClientID: clientID,
		Value:    value,
		Date:     date,
	}

	if err := s.db.Create(snapshot).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshot, nil
}

// GetSnapshots lists a client's snapshots ordered by date, optionally
// restricted to a date range.
func (s *netWorthService) GetSnapshots(clientID string, from, to *time.Time) ([]models.NetWorthSnapshot, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	query := s.db.Where("client_id = ?", clientID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var snapshots []models.NetWorthSnapshot
	if err := query.Order("date asc").Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshots, nil
}

// LatestSnapshot returns the client's most recent patrimony measurement.
func (s *netWorthService) LatestSnapshot(clientID string) (*models.NetWorthSnapshot, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	var snapshot models.NetWorthSnapshot
	if err := s.db.Where("client_id = ?", clientID).Order("date desc").First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSnapshotNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &snapshot, nil
}

// DeleteSnapshot removes an owned snapshot.
func (s *netWorthService) DeleteSnapshot(clientID, snapshotID string) error {
	var snapshot models.NetWorthSnapshot
	if err := s.db.Where("id = ?", snapshotID).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSnapshotNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if snapshot.ClientID != clientID {
		return apperrors.WithMessage(apperrors.ErrForbidden, "This snapshot does not belong to the specified client")
	}

	if err := s.db.Delete(&snapshot).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
