package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
)

// idealWalletService handles target-allocation entries.
type idealWalletService struct {
	db *gorm.DB
}

// NewIdealWalletService creates a new IdealWalletServicer.
func NewIdealWalletService(db *gorm.DB) IdealWalletServicer {
	return &idealWalletService{db: db}
}

// CreateItem adds a target-allocation entry. Targets for a client are not
// required to sum to 100.
func (s *idealWalletService) CreateItem(clientID, assetClass string, targetPct float64) (*models.IdealWalletItem, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	item := &models.IdealWalletItem{
		ClientID:   clientID,
		AssetClass: assetClass,
		TargetPct:  targetPct,
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// GetItems lists a client's target-allocation entries.
func (s *idealWalletService) GetItems(clientID string) ([]models.IdealWalletItem, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	var items []models.IdealWalletItem
	if err := s.db.Where("client_id = ?", clientID).Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

func (s *idealWalletService) getOwnedItem(clientID, itemID string) (*models.IdealWalletItem, error) {
	var item models.IdealWalletItem
	if err := s.db.Where("id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIdealWalletItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if item.ClientID != clientID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "This ideal wallet item does not belong to the specified client")
	}
	return &item, nil
}

// UpdateItem applies a partial update to an owned target-allocation entry.
func (s *idealWalletService) UpdateItem(clientID, itemID string, assetClass *string, targetPct *float64) (*models.IdealWalletItem, error) {
	item, err := s.getOwnedItem(clientID, itemID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if assetClass != nil {
		updates["asset_class"] = *assetClass
	}
	if targetPct != nil {
		updates["target_pct"] = *targetPct
	}

	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", item.ID).First(item).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return item, nil
}

// DeleteItem removes an owned target-allocation entry.
func (s *idealWalletService) DeleteItem(clientID, itemID string) error {
	item, err := s.getOwnedItem(clientID, itemID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
