package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
)

// walletService handles actual-allocation positions.
type walletService struct {
	db *gorm.DB
}

// NewWalletService creates a new WalletServicer.
func NewWalletService(db *gorm.DB) WalletServicer {
	return &walletService{db: db}
}

// CreateItem adds a wallet position to a client's portfolio.
func (s *walletService) CreateItem(clientID string, input WalletItemInput) (*models.WalletItem, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	item := &models.WalletItem{
		ClientID:      clientID,
		AssetClass:    input.AssetClass,
		Percentage:    input.Percentage,
		TotalValue:    input.TotalValue,
		Category:      input.Category,
		Indexer:       input.Indexer,
		Custodian:     input.Custodian,
		LiquidityDays: input.LiquidityDays,
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// GetItems lists a client's wallet positions.
func (s *walletService) GetItems(clientID string) ([]models.WalletItem, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	var items []models.WalletItem
	if err := s.db.Where("client_id = ?", clientID).Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// getOwnedItem loads a wallet item and enforces tenant ownership: an
// unknown id is NotFound, a known id under a different client is Forbidden.
func (s *walletService) getOwnedItem(clientID, itemID string) (*models.WalletItem, error) {
	var item models.WalletItem
	if err := s.db.Where("id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWalletItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if item.ClientID != clientID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "This wallet item does not belong to the specified client")
	}
	return &item, nil
}

// UpdateItem applies a partial update to an owned wallet position.
func (s *walletService) UpdateItem(clientID, itemID string, update WalletItemUpdate) (*models.WalletItem, error) {
	item, err := s.getOwnedItem(clientID, itemID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.AssetClass != nil {
		updates["asset_class"] = *update.AssetClass
	}
	if update.Percentage != nil {
		updates["percentage"] = *update.Percentage
	}
	if update.TotalValue != nil {
		updates["total_value"] = *update.TotalValue
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Indexer != nil {
		updates["indexer"] = *update.Indexer
	}
	if update.Custodian != nil {
		updates["custodian"] = *update.Custodian
	}
	if update.LiquidityDays != nil {
		updates["liquidity_days"] = *update.LiquidityDays
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

// DeleteItem removes an owned wallet position.
func (s *walletService) DeleteItem(clientID, itemID string) error {
	item, err := s.getOwnedItem(clientID, itemID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
