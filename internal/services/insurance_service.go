package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
)

// insuranceService handles client insurance policies.
type insuranceService struct {
	db *gorm.DB
}

// NewInsuranceService creates a new InsuranceServicer.
func NewInsuranceService(db *gorm.DB) InsuranceServicer {
	return &insuranceService{db: db}
}

// CreateInsurance adds a coverage policy to a client.
func (s *insuranceService) CreateInsurance(clientID, policyType string, coverageAmount float64) (*models.Insurance, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}
	if coverageAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "coverage amount must be positive")
	}

	policy := &models.Insurance{
		ClientID:       clientID,
		Type:           policyType,
		CoverageAmount: coverageAmount,
	}

	if err := s.db.Create(policy).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return policy, nil
}

// GetInsurances lists a client's coverage policies.
func (s *insuranceService) GetInsurances(clientID string) ([]models.Insurance, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	var policies []models.Insurance
	if err := s.db.Where("client_id = ?", clientID).Find(&policies).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return policies, nil
}

func (s *insuranceService) getOwnedInsurance(clientID, insuranceID string) (*models.Insurance, error) {
	var policy models.Insurance
	if err := s.db.Where("id = ?", insuranceID).First(&policy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInsuranceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if policy.ClientID != clientID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "This insurance policy does not belong to the specified client")
	}
	return &policy, nil
}

// UpdateInsurance applies a partial update to an owned coverage policy.
func (s *insuranceService) UpdateInsurance(clientID, insuranceID string, policyType *string, coverageAmount *float64) (*models.Insurance, error) {
	policy, err := s.getOwnedInsurance(clientID, insuranceID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if policyType != nil && *policyType != "" {
		updates["type"] = *policyType
	}
	if coverageAmount != nil {
		if *coverageAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "coverage amount must be positive")
		}
		updates["coverage_amount"] = *coverageAmount
	}

	if len(updates) > 0 {
		if err := s.db.Model(policy).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", policy.ID).First(policy).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return policy, nil
}

// DeleteInsurance removes an owned coverage policy.
func (s *insuranceService) DeleteInsurance(clientID, insuranceID string) error {
	policy, err := s.getOwnedInsurance(clientID, insuranceID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(policy).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
