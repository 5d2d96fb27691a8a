package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
)

// retirementService handles the per-client retirement profile singleton.
type retirementService struct {
	db *gorm.DB
}

// NewRetirementService creates a new RetirementServicer.
func NewRetirementService(db *gorm.DB) RetirementServicer {
	return &retirementService{db: db}
}

// CreateProfile creates the client's retirement profile. The unique index
// on client_id is the authority on the one-profile invariant: a concurrent
// duplicate insert surfaces as a Conflict, not a second row.
func (s *retirementService) CreateProfile(clientID string, input RetirementProfileInput) (*models.RetirementProfile, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	profile := &models.RetirementProfile{
		ClientID:            clientID,
		DesiredIncome:       input.DesiredIncome,
		ExpectedReturn:      input.ExpectedReturn,
		PGBLContribution:    input.PGBLContribution,
		RetirementAge:       input.RetirementAge,
		CurrentContribution: input.CurrentContribution,
	}

	if err := s.db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrRetirementProfileExists
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return profile, nil
}

// GetProfile retrieves the client's retirement profile.
func (s *retirementService) GetProfile(clientID string) (*models.RetirementProfile, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	var profile models.RetirementProfile
	if err := s.db.Where("client_id = ?", clientID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRetirementProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// UpdateProfile applies a partial update to the client's retirement profile.
func (s *retirementService) UpdateProfile(clientID string, update RetirementProfileUpdate) (*models.RetirementProfile, error) {
	profile, err := s.GetProfile(clientID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.DesiredIncome != nil {
		updates["desired_income"] = *update.DesiredIncome
	}
	if update.ExpectedReturn != nil {
		updates["expected_return"] = *update.ExpectedReturn
	}
	if update.PGBLContribution != nil {
		updates["pgbl_contribution"] = *update.PGBLContribution
	}
	if update.RetirementAge != nil {
		updates["retirement_age"] = *update.RetirementAge
	}
	if update.CurrentContribution != nil {
		updates["current_contribution"] = *update.CurrentContribution
	}

	if len(updates) > 0 {
		if err := s.db.Model(profile).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", profile.ID).First(profile).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return profile, nil
}

// DeleteProfile removes the client's retirement profile. Deleting twice
// reports NotFound.
func (s *retirementService) DeleteProfile(clientID string) error {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return err
	}

	result := s.db.Where("client_id = ?", clientID).Delete(&models.RetirementProfile{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrRetirementProfileNotFound
	}
	return nil
}
