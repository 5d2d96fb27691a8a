package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
)

// goalService handles client goals, including the create-or-overwrite
// policy for the (client, type) pair.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// UpsertGoal creates the goal for (client, type) when absent, otherwise
// overwrites the existing row's mutable fields in place. The returned
// created flag tells handlers whether to answer 201 or 200.
//
// The whole decision runs in a transaction backed by the unique index on
// (client_id, type): if a concurrent request wins the insert, the
// duplicate-key error is retried as the update branch, so at most one row
// per pair survives.
func (s *goalService) UpsertGoal(clientID string, input GoalInput) (*models.Goal, bool, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, false, err
	}
	if input.Type == "" {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal type is required")
	}

	var goal *models.Goal
	var created bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.overwriteExisting(tx, clientID, input)
		if err == nil {
			goal = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		fresh := &models.Goal{
			ClientID:    clientID,
			Type:        input.Type,
			Subtype:     input.Subtype,
			TargetValue: input.TargetValue,
			TargetDate:  input.TargetDate,
			Version:     input.Version,
		}
		// On postgres a failed insert aborts the whole transaction, so the
		// attempt runs under a savepoint we can roll back to before retrying.
		if err := tx.SavePoint("goal_insert").Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Create(fresh).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the insert race; the row now exists, overwrite it.
				if err := tx.RollbackTo("goal_insert").Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				existing, retryErr := s.overwriteExisting(tx, clientID, input)
				if retryErr != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, retryErr)
				}
				goal = existing
				return nil
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		goal = fresh
		created = true
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, false, appErr
		}
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, created, nil
}

// overwriteExisting updates the mutable fields of the goal for
// (clientID, input.Type), keeping its id. Returns gorm.ErrRecordNotFound
// when no such goal exists.
func (s *goalService) overwriteExisting(tx *gorm.DB, clientID string, input GoalInput) (*models.Goal, error) {
	var existing models.Goal
	if err := tx.Where("client_id = ? AND type = ?", clientID, input.Type).First(&existing).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"subtype":      input.Subtype,
		"target_value": input.TargetValue,
		"target_date":  input.TargetDate,
		"version":      input.Version,
	}
	if err := tx.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// GetGoals lists a client's goals.
func (s *goalService) GetGoals(clientID string) ([]models.Goal, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	var goals []models.Goal
	if err := s.db.Where("client_id = ?", clientID).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

func (s *goalService) getOwnedGoal(clientID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ?", goalID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if goal.ClientID != clientID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "This goal does not belong to the specified client")
	}
	return &goal, nil
}

// UpdateGoal applies a partial update to an owned goal by id. Unlike
// UpsertGoal, this is plain CRUD with the tenant-ownership check.
func (s *goalService) UpdateGoal(clientID, goalID string, update GoalUpdate) (*models.Goal, error) {
	goal, err := s.getOwnedGoal(clientID, goalID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Type != nil && *update.Type != "" {
		updates["type"] = *update.Type
	}
	if update.Subtype != nil {
		updates["subtype"] = *update.Subtype
	}
	if update.TargetValue != nil {
		updates["target_value"] = *update.TargetValue
	}
	if update.TargetDate != nil {
		updates["target_date"] = *update.TargetDate
	}
	if update.Version != nil {
		updates["version"] = *update.Version
	}

	if len(updates) > 0 {
		if err := s.db.Model(goal).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "a goal of this type already exists for the client")
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", goal.ID).First(goal).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return goal, nil
}

// DeleteGoal removes an owned goal.
func (s *goalService) DeleteGoal(clientID, goalID string) error {
	goal, err := s.getOwnedGoal(clientID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
