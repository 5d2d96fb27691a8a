package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
)

// eventService handles client cash-flow events.
type eventService struct {
	db *gorm.DB
}

// NewEventService creates a new EventServicer.
func NewEventService(db *gorm.DB) EventServicer {
	return &eventService{db: db}
}

// checkEventInvariants enforces the frequency/date rules: a single event
// carries no end date, and an end date never precedes the start.
func checkEventInvariants(input EventInput) error {
	if input.Frequency == models.EventFrequencySingle && input.EndDate != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "single events must not have an end date")
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "end date must not be before start date")
	}
	return nil
}

// CreateEvent records a cash-flow event for a client.
func (s *eventService) CreateEvent(clientID string, input EventInput) (*models.Event, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}
	if err := checkEventInvariants(input); err != nil {
		return nil, err
	}

	event := &models.Event{
		ClientID:    clientID,
		Type:        input.Type,
		Value:       input.Value,
		Frequency:   input.Frequency,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	if err := s.db.Create(event).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return event, nil
}

// GetEvents lists a client's events ordered by start date.
func (s *eventService) GetEvents(clientID string) ([]models.Event, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}

	var events []models.Event
	if err := s.db.Where("client_id = ?", clientID).Order("start_date asc").Find(&events).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return events, nil
}

func (s *eventService) getOwnedEvent(clientID, eventID string) (*models.Event, error) {
	var event models.Event
	if err := s.db.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if event.ClientID != clientID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "This event does not belong to the specified client")
	}
	return &event, nil
}

// UpdateEvent applies a partial update, re-checking the date invariants
// against the merged result.
func (s *eventService) UpdateEvent(clientID, eventID string, update EventUpdate) (*models.Event, error) {
	event, err := s.getOwnedEvent(clientID, eventID)
	if err != nil {
		return nil, err
	}

	if update.ClearEndDate && update.EndDate != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cannot set and clear the end date in the same request")
	}

	merged := EventInput{
		Frequency: event.Frequency,
		StartDate: event.StartDate,
		EndDate:   event.EndDate,
	}
	if update.Frequency != nil {
		merged.Frequency = *update.Frequency
	}
	if update.StartDate != nil {
		merged.StartDate = *update.StartDate
	}
	if update.ClearEndDate {
		merged.EndDate = nil
	} else if update.EndDate != nil {
		merged.EndDate = update.EndDate
	}
	if err := checkEventInvariants(merged); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Type != nil && *update.Type != "" {
		updates["type"] = *update.Type
	}
	if update.Value != nil {
		updates["value"] = *update.Value
	}
	if update.Frequency != nil {
		updates["frequency"] = *update.Frequency
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.StartDate != nil {
		updates["start_date"] = *update.StartDate
	}
	if update.ClearEndDate {
		updates["end_date"] = nil
	} else if update.EndDate != nil {
		updates["end_date"] = *update.EndDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(event).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", event.ID).First(event).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return event, nil
}

// DeleteEvent removes an owned event.
func (s *eventService) DeleteEvent(clientID, eventID string) error {
	event, err := s.getOwnedEvent(clientID, eventID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(event).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
