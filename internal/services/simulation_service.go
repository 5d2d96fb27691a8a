package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/planning"
)

// simulationService handles compound-growth simulations.
type simulationService struct {
	db *gorm.DB
}

// NewSimulationService creates a new SimulationServicer.
func NewSimulationService(db *gorm.DB) SimulationServicer {
	return &simulationService{db: db}
}

// CreateSimulation projects the growth trajectory and persists the
// simulation together with all its data points in one transaction. The
// series is never recomputed after creation.
func (s *simulationService) CreateSimulation(clientID string, input SimulationInput) (*models.Simulation, error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}
	if input.Years < 1 || input.Years > planning.MaxYears {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "years must be between 1 and 100")
	}
	if input.InitialValue < 0 || input.MonthlyContribution < 0 || input.Rate < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "initial value, monthly contribution, and rate must be non-negative")
	}

	points := planning.Project(input.InitialValue, input.MonthlyContribution, input.Rate, input.Years)

	simulation := &models.Simulation{
		ClientID:            clientID,
		Label:               input.Label,
		Rate:                input.Rate,
		StartDate:           input.StartDate,
		InitialValue:        input.InitialValue,
		MonthlyContribution: input.MonthlyContribution,
		Years:               input.Years,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(simulation).Error; err != nil {
			return err
		}
		dataPoints := make([]models.SimulationDataPoint, 0, len(points))
		for _, p := range points {
			dataPoints = append(dataPoints, models.SimulationDataPoint{
				SimulationID:   simulation.ID,
				Year:           p.Year,
				ProjectedValue: p.ProjectedValue,
			})
		}
		if err := tx.Create(&dataPoints).Error; err != nil {
			return err
		}
		simulation.DataPoints = dataPoints
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return simulation, nil
}

// GetSimulations retrieves a paginated list of a client's simulations,
// newest first.
func (s *simulationService) GetSimulations(clientID string, page pagination.PageRequest) (*pagination.PageResponse[models.Simulation], error) {
	if err := ensureClientExists(s.db, clientID); err != nil {
		return nil, err
	}
	page.Defaults()

	base := s.db.Model(&models.Simulation{}).Where("client_id = ?", clientID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var simulations []models.Simulation
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at desc").Find(&simulations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(simulations, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func (s *simulationService) getOwnedSimulation(clientID, simulationID string) (*models.Simulation, error) {
	var simulation models.Simulation
	if err := s.db.Where("id = ?", simulationID).First(&simulation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSimulationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if simulation.ClientID != clientID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "This simulation does not belong to the specified client")
	}
	return &simulation, nil
}

// GetSimulationData returns an owned simulation's stored series ordered
// by year.
func (s *simulationService) GetSimulationData(clientID, simulationID string) ([]models.SimulationDataPoint, error) {
	if _, err := s.getOwnedSimulation(clientID, simulationID); err != nil {
		return nil, err
	}

	var points []models.SimulationDataPoint
	if err := s.db.Where("simulation_id = ?", simulationID).Order("year asc").Find(&points).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return points, nil
}

// DeleteSimulation removes an owned simulation and its data points.
func (s *simulationService) DeleteSimulation(clientID, simulationID string) error {
	simulation, err := s.getOwnedSimulation(clientID, simulationID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("simulation_id = ?", simulation.ID).Delete(&models.SimulationDataPoint{}).Error; err != nil {
			return err
		}
		return tx.Delete(simulation).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
