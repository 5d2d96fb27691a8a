package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/planning"
)

// clientService handles managed-client business logic.
type clientService struct {
	db *gorm.DB
}

// NewClientService creates a new ClientServicer.
func NewClientService(db *gorm.DB) ClientServicer {
	return &clientService{db: db}
}

// ensureClientExists verifies the owning client of a nested resource.
// Shared by the sibling services in this package.
func ensureClientExists(db *gorm.DB, clientID string) error {
	var count int64
	if err := db.Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrClientNotFound
	}
	return nil
}

// CreateClient registers a new managed client.
func (s *clientService) CreateClient(name, email string, age int, familyProfile models.FamilyProfile) (*models.Client, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "client name is required")
	}
	if familyProfile == "" {
		familyProfile = models.FamilyProfileConservative
	}

	client := &models.Client{
		Name:          name,
		Email:         strings.ToLower(email),
		Age:           age,
		IsActive:      true,
		FamilyProfile: familyProfile,
	}

	if err := s.db.Create(client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return client, nil
}

// GetClients retrieves a paginated list of managed clients.
func (s *clientService) GetClients(page pagination.PageRequest) (*pagination.PageResponse[models.Client], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Client{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var clients []models.Client
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at").Find(&clients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(clients, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetClientByID retrieves a managed client by ID.
func (s *clientService) GetClientByID(id string) (*models.Client, error) {
	var client models.Client
	if err := s.db.Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &client, nil
}

// UpdateClient applies a partial update to a managed client.
func (s *clientService) UpdateClient(id string, fields ClientUpdateFields) (*models.Client, error) {
	client, err := s.GetClientByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Email != nil && *fields.Email != "" {
		updates["email"] = strings.ToLower(*fields.Email)
	}
	if fields.Age != nil {
		updates["age"] = *fields.Age
	}
	if fields.IsActive != nil {
		updates["is_active"] = *fields.IsActive
	}
	if fields.FamilyProfile != nil {
		updates["family_profile"] = *fields.FamilyProfile
	}

	if len(updates) > 0 {
		if err := s.db.Model(client).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrDuplicateEmail
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", client.ID).First(client).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return client, nil
}

// DeleteClient removes a managed client and, via FK cascade, its planning
// records. Deleting twice reports NotFound.
func (s *clientService) DeleteClient(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Client{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrClientNotFound
	}
	return nil
}

// alignmentScores loads every client's wallet and ideal-wallet rows in one
// pass and computes the per-client alignment score. Clients without ideal
// targets are skipped entirely.
func (s *clientService) alignmentScores() ([]float64, error) {
	type allocationRow struct {
		ClientID   string
		AssetClass string
		Percentage float64
	}

	var targets []allocationRow
	if err := s.db.Model(&models.IdealWalletItem{}).
		Select("client_id, asset_class, target_pct as percentage").
		Scan(&targets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var actuals []allocationRow
	if err := s.db.Model(&models.WalletItem{}).
		Select("client_id, asset_class, percentage").
		Scan(&actuals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	targetsByClient := make(map[string]map[string]float64)
	for _, row := range targets {
		if targetsByClient[row.ClientID] == nil {
			targetsByClient[row.ClientID] = make(map[string]float64)
		}
		targetsByClient[row.ClientID][row.AssetClass] = row.Percentage
	}

	actualsByClient := make(map[string]map[string]float64)
	for _, row := range actuals {
		if actualsByClient[row.ClientID] == nil {
			actualsByClient[row.ClientID] = make(map[string]float64)
		}
		actualsByClient[row.ClientID][row.AssetClass] = row.Percentage
	}

	scores := make([]float64, 0, len(targetsByClient))
	for clientID, clientTargets := range targetsByClient {
		if score, ok := planning.Score(actualsByClient[clientID], clientTargets); ok {
			scores = append(scores, score)
		}
	}
	return scores, nil
}

// PlanningDistribution reports the share of clients per alignment bucket.
func (s *clientService) PlanningDistribution(buckets planning.Buckets) (*planning.DistributionReport, error) {
	scores, err := s.alignmentScores()
	if err != nil {
		return nil, err
	}
	report := planning.Distribute(scores, buckets)
	return &report, nil
}

// PlanningSummary reports the mean alignment score across scored clients.
func (s *clientService) PlanningSummary() (*planning.SummaryReport, error) {
	scores, err := s.alignmentScores()
	if err != nil {
		return nil, err
	}
	report := planning.Summarize(scores)
	return &report, nil
}
