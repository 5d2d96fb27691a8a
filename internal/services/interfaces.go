package services

import (
	"time"

	"wealthdesk/internal/models"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/planning"
)

// UserServicer defines the contract for principal-related business logic.
type UserServicer interface {
	CreateUser(email, password string, role models.Role) (*models.User, error)
	GetUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	GetUserByID(id string) (*models.User, error)
	UpdateUser(id string, fields UserUpdateFields) (*models.User, error)
	DeleteUser(id string) error
	AttemptLogin(email, password string) (*models.User, error)
}

// UserUpdateFields holds the optional fields of a partial user update.
type UserUpdateFields struct {
	Email    *string
	Password *string
	Role     *models.Role
	IsActive *bool
}

// ClientUpdateFields holds the optional fields of a partial client update.
type ClientUpdateFields struct {
	Name          *string
	Email         *string
	Age           *int
	IsActive      *bool
	FamilyProfile *models.FamilyProfile
}

// ClientServicer defines the contract for managed-client business logic,
// including the advisor-facing alignment aggregates.
type ClientServicer interface {
	CreateClient(name, email string, age int, familyProfile models.FamilyProfile) (*models.Client, error)
	GetClients(page pagination.PageRequest) (*pagination.PageResponse[models.Client], error)
	GetClientByID(id string) (*models.Client, error)
	UpdateClient(id string, fields ClientUpdateFields) (*models.Client, error)
	DeleteClient(id string) error
	PlanningDistribution(buckets planning.Buckets) (*planning.DistributionReport, error)
	PlanningSummary() (*planning.SummaryReport, error)
}

// WalletItemInput holds the fields of a new wallet position.
type WalletItemInput struct {
	AssetClass    string
	Percentage    float64
	TotalValue    float64
	Category      string
	Indexer       string
	Custodian     string
	LiquidityDays *int32
}

// WalletItemUpdate holds the optional fields of a partial wallet update.
type WalletItemUpdate struct {
	AssetClass    *string
	Percentage    *float64
	TotalValue    *float64
	Category      *string
	Indexer       *string
	Custodian     *string
	LiquidityDays *int32
}

// WalletServicer defines the contract for actual-allocation positions.
type WalletServicer interface {
	CreateItem(clientID string, input WalletItemInput) (*models.WalletItem, error)
	GetItems(clientID string) ([]models.WalletItem, error)
	UpdateItem(clientID, itemID string, update WalletItemUpdate) (*models.WalletItem, error)
	DeleteItem(clientID, itemID string) error
}

// IdealWalletServicer defines the contract for target-allocation entries.
type IdealWalletServicer interface {
	CreateItem(clientID, assetClass string, targetPct float64) (*models.IdealWalletItem, error)
	GetItems(clientID string) ([]models.IdealWalletItem, error)
	UpdateItem(clientID, itemID string, assetClass *string, targetPct *float64) (*models.IdealWalletItem, error)
	DeleteItem(clientID, itemID string) error
}

// GoalInput holds the fields of a goal create-or-overwrite request.
type GoalInput struct {
	Type        string
	Subtype     string
	TargetValue float64
	TargetDate  time.Time
	Version     int32
}

// GoalUpdate holds the optional fields of a partial goal update by id.
type GoalUpdate struct {
	Type        *string
	Subtype     *string
	TargetValue *float64
	TargetDate  *time.Time
	Version     *int32
}

// GoalServicer defines the contract for client goals. UpsertGoal reports
// whether a new row was created so handlers can answer 201 vs 200.
type GoalServicer interface {
	UpsertGoal(clientID string, input GoalInput) (goal *models.Goal, created bool, err error)
	GetGoals(clientID string) ([]models.Goal, error)
	UpdateGoal(clientID, goalID string, update GoalUpdate) (*models.Goal, error)
	DeleteGoal(clientID, goalID string) error
}

// InsuranceServicer defines the contract for insurance policies.
type InsuranceServicer interface {
	CreateInsurance(clientID, policyType string, coverageAmount float64) (*models.Insurance, error)
	GetInsurances(clientID string) ([]models.Insurance, error)
	UpdateInsurance(clientID, insuranceID string, policyType *string, coverageAmount *float64) (*models.Insurance, error)
	DeleteInsurance(clientID, insuranceID string) error
}

// RetirementProfileInput holds the fields of a new retirement profile.
type RetirementProfileInput struct {
	DesiredIncome       float64
	ExpectedReturn      float64
	PGBLContribution    float64
	RetirementAge       *int32
	CurrentContribution *float64
}

// RetirementProfileUpdate holds the optional fields of a partial profile update.
type RetirementProfileUpdate struct {
	DesiredIncome       *float64
	ExpectedReturn      *float64
	PGBLContribution    *float64
	RetirementAge       *int32
	CurrentContribution *float64
}

// RetirementServicer defines the contract for the per-client retirement
// profile singleton.
type RetirementServicer interface {
	CreateProfile(clientID string, input RetirementProfileInput) (*models.RetirementProfile, error)
	GetProfile(clientID string) (*models.RetirementProfile, error)
	UpdateProfile(clientID string, update RetirementProfileUpdate) (*models.RetirementProfile, error)
	DeleteProfile(clientID string) error
}

// NetWorthServicer defines the contract for patrimony snapshots.
type NetWorthServicer interface {
	CreateSnapshot(clientID string, value float64, date time.Time) (*models.NetWorthSnapshot, error)
	GetSnapshots(clientID string, from, to *time.Time) ([]models.NetWorthSnapshot, error)
	LatestSnapshot(clientID string) (*models.NetWorthSnapshot, error)
	DeleteSnapshot(clientID, snapshotID string) error
}

// SimulationInput holds the fields of a new growth simulation.
type SimulationInput struct {
	Label               string
	Rate                float64
	StartDate           time.Time
	InitialValue        float64
	MonthlyContribution float64
	Years               int
}

// SimulationServicer defines the contract for compound-growth simulations.
// The projected series is computed once at creation and stored immutably.
type SimulationServicer interface {
	CreateSimulation(clientID string, input SimulationInput) (*models.Simulation, error)
	GetSimulations(clientID string, page pagination.PageRequest) (*pagination.PageResponse[models.Simulation], error)
	GetSimulationData(clientID, simulationID string) ([]models.SimulationDataPoint, error)
	DeleteSimulation(clientID, simulationID string) error
}

// EventInput holds the fields of a new cash-flow event.
type EventInput struct {
	Type        string
	Value       float64
	Frequency   models.EventFrequency
	Description string
	StartDate   time.Time
	EndDate     *time.Time
}

// EventUpdate holds the optional fields of a partial event update.
// ClearEndDate removes a stored end date; a nil EndDate alone leaves it
// untouched, so this is the only way to switch an ended event to single.
type EventUpdate struct {
	Type         *string
	Value        *float64
	Frequency    *models.EventFrequency
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
}

// EventServicer defines the contract for client cash-flow events.
type EventServicer interface {
	CreateEvent(clientID string, input EventInput) (*models.Event, error)
	GetEvents(clientID string) ([]models.Event, error)
	UpdateEvent(clientID, eventID string, update EventUpdate) (*models.Event, error)
	DeleteEvent(clientID, eventID string) error
}
