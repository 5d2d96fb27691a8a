package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"wealthdesk/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAdvisor creates an advisor user with a hashed password and
// unique email.
func CreateTestAdvisor(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("advisor%d@test.com", nextID())
	return CreateTestUser(t, db, email, models.RoleAdvisor)
}

// CreateTestViewer creates a viewer user with a hashed password and
// unique email.
func CreateTestViewer(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("viewer%d@test.com", nextID())
	return CreateTestUser(t, db, email, models.RoleViewer)
}

// CreateTestUser creates a user with the given email and role. The
// password is always "password123".
func CreateTestUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestClient creates a client with a unique email.
func CreateTestClient(t *testing.T, db *gorm.DB) *models.Client {
	t.Helper()

	n := nextID()
	client := &models.Client{
		Name:          fmt.Sprintf("Test Client %d", n),
		Email:         fmt.Sprintf("client%d@test.com", n),
		Age:           40,
		IsActive:      true,
		FamilyProfile: models.FamilyProfileModerate,
	}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}

// CreateTestWalletItem creates an actual allocation entry for the client.
func CreateTestWalletItem(t *testing.T, db *gorm.DB, clientID, assetClass string, percentage float64) *models.WalletItem {
	t.Helper()

	item := &models.WalletItem{
		ClientID:   clientID,
		AssetClass: assetClass,
		Percentage: percentage,
		TotalValue: percentage * 1000,
		Category:   "test",
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test wallet item: %v", err)
	}
	return item
}

// CreateTestIdealWalletItem creates a target allocation entry for the client.
func CreateTestIdealWalletItem(t *testing.T, db *gorm.DB, clientID, assetClass string, targetPct float64) *models.IdealWalletItem {
	t.Helper()

	item := &models.IdealWalletItem{
		ClientID:   clientID,
		AssetClass: assetClass,
		TargetPct:  targetPct,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test ideal wallet item: %v", err)
	}
	return item
}

// CreateTestGoal creates a goal of the given type for the client.
func CreateTestGoal(t *testing.T, db *gorm.DB, clientID, goalType string) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		ClientID:    clientID,
		Type:        goalType,
		TargetValue: 100000,
		TargetDate:  time.Now().AddDate(10, 0, 0),
		Version:     1,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestInsurance creates a coverage policy for the client.
func CreateTestInsurance(t *testing.T, db *gorm.DB, clientID string) *models.Insurance {
	t.Helper()

	policy := &models.Insurance{
		ClientID:       clientID,
		Type:           "life",
		CoverageAmount: 500000,
	}
	if err := db.Create(policy).Error; err != nil {
		t.Fatalf("failed to create test insurance: %v", err)
	}
	return policy
}

// CreateTestSnapshot creates a net-worth snapshot dated the given time.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, clientID string, value float64, date time.Time) *models.NetWorthSnapshot {
	t.Helper()

	snapshot := &models.NetWorthSnapshot{
		ClientID: clientID,
		Value:    value,
		Date:     date,
	}
	if err := db.Create(snapshot).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snapshot
}

// CreateTestEvent creates a single cash-flow event for the client.
func CreateTestEvent(t *testing.T, db *gorm.DB, clientID string) *models.Event {
	t.Helper()

	event := &models.Event{
		ClientID:  clientID,
		Type:      "income",
		Value:     1000,
		Frequency: models.EventFrequencySingle,
		StartDate: time.Now(),
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
	return event
}
