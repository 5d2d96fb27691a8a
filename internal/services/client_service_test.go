package services

import (
	"testing"

	"wealthdesk/internal/models"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/planning"
	"wealthdesk/internal/testutil"
)

func TestCreateClient(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		client, err := svc.CreateClient("Maria Souza", "maria@example.com", 52, models.FamilyProfileAggressive)
		testutil.AssertNoError(t, err)

		if client.ID == "" {
			t.Fatal("expected non-empty client ID")
		}
		if client.FamilyProfile != models.FamilyProfileAggressive {
			t.Errorf("expected aggressive profile, got %s", client.FamilyProfile)
		}
		if !client.IsActive {
			t.Error("expected new client to be active")
		}
	})

	t.Run("defaults_to_conservative_profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		client, err := svc.CreateClient("Joao Lima", "joao@example.com", 30, "")
		testutil.AssertNoError(t, err)

		if client.FamilyProfile != models.FamilyProfileConservative {
			t.Errorf("expected conservative profile, got %s", client.FamilyProfile)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		_, err := svc.CreateClient("First", "same@example.com", 40, models.FamilyProfileModerate)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateClient("Second", "same@example.com", 41, models.FamilyProfileModerate)
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})
}

func TestGetClients(t *testing.T) {
	t.Run("paginated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		for i := 0; i < 15; i++ {
			testutil.CreateTestClient(t, db)
		}

		result, err := svc.GetClients(pagination.PageRequest{Page: 2, PageSize: 10})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 5 {
			t.Errorf("expected 5 clients on page 2, got %d", len(result.Data))
		}
		if result.Meta.TotalItems != 15 {
			t.Errorf("expected 15 total items, got %d", result.Meta.TotalItems)
		}
	})

	t.Run("empty_page_returns_empty_data", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		result, err := svc.GetClients(pagination.PageRequest{Page: 3, PageSize: 10})
		testutil.AssertNoError(t, err)

		if result.Data == nil {
			t.Fatal("expected non-nil data slice")
		}
		if len(result.Data) != 0 {
			t.Errorf("expected empty page, got %d clients", len(result.Data))
		}
	})
}

func TestUpdateClient(t *testing.T) {
	t.Run("partial_update_keeps_other_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)
		client := testutil.CreateTestClient(t, db)

		age := 61
		updated, err := svc.UpdateClient(client.ID, ClientUpdateFields{Age: &age})
		testutil.AssertNoError(t, err)

		if updated.Age != 61 {
			t.Errorf("expected age 61, got %d", updated.Age)
		}
		if updated.Name != client.Name {
			t.Errorf("name should be unchanged, got %s", updated.Name)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		name := "Nobody"
		_, err := svc.UpdateClient("missing", ClientUpdateFields{Name: &name})
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}

func TestDeleteClient(t *testing.T) {
	t.Run("delete_twice_reports_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)
		client := testutil.CreateTestClient(t, db)

		testutil.AssertNoError(t, svc.DeleteClient(client.ID))
		testutil.AssertAppError(t, svc.DeleteClient(client.ID), "CLIENT_NOT_FOUND")
	})
}

func TestPlanningDistribution(t *testing.T) {
	t.Run("classifies_scored_clients", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		// Perfectly aligned client: score 100, above the high cutoff.
		aligned := testutil.CreateTestClient(t, db)
		testutil.CreateTestIdealWalletItem(t, db, aligned.ID, "stocks", 60)
		testutil.CreateTestIdealWalletItem(t, db, aligned.ID, "bonds", 40)
		testutil.CreateTestWalletItem(t, db, aligned.ID, "stocks", 60)
		testutil.CreateTestWalletItem(t, db, aligned.ID, "bonds", 40)

		// Badly misaligned client: gap of 80 points, score 20.
		drifted := testutil.CreateTestClient(t, db)
		testutil.CreateTestIdealWalletItem(t, db, drifted.ID, "stocks", 100)
		testutil.CreateTestWalletItem(t, db, drifted.ID, "stocks", 20)

		// Client with no ideal targets is excluded from the report.
		testutil.CreateTestClient(t, db)

		report, err := svc.PlanningDistribution(planning.DefaultBuckets)
		testutil.AssertNoError(t, err)

		if report.ScoredClients != 2 {
			t.Fatalf("expected 2 scored clients, got %d", report.ScoredClients)
		}
		if report.AboveHigh != 50 {
			t.Errorf("expected 50%% above high, got %d", report.AboveHigh)
		}
		if report.BelowLow != 50 {
			t.Errorf("expected 50%% below low, got %d", report.BelowLow)
		}
		if report.MidToHigh != 0 || report.LowToMid != 0 {
			t.Errorf("expected empty middle buckets, got %d and %d", report.MidToHigh, report.LowToMid)
		}
	})

	t.Run("no_scored_clients", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)
		testutil.CreateTestClient(t, db)

		report, err := svc.PlanningDistribution(planning.DefaultBuckets)
		testutil.AssertNoError(t, err)

		if report.ScoredClients != 0 {
			t.Errorf("expected 0 scored clients, got %d", report.ScoredClients)
		}
	})
}

func TestPlanningSummary(t *testing.T) {
	t.Run("averages_scored_clients", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		aligned := testutil.CreateTestClient(t, db)
		testutil.CreateTestIdealWalletItem(t, db, aligned.ID, "stocks", 50)
		testutil.CreateTestWalletItem(t, db, aligned.ID, "stocks", 50)

		drifted := testutil.CreateTestClient(t, db)
		testutil.CreateTestIdealWalletItem(t, db, drifted.ID, "stocks", 100)
		testutil.CreateTestWalletItem(t, db, drifted.ID, "stocks", 20)

		report, err := svc.PlanningSummary()
		testutil.AssertNoError(t, err)

		if report.ClientCount != 2 {
			t.Fatalf("expected 2 clients, got %d", report.ClientCount)
		}
		if report.AverageScore != 60 {
			t.Errorf("expected average score 60, got %d", report.AverageScore)
		}
	})
}
