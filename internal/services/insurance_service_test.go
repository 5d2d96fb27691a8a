package services

import (
	"testing"

	"wealthdesk/internal/testutil"
)

func TestCreateInsurance(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInsuranceService(db)
		client := testutil.CreateTestClient(t, db)

		policy, err := svc.CreateInsurance(client.ID, "life", 750000)
		testutil.AssertNoError(t, err)

		if policy.ID == "" {
			t.Fatal("expected non-empty policy ID")
		}
		if policy.CoverageAmount != 750000 {
			t.Errorf("expected coverage 750000, got %f", policy.CoverageAmount)
		}
	})

	t.Run("non_positive_coverage", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInsuranceService(db)
		client := testutil.CreateTestClient(t, db)

		_, err := svc.CreateInsurance(client.ID, "life", 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateInsurance(t *testing.T) {
	t.Run("belongs_to_other_client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInsuranceService(db)
		owner := testutil.CreateTestClient(t, db)
		other := testutil.CreateTestClient(t, db)
		policy := testutil.CreateTestInsurance(t, db, owner.ID)

		amount := 1.0
		_, err := svc.UpdateInsurance(other.ID, policy.ID, nil, &amount)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("rejects_non_positive_coverage", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInsuranceService(db)
		client := testutil.CreateTestClient(t, db)
		policy := testutil.CreateTestInsurance(t, db, client.ID)

		amount := -10.0
		_, err := svc.UpdateInsurance(client.ID, policy.ID, nil, &amount)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteInsurance(t *testing.T) {
	t.Run("delete_twice_reports_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInsuranceService(db)
		client := testutil.CreateTestClient(t, db)
		policy := testutil.CreateTestInsurance(t, db, client.ID)

		testutil.AssertNoError(t, svc.DeleteInsurance(client.ID, policy.ID))
		testutil.AssertAppError(t, svc.DeleteInsurance(client.ID, policy.ID), "INSURANCE_NOT_FOUND")
	})
}
