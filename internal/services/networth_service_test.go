package services

import (
	"testing"
	"time"

	"wealthdesk/internal/testutil"
)

func TestCreateSnapshot(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNetWorthService(db)
		client := testutil.CreateTestClient(t, db)

		snapshot, err := svc.CreateSnapshot(client.ID, 850000, time.Now())
		testutil.AssertNoError(t, err)

		if snapshot.ID == "" {
			t.Fatal("expected non-empty snapshot ID")
		}
		if snapshot.Value != 850000 {
			t.Errorf("expected value 850000, got %f", snapshot.Value)
		}
	})

	t.Run("unknown_client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNetWorthService(db)

		_, err := svc.CreateSnapshot("missing", 1000, time.Now())
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}

func TestGetSnapshots(t *testing.T) {
	t.Run("ordered_by_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNetWorthService(db)
		client := testutil.CreateTestClient(t, db)

		now := time.Now()
		testutil.CreateTestSnapshot(t, db, client.ID, 300, now)
		testutil.CreateTestSnapshot(t, db, client.ID, 100, now.AddDate(-1, 0, 0))
		testutil.CreateTestSnapshot(t, db, client.ID, 200, now.AddDate(0, -6, 0))

		snapshots, err := svc.GetSnapshots(client.ID, nil, nil)
		testutil.AssertNoError(t, err)

		if len(snapshots) != 3 {
			t.Fatalf("expected 3 snapshots, got %d", len(snapshots))
		}
		if snapshots[0].Value != 100 || snapshots[1].Value != 200 || snapshots[2].Value != 300 {
			t.Errorf("snapshots out of date order: %f, %f, %f", snapshots[0].Value, snapshots[1].Value, snapshots[2].Value)
		}
	})

	t.Run("date_range_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNetWorthService(db)
		client := testutil.CreateTestClient(t, db)

		now := time.Now()
		testutil.CreateTestSnapshot(t, db, client.ID, 100, now.AddDate(-2, 0, 0))
		testutil.CreateTestSnapshot(t, db, client.ID, 200, now.AddDate(-1, 0, 0))
		testutil.CreateTestSnapshot(t, db, client.ID, 300, now)

		from := now.AddDate(-1, 0, -1)
		to := now.AddDate(0, 0, -1)
		snapshots, err := svc.GetSnapshots(client.ID, &from, &to)
		testutil.AssertNoError(t, err)

		if len(snapshots) != 1 {
			t.Fatalf("expected 1 snapshot in range, got %d", len(snapshots))
		}
		if snapshots[0].Value != 200 {
			t.Errorf("expected the middle snapshot, got value %f", snapshots[0].Value)
		}
	})
}

func TestLatestSnapshot(t *testing.T) {
	t.Run("returns_most_recent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNetWorthService(db)
		client := testutil.CreateTestClient(t, db)

		now := time.Now()
		testutil.CreateTestSnapshot(t, db, client.ID, 100, now.AddDate(-1, 0, 0))
		testutil.CreateTestSnapshot(t, db, client.ID, 200, now)

		latest, err := svc.LatestSnapshot(client.ID)
		testutil.AssertNoError(t, err)

		if latest.Value != 200 {
			t.Errorf("expected latest value 200, got %f", latest.Value)
		}
	})

	t.Run("no_snapshots", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNetWorthService(db)
		client := testutil.CreateTestClient(t, db)

		_, err := svc.LatestSnapshot(client.ID)
		testutil.AssertAppError(t, err, "SNAPSHOT_NOT_FOUND")
	})
}

func TestDeleteSnapshot(t *testing.T) {
	t.Run("belongs_to_other_client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNetWorthService(db)
		owner := testutil.CreateTestClient(t, db)
		other := testutil.CreateTestClient(t, db)
		snapshot := testutil.CreateTestSnapshot(t, db, owner.ID, 100, time.Now())

		testutil.AssertAppError(t, svc.DeleteSnapshot(other.ID, snapshot.ID), "FORBIDDEN")
	})

	t.Run("delete_twice_reports_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNetWorthService(db)
		client := testutil.CreateTestClient(t, db)
		snapshot := testutil.CreateTestSnapshot(t, db, client.ID, 100, time.Now())

		testutil.AssertNoError(t, svc.DeleteSnapshot(client.ID, snapshot.ID))
		testutil.AssertAppError(t, svc.DeleteSnapshot(client.ID, snapshot.ID), "SNAPSHOT_NOT_FOUND")
	})
}
