package services

import (
	"testing"

	"wealthdesk/internal/testutil"
)

func TestCreateWalletItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)
		client := testutil.CreateTestClient(t, db)

		item, err := svc.CreateItem(client.ID, WalletItemInput{
			AssetClass: "stocks",
			Percentage: 55,
			TotalValue: 220000,
			Category:   "variable income",
		})
		testutil.AssertNoError(t, err)

		if item.ID == "" {
			t.Fatal("expected non-empty item ID")
		}
		if item.ClientID != client.ID {
			t.Errorf("expected client %s, got %s", client.ID, item.ClientID)
		}
	})

	t.Run("unknown_client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)

		_, err := svc.CreateItem("missing", WalletItemInput{AssetClass: "stocks", Percentage: 10, Category: "test"})
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}

func TestUpdateWalletItem(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)
		client := testutil.CreateTestClient(t, db)
		item := testutil.CreateTestWalletItem(t, db, client.ID, "bonds", 30)

		pct := 35.0
		updated, err := svc.UpdateItem(client.ID, item.ID, WalletItemUpdate{Percentage: &pct})
		testutil.AssertNoError(t, err)

		if updated.Percentage != 35 {
			t.Errorf("expected percentage 35, got %f", updated.Percentage)
		}
		if updated.AssetClass != "bonds" {
			t.Errorf("asset class should be unchanged, got %s", updated.AssetClass)
		}
	})

	t.Run("belongs_to_other_client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)
		owner := testutil.CreateTestClient(t, db)
		other := testutil.CreateTestClient(t, db)
		item := testutil.CreateTestWalletItem(t, db, owner.ID, "bonds", 30)

		pct := 99.0
		_, err := svc.UpdateItem(other.ID, item.ID, WalletItemUpdate{Percentage: &pct})
		testutil.AssertAppError(t, err, "FORBIDDEN")

		items, getErr := svc.GetItems(owner.ID)
		testutil.AssertNoError(t, getErr)
		if items[0].Percentage != 30 {
			t.Errorf("item mutated by rejected update: %f", items[0].Percentage)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)
		client := testutil.CreateTestClient(t, db)

		pct := 1.0
		_, err := svc.UpdateItem(client.ID, "missing", WalletItemUpdate{Percentage: &pct})
		testutil.AssertAppError(t, err, "WALLET_ITEM_NOT_FOUND")
	})
}

func TestDeleteWalletItem(t *testing.T) {
	t.Run("delete_twice_reports_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)
		client := testutil.CreateTestClient(t, db)
		item := testutil.CreateTestWalletItem(t, db, client.ID, "cash", 10)

		testutil.AssertNoError(t, svc.DeleteItem(client.ID, item.ID))
		testutil.AssertAppError(t, svc.DeleteItem(client.ID, item.ID), "WALLET_ITEM_NOT_FOUND")
	})
}

func TestIdealWalletItems(t *testing.T) {
	t.Run("create_and_list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIdealWalletService(db)
		client := testutil.CreateTestClient(t, db)

		_, err := svc.CreateItem(client.ID, "stocks", 60)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateItem(client.ID, "bonds", 40)
		testutil.AssertNoError(t, err)

		items, err := svc.GetItems(client.ID)
		testutil.AssertNoError(t, err)
		if len(items) != 2 {
			t.Errorf("expected 2 ideal items, got %d", len(items))
		}
	})

	t.Run("belongs_to_other_client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIdealWalletService(db)
		owner := testutil.CreateTestClient(t, db)
		other := testutil.CreateTestClient(t, db)
		item := testutil.CreateTestIdealWalletItem(t, db, owner.ID, "stocks", 60)

		testutil.AssertAppError(t, svc.DeleteItem(other.ID, item.ID), "FORBIDDEN")
	})
}
