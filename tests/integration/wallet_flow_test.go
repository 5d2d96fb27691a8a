package integration

import (
	"net/http"
	"testing"
)

func TestWalletFlow_CrossTenantIsolation(t *testing.T) {
	app := setupApp(t)
	advisor := app.advisorToken(t)

	ownerID := app.createClient(t, advisor, "Owner", "owner@test.com")
	otherID := app.createClient(t, advisor, "Other", "other@test.com")

	rec := app.request("POST", "/api/v1/clients/"+ownerID+"/wallet",
		`{"asset_class":"bonds","percentage":40,"total_value":40000,"category":"fixed income"}`, advisor)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create wallet item failed: %d %s", rec.Code, rec.Body.String())
	}
	itemID := parseJSON(t, rec)["wallet_item"].(map[string]interface{})["id"].(string)

	// Updating through the wrong client's path is rejected with 403.
	rec = app.request("PUT", "/api/v1/clients/"+otherID+"/wallet/"+itemID,
		`{"percentage":99}`, advisor)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for cross-tenant update, got %d: %s", rec.Code, rec.Body.String())
	}

	// The item is untouched under its owner.
	rec = app.request("GET", "/api/v1/clients/"+ownerID+"/wallet", "", advisor)
	if rec.Code != http.StatusOK {
		t.Fatalf("list wallet failed: %d %s", rec.Code, rec.Body.String())
	}
	items := parseJSON(t, rec)["wallet_items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].(map[string]interface{})["percentage"].(float64) != 40 {
		t.Errorf("item mutated by rejected update: %v", items[0])
	}

	// Cross-tenant delete is also rejected.
	rec = app.request("DELETE", "/api/v1/clients/"+otherID+"/wallet/"+itemID, "", advisor)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for cross-tenant delete, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestWalletFlow_InvalidIDRejected(t *testing.T) {
	app := setupApp(t)
	advisor := app.advisorToken(t)
	clientID := app.createClient(t, advisor, "Client", "client@test.com")

	rec := app.request("PUT", "/api/v1/clients/"+clientID+"/wallet/not-a-uuid",
		`{"percentage":10}`, advisor)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d: %s", rec.Code, rec.Body.String())
	}
}
