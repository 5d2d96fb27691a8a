package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestClientFlow_CRUD(t *testing.T) {
	app := setupApp(t)
	advisor := app.advisorToken(t)

	clientID := app.createClient(t, advisor, "Maria Souza", "maria@test.com")

	// Read it back.
	rec := app.request("GET", "/api/v1/clients/"+clientID, "", advisor)
	if rec.Code != http.StatusOK {
		t.Fatalf("get client failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	client := result["client"].(map[string]interface{})
	if client["family_profile"] != "moderate" {
		t.Errorf("expected moderate profile, got %v", client["family_profile"])
	}

	// Partial update.
	rec = app.request("PUT", "/api/v1/clients/"+clientID, `{"age":46}`, advisor)
	if rec.Code != http.StatusOK {
		t.Fatalf("update client failed: %d %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	client = result["client"].(map[string]interface{})
	if client["age"].(float64) != 46 {
		t.Errorf("expected age 46, got %v", client["age"])
	}
	if client["name"] != "Maria Souza" {
		t.Errorf("name should be unchanged, got %v", client["name"])
	}

	// Delete, then confirm 404.
	rec = app.request("DELETE", "/api/v1/clients/"+clientID, "", advisor)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete client failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/clients/"+clientID, "", advisor)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestClientFlow_DuplicateEmail(t *testing.T) {
	app := setupApp(t)
	advisor := app.advisorToken(t)

	app.createClient(t, advisor, "First", "same@test.com")

	body := `{"name":"Second","email":"same@test.com","age":50}`
	rec := app.request("POST", "/api/v1/clients", body, advisor)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "DUPLICATE_EMAIL" {
		t.Errorf("expected DUPLICATE_EMAIL, got %v", errObj["code"])
	}
}

func TestClientFlow_Pagination(t *testing.T) {
	app := setupApp(t)
	advisor := app.advisorToken(t)

	for i := 0; i < 12; i++ {
		app.createClient(t, advisor, fmt.Sprintf("Client %d", i), fmt.Sprintf("page%d@test.com", i))
	}

	rec := app.request("GET", "/api/v1/clients?page=2&page_size=5", "", advisor)
	if rec.Code != http.StatusOK {
		t.Fatalf("list clients failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 5 {
		t.Errorf("expected 5 clients on page 2, got %d", len(data))
	}
	meta := result["meta"].(map[string]interface{})
	if meta["total_items"].(float64) != 12 {
		t.Errorf("expected 12 total items, got %v", meta["total_items"])
	}
	if meta["current_page"].(float64) != 2 {
		t.Errorf("expected current page 2, got %v", meta["current_page"])
	}
}

func TestClientFlow_PlanningReports(t *testing.T) {
	app := setupApp(t)
	advisor := app.advisorToken(t)

	clientID := app.createClient(t, advisor, "Aligned", "aligned@test.com")

	// Ideal targets and matching actual positions: score 100.
	rec := app.request("POST", "/api/v1/clients/"+clientID+"/ideal-wallet",
		`{"asset_class":"stocks","target_pct":60}`, advisor)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create ideal item failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/clients/"+clientID+"/wallet",
		`{"asset_class":"stocks","percentage":60,"total_value":60000,"category":"variable income"}`, advisor)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create wallet item failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/clients/planning-distribution", "", advisor)
	if rec.Code != http.StatusOK {
		t.Fatalf("planning distribution failed: %d %s", rec.Code, rec.Body.String())
	}
	report := parseJSON(t, rec)
	if report["scored_clients"].(float64) != 1 {
		t.Errorf("expected 1 scored client, got %v", report["scored_clients"])
	}
	if report["above_high"].(float64) != 100 {
		t.Errorf("expected 100%% above high, got %v", report["above_high"])
	}

	rec = app.request("GET", "/api/v1/clients/planning-summary", "", advisor)
	if rec.Code != http.StatusOK {
		t.Fatalf("planning summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)
	if summary["average_score"].(float64) != 100 {
		t.Errorf("expected average score 100, got %v", summary["average_score"])
	}
}
