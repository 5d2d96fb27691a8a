package integration

import (
	"fmt"
	"net/http"
	"testing"

	"wealthdesk/internal/models"
	"wealthdesk/internal/testutil"
)

func TestAuthFlow_LoginAndProfile(t *testing.T) {
	app := setupApp(t)
	testutil.CreateTestUser(t, app.DB, "advisor@test.com", models.RoleAdvisor)

	// Login with seeded credentials (fixtures always use password123).
	body := `{"email":"advisor@test.com","password":"password123"}`
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	token, _ := result["token"].(string)
	if token == "" {
		t.Fatal("expected non-empty token from login")
	}

	// Access profile with the token.
	rec = app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	profile := parseJSON(t, rec)
	user := profile["user"].(map[string]interface{})
	if user["email"] != "advisor@test.com" {
		t.Errorf("expected email advisor@test.com, got %v", user["email"])
	}
}

func TestAuthFlow_LoginWrongPassword(t *testing.T) {
	app := setupApp(t)
	testutil.CreateTestUser(t, app.DB, "victim@test.com", models.RoleAdvisor)

	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"victim@test.com","password":"wrongpass"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %v", errObj["code"])
	}
}

func TestAuthFlow_MissingTokenRejected(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/clients", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_ViewerCannotWrite(t *testing.T) {
	app := setupApp(t)
	viewer := app.viewerToken(t)

	// Viewers can read clients.
	rec := app.request("GET", "/api/v1/clients", "", viewer)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for viewer read, got %d: %s", rec.Code, rec.Body.String())
	}

	// But every write is advisor-only.
	body := `{"name":"Blocked","email":"blocked@test.com","age":40}`
	rec = app.request("POST", "/api/v1/clients", body, viewer)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for viewer write, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_ViewerCannotManageUsers(t *testing.T) {
	app := setupApp(t)
	viewer := app.viewerToken(t)

	rec := app.request("GET", "/api/v1/users", "", viewer)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for viewer on /users, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/clients/planning-distribution", "", viewer)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for viewer on planning distribution, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_AdvisorCreatesUser(t *testing.T) {
	app := setupApp(t)
	advisor := app.advisorToken(t)

	body := `{"email":"newviewer@test.com","password":"password123","role":"viewer"}`
	rec := app.request("POST", "/api/v1/users", body, advisor)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// The new viewer can log in.
	rec = app.request("POST", "/api/v1/auth/login",
		fmt.Sprintf(`{"email":%q,"password":"password123"}`, "newviewer@test.com"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("new user login failed: %d %s", rec.Code, rec.Body.String())
	}
}
