package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/itz-Mayank/Environmental-Sustainability/models"
	"github.com/itz-Mayank/Environmental-Sustainability/services"
	"github.com/itz-Mayank/Environmental-Sustainability/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	return SetupRouter(storage.NewMemoryStore(), services.NewRealtimeHub())
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"password":"secret123","email":"%s@example.com"}`, username, username)
	if w := doJSON(r, http.MethodPost, "/api/auth/register", "", body); w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	login := fmt.Sprintf(`{"username":%q,"password":"secret123"}`, username)
	w := doJSON(r, http.MethodPost, "/api/auth/login", "", login)
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login response missing token: %s", w.Body.String())
	}
	return resp.Token
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health returned %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}
}

func TestAlertsRequireAuth(t *testing.T) {
	r := newTestRouter(t)

	if w := doJSON(r, http.MethodGet, "/api/alerts", "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("GET /api/alerts without token returned %d, want 401", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/api/alerts", "", `{"type":"aqi","threshold":100}`); w.Code != http.StatusUnauthorized {
		t.Errorf("POST /api/alerts without token returned %d, want 401", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/alerts", "not-a-token", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("GET /api/alerts with bad token returned %d, want 401", w.Code)
	}
}

func TestCreateAndListAlerts(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "asha")

	w := doJSON(r, http.MethodPost, "/api/alerts", token, `{"type":"aqi","threshold":100}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create alert returned %d: %s", w.Code, w.Body.String())
	}

	var created models.Alert
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid create response: %v", err)
	}
	if created.ID == 0 || !created.Active || created.CreatedAt.IsZero() {
		t.Errorf("created alert incomplete: %+v", created)
	}
	if created.Type != "aqi" || created.Threshold != 100 {
		t.Errorf("created alert fields wrong: %+v", created)
	}

	w = doJSON(r, http.MethodGet, "/api/alerts", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list alerts returned %d", w.Code)
	}
	var alerts []models.Alert
	if err := json.Unmarshal(w.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("invalid list response: %v", err)
	}
	if len(alerts) != 1 || alerts[0].ID != created.ID {
		t.Fatalf("expected the created alert back, got %+v", alerts)
	}
}

func TestCreateAlertValidation(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "asha")

	tests := []struct {
		name string
		body string
	}{
		{"unknown type", `{"type":"invalid","threshold":5}`},
		{"missing threshold", `{"type":"aqi"}`},
		{"missing type", `{"threshold":5}`},
		{"non-numeric threshold", `{"type":"aqi","threshold":"high"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/alerts", token, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("returned %d, want 400: %s", w.Code, w.Body.String())
			}
		})
	}

	// store untouched after rejections
	w := doJSON(r, http.MethodGet, "/api/alerts", token, "")
	var alerts []models.Alert
	if err := json.Unmarshal(w.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("invalid list response: %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("rejected payloads reached the store: %+v", alerts)
	}
}

func TestAlertsAreScopedPerUser(t *testing.T) {
	r := newTestRouter(t)
	tokenA := registerAndLogin(t, r, "asha")
	tokenB := registerAndLogin(t, r, "ravi")

	doJSON(r, http.MethodPost, "/api/alerts", tokenA, `{"type":"aqi","threshold":100}`)
	doJSON(r, http.MethodPost, "/api/alerts", tokenA, `{"type":"water","threshold":4}`)
	doJSON(r, http.MethodPost, "/api/alerts", tokenB, `{"type":"weather","threshold":40}`)

	w := doJSON(r, http.MethodGet, "/api/alerts", tokenB, "")
	var alerts []models.Alert
	if err := json.Unmarshal(w.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("invalid list response: %v", err)
	}
	if len(alerts) != 1 || alerts[0].Type != "weather" {
		t.Fatalf("user B should only see their own alert, got %+v", alerts)
	}
}

func TestEnvironmentalSnapshots(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/environmental/aqi", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("aqi snapshot returned %d", w.Code)
	}
	var aqi models.AQISnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &aqi); err != nil || aqi.PM25 == 0 {
		t.Fatalf("unexpected aqi body: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/environmental/water", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("water snapshot returned %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/environmental/weather", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("weather snapshot returned %d", w.Code)
	}
	var forecast []models.ForecastDay
	if err := json.Unmarshal(w.Body.Bytes(), &forecast); err != nil || len(forecast) != 7 {
		t.Fatalf("unexpected weather body: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/environmental/soil", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown category returned %d, want 404", w.Code)
	}
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "asha")

	// duplicate username
	body := `{"username":"asha","password":"other","email":"other@example.com"}`
	if w := doJSON(r, http.MethodPost, "/api/auth/register", "", body); w.Code != http.StatusConflict {
		t.Errorf("duplicate register returned %d, want 409", w.Code)
	}

	// wrong password
	if w := doJSON(r, http.MethodPost, "/api/auth/login", "", `{"username":"asha","password":"wrong"}`); w.Code != http.StatusUnauthorized {
		t.Errorf("bad login returned %d, want 401", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/auth/me", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("me returned %d", w.Code)
	}
	var me models.User
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil || me.Username != "asha" {
		t.Fatalf("unexpected me body: %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret123") {
		t.Error("password leaked in response")
	}
}
