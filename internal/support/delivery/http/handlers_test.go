package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"support-router/internal/customer/repository/memory"
	customerUC "support-router/internal/customer/usecase"
	"support-router/internal/support/strategy"
	"support-router/internal/support/usecase"
	"support-router/pkg/log"
	"support-router/pkg/response"
)

func setup(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New(log.NewNop())
	store.Seed()
	data := customerUC.New(store, nil, log.NewNop())
	h := New(log.NewNop(), usecase.New(data, strategy.NewTemplate(), log.NewNop()))

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h)
	return r, store
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/support/upgrade", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpgrade(t *testing.T) {
	r, store := setup(t)
	before := store.CountTickets()

	w := post(r, `{"customer_id":4,"query":"I want the pro plan"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if store.CountTickets() != before+1 {
		t.Errorf("expected one new ticket")
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data := resp.Data.(map[string]any)
	ticket := data["ticket"].(map[string]any)
	if ticket["priority"] != "high" || ticket["issue"] != "Account upgrade request" {
		t.Errorf("unexpected ticket: %v", ticket)
	}
	if !strings.Contains(data["reply"].(string), "David Lee (ID 4)") {
		t.Errorf("unexpected reply: %v", data["reply"])
	}
}

func TestUpgradeErrors(t *testing.T) {
	r, store := setup(t)
	before := store.CountTickets()

	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing id", `{"query":"x"}`, http.StatusBadRequest},
		{"negative id", `{"customer_id":-1}`, http.StatusBadRequest},
		{"unknown customer", `{"customer_id":404}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := post(r, tt.body); w.Code != tt.code {
				t.Errorf("expected %d, got %d: %s", tt.code, w.Code, w.Body.String())
			}
		})
	}
	if store.CountTickets() != before {
		t.Error("failed upgrades must not create tickets")
	}
}
