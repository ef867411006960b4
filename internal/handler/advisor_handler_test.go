package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/strike9903/poliprint-studio-sub002/internal/engine"
	"github.com/strike9903/poliprint-studio-sub002/internal/models"
	"github.com/strike9903/poliprint-studio-sub002/internal/service"
)

type stubHistoryStore struct{}

func (stubHistoryStore) CompletedOrders(context.Context, string) ([]models.Order, error) {
	return []models.Order{}, nil
}

func (stubHistoryStore) FailedAttempts(context.Context, string) ([]models.FailedAttempt, error) {
	return []models.FailedAttempt{}, nil
}

func (stubHistoryStore) RecordAttempt(context.Context, *models.PaymentAttempt) error {
	return nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	eng := engine.New(engine.DefaultCatalog(), engine.WithRandSource(func() float64 { return 0.1 }))
	svc := service.NewAdvisorService(eng, stubHistoryStore{}, nil, zap.NewNop())
	h := NewAdvisorHandler(svc, zap.NewNop())

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/recommendations", h.Recommend)
	v1.POST("/attempts", h.RecordAttempt)
	v1.GET("/methods", h.ListMethods)
	v1.GET("/methods/:id/cost", h.MethodCost)
	return router
}

func TestRecommendEndpoint(t *testing.T) {
	router := testRouter()

	body := `{
		"user_agent": "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148",
		"order": {"pricing": {"total": 850}}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp models.RecommendationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Recommendations) == 0 {
		t.Error("no recommendations in response")
	}
	if resp.Profile.DeviceType != models.DeviceMobile {
		t.Errorf("profile device = %v, want mobile", resp.Profile.DeviceType)
	}
}

func TestRecommendEndpointRequiresUserAgent(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestMethodCostEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{"valid", "/api/v1/methods/card/cost?amount=1000", http.StatusOK},
		{"unknown method", "/api/v1/methods/nonexistent/cost?amount=100", http.StatusNotFound},
		{"negative amount", "/api/v1/methods/card/cost?amount=-5", http.StatusBadRequest},
		{"NaN amount", "/api/v1/methods/card/cost?amount=NaN", http.StatusBadRequest},
		{"infinite amount", "/api/v1/methods/card/cost?amount=Inf", http.StatusBadRequest},
		{"missing amount", "/api/v1/methods/card/cost", http.StatusBadRequest},
	}

	router := testRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestMethodCostEndpointValues(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/methods/card/cost?amount=1000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp struct {
		Cost models.CostBreakdown `json:"cost"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Cost.Fee != 27.5 || resp.Cost.Total != 1027.5 {
		t.Errorf("cost = %+v, want fee 27.5 total 1027.5", resp.Cost)
	}
}

func TestListMethodsEndpoint(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/methods", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Methods []models.PaymentMethod `json:"methods"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Methods) != 6 {
		t.Errorf("got %d methods, want 6", len(resp.Methods))
	}
}

func TestRecordAttemptEndpoint(t *testing.T) {
	router := testRouter()

	body := `{"customer_id": "c1", "payment_method": "card", "amount": 850, "success": false, "failure_reason": "declined"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	body = `{"customer_id": "c1", "payment_method": "nonexistent", "amount": 10}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/attempts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}
