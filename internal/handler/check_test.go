package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kids-guard/backend/internal/model"
	"github.com/kids-guard/backend/internal/service"
	"github.com/kids-guard/backend/internal/store"
)

// fakeTrio - 성공 응답을 돌려주는 Trio 대역
type fakeTrio struct{}

func (fakeTrio) CheckOnce(streamURL, condition string) (*model.CheckResult, error) {
	return &model.CheckResult{Triggered: false, Explanation: "all clear", LatencyMs: 100}, nil
}

func (fakeTrio) ValidateStream(streamURL string) *model.StreamValidation {
	return &model.StreamValidation{Valid: true, Message: "Stream is live and accessible"}
}

func newCheckRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCheckHandler(service.NewCheckService(fakeTrio{}, store.NewAlertStore()))
	r.POST("/api/check", h.RunCheck)
	r.POST("/api/validate-stream", h.ValidateStream)
	r.GET("/api/presets", h.Presets)
	return r
}

func TestRunCheckValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "missing-fields", body: `{"stream_url":"","condition":""}`, want: http.StatusBadRequest},
		{name: "not-json", body: `not json`, want: http.StatusBadRequest},
		{name: "valid", body: `{"stream_url":"rtsp://cam","condition":"Is the child safe?"}`, want: http.StatusOK},
	}

	r := newCheckRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/check", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body=%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestValidateStreamRequiresURL(t *testing.T) {
	r := newCheckRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/validate-stream", bytes.NewBufferString(`{"stream_url":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPresets(t *testing.T) {
	r := newCheckRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/presets", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("general_safety")) {
		t.Fatalf("expected preset catalog in response: %s", w.Body.String())
	}
}
