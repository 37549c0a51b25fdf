package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kids-guard/backend/internal/model"
	"github.com/kids-guard/backend/internal/store"
)

func newAlertRouter() (*gin.Engine, *store.AlertStore) {
	gin.SetMode(gin.TestMode)
	alerts := store.NewAlertStore()
	h := NewAlertHandler(alerts)

	r := gin.New()
	r.GET("/api/alerts", h.List)
	r.GET("/api/alerts/export", h.Export)
	r.POST("/api/alerts/clear", h.Clear)
	return r, alerts
}

func TestAlertListLevelFilter(t *testing.T) {
	r, alerts := newAlertRouter()
	alerts.Insert(model.AlertRecord{ID: "1", DangerLevel: "medium"})
	alerts.Insert(model.AlertRecord{ID: "2", DangerLevel: "high"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/alerts?level=high", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"id":"2"`)) || bytes.Contains(w.Body.Bytes(), []byte(`"id":"1"`)) {
		t.Fatalf("unexpected filtered body: %s", w.Body.String())
	}
}

func TestAlertExportAttachment(t *testing.T) {
	r, alerts := newAlertRouter()
	alerts.Insert(model.AlertRecord{ID: "1"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/alerts/export", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=kidsguard_alerts.json" {
		t.Fatalf("unexpected disposition: %q", got)
	}
}

func TestAlertClear(t *testing.T) {
	r, alerts := newAlertRouter()
	alerts.Insert(model.AlertRecord{ID: "1"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/alerts/clear", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if alerts.Len() != 0 {
		t.Fatalf("expected empty store, got %d", alerts.Len())
	}
}
