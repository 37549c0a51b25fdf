package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kids-guard/backend/internal/config"
)

func TestCreateToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		if payload["cors"] != true {
			t.Errorf("expected cors=true, got %v", payload)
		}

		w.Write([]byte(`{"uuid":"abc-123","created_at":"2026-01-02T03:04:05Z"}`))
	}))
	defer server.Close()

	client := NewWebhookSiteClient(config.WebhookSiteConfig{BaseURL: server.URL})
	token, err := client.CreateToken()
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}
	if token.UUID != "abc-123" {
		t.Fatalf("unexpected uuid: %s", token.UUID)
	}
	if token.URL != server.URL+"/abc-123" {
		t.Fatalf("unexpected url: %s", token.URL)
	}
	if token.ViewURL != server.URL+"/#!/view/abc-123" {
		t.Fatalf("unexpected view url: %s", token.ViewURL)
	}
}

func TestListRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token/abc-123/requests" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("sorting") != "newest" || q.Get("per_page") != "50" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Write([]byte(`{"data":[{"uuid":"req-1","created_at":"2026-01-02T03:04:05Z","content":"{}"}],"total":1}`))
	}))
	defer server.Close()

	client := NewWebhookSiteClient(config.WebhookSiteConfig{BaseURL: server.URL})
	page, err := client.ListRequests("abc-123")
	if err != nil {
		t.Fatalf("ListRequests() error = %v", err)
	}
	if page.Total != 1 || len(page.Data) != 1 || page.Data[0].UUID != "req-1" {
		t.Fatalf("unexpected page: %+v", page)
	}
}
