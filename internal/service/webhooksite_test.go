package service

import (
	"errors"
	"testing"

	"github.com/kids-guard/backend/internal/model"
)

// fakeWebhookSiteClient - webhook.site 클라이언트 대역
type fakeWebhookSiteClient struct {
	token *model.WebhookSiteToken
	page  *model.WebhookSiteRequestPage
	err   error
}

func (f *fakeWebhookSiteClient) CreateToken() (*model.WebhookSiteToken, error) {
	return f.token, f.err
}

func (f *fakeWebhookSiteClient) ListRequests(tokenUUID string) (*model.WebhookSiteRequestPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func TestWebhookSiteTokenLifecycle(t *testing.T) {
	svc := NewWebhookSiteService(&fakeWebhookSiteClient{
		token: &model.WebhookSiteToken{UUID: "abc", URL: "https://webhook.site/abc"},
	})

	// 토큰 생성 전
	if _, err := svc.Token(); !errors.Is(err, ErrNoWebhookSiteToken) {
		t.Fatalf("Token() error = %v, want ErrNoWebhookSiteToken", err)
	}
	if svc.CurrentWebhookURL() != "" {
		t.Fatal("expected empty webhook url before token creation")
	}

	if _, err := svc.CreateToken(); err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	token, err := svc.Token()
	if err != nil || token.UUID != "abc" {
		t.Fatalf("Token() = %+v, %v", token, err)
	}
	if svc.CurrentWebhookURL() != "https://webhook.site/abc" {
		t.Fatalf("unexpected webhook url: %s", svc.CurrentWebhookURL())
	}
}

func TestWebhookSiteEventsClassification(t *testing.T) {
	svc := NewWebhookSiteService(&fakeWebhookSiteClient{
		token: &model.WebhookSiteToken{UUID: "abc", URL: "https://webhook.site/abc"},
		page: &model.WebhookSiteRequestPage{
			Total: 3,
			Data: []model.WebhookSiteRequest{
				{
					UUID:      "11111111-2222",
					CreatedAt: "2026-01-02T03:04:05Z",
					Content:   `{"type":"watch_triggered","source_url":"rtsp://cam","data":{"triggered":true,"explanation":"child holding a knife","condition":"danger?"}}`,
				},
				{
					UUID:    "33333333-4444",
					Content: `{"type":"job_completed","data":{"job_id":"job-1","status":"completed","checks_performed":12}}`,
				},
				{
					UUID:    "55555555-6666",
					Content: "not json at all",
				},
			},
		},
	})
	if _, err := svc.CreateToken(); err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	list := svc.Events()
	if list.Total != 3 || len(list.Events) != 3 {
		t.Fatalf("unexpected list: total=%d, events=%d", list.Total, len(list.Events))
	}

	triggered := list.Events[0]
	if triggered.DangerLevel != "high" {
		t.Fatalf("danger = %s, want high (knife keyword)", triggered.DangerLevel)
	}
	if triggered.ID != "11111111" {
		t.Fatalf("expected truncated id, got %s", triggered.ID)
	}

	job := list.Events[1]
	if job.DangerLevel != "info" || job.ChecksPerformed != 12 {
		t.Fatalf("unexpected job event: %+v", job)
	}

	// JSON이 아닌 본문은 unknown 이벤트로 처리됨 (버리지 않음)
	raw := list.Events[2]
	if raw.Type != "unknown" || raw.DangerLevel != "info" {
		t.Fatalf("unexpected raw event: %+v", raw)
	}
}

func TestWebhookSiteEventsWithoutToken(t *testing.T) {
	svc := NewWebhookSiteService(&fakeWebhookSiteClient{})
	list := svc.Events()
	if len(list.Events) != 0 || list.Error != "" {
		t.Fatalf("expected empty list without error, got %+v", list)
	}
}

func TestWebhookSiteEventsPollFailure(t *testing.T) {
	client := &fakeWebhookSiteClient{token: &model.WebhookSiteToken{UUID: "abc"}}
	svc := NewWebhookSiteService(client)
	if _, err := svc.CreateToken(); err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	client.err = errors.New("poll failed")
	list := svc.Events()
	if list.Error == "" || len(list.Events) != 0 {
		t.Fatalf("expected error field with empty events, got %+v", list)
	}
}
