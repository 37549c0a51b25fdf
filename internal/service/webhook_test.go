package service

import (
	"testing"

	"github.com/kids-guard/backend/internal/model"
	"github.com/kids-guard/backend/internal/store"
)

func newWebhookService() (*WebhookService, *store.AlertStore, *store.WebhookEventStore, *store.MonitorStore) {
	alerts := store.NewAlertStore()
	events := store.NewWebhookEventStore()
	monitors := store.NewMonitorStore()
	return NewWebhookService(alerts, events, monitors), alerts, events, monitors
}

func TestIngestWatchTriggeredCreatesAlert(t *testing.T) {
	svc, alerts, events, _ := newWebhookService()

	svc.Ingest(model.TrioWebhookPayload{
		Type:      "watch_triggered",
		Timestamp: "2026-01-02T03:04:05Z",
		SourceURL: "rtsp://cam/live",
		Data: model.WebhookData{
			Condition:   "Is a child near water?",
			Triggered:   true,
			Explanation: "Child near pool edge",
		},
	})

	if events.Len() != 1 {
		t.Fatalf("expected 1 webhook event, got %d", events.Len())
	}

	records := alerts.List(10, "")
	if len(records) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(records))
	}
	alert := records[0]
	if alert.DangerLevel != "high" {
		t.Fatalf("expected high danger (pool keyword), got %s", alert.DangerLevel)
	}
	if alert.StreamURL != "rtsp://cam/live" || alert.Source != "webhook" {
		t.Fatalf("unexpected alert record: %+v", alert)
	}
	if alert.Timestamp != "2026-01-02T03:04:05Z" {
		t.Fatalf("expected payload timestamp to be preserved, got %s", alert.Timestamp)
	}
}

func TestIngestJobStatusEvents(t *testing.T) {
	tests := []struct {
		name       string
		eventType  string
		status     string
		wantStatus string
	}{
		{name: "stopped", eventType: "job_stopped", status: "stopped", wantStatus: "stopped"},
		{name: "completed", eventType: "job_completed", status: "completed", wantStatus: "completed"},
		{name: "failed", eventType: "job_failed", status: "failed", wantStatus: "failed"},
		{name: "missing-status-defaults-to-stopped", eventType: "job_stopped", status: "", wantStatus: "stopped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, alerts, _, monitors := newWebhookService()
			monitors.Put(model.JobMetadata{JobID: "job-1", Status: "running"})

			svc.Ingest(model.TrioWebhookPayload{
				Type: tt.eventType,
				Data: model.WebhookData{JobID: "job-1", Status: tt.status},
			})

			job, _ := monitors.Get("job-1")
			if job.Status != tt.wantStatus {
				t.Fatalf("job status = %s, want %s", job.Status, tt.wantStatus)
			}
			// 작업 상태 이벤트는 알림을 만들지 않음
			if alerts.Len() != 0 {
				t.Fatalf("expected no alerts, got %d", alerts.Len())
			}
		})
	}
}

func TestIngestUnknownEventOnlyRecorded(t *testing.T) {
	svc, alerts, events, _ := newWebhookService()

	event := svc.Ingest(model.TrioWebhookPayload{})

	if event.Type != "unknown" {
		t.Fatalf("expected unknown type, got %s", event.Type)
	}
	if event.Timestamp == "" || event.ReceivedAt == "" {
		t.Fatalf("expected timestamps to be filled: %+v", event)
	}
	if events.Len() != 1 || alerts.Len() != 0 {
		t.Fatalf("expected event recorded without alert (events=%d, alerts=%d)", events.Len(), alerts.Len())
	}
}
