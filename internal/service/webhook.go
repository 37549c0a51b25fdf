// 웹훅 수신 처리 비즈니스 로직 정의
// handler에서 받은 Trio 이벤트를 저장소에 반영
//
// 처리 흐름:
//  1. WebhookEvent 레코드 생성 후 이벤트 저장소에 삽입
//  2. watch_triggered 이벤트: 위험도 분류 후 알림 히스토리에 삽입
//  3. job_stopped / job_completed / job_failed 이벤트: 로컬 작업 상태 변경
//
// 주의: 수신 페이로드에 서명 검증이 없음. Trio는 웹훅 서명을 제공하지 않으므로
// 이 엔드포인트는 신뢰 경계 밖의 입력을 그대로 받아들임 (데모 용도로만 적합).

package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kids-guard/backend/internal/model"
	"github.com/kids-guard/backend/internal/store"
)

// WebhookService 구조체 정의
type WebhookService struct {
	alerts   *store.AlertStore
	events   *store.WebhookEventStore
	monitors *store.MonitorStore
}

// WebhookService 객체 생성
func NewWebhookService(alerts *store.AlertStore, events *store.WebhookEventStore, monitors *store.MonitorStore) *WebhookService {
	return &WebhookService{
		alerts:   alerts,
		events:   events,
		monitors: monitors,
	}
}

// Ingest - 수신한 웹훅 이벤트를 저장소에 반영하고 이벤트 레코드 반환
func (s *WebhookService) Ingest(payload model.TrioWebhookPayload) model.WebhookEvent {
	now := time.Now().UTC().Format(time.RFC3339)

	eventType := payload.Type
	if eventType == "" {
		eventType = "unknown"
	}
	timestamp := payload.Timestamp
	if timestamp == "" {
		timestamp = now
	}

	event := model.WebhookEvent{
		ID:         uuid.NewString()[:8],
		ReceivedAt: now,
		Type:       eventType,
		Timestamp:  timestamp,
		SourceURL:  payload.SourceURL,
		Data:       payload.Data,
	}

	// watch_triggered 이벤트는 위험도를 분류해서 알림으로도 기록
	if eventType == "watch_triggered" {
		danger := ClassifyDanger(payload.Data.Triggered, payload.Data.Condition, payload.Data.Explanation)
		s.alerts.Insert(model.AlertRecord{
			ID:          event.ID,
			Timestamp:   timestamp,
			StreamURL:   payload.SourceURL,
			Condition:   payload.Data.Condition,
			Triggered:   payload.Data.Triggered,
			Explanation: payload.Data.Explanation,
			LatencyMs:   0,
			DangerLevel: danger,
			Source:      "webhook",
			FrameB64:    payload.Data.FrameB64,
		})
	}

	// 작업 상태 변경 이벤트 처리
	switch eventType {
	case "job_stopped", "job_completed", "job_failed":
		status := payload.Data.Status
		if status == "" {
			status = "stopped"
		}
		if payload.Data.JobID != "" {
			s.monitors.SetStatus(payload.Data.JobID, status)
		}
	}

	s.events.Insert(event)

	log.Printf("Received webhook event: type=%s, source=%s, job_id=%s",
		eventType, payload.SourceURL, payload.Data.JobID)

	return event
}

// Events - 최근 수신 이벤트 조회
func (s *WebhookService) Events(limit int) []model.WebhookEvent {
	return s.events.List(limit)
}
