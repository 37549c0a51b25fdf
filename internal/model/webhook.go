// Trio 웹훅 페이로드 및 수신 이벤트 구조체를 정의

package model

import "encoding/json"

// TrioWebhookPayload - Trio가 /api/webhook으로 전송하는 페이로드
type TrioWebhookPayload struct {
	// Type: 이벤트 종류
	// - watch_triggered: 감시 조건 감지
	// - job_stopped / job_completed / job_failed: 작업 상태 변경
	// - summary: 다이제스트 요약
	Type string `json:"type"`

	Timestamp string `json:"timestamp"`

	// SourceURL: 이벤트를 발생시킨 스트림 URL
	SourceURL string `json:"source_url"`

	Data WebhookData `json:"data"`
}

// WebhookData - 이벤트 종류별 상세 데이터
// watch_triggered와 job_* 이벤트의 필드를 모두 포함 (없는 필드는 zero value)
type WebhookData struct {
	JobID     string `json:"job_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Condition string `json:"condition,omitempty"`

	Triggered   bool   `json:"triggered,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	FrameB64    string `json:"frame_b64,omitempty"`

	ChecksPerformed int `json:"checks_performed,omitempty"`
	TriggersFired   int `json:"triggers_fired,omitempty"`
}

// WebhookEvent - 수신된 웹훅 이벤트 레코드 (append-only, cap 200)
type WebhookEvent struct {
	ID         string      `json:"id"`
	ReceivedAt string      `json:"received_at"`
	Type       string      `json:"type"`
	Timestamp  string      `json:"timestamp"`
	SourceURL  string      `json:"source_url"`
	Data       WebhookData `json:"data"`
}

// WebhookSiteToken - webhook.site 토큰 정보
type WebhookSiteToken struct {
	UUID      string `json:"uuid"`
	URL       string `json:"url"`
	ViewURL   string `json:"view_url"`
	CreatedAt string `json:"created_at"`
}

// WebhookSiteEvent - webhook.site에서 폴링한 요청을 Trio 이벤트로 파싱한 결과
type WebhookSiteEvent struct {
	ID               string `json:"id"`
	WebhookRequestID string `json:"webhook_request_id"`
	ReceivedAt       string `json:"received_at"`
	Type             string `json:"type"`
	DangerLevel      string `json:"danger_level"`
	Timestamp        string `json:"timestamp"`
	SourceURL        string `json:"source_url"`
	Condition        string `json:"condition"`
	Triggered        bool   `json:"triggered"`
	Explanation      string `json:"explanation"`
	FrameB64         string `json:"frame_b64"`
	JobID            string `json:"job_id"`
	Status           string `json:"status"`
	Reason           string `json:"reason"`
	ChecksPerformed  int    `json:"checks_performed"`
	TriggersFired    int    `json:"triggers_fired"`
}

// WebhookSiteEventList - /api/webhook-site/events 응답
type WebhookSiteEventList struct {
	Events []WebhookSiteEvent `json:"events"`
	Total  int                `json:"total"`
	Error  string             `json:"error,omitempty"`
}

// WebhookSiteRequest - webhook.site /token/{id}/requests 응답의 개별 요청
type WebhookSiteRequest struct {
	UUID      string `json:"uuid"`
	CreatedAt string `json:"created_at"`
	Content   string `json:"content"`
}

// WebhookSiteRequestPage - webhook.site /token/{id}/requests 응답
type WebhookSiteRequestPage struct {
	Data  []WebhookSiteRequest `json:"data"`
	Total int                  `json:"total"`
}

// ParseTrioPayload - 웹훅 본문을 TrioWebhookPayload로 파싱
// JSON이 아니면 raw 텍스트를 담은 unknown 타입 페이로드로 대체 (파싱 실패는 치명적이지 않음)
func ParseTrioPayload(content string) (TrioWebhookPayload, bool) {
	var payload TrioWebhookPayload
	if content == "" {
		return TrioWebhookPayload{Type: "unknown"}, false
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return TrioWebhookPayload{Type: "unknown"}, false
	}
	if payload.Type == "" {
		payload.Type = "unknown"
	}
	return payload, true
}
