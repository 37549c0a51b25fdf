package model

// MonitorStartRequest - /api/monitor/start 요청 페이로드
// WebhookURL이 비어있으면 webhook.site 토큰 → 자체 /api/webhook 순으로 대체
type MonitorStartRequest struct {
	StreamURL  string `json:"stream_url"`
	Condition  string `json:"condition"`
	WebhookURL string `json:"webhook_url"`
}

// MonitorStopRequest - /api/monitor/stop 요청 페이로드
type MonitorStopRequest struct {
	JobID string `json:"job_id"`
}

// MonitorStartResult - Trio /live-monitor 응답
type MonitorStartResult struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// JobMetadata - 로컬에서 추적하는 모니터링 작업 메타데이터
// 삭제되지 않으며 status만 변경됨 (running → stopped|completed|failed)
type JobMetadata struct {
	JobID      string `json:"job_id"`
	StreamURL  string `json:"stream_url"`
	Condition  string `json:"condition"`
	WebhookURL string `json:"webhook_url"`
	Status     string `json:"status"`
	StartedAt  string `json:"started_at"`
}

// JobList - Trio /jobs 응답 (페이지네이션 그대로 전달)
type JobList struct {
	Jobs   []map[string]any `json:"jobs"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// JobListOptions - /jobs 조회 필터
type JobListOptions struct {
	Status string
	Type   string
	Limit  int
	Offset int
}
