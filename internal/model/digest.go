package model

// DigestStartRequest - /api/digest/start 요청 페이로드
type DigestStartRequest struct {
	StreamURL string `json:"stream_url"`
}

// DigestSummary - 릴레이가 summary 타입 SSE 프레임에서 추출한 요약
type DigestSummary struct {
	Timestamp string `json:"timestamp"`
	Summary   string `json:"summary"`
	StreamURL string `json:"stream_url"`
}

// DigestEvent - 다이제스트 SSE 프레임의 data 페이로드
type DigestEvent struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}
