// 단발성 안전 체크 관련 구조체를 정의
// handler, service, client 레이어에서 공통으로 사용하기 때문에 model 레이어에 별도로 정의

package model

// CheckRequest - /api/check 요청 페이로드
type CheckRequest struct {
	StreamURL string `json:"stream_url"`
	Condition string `json:"condition"`
}

// CheckResult - Trio /check-once 응답
type CheckResult struct {
	// Triggered: 조건이 실제로 감지되었는지 여부
	Triggered bool `json:"triggered"`

	// Explanation: AI가 판단 근거를 서술한 자유 텍스트
	Explanation string `json:"explanation"`

	// LatencyMs: Trio 측에서 측정한 분석 소요 시간 (ms)
	LatencyMs int `json:"latency_ms"`
}

// AlertRecord - 알림 히스토리에 저장되는 레코드
// 단발성 체크 또는 웹훅의 watch_triggered 이벤트에서 생성됨
type AlertRecord struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	StreamURL string `json:"stream_url"`
	Condition string `json:"condition"`

	Triggered   bool   `json:"triggered"`
	Explanation string `json:"explanation"`
	LatencyMs   int    `json:"latency_ms"`

	// DangerLevel: safe | medium | high
	// Triggered와 Explanation의 키워드 매칭으로 분류
	DangerLevel string `json:"danger_level"`

	// Source: 레코드 생성 경로 (check 또는 webhook)
	Source string `json:"source,omitempty"`

	// FrameB64: 웹훅 이벤트에 포함된 프레임 캡처 (base64)
	FrameB64 string `json:"frame_b64,omitempty"`
}

// ValidateStreamRequest - /api/validate-stream 요청 페이로드
type ValidateStreamRequest struct {
	StreamURL string `json:"stream_url"`
}

// StreamValidation - 스트림 검증 결과
// 4xx 응답의 구조화된 에러 메시지(remediation)를 그대로 노출
type StreamValidation struct {
	Valid       bool         `json:"valid"`
	Message     string       `json:"message"`
	Remediation string       `json:"remediation,omitempty"`
	Details     *CheckResult `json:"details,omitempty"`
}
