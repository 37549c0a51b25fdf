// 외부 Trio 라이브 스트림 모니터링 API와 통신하는 클라이언트 정의
// Client 레이어에서만 사용하는 구조체 및 공통 메서드 정의
//
// 환경변수:
//   - TRIO_API_KEY: Trio API Key (Bearer 토큰으로 전송)
//   - TRIO_BASE_URL: Trio API 주소 (기본값: https://trio.machinefi.com/api)
//
// 엔드포인트별 타임아웃:
//   - /check-once: 30초 (프레임 분석 시간 고려)
//   - /live-monitor, /live-digest (웹훅 모드): 15초
//   - /jobs: 10초
//   - SSE 스트리밍: 600초 (stream.go 참고)

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kids-guard/backend/internal/config"
	"github.com/kids-guard/backend/internal/model"
)

// APIError - Trio가 non-2xx를 반환했을 때의 에러
// 4xx 응답의 구조화된 본문({"error": {"message", "remediation"}})을 파싱해서 보존
type APIError struct {
	StatusCode  int
	Message     string
	Remediation string
	Body        string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("trio API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("trio API error (status %d)", e.StatusCode)
}

// trioErrorBody - Trio 에러 응답 본문
type trioErrorBody struct {
	Error struct {
		Message     string `json:"message"`
		Remediation string `json:"remediation"`
	} `json:"error"`
}

// TrioClient 구조체 정의
type TrioClient struct {
	baseURL    string
	apiKey     string
	checkHTTP  *http.Client // /check-once 전용 (30초)
	jobHTTP    *http.Client // /jobs 전용 (10초)
	submitHTTP *http.Client // /live-monitor, /live-digest 웹훅 모드 (15초)
	streamHTTP *http.Client // SSE 스트리밍 전용 (600초)
}

// TrioClient 객체 생성
func NewTrioClient(cfg config.TrioConfig) *TrioClient {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://trio.machinefi.com/api"
	}

	return &TrioClient{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		checkHTTP:  &http.Client{Timeout: 30 * time.Second},
		jobHTTP:    &http.Client{Timeout: 10 * time.Second},
		submitHTTP: &http.Client{Timeout: 15 * time.Second},
		streamHTTP: &http.Client{Timeout: 600 * time.Second},
	}
}

// API Key 설정 여부 체크
func (c *TrioClient) IsConfigured() bool {
	return c.apiKey != ""
}

// 공통 요청 실행: 요청 생성, 헤더 설정, non-2xx를 APIError로 변환
func (c *TrioClient) do(httpClient *http.Client, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to trio: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// non-2xx 응답 본문에서 구조화된 에러 메시지 추출
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: string(body)}
	var parsed trioErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = parsed.Error.Message
		apiErr.Remediation = parsed.Error.Remediation
	}
	return apiErr
}

// POST /check-once - 단발성 안전 체크 (동기)
func (c *TrioClient) CheckOnce(streamURL, condition string) (*model.CheckResult, error) {
	payload := map[string]string{
		"stream_url": streamURL,
		"condition":  condition,
	}
	var result model.CheckResult
	if err := c.do(c.checkHTTP, http.MethodPost, "/check-once", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// POST /live-monitor - 웹훅 전달 방식의 연속 모니터링 작업 시작
func (c *TrioClient) StartMonitor(streamURL, condition, webhookURL string) (*model.MonitorStartResult, error) {
	payload := map[string]string{
		"stream_url":  streamURL,
		"condition":   condition,
		"webhook_url": webhookURL,
	}
	var result model.MonitorStartResult
	if err := c.do(c.submitHTTP, http.MethodPost, "/live-monitor", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// POST /live-digest - 웹훅 전달 방식의 다이제스트 작업 시작
func (c *TrioClient) StartDigestWebhook(streamURL, webhookURL string) (*model.MonitorStartResult, error) {
	payload := map[string]string{
		"stream_url":  streamURL,
		"webhook_url": webhookURL,
	}
	var result model.MonitorStartResult
	if err := c.do(c.submitHTTP, http.MethodPost, "/live-digest", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GET /jobs - 작업 목록 조회 (status/type 필터, limit/offset 페이지네이션)
func (c *TrioClient) ListJobs(opts model.JobListOptions) (*model.JobList, error) {
	params := url.Values{}
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(opts.Offset))
	if opts.Status != "" {
		params.Set("status", opts.Status)
	}
	if opts.Type != "" {
		params.Set("type", opts.Type)
	}

	var result model.JobList
	if err := c.do(c.jobHTTP, http.MethodGet, "/jobs?"+params.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GET /jobs/{id} - 특정 작업의 상태 및 통계 조회
func (c *TrioClient) GetJob(jobID string) (map[string]any, error) {
	var result map[string]any
	if err := c.do(c.jobHTTP, http.MethodGet, "/jobs/"+url.PathEscape(jobID), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DELETE /jobs/{id} - 실행 중인 작업 즉시 취소
func (c *TrioClient) CancelJob(jobID string) (map[string]any, error) {
	var result map[string]any
	if err := c.do(c.jobHTTP, http.MethodDelete, "/jobs/"+url.PathEscape(jobID), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ValidateStream - 스트림 URL이 라이브 스트림인지 간이 검증
//
// 고정 조건으로 check-once를 수행:
//   - 성공: 라이브 스트림
//   - 4xx (NOT_LIVESTREAM 등): 구조화된 메시지/remediation을 그대로 노출
//   - 그 외 전송 실패: 일반 invalid 결과로 변환
func (c *TrioClient) ValidateStream(streamURL string) *model.StreamValidation {
	result, err := c.CheckOnce(streamURL, "Is this a live video stream?")
	if err == nil {
		return &model.StreamValidation{
			Valid:   true,
			Message: "Stream is live and accessible",
			Details: result,
		}
	}

	if apiErr, ok := err.(*APIError); ok {
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error()
		}
		return &model.StreamValidation{
			Valid:       false,
			Message:     msg,
			Remediation: apiErr.Remediation,
		}
	}

	return &model.StreamValidation{Valid: false, Message: err.Error()}
}
