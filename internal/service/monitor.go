// 연속 모니터링 작업의 시작/중지/조회 비즈니스 로직 정의
//
// 웹훅 URL 결정 순서 (start 요청에 webhook_url이 없을 때):
//  1. 현재 webhook.site 토큰의 URL
//  2. 자체 수신 엔드포인트 (PUBLIC_URL + /api/webhook)

package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/kids-guard/backend/internal/model"
	"github.com/kids-guard/backend/internal/store"
)

var (
	ErrInvalidMonitorRequest = errors.New("stream_url and condition are required")
	ErrMissingJobID          = errors.New("job_id is required")
)

// monitorClient - Trio 클라이언트 인터페이스 (모니터링 전용)
type monitorClient interface {
	StartMonitor(streamURL, condition, webhookURL string) (*model.MonitorStartResult, error)
	ListJobs(opts model.JobListOptions) (*model.JobList, error)
	GetJob(jobID string) (map[string]any, error)
	CancelJob(jobID string) (map[string]any, error)
}

// webhookURLProvider - 현재 webhook.site 토큰 URL 제공자
type webhookURLProvider interface {
	CurrentWebhookURL() string
}

// MonitorService 구조체 정의
type MonitorService struct {
	trio       monitorClient
	monitors   *store.MonitorStore
	tokens     webhookURLProvider
	defaultURL string
}

// MonitorService 객체 생성
// defaultWebhookURL: 자체 수신 엔드포인트 (예: http://localhost:8080/api/webhook)
func NewMonitorService(trio monitorClient, monitors *store.MonitorStore, tokens webhookURLProvider, defaultWebhookURL string) *MonitorService {
	return &MonitorService{
		trio:       trio,
		monitors:   monitors,
		tokens:     tokens,
		defaultURL: defaultWebhookURL,
	}
}

// Start - 모니터링 작업 시작 후 로컬 메타데이터 기록
func (s *MonitorService) Start(req model.MonitorStartRequest) (*model.JobMetadata, error) {
	streamURL := strings.TrimSpace(req.StreamURL)
	condition := strings.TrimSpace(req.Condition)
	webhookURL := strings.TrimSpace(req.WebhookURL)

	if streamURL == "" || condition == "" {
		return nil, ErrInvalidMonitorRequest
	}

	if webhookURL == "" && s.tokens != nil {
		webhookURL = s.tokens.CurrentWebhookURL()
	}
	if webhookURL == "" {
		webhookURL = s.defaultURL
	}

	result, err := s.trio.StartMonitor(streamURL, condition, webhookURL)
	if err != nil {
		return nil, err
	}

	jobID := result.JobID
	if jobID == "" {
		jobID = "unknown"
	}
	status := result.Status
	if status == "" {
		status = "running"
	}

	job := model.JobMetadata{
		JobID:      jobID,
		StreamURL:  streamURL,
		Condition:  condition,
		WebhookURL: webhookURL,
		Status:     status,
		StartedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	s.monitors.Put(job)

	log.Printf("Started monitor job: job_id=%s, stream=%s, webhook=%s", jobID, streamURL, webhookURL)
	return &job, nil
}

// Stop - 작업 취소 후 로컬 상태를 stopped로 변경
func (s *MonitorService) Stop(jobID string) (map[string]any, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrMissingJobID
	}

	result, err := s.trio.CancelJob(jobID)
	if err != nil {
		return nil, err
	}

	if s.monitors.SetStatus(jobID, "stopped") {
		log.Printf("Stopped monitor job: job_id=%s", jobID)
	}
	return result, nil
}

// ListJobs - Trio 작업 목록 조회 (필터/페이지네이션 그대로 전달)
func (s *MonitorService) ListJobs(opts model.JobListOptions) (*model.JobList, error) {
	return s.trio.ListJobs(opts)
}

// GetJob - 특정 작업 상세 조회
func (s *MonitorService) GetJob(jobID string) (map[string]any, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrMissingJobID
	}
	return s.trio.GetJob(jobID)
}
