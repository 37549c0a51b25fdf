// webhook.site 토큰 수명주기 및 이벤트 폴링 비즈니스 로직 정의
//
// 토큰은 프로세스당 하나만 유지 (재생성 시 교체).
// 폴링한 요청 본문을 Trio 웹훅 페이로드로 파싱하고 watch_triggered 이벤트는
// 위험도를 분류해서 반환 (그 외 이벤트는 "info").

package service

import (
	"errors"
	"sync"

	"github.com/kids-guard/backend/internal/model"
)

var ErrNoWebhookSiteToken = errors.New("no webhook.site token created yet")

// webhookSiteClient - webhook.site 클라이언트 인터페이스
type webhookSiteClient interface {
	CreateToken() (*model.WebhookSiteToken, error)
	ListRequests(tokenUUID string) (*model.WebhookSiteRequestPage, error)
}

// WebhookSiteService 구조체 정의
type WebhookSiteService struct {
	client webhookSiteClient

	mu    sync.Mutex
	token *model.WebhookSiteToken
}

// WebhookSiteService 객체 생성
func NewWebhookSiteService(client webhookSiteClient) *WebhookSiteService {
	return &WebhookSiteService{client: client}
}

// CreateToken - 새 토큰 생성 후 현재 토큰으로 교체
func (s *WebhookSiteService) CreateToken() (*model.WebhookSiteToken, error) {
	token, err := s.client.CreateToken()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return token, nil
}

// Token - 현재 토큰 조회
func (s *WebhookSiteService) Token() (*model.WebhookSiteToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return nil, ErrNoWebhookSiteToken
	}
	return s.token, nil
}

// CurrentWebhookURL - 모니터 시작 시 기본 웹훅 URL로 사용
// 토큰이 없으면 빈 문자열 반환 (MonitorService가 자체 엔드포인트로 대체)
func (s *WebhookSiteService) CurrentWebhookURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return ""
	}
	return s.token.URL
}

// Events - webhook.site에 수신된 요청을 폴링해서 Trio 이벤트로 변환
// 토큰이 없거나 폴링에 실패해도 에러 대신 빈 목록을 반환 (대시보드 폴링 UX 유지)
func (s *WebhookSiteService) Events() *model.WebhookSiteEventList {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == nil || token.UUID == "" {
		return &model.WebhookSiteEventList{Events: []model.WebhookSiteEvent{}}
	}

	page, err := s.client.ListRequests(token.UUID)
	if err != nil {
		return &model.WebhookSiteEventList{Events: []model.WebhookSiteEvent{}, Error: err.Error()}
	}

	events := make([]model.WebhookSiteEvent, 0, len(page.Data))
	for _, req := range page.Data {
		payload, _ := model.ParseTrioPayload(req.Content)

		// watch_triggered만 위험도 분류, 나머지는 info
		danger := "info"
		if payload.Type == "watch_triggered" {
			danger = ClassifyDanger(payload.Data.Triggered, payload.Data.Condition, payload.Data.Explanation)
		}

		timestamp := payload.Timestamp
		if timestamp == "" {
			timestamp = req.CreatedAt
		}

		id := req.UUID
		if len(id) > 8 {
			id = id[:8]
		}

		events = append(events, model.WebhookSiteEvent{
			ID:               id,
			WebhookRequestID: req.UUID,
			ReceivedAt:       req.CreatedAt,
			Type:             payload.Type,
			DangerLevel:      danger,
			Timestamp:        timestamp,
			SourceURL:        payload.SourceURL,
			Condition:        payload.Data.Condition,
			Triggered:        payload.Data.Triggered,
			Explanation:      payload.Data.Explanation,
			FrameB64:         payload.Data.FrameB64,
			JobID:            payload.Data.JobID,
			Status:           payload.Data.Status,
			Reason:           payload.Data.Reason,
			ChecksPerformed:  payload.Data.ChecksPerformed,
			TriggersFired:    payload.Data.TriggersFired,
		})
	}

	return &model.WebhookSiteEventList{Events: events, Total: page.Total}
}
