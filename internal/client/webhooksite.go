// webhook.site와 통신하는 클라이언트 정의
//
// 데모 편의용 통합: webhook.site는 무료/무인증 공개 릴레이이므로
// 수신 페이로드에 대한 서명 검증이 불가능함. 신뢰 경계가 없는 데모 전용 경로로만 사용할 것.

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kids-guard/backend/internal/config"
	"github.com/kids-guard/backend/internal/model"
)

// WebhookSiteClient 구조체 정의
type WebhookSiteClient struct {
	baseURL    string
	httpClient *http.Client
}

// WebhookSiteClient 객체 생성
func NewWebhookSiteClient(cfg config.WebhookSiteConfig) *WebhookSiteClient {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://webhook.site"
	}
	return &WebhookSiteClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// POST /token - 새 토큰 생성 (무료, 인증 불필요, 7일 유지)
func (c *WebhookSiteClient) CreateToken() (*model.WebhookSiteToken, error) {
	payload, err := json.Marshal(map[string]any{
		"cors":   true,
		"expiry": 604800,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/token", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook.site token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("webhook.site returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var tokenData struct {
		UUID      string `json:"uuid"`
		CreatedAt string `json:"created_at"`
	}
	if err := json.Unmarshal(body, &tokenData); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &model.WebhookSiteToken{
		UUID:      tokenData.UUID,
		URL:       c.baseURL + "/" + tokenData.UUID,
		ViewURL:   c.baseURL + "/#!/view/" + tokenData.UUID,
		CreatedAt: tokenData.CreatedAt,
	}, nil
}

// GET /token/{id}/requests - 토큰이 수신한 요청 목록 폴링 (최신순, 최대 50건)
func (c *WebhookSiteClient) ListRequests(tokenUUID string) (*model.WebhookSiteRequestPage, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/token/"+tokenUUID+"/requests?sorting=newest&per_page=50", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to poll webhook.site: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("webhook.site returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var page model.WebhookSiteRequestPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &page, nil
}
