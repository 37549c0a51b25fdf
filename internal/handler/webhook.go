// Trio 웹훅 수신 요청을 처리하는 핸들러
//
// 요청 흐름:
//  1. Trio가 POST /api/webhook으로 이벤트 전송
//  2. JSON 페이로드를 TrioWebhookPayload 구조체로 파싱
//  3. service 레이어에서 저장소 반영 (알림 분류, 작업 상태 변경)
//
// 주의: Trio 웹훅에는 서명이 없어 발신자 검증이 불가능함 (데모 전용 신뢰 경계)

package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kids-guard/backend/internal/model"
)

// webhookService - 서비스 인터페이스
type webhookService interface {
	Ingest(payload model.TrioWebhookPayload) model.WebhookEvent
	Events(limit int) []model.WebhookEvent
}

// WebhookHandler 구조체 정의
type WebhookHandler struct {
	svc webhookService
}

// WebhookHandler 객체 생성
func NewWebhookHandler(svc webhookService) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

// Receive godoc
// @Summary Receive a webhook event from Trio
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body model.TrioWebhookPayload true "Trio event"
// @Success 200 {object} model.WebhookAckResponse
// @Router /api/webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	var payload model.TrioWebhookPayload

	// 본문이 JSON이 아니어도 수신 자체는 실패시키지 않음 (unknown 이벤트로 기록)
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("Failed to parse webhook payload: %v", err)
		payload = model.TrioWebhookPayload{Type: "unknown"}
	}

	h.svc.Ingest(payload)
	c.JSON(http.StatusOK, model.WebhookAckResponse{Status: "ok"})
}

// ListEvents godoc
// @Summary List recent webhook events
// @Tags webhook
// @Produce json
// @Success 200 {array} model.WebhookEvent
// @Router /api/webhook/events [get]
func (h *WebhookHandler) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Events(50))
}
