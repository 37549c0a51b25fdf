// webhook.site 연동 요청을 처리하는 핸들러

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kids-guard/backend/internal/model"
)

// webhookSiteService - 서비스 인터페이스
type webhookSiteService interface {
	CreateToken() (*model.WebhookSiteToken, error)
	Token() (*model.WebhookSiteToken, error)
	Events() *model.WebhookSiteEventList
}

// WebhookSiteHandler 구조체 정의
type WebhookSiteHandler struct {
	svc webhookSiteService
}

// WebhookSiteHandler 객체 생성
func NewWebhookSiteHandler(svc webhookSiteService) *WebhookSiteHandler {
	return &WebhookSiteHandler{svc: svc}
}

// CreateToken godoc
// @Summary Create a new webhook.site token
// @Tags webhook-site
// @Produce json
// @Success 200 {object} model.WebhookSiteToken
// @Failure 502 {object} model.ErrorResponse
// @Router /api/webhook-site/create [post]
func (h *WebhookSiteHandler) CreateToken(c *gin.Context) {
	token, err := h.svc.CreateToken()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, token)
}

// GetToken godoc
// @Summary Get the current webhook.site token
// @Tags webhook-site
// @Produce json
// @Success 200 {object} model.WebhookSiteToken
// @Failure 404 {object} model.ErrorResponse
// @Router /api/webhook-site/token [get]
func (h *WebhookSiteHandler) GetToken(c *gin.Context) {
	token, err := h.svc.Token()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, token)
}

// ListEvents godoc
// @Summary Poll webhook.site for received Trio events
// @Tags webhook-site
// @Produce json
// @Success 200 {object} model.WebhookSiteEventList
// @Router /api/webhook-site/events [get]
func (h *WebhookSiteHandler) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Events())
}
