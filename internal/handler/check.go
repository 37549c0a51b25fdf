// 단발성 안전 체크 및 스트림 검증 요청을 처리하는 핸들러

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kids-guard/backend/internal/model"
	"github.com/kids-guard/backend/internal/service"
)

// checkService - 서비스 인터페이스
type checkService interface {
	RunCheck(req model.CheckRequest) (*model.AlertRecord, error)
	Validate(streamURL string) (*model.StreamValidation, error)
}

// CheckHandler 구조체 정의
type CheckHandler struct {
	svc checkService
}

// CheckHandler 객체 생성
func NewCheckHandler(svc checkService) *CheckHandler {
	return &CheckHandler{svc: svc}
}

// RunCheck godoc
// @Summary Run a one-shot safety check
// @Tags check
// @Accept json
// @Produce json
// @Param request body model.CheckRequest true "Check request"
// @Success 200 {object} model.AlertRecord
// @Failure 400 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/check [post]
func (h *CheckHandler) RunCheck(c *gin.Context) {
	var req model.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	record, err := h.svc.RunCheck(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCheckRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// 업스트림 실패는 502로 전달 (재시도 없음)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ValidateStream godoc
// @Summary Validate that a stream URL is live
// @Tags check
// @Accept json
// @Produce json
// @Param request body model.ValidateStreamRequest true "Stream URL"
// @Success 200 {object} model.StreamValidation
// @Failure 400 {object} model.ErrorResponse
// @Router /api/validate-stream [post]
func (h *CheckHandler) ValidateStream(c *gin.Context) {
	var req model.ValidateStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := h.svc.Validate(req.StreamURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stream_url is required"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Presets godoc
// @Summary List preset safety conditions
// @Tags check
// @Produce json
// @Success 200 {array} model.SafetyPreset
// @Router /api/presets [get]
func (h *CheckHandler) Presets(c *gin.Context) {
	c.JSON(http.StatusOK, model.SafetyPresets)
}
