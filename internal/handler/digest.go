// 다이제스트 SSE 릴레이 요청을 처리하는 핸들러
//
// POST /api/digest/start: fetch 기반 클라이언트용 (요약 미러링 포함)
// GET  /api/digest/start-sse: 브라우저 EventSource용 (쿼리 파라미터, 미러링 없음)
//
// 응답은 text/event-stream이며 라인 단위로 즉시 flush됨.
// 클라이언트가 연결을 끊으면 요청 context가 취소되어 업스트림 연결도 닫힘.

package handler

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kids-guard/backend/internal/model"
)

// digestService - 서비스 인터페이스
type digestService interface {
	Relay(ctx context.Context, streamURL string, mirror bool, write func(chunk string) error) error
	Summaries(limit int) []model.DigestSummary
}

// DigestHandler 구조체 정의
type DigestHandler struct {
	svc digestService
}

// DigestHandler 객체 생성
func NewDigestHandler(svc digestService) *DigestHandler {
	return &DigestHandler{svc: svc}
}

// Start godoc
// @Summary Relay the Trio live-digest SSE stream (with summary mirroring)
// @Tags digest
// @Accept json
// @Produce text/event-stream
// @Param request body model.DigestStartRequest true "Stream URL"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} model.ErrorResponse
// @Router /api/digest/start [post]
func (h *DigestHandler) Start(c *gin.Context) {
	var req model.DigestStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	h.relay(c, req.StreamURL, true)
}

// StartSSE godoc
// @Summary Relay the Trio live-digest SSE stream (EventSource variant)
// @Tags digest
// @Produce text/event-stream
// @Param stream_url query string true "Stream URL"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} model.ErrorResponse
// @Router /api/digest/start-sse [get]
func (h *DigestHandler) StartSSE(c *gin.Context) {
	h.relay(c, c.Query("stream_url"), false)
}

// Summaries godoc
// @Summary List recent digest summaries
// @Tags digest
// @Produce json
// @Success 200 {array} model.DigestSummary
// @Router /api/digest/summaries [get]
func (h *DigestHandler) Summaries(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summaries(50))
}

func (h *DigestHandler) relay(c *gin.Context, streamURL string, mirror bool) {
	streamURL = strings.TrimSpace(streamURL)
	if streamURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stream_url is required"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	err := h.svc.Relay(c.Request.Context(), streamURL, mirror, func(chunk string) error {
		if _, err := c.Writer.WriteString(chunk); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		// 다운스트림 종료 등 - 연결은 이미 끊겼으므로 로그만 남김
		log.Printf("Digest relay ended: stream=%s, err=%v", streamURL, err)
	}
}
