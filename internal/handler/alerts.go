// 알림 히스토리 조회/내보내기/삭제 핸들러

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kids-guard/backend/internal/store"
)

// AlertHandler 구조체 정의
type AlertHandler struct {
	alerts *store.AlertStore
}

// AlertHandler 객체 생성
func NewAlertHandler(alerts *store.AlertStore) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// List godoc
// @Summary List recent alerts
// @Tags alerts
// @Produce json
// @Param level query string false "Danger level filter (safe|medium|high)"
// @Success 200 {array} model.AlertRecord
// @Router /api/alerts [get]
func (h *AlertHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.alerts.List(100, c.Query("level")))
}

// Export godoc
// @Summary Export the full alert history as a JSON download
// @Tags alerts
// @Produce json
// @Success 200 {array} model.AlertRecord
// @Router /api/alerts/export [get]
func (h *AlertHandler) Export(c *gin.Context) {
	data, err := json.MarshalIndent(h.alerts.All(), "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=kidsguard_alerts.json")
	c.Data(http.StatusOK, "application/json", data)
}

// Clear godoc
// @Summary Clear the alert history
// @Tags alerts
// @Produce json
// @Success 200 {object} model.StatusResponse
// @Router /api/alerts/clear [post]
func (h *AlertHandler) Clear(c *gin.Context) {
	h.alerts.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
