// 연속 모니터링 작업 요청을 처리하는 핸들러

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kids-guard/backend/internal/model"
	"github.com/kids-guard/backend/internal/service"
)

// monitorService - 서비스 인터페이스
type monitorService interface {
	Start(req model.MonitorStartRequest) (*model.JobMetadata, error)
	Stop(jobID string) (map[string]any, error)
	ListJobs(opts model.JobListOptions) (*model.JobList, error)
	GetJob(jobID string) (map[string]any, error)
}

// MonitorHandler 구조체 정의
type MonitorHandler struct {
	svc monitorService
}

// MonitorHandler 객체 생성
func NewMonitorHandler(svc monitorService) *MonitorHandler {
	return &MonitorHandler{svc: svc}
}

// Start godoc
// @Summary Start a continuous monitoring job
// @Tags monitor
// @Accept json
// @Produce json
// @Param request body model.MonitorStartRequest true "Monitor request"
// @Success 200 {object} model.JobMetadata
// @Failure 400 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/monitor/start [post]
func (h *MonitorHandler) Start(c *gin.Context) {
	var req model.MonitorStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	job, err := h.svc.Start(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonitorRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// Stop godoc
// @Summary Cancel a running monitoring job
// @Tags monitor
// @Accept json
// @Produce json
// @Param request body model.MonitorStopRequest true "Job ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/monitor/stop [post]
func (h *MonitorHandler) Stop(c *gin.Context) {
	var req model.MonitorStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := h.svc.Stop(req.JobID)
	if err != nil {
		if errors.Is(err, service.ErrMissingJobID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListJobs godoc
// @Summary List monitoring jobs from Trio
// @Tags monitor
// @Produce json
// @Param status query string false "Job status filter"
// @Param type query string false "Job type filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} model.JobList
// @Failure 502 {object} model.ErrorResponse
// @Router /api/monitor/jobs [get]
func (h *MonitorHandler) ListJobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	result, err := h.svc.ListJobs(model.JobListOptions{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetJob godoc
// @Summary Get details for a specific job
// @Tags monitor
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]any
// @Failure 502 {object} model.ErrorResponse
// @Router /api/monitor/job/{id} [get]
func (h *MonitorHandler) GetJob(c *gin.Context) {
	result, err := h.svc.GetJob(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
