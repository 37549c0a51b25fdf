package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kids-guard/backend/internal/client"
	"github.com/kids-guard/backend/internal/config"
	"github.com/kids-guard/backend/internal/handler"
	"github.com/kids-guard/backend/internal/metrics"
	"github.com/kids-guard/backend/internal/service"
	"github.com/kids-guard/backend/internal/store"
)

// @title KidsGuard Backend API
// @version 1.0
// @description Dashboard API and Trio proxy for AI-powered child safety monitoring
func main() {
	// .env 파일 로드 (없으면 무시)
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.Trio.APIKey == "" {
		log.Println("WARNING: TRIO_API_KEY environment variable not set")
	}

	// 저장소 생성 (프로세스 수명 동안만 유지, 재시작 시 초기화)
	alerts := store.NewAlertStore()
	events := store.NewWebhookEventStore()
	digests := store.NewDigestStore()
	monitors := store.NewMonitorStore()

	// 클라이언트 생성
	trio := client.NewTrioClient(cfg.Trio)
	webhookSite := client.NewWebhookSiteClient(cfg.WebhookSite)

	// 서비스 생성
	webhookSiteSvc := service.NewWebhookSiteService(webhookSite)
	checkSvc := service.NewCheckService(trio, alerts)
	monitorSvc := service.NewMonitorService(trio, monitors, webhookSiteSvc,
		strings.TrimSuffix(cfg.Server.PublicURL, "/")+"/api/webhook")
	webhookSvc := service.NewWebhookService(alerts, events, monitors)
	digestSvc := service.NewDigestService(func(ctx context.Context, streamURL string) (service.LineStream, error) {
		return trio.StreamDigest(ctx, streamURL)
	}, digests)

	// 핸들러 생성
	checkHandler := handler.NewCheckHandler(checkSvc)
	monitorHandler := handler.NewMonitorHandler(monitorSvc)
	webhookHandler := handler.NewWebhookHandler(webhookSvc)
	webhookSiteHandler := handler.NewWebhookSiteHandler(webhookSiteSvc)
	digestHandler := handler.NewDigestHandler(digestSvc)
	alertHandler := handler.NewAlertHandler(alerts)

	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(metrics.Middleware())

	// 헬스체크 및 문서
	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")
	{
		// 단발성 체크
		api.GET("/presets", checkHandler.Presets)
		api.POST("/check", checkHandler.RunCheck)
		api.POST("/validate-stream", checkHandler.ValidateStream)

		// 연속 모니터링
		api.POST("/monitor/start", monitorHandler.Start)
		api.POST("/monitor/stop", monitorHandler.Stop)
		api.GET("/monitor/jobs", monitorHandler.ListJobs)
		api.GET("/monitor/job/:id", monitorHandler.GetJob)

		// 웹훅 수신
		api.POST("/webhook", webhookHandler.Receive)
		api.GET("/webhook/events", webhookHandler.ListEvents)

		// webhook.site 연동
		api.POST("/webhook-site/create", webhookSiteHandler.CreateToken)
		api.GET("/webhook-site/token", webhookSiteHandler.GetToken)
		api.GET("/webhook-site/events", webhookSiteHandler.ListEvents)

		// 다이제스트 릴레이
		api.POST("/digest/start", digestHandler.Start)
		api.GET("/digest/start-sse", digestHandler.StartSSE)
		api.GET("/digest/summaries", digestHandler.Summaries)

		// 알림 히스토리
		api.GET("/alerts", alertHandler.List)
		api.GET("/alerts/export", alertHandler.Export)
		api.POST("/alerts/clear", alertHandler.Clear)
	}

	log.Printf("KidsGuard backend listening on %s", cfg.Server.Addr)
	if err := router.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
