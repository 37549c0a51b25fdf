package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kids-guard/backend/internal/model"
)

// fakeDigestService - 준비된 라인을 그대로 중계하는 대역
type fakeDigestService struct {
	lines     []string
	streamURL string
	mirror    bool
}

func (f *fakeDigestService) Relay(ctx context.Context, streamURL string, mirror bool, write func(chunk string) error) error {
	f.streamURL = streamURL
	f.mirror = mirror
	for _, line := range f.lines {
		if err := write(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeDigestService) Summaries(limit int) []model.DigestSummary {
	return []model.DigestSummary{{Summary: "quiet"}}
}

func newDigestRouter(svc *fakeDigestService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDigestHandler(svc)
	r.POST("/api/digest/start", h.Start)
	r.GET("/api/digest/start-sse", h.StartSSE)
	r.GET("/api/digest/summaries", h.Summaries)
	return r
}

func TestDigestStartStreamsLines(t *testing.T) {
	svc := &fakeDigestService{lines: []string{"data: a", "data: b"}}
	r := newDigestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/digest/start", bytes.NewBufferString(`{"stream_url":"rtsp://cam/live"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("content-type = %q, want text/event-stream", got)
	}
	if got := w.Header().Get("X-Accel-Buffering"); got != "no" {
		t.Fatalf("x-accel-buffering = %q, want no", got)
	}
	if w.Body.String() != "data: a\ndata: b\n" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
	if !svc.mirror {
		t.Fatal("expected POST variant to mirror summaries")
	}
	if svc.streamURL != "rtsp://cam/live" {
		t.Fatalf("stream url = %q", svc.streamURL)
	}
}

func TestDigestStartSSEVariant(t *testing.T) {
	svc := &fakeDigestService{lines: []string{"data: a"}}
	r := newDigestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/digest/start-sse?stream_url=rtsp://cam/live", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	// EventSource 변형은 요약을 미러링하지 않음
	if svc.mirror {
		t.Fatal("expected GET variant not to mirror")
	}
}

func TestDigestStartRequiresStreamURL(t *testing.T) {
	r := newDigestRouter(&fakeDigestService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/digest/start", bytes.NewBufferString(`{"stream_url":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/digest/start-sse", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDigestSummaries(t *testing.T) {
	r := newDigestRouter(&fakeDigestService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/digest/summaries", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("quiet")) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
