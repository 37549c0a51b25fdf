// 다이제스트 SSE 릴레이 비즈니스 로직 정의
// 업스트림(Trio) SSE 연결 하나를 다운스트림(브라우저) 연결 하나로 중계
//
// 처리 흐름:
//  1. streamURL로 업스트림 SSE 연결 오픈 (요청 context 전달 → 클라이언트 종료 시 업스트림도 닫힘)
//  2. 업스트림 라인을 순서 그대로 즉시 다운스트림에 전달 (버퍼링/배칭 없음)
//  3. data: 프레임은 JSON 파싱을 시도하고 type=summary면 요약 저장소에 미러링
//     - 파싱 실패는 미러링만 건너뛰고 라인은 그대로 전달
//  4. 업스트림 읽기 실패 시 합성 error 프레임 한 개를 전송하고 종료
//  5. 다운스트림 쓰기 실패(브라우저 종료) 시 즉시 종료

package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"github.com/kids-guard/backend/internal/metrics"
	"github.com/kids-guard/backend/internal/model"
	"github.com/kids-guard/backend/internal/store"
)

var ErrMissingStreamURL = errors.New("stream_url is required")

// LineStream - 업스트림 SSE 연결의 라인 단위 시퀀스
// client.EventStream이 구현함
type LineStream interface {
	Next() (string, error)
	Close() error
}

// digestOpener - 업스트림 다이제스트 연결 오픈 함수
type digestOpener func(ctx context.Context, streamURL string) (LineStream, error)

// DigestService 구조체 정의
type DigestService struct {
	open    digestOpener
	digests *store.DigestStore
}

// DigestService 객체 생성
func NewDigestService(open func(ctx context.Context, streamURL string) (LineStream, error), digests *store.DigestStore) *DigestService {
	return &DigestService{
		open:    open,
		digests: digests,
	}
}

// Relay - 업스트림 다이제스트 스트림을 write 콜백으로 중계
//
// mirror가 true면 summary 타입 프레임을 요약 저장소에 기록.
// 프레임 순서는 업스트림 순서와 동일하게 유지되며, 재시작되지 않음
// (호출마다 새 업스트림 연결을 오픈).
func (s *DigestService) Relay(ctx context.Context, streamURL string, mirror bool, write func(chunk string) error) error {
	streamURL = strings.TrimSpace(streamURL)
	if streamURL == "" {
		return ErrMissingStreamURL
	}

	stream, err := s.open(ctx, streamURL)
	if err != nil {
		log.Printf("Failed to open digest stream: stream=%s, err=%v", streamURL, err)
		metrics.RelayUpstreamErrors.Inc()
		return write(errorFrame(err))
	}
	defer stream.Close()

	metrics.RelayActive.Inc()
	defer metrics.RelayActive.Dec()

	for {
		line, err := stream.Next()
		if err != nil {
			if err == io.EOF {
				// 업스트림 정상 종료
				return nil
			}
			log.Printf("Digest stream read failed: stream=%s, err=%v", streamURL, err)
			metrics.RelayUpstreamErrors.Inc()
			return write(errorFrame(err))
		}

		// 전달이 먼저, 미러링은 그 다음 (미러링 실패가 전달에 영향을 주지 않도록)
		if err := write(line + "\n"); err != nil {
			// 다운스트림 종료 (브라우저가 페이지를 닫음)
			return err
		}
		metrics.RelayFramesTotal.Inc()

		if mirror {
			s.mirrorSummary(streamURL, line)
		}
	}
}

// mirrorSummary - data: 프레임이 summary 타입이면 요약 저장소에 기록
// JSON이 아니거나 summary가 아니면 조용히 무시
func (s *DigestService) mirrorSummary(streamURL, line string) {
	if !strings.HasPrefix(line, "data:") {
		return
	}
	raw := strings.TrimSpace(strings.TrimPrefix(line, "data:"))

	var event model.DigestEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return
	}
	if event.Type != "summary" {
		return
	}

	summary := event.Summary
	if summary == "" {
		summary = raw
	}
	s.digests.Insert(model.DigestSummary{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Summary:   summary,
		StreamURL: streamURL,
	})
}

// Summaries - 최근 요약 조회
func (s *DigestService) Summaries(limit int) []model.DigestSummary {
	return s.digests.List(limit)
}

// errorFrame - 합성 error 프레임 생성
func errorFrame(cause error) string {
	payload, _ := json.Marshal(map[string]string{
		"type":    "error",
		"message": cause.Error(),
	})
	return "data: " + string(payload) + "\n\n"
}
