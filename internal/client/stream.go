// Trio SSE 스트리밍 연결 정의
//
// /live-monitor, /live-digest는 Accept: text/event-stream 헤더를 주면
// 장시간 유지되는 SSE 연결로 전환됨. 연결은 호출자의 context로 취소 가능하며
// context 취소 시 커넥션이 닫힘 (브라우저가 페이지를 닫으면 업스트림도 종료).

package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// 프레임에 base64 이미지가 포함될 수 있어 스캐너 버퍼를 넉넉하게 설정
const maxFrameSize = 10 * 1024 * 1024

// EventStream - 업스트림 SSE 연결의 라인 단위 lazy 시퀀스
type EventStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
}

// Next - 다음 비어있지 않은 라인을 반환
// 스트림 종료 시 io.EOF, 전송 오류 시 해당 에러 반환
func (s *EventStream) Next() (string, error) {
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if line == "" {
			continue
		}
		return line, nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close - 업스트림 연결 종료
func (s *EventStream) Close() error {
	return s.body.Close()
}

// Data - "data:" 프레임의 페이로드를 파싱
// JSON이 아닌 페이로드는 {"raw": ...} 형태로 대체 (버리지 않음)
func (s *EventStream) Data(line string) (map[string]any, bool) {
	if !strings.HasPrefix(line, "data:") {
		return nil, false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return map[string]any{"raw": raw}, true
	}
	return parsed, true
}

// SSE 연결 오픈 공통 로직
func (c *TrioClient) openStream(ctx context.Context, path string, payload any) (*EventStream, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.streamHTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to open trio stream: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, newAPIError(resp.StatusCode, body)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), maxFrameSize)

	return &EventStream{body: resp.Body, scanner: scanner}, nil
}

// POST /live-monitor (SSE) - 연속 모니터링 이벤트 스트림
func (c *TrioClient) StreamMonitor(ctx context.Context, streamURL, condition string) (*EventStream, error) {
	payload := map[string]string{
		"stream_url": streamURL,
		"condition":  condition,
	}
	return c.openStream(ctx, "/live-monitor", payload)
}

// POST /live-digest (SSE) - 주기적 요약(다이제스트) 이벤트 스트림
func (c *TrioClient) StreamDigest(ctx context.Context, streamURL string) (*EventStream, error) {
	payload := map[string]string{
		"stream_url": streamURL,
	}
	return c.openStream(ctx, "/live-digest", payload)
}
