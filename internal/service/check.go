// 단발성 안전 체크 비즈니스 로직 정의
// handler에서 받은 요청을 client를 통해 Trio로 전달하고 결과를 알림 히스토리에 기록
//
// 처리 흐름:
//  1. 입력 검증 (stream_url, condition 필수) - 업스트림 호출 전에 거부
//  2. TrioClient.CheckOnce 호출
//  3. 결과를 ClassifyDanger로 분류
//  4. AlertRecord 생성 후 히스토리 맨 앞에 삽입
//  5. 레코드 반환

package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kids-guard/backend/internal/model"
	"github.com/kids-guard/backend/internal/store"
)

var ErrInvalidCheckRequest = errors.New("stream_url and condition are required")

// checkClient - Trio 클라이언트 인터페이스 (check 전용)
type checkClient interface {
	CheckOnce(streamURL, condition string) (*model.CheckResult, error)
	ValidateStream(streamURL string) *model.StreamValidation
}

// CheckService 구조체 정의
type CheckService struct {
	trio   checkClient
	alerts *store.AlertStore
}

// CheckService 객체 생성
func NewCheckService(trio checkClient, alerts *store.AlertStore) *CheckService {
	return &CheckService{
		trio:   trio,
		alerts: alerts,
	}
}

// RunCheck - 단발성 체크 수행 후 알림 레코드 생성
func (s *CheckService) RunCheck(req model.CheckRequest) (*model.AlertRecord, error) {
	streamURL := strings.TrimSpace(req.StreamURL)
	condition := strings.TrimSpace(req.Condition)
	if streamURL == "" || condition == "" {
		return nil, ErrInvalidCheckRequest
	}

	result, err := s.trio.CheckOnce(streamURL, condition)
	if err != nil {
		return nil, err
	}

	danger := ClassifyDanger(result.Triggered, condition, result.Explanation)

	record := model.AlertRecord{
		ID:          newRecordID(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		StreamURL:   streamURL,
		Condition:   condition,
		Triggered:   result.Triggered,
		Explanation: result.Explanation,
		LatencyMs:   result.LatencyMs,
		DangerLevel: danger,
		Source:      "check",
	}
	s.alerts.Insert(record)

	log.Printf("Check completed: stream=%s, triggered=%v, danger=%s, latency=%dms",
		streamURL, result.Triggered, danger, result.LatencyMs)

	return &record, nil
}

// Validate - 스트림 URL 간이 검증
func (s *CheckService) Validate(streamURL string) (*model.StreamValidation, error) {
	streamURL = strings.TrimSpace(streamURL)
	if streamURL == "" {
		return nil, ErrInvalidCheckRequest
	}
	return s.trio.ValidateStream(streamURL), nil
}

// newRecordID - uuid의 앞 8자리를 레코드 ID로 사용
func newRecordID() string {
	return uuid.NewString()[:8]
}
