// 프로세스 메모리에만 존재하는 알림 히스토리 저장소
// 최신순(newest-first) 유지, cap 초과 시 가장 오래된 레코드 제거
// 여러 핸들러/릴레이 고루틴이 동시에 쓰기 때문에 뮤텍스로 보호

package store

import (
	"sync"

	"github.com/kids-guard/backend/internal/model"
)

const defaultCap = 200

// AlertStore 구조체 정의
type AlertStore struct {
	mu      sync.Mutex
	cap     int
	records []model.AlertRecord
}

// AlertStore 객체 생성
func NewAlertStore() *AlertStore {
	return &AlertStore{cap: defaultCap}
}

// Insert - 레코드를 맨 앞에 추가하고 cap을 넘으면 뒤에서 제거
// 삽입 완료 시점에 길이가 cap을 넘지 않음이 보장됨
func (s *AlertStore) Insert(record model.AlertRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]model.AlertRecord{record}, s.records...)
	if len(s.records) > s.cap {
		s.records = s.records[:s.cap]
	}
}

// List - 최신순으로 최대 limit개 반환, level이 주어지면 danger_level 필터링
func (s *AlertStore) List(limit int, level string) []model.AlertRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.AlertRecord, 0, limit)
	for _, r := range s.records {
		if level != "" && r.DangerLevel != level {
			continue
		}
		out = append(out, r)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// All - 전체 히스토리 반환 (export용)
func (s *AlertStore) All() []model.AlertRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.AlertRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Clear - 히스토리 전체 삭제
func (s *AlertStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// Len - 현재 레코드 수
func (s *AlertStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
