package store

import (
	"sync"

	"github.com/kids-guard/backend/internal/model"
)

// DigestStore - 릴레이가 추출한 다이제스트 요약 저장소 (cap 200, 최신순)
type DigestStore struct {
	mu        sync.Mutex
	cap       int
	summaries []model.DigestSummary
}

func NewDigestStore() *DigestStore {
	return &DigestStore{cap: defaultCap}
}

func (s *DigestStore) Insert(summary model.DigestSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries = append([]model.DigestSummary{summary}, s.summaries...)
	if len(s.summaries) > s.cap {
		s.summaries = s.summaries[:s.cap]
	}
}

func (s *DigestStore) List(limit int) []model.DigestSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.summaries) {
		limit = len(s.summaries)
	}
	out := make([]model.DigestSummary, limit)
	copy(out, s.summaries[:limit])
	return out
}

func (s *DigestStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.summaries)
}
