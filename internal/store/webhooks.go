package store

import (
	"sync"

	"github.com/kids-guard/backend/internal/model"
)

// WebhookEventStore - 수신된 웹훅 이벤트 저장소 (append-only, cap 200, 최신순)
type WebhookEventStore struct {
	mu     sync.Mutex
	cap    int
	events []model.WebhookEvent
}

func NewWebhookEventStore() *WebhookEventStore {
	return &WebhookEventStore{cap: defaultCap}
}

func (s *WebhookEventStore) Insert(event model.WebhookEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append([]model.WebhookEvent{event}, s.events...)
	if len(s.events) > s.cap {
		s.events = s.events[:s.cap]
	}
}

func (s *WebhookEventStore) List(limit int) []model.WebhookEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]model.WebhookEvent, limit)
	copy(out, s.events[:limit])
	return out
}

func (s *WebhookEventStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
