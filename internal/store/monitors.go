package store

import (
	"sync"

	"github.com/kids-guard/backend/internal/model"
)

// MonitorStore - 로컬 모니터링 작업 메타데이터 테이블
// 레코드는 삭제되지 않고 status만 변경됨 (running → stopped|completed|failed)
type MonitorStore struct {
	mu   sync.Mutex
	jobs map[string]model.JobMetadata
}

func NewMonitorStore() *MonitorStore {
	return &MonitorStore{jobs: make(map[string]model.JobMetadata)}
}

func (s *MonitorStore) Put(job model.JobMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.JobID] = job
}

func (s *MonitorStore) Get(jobID string) (model.JobMetadata, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	return job, ok
}

// SetStatus - 작업 상태 변경, 없는 작업이면 false 반환
func (s *MonitorStore) SetStatus(jobID, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return false
	}
	job.Status = status
	s.jobs[jobID] = job
	return true
}

func (s *MonitorStore) All() []model.JobMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.JobMetadata, 0, len(s.jobs))
	for _, job := range s.jobs {
		out = append(out, job)
	}
	return out
}
