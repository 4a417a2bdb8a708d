package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// MockWorkforceRepository is an in-memory workforce needs store for tests
type MockWorkforceRepository struct {
	mu    sync.RWMutex
	needs map[production.WorkforceType][]production.WorkforceNeed
}

// NewMockWorkforceRepository creates an empty needs store
func NewMockWorkforceRepository() *MockWorkforceRepository {
	return &MockWorkforceRepository{needs: make(map[production.WorkforceType][]production.WorkforceNeed)}
}

// SetNeeds replaces the consumables of one tier
func (m *MockWorkforceRepository) SetNeeds(workforceType production.WorkforceType, needs ...production.WorkforceNeed) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range needs {
		needs[i].WorkforceType = workforceType
	}
	m.needs[workforceType] = needs
}

func (m *MockWorkforceRepository) FindNeeds(ctx context.Context, workforceType production.WorkforceType) ([]production.WorkforceNeed, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	needs := m.needs[workforceType]
	out := make([]production.WorkforceNeed, len(needs))
	copy(out, needs)
	return out, nil
}
