package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// MockPlanetRepository is an in-memory planet store for tests
type MockPlanetRepository struct {
	mu      sync.RWMutex
	planets []*production.Planet
}

// NewMockPlanetRepository creates a planet store holding planets
func NewMockPlanetRepository(planets ...*production.Planet) *MockPlanetRepository {
	return &MockPlanetRepository{planets: planets}
}

// AddPlanet stores a planet
func (m *MockPlanetRepository) AddPlanet(planet *production.Planet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.planets = append(m.planets, planet)
}

func (m *MockPlanetRepository) FindPlanet(ctx context.Context, identifier string) (*production.Planet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.planets {
		if p.Matches(identifier) {
			return p, nil
		}
	}
	return nil, nil
}
