package helpers

import (
	"context"
	"sort"
	"sync"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// MockCatalogRepository is an in-memory catalog for tests
type MockCatalogRepository struct {
	mu        sync.RWMutex
	recipes   map[string]*production.Recipe
	buildings map[string]*production.Building
	items     map[string]*production.Item

	// FindErr, when set, is returned by every lookup
	FindErr error
}

// NewMockCatalogRepository creates an empty in-memory catalog
func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{
		recipes:   make(map[string]*production.Recipe),
		buildings: make(map[string]*production.Building),
		items:     make(map[string]*production.Item),
	}
}

// AddRecipe stores a recipe
func (m *MockCatalogRepository) AddRecipe(recipe *production.Recipe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipes[recipe.Symbol()] = recipe
}

// AddBuilding stores a building
func (m *MockCatalogRepository) AddBuilding(building *production.Building) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buildings[building.Symbol] = building
}

// AddItem stores an item
func (m *MockCatalogRepository) AddItem(item *production.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.Symbol] = item
}

func (m *MockCatalogRepository) FindRecipe(ctx context.Context, symbol string) (*production.Recipe, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.recipes[symbol], nil
}

func (m *MockCatalogRepository) FindRecipesForItem(ctx context.Context, itemSymbol string) ([]*production.Recipe, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found []*production.Recipe
	for _, recipe := range m.recipes {
		if _, ok := recipe.Output(itemSymbol); ok {
			found = append(found, recipe)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Symbol() < found[j].Symbol() })
	return found, nil
}

func (m *MockCatalogRepository) FindBuilding(ctx context.Context, symbol string) (*production.Building, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.buildings[symbol], nil
}

func (m *MockCatalogRepository) FindItem(ctx context.Context, symbol string) (*production.Item, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[symbol], nil
}
