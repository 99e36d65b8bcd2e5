package profile

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

type memoryProfile struct {
	plan  *PlanState
	sales []domain.SaleRecord
}

// MemoryStore keeps profile data in process memory.
// Data is copied on the way in and out so callers never share slices.
type MemoryStore struct {
	mu       sync.RWMutex
	names    []string
	profiles map[string]*memoryProfile
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]*memoryProfile)}
}

// LoadPlan implements Store
func (m *MemoryStore) LoadPlan(ctx context.Context, name string) (*PlanState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[name]
	if !ok {
		return NewPlanState(), nil
	}
	return p.plan.Clone(), nil
}

// SavePlan implements Store
func (m *MemoryStore) SavePlan(ctx context.Context, name string, plan *PlanState) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.existing(name)
	if err != nil {
		return err
	}
	p.plan = plan.Clone()
	return nil
}

// LoadSales implements Store
func (m *MemoryStore) LoadSales(ctx context.Context, name string) ([]domain.SaleRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.SaleRecord{}
	if p, ok := m.profiles[name]; ok {
		out = append(out, p.sales...)
	}
	return out, nil
}

// SaveSales implements Store
func (m *MemoryStore) SaveSales(ctx context.Context, name string, sales []domain.SaleRecord) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.existing(name)
	if err != nil {
		return err
	}
	p.sales = append([]domain.SaleRecord{}, sales...)
	return nil
}

// Create implements Store
func (m *MemoryStore) Create(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[name]; ok {
		return nil
	}
	m.names = append(m.names, name)
	m.profiles[name] = &memoryProfile{plan: NewPlanState()}
	return nil
}

func (m *MemoryStore) existing(name string) (*memoryProfile, error) {
	p, ok := m.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrProfileNotFound)
	}
	return p, nil
}

// List implements Store
func (m *MemoryStore) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out, nil
}

// Delete implements Store
func (m *MemoryStore) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[name]; !ok {
		return fmt.Errorf("%s: %w", name, domain.ErrProfileNotFound)
	}
	delete(m.profiles, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
	return nil
}
