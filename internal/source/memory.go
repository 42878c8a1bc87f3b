package source

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gridlens/gridlens/internal/series"
)

// MemorySource is an in-memory Source guarded by a read-write mutex.
type MemorySource struct {
	mu   sync.RWMutex
	vars map[string]*entry
}

type entry struct {
	meta   VariableMeta
	series series.Series
}

// NewMemorySource creates an empty in-memory source.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		vars: make(map[string]*entry),
	}
}

// List returns metadata for every stored variable, sorted by name.
func (m *MemorySource) List(ctx context.Context) ([]VariableMeta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metas := make([]VariableMeta, 0, len(m.vars))
	for _, e := range m.vars {
		metas = append(metas, e.meta)
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].Name < metas[j].Name })
	return metas, nil
}

// Get returns the stored series snapshot and its metadata.
func (m *MemorySource) Get(ctx context.Context, name string) (series.Series, VariableMeta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.vars[name]
	if !ok {
		return nil, VariableMeta{}, ErrVariableNotFound
	}
	return e.series, e.meta, nil
}

// Put stores a variable. The series is copied so later caller mutations
// cannot alter the stored snapshot.
func (m *MemorySource) Put(ctx context.Context, name, units string, s series.Series, replace bool) (VariableMeta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.vars[name]; ok && !replace {
		return VariableMeta{}, ErrVariableExists
	}

	snapshot := make(series.Series, len(s))
	copy(snapshot, s)

	meta := VariableMeta{
		Name:         name,
		Units:        units,
		PointCount:   len(snapshot),
		MissingCount: snapshot.MissingCount(),
		CreatedAt:    time.Now().UTC(),
	}
	m.vars[name] = &entry{meta: meta, series: snapshot}
	return meta, nil
}

// Delete removes a variable.
func (m *MemorySource) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.vars[name]; !ok {
		return ErrVariableNotFound
	}
	delete(m.vars, name)
	return nil
}
