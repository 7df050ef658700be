package prefs

import (
	"context"
	"sync"
)

// MemoryStore is the ephemeral Store used in tests and single-process runs.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Language(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[keyLanguage], nil
}

func (m *MemoryStore) SetLanguage(ctx context.Context, lang string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[keyLanguage] = lang
	return nil
}

func (m *MemoryStore) SidebarCollapsed(ctx context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[keySidebar] == "true", nil
}

func (m *MemoryStore) SetSidebarCollapsed(ctx context.Context, collapsed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if collapsed {
		m.values[keySidebar] = "true"
	} else {
		m.values[keySidebar] = "false"
	}
	return nil
}
