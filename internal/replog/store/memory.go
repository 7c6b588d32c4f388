package store

import (
	"context"
	"sync"

	"github.com/oliverhees/reptally/internal/replog"
)

// Memory keeps the log in memory only. Used for tests and for running
// the service with storage_engine = "memory", where everything is gone
// on restart.
type Memory struct {
	mu      sync.Mutex
	entries []replog.Entry
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]replog.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]replog.Entry, len(m.entries))
	copy(entries, m.entries)
	return entries, nil
}

func (m *Memory) Save(_ context.Context, entries []replog.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make([]replog.Entry, len(entries))
	copy(m.entries, entries)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = nil
	return nil
}

func (m *Memory) Close() error {
	return nil
}
