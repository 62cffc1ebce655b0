package memory

import (
	"sync"

	"github.com/cafebazaar/pairwise/pkg/pairwise"
)

type memoryBackend struct {
	mutex    sync.RWMutex
	sessions map[string]*pairwise.State
	address  string
}

func New(address string) pairwise.Backend {
	return &memoryBackend{
		sessions: make(map[string]*pairwise.State),
		address:  address,
	}
}

func (m *memoryBackend) Address() string {
	return m.address
}

func (m *memoryBackend) Load(session string) (*pairwise.State, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.sessions == nil {
		return nil, pairwise.ErrClosed
	}

	state, ok := m.sessions[session]
	if !ok {
		return nil, pairwise.ErrNotFound
	}

	return state.Clone(), nil
}

func (m *memoryBackend) Save(session string, state *pairwise.State) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.sessions == nil {
		return pairwise.ErrClosed
	}

	m.sessions[session] = state.Clone()
	return nil
}

func (m *memoryBackend) Delete(session string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.sessions == nil {
		return pairwise.ErrClosed
	}

	delete(m.sessions, session)
	return nil
}

func (m *memoryBackend) Close() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.sessions = nil
	return nil
}
