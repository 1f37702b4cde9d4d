package store

import "sync"

// MemoryBackend holds the document in memory. Used by tests and ephemeral
// runs; LoadErr/SaveErr let tests exercise backend failure paths.
type MemoryBackend struct {
	mu      sync.Mutex
	data    []byte
	LoadErr error
	SaveErr error
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.LoadErr != nil {
		return nil, b.LoadErr
	}
	if b.data == nil {
		return nil, nil
	}
	return append([]byte{}, b.data...), nil
}

func (b *MemoryBackend) Save(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.SaveErr != nil {
		return b.SaveErr
	}
	b.data = append([]byte{}, data...)
	return nil
}

func (b *MemoryBackend) Close() error { return nil }
