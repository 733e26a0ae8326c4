package localstore

import "sync"

// MemoryKV es la implementación en memoria del puerto KV, usada en tests y
// como almacenamiento efímero.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKV construye un KV vacío.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

// Get devuelve una copia del valor almacenado.
func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set almacena una copia del valor.
func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}
