package storage

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no sample set exists under the
// requested name.
var ErrNotFound = errors.New("storage: sample set not found")

type Backend interface {
	Get(name string) ([]byte, error)
	Put(name string, buf []byte) error
	Delete(name string) error

	IterateNames(func(name string) error) error

	Close() error
}

type InMemoryBackend struct {
	mu   sync.Mutex
	sets map[string][]byte
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		sets: make(map[string][]byte),
	}
}

func (backend *InMemoryBackend) Get(name string) ([]byte, error) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	buf, ok := backend.sets[name]
	if !ok {
		return nil, ErrNotFound
	}
	return buf, nil
}

func (backend *InMemoryBackend) Put(name string, buf []byte) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.sets[name] = buf
	return nil
}

func (backend *InMemoryBackend) Delete(name string) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	delete(backend.sets, name)
	return nil
}

func (backend *InMemoryBackend) IterateNames(lambda func(string) error) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	for name := range backend.sets {
		if err := lambda(name); err != nil {
			return err
		}
	}
	return nil
}

func (backend *InMemoryBackend) Close() error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.sets = nil
	return nil
}
