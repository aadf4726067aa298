package storage

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestBadgerBackend(t *testing.T) {
	backend := NewBadgerBackend(TestBadgerDB())
	testBackendRoundTrip(t, backend)
	assert.NoError(t, backend.Close())
}

func TestBadgerBackendIterationStops(t *testing.T) {
	backend := NewBadgerBackend(TestBadgerDB())

	assert.NoError(t, backend.Put("a", []byte{1}))
	assert.NoError(t, backend.Put("b", []byte{2}))

	stop := errors.New("stop")
	count := 0
	err := backend.IterateNames(func(string) error {
		count++
		return stop
	})
	assert.True(t, errors.Is(err, stop))
	assert.Equal(t, 1, count)

	assert.NoError(t, backend.Close())
}
