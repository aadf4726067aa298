package store

import (
	"causalkit/dist"
	"causalkit/storage"
	"causalkit/utils"
	"errors"
	cmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSamplesSerialization(t *testing.T) {
	samples := dist.NewChains([][]float64{
		{0.1, 0.4, 0.3},
		{0.2, 0.5, 0.6},
	})

	buf, err := SamplesToBytes("effect", samples)
	assert.NoError(t, err)

	newSamples, err := BytesToSamples(buf)
	assert.NoError(t, err)

	utils.AssertTrue(t, cmp.Equal(samples.Chains(), newSamples.Chains()))
	utils.AssertEqual(t, samples.Mean(), newSamples.Mean())
}

func testSampleStore(t *testing.T, store *SampleStore) {
	chains := [][]float64{
		{0.1, 0.4, 0.3},
		{0.2, 0.5, 0.6},
	}
	samples := dist.NewChains(chains)

	_, err := store.Get("effect")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	assert.NoError(t, store.Put("effect", samples))

	got, err := store.Get("effect")
	assert.NoError(t, err)
	assert.True(t, cmp.Equal(chains, got.Chains()))
	assert.Equal(t, samples.Mean(), got.Mean())

	names, err := store.Names()
	assert.NoError(t, err)
	assert.Equal(t, []string{"effect"}, names)

	assert.NoError(t, store.Delete("effect"))
	_, err = store.Get("effect")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestSampleStoreInMemory(t *testing.T) {
	for _, cacheEnabled := range []bool{false, true} {
		store := NewSampleStore(storage.NewInMemoryBackend(), cacheEnabled)
		testSampleStore(t, store)
		assert.NoError(t, store.Close())
	}
}

func TestSampleStoreBadger(t *testing.T) {
	backend := storage.NewBadgerBackend(storage.TestBadgerDB())
	store := NewSampleStore(backend, true)
	testSampleStore(t, store)
	assert.NoError(t, store.Close())
}

func TestSampleStoreCachedGet(t *testing.T) {
	store := NewSampleStore(storage.NewInMemoryBackend(), true)
	samples := dist.NewSamples([]float64{1, 2, 3})

	assert.NoError(t, store.Put("mu", samples))

	// cached after Put, so the same instance comes back
	got, err := store.Get("mu")
	assert.NoError(t, err)
	assert.Same(t, samples, got)

	assert.NoError(t, store.Close())
}
