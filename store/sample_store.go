package store

import (
	"causalkit/dist"
	"causalkit/storage"
	"github.com/dgraph-io/ristretto"
	"github.com/goccy/go-json"
)

// sampleSetDoc is the stored form of a sample set. Chains are kept
// separate so the sampling dimensions survive a round trip.
type sampleSetDoc struct {
	Name   string      `json:"name"`
	Chains [][]float64 `json:"chains"`
}

func SamplesToBytes(name string, samples *dist.Samples) ([]byte, error) {
	return json.Marshal(&sampleSetDoc{Name: name, Chains: samples.Chains()})
}

func BytesToSamples(buf []byte) (*dist.Samples, error) {
	var doc sampleSetDoc
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, err
	}
	return dist.NewChains(doc.Chains), nil
}

// SampleStore persists named sample sets behind a read cache, so
// reporting and plotting callers can reload posterior draws without
// deserializing from the backend on every access.
type SampleStore struct {
	backend      storage.Backend
	cacheEnabled bool
	cache        *ristretto.Cache
}

func NewSampleStore(backend storage.Backend, cacheEnabled bool) *SampleStore {
	cache, _ := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 26,
		BufferItems: 64,
	})

	return &SampleStore{
		backend:      backend,
		cacheEnabled: cacheEnabled,
		cache:        cache,
	}
}

func (store *SampleStore) Get(name string) (*dist.Samples, error) {
	if store.cacheEnabled {
		cached, found := store.cache.Get(name)
		if found {
			return cached.(*dist.Samples), nil
		}
	}
	buf, err := store.backend.Get(name)
	if err != nil {
		return nil, err
	}
	samples, err := BytesToSamples(buf)
	if err != nil {
		return nil, err
	}
	if store.cacheEnabled {
		store.cache.Set(name, samples, 1)
	}
	return samples, nil
}

func (store *SampleStore) Put(name string, samples *dist.Samples) error {
	buf, err := SamplesToBytes(name, samples)
	if err != nil {
		return err
	}
	if err := store.backend.Put(name, buf); err != nil {
		return err
	}
	if store.cacheEnabled {
		store.cache.Set(name, samples, 1)
		store.cache.Wait()
	}
	return nil
}

func (store *SampleStore) Delete(name string) error {
	if store.cacheEnabled {
		store.cache.Del(name)
	}
	return store.backend.Delete(name)
}

func (store *SampleStore) Names() ([]string, error) {
	names := make([]string, 0)
	err := store.backend.IterateNames(func(name string) error {
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (store *SampleStore) Close() error {
	return store.backend.Close()
}
