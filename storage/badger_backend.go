package storage

import (
	"errors"
	"github.com/dgraph-io/badger/v2"
)

// TestBadgerDB returns an in-memory badger instance for tests.
func TestBadgerDB() *badger.DB {
	option := badger.DefaultOptions("").WithInMemory(true)
	db, err := badger.Open(option)
	if err != nil {
		panic(err)
	}
	return db
}

type BadgerBackend struct {
	db *badger.DB
}

func NewBadgerBackend(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

func (backend *BadgerBackend) Get(name string) ([]byte, error) {
	var buf []byte
	err := backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(name))
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (backend *BadgerBackend) Put(name string, buf []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(name), buf)
	})
}

func (backend *BadgerBackend) Delete(name string) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(name))
	})
}

func (backend *BadgerBackend) IterateNames(lambda func(string) error) error {
	return backend.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := lambda(string(it.Item().Key())); err != nil {
				return err
			}
		}
		return nil
	})
}

func (backend *BadgerBackend) Close() error {
	return backend.db.Close()
}
