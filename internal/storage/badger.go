package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// badgerStore implements Store on an embedded Badger database.
type badgerStore struct {
	db *badger.DB
}

// Open opens (creating if needed) the Badger database at path.
func Open(path string) (Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger store at %s: %w", path, err)
	}
	return &badgerStore{db: db}, nil
}

// Get reads a key. A missing key is not an error; ok is false.
func (s *badgerStore) Get(key string) (string, bool, error) {
	var value string
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			found = true
			return nil
		})
	})
	if err != nil {
		return "", false, fmt.Errorf("reading key %s: %w", key, err)
	}
	return value, found, nil
}

// Set writes a key.
func (s *badgerStore) Set(key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is a no-op.
func (s *badgerStore) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("deleting key %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *badgerStore) Close() error {
	return s.db.Close()
}
