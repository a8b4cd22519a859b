package db

import (
	"log"

	"github.com/dgraph-io/badger/v4"
)

// Open opens the embedded store at dir and verifies it is writable. Badger's
// own chatty logger is silenced; operational errors surface through the
// returned error instead.
func Open(dir string, logger *log.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(nil).
		WithSyncWrites(true)

	store, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	if err := store.Update(func(_ *badger.Txn) error { return nil }); err != nil {
		store.Close()
		return nil, err
	}

	logger.Printf("opened local store at %s", dir)
	return store, nil
}

// OpenInMemory opens a throwaway in-memory store, used by tests.
func OpenInMemory() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}
