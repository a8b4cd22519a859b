package cartrecord

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

type badgerRepo struct {
	store *badger.DB
}

func NewBadger(store *badger.DB) Repository {
	return &badgerRepo{store: store}
}

func (r *badgerRepo) Put(key string, value []byte) error {
	return r.store.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (r *badgerRepo) Get(key string) ([]byte, error) {
	var value []byte
	err := r.store.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *badgerRepo) Delete(key string) error {
	return r.store.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
