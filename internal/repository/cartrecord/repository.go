// Package cartrecord stores the persisted cart record: a passive mirror of
// the in-memory cart, written after every successful mutation and read once
// at session start.
package cartrecord

import "errors"

// ErrNotFound indicates no record exists under the requested key.
var ErrNotFound = errors.New("cart record not found")

// Repository is a single-key durable record store. Writes are full-state
// overwrites, last-writer-wins; there is no incremental patching.
type Repository interface {
	Put(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}
