// Package storage provides the client-local key-value backends the
// cart blob is persisted in, plus the repository that maps the blob to
// domain cart entries.
package storage

import "errors"

// ErrNotFound reports an absent key. Callers distinguish it from real
// storage failures: an absent cart is empty, a broken one is degraded.
var ErrNotFound = errors.New("key not found")
