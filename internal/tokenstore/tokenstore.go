// Package tokenstore persists the session bearer token. It is a pure
// key-value shim: no network access, no token validation.
package tokenstore

import "errors"

// ErrNoToken is returned by Read when no token is stored.
var ErrNoToken = errors.New("no token stored")

// Store persists a single bearer token. Save overwrites any prior value,
// Read returns ErrNoToken when absent, and Clear is idempotent.
type Store interface {
	Save(token string) error
	Read() (string, error)
	Clear() error
}
