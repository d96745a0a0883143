// Package store keeps per-visitor theme controllers in memory.
// Nothing is persisted, a restart starts every visitor from the light theme.
package store

import "errors"

// ErrNotFound is returned when a session is not found in the store.
var ErrNotFound = errors.New("session not found")
