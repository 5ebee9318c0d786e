// Package storage provides the backing key-value medium for the state
// store. The whole application state lives under a single key; backends
// only need to get and replace one string value.
package storage

// Backend is the get/set-by-key boundary the state store persists
// through. Get reports ok=false when the key has never been written,
// which the store treats as first run.
type Backend interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
