// Package store is the data-access façade over the persisted storefront
// state. Every operation loads the whole document from the backing
// key-value medium, works on it in memory, and writes the whole document
// back if it mutated anything. Each call is self-contained; nothing is
// cached between calls.
package store

import (
	"encoding/json"
	"fmt"

	"example/storefront/internal/logger"
	"example/storefront/internal/models"
	"example/storefront/internal/storage"
)

// DefaultKey is the well-known key the state document is stored under
const DefaultKey = "storefront:state"

// Store reads and writes the state document through an injected backend
type Store struct {
	backend storage.Backend
	key     string
}

func New(backend storage.Backend, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{backend: backend, key: key}
}

// load fetches and decodes the current document. An absent key means
// first run: all collections start empty, and nothing is written back
// until the first mutating call.
func (s *Store) load() (*models.Document, error) {
	raw, ok, err := s.backend.Get(s.key)
	if err != nil {
		logger.Log.Errorw("Failed to load state", "key", s.key, "error", err)
		return nil, fmt.Errorf("load state: %v", err)
	}

	doc := &models.Document{}
	if !ok {
		return doc, nil
	}

	if err := json.Unmarshal([]byte(raw), doc); err != nil {
		logger.Log.Errorw("Failed to decode state", "key", s.key, "error", err)
		return nil, fmt.Errorf("load state: %v", err)
	}
	return doc, nil
}

// save encodes the document and replaces the stored value wholesale
func (s *Store) save(doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		logger.Log.Errorw("Failed to encode state", "key", s.key, "error", err)
		return fmt.Errorf("save state: %v", err)
	}

	if err := s.backend.Set(s.key, string(raw)); err != nil {
		logger.Log.Errorw("Failed to persist state", "key", s.key, "error", err)
		return fmt.Errorf("save state: %v", err)
	}
	return nil
}
