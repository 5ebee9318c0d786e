package store

import (
	"example/storefront/internal/logger"
	"example/storefront/internal/models"
)

// Item operations

// Items returns all items in insertion order
func (s *Store) Items() ([]models.Item, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Items, nil
}

// AddItem appends an item
func (s *Store) AddItem(item models.Item) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Items = append(doc.Items, item)
	if err := s.save(doc); err != nil {
		return err
	}

	logger.Log.Infow("Item added", "item_id", item.ID, "name", item.Name, "type", item.Type)
	return nil
}

// UpdateItem replaces the item whose ID matches, keeping its position.
// Returns true if a replacement happened; on a miss nothing is written.
func (s *Store) UpdateItem(item models.Item) (bool, error) {
	doc, err := s.load()
	if err != nil {
		return false, err
	}

	for i := range doc.Items {
		if doc.Items[i].ID == item.ID {
			doc.Items[i] = item
			if err := s.save(doc); err != nil {
				return false, err
			}
			logger.Log.Infow("Item updated", "item_id", item.ID, "name", item.Name)
			return true, nil
		}
	}

	logger.Log.Warnw("Item not found for update", "item_id", item.ID)
	return false, nil
}

// DeleteItem removes every item with the given ID. IDs are expected to
// be unique, but filter semantics remove all matches regardless.
func (s *Store) DeleteItem(itemID string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	kept := doc.Items[:0]
	removed := 0
	for _, item := range doc.Items {
		if item.ID == itemID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	doc.Items = kept

	if err := s.save(doc); err != nil {
		return err
	}

	logger.Log.Infow("Item deleted", "item_id", itemID, "removed", removed)
	return nil
}
