package store

import (
	"time"

	"github.com/google/uuid"

	"example/storefront/internal/logger"
	"example/storefront/internal/models"
)

// Purchase operations

// Purchases returns the purchase log in creation order
func (s *Store) Purchases() ([]models.Purchase, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Purchases, nil
}

// AddPurchase appends a raw purchase record without touching credits or
// stock. Fulfillment goes through ProcessPurchase.
func (s *Store) AddPurchase(purchase models.Purchase) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Purchases = append(doc.Purchases, purchase)
	if err := s.save(doc); err != nil {
		return err
	}

	logger.Log.Infow("Purchase record added", "purchase_id", purchase.ID, "user_id", purchase.UserID)
	return nil
}

// ProcessPurchase fulfills a purchase: it checks that the user and item
// exist and that the user can afford the item, delivers content (the
// item's payload for INSTANT, the first undelivered unit in list order
// for SEQUENTIAL), debits the price and appends a purchase record. On
// any failed check nothing is mutated: no partial debit, no consumed
// stock, no log entry.
func (s *Store) ProcessPurchase(userID, itemID string) (models.PurchaseResult, error) {
	doc, err := s.load()
	if err != nil {
		return models.PurchaseResult{}, err
	}

	var user *models.User
	for i := range doc.Users {
		if doc.Users[i].ID == userID {
			user = &doc.Users[i]
			break
		}
	}

	var item *models.Item
	for i := range doc.Items {
		if doc.Items[i].ID == itemID {
			item = &doc.Items[i]
			break
		}
	}

	if user == nil || item == nil {
		logger.Log.Warnw("Purchase rejected", "user_id", userID, "item_id", itemID, "reason", "user or item not found")
		return models.PurchaseResult{Success: false, Error: "User or Item not found"}, nil
	}

	if user.Credits < item.Price {
		logger.Log.Warnw("Purchase rejected", "user_id", userID, "item_id", itemID,
			"reason", "insufficient credits", "credits", user.Credits, "price", item.Price)
		return models.PurchaseResult{Success: false, Error: "Insufficient credits"}, nil
	}

	var content string
	if item.Type == models.ItemSequential {
		next := -1
		for i := range item.SequentialItems {
			if !item.SequentialItems[i].IsDelivered {
				next = i
				break
			}
		}
		if next < 0 {
			logger.Log.Warnw("Purchase rejected", "user_id", userID, "item_id", itemID, "reason", "out of stock")
			return models.PurchaseResult{Success: false, Error: "Out of stock"}, nil
		}
		item.SequentialItems[next].IsDelivered = true
		item.DeliveredCount++
		content = item.SequentialItems[next].Content
	} else {
		content = item.Content
	}

	user.Credits -= item.Price

	purchase := models.Purchase{
		ID:               uuid.New().String(),
		UserID:           userID,
		ItemID:           itemID,
		ItemName:         item.Name,
		ContentDelivered: content,
		Timestamp:        time.Now(),
		Price:            item.Price,
	}
	doc.Purchases = append(doc.Purchases, purchase)

	if err := s.save(doc); err != nil {
		return models.PurchaseResult{}, err
	}

	logger.Log.Infow("Purchase processed", "purchase_id", purchase.ID, "user_id", userID,
		"item_id", itemID, "price", item.Price, "balance", user.Credits)

	return models.PurchaseResult{Success: true, Content: content}, nil
}
