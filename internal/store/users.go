package store

import (
	"example/storefront/internal/logger"
	"example/storefront/internal/models"
)

// User operations

// Users returns all users in insertion order
func (s *Store) Users() ([]models.User, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Users, nil
}

// AddUser appends a user. IDs are not checked for uniqueness; that is
// the caller's responsibility.
func (s *Store) AddUser(user models.User) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Users = append(doc.Users, user)
	if err := s.save(doc); err != nil {
		return err
	}

	logger.Log.Infow("User added", "user_id", user.ID, "role", user.Role)
	return nil
}

// VerifyUser accepts any non-empty token. This is a stand-in for a real
// verification protocol; there is no token issuance or lookup in this
// system, so no lookup happens here either.
func (s *Store) VerifyUser(token string) models.VerifyResult {
	if token == "" {
		logger.Log.Warnw("Token verification failed", "reason", "empty token")
		return models.VerifyResult{Success: false, Error: "Invalid token"}
	}
	return models.VerifyResult{Success: true}
}

// UpdateUserCredits adds amount (which may be negative) to the matching
// user's balance. A missing user is a no-op, but the document is written
// back either way.
func (s *Store) UpdateUserCredits(userID string, amount float64) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Users {
		if doc.Users[i].ID == userID {
			doc.Users[i].Credits += amount
			logger.Log.Infow("User credits updated", "user_id", userID, "amount", amount, "balance", doc.Users[i].Credits)
			break
		}
	}

	return s.save(doc)
}
