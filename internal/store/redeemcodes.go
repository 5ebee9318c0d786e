package store

import (
	"example/storefront/internal/logger"
	"example/storefront/internal/models"
)

// Redeem code operations

// RedeemCodes returns all redeem codes in insertion order
func (s *Store) RedeemCodes() ([]models.RedeemCode, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.RedeemCodes, nil
}

// AddRedeemCode appends a redeem code
func (s *Store) AddRedeemCode(code models.RedeemCode) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.RedeemCodes = append(doc.RedeemCodes, code)
	if err := s.save(doc); err != nil {
		return err
	}

	logger.Log.Infow("Redeem code added", "code", code.Code, "amount", code.Amount)
	return nil
}

// Redeem marks an unused code as used and credits its amount to the
// user. A code is redeemable at most once; IsUsed never reverts.
func (s *Store) Redeem(userID, codeStr string) (models.RedeemResult, error) {
	doc, err := s.load()
	if err != nil {
		return models.RedeemResult{}, err
	}

	var user *models.User
	for i := range doc.Users {
		if doc.Users[i].ID == userID {
			user = &doc.Users[i]
			break
		}
	}
	if user == nil {
		logger.Log.Warnw("Redeem rejected", "user_id", userID, "reason", "user not found")
		return models.RedeemResult{Success: false, Error: "User not found"}, nil
	}

	var code *models.RedeemCode
	for i := range doc.RedeemCodes {
		if doc.RedeemCodes[i].Code == codeStr && !doc.RedeemCodes[i].IsUsed {
			code = &doc.RedeemCodes[i]
			break
		}
	}
	if code == nil {
		logger.Log.Warnw("Redeem rejected", "user_id", userID, "code", codeStr, "reason", "invalid or already used")
		return models.RedeemResult{Success: false, Error: "Invalid or already used code"}, nil
	}

	code.IsUsed = true
	user.Credits += code.Amount

	if err := s.save(doc); err != nil {
		return models.RedeemResult{}, err
	}

	logger.Log.Infow("Code redeemed", "user_id", userID, "code", codeStr, "amount", code.Amount, "balance", user.Credits)
	return models.RedeemResult{Success: true, Amount: code.Amount}, nil
}
