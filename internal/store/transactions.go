package store

import (
	"example/storefront/internal/logger"
	"example/storefront/internal/models"
)

// Transaction operations

// Transactions returns all credit top-up transactions in insertion order
func (s *Store) Transactions() ([]models.Transaction, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Transactions, nil
}

// AddTransaction appends a transaction with whatever status it carries
// (typically PENDING)
func (s *Store) AddTransaction(tx models.Transaction) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Transactions = append(doc.Transactions, tx)
	if err := s.save(doc); err != nil {
		return err
	}

	logger.Log.Infow("Transaction added", "tx_id", tx.ID, "user_id", tx.UserID, "amount", tx.Amount, "status", tx.Status)
	return nil
}

// UpdateTransactionStatus sets the transaction's status. Moving to
// APPROVED additionally credits the amount to the owning user. The
// credit side effect is not idempotent: approving a transaction that is
// already APPROVED credits the amount again.
func (s *Store) UpdateTransactionStatus(id string, status models.TransactionStatus) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Transactions {
		if doc.Transactions[i].ID != id {
			continue
		}
		doc.Transactions[i].Status = status

		if status == models.TxApproved {
			for j := range doc.Users {
				if doc.Users[j].ID == doc.Transactions[i].UserID {
					doc.Users[j].Credits += doc.Transactions[i].Amount
					logger.Log.Infow("Transaction approved, credits applied", "tx_id", id,
						"user_id", doc.Users[j].ID, "amount", doc.Transactions[i].Amount,
						"balance", doc.Users[j].Credits)
					break
				}
			}
		} else {
			logger.Log.Infow("Transaction status updated", "tx_id", id, "status", status)
		}
		break
	}

	return s.save(doc)
}
