package store

import (
	"time"

	"example/storefront/internal/logger"
	"example/storefront/internal/models"
)

// Ticket operations

// Tickets returns all support tickets in insertion order
func (s *Store) Tickets() ([]models.Ticket, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Tickets, nil
}

// CreateTicket appends a ticket
func (s *Store) CreateTicket(ticket models.Ticket) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Tickets = append(doc.Tickets, ticket)
	if err := s.save(doc); err != nil {
		return err
	}

	logger.Log.Infow("Ticket created", "ticket_id", ticket.ID, "status", ticket.Status)
	return nil
}

// AddTicketMessage appends a message to the ticket's conversation and
// bumps LastUpdated. A missing ticket mutates nothing, but the document
// is written back regardless.
func (s *Store) AddTicketMessage(ticketID string, message models.TicketMessage) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Tickets {
		if doc.Tickets[i].ID == ticketID {
			doc.Tickets[i].Messages = append(doc.Tickets[i].Messages, message)
			doc.Tickets[i].LastUpdated = time.Now()
			logger.Log.Infow("Ticket message added", "ticket_id", ticketID, "sender", message.Sender)
			break
		}
	}

	return s.save(doc)
}

// CloseTicket sets the ticket's status to CLOSED and bumps LastUpdated.
// The document is written back whether or not the ticket was found.
func (s *Store) CloseTicket(ticketID string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Tickets {
		if doc.Tickets[i].ID == ticketID {
			doc.Tickets[i].Status = models.TicketClosed
			doc.Tickets[i].LastUpdated = time.Now()
			logger.Log.Infow("Ticket closed", "ticket_id", ticketID)
			break
		}
	}

	return s.save(doc)
}
