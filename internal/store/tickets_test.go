package store

import (
	"testing"
	"time"

	"example/storefront/internal/models"
)

// TestTicketMessageBumpsLastUpdated: appending a message moves
// LastUpdated forward past the previous value
func TestTicketMessageBumpsLastUpdated(t *testing.T) {
	s, _ := newTestStore(t)

	created := time.Now().Add(-time.Hour)
	if err := s.CreateTicket(models.Ticket{ID: "tk1", Status: models.TicketOpen, LastUpdated: created}); err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}

	msg := models.TicketMessage{Content: "hello", Sender: "u1", Timestamp: time.Now()}
	if err := s.AddTicketMessage("tk1", msg); err != nil {
		t.Fatalf("AddTicketMessage failed: %v", err)
	}

	tickets, err := s.Tickets()
	if err != nil {
		t.Fatalf("Tickets failed: %v", err)
	}
	tk := tickets[0]
	if len(tk.Messages) != 1 || tk.Messages[0].Content != "hello" {
		t.Errorf("Expected one message 'hello', got %+v", tk.Messages)
	}
	if !tk.LastUpdated.After(created) {
		t.Errorf("LastUpdated should move forward, got %v", tk.LastUpdated)
	}
	if tk.LastUpdated.Before(tk.Messages[0].Timestamp.Add(-time.Second)) {
		t.Errorf("LastUpdated %v should not trail the newest message %v", tk.LastUpdated, tk.Messages[0].Timestamp)
	}
}

// TestAddTicketMessageMissingTicket: no mutation, but the write happens
func TestAddTicketMessageMissingTicket(t *testing.T) {
	s, backend := newTestStore(t)

	if err := s.AddTicketMessage("ghost", models.TicketMessage{Content: "lost"}); err != nil {
		t.Fatalf("AddTicketMessage failed: %v", err)
	}

	if _, ok, _ := backend.Get(DefaultKey); !ok {
		t.Error("AddTicketMessage must persist even when the ticket is missing")
	}

	tickets, _ := s.Tickets()
	if len(tickets) != 0 {
		t.Errorf("No ticket should appear, got %+v", tickets)
	}
}

// TestCloseTicket: status flips to CLOSED and LastUpdated is bumped
func TestCloseTicket(t *testing.T) {
	s, _ := newTestStore(t)

	created := time.Now().Add(-time.Hour)
	s.CreateTicket(models.Ticket{ID: "tk1", Status: models.TicketOpen, LastUpdated: created})

	if err := s.CloseTicket("tk1"); err != nil {
		t.Fatalf("CloseTicket failed: %v", err)
	}

	tickets, _ := s.Tickets()
	tk := tickets[0]
	if tk.Status != models.TicketClosed {
		t.Errorf("Expected status CLOSED, got %s", tk.Status)
	}
	if !tk.LastUpdated.After(created) {
		t.Errorf("LastUpdated should move forward on close, got %v", tk.LastUpdated)
	}

	// Closing an unknown ticket is a persisted no-op
	if err := s.CloseTicket("ghost"); err != nil {
		t.Fatalf("CloseTicket failed: %v", err)
	}
}
