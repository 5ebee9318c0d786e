package store

import (
	"testing"

	"example/storefront/internal/logger"
	"example/storefront/internal/models"
	"example/storefront/internal/storage"
)

func init() {
	// Initialize logger for tests
	logger.InitLoggerDev()
}

// newTestStore creates a store over an in-memory backend
func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	backend := storage.NewMemory()
	return New(backend, ""), backend
}

func seedUser(t *testing.T, s *Store, id string, credits float64) {
	t.Helper()
	if err := s.AddUser(models.User{ID: id, Role: models.RoleStandard, Credits: credits}); err != nil {
		t.Fatalf("Failed to seed user %s: %v", id, err)
	}
}

func userCredits(t *testing.T, s *Store, id string) float64 {
	t.Helper()
	users, err := s.Users()
	if err != nil {
		t.Fatalf("Failed to read users: %v", err)
	}
	for _, u := range users {
		if u.ID == id {
			return u.Credits
		}
	}
	t.Fatalf("User %s not found", id)
	return 0
}

// TestProcessPurchaseInstant covers the happy path for an INSTANT item
func TestProcessPurchaseInstant(t *testing.T) {
	s, _ := newTestStore(t)

	seedUser(t, s, "u1", 100)
	if err := s.AddItem(models.Item{ID: "i1", Name: "License Key", Price: 30, Type: models.ItemInstant, Content: "CODE123"}); err != nil {
		t.Fatalf("Failed to seed item: %v", err)
	}

	result, err := s.ProcessPurchase("u1", "i1")
	if err != nil {
		t.Fatalf("ProcessPurchase failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected success, got error %q", result.Error)
	}
	if result.Content != "CODE123" {
		t.Errorf("Expected content CODE123, got %q", result.Content)
	}

	if credits := userCredits(t, s, "u1"); credits != 70 {
		t.Errorf("Expected credits 70 after purchase, got %v", credits)
	}

	purchases, err := s.Purchases()
	if err != nil {
		t.Fatalf("Failed to read purchases: %v", err)
	}
	if len(purchases) != 1 {
		t.Fatalf("Expected 1 purchase record, got %d", len(purchases))
	}
	p := purchases[0]
	if p.ID == "" {
		t.Error("Purchase should get a generated ID")
	}
	if p.UserID != "u1" || p.ItemID != "i1" {
		t.Errorf("Purchase references wrong records: %+v", p)
	}
	if p.ItemName != "License Key" || p.Price != 30 {
		t.Errorf("Purchase should snapshot name and price, got %+v", p)
	}
	if p.ContentDelivered != "CODE123" {
		t.Errorf("Expected delivered content CODE123, got %q", p.ContentDelivered)
	}
}

// TestProcessPurchaseMissingRecords checks the existence precondition
func TestProcessPurchaseMissingRecords(t *testing.T) {
	s, _ := newTestStore(t)

	seedUser(t, s, "u1", 100)

	result, err := s.ProcessPurchase("u1", "nope")
	if err != nil {
		t.Fatalf("ProcessPurchase failed: %v", err)
	}
	if result.Success || result.Error != "User or Item not found" {
		t.Errorf("Expected 'User or Item not found', got %+v", result)
	}

	result, err = s.ProcessPurchase("nope", "nope")
	if err != nil {
		t.Fatalf("ProcessPurchase failed: %v", err)
	}
	if result.Success || result.Error != "User or Item not found" {
		t.Errorf("Expected 'User or Item not found', got %+v", result)
	}
}

// TestProcessPurchaseInsufficientCredits checks that a failed affordability
// check leaves credits, stock and the purchase log untouched
func TestProcessPurchaseInsufficientCredits(t *testing.T) {
	s, _ := newTestStore(t)

	seedUser(t, s, "u1", 10)
	if err := s.AddItem(models.Item{
		ID: "i1", Name: "Account", Price: 25, Type: models.ItemSequential,
		SequentialItems: []models.SequentialItem{{Content: "acc-1"}},
	}); err != nil {
		t.Fatalf("Failed to seed item: %v", err)
	}

	result, err := s.ProcessPurchase("u1", "i1")
	if err != nil {
		t.Fatalf("ProcessPurchase failed: %v", err)
	}
	if result.Success || result.Error != "Insufficient credits" {
		t.Errorf("Expected 'Insufficient credits', got %+v", result)
	}

	if credits := userCredits(t, s, "u1"); credits != 10 {
		t.Errorf("Credits should be unchanged on failure, got %v", credits)
	}

	items, _ := s.Items()
	if items[0].DeliveredCount != 0 || items[0].SequentialItems[0].IsDelivered {
		t.Error("Stock should be unchanged on failure")
	}

	purchases, _ := s.Purchases()
	if len(purchases) != 0 {
		t.Errorf("Expected no purchase records, got %d", len(purchases))
	}
}

// TestProcessPurchaseSequential verifies that N units give exactly N
// successes, delivered in list order, and the N+1th call is out of stock
func TestProcessPurchaseSequential(t *testing.T) {
	s, _ := newTestStore(t)

	seedUser(t, s, "u1", 100)
	if err := s.AddItem(models.Item{
		ID: "i1", Name: "Account", Price: 10, Type: models.ItemSequential,
		SequentialItems: []models.SequentialItem{
			{Content: "acc-1"},
			{Content: "acc-2"},
			{Content: "acc-3"},
		},
	}); err != nil {
		t.Fatalf("Failed to seed item: %v", err)
	}

	want := []string{"acc-1", "acc-2", "acc-3"}
	for i, content := range want {
		result, err := s.ProcessPurchase("u1", "i1")
		if err != nil {
			t.Fatalf("Purchase %d failed: %v", i+1, err)
		}
		if !result.Success {
			t.Fatalf("Purchase %d should succeed, got error %q", i+1, result.Error)
		}
		if result.Content != content {
			t.Errorf("Purchase %d should deliver %q in list order, got %q", i+1, content, result.Content)
		}
	}

	items, _ := s.Items()
	if items[0].DeliveredCount != 3 {
		t.Errorf("Expected deliveredCount 3, got %d", items[0].DeliveredCount)
	}

	// Fourth purchase hits empty stock and must not debit anything
	result, err := s.ProcessPurchase("u1", "i1")
	if err != nil {
		t.Fatalf("ProcessPurchase failed: %v", err)
	}
	if result.Success || result.Error != "Out of stock" {
		t.Errorf("Expected 'Out of stock', got %+v", result)
	}
	if credits := userCredits(t, s, "u1"); credits != 70 {
		t.Errorf("Expected credits 70 after 3 purchases and 1 failure, got %v", credits)
	}

	purchases, _ := s.Purchases()
	if len(purchases) != 3 {
		t.Errorf("Expected 3 purchase records, got %d", len(purchases))
	}
}

// TestProcessPurchaseInstantEmptyContent: an INSTANT item without content
// still sells, delivering an empty string
func TestProcessPurchaseInstantEmptyContent(t *testing.T) {
	s, _ := newTestStore(t)

	seedUser(t, s, "u1", 50)
	if err := s.AddItem(models.Item{ID: "i1", Name: "Donation", Price: 5, Type: models.ItemInstant}); err != nil {
		t.Fatalf("Failed to seed item: %v", err)
	}

	result, err := s.ProcessPurchase("u1", "i1")
	if err != nil {
		t.Fatalf("ProcessPurchase failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected success, got error %q", result.Error)
	}
	if result.Content != "" {
		t.Errorf("Expected empty content, got %q", result.Content)
	}
	if credits := userCredits(t, s, "u1"); credits != 45 {
		t.Errorf("Expected credits 45, got %v", credits)
	}
}

// TestAddPurchaseRaw: addPurchase appends without side effects
func TestAddPurchaseRaw(t *testing.T) {
	s, _ := newTestStore(t)

	seedUser(t, s, "u1", 100)
	if err := s.AddPurchase(models.Purchase{ID: "p1", UserID: "u1", ItemID: "i1", ItemName: "Manual", Price: 42}); err != nil {
		t.Fatalf("AddPurchase failed: %v", err)
	}

	if credits := userCredits(t, s, "u1"); credits != 100 {
		t.Errorf("Raw append must not touch credits, got %v", credits)
	}
	purchases, _ := s.Purchases()
	if len(purchases) != 1 || purchases[0].ID != "p1" {
		t.Errorf("Expected the appended record, got %+v", purchases)
	}
}
