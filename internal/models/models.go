package models

import (
	"encoding/json"
	"time"
)

// Role distinguishes regular customers from staff accounts
type Role string

const (
	RoleStandard Role = "STANDARD"
	RoleAdmin    Role = "ADMIN"
)

// ItemType selects the fulfillment strategy for an item
type ItemType string

const (
	ItemInstant    ItemType = "INSTANT"
	ItemSequential ItemType = "SEQUENTIAL"
)

// TransactionStatus represents valid credit top-up states
type TransactionStatus string

const (
	TxPending  TransactionStatus = "PENDING"
	TxApproved TransactionStatus = "APPROVED"
	TxRejected TransactionStatus = "REJECTED"
)

// TicketStatus represents valid support ticket states
type TicketStatus string

const (
	TicketOpen   TicketStatus = "OPEN"
	TicketClosed TicketStatus = "CLOSED"
)

// User represents a customer account with a credit balance
type User struct {
	ID      string  `json:"id"`
	Role    Role    `json:"role"`
	Credits float64 `json:"credits"`
}

// SequentialItem is a single deliverable unit of a SEQUENTIAL item.
// Once IsDelivered is set it never reverts.
type SequentialItem struct {
	Content     string `json:"content"`
	IsDelivered bool   `json:"isDelivered"`
}

// Item represents a purchasable product. Content is used for INSTANT
// items, SequentialItems for SEQUENTIAL ones; the Type field decides
// which of the two is active.
type Item struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Price           float64          `json:"price"`
	Type            ItemType         `json:"type"`
	Content         string           `json:"content,omitempty"`
	SequentialItems []SequentialItem `json:"sequentialItems,omitempty"`
	DeliveredCount  int              `json:"deliveredCount"`
}

// Purchase is an append-only fulfillment record. Name and price are
// snapshots taken at purchase time so later item edits don't rewrite
// history.
type Purchase struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	ItemID           string    `json:"itemId"`
	ItemName         string    `json:"itemName"`
	ContentDelivered string    `json:"contentDelivered"`
	Timestamp        time.Time `json:"timestamp"`
	Price            float64   `json:"price"`
}

// Transaction is a credit top-up request moving through a status workflow
type Transaction struct {
	ID     string            `json:"id"`
	UserID string            `json:"userId"`
	Amount float64           `json:"amount"`
	Status TransactionStatus `json:"status"`
}

// RedeemCode is a one-time credit voucher
type RedeemCode struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
	IsUsed bool    `json:"isUsed"`
}

// TicketMessage is one entry in a ticket conversation
type TicketMessage struct {
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Ticket is a support conversation
type Ticket struct {
	ID          string          `json:"id"`
	Messages    []TicketMessage `json:"messages"`
	Status      TicketStatus    `json:"status"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// Document is the whole persisted state: six collections serialized as
// one JSON blob under a single key in the backing store
type Document struct {
	Users        []User        `json:"users"`
	Items        []Item        `json:"items"`
	Purchases    []Purchase    `json:"purchases"`
	Transactions []Transaction `json:"transactions"`
	RedeemCodes  []RedeemCode  `json:"redeemCodes"`
	Tickets      []Ticket      `json:"tickets"`
}

// VerifyResult is the outcome of a token verification attempt
type VerifyResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// PurchaseResult is the outcome of a purchase attempt. Content carries
// the delivered payload on success.
type PurchaseResult struct {
	Success bool   `json:"success"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RedeemResult is the outcome of a redeem-code attempt
type RedeemResult struct {
	Success bool    `json:"success"`
	Amount  float64 `json:"amount,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// WSMessage represents a WebSocket message from the client
type WSMessage struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// WSResponse represents a WebSocket response to the client
type WSResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
