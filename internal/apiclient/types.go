package apiclient

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrUnauthorized means the store rejected the bearer token; the cached
	// token has been cleared.
	ErrUnauthorized = errors.New("not authenticated")
	// ErrNotFound maps the store's 404 responses.
	ErrNotFound = errors.New("record not found")
)

// EventRecord is the catalog record owned by the event store. Fields the
// purchase flow depends on are validated at this boundary.
type EventRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Price       string    `json:"price"`
	Seats       int       `json:"seats"`
	SeatsTaken  int       `json:"seats_taken"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	Organizer   string    `json:"organizer_address,omitempty"`
}

// Validate rejects records missing the fields downstream logic relies on.
// Store-shape problems surface here, never inside the wallet/purchase logic.
func (e EventRecord) Validate() error {
	if e.ID == "" {
		return errors.New("event record missing id")
	}
	if e.Title == "" {
		return errors.New("event record missing title")
	}
	return nil
}

// UserRecord mirrors the user store document.
type UserRecord struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url,omitempty"`
	WalletAddress string `json:"wallet_address,omitempty"`
}

// TicketReceipt records one confirmed purchase.
type TicketReceipt struct {
	EventID      string `json:"event_id"`
	BuyerAddress string `json:"buyer_address"`
	Amount       string `json:"amount"`
	TxHash       string `json:"tx_hash"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// envelope matches pkg/response.Response on the backend.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}
