package contract

import (
	"time"

	statex "github.com/pattarin-dev/unistock/agent/state"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole maps the wire role onto a known role. Only the exact value
// "admin" unlocks admin intents; anything else is treated as a customer.
func ParseRole(raw string) Role {
	if raw == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleCustomer
}

// TurnRequest is one conversational turn as received from the transport.
type TurnRequest struct {
	Message   string `json:"message"`
	Role      string `json:"role"`
	SessionID string `json:"sessionId"`
}

// TurnReply carries the scripted reply plus a snapshot of the session slots
// as they stood when the reply was produced.
type TurnReply struct {
	Reply string       `json:"reply"`
	Slots statex.Slots `json:"slots"`
}

// ExactMatchQuery is a fully-populated availability lookup. An empty Color
// means the stored color must be "Standard" or absent; a set Color is an
// exact-match predicate.
type ExactMatchQuery struct {
	School   string
	Category string
	Size     string
	OutletID int
	Color    string
}

type StockRecord struct {
	ItemName          string
	QuantityAvailable int
}

type LowStockItem struct {
	ItemName          string
	QuantityAvailable int
	OutletID          int
}

type TopSeller struct {
	ItemName string
	Quantity int
}

// ReportWindow is a half-open [From, To) reporting interval with the label
// used in the summary reply.
type ReportWindow struct {
	From  time.Time
	To    time.Time
	Label string
}
