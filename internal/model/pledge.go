package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pledge is a commitment by one member to pay an amount for one slot of
// one event. At most one live pledge exists per slot; assigning a new
// member or amount replaces the previous pledge. MemberID may be empty
// while a slot is still unassigned. Offered marks a gratis honor, which
// is excluded from every monetary total. SlotName, OfficeName, Category
// and Date are denormalized copies kept in sync by the event store.
type Pledge struct {
	ID         string          `json:"id"`
	EventID    string          `json:"event_id"`
	SlotID     string          `json:"slot_id"`
	SlotName   string          `json:"slot_name"`
	OfficeName string          `json:"office_name"`
	MemberID   string          `json:"member_id"`
	Amount     decimal.Decimal `json:"amount"`
	Offered    bool            `json:"offered"`
	Category   string          `json:"category"`
	Date       string          `json:"date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
