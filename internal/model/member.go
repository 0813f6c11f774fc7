package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptPreference is the tax-document type a member wants for donations.
type ReceiptPreference string

const (
	ReceiptTofess  ReceiptPreference = "Tofess 46"
	ReceiptCerfa   ReceiptPreference = "Cerfa"
	ReceiptPending ReceiptPreference = "En attente"
	ReceiptNone    ReceiptPreference = "Aucun"
)

// Member is a congregant tracked for donations. Financial fields
// (total pledged, total paid, status) are never stored; they are derived
// from pledges and receipts on every pass. CarryOverBalance is debt
// imported from before the ledger was adopted.
type Member struct {
	ID                string            `json:"id"`
	LastName          string            `json:"last_name"`
	FirstName         string            `json:"first_name"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Country           string            `json:"country"`
	ReceiptPreference ReceiptPreference `json:"receipt_preference"`
	CarryOverBalance  decimal.Decimal   `json:"carry_over_balance"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
