package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt records an actual collection from a member. Number is assigned
// as collection size + 1 at creation and never reassigned, so numbers may
// have gaps after deletions. Date is an ISO YYYY-MM-DD string; the engine
// compares these lexicographically. AmountILS is the settlement amount,
// AmountEUR the secondary-currency amount with the exchange rate applied.
type Receipt struct {
	ID             string            `json:"id"`
	Number         int               `json:"number"`
	Date           string            `json:"date"`
	MemberID       string            `json:"member_id"`
	AmountILS      decimal.Decimal   `json:"amount_ils"`
	AmountEUR      decimal.Decimal   `json:"amount_eur"`
	ExchangeRate   float64           `json:"exchange_rate"`
	Method         string            `json:"method"`
	Account        string            `json:"account"`
	DocumentStatus ReceiptPreference `json:"document_status"`
	CreatedAt      time.Time         `json:"created_at"`
}
