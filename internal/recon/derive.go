// Package recon derives per-member financial summaries and
// organization-wide collection statistics from a snapshot of the ledger
// collections. Everything here is a pure function of its inputs and the
// caller's clock: no I/O, no mutation, recomputed in full on every call.
package recon

import (
	"time"

	"github.com/shopspring/decimal"

	"nedarim/internal/model"
)

// Late means actual collection runs more than this many percentage points
// behind the calendar expectation.
const lateMarginPercent = 5.0

// Snapshot is one consistent read of the collections the engine consumes.
// Callers load it, mutate nothing, and pass it in; identical snapshots and
// an identical now yield identical outputs.
type Snapshot struct {
	Members  []model.Member
	Pledges  []model.Pledge
	Receipts []model.Receipt
	Status   model.StatusConfig
}

// MemberSummary is the derived financial and behavioral view of a member.
// RemainingDue is deliberately unclamped: an overpaid member shows a
// negative figure here, and only the organization-wide total clamps to 0.
type MemberSummary struct {
	model.Member
	TotalPledged         decimal.Decimal `json:"total_pledged"`
	TotalPaid            decimal.Decimal `json:"total_paid"`
	RemainingDue         decimal.Decimal `json:"remaining_due"`
	Status               Status          `json:"status"`
	LastPaymentDate      string          `json:"last_payment_date"`
	DaysSinceLastPayment *int            `json:"days_since_last_payment"`
}

type CategoryTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

type AccountTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// Stats is the organization-wide roll-up.
type Stats struct {
	TotalPledged              decimal.Decimal   `json:"total_pledged"`
	TotalPaid                 decimal.Decimal   `json:"total_paid"`
	TotalDue                  decimal.Decimal   `json:"total_due"`
	ExpectedCollectionPercent float64           `json:"expected_collection_percent"`
	ActualCollectionPercent   float64           `json:"actual_collection_percent"`
	IsLate                    bool              `json:"is_late"`
	PledgesByCategory         []CategoryTotal   `json:"pledges_by_category"`
	ReceiptsByAccount         []AccountTotal    `json:"receipts_by_account"`
	TotalMembers              int               `json:"total_members"`
	StatusCounts              map[Status]int    `json:"status_counts"`
}

// Summarize computes one member's snapshot view. Offered pledges never
// contribute to any monetary total.
func Summarize(m model.Member, pledges []model.Pledge, receipts []model.Receipt, cfg model.StatusConfig, now time.Time) MemberSummary {
	cfg = withDefaults(cfg)

	totalPledged := m.CarryOverBalance
	for _, p := range pledges {
		if p.MemberID != m.ID || p.Offered {
			continue
		}
		totalPledged = totalPledged.Add(p.Amount)
	}

	totalPaid := decimal.Zero
	lastPaymentDate := ""
	hasReceipts := false
	for _, r := range receipts {
		if r.MemberID != m.ID {
			continue
		}
		hasReceipts = true
		totalPaid = totalPaid.Add(r.AmountILS)
		// ISO dates compare chronologically as strings.
		if r.Date > lastPaymentDate {
			lastPaymentDate = r.Date
		}
	}

	var daysSince *int
	if lastPaymentDate != "" {
		if t, err := parseISODate(lastPaymentDate); err == nil {
			d := daysBetween(t, now)
			daysSince = &d
		}
	}

	createdDaysAgo := daysBetween(m.CreatedAt, now)
	status := classify(createdDaysAgo, daysSince, hasReceipts, cfg)

	return MemberSummary{
		Member:               m,
		TotalPledged:         totalPledged,
		TotalPaid:            totalPaid,
		RemainingDue:         totalPledged.Sub(totalPaid),
		Status:               status,
		LastPaymentDate:      lastPaymentDate,
		DaysSinceLastPayment: daysSince,
	}
}

// SummarizeAll derives every member's summary, ordered as the snapshot's
// member collection is.
func SummarizeAll(snap Snapshot, now time.Time) []MemberSummary {
	summaries := make([]MemberSummary, 0, len(snap.Members))
	for _, m := range snap.Members {
		summaries = append(summaries, Summarize(m, snap.Pledges, snap.Receipts, snap.Status, now))
	}
	return summaries
}

// Aggregate rolls the member summaries and the raw collections into
// organization-wide statistics. categories and accounts define the
// breakdown rows; a configured value with no matching records totals 0.
func Aggregate(summaries []MemberSummary, snap Snapshot, categories, accounts []string, window model.CampaignWindow, now time.Time) Stats {
	totalPledged := decimal.Zero
	totalPaid := decimal.Zero
	statusCounts := make(map[Status]int)
	for _, s := range summaries {
		totalPledged = totalPledged.Add(s.TotalPledged)
		totalPaid = totalPaid.Add(s.TotalPaid)
		statusCounts[s.Status]++
	}

	totalDue := totalPledged.Sub(totalPaid)
	if totalDue.IsNegative() {
		totalDue = decimal.Zero
	}

	expected := expectedPercent(window, now)

	actual := 0.0
	if totalPledged.IsPositive() {
		actual, _ = totalPaid.Div(totalPledged).Mul(decimal.NewFromInt(100)).Float64()
	}

	byCategory := make([]CategoryTotal, 0, len(categories))
	for _, cat := range categories {
		total := decimal.Zero
		for _, p := range snap.Pledges {
			if p.Category == cat && !p.Offered {
				total = total.Add(p.Amount)
			}
		}
		byCategory = append(byCategory, CategoryTotal{Name: cat, Total: total})
	}

	byAccount := make([]AccountTotal, 0, len(accounts))
	for _, acc := range accounts {
		total := decimal.Zero
		for _, r := range snap.Receipts {
			if r.Account == acc {
				total = total.Add(r.AmountILS)
			}
		}
		byAccount = append(byAccount, AccountTotal{Name: acc, Total: total})
	}

	return Stats{
		TotalPledged:              totalPledged,
		TotalPaid:                 totalPaid,
		TotalDue:                  totalDue,
		ExpectedCollectionPercent: expected,
		ActualCollectionPercent:   actual,
		IsLate:                    actual < expected-lateMarginPercent,
		PledgesByCategory:         byCategory,
		ReceiptsByAccount:         byAccount,
		TotalMembers:              len(summaries),
		StatusCounts:              statusCounts,
	}
}

// expectedPercent is the share of the campaign window already elapsed,
// with now clamped into the window.
func expectedPercent(window model.CampaignWindow, now time.Time) float64 {
	if !window.End.After(window.Start) {
		return 0
	}
	if now.Before(window.Start) {
		now = window.Start
	}
	if now.After(window.End) {
		now = window.End
	}
	return float64(now.Sub(window.Start)) / float64(window.End.Sub(window.Start)) * 100
}

func withDefaults(cfg model.StatusConfig) model.StatusConfig {
	def := model.DefaultStatusConfig()
	if cfg.RecentDays <= 0 {
		cfg.RecentDays = def.RecentDays
	}
	if cfg.ActiveDays <= 0 {
		cfg.ActiveDays = def.ActiveDays
	}
	return cfg
}

func parseISODate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
