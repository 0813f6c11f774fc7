package recon

import "nedarim/internal/model"

// Status classifies a member's giving behavior.
type Status string

const (
	StatusRecent     Status = "RECENT"
	StatusActive     Status = "ACTIF"
	StatusOccasional Status = "OCCASIONNEL"
	StatusInactive   Status = "INACTIF"
)

// classify evaluates the status rules in strict priority order; the first
// match wins. Creation recency dominates everything: a brand-new member
// with one old payment is RECENT, not OCCASIONNEL.
func classify(createdDaysAgo int, daysSinceLastPayment *int, hasReceipts bool, cfg model.StatusConfig) Status {
	switch {
	case createdDaysAgo < cfg.RecentDays:
		return StatusRecent
	case daysSinceLastPayment != nil && *daysSinceLastPayment < cfg.ActiveDays:
		return StatusActive
	case hasReceipts:
		return StatusOccasional
	default:
		return StatusInactive
	}
}
