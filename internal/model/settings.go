package model

import "time"

type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusConfig drives the member status classifier: members created less
// than RecentDays ago are RECENT, members who paid within ActiveDays are
// ACTIF.
type StatusConfig struct {
	RecentDays int `json:"recent_days"`
	ActiveDays int `json:"active_days"`
}

// DefaultStatusConfig matches the thresholds used before they became
// configurable.
func DefaultStatusConfig() StatusConfig {
	return StatusConfig{RecentDays: 30, ActiveDays: 90}
}

// CampaignWindow is the fundraising period used to compute the expected
// collection percentage: collections are assumed to track linearly with
// the calendar between Start and End.
type CampaignWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
