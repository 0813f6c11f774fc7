package model

import "time"

// Event is a calendar occasion (a Shabbat or a holiday) carrying an
// ordered list of donation slots. Date is an ISO YYYY-MM-DD string,
// empty when the occasion has no fixed date.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Slot is a donation opportunity within an event, e.g. a Torah honor
// during a given office. The id is the stable join key for pledges;
// name and office are display attributes and may be renamed freely.
type Slot struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	Office    string `json:"office"`
	SortOrder int    `json:"sort_order"`
}
