// Package seed populates a fresh ledger with the default event calendar
// and liturgical slot templates. Reference enumerations (categories,
// accounts, transaction methods, offices) are seeded by the schema
// migration; this package only creates events, and only when the events
// collection is empty.
package seed

import (
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"nedarim/internal/store"
)

// Shabbat events are listed without the leading word; the office board
// reads the category instead.
var shabbatPrefix = regexp.MustCompile(`(?i)^shab+at\s+`)

// Run seeds the default calendar when no events exist yet.
func Run(db *sql.DB, logger *slog.Logger) error {
	events := store.NewEventStore(db)

	existing, err := events.List()
	if err != nil {
		return fmt.Errorf("seed: list events: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	created := 0
	for _, entry := range defaultCalendar {
		name := CleanEventName(entry.Name, entry.Category)

		event, err := events.Create(name, entry.Category, entry.Date)
		if err != nil {
			return fmt.Errorf("seed: create event %q: %w", name, err)
		}
		for _, slot := range TemplateFor(entry.Name, entry.Category) {
			if _, err := events.AddSlot(event.ID, slot.Name, slot.Office); err != nil {
				return fmt.Errorf("seed: add slot %q to %q: %w", slot.Name, name, err)
			}
		}
		created++
	}

	logger.Info("seeded default calendar", "events", created)
	return nil
}

// CleanEventName strips the redundant "Shabat " prefix from Shabbat
// event names.
func CleanEventName(name, category string) string {
	if category == "SHABAT" {
		return strings.TrimSpace(shabbatPrefix.ReplaceAllString(name, ""))
	}
	return name
}
