package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nedarim/internal/model"
)

type EventStore struct {
	db *sql.DB
}

func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

const eventCols = `id, name, category, date, sort_order, created_at, updated_at`

func scanEvent(scanner interface{ Scan(...any) error }) (*model.Event, error) {
	var e model.Event
	err := scanner.Scan(&e.ID, &e.Name, &e.Category, &e.Date, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EventStore) Create(name, category, date string) (*model.Event, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO events (`+eventCols+`)
		 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(sort_order), -1) + 1 FROM events), ?, ?)`,
		id, name, category, date, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return s.GetByID(id)
}

func (s *EventStore) GetByID(id string) (*model.Event, error) {
	row := s.db.QueryRow(`SELECT `+eventCols+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (s *EventStore) List() ([]model.Event, error) {
	rows, err := s.db.Query(`SELECT ` + eventCols + ` FROM events ORDER BY sort_order ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// UpdateInfo changes an event's name, category and date, and rewrites the
// denormalized category/date on every pledge of the event in the same
// transaction.
func (s *EventStore) UpdateInfo(id, name, category, date string) (*model.Event, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	if _, err := tx.Exec(
		`UPDATE events SET name = ?, category = ?, date = ?, updated_at = ? WHERE id = ?`,
		name, category, date, now, id,
	); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	if _, err := tx.Exec(
		`UPDATE pledges SET category = ?, date = ?, updated_at = ? WHERE event_id = ?`,
		category, date, now, id,
	); err != nil {
		return nil, fmt.Errorf("update event pledges: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByID(id)
}

// Duplicate copies an event and its slots (with fresh slot ids) under a
// new name. Pledges are not copied.
func (s *EventStore) Duplicate(id string) (*model.Event, error) {
	src, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("duplicate event: %s not found", id)
	}
	slots, err := s.ListSlots(id)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	newID := uuid.New().String()
	now := time.Now().UTC()
	if _, err := tx.Exec(
		`INSERT INTO events (`+eventCols+`)
		 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(sort_order), -1) + 1 FROM events), ?, ?)`,
		newID, src.Name+" (copie)", src.Category, src.Date, now, now,
	); err != nil {
		return nil, fmt.Errorf("insert event copy: %w", err)
	}
	for _, slot := range slots {
		if _, err := tx.Exec(
			`INSERT INTO slots (id, event_id, name, office, sort_order) VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), newID, slot.Name, slot.Office, slot.SortOrder,
		); err != nil {
			return nil, fmt.Errorf("insert slot copy: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByID(newID)
}

// Delete removes an event; slots and pledges cascade in the same statement.
func (s *EventStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *EventStore) UpdateSortOrder(ids []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for i, id := range ids {
		if _, err := tx.Exec(`UPDATE events SET sort_order = ? WHERE id = ?`, i, id); err != nil {
			return fmt.Errorf("update sort order: %w", err)
		}
	}
	return tx.Commit()
}

// --- Slot methods ---

const slotCols = `id, event_id, name, office, sort_order`

func scanSlot(scanner interface{ Scan(...any) error }) (*model.Slot, error) {
	var sl model.Slot
	err := scanner.Scan(&sl.ID, &sl.EventID, &sl.Name, &sl.Office, &sl.SortOrder)
	if err != nil {
		return nil, err
	}
	return &sl, nil
}

func (s *EventStore) AddSlot(eventID, name, office string) (*model.Slot, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO slots (`+slotCols+`)
		 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(sort_order), -1) + 1 FROM slots WHERE event_id = ?))`,
		id, eventID, name, office, eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert slot: %w", err)
	}
	return s.GetSlot(id)
}

func (s *EventStore) GetSlot(id string) (*model.Slot, error) {
	row := s.db.QueryRow(`SELECT `+slotCols+` FROM slots WHERE id = ?`, id)
	sl, err := scanSlot(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return sl, nil
}

func (s *EventStore) ListSlots(eventID string) ([]model.Slot, error) {
	rows, err := s.db.Query(
		`SELECT `+slotCols+` FROM slots WHERE event_id = ? ORDER BY sort_order ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var slots []model.Slot
	for rows.Next() {
		sl, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, *sl)
	}
	return slots, rows.Err()
}

// RenameSlot changes a slot's display name and rewrites the denormalized
// name on its pledge in the same transaction, so no state is observable
// where a pledge carries a name the event no longer has.
func (s *EventStore) RenameSlot(id, newName string) (*model.Slot, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE slots SET name = ? WHERE id = ?`, newName, id); err != nil {
		return nil, fmt.Errorf("rename slot: %w", err)
	}
	if _, err := tx.Exec(
		`UPDATE pledges SET slot_name = ?, updated_at = ? WHERE slot_id = ?`,
		newName, time.Now().UTC(), id,
	); err != nil {
		return nil, fmt.Errorf("rename slot pledges: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetSlot(id)
}

// SetSlotOffice changes a slot's office label; the pledge copy is rewritten
// in the same transaction, like RenameSlot.
func (s *EventStore) SetSlotOffice(id, newOffice string) (*model.Slot, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE slots SET office = ? WHERE id = ?`, newOffice, id); err != nil {
		return nil, fmt.Errorf("set slot office: %w", err)
	}
	if _, err := tx.Exec(
		`UPDATE pledges SET office_name = ?, updated_at = ? WHERE slot_id = ?`,
		newOffice, time.Now().UTC(), id,
	); err != nil {
		return nil, fmt.Errorf("set slot office pledges: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetSlot(id)
}

// DeleteSlot removes a slot; its pledge cascades in the same statement.
func (s *EventStore) DeleteSlot(id string) error {
	_, err := s.db.Exec(`DELETE FROM slots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

// ReorderSlots rewrites slot sort order for one event. Order has no
// bearing on the pledge join key, so pledges are untouched.
func (s *EventStore) ReorderSlots(eventID string, ids []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for i, id := range ids {
		if _, err := tx.Exec(
			`UPDATE slots SET sort_order = ? WHERE id = ? AND event_id = ?`,
			i, id, eventID,
		); err != nil {
			return fmt.Errorf("reorder slots: %w", err)
		}
	}
	return tx.Commit()
}
