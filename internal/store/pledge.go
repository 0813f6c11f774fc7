package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"nedarim/internal/model"
)

type PledgeStore struct {
	db *sql.DB
}

func NewPledgeStore(db *sql.DB) *PledgeStore {
	return &PledgeStore{db: db}
}

const pledgeCols = `id, event_id, slot_id, slot_name, office_name, member_id, amount, offered, category, date, created_at, updated_at`

func scanPledge(scanner interface{ Scan(...any) error }) (*model.Pledge, error) {
	var p model.Pledge
	var amount string
	err := scanner.Scan(
		&p.ID, &p.EventID, &p.SlotID, &p.SlotName, &p.OfficeName, &p.MemberID,
		&amount, &p.Offered, &p.Category, &p.Date, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse pledge amount %q: %w", amount, err)
	}
	return &p, nil
}

// Upsert records a pledge against a slot, replacing any previous pledge
// for that slot. The slot's display name/office and the event's category
// and date are copied onto the pledge at write time.
func (s *PledgeStore) Upsert(eventID, slotID, memberID string, amount decimal.Decimal, offered bool) (*model.Pledge, error) {
	var slotName, office string
	err := s.db.QueryRow(`SELECT name, office FROM slots WHERE id = ?`, slotID).Scan(&slotName, &office)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("upsert pledge: slot %s not found", slotID)
	}
	if err != nil {
		return nil, fmt.Errorf("load slot: %w", err)
	}

	var category, date string
	err = s.db.QueryRow(`SELECT category, date FROM events WHERE id = ?`, eventID).Scan(&category, &date)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("upsert pledge: event %s not found", eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Replace, not append: one live pledge per slot.
	if _, err := tx.Exec(`DELETE FROM pledges WHERE slot_id = ?`, slotID); err != nil {
		return nil, fmt.Errorf("clear previous pledge: %w", err)
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	if _, err := tx.Exec(
		`INSERT INTO pledges (`+pledgeCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, eventID, slotID, slotName, office, memberID,
		amount.String(), offered, category, date, now, now,
	); err != nil {
		return nil, fmt.Errorf("insert pledge: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByID(id)
}

func (s *PledgeStore) GetByID(id string) (*model.Pledge, error) {
	row := s.db.QueryRow(`SELECT `+pledgeCols+` FROM pledges WHERE id = ?`, id)
	p, err := scanPledge(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pledge: %w", err)
	}
	return p, nil
}

// GetBySlot returns the live pledge for a slot, or nil if unassigned.
func (s *PledgeStore) GetBySlot(slotID string) (*model.Pledge, error) {
	row := s.db.QueryRow(`SELECT `+pledgeCols+` FROM pledges WHERE slot_id = ?`, slotID)
	p, err := scanPledge(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pledge by slot: %w", err)
	}
	return p, nil
}

func (s *PledgeStore) List() ([]model.Pledge, error) {
	return s.list(`SELECT ` + pledgeCols + ` FROM pledges ORDER BY date ASC, slot_name ASC`)
}

func (s *PledgeStore) ListByEvent(eventID string) ([]model.Pledge, error) {
	return s.list(`SELECT `+pledgeCols+` FROM pledges WHERE event_id = ? ORDER BY slot_name ASC`, eventID)
}

func (s *PledgeStore) ListByMember(memberID string) ([]model.Pledge, error) {
	return s.list(`SELECT `+pledgeCols+` FROM pledges WHERE member_id = ? ORDER BY date ASC`, memberID)
}

func (s *PledgeStore) list(query string, args ...any) ([]model.Pledge, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pledges: %w", err)
	}
	defer rows.Close()

	var pledges []model.Pledge
	for rows.Next() {
		p, err := scanPledge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pledge: %w", err)
		}
		pledges = append(pledges, *p)
	}
	return pledges, rows.Err()
}

func (s *PledgeStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM pledges WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete pledge: %w", err)
	}
	return nil
}
