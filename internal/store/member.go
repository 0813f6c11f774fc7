package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"nedarim/internal/model"
)

type MemberStore struct {
	db *sql.DB
}

func NewMemberStore(db *sql.DB) *MemberStore {
	return &MemberStore{db: db}
}

const memberCols = `id, last_name, first_name, email, phone, country, receipt_preference, carry_over_balance, created_at, updated_at`

func scanMember(scanner interface{ Scan(...any) error }) (*model.Member, error) {
	var m model.Member
	var pref, balance string
	err := scanner.Scan(
		&m.ID, &m.LastName, &m.FirstName, &m.Email, &m.Phone, &m.Country,
		&pref, &balance, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.ReceiptPreference = model.ReceiptPreference(pref)
	m.CarryOverBalance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parse carry-over balance %q: %w", balance, err)
	}
	return &m, nil
}

// normalizeName uppercases the family name and capitalizes the given name,
// matching how records have always been entered.
func normalizeName(lastName, firstName string) (string, string) {
	last := strings.ToUpper(strings.TrimSpace(lastName))
	first := strings.TrimSpace(firstName)
	if first != "" {
		runes := []rune(strings.ToLower(first))
		runes[0] = unicode.ToUpper(runes[0])
		first = string(runes)
	}
	return last, first
}

func (s *MemberStore) Create(lastName, firstName, email, phone, country string, pref model.ReceiptPreference, carryOver decimal.Decimal) (*model.Member, error) {
	last, first := normalizeName(lastName, firstName)
	if country == "" {
		country = "France"
	}
	if pref == "" {
		pref = model.ReceiptNone
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO members (`+memberCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, last, first, email, phone, country, string(pref), carryOver.String(), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return s.GetByID(id)
}

func (s *MemberStore) GetByID(id string) (*model.Member, error) {
	row := s.db.QueryRow(`SELECT `+memberCols+` FROM members WHERE id = ?`, id)
	m, err := scanMember(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

func (s *MemberStore) List() ([]model.Member, error) {
	rows, err := s.db.Query(`SELECT ` + memberCols + ` FROM members ORDER BY last_name ASC, first_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

// Search matches the query against either name order, case-insensitively.
func (s *MemberStore) Search(query string) ([]model.Member, error) {
	q := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	rows, err := s.db.Query(
		`SELECT `+memberCols+` FROM members
		 WHERE lower(last_name || ' ' || first_name) LIKE ?
		    OR lower(first_name || ' ' || last_name) LIKE ?
		 ORDER BY last_name ASC, first_name ASC`,
		q, q,
	)
	if err != nil {
		return nil, fmt.Errorf("search members: %w", err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func (s *MemberStore) Update(id, lastName, firstName, email, phone, country string, pref model.ReceiptPreference, carryOver decimal.Decimal) (*model.Member, error) {
	last, first := normalizeName(lastName, firstName)
	_, err := s.db.Exec(
		`UPDATE members SET last_name = ?, first_name = ?, email = ?, phone = ?, country = ?, receipt_preference = ?, carry_over_balance = ?, updated_at = ? WHERE id = ?`,
		last, first, email, phone, country, string(pref), carryOver.String(), time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes the member record only. Pledges and receipts keep the
// member reference so historical totals remain explainable.
func (s *MemberStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}
