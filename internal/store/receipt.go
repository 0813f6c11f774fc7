package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"nedarim/internal/model"
)

type ReceiptStore struct {
	db *sql.DB
}

func NewReceiptStore(db *sql.DB) *ReceiptStore {
	return &ReceiptStore{db: db}
}

const receiptCols = `id, number, date, member_id, amount_ils, amount_eur, exchange_rate, method, account, document_status, created_at`

func scanReceipt(scanner interface{ Scan(...any) error }) (*model.Receipt, error) {
	var r model.Receipt
	var ils, eur, status string
	err := scanner.Scan(
		&r.ID, &r.Number, &r.Date, &r.MemberID, &ils, &eur,
		&r.ExchangeRate, &r.Method, &r.Account, &status, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.DocumentStatus = model.ReceiptPreference(status)
	if r.AmountILS, err = decimal.NewFromString(ils); err != nil {
		return nil, fmt.Errorf("parse ILS amount %q: %w", ils, err)
	}
	if r.AmountEUR, err = decimal.NewFromString(eur); err != nil {
		return nil, fmt.Errorf("parse EUR amount %q: %w", eur, err)
	}
	return &r, nil
}

// Create appends a receipt. The sequence number is the collection size
// plus one at insert time; it is never reassigned, so deletions leave
// gaps and may make later numbers repeat earlier ones.
func (s *ReceiptStore) Create(date, memberID string, amountILS, amountEUR decimal.Decimal, rate float64, method, account string, docStatus model.ReceiptPreference) (*model.Receipt, error) {
	if docStatus == "" {
		docStatus = model.ReceiptPending
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM receipts`).Scan(&count); err != nil {
		return nil, fmt.Errorf("count receipts: %w", err)
	}

	id := uuid.New().String()
	if _, err := tx.Exec(
		`INSERT INTO receipts (`+receiptCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, count+1, date, memberID, amountILS.String(), amountEUR.String(),
		rate, method, account, string(docStatus), time.Now().UTC(),
	); err != nil {
		return nil, fmt.Errorf("insert receipt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByID(id)
}

func (s *ReceiptStore) GetByID(id string) (*model.Receipt, error) {
	row := s.db.QueryRow(`SELECT `+receiptCols+` FROM receipts WHERE id = ?`, id)
	r, err := scanReceipt(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return r, nil
}

func (s *ReceiptStore) List() ([]model.Receipt, error) {
	return s.list(`SELECT ` + receiptCols + ` FROM receipts ORDER BY date DESC, number DESC`)
}

func (s *ReceiptStore) ListByMember(memberID string) ([]model.Receipt, error) {
	return s.list(`SELECT `+receiptCols+` FROM receipts WHERE member_id = ? ORDER BY date DESC`, memberID)
}

func (s *ReceiptStore) list(query string, args ...any) ([]model.Receipt, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []model.Receipt
	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		receipts = append(receipts, *r)
	}
	return receipts, rows.Err()
}

func (s *ReceiptStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM receipts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}
