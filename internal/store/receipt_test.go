package store

import (
	"testing"

	"github.com/shopspring/decimal"

	"nedarim/internal/model"
)

func TestReceiptNumbering(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReceiptStore(db)
	ms := NewMemberStore(db)
	m, _ := ms.Create("Cohen", "Dan", "", "", "", "", decimal.Zero)

	r1, err := rs.Create("2025-10-01", m.ID, decimal.NewFromInt(398), decimal.NewFromInt(100), 3.98, "Virement", "Beith Yossef", "")
	if err != nil {
		t.Fatalf("create receipt: %v", err)
	}
	if r1.Number != 1 {
		t.Errorf("first number = %d, want 1", r1.Number)
	}

	r2, _ := rs.Create("2025-10-02", m.ID, decimal.NewFromInt(199), decimal.NewFromInt(50), 3.98, "Espece", "Beith Yossef", "")
	if r2.Number != 2 {
		t.Errorf("second number = %d, want 2", r2.Number)
	}
	r3, _ := rs.Create("2025-10-03", m.ID, decimal.NewFromInt(100), decimal.NewFromInt(25), 4.0, "Cheque", "Atrid", "")
	if r3.Number != 3 {
		t.Errorf("third number = %d, want 3", r3.Number)
	}
}

func TestReceiptNumberingAfterDelete(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReceiptStore(db)

	r1, _ := rs.Create("2025-10-01", "m1", decimal.NewFromInt(100), decimal.NewFromInt(25), 4.0, "Espece", "Atrid", "")
	rs.Create("2025-10-02", "m1", decimal.NewFromInt(100), decimal.NewFromInt(25), 4.0, "Espece", "Atrid", "")

	if err := rs.Delete(r1.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Numbers follow the live count, so a deletion lets a number repeat.
	r3, _ := rs.Create("2025-10-03", "m1", decimal.NewFromInt(100), decimal.NewFromInt(25), 4.0, "Espece", "Atrid", "")
	if r3.Number != 2 {
		t.Errorf("number after delete = %d, want 2", r3.Number)
	}
}

func TestReceiptDefaultsAndFields(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReceiptStore(db)

	r, err := rs.Create("2025-10-01", "m1", decimal.NewFromFloat(398.50), decimal.NewFromFloat(100.13), 3.98, "Virement", "Mishkan Yehuda", "")
	if err != nil {
		t.Fatalf("create receipt: %v", err)
	}
	if r.DocumentStatus != model.ReceiptPending {
		t.Errorf("document status = %q, want %q", r.DocumentStatus, model.ReceiptPending)
	}

	got, err := rs.GetByID(r.ID)
	if err != nil {
		t.Fatalf("get receipt: %v", err)
	}
	if !got.AmountILS.Equal(decimal.NewFromFloat(398.50)) {
		t.Errorf("ILS amount = %s, want 398.5", got.AmountILS)
	}
	if !got.AmountEUR.Equal(decimal.NewFromFloat(100.13)) {
		t.Errorf("EUR amount = %s, want 100.13", got.AmountEUR)
	}
	if got.ExchangeRate != 3.98 {
		t.Errorf("rate = %v, want 3.98", got.ExchangeRate)
	}

	cerfa, _ := rs.Create("2025-10-02", "m1", decimal.NewFromInt(100), decimal.NewFromInt(25), 4.0, "Espece", "Atrid", model.ReceiptCerfa)
	if cerfa.DocumentStatus != model.ReceiptCerfa {
		t.Errorf("document status = %q, want %q", cerfa.DocumentStatus, model.ReceiptCerfa)
	}
}

func TestReceiptListOrder(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReceiptStore(db)

	rs.Create("2025-10-01", "m1", decimal.NewFromInt(100), decimal.NewFromInt(25), 4.0, "Espece", "Atrid", "")
	rs.Create("2025-10-05", "m2", decimal.NewFromInt(100), decimal.NewFromInt(25), 4.0, "Espece", "Atrid", "")
	rs.Create("2025-10-03", "m1", decimal.NewFromInt(100), decimal.NewFromInt(25), 4.0, "Espece", "Atrid", "")

	all, err := rs.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 receipts, got %d", len(all))
	}
	if all[0].Date != "2025-10-05" || all[2].Date != "2025-10-01" {
		t.Errorf("list not newest-first: %s, %s, %s", all[0].Date, all[1].Date, all[2].Date)
	}

	mine, err := rs.ListByMember("m1")
	if err != nil {
		t.Fatalf("list by member: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 receipts for m1, got %d", len(mine))
	}
	for _, r := range mine {
		if r.MemberID != "m1" {
			t.Errorf("stray receipt for %q", r.MemberID)
		}
	}
}
