package store

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"

	"nedarim/internal/database"
	"nedarim/internal/model"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMemberCRUD(t *testing.T) {
	ms := NewMemberStore(setupTestDB(t))

	// Create
	m, err := ms.Create("cohen", "david", "david@example.org", "0601020304", "France", model.ReceiptCerfa, decimal.NewFromInt(250))
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	if m.ID == "" {
		t.Error("expected generated id")
	}
	if m.LastName != "COHEN" {
		t.Errorf("last name = %q, want %q", m.LastName, "COHEN")
	}
	if m.FirstName != "David" {
		t.Errorf("first name = %q, want %q", m.FirstName, "David")
	}
	if !m.CarryOverBalance.Equal(decimal.NewFromInt(250)) {
		t.Errorf("carry-over = %s, want 250", m.CarryOverBalance)
	}

	// Get
	got, err := ms.GetByID(m.ID)
	if err != nil {
		t.Fatalf("get member: %v", err)
	}
	if got.ReceiptPreference != model.ReceiptCerfa {
		t.Errorf("preference = %q, want %q", got.ReceiptPreference, model.ReceiptCerfa)
	}

	// Update
	updated, err := ms.Update(m.ID, "COHEN", "David", "d@example.org", "0601020304", "Israel", model.ReceiptTofess, decimal.Zero)
	if err != nil {
		t.Fatalf("update member: %v", err)
	}
	if updated.Country != "Israel" {
		t.Errorf("country = %q, want %q", updated.Country, "Israel")
	}
	if !updated.CarryOverBalance.IsZero() {
		t.Errorf("carry-over = %s, want 0", updated.CarryOverBalance)
	}

	// Delete
	if err := ms.Delete(m.ID); err != nil {
		t.Fatalf("delete member: %v", err)
	}
	got, err = ms.GetByID(m.ID)
	if err != nil {
		t.Fatalf("get deleted member: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted member")
	}
}

func TestMemberCreateDefaults(t *testing.T) {
	ms := NewMemberStore(setupTestDB(t))

	m, err := ms.Create("Levy", "", "", "", "", "", decimal.Zero)
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	if m.Country != "France" {
		t.Errorf("country = %q, want %q", m.Country, "France")
	}
	if m.ReceiptPreference != model.ReceiptNone {
		t.Errorf("preference = %q, want %q", m.ReceiptPreference, model.ReceiptNone)
	}
	if m.FirstName != "" {
		t.Errorf("first name = %q, want empty", m.FirstName)
	}
}

func TestMemberListOrder(t *testing.T) {
	ms := NewMemberStore(setupTestDB(t))

	for _, name := range []string{"Zerbib", "Amar", "Marciano"} {
		if _, err := ms.Create(name, "X", "", "", "", "", decimal.Zero); err != nil {
			t.Fatalf("create member %q: %v", name, err)
		}
	}

	members, err := ms.List()
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	expected := []string{"AMAR", "MARCIANO", "ZERBIB"}
	if len(members) != len(expected) {
		t.Fatalf("expected %d members, got %d", len(expected), len(members))
	}
	for i, want := range expected {
		if members[i].LastName != want {
			t.Errorf("members[%d] = %q, want %q", i, members[i].LastName, want)
		}
	}
}

func TestMemberSearchEitherNameOrder(t *testing.T) {
	ms := NewMemberStore(setupTestDB(t))

	if _, err := ms.Create("Benamou", "Aaron", "", "", "", "", decimal.Zero); err != nil {
		t.Fatalf("create member: %v", err)
	}
	if _, err := ms.Create("Sebag", "Elie", "", "", "", "", decimal.Zero); err != nil {
		t.Fatalf("create member: %v", err)
	}

	for _, query := range []string{"aaron ben", "benamou aa"} {
		found, err := ms.Search(query)
		if err != nil {
			t.Fatalf("search %q: %v", query, err)
		}
		if len(found) != 1 || found[0].LastName != "BENAMOU" {
			t.Errorf("search %q: got %d results, want BENAMOU", query, len(found))
		}
	}
}
