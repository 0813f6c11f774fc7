package store

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPledgeUpsertReplacesPreviousPledge(t *testing.T) {
	db := setupTestDB(t)
	es := NewEventStore(db)
	ps := NewPledgeStore(db)
	ms := NewMemberStore(db)

	e, _ := es.Create("Vayera", "SHABAT", "2025-11-08")
	slot, _ := es.AddSlot(e.ID, "Maftir", "Chaharit 1")
	a, _ := ms.Create("Amar", "Yossef", "", "", "", "", decimal.Zero)
	b, _ := ms.Create("Benamou", "Aaron", "", "", "", "", decimal.Zero)

	first, err := ps.Upsert(e.ID, slot.ID, a.ID, decimal.NewFromInt(260), false)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := ps.Upsert(e.ID, slot.ID, b.ID, decimal.NewFromInt(520), false)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID == first.ID {
		t.Error("replacement must get a fresh pledge id")
	}

	if p, _ := ps.GetByID(first.ID); p != nil {
		t.Error("previous pledge should be gone")
	}
	live, _ := ps.GetBySlot(slot.ID)
	if live == nil {
		t.Fatal("expected a live pledge")
	}
	if live.MemberID != b.ID || !live.Amount.Equal(decimal.NewFromInt(520)) {
		t.Errorf("live pledge = %s/%s, want %s/520", live.MemberID, live.Amount, b.ID)
	}

	byMember, _ := ps.ListByMember(a.ID)
	if len(byMember) != 0 {
		t.Errorf("replaced member still has %d pledges", len(byMember))
	}
}

func TestPledgeDenormalizedFields(t *testing.T) {
	db := setupTestDB(t)
	es := NewEventStore(db)
	ps := NewPledgeStore(db)

	e, _ := es.Create("Kippour", "FETES DE TICHRI", "2025-10-02")
	slot, _ := es.AddSlot(e.ID, "Neila", "Arvit 2")

	p, err := ps.Upsert(e.ID, slot.ID, "", decimal.NewFromInt(1000), false)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if p.SlotName != "Neila" {
		t.Errorf("slot name = %q, want %q", p.SlotName, "Neila")
	}
	if p.OfficeName != "Arvit 2" {
		t.Errorf("office = %q, want %q", p.OfficeName, "Arvit 2")
	}
	if p.Category != "FETES DE TICHRI" {
		t.Errorf("category = %q, want %q", p.Category, "FETES DE TICHRI")
	}
	if p.Date != "2025-10-02" {
		t.Errorf("date = %q, want %q", p.Date, "2025-10-02")
	}
}

func TestPledgeDateDefaultsToTodayWhenEventUndated(t *testing.T) {
	db := setupTestDB(t)
	es := NewEventStore(db)
	ps := NewPledgeStore(db)

	e, _ := es.Create("Dons divers", "AUTRES", "")
	slot, _ := es.AddSlot(e.ID, "Don libre", "Chaharit 1")

	p, err := ps.Upsert(e.ID, slot.ID, "", decimal.NewFromInt(50), false)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if p.Date == "" {
		t.Error("pledge date must never be empty")
	}
}

func TestPledgeOfferedFlag(t *testing.T) {
	db := setupTestDB(t)
	es := NewEventStore(db)
	ps := NewPledgeStore(db)

	e, _ := es.Create("Vayera", "SHABAT", "2025-11-08")
	slot, _ := es.AddSlot(e.ID, "Ehal", "Chaharit 1")

	p, err := ps.Upsert(e.ID, slot.ID, "", decimal.NewFromInt(300), true)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !p.Offered {
		t.Error("offered flag not persisted")
	}
	got, _ := ps.GetBySlot(slot.ID)
	if !got.Offered {
		t.Error("offered flag lost on reload")
	}
}

func TestPledgeUpsertUnknownSlot(t *testing.T) {
	db := setupTestDB(t)
	es := NewEventStore(db)
	ps := NewPledgeStore(db)

	e, _ := es.Create("Vayera", "SHABAT", "2025-11-08")

	if _, err := ps.Upsert(e.ID, "no-such-slot", "", decimal.NewFromInt(10), false); err == nil {
		t.Fatal("expected error for unknown slot")
	}
}

func TestPledgeDelete(t *testing.T) {
	db := setupTestDB(t)
	es := NewEventStore(db)
	ps := NewPledgeStore(db)

	e, _ := es.Create("Vayera", "SHABAT", "2025-11-08")
	slot, _ := es.AddSlot(e.ID, "Ehal", "Chaharit 1")
	p, _ := ps.Upsert(e.ID, slot.ID, "", decimal.NewFromInt(100), false)

	if err := ps.Delete(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := ps.GetBySlot(slot.ID); got != nil {
		t.Error("slot should be unassigned after delete")
	}
	if s, _ := es.GetSlot(slot.ID); s == nil {
		t.Error("deleting a pledge must not remove the slot")
	}
}
