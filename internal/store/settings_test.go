package store

import (
	"testing"
	"time"
)

func TestSettingsGetSet(t *testing.T) {
	ss := NewSettingsStore(setupTestDB(t))

	got, err := ss.Get("no_such_key")
	if err != nil {
		t.Fatalf("get missing key: %v", err)
	}
	if got != "" {
		t.Errorf("missing key = %q, want empty", got)
	}

	if err := ss.Set(KeyOrgName, "Beith Yossef"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := ss.Set(KeyOrgName, "Mishkan Yehuda"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = ss.Get(KeyOrgName)
	if got != "Mishkan Yehuda" {
		t.Errorf("org name = %q, want %q", got, "Mishkan Yehuda")
	}

	all, err := ss.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if all[KeyOrgName] != "Mishkan Yehuda" {
		t.Errorf("get all missing org name, got %v", all)
	}
}

func TestStatusConfigDefaults(t *testing.T) {
	ss := NewSettingsStore(setupTestDB(t))

	cfg, err := ss.StatusConfig()
	if err != nil {
		t.Fatalf("status config: %v", err)
	}
	if cfg.RecentDays != 30 || cfg.ActiveDays != 90 {
		t.Errorf("defaults = %d/%d, want 30/90", cfg.RecentDays, cfg.ActiveDays)
	}

	ss.Set(KeyRecentDays, "14")
	ss.Set(KeyActiveDays, "60")
	cfg, _ = ss.StatusConfig()
	if cfg.RecentDays != 14 || cfg.ActiveDays != 60 {
		t.Errorf("configured = %d/%d, want 14/60", cfg.RecentDays, cfg.ActiveDays)
	}

	// Garbage falls back to the defaults.
	ss.Set(KeyRecentDays, "soon")
	ss.Set(KeyActiveDays, "-5")
	cfg, _ = ss.StatusConfig()
	if cfg.RecentDays != 30 || cfg.ActiveDays != 90 {
		t.Errorf("fallback = %d/%d, want 30/90", cfg.RecentDays, cfg.ActiveDays)
	}
}

func TestCampaignWindowDefaults(t *testing.T) {
	ss := NewSettingsStore(setupTestDB(t))

	w, err := ss.CampaignWindow()
	if err != nil {
		t.Fatalf("campaign window: %v", err)
	}
	if w.Start.Format("2006-01-02") != "2025-09-23" {
		t.Errorf("default start = %s, want 2025-09-23", w.Start.Format("2006-01-02"))
	}
	if w.End.Format("2006-01-02") != "2026-09-11" {
		t.Errorf("default end = %s, want 2026-09-11", w.End.Format("2006-01-02"))
	}

	ss.Set(KeyCampaignStart, "2026-09-12")
	ss.Set(KeyCampaignEnd, "2027-09-01")
	w, _ = ss.CampaignWindow()
	if !w.Start.Equal(time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("configured start = %s", w.Start)
	}
	if !w.End.Equal(time.Date(2027, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("configured end = %s", w.End)
	}
}

func TestAdminPIN(t *testing.T) {
	ss := NewSettingsStore(setupTestDB(t))

	has, err := ss.HasAdminPIN()
	if err != nil {
		t.Fatalf("has pin: %v", err)
	}
	if has {
		t.Error("fresh ledger must not have a PIN")
	}
	ok, _ := ss.CheckAdminPIN("1234")
	if ok {
		t.Error("ledger without a PIN must accept nothing")
	}

	if err := ss.SetAdminPIN("1234"); err != nil {
		t.Fatalf("set pin: %v", err)
	}
	has, _ = ss.HasAdminPIN()
	if !has {
		t.Error("expected PIN to be configured")
	}
	if ok, _ := ss.CheckAdminPIN("1234"); !ok {
		t.Error("correct PIN rejected")
	}
	if ok, _ := ss.CheckAdminPIN("0000"); ok {
		t.Error("wrong PIN accepted")
	}

	// The hash never leaks through the exported key set.
	all, _ := ss.GetAll()
	for key, value := range all {
		if key == "admin_pin_hash" && value == "1234" {
			t.Error("PIN stored in clear")
		}
	}
}

func TestSeededEnumerations(t *testing.T) {
	ss := NewSettingsStore(setupTestDB(t))

	categories, err := ss.ListCategories()
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 4 || categories[0] != "SHABAT" {
		t.Errorf("categories = %v", categories)
	}
	accounts, _ := ss.ListAccounts()
	if len(accounts) != 4 {
		t.Errorf("accounts = %v", accounts)
	}
	methods, _ := ss.ListMethods()
	if len(methods) != 4 {
		t.Errorf("methods = %v", methods)
	}
	offices, _ := ss.ListOffices()
	if len(offices) != 5 || offices[0] != "Arvit 1" {
		t.Errorf("offices = %v", offices)
	}
}

func TestEnumerationAddRemove(t *testing.T) {
	ss := NewSettingsStore(setupTestDB(t))

	if err := ss.AddAccount("Keren Or"); err != nil {
		t.Fatalf("add account: %v", err)
	}
	// Duplicate adds are a no-op.
	if err := ss.AddAccount("Keren Or"); err != nil {
		t.Fatalf("re-add account: %v", err)
	}
	accounts, _ := ss.ListAccounts()
	if len(accounts) != 5 || accounts[4] != "Keren Or" {
		t.Errorf("accounts after add = %v", accounts)
	}

	if err := ss.RemoveAccount("Keren Or"); err != nil {
		t.Fatalf("remove account: %v", err)
	}
	accounts, _ = ss.ListAccounts()
	if len(accounts) != 4 {
		t.Errorf("accounts after remove = %v", accounts)
	}
}
