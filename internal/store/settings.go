package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"nedarim/internal/model"
)

// Settings keys.
const (
	KeyOrgName       = "org_name"
	KeyOrgLogo       = "org_logo"
	KeyRecentDays    = "status_recent_days"
	KeyActiveDays    = "status_active_days"
	KeyCampaignStart = "campaign_start"
	KeyCampaignEnd   = "campaign_end"
	keyAdminPINHash  = "admin_pin_hash"
	KeyLastBackup    = "last_backup"
)

// Campaign window used when none is configured: the 5786 fundraising year.
const (
	defaultCampaignStart = "2025-09-23"
	defaultCampaignEnd   = "2026-09-11"
)

type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *SettingsStore) GetAll() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("get all settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

func (s *SettingsStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// StatusConfig reads the classifier thresholds, substituting the defaults
// for absent or unparsable values.
func (s *SettingsStore) StatusConfig() (model.StatusConfig, error) {
	cfg := model.DefaultStatusConfig()

	recent, err := s.Get(KeyRecentDays)
	if err != nil {
		return cfg, err
	}
	if n, err := strconv.Atoi(recent); err == nil && n > 0 {
		cfg.RecentDays = n
	}

	active, err := s.Get(KeyActiveDays)
	if err != nil {
		return cfg, err
	}
	if n, err := strconv.Atoi(active); err == nil && n > 0 {
		cfg.ActiveDays = n
	}
	return cfg, nil
}

// CampaignWindow reads the fundraising period, substituting the 5786
// defaults for absent or unparsable values.
func (s *SettingsStore) CampaignWindow() (model.CampaignWindow, error) {
	var w model.CampaignWindow
	w.Start, _ = time.Parse("2006-01-02", defaultCampaignStart)
	w.End, _ = time.Parse("2006-01-02", defaultCampaignEnd)

	start, err := s.Get(KeyCampaignStart)
	if err != nil {
		return w, err
	}
	if t, err := time.Parse("2006-01-02", start); err == nil {
		w.Start = t
	}

	end, err := s.Get(KeyCampaignEnd)
	if err != nil {
		return w, err
	}
	if t, err := time.Parse("2006-01-02", end); err == nil {
		w.End = t
	}
	return w, nil
}

// --- Admin PIN ---

func (s *SettingsStore) SetAdminPIN(pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}
	return s.Set(keyAdminPINHash, string(hash))
}

func (s *SettingsStore) HasAdminPIN() (bool, error) {
	hash, err := s.Get(keyAdminPINHash)
	if err != nil {
		return false, err
	}
	return hash != "", nil
}

// CheckAdminPIN reports whether the pin matches the stored hash. A ledger
// with no PIN configured accepts nothing.
func (s *SettingsStore) CheckAdminPIN(pin string) (bool, error) {
	hash, err := s.Get(keyAdminPINHash)
	if err != nil {
		return false, err
	}
	if hash == "" {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil, nil
}

// --- Configurable enumerations ---

func (s *SettingsStore) ListCategories() ([]string, error) { return s.listNames("categories") }
func (s *SettingsStore) ListAccounts() ([]string, error)   { return s.listNames("accounts") }
func (s *SettingsStore) ListMethods() ([]string, error)    { return s.listNames("methods") }
func (s *SettingsStore) ListOffices() ([]string, error)    { return s.listNames("offices") }

func (s *SettingsStore) AddCategory(name string) error { return s.addName("categories", name) }
func (s *SettingsStore) AddAccount(name string) error  { return s.addName("accounts", name) }
func (s *SettingsStore) AddMethod(name string) error   { return s.addName("methods", name) }
func (s *SettingsStore) AddOffice(name string) error   { return s.addName("offices", name) }

func (s *SettingsStore) RemoveCategory(name string) error { return s.removeName("categories", name) }
func (s *SettingsStore) RemoveAccount(name string) error  { return s.removeName("accounts", name) }
func (s *SettingsStore) RemoveMethod(name string) error   { return s.removeName("methods", name) }
func (s *SettingsStore) RemoveOffice(name string) error   { return s.removeName("offices", name) }

func (s *SettingsStore) listNames(table string) ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM ` + table + ` ORDER BY sort_order ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SettingsStore) addName(table, name string) error {
	_, err := s.db.Exec(
		`INSERT INTO `+table+` (name, sort_order)
		 VALUES (?, (SELECT COALESCE(MAX(sort_order), -1) + 1 FROM `+table+`))
		 ON CONFLICT(name) DO NOTHING`,
		name,
	)
	if err != nil {
		return fmt.Errorf("add to %s: %w", table, err)
	}
	return nil
}

func (s *SettingsStore) removeName(table, name string) error {
	_, err := s.db.Exec(`DELETE FROM `+table+` WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("remove from %s: %w", table, err)
	}
	return nil
}
