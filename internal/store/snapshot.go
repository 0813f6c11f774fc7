package store

import (
	"database/sql"
	"fmt"

	"nedarim/internal/recon"
)

// LoadSnapshot reads every collection the reconciliation engine consumes.
// The ledger has a single writer, so plain sequential reads already form a
// consistent snapshot; a multi-writer deployment would need these wrapped
// in one read transaction.
func LoadSnapshot(db *sql.DB) (*recon.Snapshot, error) {
	members := NewMemberStore(db)
	pledges := NewPledgeStore(db)
	receipts := NewReceiptStore(db)
	settings := NewSettingsStore(db)

	var snap recon.Snapshot
	var err error

	if snap.Members, err = members.List(); err != nil {
		return nil, fmt.Errorf("snapshot members: %w", err)
	}
	if snap.Pledges, err = pledges.List(); err != nil {
		return nil, fmt.Errorf("snapshot pledges: %w", err)
	}
	if snap.Receipts, err = receipts.List(); err != nil {
		return nil, fmt.Errorf("snapshot receipts: %w", err)
	}
	if snap.Status, err = settings.StatusConfig(); err != nil {
		return nil, fmt.Errorf("snapshot status config: %w", err)
	}
	return &snap, nil
}
