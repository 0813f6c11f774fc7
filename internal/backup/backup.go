// Package backup snapshots the ledger database, encrypts the snapshot,
// and uploads it to S3-compatible storage. Backups run on demand; the
// ledger is a single-user tool and does not keep a daemon alive to
// schedule them.
package backup

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"nedarim/internal/store"
)

// s3Client is the slice of the S3 API the manager uses; tests substitute
// a fake.
type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config holds S3-compatible storage settings.
type S3Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

// Config holds backup manager settings.
type Config struct {
	S3         S3Config
	DBPath     string
	Passphrase string
}

// Manager produces and restores encrypted database snapshots.
type Manager struct {
	cfg      Config
	db       *sql.DB
	settings *store.SettingsStore
	client   s3Client
	logger   *slog.Logger
}

func NewManager(cfg Config, db *sql.DB, settings *store.SettingsStore, logger *slog.Logger) *Manager {
	m := &Manager{cfg: cfg, db: db, settings: settings, logger: logger}
	if cfg.S3.Bucket != "" && cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		m.client = newS3Client(cfg.S3)
	}
	return m
}

func newS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// Configured reports whether S3 credentials and a passphrase are present.
func (m *Manager) Configured() bool {
	return m.client != nil && m.cfg.Passphrase != ""
}

// Run checkpoints the WAL, copies the database file, encrypts the copy,
// and uploads it. Returns the object key written.
func (m *Manager) Run(ctx context.Context) (string, error) {
	if !m.Configured() {
		return "", fmt.Errorf("backup not configured: S3 credentials or passphrase missing")
	}

	dbCopy := filepath.Join(os.TempDir(), fmt.Sprintf("nedarim-backup-%d.db", time.Now().UnixNano()))
	defer os.Remove(dbCopy)

	if _, err := m.db.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		return "", fmt.Errorf("wal checkpoint: %w", err)
	}
	if err := copyFile(m.cfg.DBPath, dbCopy); err != nil {
		return "", fmt.Errorf("copy database: %w", err)
	}

	plaintext, err := os.ReadFile(dbCopy)
	if err != nil {
		return "", fmt.Errorf("read database copy: %w", err)
	}
	encrypted, err := Encrypt(plaintext, m.cfg.Passphrase)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}

	key := fmt.Sprintf("nedarim/backup-%s.db.enc", time.Now().UTC().Format("2006-01-02T150405Z"))
	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(m.cfg.S3.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(encrypted),
		ContentLength: aws.Int64(int64(len(encrypted))),
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}

	if err := m.settings.Set(store.KeyLastBackup, time.Now().UTC().Format(time.RFC3339)); err != nil {
		m.logger.Warn("record last backup time", "error", err)
	}

	m.logger.Info("backup uploaded", "key", key, "bytes", len(encrypted))
	return key, nil
}

// Restore downloads an object, decrypts it, verifies SQLite integrity,
// and writes it to dstPath. It never touches the live database file; the
// caller swaps files after shutting down.
func (m *Manager) Restore(ctx context.Context, key, dstPath string) error {
	if !m.Configured() {
		return fmt.Errorf("backup not configured")
	}

	result, err := m.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.cfg.S3.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("download from s3: %w", err)
	}
	defer result.Body.Close()

	encrypted, err := io.ReadAll(result.Body)
	if err != nil {
		return fmt.Errorf("read object: %w", err)
	}

	plaintext, err := Decrypt(encrypted, m.cfg.Passphrase)
	if err != nil {
		return fmt.Errorf("decrypt backup: %w", err)
	}
	if err := os.WriteFile(dstPath, plaintext, 0600); err != nil {
		return fmt.Errorf("write restored db: %w", err)
	}

	restored, err := sql.Open("sqlite", dstPath)
	if err != nil {
		return fmt.Errorf("open restored db: %w", err)
	}
	defer restored.Close()

	var integrity string
	if err := restored.QueryRow(`PRAGMA integrity_check`).Scan(&integrity); err != nil {
		return fmt.Errorf("integrity check: %w", err)
	}
	if integrity != "ok" {
		return fmt.Errorf("integrity check: %s", integrity)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
