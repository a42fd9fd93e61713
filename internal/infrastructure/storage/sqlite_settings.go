package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

// SQLiteSettingsRepository SQLite asosidagi sozlamalar ombori
type SQLiteSettingsRepository struct {
	db *sql.DB
}

// NewSQLiteSettingsRepository bazani ochish va sxemani yaratish
func NewSQLiteSettingsRepository(dbPath string) (*SQLiteSettingsRepository, error) {
	if dbPath == "" {
		return nil, errors.New("db path bo'sh bo'lmasligi kerak")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("db papkasini yaratib bo'lmadi: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite ochilmadi: %w", err)
	}

	if err := createSettingsSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteSettingsRepository{db: db}, nil
}

var _ repository.SettingsRepository = (*SQLiteSettingsRepository)(nil)

func createSettingsSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("schema yaratib bo'lmadi: %w", err)
	}
	return nil
}

// Get qiymatni olish
func (s *SQLiteSettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("setting %s: %w", key, err)
	}
	return value, true, nil
}

// Set qiymatni saqlash
func (s *SQLiteSettingsRepository) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, key, value)
	if err != nil {
		return fmt.Errorf("setting %s saqlanmadi: %w", key, err)
	}
	return nil
}

// Close bazani yopish
func (s *SQLiteSettingsRepository) Close() error {
	return s.db.Close()
}
