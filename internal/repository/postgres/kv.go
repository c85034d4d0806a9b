package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
)

const (
	getValueQuery    = `SELECT value FROM kv_store WHERE key = $1`
	setValueQuery    = `INSERT INTO kv_store(key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deleteValueQuery = `DELETE FROM kv_store WHERE key = $1`
)

// GetValue returns the value stored under key.
func (p *Postgres) GetValue(ctx context.Context, key string) (string, error) {
	var v string
	if err := p.db.QueryRow(ctx, getValueQuery, key).Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entities.ErrKeyNotFound
		}
		return "", fmt.Errorf("get value: %w", err)
	}
	return v, nil
}

// SetValue upserts value under key.
func (p *Postgres) SetValue(ctx context.Context, key, value string) error {
	if _, err := p.db.Exec(ctx, setValueQuery, key, value); err != nil {
		return fmt.Errorf("set value: %w", err)
	}
	return nil
}

// DeleteValue removes key.
func (p *Postgres) DeleteValue(ctx context.Context, key string) error {
	if _, err := p.db.Exec(ctx, deleteValueQuery, key); err != nil {
		return fmt.Errorf("delete value: %w", err)
	}
	return nil
}
