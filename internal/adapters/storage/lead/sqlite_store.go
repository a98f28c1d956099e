package lead

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"datao/internal/adapters/storage"
	domain "datao/internal/domain/lead"
)

type sqliteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore returns a Store backed by SQLite.
func NewSQLiteStore(db storage.SQLDB) Store {
	return &sqliteStore{db: db}
}

// Save persists a Lead.
// PRE: l.ID is non-empty and unique
// POST: row inserted into lead
func (s *sqliteStore) Save(ctx context.Context, l domain.Lead) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lead (id, name, email, business, message, created_at)
		VALUES (?,?,?,?,?,?)`,
		l.ID,
		l.Name,
		l.Email,
		l.Business,
		l.Message,
		l.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("lead save: %w", err)
	}
	return nil
}

// GetByID retrieves a Lead by its ID.
// PRE: id is non-empty
// POST: returns domain.Lead or ErrLeadNotFound
func (s *sqliteStore) GetByID(ctx context.Context, id string) (domain.Lead, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, business, message, created_at
		FROM lead WHERE id = ?`, id)

	l, err := scanLead(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Lead{}, domain.ErrLeadNotFound
	}
	if err != nil {
		return domain.Lead{}, fmt.Errorf("lead get: %w", err)
	}
	return l, nil
}

// List returns all leads, newest first.
func (s *sqliteStore) List(ctx context.Context) ([]domain.Lead, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, business, message, created_at
		FROM lead ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("lead list: %w", err)
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		l, err := scanLead(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("lead list scan: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lead list rows: %w", err)
	}
	return leads, nil
}

func scanLead(scan func(dest ...any) error) (domain.Lead, error) {
	var l domain.Lead
	var createdAt string
	if err := scan(&l.ID, &l.Name, &l.Email, &l.Business, &l.Message, &createdAt); err != nil {
		return domain.Lead{}, err
	}
	l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return l, nil
}
