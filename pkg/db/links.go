package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

var ErrLinkNotFound = errors.New("serial link config not found")

// Link represents the serial link configuration for a project.
type Link struct {
	ID        int64
	ProjectID int64
	Port      string
	BaudRate  int
	CreatedAt time.Time
}

// Mode returns the serial mode for this link (8N1 at the configured baud).
func (l *Link) Mode() *serial.Mode {
	return &serial.Mode{
		BaudRate: l.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

// String returns a human-readable link description (port@baud).
func (l *Link) String() string {
	return fmt.Sprintf("%s@%d", l.Port, l.BaudRate)
}

// LinkStore provides serial link config CRUD operations.
type LinkStore interface {
	Get(ctx context.Context, projectID int64) (*Link, error)
	Create(ctx context.Context, l *Link) error
	Update(ctx context.Context, l *Link) error
	Delete(ctx context.Context, projectID int64) error
}

// Links returns a LinkStore for this database.
func (db *DB) Links() LinkStore {
	return &linkStore{db: db}
}

type linkStore struct {
	db *DB
}

func (s *linkStore) Get(ctx context.Context, projectID int64) (*Link, error) {
	l := &Link{}
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, project_id, port, baud_rate, created_at
		FROM links WHERE project_id = ?
	`, projectID).Scan(&l.ID, &l.ProjectID, &l.Port, &l.BaudRate, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	l.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
	return l, nil
}

func (s *linkStore) Create(ctx context.Context, l *Link) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO links (project_id, port, baud_rate)
		VALUES (?, ?, ?)
	`, l.ProjectID, l.Port, l.BaudRate)
	if err != nil {
		return fmt.Errorf("failed to create link config: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

func (s *linkStore) Update(ctx context.Context, l *Link) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE links SET port = ?, baud_rate = ?
		WHERE project_id = ?
	`, l.Port, l.BaudRate, l.ProjectID)
	return err
}

func (s *linkStore) Delete(ctx context.Context, projectID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM links WHERE project_id = ?`, projectID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrLinkNotFound
	}
	return nil
}
