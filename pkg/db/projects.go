package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")

// Project represents a named collection of actions.
type Project struct {
	ID        int64
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectStore provides project CRUD operations.
type ProjectStore interface {
	Get(ctx context.Context, id int64) (*Project, error)
	GetByName(ctx context.Context, name string) (*Project, error)
	GetActive(ctx context.Context) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	SetActive(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Projects returns a ProjectStore for this database.
func (db *DB) Projects() ProjectStore {
	return &projectStore{db: db}
}

type projectStore struct {
	db *DB
}

func (s *projectStore) scanRow(row *sql.Row) (*Project, error) {
	p := &Project{}
	var createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.Name, &p.IsActive, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	p.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
	p.UpdatedAt, _ = time.Parse(time.DateTime, updatedAt)
	return p, nil
}

func (s *projectStore) Get(ctx context.Context, id int64) (*Project, error) {
	return s.scanRow(s.db.QueryRowContext(ctx, `
		SELECT id, name, is_active, created_at, updated_at
		FROM projects WHERE id = ?
	`, id))
}

func (s *projectStore) GetByName(ctx context.Context, name string) (*Project, error) {
	return s.scanRow(s.db.QueryRowContext(ctx, `
		SELECT id, name, is_active, created_at, updated_at
		FROM projects WHERE name = ?
	`, name))
}

func (s *projectStore) GetActive(ctx context.Context) (*Project, error) {
	return s.scanRow(s.db.QueryRowContext(ctx, `
		SELECT id, name, is_active, created_at, updated_at
		FROM projects WHERE is_active = 1 LIMIT 1
	`))
}

func (s *projectStore) List(ctx context.Context) ([]*Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, is_active, created_at, updated_at
		FROM projects ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var projects []*Project
	for rows.Next() {
		p := &Project{}
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.IsActive, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		p.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
		p.UpdatedAt, _ = time.Parse(time.DateTime, updatedAt)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *projectStore) Create(ctx context.Context, p *Project) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (name, is_active)
		VALUES (?, ?)
	`, p.Name, p.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (s *projectStore) Update(ctx context.Context, p *Project) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE projects SET name = ?, is_active = ?, updated_at = datetime('now')
		WHERE id = ?
	`, p.Name, p.IsActive, p.ID)
	return err
}

func (s *projectStore) SetActive(ctx context.Context, id int64) error {
	return s.db.Tx(ctx, func(tx *sql.Tx) error {
		// Deactivate all projects
		if _, err := tx.ExecContext(ctx, `UPDATE projects SET is_active = 0`); err != nil {
			return err
		}
		// Activate the specified project
		result, err := tx.ExecContext(ctx, `UPDATE projects SET is_active = 1 WHERE id = ?`, id)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
}

func (s *projectStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProjectNotFound
	}
	return nil
}
