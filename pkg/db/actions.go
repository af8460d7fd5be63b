package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mvero/actiond/pkg/action"
)

var ErrActionNotFound = errors.New("action not found")

// ActionStore persists the actions of a project. Rows travel through the
// action codec in both directions, so the document produced by Serialize is
// the single source of truth for what gets stored.
type ActionStore interface {
	List(ctx context.Context, projectID int64) ([]*action.Action, error)
	Get(ctx context.Context, projectID int64, actionID int) (*action.Action, error)
	NextActionID(ctx context.Context, projectID int64) (int, error)
	Create(ctx context.Context, projectID int64, a *action.Action) error
	Update(ctx context.Context, projectID int64, a *action.Action) error
	Delete(ctx context.Context, projectID int64, actionID int) error
}

// Actions returns an ActionStore for this database.
func (db *DB) Actions() ActionStore {
	return &actionStore{db: db}
}

type actionStore struct {
	db *DB
}

const actionColumns = `action_id, icon, title, tx_data, eol, binary, timer_interval_ms, timer_mode, auto_execute_on_connect`

// scanAction rebuilds an Action from a row by assembling its persisted
// document and running it through the codec.
func scanAction(scan func(dest ...any) error) (*action.Action, error) {
	var (
		actionID       int
		icon, title    string
		txData, eol    string
		binary         bool
		intervalMs     int
		timerMode      int
		autoExecOnConn bool
	)
	err := scan(&actionID, &icon, &title, &txData, &eol, &binary, &intervalMs, &timerMode, &autoExecOnConn)
	if err != nil {
		return nil, err
	}

	a := action.New(actionID)
	a.Read(action.Document{
		"icon":                 icon,
		"title":                title,
		"txData":               txData,
		"eol":                  eol,
		"binary":               binary,
		"timerIntervalMs":      intervalMs,
		"timerMode":            timerMode,
		"autoExecuteOnConnect": autoExecOnConn,
	})
	return a, nil
}

func (s *actionStore) List(ctx context.Context, projectID int64) ([]*action.Action, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+actionColumns+`
		FROM actions WHERE project_id = ? ORDER BY action_id
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var actions []*action.Action
	for rows.Next() {
		a, err := scanAction(rows.Scan)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

func (s *actionStore) Get(ctx context.Context, projectID int64, actionID int) (*action.Action, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+actionColumns+`
		FROM actions WHERE project_id = ? AND action_id = ?
	`, projectID, actionID)

	a, err := scanAction(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrActionNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// NextActionID returns a fresh action id for the project. Ids are assigned
// once at construction and never reused while the row exists.
func (s *actionStore) NextActionID(ctx context.Context, projectID int64) (int, error) {
	var next int
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(action_id), 0) + 1 FROM actions WHERE project_id = ?
	`, projectID).Scan(&next)
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (s *actionStore) Create(ctx context.Context, projectID int64, a *action.Action) error {
	doc := a.Serialize()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO actions (project_id, `+actionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, projectID, a.ID(),
		doc.String("icon", ""), doc.String("title", ""),
		doc.String("txData", ""), doc.String("eol", ""),
		doc.Bool("binary", false), doc.Int("timerIntervalMs", action.DefaultTimerIntervalMs),
		doc.Int("timerMode", 0), doc.Bool("autoExecuteOnConnect", false))
	if err != nil {
		return fmt.Errorf("failed to create action: %w", err)
	}
	return nil
}

func (s *actionStore) Update(ctx context.Context, projectID int64, a *action.Action) error {
	doc := a.Serialize()
	result, err := s.db.ExecContext(ctx, `
		UPDATE actions SET
			icon = ?, title = ?, tx_data = ?, eol = ?, binary = ?,
			timer_interval_ms = ?, timer_mode = ?, auto_execute_on_connect = ?,
			updated_at = datetime('now')
		WHERE project_id = ? AND action_id = ?
	`, doc.String("icon", ""), doc.String("title", ""),
		doc.String("txData", ""), doc.String("eol", ""),
		doc.Bool("binary", false), doc.Int("timerIntervalMs", action.DefaultTimerIntervalMs),
		doc.Int("timerMode", 0), doc.Bool("autoExecuteOnConnect", false),
		projectID, a.ID())
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrActionNotFound
	}
	return nil
}

func (s *actionStore) Delete(ctx context.Context, projectID int64, actionID int) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM actions WHERE project_id = ? AND action_id = ?
	`, projectID, actionID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrActionNotFound
	}
	return nil
}
