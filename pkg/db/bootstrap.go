package db

import (
	"context"
	"fmt"
	"runtime"
)

// Bootstrap initializes the database with default data if it's empty.
// This is called after migrations and handles first-run setup.
func (db *DB) Bootstrap(ctx context.Context) error {
	// Check if any projects exist
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check projects: %w", err)
	}

	if count > 0 {
		return nil // Already bootstrapped
	}

	// First run - create defaults
	result, err := db.ExecContext(ctx, `
		INSERT INTO projects (name, is_active)
		VALUES (?, 1)
	`, "default")
	if err != nil {
		return fmt.Errorf("failed to create default project: %w", err)
	}

	projectID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get project ID: %w", err)
	}

	// Create default serial link config
	_, err = db.ExecContext(ctx, `
		INSERT INTO links (project_id, port, baud_rate)
		VALUES (?, ?, 115200)
	`, projectID, defaultSerialPort())
	if err != nil {
		return fmt.Errorf("failed to create default link config: %w", err)
	}

	return nil
}

// defaultSerialPort picks a plausible serial device path for the OS.
func defaultSerialPort() string {
	switch runtime.GOOS {
	case "darwin":
		return "/dev/cu.usbserial-0001"
	case "windows":
		return "COM3"
	}
	return "/dev/ttyUSB0"
}

// NeedsBootstrap returns true if the database needs initial setup.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
