package db

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoActiveProject = errors.New("no active project found")

// Config represents the complete runtime configuration loaded from the database.
type Config struct {
	Project *Project
	Link    *Link
}

// SerialPort returns the configured serial device path.
func (c *Config) SerialPort() string {
	if c.Link == nil {
		return ""
	}
	return c.Link.Port
}

// BaudRate returns the configured baud rate.
func (c *Config) BaudRate() int {
	if c.Link == nil {
		return 115200
	}
	return c.Link.BaudRate
}

// ActiveConfig loads the complete configuration for the active project.
func (db *DB) ActiveConfig(ctx context.Context) (*Config, error) {
	// Get active project
	project, err := db.Projects().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return nil, ErrNoActiveProject
		}
		return nil, fmt.Errorf("failed to load active project: %w", err)
	}

	// Get its serial link config
	link, err := db.Links().Get(ctx, project.ID)
	if err != nil && !errors.Is(err, ErrLinkNotFound) {
		return nil, fmt.Errorf("failed to load link config: %w", err)
	}

	return &Config{
		Project: project,
		Link:    link,
	}, nil
}
