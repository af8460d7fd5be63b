package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mvero/actiond/pkg/action"
)

func openTestDB(t *testing.T) (*DB, int64) {
	t.Helper()
	ctx := context.Background()

	database, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Bootstrap(ctx); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	project, err := database.Projects().GetActive(ctx)
	if err != nil {
		t.Fatalf("active project: %v", err)
	}
	return database, project.ID
}

func TestBootstrap_CreatesDefaults(t *testing.T) {
	database, projectID := openTestDB(t)
	ctx := context.Background()

	needs, err := database.NeedsBootstrap(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if needs {
		t.Error("expected bootstrap to be complete")
	}

	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		t.Fatalf("active config: %v", err)
	}
	if cfg.Project.Name != "default" {
		t.Errorf("expected default project, got %q", cfg.Project.Name)
	}
	if cfg.Link == nil || cfg.Link.ProjectID != projectID {
		t.Error("expected a link config for the default project")
	}
	if cfg.BaudRate() != 115200 {
		t.Errorf("expected 115200 baud, got %d", cfg.BaudRate())
	}
	if cfg.Link.Mode().BaudRate != 115200 {
		t.Errorf("expected serial mode at 115200, got %d", cfg.Link.Mode().BaudRate)
	}
}

func TestActionStore_CreateGetRoundTrip(t *testing.T) {
	database, projectID := openTestDB(t)
	ctx := context.Background()
	store := database.Actions()

	id, err := store.NextActionID(ctx, projectID)
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("expected first id 1, got %d", id)
	}

	a := action.New(id)
	a.SetTitle("Query Status")
	a.SetIcon("Play Property")
	a.SetTxData(`STATUS?\n`)
	a.SetEOLSequence(`\r\n`)
	a.SetBinaryData(false)
	a.SetTimerIntervalMs(500)
	a.SetMode(action.TimerAutoStart)
	a.SetAutoExecuteOnConnect(true)

	if err := store.Create(ctx, projectID, a); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, projectID, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != *a {
		t.Errorf("round trip mismatch: got %+v, want %+v", *got, *a)
	}
}

func TestActionStore_ListOrdersByActionID(t *testing.T) {
	database, projectID := openTestDB(t)
	ctx := context.Background()
	store := database.Actions()

	for i := 1; i <= 3; i++ {
		id, err := store.NextActionID(ctx, projectID)
		if err != nil {
			t.Fatal(err)
		}
		if id != i {
			t.Fatalf("expected id %d, got %d", i, id)
		}
		a := action.New(id)
		a.SetTitle("action")
		if err := store.Create(ctx, projectID, a); err != nil {
			t.Fatal(err)
		}
	}

	actions, err := store.List(ctx, projectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(actions))
	}
	for i, a := range actions {
		if a.ID() != i+1 {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, a.ID())
		}
	}
}

func TestActionStore_Update(t *testing.T) {
	database, projectID := openTestDB(t)
	ctx := context.Background()
	store := database.Actions()

	a := action.New(1)
	a.SetTitle("before")
	if err := store.Create(ctx, projectID, a); err != nil {
		t.Fatal(err)
	}

	a.SetTitle("after")
	a.SetBinaryData(true)
	a.SetTxData("CA FE")
	if err := store.Update(ctx, projectID, a); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, projectID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title() != "after" || !got.BinaryData() || got.TxData() != "CA FE" {
		t.Errorf("update not persisted: %+v", *got)
	}

	missing := action.New(99)
	if err := store.Update(ctx, projectID, missing); !errors.Is(err, ErrActionNotFound) {
		t.Errorf("expected ErrActionNotFound, got %v", err)
	}
}

func TestActionStore_Delete(t *testing.T) {
	database, projectID := openTestDB(t)
	ctx := context.Background()
	store := database.Actions()

	a := action.New(1)
	if err := store.Create(ctx, projectID, a); err != nil {
		t.Fatal(err)
	}

	if err := store.Delete(ctx, projectID, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, projectID, 1); !errors.Is(err, ErrActionNotFound) {
		t.Errorf("expected ErrActionNotFound, got %v", err)
	}
	if err := store.Delete(ctx, projectID, 1); !errors.Is(err, ErrActionNotFound) {
		t.Errorf("expected ErrActionNotFound on double delete, got %v", err)
	}
}

func TestActionStore_ProjectCascade(t *testing.T) {
	database, _ := openTestDB(t)
	ctx := context.Background()

	p := &Project{Name: "bench"}
	if err := database.Projects().Create(ctx, p); err != nil {
		t.Fatal(err)
	}

	a := action.New(1)
	if err := database.Actions().Create(ctx, p.ID, a); err != nil {
		t.Fatal(err)
	}

	if err := database.Projects().Delete(ctx, p.ID); err != nil {
		t.Fatal(err)
	}

	actions, err := database.Actions().List(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(actions) != 0 {
		t.Errorf("expected cascade delete to remove actions, got %d", len(actions))
	}
}
