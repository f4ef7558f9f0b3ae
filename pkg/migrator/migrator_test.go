package migrator_test

import (
	"context"
	"os"
	"testing"

	"github.com/ghuser/fridgepal/migrations/fridge"
	"github.com/ghuser/fridgepal/pkg/migrator"
)

func TestUpDown(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := migrator.Open(url)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close() //nolint:errcheck

	ctx := context.Background()
	if err := migrator.Up(db, fridge.FS); err != nil {
		t.Fatalf("up: %v", err)
	}
	top, err := migrator.Version(ctx, db)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if top < 1 {
		t.Fatalf("expected at least one applied migration, got version %d", top)
	}

	if err := migrator.Down(db, fridge.FS); err != nil {
		t.Fatalf("down: %v", err)
	}
	v, err := migrator.Version(ctx, db)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v >= top {
		t.Errorf("expected version below %d after down, got %d", top, v)
	}

	if err := migrator.Up(db, fridge.FS); err != nil {
		t.Fatalf("re-up: %v", err)
	}
	if err := migrator.Status(db, fridge.FS); err != nil {
		t.Errorf("status: %v", err)
	}
}
