package test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hrygo/tiempo/internal/profile"
	"github.com/hrygo/tiempo/store"
	"github.com/hrygo/tiempo/store/db"
)

// NewTestingStore opens a migrated store for the driver named by DRIVER (default sqlite).
// Postgres tests read their DSN from POSTGRES_TEST_DSN and are skipped without it.
func NewTestingStore(ctx context.Context, t *testing.T) *store.Store {
	t.Helper()
	p := getTestingProfile(t)
	dbDriver, err := db.NewDBDriver(p)
	if err != nil {
		t.Fatalf("failed to create db driver: %v", err)
	}

	s := store.New(dbDriver, p)
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("failed to close store: %v", err)
		}
	})
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return s
}

func getTestingProfile(t *testing.T) *profile.Profile {
	driver := os.Getenv("DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	p := &profile.Profile{Mode: "dev", Driver: driver}
	switch driver {
	case "sqlite":
		p.Data = t.TempDir()
		p.DSN = filepath.Join(p.Data, "tiempo_test.db")
	case "postgres":
		p.DSN = os.Getenv("POSTGRES_TEST_DSN")
		if p.DSN == "" {
			t.Skip("POSTGRES_TEST_DSN not set")
		}
	default:
		t.Fatalf("unsupported DRIVER %q", driver)
	}
	return p
}
