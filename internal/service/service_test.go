package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/united77/cricfees/internal/models"
	"github.com/united77/cricfees/internal/storage/sqlite"
)

// setupStore creates a temp SQLite store for service tests.
func setupStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "cricfees-service-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// seedRoster creates a roster with the given category counts and returns
// the created players' IDs in creation order.
func seedRoster(t *testing.T, roster *RosterService, core, selfPaid, unpaid int) []string {
	t.Helper()
	ctx := context.Background()
	var ids []string
	add := func(prefix string, category models.Category, n int) {
		for i := 0; i < n; i++ {
			name := prefix + string(rune('A'+i))
			player, err := roster.AddPlayer(ctx, name, "", category)
			if err != nil {
				t.Fatalf("AddPlayer(%s) failed: %v", name, err)
			}
			ids = append(ids, player.ID)
		}
	}
	add("Core", models.CategoryCore, core)
	add("Self", models.CategorySelfPaid, selfPaid)
	add("Unpaid", models.CategoryUnpaid, unpaid)
	return ids
}
