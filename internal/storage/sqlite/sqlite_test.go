package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/united77/cricfees/internal/models"
	"github.com/united77/cricfees/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "cricfees-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPlayerStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreatePlayer generates ID and CreatedAt", func(t *testing.T) {
		player := &models.Player{
			Name:     "Ravi",
			Phone:    "+91 98765 43210",
			Category: models.CategoryCore,
			IsActive: true,
		}
		if err := store.CreatePlayer(ctx, player); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}
		if player.ID == "" {
			t.Error("Expected player ID to be generated")
		}
		if player.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetPlayerByName is case-insensitive", func(t *testing.T) {
		player := &models.Player{Name: "Suresh", Category: models.CategorySelfPaid, IsActive: true}
		if err := store.CreatePlayer(ctx, player); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}

		found, err := store.GetPlayerByName(ctx, "sUrEsH")
		if err != nil {
			t.Fatalf("GetPlayerByName failed: %v", err)
		}
		if found == nil || found.ID != player.ID {
			t.Errorf("Expected to find Suresh, got %+v", found)
		}

		missing, err := store.GetPlayerByName(ctx, "nobody")
		if err != nil {
			t.Fatalf("GetPlayerByName failed: %v", err)
		}
		if missing != nil {
			t.Errorf("Expected nil for unknown name, got %+v", missing)
		}
	})

	t.Run("UpdatePlayer applies partial updates", func(t *testing.T) {
		player := &models.Player{Name: "Kiran", Category: models.CategoryUnpaid, IsActive: true}
		if err := store.CreatePlayer(ctx, player); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}

		category := models.CategoryCore
		upi := "kiran@bank"
		updated, err := store.UpdatePlayer(ctx, player.ID, models.PlayerUpdate{
			Category: &category,
			UpiID:    &upi,
		})
		if err != nil {
			t.Fatalf("UpdatePlayer failed: %v", err)
		}
		if updated.Category != models.CategoryCore {
			t.Errorf("Category = %s, want core", updated.Category)
		}
		if updated.UpiID != "kiran@bank" {
			t.Errorf("UpiID = %s, want kiran@bank", updated.UpiID)
		}
		if updated.Name != "Kiran" {
			t.Errorf("Name changed unexpectedly: %s", updated.Name)
		}

		// Persisted, not just returned.
		got, err := store.GetPlayer(ctx, player.ID)
		if err != nil {
			t.Fatalf("GetPlayer failed: %v", err)
		}
		if got.Category != models.CategoryCore || got.UpiID != "kiran@bank" {
			t.Errorf("update not persisted: %+v", got)
		}
	})

	t.Run("DeletePlayer removes the player", func(t *testing.T) {
		player := &models.Player{Name: "Temp", Category: models.CategorySelfPaid, IsActive: true}
		if err := store.CreatePlayer(ctx, player); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}
		if err := store.DeletePlayer(ctx, player.ID); err != nil {
			t.Fatalf("DeletePlayer failed: %v", err)
		}
		if _, err := store.GetPlayer(ctx, player.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetPlayer after delete: err = %v, want ErrNotFound", err)
		}
	})

	t.Run("GetPlayer returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetPlayer(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func testMatch(players []string) *models.Match {
	payments := make([]models.Payment, len(players))
	for i, id := range players {
		payments[i] = models.Payment{PlayerID: id, Amount: 200, PaidBy: id}
	}
	return &models.Match{
		OpponentTeam:    "Strikers",
		TotalFees:       2400,
		Date:            "2025-06-01",
		SelectedPlayers: players,
		FeeSplit: models.FeeSplit{
			PerPlayerAmount: 200,
			TotalPlayers:    len(players),
			CorePlayers:     len(players),
		},
		Payments: payments,
	}
}

func TestMatchStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ids := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10", "p11"}

	t.Run("CreateMatch and GetMatch round trip", func(t *testing.T) {
		match := testMatch(ids)
		if err := store.CreateMatch(ctx, match); err != nil {
			t.Fatalf("CreateMatch failed: %v", err)
		}
		if match.ID == "" {
			t.Error("Expected match ID to be generated")
		}
		if match.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}

		got, err := store.GetMatch(ctx, match.ID)
		if err != nil {
			t.Fatalf("GetMatch failed: %v", err)
		}
		if got.OpponentTeam != "Strikers" || got.TotalFees != 2400 || got.Date != "2025-06-01" {
			t.Errorf("match fields mismatch: %+v", got)
		}
		if len(got.SelectedPlayers) != len(ids) {
			t.Fatalf("SelectedPlayers count = %d, want %d", len(got.SelectedPlayers), len(ids))
		}
		for i, id := range ids {
			if got.SelectedPlayers[i] != id {
				t.Errorf("SelectedPlayers[%d] = %s, want %s (selection order)", i, got.SelectedPlayers[i], id)
			}
			if got.Payments[i].PlayerID != id {
				t.Errorf("Payments[%d].PlayerID = %s, want %s", i, got.Payments[i].PlayerID, id)
			}
		}
		if got.FeeSplit != match.FeeSplit {
			t.Errorf("FeeSplit mismatch: %+v vs %+v", got.FeeSplit, match.FeeSplit)
		}
	})

	t.Run("SetPaymentPaid updates only settlement flags", func(t *testing.T) {
		match := testMatch(ids)
		if err := store.CreateMatch(ctx, match); err != nil {
			t.Fatalf("CreateMatch failed: %v", err)
		}

		if err := store.SetPaymentPaid(ctx, match.ID, "p3", true, "p1"); err != nil {
			t.Fatalf("SetPaymentPaid failed: %v", err)
		}

		got, err := store.GetMatch(ctx, match.ID)
		if err != nil {
			t.Fatalf("GetMatch failed: %v", err)
		}
		payment := got.Payment("p3")
		if payment == nil {
			t.Fatal("payment for p3 missing")
		}
		if !payment.Paid || payment.PaidBy != "p1" {
			t.Errorf("payment = %+v, want paid by p1", payment)
		}
		if payment.Amount != 200 {
			t.Errorf("amount changed to %v, settlement must not touch amounts", payment.Amount)
		}
	})

	t.Run("SetPaymentPaid returns ErrNotFound for unknown line", func(t *testing.T) {
		match := testMatch(ids)
		if err := store.CreateMatch(ctx, match); err != nil {
			t.Fatalf("CreateMatch failed: %v", err)
		}
		err := store.SetPaymentPaid(ctx, match.ID, "ghost", true, "")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListMatches newest first", func(t *testing.T) {
		fresh := newTestStore(t)
		first := testMatch(ids)
		first.CreatedAt = 100
		second := testMatch(ids)
		second.OpponentTeam = "Royals"
		second.CreatedAt = 200
		if err := fresh.CreateMatch(ctx, first); err != nil {
			t.Fatalf("CreateMatch failed: %v", err)
		}
		if err := fresh.CreateMatch(ctx, second); err != nil {
			t.Fatalf("CreateMatch failed: %v", err)
		}

		matches, err := fresh.ListMatches(ctx)
		if err != nil {
			t.Fatalf("ListMatches failed: %v", err)
		}
		if len(matches) != 2 {
			t.Fatalf("got %d matches, want 2", len(matches))
		}
		if matches[0].OpponentTeam != "Royals" {
			t.Errorf("matches[0] = %s, want Royals (newest first)", matches[0].OpponentTeam)
		}
	})

	t.Run("Deleting a player leaves match history intact", func(t *testing.T) {
		player := &models.Player{Name: "Leaver", Category: models.CategoryCore, IsActive: true}
		if err := store.CreatePlayer(ctx, player); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}
		selection := append([]string{player.ID}, ids[:10]...)
		match := testMatch(selection)
		if err := store.CreateMatch(ctx, match); err != nil {
			t.Fatalf("CreateMatch failed: %v", err)
		}
		if err := store.DeletePlayer(ctx, player.ID); err != nil {
			t.Fatalf("DeletePlayer failed: %v", err)
		}

		got, err := store.GetMatch(ctx, match.ID)
		if err != nil {
			t.Fatalf("GetMatch failed: %v", err)
		}
		if got.SelectedPlayers[0] != player.ID {
			t.Error("dangling player id should remain in the match record")
		}
	})
}

func TestExportStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := &models.ExportRecord{
		MatchID:      "m1",
		Filename:     "united77-vs-strikers-2025-06-01.pdf",
		OpponentTeam: "Strikers",
		TotalFees:    2400,
		MatchData:    `{"date":"2025-06-01"}`,
	}
	if err := store.CreateExport(ctx, record); err != nil {
		t.Fatalf("CreateExport failed: %v", err)
	}
	if record.ID == "" {
		t.Error("Expected export ID to be generated")
	}

	second := &models.ExportRecord{MatchID: "m2", Filename: "b.pdf", OpponentTeam: "Royals", TotalFees: 3000, CreatedAt: record.CreatedAt + 10}
	if err := store.CreateExport(ctx, second); err != nil {
		t.Fatalf("CreateExport failed: %v", err)
	}

	records, err := store.ListExports(ctx)
	if err != nil {
		t.Fatalf("ListExports failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].OpponentTeam != "Royals" {
		t.Errorf("records[0] = %s, want Royals (newest first)", records[0].OpponentTeam)
	}
	if records[1].MatchData != `{"date":"2025-06-01"}` {
		t.Errorf("MatchData not preserved: %q", records[1].MatchData)
	}
}
