package service

import (
	"context"
	"errors"
	"testing"

	"github.com/united77/cricfees/internal/models"
)

func TestAddPlayerValidation(t *testing.T) {
	roster := NewRosterService(setupStore(t))
	ctx := context.Background()

	if _, err := roster.AddPlayer(ctx, "   ", "", models.CategoryCore); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name: err = %v, want ErrEmptyName", err)
	}
	if _, err := roster.AddPlayer(ctx, "Ravi", "", models.Category("vip")); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("bad category: err = %v, want ErrInvalidCategory", err)
	}

	player, err := roster.AddPlayer(ctx, "  Ravi  ", "98765", models.CategoryCore)
	if err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}
	if player.Name != "Ravi" {
		t.Errorf("name not trimmed: %q", player.Name)
	}
	if !player.IsActive {
		t.Error("new players should start active")
	}
}

func TestListPlayersOrdering(t *testing.T) {
	roster := NewRosterService(setupStore(t))
	ctx := context.Background()

	// Insert out of display order.
	for _, p := range []struct {
		name     string
		category models.Category
	}{
		{"Zara", models.CategoryUnpaid},
		{"Arun", models.CategorySelfPaid},
		{"Mira", models.CategoryCore},
		{"bala", models.CategoryCore},
	} {
		if _, err := roster.AddPlayer(ctx, p.name, "", p.category); err != nil {
			t.Fatalf("AddPlayer failed: %v", err)
		}
	}

	players, err := roster.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}

	want := []string{"bala", "Mira", "Arun", "Zara"}
	if len(players) != len(want) {
		t.Fatalf("got %d players, want %d", len(players), len(want))
	}
	for i, name := range want {
		if players[i].Name != name {
			t.Errorf("players[%d] = %s, want %s", i, players[i].Name, name)
		}
	}
}

func TestUpdatePlayerCategory(t *testing.T) {
	roster := NewRosterService(setupStore(t))
	ctx := context.Background()

	player, err := roster.AddPlayer(ctx, "Ravi", "", models.CategoryUnpaid)
	if err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}

	bad := models.Category("sponsor")
	if _, err := roster.UpdatePlayer(ctx, player.ID, models.PlayerUpdate{Category: &bad}); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("err = %v, want ErrInvalidCategory", err)
	}

	core := models.CategoryCore
	inactive := false
	updated, err := roster.UpdatePlayer(ctx, player.ID, models.PlayerUpdate{Category: &core, IsActive: &inactive})
	if err != nil {
		t.Fatalf("UpdatePlayer failed: %v", err)
	}
	if updated.Category != models.CategoryCore || updated.IsActive {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestImportContacts(t *testing.T) {
	roster := NewRosterService(setupStore(t))
	ctx := context.Background()

	if _, err := roster.AddPlayer(ctx, "Ravi Kumar", "+91 98765 43210", models.CategoryCore); err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}

	created, err := roster.ImportContacts(ctx,
		"ravi kumar, 000\nSuresh, 9876501234\nKiran",
		models.CategorySelfPaid)
	if err != nil {
		t.Fatalf("ImportContacts failed: %v", err)
	}

	if len(created) != 2 {
		t.Fatalf("created %d players, want 2 (Ravi deduplicated)", len(created))
	}
	if created[0].Name != "Suresh" || created[0].Phone != "9876501234" {
		t.Errorf("created[0] = %+v", created[0])
	}
	if created[1].Name != "Kiran" {
		t.Errorf("created[1] = %+v", created[1])
	}
	for _, p := range created {
		if p.Category != models.CategorySelfPaid || !p.IsActive {
			t.Errorf("imported player defaults wrong: %+v", p)
		}
		if p.ID == "" {
			t.Error("imported player missing id")
		}
	}
}
