// Package service wires the calculator, contact parsing and export rendering
// onto the storage layer. Services own all state mutation; the calculator
// stays pure.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/united77/cricfees/internal/calculator"
	"github.com/united77/cricfees/internal/contacts"
	"github.com/united77/cricfees/internal/models"
	"github.com/united77/cricfees/internal/storage"
)

var (
	// ErrEmptyName rejects players without a display name.
	ErrEmptyName = errors.New("player name is required")

	// ErrInvalidCategory rejects unknown payment categories.
	ErrInvalidCategory = errors.New("invalid player category")
)

// RosterService manages the team roster.
type RosterService struct {
	store storage.Store
}

// NewRosterService creates a new RosterService with the given storage backend.
func NewRosterService(store storage.Store) *RosterService {
	return &RosterService{store: store}
}

// AddPlayer creates a new roster member. New players start active.
func (s *RosterService) AddPlayer(ctx context.Context, name, phone string, category models.Category) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	player := &models.Player{
		Name:     name,
		Phone:    strings.TrimSpace(phone),
		Category: category,
		IsActive: true,
	}
	if err := s.store.CreatePlayer(ctx, player); err != nil {
		slog.Error("AddPlayer failed", "name", name, "error", err)
		return nil, err
	}

	slog.Info("Player added", "player_id", player.ID, "name", player.Name, "category", player.Category)
	return player, nil
}

// ListPlayers returns the roster in display order: core before self_paid
// before unpaid, ties by name.
func (s *RosterService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.OrderPlayers(players), nil
}

// UpdatePlayer applies a partial update to a player.
func (s *RosterService) UpdatePlayer(ctx context.Context, id string, update models.PlayerUpdate) (*models.Player, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, ErrEmptyName
	}
	if update.Category != nil && !update.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, *update.Category)
	}

	player, err := s.store.UpdatePlayer(ctx, id, update)
	if err != nil {
		slog.Error("UpdatePlayer failed", "player_id", id, "error", err)
		return nil, err
	}
	slog.Info("Player updated", "player_id", id)
	return player, nil
}

// DeletePlayer removes a player from the roster. Historical match records
// keep their reference to the removed player.
func (s *RosterService) DeletePlayer(ctx context.Context, id string) error {
	if err := s.store.DeletePlayer(ctx, id); err != nil {
		slog.Error("DeletePlayer failed", "player_id", id, "error", err)
		return err
	}
	slog.Info("Player deleted", "player_id", id)
	return nil
}

// ImportContacts parses pasted contact text, drops candidates already on
// the roster (by case-insensitive name or normalized phone) and creates the
// rest with the given category.
func (s *RosterService) ImportContacts(ctx context.Context, text string, category models.Category) ([]models.Player, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	roster, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	parsed := contacts.Parse(text)
	candidates := contacts.Dedupe(parsed, roster)
	created := make([]models.Player, 0, len(candidates))
	for _, c := range candidates {
		player := &models.Player{
			Name:     c.Name,
			Phone:    c.Phone,
			Category: category,
			IsActive: true,
		}
		if err := s.store.CreatePlayer(ctx, player); err != nil {
			slog.Error("ImportContacts: create failed", "name", c.Name, "error", err)
			return nil, err
		}
		created = append(created, *player)
	}

	slog.Info("Contacts imported", "parsed", len(parsed), "created", len(created))
	return created, nil
}
