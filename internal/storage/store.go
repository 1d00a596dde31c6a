// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/united77/cricfees/internal/models"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for roster, match and export persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreatePlayer persists a new player. The player.ID and CreatedAt
	// fields are populated by the store.
	CreatePlayer(ctx context.Context, player *models.Player) error

	// GetPlayer retrieves a player by ID. Returns ErrNotFound if missing.
	GetPlayer(ctx context.Context, id string) (*models.Player, error)

	// GetPlayerByName retrieves a player by case-insensitive name match.
	// Returns nil, nil when no player has that name.
	GetPlayerByName(ctx context.Context, name string) (*models.Player, error)

	// ListPlayers returns all players on the roster.
	ListPlayers(ctx context.Context) ([]models.Player, error)

	// UpdatePlayer applies a partial update. Returns ErrNotFound if missing.
	UpdatePlayer(ctx context.Context, id string, update models.PlayerUpdate) (*models.Player, error)

	// DeletePlayer removes a player from the roster. Historical matches
	// keep their dangling references; nothing cascades.
	DeletePlayer(ctx context.Context, id string) error

	// CreateMatch persists a new match record. The match.ID and CreatedAt
	// fields are populated by the store.
	CreateMatch(ctx context.Context, match *models.Match) error

	// GetMatch retrieves a match by ID. Returns ErrNotFound if missing.
	GetMatch(ctx context.Context, id string) (*models.Match, error)

	// ListMatches returns all matches, newest first.
	ListMatches(ctx context.Context) ([]models.Match, error)

	// SetPaymentPaid updates the settlement flags of one payment line.
	// Amounts are never touched. Returns ErrNotFound when the match or
	// payment line does not exist.
	SetPaymentPaid(ctx context.Context, matchID, playerID string, paid bool, paidBy string) error

	// CreateExport persists a new export history record. The record.ID
	// and CreatedAt fields are populated by the store.
	CreateExport(ctx context.Context, record *models.ExportRecord) error

	// ListExports returns all export records, newest first.
	ListExports(ctx context.Context) ([]models.ExportRecord, error)

	// Close releases any resources held by the store.
	Close() error
}
