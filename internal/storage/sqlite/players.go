package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/united77/cricfees/internal/models"
	"github.com/united77/cricfees/internal/storage"
)

// CreatePlayer inserts a new player into the database.
func (s *SQLiteStore) CreatePlayer(ctx context.Context, player *models.Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	if player.CreatedAt == 0 {
		player.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO players (id, name, phone, upi_id, category, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		player.ID, player.Name, player.Phone, player.UpiID, string(player.Category), boolToInt(player.IsActive), player.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// GetPlayer retrieves a player by ID.
func (s *SQLiteStore) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	player, err := s.scanPlayer(s.db.QueryRowContext(ctx,
		"SELECT id, name, phone, upi_id, category, is_active, created_at FROM players WHERE id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// GetPlayerByName retrieves a player by case-insensitive name.
// Returns nil, nil when no player has that name.
func (s *SQLiteStore) GetPlayerByName(ctx context.Context, name string) (*models.Player, error) {
	player, err := s.scanPlayer(s.db.QueryRowContext(ctx,
		"SELECT id, name, phone, upi_id, category, is_active, created_at FROM players WHERE name = ? COLLATE NOCASE",
		name,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by name: %w", err)
	}
	return player, nil
}

// ListPlayers returns all players on the roster.
func (s *SQLiteStore) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, phone, upi_id, category, is_active, created_at FROM players ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		player, err := s.scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

// UpdatePlayer applies a partial update and returns the updated player.
func (s *SQLiteStore) UpdatePlayer(ctx context.Context, id string, update models.PlayerUpdate) (*models.Player, error) {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(player)

	_, err = s.db.ExecContext(ctx,
		"UPDATE players SET name = ?, phone = ?, upi_id = ?, category = ?, is_active = ? WHERE id = ?",
		player.Name, player.Phone, player.UpiID, string(player.Category), boolToInt(player.IsActive), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return player, nil
}

// DeletePlayer removes a player. Match history is left untouched.
func (s *SQLiteStore) DeletePlayer(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("player %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *SQLiteStore) scanPlayer(row rowScanner) (*models.Player, error) {
	player := &models.Player{}
	var category string
	var active int
	err := row.Scan(&player.ID, &player.Name, &player.Phone, &player.UpiID, &category, &active, &player.CreatedAt)
	if err != nil {
		return nil, err
	}
	player.Category = models.Category(category)
	player.IsActive = active != 0
	return player, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
