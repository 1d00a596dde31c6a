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

// CreateMatch persists a match with its selected players and payment ledger.
func (s *SQLiteStore) CreateMatch(ctx context.Context, match *models.Match) error {
	if match.ID == "" {
		match.ID = uuid.New().String()
	}
	if match.CreatedAt == 0 {
		match.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO matches (id, opponent_team, total_fees, match_date,
			per_player_amount, core_share_extra, total_players,
			core_players, self_paid_players, unpaid_players, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		match.ID, match.OpponentTeam, match.TotalFees, match.Date,
		match.FeeSplit.PerPlayerAmount, match.FeeSplit.CoreShareExtra, match.FeeSplit.TotalPlayers,
		match.FeeSplit.CorePlayers, match.FeeSplit.SelfPaidPlayers, match.FeeSplit.UnpaidPlayers, match.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}

	for i, playerID := range match.SelectedPlayers {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO match_players (match_id, position, player_id) VALUES (?, ?, ?)",
			match.ID, i, playerID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert match player: %w", err)
		}
	}

	for _, payment := range match.Payments {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO payments (match_id, player_id, amount, paid, paid_by) VALUES (?, ?, ?, ?, ?)",
			match.ID, payment.PlayerID, payment.Amount, boolToInt(payment.Paid), payment.PaidBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetMatch retrieves a match by ID, including its selection and ledger.
func (s *SQLiteStore) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	match := &models.Match{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, opponent_team, total_fees, match_date,
			per_player_amount, core_share_extra, total_players,
			core_players, self_paid_players, unpaid_players, created_at
		 FROM matches WHERE id = ?`,
		id,
	).Scan(&match.ID, &match.OpponentTeam, &match.TotalFees, &match.Date,
		&match.FeeSplit.PerPlayerAmount, &match.FeeSplit.CoreShareExtra, &match.FeeSplit.TotalPlayers,
		&match.FeeSplit.CorePlayers, &match.FeeSplit.SelfPaidPlayers, &match.FeeSplit.UnpaidPlayers, &match.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("match %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if err := s.loadMatchDetails(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// ListMatches returns all matches, newest first.
func (s *SQLiteStore) ListMatches(ctx context.Context) ([]models.Match, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, opponent_team, total_fees, match_date,
			per_player_amount, core_share_extra, total_players,
			core_players, self_paid_players, unpaid_players, created_at
		 FROM matches ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		match := models.Match{}
		err := rows.Scan(&match.ID, &match.OpponentTeam, &match.TotalFees, &match.Date,
			&match.FeeSplit.PerPlayerAmount, &match.FeeSplit.CoreShareExtra, &match.FeeSplit.TotalPlayers,
			&match.FeeSplit.CorePlayers, &match.FeeSplit.SelfPaidPlayers, &match.FeeSplit.UnpaidPlayers, &match.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	for i := range matches {
		if err := s.loadMatchDetails(ctx, &matches[i]); err != nil {
			return nil, err
		}
	}
	return matches, nil
}

// SetPaymentPaid flips the settlement flags of one ledger line.
func (s *SQLiteStore) SetPaymentPaid(ctx context.Context, matchID, playerID string, paid bool, paidBy string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE payments SET paid = ?, paid_by = ? WHERE match_id = ? AND player_id = ?",
		boolToInt(paid), paidBy, matchID, playerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("payment %s/%s: %w", matchID, playerID, storage.ErrNotFound)
	}
	return nil
}

// loadMatchDetails fills SelectedPlayers (in selection order) and Payments
// (aligned with the selection) for a scanned match row.
func (s *SQLiteStore) loadMatchDetails(ctx context.Context, match *models.Match) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT player_id FROM match_players WHERE match_id = ? ORDER BY position",
		match.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get match players: %w", err)
	}
	defer rows.Close()

	match.SelectedPlayers = nil
	for rows.Next() {
		var playerID string
		if err := rows.Scan(&playerID); err != nil {
			return fmt.Errorf("failed to scan match player: %w", err)
		}
		match.SelectedPlayers = append(match.SelectedPlayers, playerID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate match players: %w", err)
	}

	payRows, err := s.db.QueryContext(ctx,
		"SELECT player_id, amount, paid, paid_by FROM payments WHERE match_id = ?",
		match.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get payments: %w", err)
	}
	defer payRows.Close()

	byPlayer := make(map[string]models.Payment, len(match.SelectedPlayers))
	for payRows.Next() {
		var payment models.Payment
		var paid int
		if err := payRows.Scan(&payment.PlayerID, &payment.Amount, &paid, &payment.PaidBy); err != nil {
			return fmt.Errorf("failed to scan payment: %w", err)
		}
		payment.Paid = paid != 0
		byPlayer[payment.PlayerID] = payment
	}
	if err := payRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate payments: %w", err)
	}

	match.Payments = make([]models.Payment, 0, len(match.SelectedPlayers))
	for _, playerID := range match.SelectedPlayers {
		if payment, ok := byPlayer[playerID]; ok {
			match.Payments = append(match.Payments, payment)
		}
	}
	return nil
}
