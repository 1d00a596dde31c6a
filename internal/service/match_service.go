package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/united77/cricfees/internal/calculator"
	"github.com/united77/cricfees/internal/metrics"
	"github.com/united77/cricfees/internal/models"
	"github.com/united77/cricfees/internal/storage"
)

// ErrEmptyOpponent rejects matches without an opponent team name.
var ErrEmptyOpponent = errors.New("opponent team is required")

// MatchService creates match records and tracks payment settlement.
type MatchService struct {
	store storage.Store
}

// NewMatchService creates a new MatchService with the given storage backend.
func NewMatchService(store storage.Store) *MatchService {
	return &MatchService{store: store}
}

// CreateMatch validates the input, computes the fee split and persists the
// resulting match record. The split is computed exactly once here; it is
// never recomputed, even if the roster changes afterwards.
func (s *MatchService) CreateMatch(ctx context.Context, opponentTeam string, totalFees float64, date string, selectedIDs []string) (*models.Match, error) {
	opponentTeam = strings.TrimSpace(opponentTeam)
	if opponentTeam == "" {
		return nil, ErrEmptyOpponent
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	roster, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	split, payments, err := calculator.Split(totalFees, selectedIDs, roster)
	if err != nil {
		metrics.SplitRejections.WithLabelValues(rejectionReason(err)).Inc()
		slog.Warn("CreateMatch rejected", "opponent", opponentTeam, "players", len(selectedIDs), "error", err)
		return nil, err
	}

	match := &models.Match{
		OpponentTeam:    opponentTeam,
		TotalFees:       totalFees,
		Date:            date,
		SelectedPlayers: selectedIDs,
		FeeSplit:        split,
		Payments:        payments,
	}
	if err := s.store.CreateMatch(ctx, match); err != nil {
		slog.Error("CreateMatch failed", "opponent", opponentTeam, "error", err)
		return nil, err
	}

	metrics.SplitsComputed.Inc()
	slog.Info("Match created",
		"match_id", match.ID,
		"opponent", match.OpponentTeam,
		"total_fees", match.TotalFees,
		"players", split.TotalPlayers,
		"per_player", split.PerPlayerAmount,
		"core_extra", split.CoreShareExtra,
	)
	return match, nil
}

// GetMatch retrieves a match by ID.
func (s *MatchService) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	return s.store.GetMatch(ctx, id)
}

// ListMatches returns all matches, newest first.
func (s *MatchService) ListMatches(ctx context.Context) ([]models.Match, error) {
	return s.store.ListMatches(ctx)
}

// MarkPaymentPaid records settlement of one ledger line. Only the Paid and
// PaidBy flags change; the amount is immutable.
func (s *MatchService) MarkPaymentPaid(ctx context.Context, matchID, playerID string, paid bool, paidBy string) error {
	if err := s.store.SetPaymentPaid(ctx, matchID, playerID, paid, paidBy); err != nil {
		slog.Error("MarkPaymentPaid failed", "match_id", matchID, "player_id", playerID, "error", err)
		return err
	}
	slog.Info("Payment settled", "match_id", matchID, "player_id", playerID, "paid", paid, "paid_by", paidBy)
	return nil
}

// CollectorReturn computes the refund a collector receives for a match.
// A projection only; nothing is stored.
func (s *MatchService) CollectorReturn(ctx context.Context, matchID, collectorID string) (float64, error) {
	match, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return 0, err
	}
	roster, err := s.store.ListPlayers(ctx)
	if err != nil {
		return 0, err
	}
	return calculator.CollectorReturn(match, collectorID, roster)
}

// rejectionReason maps calculator validation errors to metric labels.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, calculator.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, calculator.ErrNoPlayersSelected):
		return "no_players"
	case errors.Is(err, calculator.ErrInvalidTeamSize):
		return "team_size"
	}
	return "other"
}
