package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/united77/cricfees/internal/calculator"
	"github.com/united77/cricfees/internal/export"
	"github.com/united77/cricfees/internal/metrics"
	"github.com/united77/cricfees/internal/models"
	"github.com/united77/cricfees/internal/storage"
)

// ExportService renders match summaries and keeps the export history.
type ExportService struct {
	store    storage.Store
	renderer *export.Renderer
}

// NewExportService creates a new ExportService.
func NewExportService(store storage.Store, renderer *export.Renderer) *ExportService {
	return &ExportService{store: store, renderer: renderer}
}

// PlayerLink is a per-player share action for a rendered summary.
type PlayerLink struct {
	PlayerID     string
	Name         string
	AmountDue    float64
	Message      string
	WhatsAppLink string
}

// SummaryResult bundles everything the UI needs to show and share a split.
type SummaryResult struct {
	Document    string
	Filename    string
	PayerReturn float64
	Links       []PlayerLink
}

// Summary renders the shareable summary of a match. collectorID may be
// empty; when set it must be a core member of the match and the result
// carries the collector's refund.
func (s *ExportService) Summary(ctx context.Context, matchID, collectorID string) (*SummaryResult, error) {
	match, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, match, collectorID)
}

func (s *ExportService) summarize(ctx context.Context, match *models.Match, collectorID string) (*SummaryResult, error) {
	roster, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	result := &SummaryResult{}
	if collectorID != "" {
		payerReturn, err := calculator.CollectorReturn(match, collectorID, roster)
		if err != nil {
			return nil, err
		}
		result.PayerReturn = payerReturn
	}

	result.Document = s.renderer.Summary(match, roster, collectorID)
	result.Filename = s.renderer.Filename(match)

	byID := make(map[string]models.Player, len(roster))
	var collector *models.Player
	for _, p := range roster {
		byID[p.ID] = p
		if p.ID == collectorID {
			c := p
			collector = &c
		}
	}

	for _, payment := range match.Payments {
		player, ok := byID[payment.PlayerID]
		if !ok {
			// Deleted from the roster since; nothing to message.
			continue
		}
		message := s.renderer.PlayerMessage(match, player, collector)
		link := PlayerLink{
			PlayerID:  player.ID,
			Name:      player.Name,
			AmountDue: calculator.DueAmount(payment, player.Category),
			Message:   message,
		}
		if player.Phone != "" {
			link.WhatsAppLink = export.WhatsAppLink(player.Phone, message)
		}
		result.Links = append(result.Links, link)
	}
	return result, nil
}

// matchSnapshot is the immutable JSON blob stored with an export record.
// Keys match the wire shape so old records stay readable by the UI.
type matchSnapshot struct {
	Date            string            `json:"date"`
	SelectedPlayers []string          `json:"selectedPlayers"`
	FeeSplit        feeSplitSnapshot  `json:"feeSplit"`
	Payments        []paymentSnapshot `json:"payments"`
}

type feeSplitSnapshot struct {
	PerPlayerAmount float64 `json:"perPlayerAmount"`
	CoreShareExtra  float64 `json:"coreShareExtra"`
	TotalPlayers    int     `json:"totalPlayers"`
	CorePlayers     int     `json:"corePlayers"`
	SelfPaidPlayers int     `json:"selfPaidPlayers"`
	UnpaidPlayers   int     `json:"unpaidPlayers"`
}

type paymentSnapshot struct {
	PlayerID string  `json:"playerId"`
	Amount   float64 `json:"amount"`
	Paid     bool    `json:"paid"`
	PaidBy   string  `json:"paidBy,omitempty"`
}

func snapshotMatch(match *models.Match) matchSnapshot {
	payments := make([]paymentSnapshot, 0, len(match.Payments))
	for _, p := range match.Payments {
		payments = append(payments, paymentSnapshot{
			PlayerID: p.PlayerID,
			Amount:   p.Amount,
			Paid:     p.Paid,
			PaidBy:   p.PaidBy,
		})
	}
	return matchSnapshot{
		Date:            match.Date,
		SelectedPlayers: match.SelectedPlayers,
		FeeSplit: feeSplitSnapshot{
			PerPlayerAmount: match.FeeSplit.PerPlayerAmount,
			CoreShareExtra:  match.FeeSplit.CoreShareExtra,
			TotalPlayers:    match.FeeSplit.TotalPlayers,
			CorePlayers:     match.FeeSplit.CorePlayers,
			SelfPaidPlayers: match.FeeSplit.SelfPaidPlayers,
			UnpaidPlayers:   match.FeeSplit.UnpaidPlayers,
		},
		Payments: payments,
	}
}

// Export renders the summary and appends an immutable record to the export
// history. Failure to write the history record is logged and swallowed:
// the document is still returned (the record is a best-effort side effect).
func (s *ExportService) Export(ctx context.Context, matchID, collectorID string) (*models.ExportRecord, *SummaryResult, error) {
	match, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.summarize(ctx, match, collectorID)
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := json.Marshal(snapshotMatch(match))
	if err != nil {
		return nil, nil, err
	}

	record := &models.ExportRecord{
		MatchID:      match.ID,
		Filename:     result.Filename,
		OpponentTeam: match.OpponentTeam,
		TotalFees:    match.TotalFees,
		MatchData:    string(snapshot),
	}
	if err := s.store.CreateExport(ctx, record); err != nil {
		slog.Warn("Export history record failed, document still returned", "match_id", matchID, "error", err)
		record = nil
	}

	metrics.ExportsGenerated.Inc()
	slog.Info("Match exported", "match_id", matchID, "filename", result.Filename)
	return record, result, nil
}

// History returns the export history, newest first.
func (s *ExportService) History(ctx context.Context) ([]models.ExportRecord, error) {
	return s.store.ListExports(ctx)
}
