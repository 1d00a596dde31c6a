package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/united77/cricfees/internal/calculator"
	"github.com/united77/cricfees/internal/models"
	"github.com/united77/cricfees/internal/service"
	"github.com/united77/cricfees/internal/storage"
)

// playerJSON is the wire form of a roster member.
type playerJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	UpiID     string `json:"upiId,omitempty"`
	Category  string `json:"category"`
	IsActive  bool   `json:"isActive"`
	CreatedAt int64  `json:"createdAt"`
}

func toPlayerJSON(p models.Player) playerJSON {
	return playerJSON{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		UpiID:     p.UpiID,
		Category:  string(p.Category),
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}

// matchJSON is the wire form of a match with its payment ledger.
type matchJSON struct {
	ID              string        `json:"id"`
	OpponentTeam    string        `json:"opponentTeam"`
	TotalFees       float64       `json:"totalFees"`
	Date            string        `json:"date"`
	SelectedPlayers []string      `json:"selectedPlayers"`
	FeeSplit        feeSplitJSON  `json:"feeSplit"`
	Payments        []paymentJSON `json:"payments"`
	CreatedAt       int64         `json:"createdAt"`
}

type feeSplitJSON struct {
	PerPlayerAmount float64 `json:"perPlayerAmount"`
	CoreShareExtra  float64 `json:"coreShareExtra"`
	TotalPlayers    int     `json:"totalPlayers"`
	CorePlayers     int     `json:"corePlayers"`
	SelfPaidPlayers int     `json:"selfPaidPlayers"`
	UnpaidPlayers   int     `json:"unpaidPlayers"`
}

type paymentJSON struct {
	PlayerID string  `json:"playerId"`
	Amount   float64 `json:"amount"`
	Paid     bool    `json:"paid"`
	PaidBy   string  `json:"paidBy,omitempty"`
}

func toMatchJSON(m *models.Match) matchJSON {
	payments := make([]paymentJSON, 0, len(m.Payments))
	for _, p := range m.Payments {
		payments = append(payments, paymentJSON{
			PlayerID: p.PlayerID,
			Amount:   p.Amount,
			Paid:     p.Paid,
			PaidBy:   p.PaidBy,
		})
	}
	return matchJSON{
		ID:              m.ID,
		OpponentTeam:    m.OpponentTeam,
		TotalFees:       m.TotalFees,
		Date:            m.Date,
		SelectedPlayers: m.SelectedPlayers,
		FeeSplit: feeSplitJSON{
			PerPlayerAmount: m.FeeSplit.PerPlayerAmount,
			CoreShareExtra:  m.FeeSplit.CoreShareExtra,
			TotalPlayers:    m.FeeSplit.TotalPlayers,
			CorePlayers:     m.FeeSplit.CorePlayers,
			SelfPaidPlayers: m.FeeSplit.SelfPaidPlayers,
			UnpaidPlayers:   m.FeeSplit.UnpaidPlayers,
		},
		Payments:  payments,
		CreatedAt: m.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, calculator.ErrInvalidAmount),
		errors.Is(err, calculator.ErrNoPlayersSelected),
		errors.Is(err, calculator.ErrInvalidTeamSize),
		errors.Is(err, calculator.ErrInvalidCollector),
		errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrEmptyOpponent):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.roster.ListPlayers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]playerJSON, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayerJSON(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddPlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		UpiID    string `json:"upiId"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	player, err := s.roster.AddPlayer(r.Context(), req.Name, req.Phone, models.Category(req.Category))
	if err != nil {
		writeError(w, err)
		return
	}
	if req.UpiID != "" {
		player, err = s.roster.UpdatePlayer(r.Context(), player.ID, models.PlayerUpdate{UpiID: &req.UpiID})
		if err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, toPlayerJSON(*player))
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		UpiID    *string `json:"upiId"`
		Category *string `json:"category"`
		IsActive *bool   `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	update := models.PlayerUpdate{
		Name:     req.Name,
		Phone:    req.Phone,
		UpiID:    req.UpiID,
		IsActive: req.IsActive,
	}
	if req.Category != nil {
		category := models.Category(*req.Category)
		update.Category = &category
	}

	player, err := s.roster.UpdatePlayer(r.Context(), mux.Vars(r)["id"], update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlayerJSON(*player))
}

func (s *Server) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := s.roster.DeletePlayer(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleImportContacts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	category := models.Category(req.Category)
	if req.Category == "" {
		category = models.CategorySelfPaid
	}

	added, err := s.roster.ImportContacts(r.Context(), req.Text, category)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]playerJSON, 0, len(added))
	for _, p := range added {
		out = append(out, toPlayerJSON(p))
	}
	writeJSON(w, http.StatusCreated, map[string]any{"added": out, "count": len(out)})
}

func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.matches.ListMatches(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]matchJSON, 0, len(matches))
	for i := range matches {
		out = append(out, toMatchJSON(&matches[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OpponentTeam    string      `json:"opponentTeam"`
		TotalFees       json.Number `json:"totalFees"`
		Date            string      `json:"date"`
		SelectedPlayers []string    `json:"selectedPlayers"`
	}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	totalFees, err := strconv.ParseFloat(req.TotalFees.String(), 64)
	if err != nil {
		writeError(w, calculator.ErrInvalidAmount)
		return
	}

	match, err := s.matches.CreateMatch(r.Context(), req.OpponentTeam, totalFees, req.Date, req.SelectedPlayers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMatchJSON(match))
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	match, err := s.matches.GetMatch(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchJSON(match))
}

func (s *Server) handleSetPaymentPaid(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Paid   bool   `json:"paid"`
		PaidBy string `json:"paidBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	vars := mux.Vars(r)
	if err := s.matches.MarkPaymentPaid(r.Context(), vars["id"], vars["playerId"], req.Paid, req.PaidBy); err != nil {
		writeError(w, err)
		return
	}

	match, err := s.matches.GetMatch(r.Context(), vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchJSON(match))
}

type playerLinkJSON struct {
	PlayerID     string  `json:"playerId"`
	Name         string  `json:"name"`
	AmountDue    float64 `json:"amountDue"`
	Message      string  `json:"message"`
	WhatsAppLink string  `json:"whatsappLink,omitempty"`
}

type summaryJSON struct {
	Document    string           `json:"document"`
	Filename    string           `json:"filename"`
	PayerReturn float64          `json:"payerReturn"`
	Links       []playerLinkJSON `json:"links"`
}

func toSummaryJSON(result *service.SummaryResult) summaryJSON {
	links := make([]playerLinkJSON, 0, len(result.Links))
	for _, l := range result.Links {
		links = append(links, playerLinkJSON{
			PlayerID:     l.PlayerID,
			Name:         l.Name,
			AmountDue:    l.AmountDue,
			Message:      l.Message,
			WhatsAppLink: l.WhatsAppLink,
		})
	}
	return summaryJSON{
		Document:    result.Document,
		Filename:    result.Filename,
		PayerReturn: result.PayerReturn,
		Links:       links,
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	result, err := s.exports.Summary(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get("collector"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryJSON(result))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Collector string `json:"collector"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
	}

	record, result, err := s.exports.Export(r.Context(), mux.Vars(r)["id"], req.Collector)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]any{"summary": toSummaryJSON(result)}
	if record != nil {
		resp["record"] = toExportJSON(*record)
	}
	writeJSON(w, http.StatusCreated, resp)
}

type exportJSON struct {
	ID           string          `json:"id"`
	MatchID      string          `json:"matchId"`
	Filename     string          `json:"filename"`
	OpponentTeam string          `json:"opponentTeam"`
	TotalFees    float64         `json:"totalFees"`
	MatchData    json.RawMessage `json:"matchData"`
	CreatedAt    int64           `json:"createdAt"`
}

func toExportJSON(rec models.ExportRecord) exportJSON {
	return exportJSON{
		ID:           rec.ID,
		MatchID:      rec.MatchID,
		Filename:     rec.Filename,
		OpponentTeam: rec.OpponentTeam,
		TotalFees:    rec.TotalFees,
		MatchData:    json.RawMessage(rec.MatchData),
		CreatedAt:    rec.CreatedAt,
	}
}

func (s *Server) handleListExports(w http.ResponseWriter, r *http.Request) {
	records, err := s.exports.History(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]exportJSON, 0, len(records))
	for _, rec := range records {
		out = append(out, toExportJSON(rec))
	}
	writeJSON(w, http.StatusOK, out)
}
