// Package calculator implements the fee-split computation: an even base
// split of a match fee across the selected players, with the unpaid
// players' shares redistributed equally among core members.
package calculator

import (
	"fmt"
	"math"

	"github.com/united77/cricfees/internal/models"
)

const (
	// MinTeamSize and MaxTeamSize bound a valid match selection.
	MinTeamSize = 11
	MaxTeamSize = 12
)

// Split computes the fee split for a match.
//
// totalFees must be a finite number greater than zero. selectedIDs must name
// 11 or 12 players, each resolvable in roster. The returned payments are in
// selection order, one per selected player, with nominal amounts: unpaid
// players keep their per-player share on the ledger even though display and
// export report their due amount as zero.
//
// Split is pure: identical inputs yield identical results, and no rounding
// is applied here. Rounding to two decimals happens only at presentation
// time, so displayed per-player amounts may drift from the displayed total
// by a cent or two; that is accepted.
func Split(totalFees float64, selectedIDs []string, roster []models.Player) (models.FeeSplit, []models.Payment, error) {
	if math.IsNaN(totalFees) || math.IsInf(totalFees, 0) || totalFees <= 0 {
		return models.FeeSplit{}, nil, ErrInvalidAmount
	}
	if len(selectedIDs) == 0 {
		return models.FeeSplit{}, nil, ErrNoPlayersSelected
	}
	if len(selectedIDs) < MinTeamSize || len(selectedIDs) > MaxTeamSize {
		return models.FeeSplit{}, nil, fmt.Errorf("%w: got %d players, need %d-%d",
			ErrInvalidTeamSize, len(selectedIDs), MinTeamSize, MaxTeamSize)
	}

	byID := make(map[string]models.Player, len(roster))
	for _, p := range roster {
		byID[p.ID] = p
	}

	selected := make([]models.Player, 0, len(selectedIDs))
	var core, selfPaid, unpaid int
	for _, id := range selectedIDs {
		p, ok := byID[id]
		if !ok {
			return models.FeeSplit{}, nil, fmt.Errorf("unknown player id %q", id)
		}
		switch p.Category {
		case models.CategoryCore:
			core++
		case models.CategorySelfPaid:
			selfPaid++
		case models.CategoryUnpaid:
			unpaid++
		default:
			return models.FeeSplit{}, nil, fmt.Errorf("player %q has unknown category %q", p.Name, p.Category)
		}
		selected = append(selected, p)
	}

	perPlayerAmount := totalFees / float64(len(selectedIDs))
	unpaidTotal := float64(unpaid) * perPlayerAmount

	// The unpaid total is redistributed evenly across core members only.
	// With no core members the shortfall is simply not collected.
	coreShareExtra := 0.0
	if core > 0 {
		coreShareExtra = unpaidTotal / float64(core)
	}

	payments := make([]models.Payment, len(selected))
	for i, p := range selected {
		amount := perPlayerAmount
		paidBy := p.ID
		switch p.Category {
		case models.CategoryCore:
			amount += coreShareExtra
		case models.CategorySelfPaid:
			// Exactly the even share.
		case models.CategoryUnpaid:
			// Nominal share stays on the ledger; nobody is responsible
			// for paying this line until a collector settles it.
			paidBy = ""
		}
		payments[i] = models.Payment{
			PlayerID: p.ID,
			Amount:   amount,
			Paid:     false,
			PaidBy:   paidBy,
		}
	}

	split := models.FeeSplit{
		PerPlayerAmount: perPlayerAmount,
		CoreShareExtra:  coreShareExtra,
		TotalPlayers:    len(selected),
		CorePlayers:     core,
		SelfPaidPlayers: selfPaid,
		UnpaidPlayers:   unpaid,
	}
	return split, payments, nil
}

// DueAmount is the presentation projection of a payment: unpaid players are
// always shown as owing zero ("covered by core"), everyone else owes the
// nominal ledger amount.
func DueAmount(p models.Payment, category models.Category) float64 {
	if category == models.CategoryUnpaid {
		return 0
	}
	return p.Amount
}
