package models

// Match records one match's fee split. Everything except the settlement
// flags on Payments is immutable after creation.
type Match struct {
	// ID is the unique identifier for the match (UUID format).
	ID string

	// OpponentTeam is the name of the opposing team. Never empty.
	OpponentTeam string

	// TotalFees is the full match fee to be split. Always > 0.
	TotalFees float64

	// Date is the calendar date of the match as an ISO date string
	// (YYYY-MM-DD).
	Date string

	// SelectedPlayers holds the IDs of the players who took part, in
	// selection order. Its size is 11 or 12 at creation time.
	SelectedPlayers []string

	// FeeSplit holds the aggregate numbers derived at creation. Never
	// recomputed, even if the roster changes later.
	FeeSplit FeeSplit

	// Payments is the ledger, one entry per selected player in the same
	// order as SelectedPlayers.
	Payments []Payment

	// CreatedAt is the Unix timestamp when the match was recorded.
	CreatedAt int64
}

// FeeSplit is the aggregate result of a fee-split calculation.
type FeeSplit struct {
	// PerPlayerAmount is the even base share: TotalFees / player count.
	PerPlayerAmount float64

	// CoreShareExtra is the additional amount each core member pays to
	// cover the unpaid players. Zero when there are no core members.
	CoreShareExtra float64

	// TotalPlayers is the number of selected players.
	TotalPlayers int

	// CorePlayers, SelfPaidPlayers and UnpaidPlayers are the per-category
	// counts among the selected players.
	CorePlayers     int
	SelfPaidPlayers int
	UnpaidPlayers   int
}

// Payment is one player's line in a match's payment ledger.
//
// Amount is the nominal share and is fixed at creation. For unpaid players
// it still holds the per-player share for bookkeeping; display and export
// always report an unpaid player's due amount as zero.
type Payment struct {
	// PlayerID references the player this line belongs to. The player may
	// later be deleted from the roster, leaving a dangling reference.
	PlayerID string

	// Amount is the nominal amount owed. Immutable after creation.
	Amount float64

	// Paid records whether this line has been settled.
	Paid bool

	// PaidBy is the ID of the player responsible for physically paying this
	// line. Defaults to the player's own ID; empty for unpaid players.
	PaidBy string
}

// Payment returns the ledger entry for the given player, or nil if the
// player was not selected for this match.
func (m *Match) Payment(playerID string) *Payment {
	for i := range m.Payments {
		if m.Payments[i].PlayerID == playerID {
			return &m.Payments[i]
		}
	}
	return nil
}
