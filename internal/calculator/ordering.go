package calculator

import (
	"sort"
	"strings"

	"github.com/united77/cricfees/internal/models"
)

// OrderPlayers returns the players in the single display ordering used
// everywhere players are listed: core before self_paid before unpaid, ties
// broken by case-insensitive name comparison. The input is not modified.
func OrderPlayers(players []models.Player) []models.Player {
	ordered := make([]models.Player, len(players))
	copy(ordered, players)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Category.Rank() != b.Category.Rank() {
			return a.Category.Rank() < b.Category.Rank()
		}
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		// Bytewise tiebreak keeps the order deterministic when names
		// differ only in case.
		return a.Name < b.Name
	})
	return ordered
}
