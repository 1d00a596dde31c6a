package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/united77/cricfees/internal/models"
)

func collectorFixture(t *testing.T) (*models.Match, []models.Player) {
	t.Helper()
	roster, ids := makeRoster(4, 4, 3)
	split, payments, err := Split(2400, ids, roster)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	return &models.Match{
		ID:              "m1",
		OpponentTeam:    "Strikers",
		TotalFees:       2400,
		Date:            "2025-06-01",
		SelectedPlayers: ids,
		FeeSplit:        split,
		Payments:        payments,
	}, roster
}

func TestCollectorReturn(t *testing.T) {
	match, roster := collectorFixture(t)

	got, err := CollectorReturn(match, "core-0", roster)
	if err != nil {
		t.Fatalf("CollectorReturn() error = %v", err)
	}
	want := 2400 - match.Payment("core-0").Amount
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CollectorReturn = %v, want %v", got, want)
	}
}

func TestCollectorReturnDoesNotMutatePayments(t *testing.T) {
	match, roster := collectorFixture(t)
	before := make([]models.Payment, len(match.Payments))
	copy(before, match.Payments)

	if _, err := CollectorReturn(match, "core-1", roster); err != nil {
		t.Fatalf("CollectorReturn() error = %v", err)
	}
	// Switching collector is a pure projection as well.
	if _, err := CollectorReturn(match, "core-2", roster); err != nil {
		t.Fatalf("CollectorReturn() error = %v", err)
	}

	for i := range before {
		if match.Payments[i] != before[i] {
			t.Errorf("payments[%d] changed: %+v vs %+v", i, match.Payments[i], before[i])
		}
	}
}

func TestCollectorReturnRejectsNonCore(t *testing.T) {
	match, roster := collectorFixture(t)
	if _, err := CollectorReturn(match, "self-0", roster); !errors.Is(err, ErrInvalidCollector) {
		t.Errorf("self_paid collector: error = %v, want ErrInvalidCollector", err)
	}
	if _, err := CollectorReturn(match, "ghost", roster); !errors.Is(err, ErrInvalidCollector) {
		t.Errorf("player outside the match: error = %v, want ErrInvalidCollector", err)
	}
}
