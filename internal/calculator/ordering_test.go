package calculator

import (
	"testing"

	"github.com/united77/cricfees/internal/models"
)

func TestOrderPlayers(t *testing.T) {
	players := []models.Player{
		{ID: "1", Name: "zane", Category: models.CategoryCore},
		{ID: "2", Name: "Amit", Category: models.CategoryUnpaid},
		{ID: "3", Name: "brian", Category: models.CategorySelfPaid},
		{ID: "4", Name: "Arun", Category: models.CategoryCore},
		{ID: "5", Name: "amar", Category: models.CategorySelfPaid},
	}

	got := OrderPlayers(players)

	wantNames := []string{"Arun", "zane", "amar", "brian", "Amit"}
	for i, name := range wantNames {
		if got[i].Name != name {
			t.Errorf("ordered[%d] = %s, want %s", i, got[i].Name, name)
		}
	}

	// Input order untouched.
	if players[0].Name != "zane" {
		t.Error("OrderPlayers modified its input")
	}
}

func TestOrderPlayersDeterministic(t *testing.T) {
	players := []models.Player{
		{ID: "1", Name: "amit", Category: models.CategoryCore},
		{ID: "2", Name: "Amit", Category: models.CategoryCore},
	}
	a := OrderPlayers(players)
	b := OrderPlayers([]models.Player{players[1], players[0]})
	if a[0].ID != b[0].ID || a[1].ID != b[1].ID {
		t.Errorf("ordering depends on input order: %v vs %v", a, b)
	}
	if a[0].Name != "Amit" {
		t.Errorf("case tiebreak: got %s first, want Amit", a[0].Name)
	}
}
