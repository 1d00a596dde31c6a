// Package export renders completed match records into shareable artifacts:
// a printable summary document, per-player reminder messages and the
// wa.me / UPI deep links wrapped around them.
//
// All two-decimal rounding happens here, at presentation time. The sum of
// rounded per-player amounts may drift from the rounded total by a cent or
// two; the ledger keeps the exact values.
package export

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/united77/cricfees/internal/calculator"
	"github.com/united77/cricfees/internal/models"
)

// Renderer turns match records into documents and messages.
type Renderer struct {
	// TeamName is the home team's display name, e.g. "United77".
	TeamName string

	// Currency is the symbol prefixed to amounts, e.g. "₹".
	Currency string
}

// New returns a Renderer for the given team. An empty currency defaults to
// the rupee symbol.
func New(teamName, currency string) *Renderer {
	if currency == "" {
		currency = "₹"
	}
	return &Renderer{TeamName: teamName, Currency: currency}
}

func (r *Renderer) amount(v float64) string {
	return fmt.Sprintf("%s%.2f", r.Currency, v)
}

// Summary renders the printable fee-split document for a match. When
// collectorID is non-empty the collector's refund line is included and
// payment lines are labeled with who to pay.
func (r *Renderer) Summary(match *models.Match, roster []models.Player, collectorID string) string {
	byID := make(map[string]models.Player, len(roster))
	for _, p := range roster {
		byID[p.ID] = p
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s\n", r.TeamName, match.OpponentTeam)
	fmt.Fprintf(&b, "Date: %s\n", match.Date)
	fmt.Fprintf(&b, "Total Match Fees: %s\n", r.amount(match.TotalFees))
	fmt.Fprintf(&b, "Players: %d (core %d, self paid %d, unpaid %d)\n",
		match.FeeSplit.TotalPlayers, match.FeeSplit.CorePlayers,
		match.FeeSplit.SelfPaidPlayers, match.FeeSplit.UnpaidPlayers)
	fmt.Fprintf(&b, "Per Player: %s\n", r.amount(match.FeeSplit.PerPlayerAmount))
	if match.FeeSplit.CoreShareExtra > 0 {
		fmt.Fprintf(&b, "Core Extra: %s each\n", r.amount(match.FeeSplit.CoreShareExtra))
	}

	var collector *models.Player
	if collectorID != "" {
		if p, ok := byID[collectorID]; ok {
			collector = &p
		}
	}

	headers := map[models.Category]string{
		models.CategoryCore:     "Core Members",
		models.CategorySelfPaid: "Self Paid Players",
		models.CategoryUnpaid:   "Unpaid Players",
	}
	for _, category := range []models.Category{models.CategoryCore, models.CategorySelfPaid, models.CategoryUnpaid} {
		lines := r.categoryLines(match, byID, category, collector)
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", headers[category])
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if collector != nil {
		if payerReturn, err := calculator.CollectorReturn(match, collector.ID, roster); err == nil {
			fmt.Fprintf(&b, "\nCollected by %s, to receive back %s\n", collector.Name, r.amount(payerReturn))
		}
	}
	return b.String()
}

func (r *Renderer) categoryLines(match *models.Match, byID map[string]models.Player, category models.Category, collector *models.Player) []string {
	var lines []string
	for _, payment := range match.Payments {
		player, ok := byID[payment.PlayerID]
		if !ok || player.Category != category {
			continue
		}
		due := calculator.DueAmount(payment, player.Category)
		switch {
		case category == models.CategoryUnpaid:
			lines = append(lines, fmt.Sprintf("  %s: %s (covered by core)", player.Name, r.amount(due)))
		case collector != nil && player.ID != collector.ID:
			lines = append(lines, fmt.Sprintf("  %s: %s (pay to %s)", player.Name, r.amount(due), collector.Name))
		default:
			lines = append(lines, fmt.Sprintf("  %s: %s", player.Name, r.amount(due)))
		}
	}
	return lines
}

// PlayerMessage builds the reminder text sent to one player, mirroring the
// summary wording: unpaid players are told no payment is needed, everyone
// else is told how much to pay and to whom, with a UPI deep link when the
// collector has a payment handle.
func (r *Renderer) PlayerMessage(match *models.Match, player models.Player, collector *models.Player) string {
	payment := match.Payment(player.ID)
	if payment == nil {
		return ""
	}
	due := calculator.DueAmount(*payment, player.Category)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", player.Name)
	fmt.Fprintf(&b, "%s vs %s\n", r.TeamName, match.OpponentTeam)
	fmt.Fprintf(&b, "Date: %s\n", match.Date)
	fmt.Fprintf(&b, "Total Match Fees: %s\n\n", r.amount(match.TotalFees))

	switch {
	case player.Category == models.CategoryUnpaid:
		b.WriteString("Your fees are covered by our core members. No payment needed.\n")
	case collector != nil && player.ID == collector.ID:
		fmt.Fprintf(&b, "You are collecting payments for this match. Your share is %s.\n", r.amount(due))
		if payerReturn := match.TotalFees - payment.Amount; payerReturn > 0 {
			fmt.Fprintf(&b, "You should receive back a total of %s after collections.\n", r.amount(payerReturn))
		}
	case collector != nil:
		phone := ""
		if collector.Phone != "" {
			phone = fmt.Sprintf(" (%s)", collector.Phone)
		}
		fmt.Fprintf(&b, "Please pay %s to %s%s.\n", r.amount(due), collector.Name, phone)
		if collector.UpiID != "" && due > 0 {
			link := UPILink(collector.UpiID, collector.Name, due)
			b.WriteString("\nQuick payment link:\n")
			fmt.Fprintf(&b, "%s\n", link)
		}
	default:
		fmt.Fprintf(&b, "Your share is %s.\n", r.amount(due))
	}

	fmt.Fprintf(&b, "\nThanks! - %s Team", r.TeamName)
	return b.String()
}

// UPILink builds a upi://pay deep link for the given payee handle and amount.
func UPILink(upiID, payeeName string, amount float64) string {
	q := url.Values{}
	q.Set("pa", upiID)
	q.Set("pn", payeeName)
	q.Set("am", fmt.Sprintf("%.2f", amount))
	q.Set("cu", "INR")
	return "upi://pay?" + q.Encode()
}

// WhatsAppLink builds a wa.me deep link with the message prefilled. The
// phone is reduced to digits; an empty phone yields an empty link.
func WhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(message))
}

// Filename suggests a document name for a match export.
func (r *Renderer) Filename(match *models.Match) string {
	team := slugify(r.TeamName)
	opponent := slugify(match.OpponentTeam)
	date := match.Date
	if date == "" {
		date = time.Unix(match.CreatedAt, 0).UTC().Format("2006-01-02")
	}
	return fmt.Sprintf("%s-vs-%s-%s.pdf", team, opponent, date)
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
