// Package contacts parses pasted contact text into player-creation
// candidates. It accepts simple delimited lines ("name, phone") and vCard
// exports, and deduplicates candidates against the existing roster.
package contacts

import (
	"strings"

	"github.com/united77/cricfees/internal/models"
)

// Candidate is a parsed contact ready to become a player-creation input.
type Candidate struct {
	Name  string
	Phone string
}

// Parse extracts candidates from pasted text, dispatching on format.
func Parse(text string) []Candidate {
	if strings.Contains(text, "BEGIN:VCARD") {
		return ParseVCard(text)
	}
	return ParseDelimited(text)
}

// ParseDelimited reads one contact per line. Name and phone may be
// separated by a comma, semicolon or tab; a line without a separator is a
// name-only candidate. Blank lines are skipped.
func ParseDelimited(text string) []Candidate {
	var candidates []Candidate
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		sep := -1
		for _, d := range []string{",", ";", "\t"} {
			if i := strings.Index(line, d); i >= 0 && (sep < 0 || i < sep) {
				sep = i
			}
		}

		if sep < 0 {
			candidates = append(candidates, Candidate{Name: line})
			continue
		}

		name := strings.TrimSpace(line[:sep])
		phone := strings.TrimSpace(line[sep+1:])
		if name == "" {
			continue
		}
		candidates = append(candidates, Candidate{Name: name, Phone: phone})
	}
	return candidates
}

// ParseVCard reads a minimal subset of vCard text: FN (or N as fallback)
// for the name and the first TEL line for the phone. Multiple cards per
// text are supported.
func ParseVCard(text string) []Candidate {
	var candidates []Candidate
	var current *Candidate
	var fallbackName string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "BEGIN:VCARD":
			current = &Candidate{}
			fallbackName = ""
		case line == "END:VCARD":
			if current != nil {
				if current.Name == "" {
					current.Name = fallbackName
				}
				if current.Name != "" {
					candidates = append(candidates, *current)
				}
			}
			current = nil
		case current == nil:
			// Ignore anything outside a card.
		case strings.HasPrefix(line, "FN:"):
			current.Name = strings.TrimSpace(strings.TrimPrefix(line, "FN:"))
		case strings.HasPrefix(line, "N:"):
			// N is "family;given;..."; join the non-empty parts in
			// given-name-first order as a fallback when FN is absent.
			parts := strings.Split(strings.TrimPrefix(line, "N:"), ";")
			var names []string
			for i := len(parts) - 1; i >= 0; i-- {
				if p := strings.TrimSpace(parts[i]); p != "" {
					names = append(names, p)
				}
			}
			fallbackName = strings.Join(names, " ")
		case strings.HasPrefix(line, "TEL"):
			if current.Phone != "" {
				continue
			}
			if i := strings.Index(line, ":"); i >= 0 {
				current.Phone = strings.TrimSpace(line[i+1:])
			}
		}
	}
	return candidates
}

// NormalizePhone strips everything but digits, so formatting and country
// prefixes written with punctuation compare equal.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Dedupe drops candidates that already exist on the roster, matching by
// case-insensitive name or normalized phone, and collapses duplicates
// within the batch itself.
func Dedupe(candidates []Candidate, roster []models.Player) []Candidate {
	names := make(map[string]bool, len(roster))
	phones := make(map[string]bool, len(roster))
	for _, p := range roster {
		names[strings.ToLower(p.Name)] = true
		if n := NormalizePhone(p.Phone); n != "" {
			phones[n] = true
		}
	}

	var unique []Candidate
	for _, c := range candidates {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" || names[name] {
			continue
		}
		phone := NormalizePhone(c.Phone)
		if phone != "" && phones[phone] {
			continue
		}
		names[name] = true
		if phone != "" {
			phones[phone] = true
		}
		unique = append(unique, c)
	}
	return unique
}
