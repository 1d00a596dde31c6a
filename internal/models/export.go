package models

// ExportRecord is an archival copy of an exported match summary, shown in
// the history list. Created once per export action, never mutated.
type ExportRecord struct {
	// ID is the unique identifier for the record (UUID format).
	ID string

	// MatchID references the exported match.
	MatchID string

	// Filename is the suggested document filename for the export.
	Filename string

	// OpponentTeam and TotalFees are copied from the match so the history
	// list renders without resolving the match.
	OpponentTeam string
	TotalFees    float64

	// MatchData is the JSON-serialized snapshot of the match's date,
	// selected players, fee split and payments at export time.
	MatchData string

	// CreatedAt is the Unix timestamp when the export was made.
	CreatedAt int64
}
