package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/united77/cricfees/internal/models"
)

// CreateExport inserts a new export history record.
func (s *SQLiteStore) CreateExport(ctx context.Context, record *models.ExportRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt == 0 {
		record.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO exports (id, match_id, filename, opponent_team, total_fees, match_data, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		record.ID, record.MatchID, record.Filename, record.OpponentTeam, record.TotalFees, record.MatchData, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert export record: %w", err)
	}
	return nil
}

// ListExports returns all export records, newest first.
func (s *SQLiteStore) ListExports(ctx context.Context) ([]models.ExportRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, match_id, filename, opponent_team, total_fees, match_data, created_at FROM exports ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list export records: %w", err)
	}
	defer rows.Close()

	var records []models.ExportRecord
	for rows.Next() {
		var record models.ExportRecord
		err := rows.Scan(&record.ID, &record.MatchID, &record.Filename,
			&record.OpponentTeam, &record.TotalFees, &record.MatchData, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan export record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate export records: %w", err)
	}
	return records, nil
}
