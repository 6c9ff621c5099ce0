package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// syncedTables lists every table the sync flows write, dependents first
// so destructive passes satisfy the foreign keys.
var syncedTables = []string{"progress_items", "improvements", "suggestions", "rider_voc_cases"}

// ClearAll wipes every synced table and returns the per-table row count
// remaining afterwards (all zero on success). A failed table is logged
// and skipped so the rest still get cleared.
func (s *Store) ClearAll(ctx context.Context) (map[string]int64, error) {
	remaining := make(map[string]int64, len(syncedTables))

	for _, table := range syncedTables {
		if _, err := s.pool.Exec(ctx, `DELETE FROM `+table); err != nil {
			log.Error().Err(err).Str("table", table).Msg("Failed to clear table")
		} else {
			log.Info().Str("table", table).Msg("Cleared table")
		}

		var count int64
		if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM `+table).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		remaining[table] = count
	}

	return remaining, nil
}

// ExportAll dumps the full contents of every synced table, keyed by
// table name, each row as a column-to-value map.
func (s *Store) ExportAll(ctx context.Context) (map[string][]map[string]interface{}, error) {
	dump := make(map[string][]map[string]interface{}, len(syncedTables))

	for _, table := range syncedTables {
		rows, err := s.pool.Query(ctx, `SELECT * FROM `+table+` ORDER BY id`)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", table, err)
		}

		var tableRows []map[string]interface{}
		fields := rows.FieldDescriptions()
		for rows.Next() {
			values, err := rows.Values()
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to read %s row: %w", table, err)
			}
			row := make(map[string]interface{}, len(fields))
			for i, field := range fields {
				row[field.Name] = values[i]
			}
			tableRows = append(tableRows, row)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", table, err)
		}

		dump[table] = tableRows
		log.Debug().Str("table", table).Int("rows", len(tableRows)).Msg("Exported table")
	}

	return dump, nil
}
