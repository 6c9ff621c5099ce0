package store

import (
	"context"
	"fmt"
	"time"

	"rider_voc_sync/internal/normalize"
	"rider_voc_sync/internal/voc"
)

// AllSuggestions reads the full suggestions table in primary key order.
func (s *Store) AllSuggestions(ctx context.Context) ([]voc.SuggestionRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, description, rider_id, status, priority, created_at, updated_at
		FROM suggestions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}
	defer rows.Close()

	var records []voc.SuggestionRecord
	for rows.Next() {
		var r voc.SuggestionRecord
		var title, description, riderID, status, priority *string
		if err := rows.Scan(&r.ID, &title, &description, &riderID, &status, &priority, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		r.Title = text(title)
		r.Description = text(description)
		r.RiderID = text(riderID)
		r.Status = normalize.Status(text(status))
		r.Priority = text(priority)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read suggestions: %w", err)
	}
	return records, nil
}

// UpsertSuggestion writes a suggestion and returns its id. A suggestion
// that carries the sheet's 번호 keeps that id (insert-or-update); an
// unnumbered one is inserted with a store-assigned id.
func (s *Store) UpsertSuggestion(ctx context.Context, sg voc.Suggestion) (int64, error) {
	now := time.Now().UTC()

	if sg.ID == nil {
		var id int64
		err := s.pool.QueryRow(ctx, `
			INSERT INTO suggestions (title, description, rider_id, status, priority, created_at, updated_at)
			VALUES ($1, $2, $3, $4, 'medium', $5, $5)
			RETURNING id`,
			nullable(sg.Title), nullable(sg.Description), nullable(sg.RiderID),
			string(sg.Status), now,
		).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to insert suggestion %q: %w", sg.Title, err)
		}
		return id, nil
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO suggestions (id, title, description, rider_id, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'medium', $6, $6)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			rider_id = EXCLUDED.rider_id,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		*sg.ID, nullable(sg.Title), nullable(sg.Description), nullable(sg.RiderID),
		string(sg.Status), now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert suggestion %d: %w", *sg.ID, err)
	}
	return *sg.ID, nil
}

// ReplaceImprovement refreshes the denormalized improvements row for a
// completed suggestion.
func (s *Store) ReplaceImprovement(ctx context.Context, suggestionID int64, sg voc.Suggestion) error {
	description := sg.ImprovementPlan
	if description == "" {
		description = sg.Description
	}
	effect := sg.EffectDescription
	if effect == "" {
		effect = sg.ImprovementPlan
	}
	if effect == "" {
		effect = "개선 완료"
	}
	completed := sg.CompletedDate
	if completed == nil {
		today := time.Now().UTC().Format("2006-01-02")
		completed = &today
	}

	if _, err := s.pool.Exec(ctx, `DELETE FROM improvements WHERE suggestion_id = $1`, suggestionID); err != nil {
		return fmt.Errorf("failed to clear improvements for suggestion %d: %w", suggestionID, err)
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO improvements (suggestion_id, title, description, rider_id, completed_date, effect_description, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		suggestionID, nullable(sg.Title), nullable(description), nullable(sg.RiderID),
		completed, nullable(effect), nullable(sg.FeedbackContent),
	)
	if err != nil {
		return fmt.Errorf("failed to insert improvement for suggestion %d: %w", suggestionID, err)
	}
	return nil
}

// ReplaceProgressItem refreshes the denormalized progress row for an
// in-progress suggestion.
func (s *Store) ReplaceProgressItem(ctx context.Context, suggestionID int64, sg voc.Suggestion) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM progress_items WHERE suggestion_id = $1`, suggestionID); err != nil {
		return fmt.Errorf("failed to clear progress items for suggestion %d: %w", suggestionID, err)
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO progress_items (suggestion_id, title, rider_id, progress_percentage, current_status, expected_completion, last_updated)
		VALUES ($1, $2, $3, $4, '진행 중', $5, $6)`,
		suggestionID, nullable(sg.Title), nullable(sg.RiderID),
		sg.ProgressPercentage, sg.DueDate, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert progress item for suggestion %d: %w", suggestionID, err)
	}
	return nil
}

// DeleteSuggestionCascade removes a suggestion and its dependent rows,
// dependents first to satisfy the foreign keys.
func (s *Store) DeleteSuggestionCascade(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM improvements WHERE suggestion_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete improvements for suggestion %d: %w", id, err)
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM progress_items WHERE suggestion_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete progress items for suggestion %d: %w", id, err)
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM suggestions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete suggestion %d: %w", id, err)
	}
	return nil
}
