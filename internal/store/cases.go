package store

import (
	"context"
	"fmt"
	"time"

	"rider_voc_sync/internal/voc"
)

const caseColumns = `id, sheet_row_id, cw_name, visit_date::text, visit_time, counselor,
	rider_type, rider_id, special_notes, visit_purpose, counseling_content,
	main_content, action_status, action_content, status_update_date::text,
	assigned_staff, reference_link, rider_feedback, created_at, updated_at`

// AllCases reads the full rider_voc_cases table. Order by primary key
// keeps repeated runs reproducible in the logs.
func (s *Store) AllCases(ctx context.Context) ([]voc.CaseRecord, error) {
	return s.queryCases(ctx, `SELECT `+caseColumns+` FROM rider_voc_cases ORDER BY id`)
}

// InsertCase creates a new case record from a sheet case, stamping both
// timestamps to now.
func (s *Store) InsertCase(ctx context.Context, c voc.Case) error {
	now := time.Now().UTC()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO rider_voc_cases (
			sheet_row_id, cw_name, visit_date, visit_time, counselor, rider_type,
			rider_id, special_notes, visit_purpose, counseling_content, main_content,
			action_status, action_content, status_update_date, assigned_staff,
			reference_link, rider_feedback, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		nullable(c.SheetRowID), nullable(c.CWName), c.VisitDate, nullable(c.VisitTime),
		nullable(c.Counselor), nullable(c.RiderType), nullable(c.RiderID),
		nullable(c.SpecialNotes), nullable(c.VisitPurpose), nullable(c.CounselingContent),
		nullable(c.MainContent), nullable(c.ActionStatus), nullable(c.ActionContent),
		c.StatusUpdateDate, nullable(c.AssignedStaff), nullable(c.ReferenceLink),
		nullable(c.RiderFeedback), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert case (sheet row %s): %w", c.SheetRowID, err)
	}
	return nil
}

// UpdateCase replaces every mutable field of an existing record with the
// sheet case's current values. This is a full overwrite, not a merge:
// the sheet is the master for everything it carries.
func (s *Store) UpdateCase(ctx context.Context, id int64, c voc.Case) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE rider_voc_cases SET
			cw_name = $1, visit_date = $2, visit_time = $3, counselor = $4,
			rider_type = $5, rider_id = $6, special_notes = $7, visit_purpose = $8,
			counseling_content = $9, main_content = $10, action_status = $11,
			action_content = $12, status_update_date = $13, assigned_staff = $14,
			reference_link = $15, rider_feedback = $16, updated_at = $17
		WHERE id = $18`,
		nullable(c.CWName), c.VisitDate, nullable(c.VisitTime), nullable(c.Counselor),
		nullable(c.RiderType), nullable(c.RiderID), nullable(c.SpecialNotes),
		nullable(c.VisitPurpose), nullable(c.CounselingContent), nullable(c.MainContent),
		nullable(c.ActionStatus), nullable(c.ActionContent), c.StatusUpdateDate,
		nullable(c.AssignedStaff), nullable(c.ReferenceLink), nullable(c.RiderFeedback),
		time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update case %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("case %d not found", id)
	}
	return nil
}

// DeleteCase removes one case record.
func (s *Store) DeleteCase(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM rider_voc_cases WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete case %d: %w", id, err)
	}
	return nil
}
