package store

import (
	"context"
	"fmt"
	"time"

	"rider_voc_sync/internal/voc"
)

// The public site surfaces only complete, resolved cases. Incomplete
// rows are filtered at the query level; they are absent from results,
// never errors.

// ProblemSolvingCases returns resolved problem-solving cases where every
// public-facing field is present.
func (s *Store) ProblemSolvingCases(ctx context.Context, limit int) ([]voc.CaseRecord, error) {
	return s.queryCases(ctx, `
		SELECT `+caseColumns+` FROM rider_voc_cases
		WHERE visit_purpose = '문제해결'
		  AND action_status = '해결'
		  AND coalesce(main_content, '') <> ''
		  AND coalesce(action_content, '') <> ''
		  AND coalesce(rider_feedback, '') <> ''
		  AND coalesce(rider_id, '') <> ''
		  AND status_update_date IS NOT NULL
		ORDER BY status_update_date DESC
		LIMIT $1`, limit)
}

// CompletedImprovements returns actioned policy/service improvement
// cases that carry public rider feedback.
func (s *Store) CompletedImprovements(ctx context.Context, limit int) ([]voc.CaseRecord, error) {
	return s.queryCases(ctx, `
		SELECT `+caseColumns+` FROM rider_voc_cases
		WHERE visit_purpose = '정책/서비스 개선'
		  AND action_status IN ('조치완료', '일부 조치완료')
		  AND coalesce(rider_feedback, '') <> ''
		  AND status_update_date IS NOT NULL
		ORDER BY status_update_date DESC
		LIMIT $1`, limit)
}

// BannerImprovements is the looser banner variant: feedback is not
// required, only a status update date.
func (s *Store) BannerImprovements(ctx context.Context, limit int) ([]voc.CaseRecord, error) {
	return s.queryCases(ctx, `
		SELECT `+caseColumns+` FROM rider_voc_cases
		WHERE visit_purpose = '정책/서비스 개선'
		  AND action_status IN ('조치완료', '일부 조치완료')
		  AND status_update_date IS NOT NULL
		ORDER BY status_update_date DESC
		LIMIT $1`, limit)
}

// Statistics are the aggregate counts shown on the site.
type Statistics struct {
	TotalCases          int64 `json:"total_cases"`
	ProblemSolvingCases int64 `json:"problem_solving_cases"`
	ImprovementCases    int64 `json:"improvement_cases"`
	ThisMonthCases      int64 `json:"this_month_cases"`
}

// VocStatistics computes the aggregate VOC counts.
func (s *Store) VocStatistics(ctx context.Context) (Statistics, error) {
	var stats Statistics
	monthStart := time.Now().UTC().Format("2006-01") + "-01"

	err := s.pool.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE visit_purpose = '문제해결'
				AND action_status = '해결'
				AND coalesce(rider_feedback, '') <> ''),
			count(*) FILTER (WHERE visit_purpose = '정책/서비스 개선'
				AND action_status IN ('조치완료', '일부 조치완료')
				AND coalesce(rider_feedback, '') <> ''),
			count(*) FILTER (WHERE visit_date >= $1::date)
		FROM rider_voc_cases`, monthStart,
	).Scan(&stats.TotalCases, &stats.ProblemSolvingCases, &stats.ImprovementCases, &stats.ThisMonthCases)
	if err != nil {
		return Statistics{}, fmt.Errorf("failed to compute voc statistics: %w", err)
	}

	return stats, nil
}

func (s *Store) queryCases(ctx context.Context, query string, args ...interface{}) ([]voc.CaseRecord, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}
	defer rows.Close()

	var records []voc.CaseRecord
	for rows.Next() {
		var r voc.CaseRecord
		var sheetRowID, cwName, visitTime, counselor, riderType, riderID *string
		var specialNotes, visitPurpose, counselingContent, mainContent *string
		var actionStatus, actionContent, assignedStaff, referenceLink, riderFeedback *string

		err := rows.Scan(
			&r.ID, &sheetRowID, &cwName, &r.VisitDate, &visitTime, &counselor,
			&riderType, &riderID, &specialNotes, &visitPurpose, &counselingContent,
			&mainContent, &actionStatus, &actionContent, &r.StatusUpdateDate,
			&assignedStaff, &referenceLink, &riderFeedback, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case record: %w", err)
		}

		r.SheetRowID = text(sheetRowID)
		r.CWName = text(cwName)
		r.VisitTime = text(visitTime)
		r.Counselor = text(counselor)
		r.RiderType = text(riderType)
		r.RiderID = text(riderID)
		r.SpecialNotes = text(specialNotes)
		r.VisitPurpose = text(visitPurpose)
		r.CounselingContent = text(counselingContent)
		r.MainContent = text(mainContent)
		r.ActionStatus = text(actionStatus)
		r.ActionContent = text(actionContent)
		r.AssignedStaff = text(assignedStaff)
		r.ReferenceLink = text(referenceLink)
		r.RiderFeedback = text(riderFeedback)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read case records: %w", err)
	}
	return records, nil
}
