// Package processing applies reconciliation plans to the store: one
// record at a time, per-record error isolation, a fixed pause between
// writes, and a counter report at the end.
package processing

import (
	"context"

	"github.com/rs/zerolog/log"

	"rider_voc_sync/internal/reconcile"
	"rider_voc_sync/internal/voc"
)

// CaseWriter is the slice of the store the case flow writes through.
// Taking an interface keeps the apply logic testable against a fake.
type CaseWriter interface {
	InsertCase(ctx context.Context, c voc.Case) error
	UpdateCase(ctx context.Context, id int64, c voc.Case) error
}

// ApplyCasePlan applies a counseling-log plan: creates, then updates.
// Orphaned records are logged for manual review and never deleted in
// this flow. A failed write is logged with enough context to remediate
// by hand and the sweep continues.
func ApplyCasePlan(ctx context.Context, writer CaseWriter, plan reconcile.Plan[voc.Case, voc.CaseRecord], opts Options) Report {
	var report Report

	for _, skipped := range plan.Skipped {
		log.Warn().
			Str("rider_id", skipped.Row.RiderID).
			Str("reason", skipped.Reason).
			Msg("Skipped sheet row")
		report.Skipped++
	}

	for _, c := range plan.ToCreate {
		if opts.DryRun {
			log.Info().Str("sheet_row_id", c.SheetRowID).Str("rider_id", c.RiderID).Msg("Would create case")
			report.Created++
			continue
		}

		if err := writer.InsertCase(ctx, c); err != nil {
			log.Error().Err(err).
				Str("sheet_row_id", c.SheetRowID).
				Str("rider_id", c.RiderID).
				Msg("Failed to create case")
			report.Errored++
		} else {
			log.Info().Str("sheet_row_id", c.SheetRowID).Str("rider_id", c.RiderID).Msg("Created case")
			report.Created++
		}
		pause(ctx, opts.Delay)
	}

	for _, pair := range plan.ToUpdate {
		if opts.DryRun {
			log.Info().Str("sheet_row_id", pair.Row.SheetRowID).Str("rider_id", pair.Row.RiderID).Msg("Would update case")
			report.Updated++
			continue
		}

		if err := writer.UpdateCase(ctx, pair.Record.ID, pair.Row); err != nil {
			log.Error().Err(err).
				Str("sheet_row_id", pair.Row.SheetRowID).
				Str("rider_id", pair.Row.RiderID).
				Int64("case_id", pair.Record.ID).
				Msg("Failed to update case")
			report.Errored++
		} else {
			log.Info().Str("sheet_row_id", pair.Row.SheetRowID).Str("rider_id", pair.Row.RiderID).Msg("Updated case")
			report.Updated++
		}
		pause(ctx, opts.Delay)
	}

	for _, orphan := range plan.Orphaned {
		log.Warn().
			Int64("case_id", orphan.ID).
			Str("sheet_row_id", orphan.SheetRowID).
			Str("rider_id", orphan.RiderID).
			Msg("Case no longer present in sheet, manual review needed")
		report.Orphaned++
	}

	return report
}
