package processing

import (
	"context"

	"github.com/rs/zerolog/log"

	"rider_voc_sync/internal/normalize"
	"rider_voc_sync/internal/reconcile"
	"rider_voc_sync/internal/voc"
)

// MirrorWriter is the slice of the store the full-mirror flow writes
// through.
type MirrorWriter interface {
	UpsertSuggestion(ctx context.Context, sg voc.Suggestion) (int64, error)
	ReplaceImprovement(ctx context.Context, suggestionID int64, sg voc.Suggestion) error
	ReplaceProgressItem(ctx context.Context, suggestionID int64, sg voc.Suggestion) error
	DeleteSuggestionCascade(ctx context.Context, id int64) error
}

// ApplyMirrorPlan makes the store an exact mirror of the sheet: creates
// and updates first, then orphan deletion (dependents cascade inside the
// writer). After each successful write the status-driven secondary rows
// are refreshed; those writes are best-effort and never fail the
// primary one.
func ApplyMirrorPlan(ctx context.Context, writer MirrorWriter, plan reconcile.Plan[voc.Suggestion, voc.SuggestionRecord], opts Options) Report {
	var report Report

	for _, skipped := range plan.Skipped {
		log.Warn().
			Str("rider_id", skipped.Row.RiderID).
			Str("reason", skipped.Reason).
			Msg("Skipped sheet row")
		report.Skipped++
	}

	for _, sg := range plan.ToCreate {
		if writeSuggestion(ctx, writer, sg, opts, "create") {
			report.Created++
		} else {
			report.Errored++
		}
		pause(ctx, opts.Delay)
	}

	for _, pair := range plan.ToUpdate {
		if writeSuggestion(ctx, writer, pair.Row, opts, "update") {
			report.Updated++
		} else {
			report.Errored++
		}
		pause(ctx, opts.Delay)
	}

	for _, orphan := range plan.Orphaned {
		report.Orphaned++
		if opts.DryRun {
			log.Info().Int64("suggestion_id", orphan.ID).Msg("Would delete orphaned suggestion")
			report.Deleted++
			continue
		}

		if err := writer.DeleteSuggestionCascade(ctx, orphan.ID); err != nil {
			log.Error().Err(err).
				Int64("suggestion_id", orphan.ID).
				Str("rider_id", orphan.RiderID).
				Msg("Failed to delete orphaned suggestion")
			report.Errored++
		} else {
			log.Info().Int64("suggestion_id", orphan.ID).Msg("Deleted orphaned suggestion")
			report.Deleted++
		}
		pause(ctx, opts.Delay)
	}

	return report
}

func writeSuggestion(ctx context.Context, writer MirrorWriter, sg voc.Suggestion, opts Options, op string) bool {
	if opts.DryRun {
		log.Info().
			Str("op", op).
			Str("title", sg.Title).
			Str("rider_id", sg.RiderID).
			Msgf("Would %s suggestion", op)
		return true
	}

	id, err := writer.UpsertSuggestion(ctx, sg)
	if err != nil {
		log.Error().Err(err).
			Int("row", sg.RowNumber).
			Str("title", sg.Title).
			Str("rider_id", sg.RiderID).
			Msgf("Failed to %s suggestion", op)
		return false
	}
	log.Info().
		Int64("suggestion_id", id).
		Str("title", sg.Title).
		Str("status", string(sg.Status)).
		Msgf("Suggestion %sd", op)

	applySideEffects(ctx, writer, id, sg)
	return true
}

// applySideEffects refreshes the denormalized tables a status implies.
func applySideEffects(ctx context.Context, writer MirrorWriter, id int64, sg voc.Suggestion) {
	switch sg.Status {
	case normalize.StatusCompleted:
		if err := writer.ReplaceImprovement(ctx, id, sg); err != nil {
			log.Warn().Err(err).Int64("suggestion_id", id).Msg("Failed to refresh improvement row")
		}
	case normalize.StatusInProgress:
		if err := writer.ReplaceProgressItem(ctx, id, sg); err != nil {
			log.Warn().Err(err).Int64("suggestion_id", id).Msg("Failed to refresh progress row")
		}
	}
}
