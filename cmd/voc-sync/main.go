// voc-sync is the primary sync: the counseling-log worksheet into the
// rider_voc_cases table. Orphaned store records are flagged for manual
// review, never deleted.
package main

import (
	"context"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"rider_voc_sync/internal/app"
	"rider_voc_sync/internal/config"
	"rider_voc_sync/internal/processing"
	"rider_voc_sync/internal/reconcile"
	"rider_voc_sync/internal/retry"
	"rider_voc_sync/internal/sheet"
	"rider_voc_sync/internal/store"
	"rider_voc_sync/internal/voc"
)

var CLI struct {
	Worksheet string        `help:"Worksheet title to sync." default:"1.1. 일자별 상담일지"`
	Delay     time.Duration `help:"Pause between consecutive writes." default:"100ms"`
	DryRun    bool          `help:"Log planned operations without writing."`
	StrictIDs bool          `name:"strict-ids" help:"Reject rows whose rider ID is malformed instead of passing them through."`
}

func main() {
	app.SetupEnvironment()
	kong.Parse(&CLI,
		kong.Name("voc-sync"),
		kong.Description("Sync the VOC counseling log worksheet into the rider_voc_cases table."),
		kong.UsageOnError(),
	)

	ctx := context.Background()
	sheetClient := app.NewSheetClient(ctx)
	st := app.NewStore(ctx, "SUPABASE_DB_URL")
	defer st.Close()

	spreadsheetID := app.GetRequiredEnv("GOOGLE_SHEET_ID")
	resilience := config.DefaultResilienceConfig

	log.Info().
		Str("worksheet", CLI.Worksheet).
		Bool("dry_run", CLI.DryRun).
		Bool("strict_ids", CLI.StrictIDs).
		Msg("Starting VOC sync")

	cases, rejected := readSheetCases(ctx, sheetClient, spreadsheetID, resilience)
	records := readStoreCases(ctx, st, resilience)

	plan := reconcile.Reconcile(cases, records,
		func(c voc.Case) (string, bool) { return c.SheetRowID, c.SheetRowID != "" },
		func(r voc.CaseRecord) (string, bool) { return r.SheetRowID, r.SheetRowID != "" },
		reconcile.SkipMissingKey,
	)
	log.Debug().
		Int("to_create", len(plan.ToCreate)).
		Int("to_update", len(plan.ToUpdate)).
		Int("orphaned", len(plan.Orphaned)).
		Int("skipped", len(plan.Skipped)).
		Msg("Reconciliation plan built")

	report := processing.ApplyCasePlan(ctx, st, plan, processing.Options{
		Delay:  CLI.Delay,
		DryRun: CLI.DryRun,
	})
	report.Skipped += rejected
	report.Log()

	logExposureCounts(cases)
}

func readSheetCases(ctx context.Context, client *sheet.Client, spreadsheetID string, resilience config.ResilienceConfig) ([]voc.Case, int) {
	table, err := retry.WithRetry(ctx, resilience.SheetRead, func(ctx context.Context) (*sheet.Table, error) {
		return client.ReadTable(ctx, spreadsheetID, CLI.Worksheet)
	})
	if err != nil {
		log.Fatal().Err(err).Str("worksheet", CLI.Worksheet).Msg("Failed to read worksheet")
	}

	rows, err := table.Rows(voc.CaseColumns)
	if err != nil {
		log.Fatal().Err(err).Msg("Worksheet layout does not match the expected columns")
	}

	cases := voc.CollectCases(rows)
	rejected := 0
	if CLI.StrictIDs {
		cases, rejected = voc.RejectMalformedRiderIDs(cases)
	}

	log.Info().Int("rows", len(rows)).Int("cases", len(cases)).Msg("Read sheet cases")
	return cases, rejected
}

func readStoreCases(ctx context.Context, st *store.Store, resilience config.ResilienceConfig) []voc.CaseRecord {
	records, err := retry.WithRetry(ctx, resilience.StoreRead, func(ctx context.Context) ([]voc.CaseRecord, error) {
		return st.AllCases(ctx)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read existing cases")
	}

	log.Info().Int("records", len(records)).Msg("Read existing store cases")
	return records
}

// logExposureCounts reports how many synced cases qualify for the public
// pages, mirroring the site's filter conditions.
func logExposureCounts(cases []voc.Case) {
	problemSolving := 0
	improvements := 0
	for _, c := range cases {
		if c.VisitPurpose == "문제해결" && c.ActionStatus == "해결" && c.RiderFeedback != "" {
			problemSolving++
		}
		if c.VisitPurpose == "정책/서비스 개선" && c.RiderFeedback != "" &&
			(c.ActionStatus == "조치완료" || c.ActionStatus == "일부 조치완료") {
			improvements++
		}
	}

	log.Info().
		Int("problem_solving_exposable", problemSolving).
		Int("improvements_exposable", improvements).
		Msg("Public exposure counts")
}
