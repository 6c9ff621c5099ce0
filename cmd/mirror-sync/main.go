// mirror-sync is the full-mirror variant: the suggestions worksheet
// becomes the exact contents of the suggestions table. Store records
// with no corresponding sheet row are deleted (dependents first), and
// status-driven denormalized rows are refreshed alongside each write.
// Because it deletes, it runs against the privileged connection.
package main

import (
	"context"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"rider_voc_sync/internal/app"
	"rider_voc_sync/internal/config"
	"rider_voc_sync/internal/processing"
	"rider_voc_sync/internal/reconcile"
	"rider_voc_sync/internal/retry"
	"rider_voc_sync/internal/sheet"
	"rider_voc_sync/internal/voc"
)

var CLI struct {
	Worksheet string        `help:"Worksheet title to mirror. Defaults to the spreadsheet's first worksheet."`
	Delay     time.Duration `help:"Pause between consecutive writes." default:"100ms"`
	DryRun    bool          `help:"Log planned operations without writing."`
}

func main() {
	app.SetupEnvironment()
	kong.Parse(&CLI,
		kong.Name("mirror-sync"),
		kong.Description("Mirror the suggestions worksheet into the suggestions tables, deleting orphans."),
		kong.UsageOnError(),
	)

	ctx := context.Background()
	sheetClient := app.NewSheetClient(ctx)
	st := app.NewStore(ctx, "SUPABASE_DB_ADMIN_URL")
	defer st.Close()

	spreadsheetID := app.GetRequiredEnv("GOOGLE_SHEET_ID")
	resilience := config.DefaultResilienceConfig

	worksheet := CLI.Worksheet
	if worksheet == "" {
		worksheet = firstWorksheet(ctx, sheetClient, spreadsheetID, resilience)
	}

	log.Info().
		Str("worksheet", worksheet).
		Bool("dry_run", CLI.DryRun).
		Msg("Starting full-mirror sync")

	table, err := retry.WithRetry(ctx, resilience.SheetRead, func(ctx context.Context) (*sheet.Table, error) {
		return sheetClient.ReadTable(ctx, spreadsheetID, worksheet)
	})
	if err != nil {
		log.Fatal().Err(err).Str("worksheet", worksheet).Msg("Failed to read worksheet")
	}

	rows, err := table.Rows(voc.SuggestionColumns)
	if err != nil {
		log.Fatal().Err(err).Msg("Worksheet layout does not match the expected columns")
	}

	// This flow always enforces rider ID validation. Either every row
	// passes the admission filter or it stays out of the mirror.
	suggestions, rejected := voc.AdmitSuggestions(voc.CollectSuggestions(rows))
	log.Info().Int("rows", len(rows)).Int("suggestions", len(suggestions)).Msg("Read sheet suggestions")

	records, err := retry.WithRetry(ctx, resilience.StoreRead, func(ctx context.Context) ([]voc.SuggestionRecord, error) {
		return st.AllSuggestions(ctx)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read existing suggestions")
	}
	log.Info().Int("records", len(records)).Msg("Read existing suggestions")

	// Unnumbered sheet rows have no key yet; they are always created and
	// receive a store-assigned id.
	plan := reconcile.Reconcile(suggestions, records,
		func(s voc.Suggestion) (string, bool) { return suggestionKey(s.ID) },
		func(r voc.SuggestionRecord) (string, bool) { return suggestionKey(&r.ID) },
		reconcile.CreateMissingKey,
	)
	log.Debug().
		Int("to_create", len(plan.ToCreate)).
		Int("to_update", len(plan.ToUpdate)).
		Int("orphaned", len(plan.Orphaned)).
		Msg("Reconciliation plan built")

	report := processing.ApplyMirrorPlan(ctx, st, plan, processing.Options{
		Delay:  CLI.Delay,
		DryRun: CLI.DryRun,
	})
	report.Skipped += rejected
	report.Log()
}

func firstWorksheet(ctx context.Context, client *sheet.Client, spreadsheetID string, resilience config.ResilienceConfig) string {
	titles, err := retry.WithRetry(ctx, resilience.SheetRead, func(ctx context.Context) ([]string, error) {
		return client.WorksheetTitles(ctx, spreadsheetID)
	})
	if err != nil || len(titles) == 0 {
		log.Fatal().Err(err).Msg("Failed to resolve the spreadsheet's first worksheet")
	}
	return titles[0]
}

func suggestionKey(id *int64) (string, bool) {
	if id == nil {
		return "", false
	}
	return strconv.FormatInt(*id, 10), true
}
