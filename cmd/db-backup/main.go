// db-backup dumps every synced table to a timestamped JSON file, for a
// safety copy before destructive operations.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"rider_voc_sync/internal/app"
)

var CLI struct {
	Out string `help:"Directory the backup file is written to." type:"path" default:"."`
}

type backupFile struct {
	Timestamp time.Time                           `json:"timestamp"`
	Tables    map[string][]map[string]interface{} `json:"tables"`
}

func main() {
	app.SetupEnvironment()
	kong.Parse(&CLI,
		kong.Name("db-backup"),
		kong.Description("Dump every synced table to a timestamped JSON file."),
		kong.UsageOnError(),
	)

	ctx := context.Background()
	st := app.NewStore(ctx, "SUPABASE_DB_URL")
	defer st.Close()

	dump, err := st.ExportAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to export tables")
	}

	backup := backupFile{Timestamp: time.Now().UTC(), Tables: dump}
	payload, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode backup")
	}

	name := fmt.Sprintf("backup-%d.json", backup.Timestamp.UnixMilli())
	path := filepath.Join(CLI.Out, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write backup file")
	}

	total := 0
	for _, rows := range dump {
		total += len(rows)
	}
	log.Info().Str("path", path).Int("tables", len(dump)).Int("rows", total).Msg("Backup complete")
}
