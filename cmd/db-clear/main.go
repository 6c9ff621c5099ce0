// db-clear wipes every synced table. It demands a literal typed
// confirmation before touching anything, and requires the privileged
// database connection.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"rider_voc_sync/internal/app"
)

var CLI struct {
	Force bool `help:"Skip the interactive confirmation."`
}

func main() {
	app.SetupEnvironment()
	kong.Parse(&CLI,
		kong.Name("db-clear"),
		kong.Description("Delete every row of every synced table."),
		kong.UsageOnError(),
	)

	if !CLI.Force && !confirm() {
		fmt.Println("Aborted.")
		return
	}

	ctx := context.Background()
	st := app.NewStore(ctx, "SUPABASE_DB_ADMIN_URL")
	defer st.Close()

	remaining, err := st.ClearAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to clear tables")
	}

	clean := true
	for table, count := range remaining {
		log.Info().Str("table", table).Int64("remaining", count).Msg("Table cleared")
		if count > 0 {
			clean = false
		}
	}

	if !clean {
		log.Warn().Msg("Some rows remain, manual review needed")
		os.Exit(1)
	}
	log.Info().Msg("All synced tables cleared")
}

// confirm requires the operator to type DELETE, exactly.
func confirm() bool {
	fmt.Println("WARNING: this deletes ALL rows from every synced table.")
	fmt.Print("Type DELETE to continue: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == "DELETE"
}
