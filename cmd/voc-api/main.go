// voc-api serves the public, filtered subset of VOC data as JSON: the
// problem-solving cases, completed improvements, banner items, and
// aggregate statistics the website renders. Query failures degrade to
// fallback payloads; the API never 500s because the store is down.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"rider_voc_sync/internal/app"
	"rider_voc_sync/internal/view"
)

var CLI struct {
	Addr     string        `help:"Listen address." default:":8787"`
	CacheTTL time.Duration `name:"cache-ttl" help:"How long query results are cached." default:"60s"`
}

func main() {
	app.SetupEnvironment()
	kong.Parse(&CLI,
		kong.Name("voc-api"),
		kong.Description("Serve the public VOC data API."),
		kong.UsageOnError(),
	)

	ctx := context.Background()
	st := app.NewStore(ctx, "SUPABASE_DB_URL")
	defer st.Close()

	svc := view.NewService(st, CLI.CacheTTL)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/cases/problem-solving", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, svc.ProblemSolvingCases(req.Context(), limitParam(req, 10)))
		})
		r.Get("/improvements", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, svc.CompletedImprovements(req.Context(), limitParam(req, 6)))
		})
		r.Get("/improvements/banner", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, svc.BannerImprovements(req.Context(), limitParam(req, 20)))
		})
		r.Get("/statistics", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, svc.Statistics(req.Context()))
		})
	})

	log.Info().Str("addr", CLI.Addr).Dur("cache_ttl", CLI.CacheTTL).Msg("Serving VOC API")
	if err := newServer(CLI.Addr, r).ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

// newServer bounds how long a client may hold a connection; responses
// are small cached JSON payloads, so the limits are tight.
func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// limitParam reads ?limit= with a per-endpoint default, capped to keep
// response sizes bounded.
func limitParam(req *http.Request, fallback int) int {
	raw := req.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	return min(limit, 100)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		log.Debug().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("Request served")
	})
}
