// Package view is the public read surface: the filtered, masked subset
// of VOC data the website shows. Query failures never propagate out of
// here; callers get a bundled sample dataset or an empty result so the
// site always renders.
package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"rider_voc_sync/internal/normalize"
	"rider_voc_sync/internal/store"
	"rider_voc_sync/internal/voc"
)

// CaseSource is the slice of the store the view layer reads from.
type CaseSource interface {
	ProblemSolvingCases(ctx context.Context, limit int) ([]voc.CaseRecord, error)
	CompletedImprovements(ctx context.Context, limit int) ([]voc.CaseRecord, error)
	BannerImprovements(ctx context.Context, limit int) ([]voc.CaseRecord, error)
	VocStatistics(ctx context.Context) (store.Statistics, error)
}

// CaseView is one publicly exposed case. Rider identifiers never leave
// this package unmasked.
type CaseView struct {
	RiderName        string  `json:"rider_name"`
	RiderType        string  `json:"rider_type,omitempty"`
	VisitPurpose     string  `json:"visit_purpose"`
	MainContent      string  `json:"main_content,omitempty"`
	ActionStatus     string  `json:"action_status"`
	ActionContent    string  `json:"action_content,omitempty"`
	RiderFeedback    string  `json:"rider_feedback,omitempty"`
	StatusUpdateDate *string `json:"status_update_date"`
	ReferenceLink    string  `json:"reference_link,omitempty"`
}

type cacheEntry struct {
	value     interface{}
	timestamp time.Time
}

// Service serves the public queries with a short-TTL cache in front of
// the store.
type Service struct {
	source CaseSource
	ttl    time.Duration
	cache  sync.Map
}

func NewService(source CaseSource, ttl time.Duration) *Service {
	return &Service{source: source, ttl: ttl}
}

// ProblemSolvingCases returns resolved problem-solving cases, falling
// back to the bundled samples when the store is unreachable.
func (s *Service) ProblemSolvingCases(ctx context.Context, limit int) []CaseView {
	return s.cases(ctx, "problem_solving", limit, s.source.ProblemSolvingCases, sampleProblemCases)
}

// CompletedImprovements returns actioned improvement cases with rider
// feedback, falling back to the bundled samples.
func (s *Service) CompletedImprovements(ctx context.Context, limit int) []CaseView {
	return s.cases(ctx, "improvements", limit, s.source.CompletedImprovements, sampleImprovements)
}

// BannerImprovements returns the looser banner list; on failure the
// banner simply shows nothing.
func (s *Service) BannerImprovements(ctx context.Context, limit int) []CaseView {
	return s.cases(ctx, "banner", limit, s.source.BannerImprovements, nil)
}

// Statistics returns the aggregate counts, zeroed on failure.
func (s *Service) Statistics(ctx context.Context) store.Statistics {
	if cached, ok := s.cached("statistics"); ok {
		return cached.(store.Statistics)
	}

	stats, err := s.source.VocStatistics(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load voc statistics, serving zeros")
		return store.Statistics{}
	}

	s.store("statistics", stats)
	return stats
}

func (s *Service) cases(
	ctx context.Context,
	name string,
	limit int,
	query func(context.Context, int) ([]voc.CaseRecord, error),
	fallback []CaseView,
) []CaseView {
	key := fmt.Sprintf("%s:%d", name, limit)
	if cached, ok := s.cached(key); ok {
		return cached.([]CaseView)
	}

	records, err := query(ctx, limit)
	if err != nil {
		log.Error().Err(err).Str("query", name).Msg("Failed to load cases, serving fallback")
		if len(fallback) > limit {
			return fallback[:limit]
		}
		return fallback
	}

	views := make([]CaseView, len(records))
	for i, record := range records {
		views[i] = publicView(record)
	}

	s.store(key, views)
	return views
}

func (s *Service) cached(key string) (interface{}, bool) {
	raw, ok := s.cache.Load(key)
	if !ok {
		return nil, false
	}
	entry := raw.(cacheEntry)
	if time.Since(entry.timestamp) > s.ttl {
		s.cache.Delete(key)
		return nil, false
	}
	return entry.value, true
}

func (s *Service) store(key string, value interface{}) {
	s.cache.Store(key, cacheEntry{value: value, timestamp: time.Now()})
}

func publicView(record voc.CaseRecord) CaseView {
	return CaseView{
		RiderName:        normalize.FormatRiderName(record.RiderID),
		RiderType:        record.RiderType,
		VisitPurpose:     record.VisitPurpose,
		MainContent:      record.MainContent,
		ActionStatus:     record.ActionStatus,
		ActionContent:    record.ActionContent,
		RiderFeedback:    record.RiderFeedback,
		StatusUpdateDate: record.StatusUpdateDate,
		ReferenceLink:    record.ReferenceLink,
	}
}
