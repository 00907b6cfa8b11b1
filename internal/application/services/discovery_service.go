package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/internal/domain/providers"
	"github.com/kezv166-web/medicare/pkg/config"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

// fallbackWarning is surfaced to callers when live discovery failed and
// results came from the bundled datasets instead.
const fallbackWarning = "live facility data unavailable; showing bundled offline results"

// DiscoveryResult is the outcome of one discovery request.
type DiscoveryResult struct {
	Facilities []*entities.Facility `json:"facilities"`
	Source     providers.DataSource `json:"source"`
	Warning    string               `json:"warning,omitempty"`
}

// cachedFetch is the cache representation of one provider fetch, stored
// before merge so community reports are always re-applied fresh.
type cachedFetch struct {
	Facilities []*entities.Facility `json:"facilities"`
	Source     providers.DataSource `json:"source"`
	Warning    string               `json:"warning,omitempty"`
}

// DiscoveryService runs the discovery pipeline: resolve the query
// location, fetch facilities from the first provider that answers, merge
// in community reports, then filter and sort. Providers are tried in
// priority order; a live failure degrades to the fallback dataset with a
// warning rather than an error.
//
// The service also keeps the most recent completed result. Each request
// claims a generation number at the start; only the newest generation may
// publish, so a slow request finishing late never overwrites results from
// a newer search.
type DiscoveryService struct {
	providers []providers.FacilityProvider
	resolver  *LocationResolverService
	merger    *MergeService
	ranker    *RankingService
	reports   *ReportService
	cache     providers.CacheProvider
	cfg       config.DiscoveryConfig

	gen atomic.Uint64

	mu         sync.Mutex
	current    *DiscoveryResult
	currentGen uint64
}

// NewDiscoveryService creates a new discovery service. The providers slice
// is the priority order; cache may be nil to disable result caching.
func NewDiscoveryService(
	facilityProviders []providers.FacilityProvider,
	resolver *LocationResolverService,
	merger *MergeService,
	ranker *RankingService,
	reports *ReportService,
	cache providers.CacheProvider,
	cfg config.DiscoveryConfig,
) *DiscoveryService {
	return &DiscoveryService{
		providers: facilityProviders,
		resolver:  resolver,
		merger:    merger,
		ranker:    ranker,
		reports:   reports,
		cache:     cache,
		cfg:       cfg,
	}
}

// DiscoverAndRank executes one full discovery request.
func (s *DiscoveryService) DiscoverAndRank(ctx context.Context, criteria *entities.SearchCriteria) (*DiscoveryResult, error) {
	gen := s.gen.Add(1)

	if criteria.RadiusMeters <= 0 {
		criteria.RadiusMeters = s.cfg.DefaultRadiusM
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	center, err := s.resolver.Resolve(ctx, criteria.Location, criteria.Query)
	if err != nil {
		return nil, err
	}

	fetch, err := s.fetch(ctx, *center, criteria)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.reports.Snapshot(ctx)
	if err != nil {
		// Discovery still has value without community overlays.
		log.Warn().Err(err).Msg("report snapshot unavailable, merging without community reports")
		snapshot = map[string]*entities.CommunityReport{}
	}

	merged := s.merger.Merge(*center, fetch.Facilities, snapshot)

	ranked, err := s.ranker.Apply(merged, criteria)
	if err != nil {
		return nil, err
	}

	result := &DiscoveryResult{
		Facilities: ranked,
		Source:     fetch.Source,
		Warning:    fetch.Warning,
	}
	s.publish(gen, result)

	return result, nil
}

// Current returns the most recent published result, or nil before the
// first discovery completes.
func (s *DiscoveryService) Current() *DiscoveryResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *DiscoveryService) publish(gen uint64, result *DiscoveryResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= s.currentGen {
		log.Debug().Uint64("generation", gen).Uint64("current", s.currentGen).
			Msg("discarding superseded discovery result")
		return
	}
	s.currentGen = gen
	s.current = result
}

// fetch tries the providers in priority order and returns the first
// successful result set. Live failures are logged and demoted to a
// warning when a later provider answers.
func (s *DiscoveryService) fetch(ctx context.Context, center entities.Coordinate, criteria *entities.SearchCriteria) (*cachedFetch, error) {
	key := s.cacheKey(center, criteria)
	if cached := s.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	query := providers.FacilityQuery{
		Center:       center,
		RadiusMeters: criteria.RadiusMeters,
		TypeFilter:   criteria.Type,
	}

	var (
		lastErr  error
		degraded bool
	)
	for _, provider := range s.providers {
		callCtx := ctx
		if provider.Source() == providers.DataSourceLive && s.cfg.LiveTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, s.cfg.LiveTimeout)
			defer cancel()
		}

		facilities, err := provider.Nearby(callCtx, query)
		if err != nil {
			log.Warn().Err(err).Str("source", string(provider.Source())).
				Msg("facility provider failed, trying next")
			lastErr = err
			degraded = true
			continue
		}

		fetch := &cachedFetch{
			Facilities: facilities,
			Source:     provider.Source(),
		}
		if degraded && provider.Source() == providers.DataSourceFallback {
			fetch.Warning = fallbackWarning
		}

		s.toCache(ctx, key, fetch)
		return fetch, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, apperrors.NewInternalError("no facility providers configured", nil)
}

func (s *DiscoveryService) cacheKey(center entities.Coordinate, criteria *entities.SearchCriteria) string {
	return fmt.Sprintf("discover:v1:%.4f:%.4f:%d:%s",
		center.Latitude, center.Longitude, criteria.RadiusMeters, criteria.Type)
}

func (s *DiscoveryService) fromCache(ctx context.Context, key string) *cachedFetch {
	if s.cache == nil || s.cfg.ResultCacheSeconds <= 0 {
		return nil
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil
	}

	var fetch cachedFetch
	if err := json.Unmarshal(data, &fetch); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("dropping undecodable cached discovery entry")
		return nil
	}
	return &fetch
}

func (s *DiscoveryService) toCache(ctx context.Context, key string, fetch *cachedFetch) {
	if s.cache == nil || s.cfg.ResultCacheSeconds <= 0 {
		return
	}

	data, err := json.Marshal(fetch)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cfg.ResultCacheSeconds); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache discovery result")
	}
}
