package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/internal/domain/providers"
	"github.com/kezv166-web/medicare/pkg/config"
)

type stubCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *stubCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *stubCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func testDiscoveryConfig() config.DiscoveryConfig {
	return config.DiscoveryConfig{
		LiveTimeout:        2 * time.Second,
		DefaultRadiusM:     5000,
		ResultCacheSeconds: 60,
	}
}

func newTestDiscovery(cache providers.CacheProvider, provs ...providers.FacilityProvider) *DiscoveryService {
	resolver := NewLocationResolverService(&stubGeocoder{}, nil)
	reports := NewReportService(newStubReportRepo())
	return NewDiscoveryService(
		provs, resolver, NewMergeService(), NewRankingService(), reports,
		cache, testDiscoveryConfig(),
	)
}

func delhiCriteria() *entities.SearchCriteria {
	return &entities.SearchCriteria{
		Location:  &entities.Coordinate{Latitude: 28.6139, Longitude: 77.2090},
		Type:      entities.TypeFilterAll,
		Specialty: entities.SpecialtyFilterAll,
		SortBy:    entities.SortByDistance,
	}
}

func TestDiscoverLiveSuccess(t *testing.T) {
	live := &stubFacilityProvider{
		source: providers.DataSourceLive,
		fn: func(ctx context.Context, query providers.FacilityQuery) ([]*entities.Facility, error) {
			assert.Equal(t, 5000, query.RadiusMeters, "zero radius defaults from config")
			return []*entities.Facility{
				namedFacility("far", "Far Hospital", 28.70, 77.30),
				namedFacility("near", "Near Hospital", 28.6140, 77.2091),
			}, nil
		},
	}
	svc := newTestDiscovery(nil, live)

	result, err := svc.DiscoverAndRank(context.Background(), delhiCriteria())
	require.NoError(t, err)

	assert.Equal(t, providers.DataSourceLive, result.Source)
	assert.Empty(t, result.Warning)
	require.Len(t, result.Facilities, 2)
	assert.Equal(t, "near", result.Facilities[0].ID, "results sorted by distance")
	require.NotNil(t, result.Facilities[0].Report, "every result carries a report")
}

func TestDiscoverFallsBackWithWarning(t *testing.T) {
	live := &stubFacilityProvider{
		source: providers.DataSourceLive,
		fn: func(ctx context.Context, query providers.FacilityQuery) ([]*entities.Facility, error) {
			return nil, errors.New("connection refused")
		},
	}
	fallback := &stubFacilityProvider{
		source: providers.DataSourceFallback,
		fn: func(ctx context.Context, query providers.FacilityQuery) ([]*entities.Facility, error) {
			return []*entities.Facility{namedFacility("f1", "Bundled Hospital", 28.61, 77.20)}, nil
		},
	}
	svc := newTestDiscovery(nil, live, fallback)

	result, err := svc.DiscoverAndRank(context.Background(), delhiCriteria())
	require.NoError(t, err)

	assert.Equal(t, providers.DataSourceFallback, result.Source)
	assert.NotEmpty(t, result.Warning)
	require.Len(t, result.Facilities, 1)
}

func TestDiscoverAllProvidersFail(t *testing.T) {
	failing := &stubFacilityProvider{
		source: providers.DataSourceLive,
		fn: func(ctx context.Context, query providers.FacilityQuery) ([]*entities.Facility, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newTestDiscovery(nil, failing)

	_, err := svc.DiscoverAndRank(context.Background(), delhiCriteria())
	assert.Error(t, err)
}

func TestDiscoverInvalidSortKeyFailsFast(t *testing.T) {
	called := false
	live := &stubFacilityProvider{
		source: providers.DataSourceLive,
		fn: func(ctx context.Context, query providers.FacilityQuery) ([]*entities.Facility, error) {
			called = true
			return nil, nil
		},
	}
	svc := newTestDiscovery(nil, live)

	criteria := delhiCriteria()
	criteria.SortBy = entities.SortKey("popularity")

	_, err := svc.DiscoverAndRank(context.Background(), criteria)
	assert.Error(t, err)
	assert.False(t, called, "providers must not be called with invalid criteria")
}

func TestDiscoverServesCachedFetch(t *testing.T) {
	calls := 0
	live := &stubFacilityProvider{
		source: providers.DataSourceLive,
		fn: func(ctx context.Context, query providers.FacilityQuery) ([]*entities.Facility, error) {
			calls++
			return []*entities.Facility{namedFacility("f1", "Apollo Hospital", 28.61, 77.20)}, nil
		},
	}
	svc := newTestDiscovery(newStubCache(), live)

	_, err := svc.DiscoverAndRank(context.Background(), delhiCriteria())
	require.NoError(t, err)
	_, err = svc.DiscoverAndRank(context.Background(), delhiCriteria())
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second identical search is served from cache")
}

func TestStaleDiscoveryDoesNotOverwriteNewer(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	provider := &stubFacilityProvider{
		source: providers.DataSourceLive,
		fn: func(ctx context.Context, query providers.FacilityQuery) ([]*entities.Facility, error) {
			if query.RadiusMeters == 1111 {
				close(firstStarted)
				<-releaseFirst
				return []*entities.Facility{namedFacility("old", "Old Search", 28.61, 77.20)}, nil
			}
			return []*entities.Facility{namedFacility("new", "New Search", 28.61, 77.20)}, nil
		},
	}
	svc := newTestDiscovery(nil, provider)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		criteria := delhiCriteria()
		criteria.RadiusMeters = 1111
		_, err := svc.DiscoverAndRank(context.Background(), criteria)
		assert.NoError(t, err)
	}()

	<-firstStarted

	criteria := delhiCriteria()
	criteria.RadiusMeters = 2222
	result, err := svc.DiscoverAndRank(context.Background(), criteria)
	require.NoError(t, err)
	require.Len(t, result.Facilities, 1)
	assert.Equal(t, "new", result.Facilities[0].ID)

	close(releaseFirst)
	wg.Wait()

	current := svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, "new", current.Facilities[0].ID,
		"a search finishing late must not replace a newer search's results")
}
