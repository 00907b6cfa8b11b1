package places

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/internal/domain/providers"
)

func TestFallbackSelectsNearestCity(t *testing.T) {
	p := NewStaticFallbackProvider()

	tests := []struct {
		name   string
		center entities.Coordinate
		city   string
	}{
		{"near delhi", entities.Coordinate{Latitude: 28.61, Longitude: 77.20}, "delhi"},
		{"near mumbai", entities.Coordinate{Latitude: 19.10, Longitude: 72.90}, "mumbai"},
		{"near bengaluru", entities.Coordinate{Latitude: 12.90, Longitude: 77.60}, "bengaluru"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.city, p.CityFor(tt.center))
		})
	}
}

func TestFallbackNeverFails(t *testing.T) {
	p := NewStaticFallbackProvider()

	facilities, err := p.Nearby(context.Background(), providers.FacilityQuery{
		Center:       entities.Coordinate{Latitude: 28.61, Longitude: 77.20},
		RadiusMeters: 5000,
		TypeFilter:   entities.TypeFilterAll,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, facilities)

	for _, f := range facilities {
		assert.NoError(t, f.Validate())
		assert.Nil(t, f.DistanceMeters, "distance is attached at merge time, not by providers")
		assert.Nil(t, f.Report)
	}
}

func TestFallbackTypeFilter(t *testing.T) {
	p := NewStaticFallbackProvider()

	facilities, err := p.Nearby(context.Background(), providers.FacilityQuery{
		Center:       entities.Coordinate{Latitude: 28.61, Longitude: 77.20},
		RadiusMeters: 5000,
		TypeFilter:   "pharmacy",
	})
	require.NoError(t, err)
	require.Len(t, facilities, 2)
	for _, f := range facilities {
		assert.True(t, f.HasType(entities.FacilityTypePharmacy))
	}
}

func TestFallbackReturnsCopies(t *testing.T) {
	p := NewStaticFallbackProvider()
	query := providers.FacilityQuery{
		Center:     entities.Coordinate{Latitude: 28.61, Longitude: 77.20},
		TypeFilter: entities.TypeFilterAll,
	}

	first, err := p.Nearby(context.Background(), query)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := p.Nearby(context.Background(), query)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestFallbackSource(t *testing.T) {
	assert.Equal(t, providers.DataSourceFallback, NewStaticFallbackProvider().Source())
}
