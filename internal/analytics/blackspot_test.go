package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accident-analytics/internal/analytics"
	"github.com/accident-analytics/internal/domain"
)

func clusterRecord(lat, lon float64, severity domain.Severity) domain.AccidentRecord {
	return domain.AccidentRecord{
		Latitude:     lat,
		Longitude:    lon,
		Severity:     severity,
		AccidentType: "Collision",
		Canton:       "ZH",
		Year:         2023,
	}
}

func TestIdentifyBlackspots_EmptyAndUndersizedInput(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		spots, err := analytics.IdentifyBlackspots(nil, 0.5, 5)
		assert.NoError(t, err)
		assert.Empty(t, spots)
	})

	t.Run("fewer records than min_samples", func(t *testing.T) {
		records := []domain.AccidentRecord{
			clusterRecord(47.37, 8.54, domain.SeverityLight),
			clusterRecord(47.37, 8.54, domain.SeverityLight),
		}
		spots, err := analytics.IdentifyBlackspots(records, 0.5, 5)
		assert.NoError(t, err)
		assert.Empty(t, spots)
	})
}

func TestIdentifyBlackspots_InvalidParams(t *testing.T) {
	records := []domain.AccidentRecord{clusterRecord(47.37, 8.54, domain.SeverityLight)}

	_, err := analytics.IdentifyBlackspots(records, 0, 5)
	assert.ErrorIs(t, err, analytics.ErrInvalidEpsKm)

	_, err = analytics.IdentifyBlackspots(records, -0.5, 5)
	assert.ErrorIs(t, err, analytics.ErrInvalidEpsKm)

	_, err = analytics.IdentifyBlackspots(records, 0.5, 0)
	assert.ErrorIs(t, err, analytics.ErrInvalidMinSamples)
}

func TestIdentifyBlackspots_TightClusterWithScatteredNoise(t *testing.T) {
	var records []domain.AccidentRecord

	// 20 records within ~0.1 km of each other around Zurich main station.
	for i := 0; i < 20; i++ {
		jitter := float64(i) * 0.00004 // ~4.4 m steps
		records = append(records, clusterRecord(47.3779+jitter, 8.5403+jitter, domain.SeverityLight))
	}

	// 5 scattered records, each more than 5 km from everything else.
	for i := 0; i < 5; i++ {
		offset := 0.1 * float64(i+1) // ~11 km steps
		records = append(records, clusterRecord(46.5+offset, 7.0+offset, domain.SeverityFatal))
	}

	spots, err := analytics.IdentifyBlackspots(records, 0.5, 5)
	require.NoError(t, err)

	require.Len(t, spots, 1)
	assert.Equal(t, 20, spots[0].AccidentCount)
	assert.InDelta(t, 47.3779, spots[0].CenterLat, 0.001)
	assert.InDelta(t, 8.5403, spots[0].CenterLon, 0.001)
	// the scattered fatal records are noise and must not leak into the summary
	assert.Equal(t, 0, spots[0].FatalCount)
}

func TestIdentifyBlackspots_RiskScore(t *testing.T) {
	var records []domain.AccidentRecord
	add := func(n int, severity domain.Severity) {
		for i := 0; i < n; i++ {
			records = append(records, clusterRecord(47.37, 8.54, severity))
		}
	}
	add(2, domain.SeverityFatal)
	add(3, domain.SeveritySevere)
	add(10, domain.SeverityLight)
	add(5, domain.SeverityPropertyDamage)

	spots, err := analytics.IdentifyBlackspots(records, 0.5, 5)
	require.NoError(t, err)
	require.Len(t, spots, 1)

	spot := spots[0]
	assert.Equal(t, 20, spot.AccidentCount)
	assert.Equal(t, 2, spot.FatalCount)
	assert.Equal(t, 3, spot.SevereCount)
	assert.Equal(t, 10, spot.LightCount)
	assert.Equal(t, 5*2+3*3+1*10, spot.RiskScore)
}

func TestIdentifyBlackspots_OrderedByDescendingRisk(t *testing.T) {
	var records []domain.AccidentRecord

	// low-risk cluster: 6 light accidents
	for i := 0; i < 6; i++ {
		records = append(records, clusterRecord(47.0, 8.0, domain.SeverityLight))
	}
	// high-risk cluster: 6 fatal accidents, ~55 km away
	for i := 0; i < 6; i++ {
		records = append(records, clusterRecord(47.5, 8.0, domain.SeverityFatal))
	}

	spots, err := analytics.IdentifyBlackspots(records, 0.5, 5)
	require.NoError(t, err)
	require.Len(t, spots, 2)

	for i := 1; i < len(spots); i++ {
		assert.GreaterOrEqual(t, spots[i-1].RiskScore, spots[i].RiskScore)
	}
	assert.Equal(t, 30, spots[0].RiskScore)
	assert.Equal(t, 6, spots[1].RiskScore)
}

func TestIdentifyBlackspots_Idempotent(t *testing.T) {
	var records []domain.AccidentRecord
	for i := 0; i < 15; i++ {
		records = append(records, clusterRecord(47.37+float64(i%5)*0.0001, 8.54, domain.SeverityLight))
	}
	for i := 0; i < 8; i++ {
		records = append(records, clusterRecord(46.2+float64(i%4)*0.0001, 6.14, domain.SeveritySevere))
	}

	first, err := analytics.IdentifyBlackspots(records, 0.5, 5)
	require.NoError(t, err)
	second, err := analytics.IdentifyBlackspots(records, 0.5, 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIdentifyBlackspots_RepeatedPointFormsOneCluster(t *testing.T) {
	var records []domain.AccidentRecord
	for i := 0; i < 7; i++ {
		records = append(records, clusterRecord(46.948, 7.447, domain.SeverityLight))
	}

	spots, err := analytics.IdentifyBlackspots(records, 0.1, 7)
	require.NoError(t, err)
	require.Len(t, spots, 1)
	assert.Equal(t, 7, spots[0].AccidentCount)
	assert.InDelta(t, 46.948, spots[0].CenterLat, 1e-9)
	assert.InDelta(t, 7.447, spots[0].CenterLon, 1e-9)
}

func TestIdentifyBlackspots_InvalidCoordinatesExcluded(t *testing.T) {
	var records []domain.AccidentRecord
	for i := 0; i < 6; i++ {
		records = append(records, clusterRecord(47.37, 8.54, domain.SeverityLight))
	}
	// outside the Swiss bounding box: must not join the cluster or crash
	records = append(records, clusterRecord(0, 0, domain.SeverityFatal))
	records = append(records, clusterRecord(52.52, 13.40, domain.SeverityFatal))

	spots, err := analytics.IdentifyBlackspots(records, 0.5, 5)
	require.NoError(t, err)
	require.Len(t, spots, 1)
	assert.Equal(t, 6, spots[0].AccidentCount)
	assert.Equal(t, 0, spots[0].FatalCount)
}

func TestIdentifyBlackspots_MostCommonTieBreakIsLexical(t *testing.T) {
	var records []domain.AccidentRecord
	for i := 0; i < 3; i++ {
		r := clusterRecord(47.37, 8.54, domain.SeverityLight)
		r.Canton = "ZH"
		r.AccidentType = "Skidding"
		records = append(records, r)
	}
	for i := 0; i < 3; i++ {
		r := clusterRecord(47.37, 8.54, domain.SeverityLight)
		r.Canton = "BE"
		r.AccidentType = "Collision"
		records = append(records, r)
	}

	spots, err := analytics.IdentifyBlackspots(records, 0.5, 5)
	require.NoError(t, err)
	require.Len(t, spots, 1)

	// 3-3 ties resolve to the lexically smallest value
	assert.Equal(t, "BE", spots[0].Canton)
	assert.Equal(t, "Collision", spots[0].MostCommonType)
}

func TestIdentifyBlackspots_MembersWithinReachability(t *testing.T) {
	// chain of points 0.3 km apart: each within eps of its neighbor but the
	// endpoints further than eps from each other - still one cluster via
	// chained reachability
	var records []domain.AccidentRecord
	step := 0.003 // ~0.33 km in degree space
	for i := 0; i < 6; i++ {
		records = append(records, clusterRecord(47.0+step*float64(i), 8.0, domain.SeverityLight))
	}

	spots, err := analytics.IdentifyBlackspots(records, 0.5, 3)
	require.NoError(t, err)
	require.Len(t, spots, 1)
	assert.Equal(t, 6, spots[0].AccidentCount)
}
