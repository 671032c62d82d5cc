package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/accident-analytics/internal/analytics"
	"github.com/accident-analytics/internal/domain"
)

func TestSummarize(t *testing.T) {
	var records []domain.AccidentRecord
	add := func(canton, roadType string, severity domain.Severity, year int, bike bool) {
		records = append(records, domain.AccidentRecord{
			Latitude:        47.0,
			Longitude:       8.0,
			Severity:        severity,
			AccidentType:    "Collision",
			RoadType:        roadType,
			Canton:          canton,
			Year:            year,
			InvolvesBicycle: bike,
		})
	}
	add("ZH", "Principal road", domain.SeverityLight, 2020, true)
	add("ZH", "Principal road", domain.SeverityLight, 2021, true)
	add("ZH", "Minor road", domain.SeveritySevere, 2022, false)
	add("BE", "Motorway", domain.SeverityFatal, 2023, false)

	stats := analytics.Summarize(records)

	assert.Equal(t, 4, stats.TotalAccidents)
	assert.Equal(t, 2, stats.UniqueCantons)
	assert.Equal(t, 2020, stats.StartYear)
	assert.Equal(t, 2023, stats.EndYear)
	assert.Equal(t, 2, stats.SeverityDistribution[domain.SeverityLight])
	assert.Equal(t, 1, stats.SeverityDistribution[domain.SeverityFatal])
	assert.Equal(t, 2, stats.RoadTypeDistribution["Principal road"])
	assert.Equal(t, 2, stats.BicycleAccidents)
	assert.InDelta(t, 50.0, stats.BicyclePercentage, 1e-9)

	// top cantons ordered by count desc
	assert.Equal(t, domain.LabelCount{Label: "ZH", Count: 3}, stats.TopCantons[0])
	assert.Equal(t, domain.LabelCount{Label: "BE", Count: 1}, stats.TopCantons[1])
}

func TestSummarize_Empty(t *testing.T) {
	stats := analytics.Summarize(nil)
	assert.Zero(t, stats.TotalAccidents)
	assert.Empty(t, stats.SeverityDistribution)
}

func TestRiskMetrics(t *testing.T) {
	var records []domain.AccidentRecord
	add := func(severity domain.Severity, roadType string, hour int, bike bool) {
		records = append(records, domain.AccidentRecord{
			Severity:        severity,
			RoadType:        roadType,
			Hour:            hour,
			InvolvesBicycle: bike,
		})
	}
	// motorway: 1 fatal of 2 -> 50% fatal rate
	add(domain.SeverityFatal, "Motorway", 8, true)
	add(domain.SeverityLight, "Motorway", 8, true)
	// minor road: no fatal
	add(domain.SeveritySevere, "Minor road", 17, false)
	add(domain.SeverityLight, "Minor road", 17, false)

	metrics := analytics.RiskMetrics(records)

	assert.InDelta(t, 25.0, metrics.FatalAccidentRate, 1e-9)
	assert.InDelta(t, 25.0, metrics.SevereAccidentRate, 1e-9)
	assert.InDelta(t, 50.0, metrics.RoadTypeFatalRates["Motorway"], 1e-9)
	assert.InDelta(t, 0.0, metrics.RoadTypeFatalRates["Minor road"], 1e-9)
	assert.InDelta(t, 50.0, metrics.HourlySevereRates[8], 1e-9)
	assert.InDelta(t, 50.0, metrics.HourlySevereRates[17], 1e-9)
	assert.InDelta(t, 50.0, metrics.BicycleFatalRate, 1e-9)
	assert.Equal(t, []int{8}, metrics.BicyclePeakHours)
}

func TestRiskMetrics_Empty(t *testing.T) {
	metrics := analytics.RiskMetrics(nil)
	assert.Zero(t, metrics.FatalAccidentRate)
	assert.Empty(t, metrics.RoadTypeFatalRates)
	assert.Nil(t, metrics.BicyclePeakHours)
}
