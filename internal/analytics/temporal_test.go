package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accident-analytics/internal/analytics"
	"github.com/accident-analytics/internal/domain"
)

func temporalRecord(year, month, hour int, weekday string) domain.AccidentRecord {
	return domain.AccidentRecord{
		Latitude:  47.37,
		Longitude: 8.54,
		Severity:  domain.SeverityLight,
		Canton:    "ZH",
		Year:      year,
		Month:     month,
		Hour:      hour,
		Weekday:   weekday,
	}
}

func TestTemporal_Distributions(t *testing.T) {
	records := []domain.AccidentRecord{
		temporalRecord(2021, 6, 8, "Monday"),
		temporalRecord(2021, 6, 8, "Monday"),
		temporalRecord(2021, 6, 17, "Friday"),
		temporalRecord(2022, 1, 8, "Monday"),
	}

	stats := analytics.Temporal(records)

	assert.Equal(t, 3, stats.MonthlyDistribution[6])
	assert.Equal(t, 1, stats.MonthlyDistribution[1])
	assert.Equal(t, 6, stats.PeakMonth)
	assert.Equal(t, 1, stats.LowestMonth)

	assert.Equal(t, 8, stats.PeakHour)
	assert.Equal(t, 17, stats.SafestHour)

	assert.Equal(t, "Monday", stats.PeakWeekday)
	assert.Equal(t, "Friday", stats.SafestWeekday)
}

func TestTemporal_YearlyTrend(t *testing.T) {
	var records []domain.AccidentRecord
	counts := map[int]int{2020: 10, 2021: 20, 2022: 30}
	for year, n := range counts {
		for i := 0; i < n; i++ {
			records = append(records, temporalRecord(year, 5, 10, "Tuesday"))
		}
	}

	stats := analytics.Temporal(records)

	assert.Equal(t, "increasing", stats.YearlyTrend)
	assert.InDelta(t, 10.0, stats.TrendSlope, 1e-9)
}

func TestTemporal_SingleYearHasNoTrend(t *testing.T) {
	records := []domain.AccidentRecord{temporalRecord(2022, 5, 10, "Tuesday")}

	stats := analytics.Temporal(records)

	assert.Empty(t, stats.YearlyTrend)
	assert.Zero(t, stats.TrendSlope)
}

func TestSeasonal(t *testing.T) {
	winter := temporalRecord(2022, 12, 10, "Monday")
	winter2 := temporalRecord(2022, 1, 10, "Monday")
	summer := temporalRecord(2022, 7, 10, "Monday")
	summer.InvolvesBicycle = true
	summer.Severity = domain.SeveritySevere

	stats := analytics.Seasonal([]domain.AccidentRecord{winter, winter2, summer})

	assert.Equal(t, 2, stats.AccidentCounts[domain.SeasonWinter])
	assert.Equal(t, 1, stats.AccidentCounts[domain.SeasonSummer])
	assert.Equal(t, 1, stats.BicycleBySeason[domain.SeasonSummer])
	assert.Equal(t, 1, stats.SeverityBySeason[domain.SeasonSummer][domain.SeveritySevere])
	assert.Equal(t, 2, stats.SeverityBySeason[domain.SeasonWinter][domain.SeverityLight])
}

func TestYearOverYear(t *testing.T) {
	var records []domain.AccidentRecord
	for i := 0; i < 10; i++ {
		records = append(records, temporalRecord(2021, 4, 9, "Wednesday"))
	}
	for i := 0; i < 15; i++ {
		r := temporalRecord(2022, 4, 9, "Wednesday")
		if i < 3 {
			r.InvolvesBicycle = true
		}
		if i == 0 {
			r.Severity = domain.SeverityFatal
		}
		records = append(records, r)
	}

	trends := analytics.YearOverYear(records)

	assert.Equal(t, 10, trends.YearlyCounts[2021])
	assert.Equal(t, 15, trends.YearlyCounts[2022])
	assert.InDelta(t, 50.0, trends.YearlyPctChange[2022], 1e-9)
	assert.Equal(t, 3, trends.BicycleYearly[2022])
	assert.Equal(t, 1, trends.FatalYearly[2022])
}

func TestMonthlySeries(t *testing.T) {
	var records []domain.AccidentRecord
	addMonth := func(year, month, n int) {
		for i := 0; i < n; i++ {
			records = append(records, temporalRecord(year, month, 9, "Thursday"))
		}
	}
	addMonth(2022, 11, 8)
	addMonth(2022, 12, 10)
	addMonth(2023, 1, 5)

	trend := analytics.MonthlySeries(records, analytics.MetricTotal)
	require.NotNil(t, trend)

	assert.Equal(t, []string{"2022-11", "2022-12", "2023-01"}, trend.MonthlyLabels)
	assert.Equal(t, []int{8, 10, 5}, trend.MonthlyValues)
	assert.Equal(t, 5, trend.CurrentValue)
	assert.Equal(t, 10, trend.PreviousValue)
	assert.Equal(t, -5, trend.Delta)
	assert.InDelta(t, -50.0, trend.DeltaPct, 1e-9)
}

func TestMonthlySeries_MetricSelection(t *testing.T) {
	bike := temporalRecord(2023, 2, 9, "Thursday")
	bike.InvolvesBicycle = true
	fatal := temporalRecord(2023, 2, 9, "Thursday")
	fatal.Severity = domain.SeverityFatal

	records := []domain.AccidentRecord{bike, fatal}

	bikeTrend := analytics.MonthlySeries(records, analytics.MetricBicycle)
	require.NotNil(t, bikeTrend)
	assert.Equal(t, []int{1}, bikeTrend.MonthlyValues)

	fatalTrend := analytics.MonthlySeries(records, analytics.MetricFatal)
	require.NotNil(t, fatalTrend)
	assert.Equal(t, []int{1}, fatalTrend.MonthlyValues)

	pedTrend := analytics.MonthlySeries(records, analytics.MetricPedestrian)
	assert.Nil(t, pedTrend)
}
