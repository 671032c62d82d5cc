package analytics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/accident-analytics/internal/domain"
)

// TrendMetric selects which records feed the monthly sparkline series.
type TrendMetric string

const (
	MetricTotal      TrendMetric = "total"
	MetricFatal      TrendMetric = "fatal"
	MetricBicycle    TrendMetric = "bicycle"
	MetricPedestrian TrendMetric = "pedestrian"
)

// Temporal computes the monthly/hourly/weekday/yearly distributions of the
// given records plus a linear yearly trend when at least two years are
// present. Extrema ties resolve to the smallest key.
func Temporal(records []domain.AccidentRecord) domain.TemporalStats {
	stats := domain.TemporalStats{
		MonthlyDistribution: make(map[int]int),
		HourlyDistribution:  make(map[int]int),
		WeekdayDistribution: make(map[string]int),
		YearlyDistribution:  make(map[int]int),
	}
	if len(records) == 0 {
		return stats
	}

	for _, r := range records {
		stats.MonthlyDistribution[r.Month]++
		stats.HourlyDistribution[r.Hour]++
		stats.WeekdayDistribution[r.Weekday]++
		stats.YearlyDistribution[r.Year]++
	}

	stats.PeakMonth, stats.LowestMonth = intExtrema(stats.MonthlyDistribution)
	stats.PeakHour, stats.SafestHour = intExtrema(stats.HourlyDistribution)
	stats.PeakWeekday, stats.SafestWeekday = stringExtrema(stats.WeekdayDistribution)

	if len(stats.YearlyDistribution) > 1 {
		years := sortedIntKeys(stats.YearlyDistribution)
		xs := make([]float64, len(years))
		ys := make([]float64, len(years))
		for i, y := range years {
			xs[i] = float64(y)
			ys[i] = float64(stats.YearlyDistribution[y])
		}
		_, slope := stat.LinearRegression(xs, ys, nil, false)
		stats.TrendSlope = slope
		if slope > 0 {
			stats.YearlyTrend = "increasing"
		} else {
			stats.YearlyTrend = "decreasing"
		}
	}

	return stats
}

// Seasonal buckets records into Winter/Spring/Summer/Fall.
func Seasonal(records []domain.AccidentRecord) domain.SeasonalStats {
	stats := domain.SeasonalStats{
		AccidentCounts:   make(map[string]int),
		SeverityBySeason: make(map[string]map[domain.Severity]int),
		BicycleBySeason:  make(map[string]int),
	}

	for _, r := range records {
		season := r.Season()
		if season == "" {
			continue
		}
		stats.AccidentCounts[season]++
		if stats.SeverityBySeason[season] == nil {
			stats.SeverityBySeason[season] = make(map[domain.Severity]int)
		}
		stats.SeverityBySeason[season][r.Severity]++
		if r.InvolvesBicycle {
			stats.BicycleBySeason[season]++
		}
	}

	return stats
}

// YearOverYear computes yearly totals, year-over-year percentage change and
// the bicycle/fatal yearly series.
func YearOverYear(records []domain.AccidentRecord) domain.YearOverYearTrends {
	trends := domain.YearOverYearTrends{
		YearlyCounts:  make(map[int]int),
		BicycleYearly: make(map[int]int),
		FatalYearly:   make(map[int]int),
	}

	for _, r := range records {
		trends.YearlyCounts[r.Year]++
		if r.InvolvesBicycle {
			trends.BicycleYearly[r.Year]++
		}
		if r.Severity == domain.SeverityFatal {
			trends.FatalYearly[r.Year]++
		}
	}

	years := sortedIntKeys(trends.YearlyCounts)
	if len(years) > 1 {
		trends.YearlyPctChange = make(map[int]float64, len(years)-1)
		for i := 1; i < len(years); i++ {
			prev := trends.YearlyCounts[years[i-1]]
			cur := trends.YearlyCounts[years[i]]
			if prev > 0 {
				trends.YearlyPctChange[years[i]] = float64(cur-prev) / float64(prev) * 100
			}
		}
	}

	return trends
}

// MonthlySeries builds the year-month series for one metric together with the
// current/previous month delta. Returns nil when no record matches.
func MonthlySeries(records []domain.AccidentRecord, metric TrendMetric) *domain.MonthlyTrend {
	counts := make(map[string]int)
	for _, r := range records {
		switch metric {
		case MetricFatal:
			if r.Severity != domain.SeverityFatal {
				continue
			}
		case MetricBicycle:
			if !r.InvolvesBicycle {
				continue
			}
		case MetricPedestrian:
			if !r.InvolvesPedestrian {
				continue
			}
		}
		counts[fmt.Sprintf("%04d-%02d", r.Year, r.Month)]++
	}

	if len(counts) == 0 {
		return nil
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	values := make([]int, len(labels))
	for i, label := range labels {
		values[i] = counts[label]
	}

	current := values[len(values)-1]
	previous := current
	if len(values) > 1 {
		previous = values[len(values)-2]
	}

	delta := current - previous
	deltaPct := 0.0
	if previous > 0 {
		deltaPct = math.Round(float64(delta)/float64(previous)*1000) / 10
	}

	return &domain.MonthlyTrend{
		MonthlyValues: values,
		MonthlyLabels: labels,
		CurrentValue:  current,
		PreviousValue: previous,
		Delta:         delta,
		DeltaPct:      deltaPct,
	}
}

// intExtrema returns the keys with the highest and lowest counts; ties go to
// the smallest key.
func intExtrema(counts map[int]int) (peak, lowest int) {
	first := true
	for key, count := range counts {
		if first {
			peak, lowest = key, key
			first = false
			continue
		}
		if count > counts[peak] || (count == counts[peak] && key < peak) {
			peak = key
		}
		if count < counts[lowest] || (count == counts[lowest] && key < lowest) {
			lowest = key
		}
	}
	return peak, lowest
}

func stringExtrema(counts map[string]int) (peak, lowest string) {
	first := true
	for key, count := range counts {
		if first {
			peak, lowest = key, key
			first = false
			continue
		}
		if count > counts[peak] || (count == counts[peak] && key < peak) {
			peak = key
		}
		if count < counts[lowest] || (count == counts[lowest] && key < lowest) {
			lowest = key
		}
	}
	return peak, lowest
}

func sortedIntKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
