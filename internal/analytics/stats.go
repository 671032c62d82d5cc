package analytics

import (
	"sort"

	"github.com/accident-analytics/internal/domain"
)

// Summarize computes the dashboard summary statistics over a (typically
// pre-filtered) record set.
func Summarize(records []domain.AccidentRecord) domain.SummaryStats {
	stats := domain.SummaryStats{
		SeverityDistribution: make(map[domain.Severity]int),
		RoadTypeDistribution: make(map[string]int),
	}
	if len(records) == 0 {
		return stats
	}

	cantonCounts := make(map[string]int)
	typeCounts := make(map[string]int)

	stats.StartYear = records[0].Year
	stats.EndYear = records[0].Year

	for _, r := range records {
		stats.TotalAccidents++
		stats.SeverityDistribution[r.Severity]++
		stats.RoadTypeDistribution[r.RoadType]++
		cantonCounts[r.Canton]++
		typeCounts[r.AccidentType]++

		if r.Year < stats.StartYear {
			stats.StartYear = r.Year
		}
		if r.Year > stats.EndYear {
			stats.EndYear = r.Year
		}
		if r.InvolvesBicycle {
			stats.BicycleAccidents++
		}
		if r.InvolvesPedestrian {
			stats.PedestrianAccidents++
		}
		if r.InvolvesMotorcycle {
			stats.MotorcycleAccidents++
		}
	}

	total := float64(stats.TotalAccidents)
	stats.UniqueCantons = len(cantonCounts)
	stats.BicyclePercentage = float64(stats.BicycleAccidents) / total * 100
	stats.PedestrianPercentage = float64(stats.PedestrianAccidents) / total * 100
	stats.MotorcyclePercentage = float64(stats.MotorcycleAccidents) / total * 100
	stats.TopAccidentTypes = topN(typeCounts, 5)
	stats.TopCantons = topN(cantonCounts, 10)

	return stats
}

// RiskMetrics computes severity-normalized rates across road types, hours and
// bicycle involvement. Rates are percentages of the relevant subgroup.
func RiskMetrics(records []domain.AccidentRecord) domain.RiskMetrics {
	metrics := domain.RiskMetrics{
		RoadTypeFatalRates: make(map[string]float64),
		HourlySevereRates:  make(map[int]float64),
	}
	if len(records) == 0 {
		return metrics
	}

	total := float64(len(records))
	roadTotals := make(map[string]int)
	roadFatals := make(map[string]int)
	hourTotals := make(map[int]int)
	hourSevere := make(map[int]int)
	bicycleHours := make(map[int]int)

	var fatal, severe, bicycleTotal, bicycleFatal int
	for _, r := range records {
		roadTotals[r.RoadType]++
		hourTotals[r.Hour]++

		isFatal := r.Severity == domain.SeverityFatal
		isSevere := r.Severity == domain.SeveritySevere
		if isFatal {
			fatal++
			roadFatals[r.RoadType]++
		}
		if isSevere {
			severe++
		}
		if isFatal || isSevere {
			hourSevere[r.Hour]++
		}
		if r.InvolvesBicycle {
			bicycleTotal++
			bicycleHours[r.Hour]++
			if isFatal {
				bicycleFatal++
			}
		}
	}

	metrics.FatalAccidentRate = float64(fatal) / total * 100
	metrics.SevereAccidentRate = float64(severe) / total * 100

	for road, n := range roadTotals {
		metrics.RoadTypeFatalRates[road] = float64(roadFatals[road]) / float64(n) * 100
	}
	for hour, n := range hourTotals {
		metrics.HourlySevereRates[hour] = float64(hourSevere[hour]) / float64(n) * 100
	}

	if bicycleTotal > 0 {
		metrics.BicycleFatalRate = float64(bicycleFatal) / float64(bicycleTotal) * 100
		metrics.BicyclePeakHours = topHours(bicycleHours, 3)
	}

	return metrics
}

// topN returns the n highest-count labels, ordered by count descending with
// lexical order on ties.
func topN(counts map[string]int, n int) []domain.LabelCount {
	pairs := make([]domain.LabelCount, 0, len(counts))
	for label, count := range counts {
		pairs = append(pairs, domain.LabelCount{Label: label, Count: count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Label < pairs[j].Label
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

func topHours(counts map[int]int, n int) []int {
	hours := make([]int, 0, len(counts))
	for hour := range counts {
		hours = append(hours, hour)
	}
	sort.Slice(hours, func(i, j int) bool {
		if counts[hours[i]] != counts[hours[j]] {
			return counts[hours[i]] > counts[hours[j]]
		}
		return hours[i] < hours[j]
	})
	if len(hours) > n {
		hours = hours[:n]
	}
	return hours
}
