package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/accident-analytics/internal/domain"
	"github.com/accident-analytics/internal/pkg/utils"
)

var (
	// ErrInvalidEpsKm is returned for a non-positive cluster distance.
	ErrInvalidEpsKm = errors.New("eps_km must be positive")
	// ErrInvalidMinSamples is returned for a non-positive minimum cluster size.
	ErrInvalidMinSamples = errors.New("min_samples must be positive")
)

// IdentifyBlackspots clusters accident locations with DBSCAN and derives one
// summary per cluster, ordered by descending risk score.
//
// epsKm is converted to degrees via the 111 km/degree approximation before
// clustering. Records with coordinates outside the Swiss bounding box are
// excluded up front. An empty or undersized input yields an empty result and
// no error; invalid parameters are rejected, never clamped.
//
// Ties in the "most common" canton and accident type are broken by the
// lexically smallest value so that repeated runs over identical input produce
// identical summaries.
func IdentifyBlackspots(records []domain.AccidentRecord, epsKm float64, minSamples int) ([]domain.BlackspotSummary, error) {
	if epsKm <= 0 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidEpsKm, epsKm)
	}
	if minSamples <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMinSamples, minSamples)
	}

	located := make([]domain.AccidentRecord, 0, len(records))
	for _, r := range records {
		if r.HasValidCoordinates() {
			located = append(located, r)
		}
	}

	if len(located) == 0 || len(located) < minSamples {
		return []domain.BlackspotSummary{}, nil
	}

	labels := dbscan(located, utils.KmToDegrees(epsKm), minSamples)

	clusters := make(map[int]*clusterAgg)
	maxID := -1
	for i, label := range labels {
		if label == domain.NoiseCluster {
			continue
		}
		agg, ok := clusters[label]
		if !ok {
			agg = newClusterAgg()
			clusters[label] = agg
		}
		agg.add(located[i])
		if label > maxID {
			maxID = label
		}
	}

	// Cluster ids are assigned in discovery order, so walking 0..maxID keeps
	// that order ahead of the stable risk sort.
	summaries := make([]domain.BlackspotSummary, 0, len(clusters))
	for id := 0; id <= maxID; id++ {
		agg, ok := clusters[id]
		if !ok {
			continue
		}
		summaries = append(summaries, agg.summary(id))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].RiskScore > summaries[j].RiskScore
	})

	return summaries, nil
}

type clusterAgg struct {
	sumLat, sumLon float64
	count          int
	fatal          int
	severe         int
	light          int
	bicycle        int
	cantons        map[string]int
	types          map[string]int
}

func newClusterAgg() *clusterAgg {
	return &clusterAgg{
		cantons: make(map[string]int),
		types:   make(map[string]int),
	}
}

func (a *clusterAgg) add(r domain.AccidentRecord) {
	a.sumLat += r.Latitude
	a.sumLon += r.Longitude
	a.count++

	switch r.Severity {
	case domain.SeverityFatal:
		a.fatal++
	case domain.SeveritySevere:
		a.severe++
	case domain.SeverityLight:
		a.light++
	}

	if r.InvolvesBicycle {
		a.bicycle++
	}

	a.cantons[r.Canton]++
	a.types[r.AccidentType]++
}

func (a *clusterAgg) summary(id int) domain.BlackspotSummary {
	n := float64(a.count)
	return domain.BlackspotSummary{
		ClusterID:      id,
		CenterLat:      a.sumLat / n,
		CenterLon:      a.sumLon / n,
		AccidentCount:  a.count,
		FatalCount:     a.fatal,
		SevereCount:    a.severe,
		LightCount:     a.light,
		BicycleCount:   a.bicycle,
		Canton:         mostCommon(a.cantons),
		MostCommonType: mostCommon(a.types),
		RiskScore: a.fatal*domain.RiskWeightFatal +
			a.severe*domain.RiskWeightSevere +
			a.light*domain.RiskWeightLight,
	}
}

// mostCommon returns the highest-count key, ties broken lexically.
func mostCommon(counts map[string]int) string {
	best := ""
	bestCount := -1
	for value, count := range counts {
		if count > bestCount || (count == bestCount && value < best) {
			best = value
			bestCount = count
		}
	}
	return best
}
