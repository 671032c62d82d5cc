package analytics

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/accident-analytics/internal/domain"
)

// dbscan labels every record with a cluster id (0..k-1 in discovery order) or
// domain.NoiseCluster. Distance is Euclidean in degree space; eps is given in
// degrees. A record is a core point if its eps-neighborhood, itself included,
// holds at least minSamples records. Border points join the first cluster
// that reaches them.
//
// Neighborhood lookups go through an r-tree index, so the common case stays
// near O(n log n) instead of the naive O(n^2) scan.
func dbscan(records []domain.AccidentRecord, eps float64, minSamples int) []int {
	labels := make([]int, len(records))
	for i := range labels {
		labels[i] = domain.NoiseCluster
	}

	tree := rtreego.NewTree(2, 25, 50)
	for i, r := range records {
		tree.Insert(&treeItem{
			rect:  rtreego.Point{r.Latitude, r.Longitude}.ToRect(eps),
			index: i,
		})
	}

	visited := make([]bool, len(records))
	clusterID := 0

	for i := range records {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := regionQuery(records, tree, i, eps)
		if len(neighbors) < minSamples {
			continue // noise, unless a later cluster claims it as a border point
		}

		labels[i] = clusterID
		seeds := neighbors
		for j := 0; j < len(seeds); j++ {
			idx := seeds[j]
			if !visited[idx] {
				visited[idx] = true
				next := regionQuery(records, tree, idx, eps)
				if len(next) >= minSamples {
					seeds = append(seeds, next...)
				}
			}
			if labels[idx] == domain.NoiseCluster {
				labels[idx] = clusterID
			}
		}
		clusterID++
	}

	return labels
}

type treeItem struct {
	rect  rtreego.Rect
	index int
}

func (t *treeItem) Bounds() rtreego.Rect {
	return t.rect
}

// regionQuery returns the indices of all records within eps of records[idx],
// including idx itself. The r-tree narrows candidates to the bounding square;
// the exact circle check runs on that shortlist.
func regionQuery(records []domain.AccidentRecord, tree *rtreego.Rtree, idx int, eps float64) []int {
	rect := rtreego.Point{records[idx].Latitude, records[idx].Longitude}.ToRect(eps)
	candidates := tree.SearchIntersect(rect)

	neighbors := make([]int, 0, len(candidates))
	for _, obj := range candidates {
		item := obj.(*treeItem)
		r := records[item.index]
		d := math.Hypot(records[idx].Latitude-r.Latitude, records[idx].Longitude-r.Longitude)
		if d <= eps {
			neighbors = append(neighbors, item.index)
		}
	}
	return neighbors
}
