package engine

import (
	"sort"

	"popexplorer/internal/models"
)

type aggStats struct {
	Pop       int64
	Countries int
}

// rankByPopulation returns row indexes ordered by population, largest first.
// The sort is stable so equal populations keep their row order.
func (cs *ColumnStore) rankByPopulation() []int {
	order := make([]int, cs.Len())
	for i := range order {
		order[i] = i
	}
	pops := cs.Populations
	sort.SliceStable(order, func(i, j int) bool { return pops[order[i]] > pops[order[j]] })
	return order
}

// Aggregate builds the dashboard summary. topN is capped at the row count.
func (cs *ColumnStore) Aggregate(topN int) *models.Summary {
	// 1. Per continent totals, array indexed by dictionary ID
	stats := make([]aggStats, len(cs.ContinentDict))

	var world int64
	growIdx, shrinkIdx := -1, -1
	for i, cid := range cs.ContinentIDs {
		pop := cs.Populations[i]
		stats[cid].Pop += pop
		stats[cid].Countries++
		world += pop

		if growIdx == -1 || cs.Changes[i] > cs.Changes[growIdx] {
			growIdx = i
		}
		if shrinkIdx == -1 || cs.Changes[i] < cs.Changes[shrinkIdx] {
			shrinkIdx = i
		}
	}

	// 2. Build Result
	data := &models.Summary{
		Countries:       cs.Len(),
		WorldPopulation: world,
		TopCountries:    make([]string, 0),
		Continents:      make([]models.ContinentStat, 0, len(stats)),
	}

	for cid, st := range stats {
		if st.Countries == 0 {
			continue
		}
		var share float64
		if world > 0 {
			share = float64(st.Pop) / float64(world) * 100
		}
		data.Continents = append(data.Continents, models.ContinentStat{
			Continent:  cs.ContinentDict[cid],
			Population: st.Pop,
			Countries:  st.Countries,
			Share:      share,
		})
	}
	// Sort Continents
	sort.SliceStable(data.Continents, func(i, j int) bool {
		return data.Continents[i].Population > data.Continents[j].Population
	})

	// Top Countries
	if topN > cs.Len() {
		topN = cs.Len()
	}
	for _, i := range cs.rankByPopulation()[:max(topN, 0)] {
		data.TopCountries = append(data.TopCountries, cs.Names[i])
	}

	if growIdx >= 0 {
		grow, shrink := cs.Row(growIdx), cs.Row(shrinkIdx)
		data.FastestGrowing = &grow
		data.FastestShrink = &shrink
	}

	return data
}

// Summary aggregates the loaded dataset.
func (s *Service) Summary(topN int) *models.Summary {
	return s.store.Aggregate(topN)
}
