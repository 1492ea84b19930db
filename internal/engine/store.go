package engine

import "popexplorer/internal/models"

// ColumnStore holds the country table in Struct-of-Arrays format.
// Row i of every column belongs to the same country, in file order.
type ColumnStore struct {
	// Data Columns (Flat Arrays)
	Names       []string
	Populations []int64
	Changes     []float64

	// Dictionary Encoded IDs (0..N)
	ContinentIDs []int32

	// Dictionary (ID -> String)
	ContinentDict []string
}

// Len returns the number of country rows.
func (cs *ColumnStore) Len() int {
	return len(cs.Names)
}

// Row rebuilds the record at row i.
func (cs *ColumnStore) Row(i int) models.Record {
	return models.Record{
		Name:       cs.Names[i],
		Continent:  cs.ContinentDict[cs.ContinentIDs[i]],
		Population: cs.Populations[i],
		Change:     cs.Changes[i],
	}
}
