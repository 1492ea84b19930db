package engine

import (
	"fmt"
	"sort"
	"sync"

	"popexplorer/internal/models"
)

// DefaultTopN is the number of countries TopN callers ask for by default.
const DefaultTopN = 5

// Service answers population queries over one loaded ColumnStore.
//
// The per-country index is built on first lookup, or explicitly with
// BuildIndex. Lookups and rebuilds are safe for concurrent use.
type Service struct {
	store *ColumnStore

	mu    sync.Mutex
	index map[string]models.Record
}

func NewService(store *ColumnStore) *Service {
	return &Service{store: store}
}

// NewServiceFromText loads raw and wraps it in a Service.
func NewServiceFromText(raw string) (*Service, error) {
	store, err := Load(raw)
	if err != nil {
		return nil, err
	}
	return NewService(store), nil
}

// Store returns the underlying column store. Callers must not modify it.
func (s *Service) Store() *ColumnStore {
	return s.store
}

// Count returns the number of country records.
func (s *Service) Count() int {
	return s.store.Len()
}

// TopN returns the names of the n most populous countries, largest first.
// Countries with equal population keep their row order.
func (s *Service) TopN(n int) ([]string, error) {
	if n < 0 || n > s.store.Len() {
		return nil, fmt.Errorf("top %d of %d: %w", n, s.store.Len(), ErrInsufficientRecords)
	}

	order := s.store.rankByPopulation()
	names := make([]string, n)
	for i := range names {
		names[i] = s.store.Names[order[i]]
	}
	return names, nil
}

// BuildIndex rebuilds the country index from every row, replacing the old one.
func (s *Service) BuildIndex() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buildIndexLocked()
}

func (s *Service) buildIndexLocked() {
	index := make(map[string]models.Record, s.store.Len())
	for i := 0; i < s.store.Len(); i++ {
		r := s.store.Row(i)
		index[r.Name] = r
	}
	s.index = index
}

// Lookup returns the record for the named country.
func (s *Service) Lookup(name string) (models.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.index) == 0 {
		s.buildIndexLocked()
	}
	r, ok := s.index[name]
	return r, ok
}

// Population returns the population of the named country.
func (s *Service) Population(name string) (int64, bool) {
	r, ok := s.Lookup(name)
	return r.Population, ok
}

// Continents returns the distinct continents in sorted order.
func (s *Service) Continents() []string {
	seen := make([]bool, len(s.store.ContinentDict))
	for _, id := range s.store.ContinentIDs {
		seen[id] = true
	}
	continents := make([]string, 0, len(seen))
	for id, ok := range seen {
		if ok {
			continents = append(continents, s.store.ContinentDict[id])
		}
	}
	sort.Strings(continents)
	return continents
}

// ContinentPopulations sums population per continent.
// Only continents with at least one country are present.
func (s *Service) ContinentPopulations() map[string]int64 {
	totals := make(map[string]int64, len(s.store.ContinentDict))
	for i, id := range s.store.ContinentIDs {
		totals[s.store.ContinentDict[id]] += s.store.Populations[i]
	}
	return totals
}
