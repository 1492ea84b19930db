package engine

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// --- 1. FIELD PARSERS ---

// ParseNumber parses "1,234,567" -> 1234567. Surrounding whitespace is ignored.
func ParseNumber(text string) (int64, error) {
	n, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(text), ",", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, text)
	}
	return n, nil
}

// ParseChange parses "+1.23%" -> 1.23 and "-0.45%" -> -0.45
func ParseChange(text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.Trim(strings.TrimSpace(text), "+%"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, text)
	}
	return f, nil
}

func shortRow(lineNo int) error {
	return fmt.Errorf("line %d: %w", lineNo, ErrShortRow)
}

// --- 2. MAIN LOADER ---

// Load parses a tab separated country table into a ColumnStore.
// The first line is a header and is skipped. Blank lines are ignored.
func Load(raw string) (*ColumnStore, error) {
	start := time.Now()

	// Skip header row
	_, content, _ := strings.Cut(raw, "\n")

	rows := strings.Count(content, "\n") + 1
	store := &ColumnStore{
		Names:        make([]string, 0, rows),
		Populations:  make([]int64, 0, rows),
		Changes:      make([]float64, 0, rows),
		ContinentIDs: make([]int32, 0, rows),
	}
	continentIDs := make(map[string]int32)

	lineNo := 1
	for content != "" {
		var line string
		line, content, _ = strings.Cut(content, "\n")
		lineNo++

		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Unrolled Field Skipping, the layout is fixed.
		var field string
		var rest = line
		var found bool

		// 0: Rank (SKIP)
		if _, rest, found = strings.Cut(rest, "\t"); !found {
			return nil, shortRow(lineNo)
		}

		// 1: Country (KEEP)
		if field, rest, found = strings.Cut(rest, "\t"); !found {
			return nil, shortRow(lineNo)
		}
		name := strings.TrimSpace(field)

		// 2: Continent (KEEP)
		if field, rest, found = strings.Cut(rest, "\t"); !found {
			return nil, shortRow(lineNo)
		}
		continent := strings.TrimSpace(field)

		// 3: Region (SKIP)
		if _, rest, found = strings.Cut(rest, "\t"); !found {
			return nil, shortRow(lineNo)
		}

		// 4: Previous year population (SKIP)
		if _, rest, found = strings.Cut(rest, "\t"); !found {
			return nil, shortRow(lineNo)
		}

		// 5: Population (KEEP)
		if field, rest, found = strings.Cut(rest, "\t"); !found {
			return nil, shortRow(lineNo)
		}
		pop, err := ParseNumber(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("line %d: population: %w", lineNo, err)
		}

		// 6: Change (KEEP - last column we read, anything after is ignored)
		field, _, _ = strings.Cut(rest, "\t")
		change, err := ParseChange(field)
		if err != nil {
			return nil, fmt.Errorf("line %d: change: %w", lineNo, err)
		}

		id, ok := continentIDs[continent]
		if !ok {
			id = int32(len(store.ContinentDict))
			store.ContinentDict = append(store.ContinentDict, continent)
			continentIDs[continent] = id
		}

		store.Names = append(store.Names, name)
		store.ContinentIDs = append(store.ContinentIDs, id)
		store.Populations = append(store.Populations, pop)
		store.Changes = append(store.Changes, change)
	}

	slog.Debug("dataset loaded", "rows", store.Len(), "continents", len(store.ContinentDict), "took", time.Since(start))
	return store, nil
}
