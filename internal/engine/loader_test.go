package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "#\tCountry\tContinent\tRegion\tPop 2016\tPop 2017\tChange\n"

// scenarioTable is the three country table used across engine tests.
const scenarioTable = header +
	"1\tChina\tAsia\tEastern Asia\t1,403,500,365\t1,409,517,397\t+0.43%\n" +
	"2\tIndia\tAsia\tSouthern Asia\t1,324,171,354\t1,339,180,127\t+1.13%\n" +
	"3\tUSA\tNorth America\tNorthern America\t322,179,605\t324,459,463\t+0.71%\n"

func TestLoad(t *testing.T) {
	// 1. Run Loader
	store, err := Load(scenarioTable)
	require.NoError(t, err)

	// 2. Assertions
	require.Equal(t, 3, store.Len())
	assert.Equal(t, []string{"China", "India", "USA"}, store.Names)
	assert.Equal(t, []int64{1409517397, 1339180127, 324459463}, store.Populations)
	assert.Equal(t, []float64{0.43, 1.13, 0.71}, store.Changes)

	// Dictionary Checks
	assert.Equal(t, []string{"Asia", "North America"}, store.ContinentDict)
	assert.Equal(t, []int32{0, 0, 1}, store.ContinentIDs)
}

func TestLoadEdges(t *testing.T) {
	t.Run("header only", func(t *testing.T) {
		store, err := Load("#\tCountry")
		require.NoError(t, err)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("crlf and blank lines", func(t *testing.T) {
		raw := "h\r\n1\tFiji\tOceania\tMelanesia\t898,760\t905,502\t+0.75%\r\n\r\n"
		store, err := Load(raw)
		require.NoError(t, err)
		require.Equal(t, 1, store.Len())
		assert.Equal(t, "Fiji", store.Names[0])
		assert.Equal(t, 0.75, store.Changes[0])
	})

	t.Run("extra columns", func(t *testing.T) {
		raw := header + "1\tFiji\tOceania\tMelanesia\t898,760\t905,502\t+0.75%\tnote\n"
		store, err := Load(raw)
		require.NoError(t, err)
		assert.Equal(t, 0.75, store.Changes[0])
	})

	t.Run("short row", func(t *testing.T) {
		_, err := Load(header + "1\tFiji\tOceania\n")
		assert.ErrorIs(t, err, ErrShortRow)
		assert.ErrorContains(t, err, "line 2")
	})

	t.Run("bad population", func(t *testing.T) {
		_, err := Load(header + "1\tFiji\tOceania\tMelanesia\t1\tn/a\t+0.75%\n")
		assert.ErrorIs(t, err, ErrMalformedNumber)
	})

	t.Run("bad change", func(t *testing.T) {
		_, err := Load(header + "1\tFiji\tOceania\tMelanesia\t1\t2\tup\n")
		assert.ErrorIs(t, err, ErrMalformedNumber)
	})
}

func TestParseNumber(t *testing.T) {
	for text, want := range map[string]int64{
		"1,234,567":     1234567,
		"0":             0,
		"12":            12,
		"1,409,517,397": 1409517397,
		" 12":           12,
		"1,234 \n":      1234,
		"+12":           12,
	} {
		got, err := ParseNumber(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}

	for _, text := range []string{"", "abc", "1.5", "12a"} {
		_, err := ParseNumber(text)
		assert.ErrorIs(t, err, ErrMalformedNumber, text)
	}
}

func TestParseChange(t *testing.T) {
	for text, want := range map[string]float64{
		"+1.23%":  1.23,
		"-0.45%":  -0.45,
		"0.00%":   0,
		" +2.5% ": 2.5,
	} {
		got, err := ParseChange(text)
		require.NoError(t, err, text)
		assert.InDelta(t, want, got, 1e-9, text)
	}

	_, err := ParseChange("%")
	assert.ErrorIs(t, err, ErrMalformedNumber)
}
