// Package dataset provides the country population table the explorer runs on.
//
// The table is tab separated. The first line is a header and every following
// line is one country. The snapshot is a 38 country subset of the UN mid-2017
// estimates, covering every continent.
package dataset

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed world_pop_by_country.tsv
var worldPop string

// Embedded returns the built-in snapshot.
func Embedded() string {
	return worldPop
}

// Read returns the table at path, or the embedded snapshot when path is empty.
func Read(path string) (string, error) {
	if path == "" {
		return worldPop, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read dataset %s: %w", path, err)
	}
	return string(content), nil
}
