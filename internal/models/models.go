package models

// Record is one parsed country row.
type Record struct {
	Name       string  `json:"country"`
	Continent  string  `json:"continent"`
	Population int64   `json:"population"`
	Change     float64 `json:"change_pct"`
}

type Summary struct {
	Countries       int             `json:"countries"`
	WorldPopulation int64           `json:"world_population"`
	TopCountries    []string        `json:"top_countries"`
	Continents      []ContinentStat `json:"continents"`
	FastestGrowing  *Record         `json:"fastest_growing,omitempty"`
	FastestShrink   *Record         `json:"fastest_shrinking,omitempty"`
}

type ContinentStat struct {
	Continent  string  `json:"continent"`
	Population int64   `json:"population"`
	Countries  int     `json:"countries"`
	Share      float64 `json:"share_pct"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type TopResponse struct {
	Countries []string `json:"countries"`
}

type Page struct {
	Data   []Record `json:"data"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}
