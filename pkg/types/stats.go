package types

// Stats summarises reading progress over a catalog.
type Stats struct {
	Total       int     `json:"total" yaml:"total"`
	ReadCount   int     `json:"read_count" yaml:"read_count"`
	PercentRead float64 `json:"percent_read" yaml:"percent_read"`
}

// GroupCount is one row of a grouped report.
type GroupCount struct {
	Key   string `json:"key" yaml:"key"`
	Total int    `json:"total" yaml:"total"`
	Read  int    `json:"read" yaml:"read"`
}

// Report holds grouped aggregates over a catalog.
type Report struct {
	Stats   Stats        `json:"stats" yaml:"stats"`
	Genres  []GroupCount `json:"genres" yaml:"genres"`
	Decades []GroupCount `json:"decades" yaml:"decades"`
	Authors []GroupCount `json:"authors" yaml:"authors"`
}
