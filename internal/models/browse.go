package models

// BrowseItem is one progression as shown on a browse page.
//
// The id is the item's index into the FILTERED sequence, not the original
// collection, so the same progression can report different ids under different
// filter parameters. Consumers depend on this numbering; do not change it.
type BrowseItem struct {
	ID             int      `json:"id"`
	RawProgression [][]int  `json:"raw_progression"`
	Chords         []string `json:"chords"`
	ChordCount     int      `json:"chord_count"`
	Complexity     int      `json:"complexity"`
	Patterns       []string `json:"patterns"`
}

// BrowsePage is a paginated view over the filtered collection. Constructed
// per query, never cached between queries.
type BrowsePage struct {
	Progressions []BrowseItem `json:"progressions"`
	Page         int          `json:"page"`
	ItemsPerPage int          `json:"items_per_page"`
	TotalItems   int          `json:"total_items"`
	TotalPages   int          `json:"total_pages"`
	HasNext      bool         `json:"has_next"`
	HasPrevious  bool         `json:"has_previous"`
}

// BrowseParams are the query parameters accepted by the browse operation.
type BrowseParams struct {
	Page         int    // 1-based
	ItemsPerPage int    // must be >= 1
	SearchQuery  string // case-insensitive substring over chord labels; empty disables
	MinLength    int    // minimum event count; 0 disables
}
