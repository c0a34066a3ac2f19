package models

// OptionSource names which rung of the fallback chain produced a result set.
type OptionSource string

const (
	SourceLive      OptionSource = "live"
	SourceGenerated OptionSource = "generated"
	SourceMock      OptionSource = "mock"
)

type SearchMetadata struct {
	TotalResults int          `json:"total_results"`
	Source       OptionSource `json:"source"`
	SearchTimeMs int64        `json:"search_time_ms"`
	CacheHit     bool         `json:"cache_hit"`
}

type SearchCriteria struct {
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	DepartureDate string         `json:"departure_date"`
	ReturnDate    string         `json:"return_date,omitempty"`
	Passengers    int            `json:"passengers"`
	Mode          Mode           `json:"mode"`
	Filters       *SearchFilters `json:"filters,omitempty"`
	SortBy        string         `json:"sort_by"`
	SortOrder     string         `json:"sort_order"`
}

type SearchResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       SearchMetadata `json:"metadata"`
	Options        []TravelOption `json:"options"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
