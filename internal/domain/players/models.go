package players

// Profile is the detail record for one player.
type Profile struct {
	Name      string             `json:"name"`
	Team      string             `json:"team"`
	TeamName  string             `json:"teamName,omitempty"`
	TeamLogo  string             `json:"teamLogo,omitempty"`
	Position  string             `json:"position,omitempty"`
	Age       string             `json:"age,omitempty"`
	Birthday  string             `json:"birthday,omitempty"`
	Country   string             `json:"country,omitempty"`
	DraftYear string             `json:"draftYear,omitempty"`
	Height    string             `json:"height,omitempty"`
	Weight    string             `json:"weight,omitempty"`
	School    string             `json:"school,omitempty"`
	ImageURL  string             `json:"imageUrl,omitempty"`
	Stats     map[string]float64 `json:"stats,omitempty"`
	Source    string             `json:"source"`
}

// Resolution is the outcome of mapping a free-text query to a canonical name.
type Resolution struct {
	Query       string       `json:"query"`
	Name        string       `json:"name"`
	Score       float64      `json:"score"`
	PathSegment string       `json:"pathSegment"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// Suggestion is a near miss offered when a query does not resolve.
type Suggestion struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
