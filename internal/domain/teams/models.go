package teams

// Team is a franchise keyed by its season-table abbreviation.
type Team struct {
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"fullName"`
	LogoURL      string `json:"logoUrl"`
}
