package models

// ContentSuggestion is a fixed copy template for the page to build.
type ContentSuggestion struct {
	Title  string `json:"title"`
	Format string `json:"format"`
	CTA    string `json:"cta"`
}

// KeywordAnalysis is the opportunity assessment for a single keyword.
type KeywordAnalysis struct {
	Keyword           string            `json:"keyword"`
	Opportunity       int               `json:"opportunity"`
	GapType           string            `json:"gapType"`
	TeamRank          string            `json:"teamRank"`
	Competitors       []string          `json:"competitors"`
	ContentSuggestion ContentSuggestion `json:"contentSuggestion"`
	LLMStrategy       string            `json:"llmStrategy"`
	SearchVolume      int               `json:"searchVolume"`
	IsRealData        bool              `json:"isRealData"`
	Cost              float64           `json:"cost"`
}

// Summary aggregates the analyzed keywords.
type Summary struct {
	HighOpportunity   int `json:"highOpportunity"`
	TotalSearchVolume int `json:"totalSearchVolume"`
	RealDataCount     int `json:"realDataCount"`
}

// AnalysisResponse is the body of a successful /analyze call.
type AnalysisResponse struct {
	Success       bool              `json:"success"`
	TeamName      string            `json:"teamName"`
	League        *string           `json:"league,omitempty"`
	TotalKeywords int               `json:"totalKeywords"`
	Analyses      []KeywordAnalysis `json:"analyses"`
	Summary       Summary           `json:"summary"`
}
