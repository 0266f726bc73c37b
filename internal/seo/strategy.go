package seo

const (
	StrategyConversational = "Create conversational Q&A content optimized for voice search and AI assistants"
	StrategyStructuredData = "Use structured data and local context for location-based AI search"
	StrategyTerminology    = "Optimize with natural language and hockey-specific terminology for AI search"
)

var strategyRules = []rule[string]{
	{isFirstTimer, StrategyConversational},
	{keywordHas("parking", "seating"), StrategyStructuredData},
}

// SearchStrategy returns the AI-search guidance for a keyword.
func SearchStrategy(keyword string) string {
	return firstMatch(strategyRules, keyword, nil, StrategyTerminology)
}
