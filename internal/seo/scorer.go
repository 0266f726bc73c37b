package seo

const (
	BaseScore = 5
	MinScore  = 3
	MaxScore  = 10

	// HighOpportunityThreshold is the score at which a keyword counts as
	// high opportunity in the summary.
	HighOpportunityThreshold = 7
)

// keywordBonuses are cumulative: every matching entry adds its bonus.
var keywordBonuses = []struct {
	terms []string
	bonus int
}{
	{[]string{"first time", "what to expect"}, 3},
	{[]string{"parking"}, 2},
	{[]string{"tickets", "cheap"}, 2},
	{[]string{"seating"}, 1},
}

// OpportunityScore estimates the content-gap value of a keyword, clamped
// to [MinScore, MaxScore].
func OpportunityScore(keyword string, rank Rank, competitors []string) int {
	score := BaseScore
	for _, kb := range keywordBonuses {
		if ContainsAny(keyword, kb.terms...) {
			score += kb.bonus
		}
	}
	score += rankAdjustment(rank)
	if HasReseller(competitors) {
		score++
	}
	return min(max(score, MinScore), MaxScore)
}

func rankAdjustment(rank Rank) int {
	switch {
	case !rank.Found():
		return 3
	case rank > 10:
		return 2
	case rank > 5:
		return 1
	case rank <= 3:
		return -1
	default:
		return 0
	}
}
