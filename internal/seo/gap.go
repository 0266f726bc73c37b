package seo

// GapType labels why a keyword is an opportunity.
type GapType string

const (
	GapFirstTimer        GapType = "First-Timer Experience Gap"
	GapArenaInfo         GapType = "Arena Information Gap"
	GapResellerDominance GapType = "Ticket Reseller Dominance"
	GapVenueExperience   GapType = "Venue Experience Gap"
	GapGeneral           GapType = "General Content Gap"
)

var gapRules = []rule[GapType]{
	{isFirstTimer, GapFirstTimer},
	{isParking, GapArenaInfo},
	{hasReseller, GapResellerDominance},
	{keywordHas("seating", "arena"), GapVenueExperience},
}

// ClassifyGap returns the gap type of the first matching rule.
func ClassifyGap(keyword string, competitors []string) GapType {
	return firstMatch(gapRules, keyword, competitors, GapGeneral)
}
