package seo

import "hockeyseo/internal/models"

var contentRules = []rule[models.ContentSuggestion]{
	{isFirstTimer, models.ContentSuggestion{
		Title:  "Complete First-Timer's Hockey Guide",
		Format: "FAQ-style guide with arena tips and terminology",
		CTA:    "Buy Official Tickets",
	}},
	{isParking, models.ContentSuggestion{
		Title:  "Ultimate Arena Parking Guide",
		Format: "Interactive map with pricing and walking times",
		CTA:    "Reserve Parking & Tickets",
	}},
	{isSeating, models.ContentSuggestion{
		Title:  "Interactive Arena Seating Guide",
		Format: "Visual seating chart with ice view photos",
		CTA:    "Find Your Perfect Seats",
	}},
}

var defaultContent = models.ContentSuggestion{
	Title:  "Comprehensive Fan Guide",
	Format: "Detailed FAQ with local tips",
	CTA:    "Get Tickets",
}

// SuggestContent returns the content template for a keyword.
func SuggestContent(keyword string) models.ContentSuggestion {
	return firstMatch(contentRules, keyword, nil, defaultContent)
}
