package seo

import "strings"

// matcher reports whether a rule applies to a keyword and its competitors.
type matcher func(keyword string, competitors []string) bool

// rule pairs a matcher with the result returned when it is the first to match.
type rule[T any] struct {
	match  matcher
	result T
}

// firstMatch walks rules in order and returns the first matching result.
func firstMatch[T any](rules []rule[T], keyword string, competitors []string, fallback T) T {
	for _, r := range rules {
		if r.match(keyword, competitors) {
			return r.result
		}
	}
	return fallback
}

// ContainsAny reports whether keyword contains any of terms. Matching is
// case-sensitive on the keyword as given.
func ContainsAny(keyword string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(keyword, term) {
			return true
		}
	}
	return false
}

func keywordHas(terms ...string) matcher {
	return func(keyword string, _ []string) bool {
		return ContainsAny(keyword, terms...)
	}
}

var (
	isFirstTimer = keywordHas("first time", "what to expect")
	isParking    = keywordHas("parking")
	isSeating    = keywordHas("seating")
)

// resellerDomains are ticket marketplaces treated as a competitive signal.
var resellerDomains = map[string]struct{}{
	"ticketmaster.com": {},
	"stubhub.com":      {},
	"seatgeek.com":     {},
}

// HasReseller reports whether any competitor is a ticket reseller.
func HasReseller(competitors []string) bool {
	for _, c := range competitors {
		if _, ok := resellerDomains[c]; ok {
			return true
		}
	}
	return false
}

func hasReseller(_ string, competitors []string) bool {
	return HasReseller(competitors)
}
