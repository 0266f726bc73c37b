package seo

import "fmt"

// Rank is the team site's position in search results for a keyword.
// Positions start at 1; anything below that means the site was not found.
type Rank int

// RankNotFound marks a keyword the team site does not rank for.
const RankNotFound Rank = -1

// Found reports whether the rank is an actual position.
func (r Rank) Found() bool {
	return r >= 1
}

func (r Rank) String() string {
	if !r.Found() {
		return "Not found"
	}
	return fmt.Sprintf("#%d", int(r))
}
