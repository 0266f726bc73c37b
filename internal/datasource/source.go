package datasource

import (
	"context"

	"hockeyseo/internal/seo"
)

// Source supplies the per-keyword signals that scoring and classification
// work from. Implementations must be safe for concurrent use.
type Source interface {
	// Competitors returns the domains outranking the team for keyword,
	// best first.
	Competitors(ctx context.Context, keyword string) ([]string, error)
	// TeamRank returns the team site's position for keyword.
	TeamRank(ctx context.Context, teamName, keyword string) (seo.Rank, error)
	// SearchVolume returns the monthly search volume for keyword.
	SearchVolume(ctx context.Context, keyword string) (int, error)
	// IsRealData reports whether the values are measured rather than simulated.
	IsRealData() bool
}
