package datasource

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"hockeyseo/config"
	"hockeyseo/internal/seo"
)

var competitorRules = []struct {
	term    string
	domains []string
}{
	{"tickets", []string{"stubhub.com", "ticketmaster.com", "seatgeek.com"}},
	{"parking", []string{"spothero.com", "parkwhiz.com", "yelp.com"}},
	{"first time", []string{"reddit.com", "tripadvisor.com", "hockeyforum.com"}},
}

var defaultCompetitors = []string{"reddit.com", "yelp.com", "hockeydb.com"}

// SimulatedCompetitors is the fixed competitor lookup used by Simulated.
func SimulatedCompetitors(keyword string) []string {
	for _, r := range competitorRules {
		if seo.ContainsAny(keyword, r.term) {
			return append([]string(nil), r.domains...)
		}
	}
	return append([]string(nil), defaultCompetitors...)
}

// Simulated stands in for real ranking data with random values.
type Simulated struct {
	cfg config.SimulationConfig

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulated creates a Simulated source. A zero cfg.Seed seeds from the clock.
func NewSimulated(cfg config.SimulationConfig) *Simulated {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Simulated{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

func (s *Simulated) Competitors(ctx context.Context, keyword string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SimulatedCompetitors(keyword), nil
}

func (s *Simulated) TeamRank(ctx context.Context, _ string, _ string) (seo.Rank, error) {
	if err := ctx.Err(); err != nil {
		return seo.RankNotFound, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rng.Float64() >= s.cfg.RankFoundProbability {
		return seo.RankNotFound, nil
	}
	return seo.Rank(s.rng.IntN(s.cfg.MaxRank) + 1), nil
}

func (s *Simulated) SearchVolume(ctx context.Context, keyword string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r := s.volumeRange(keyword)

	s.mu.Lock()
	defer s.mu.Unlock()
	return r.Min + s.rng.IntN(r.Max-r.Min), nil
}

func (s *Simulated) IsRealData() bool {
	return false
}

func (s *Simulated) volumeRange(keyword string) config.VolumeRange {
	for _, r := range s.cfg.VolumeRanges {
		if seo.ContainsAny(keyword, r.Terms...) {
			return r
		}
	}
	return s.cfg.DefaultVolume
}
