package engine

import (
	"context"
	"fmt"
	"sort"

	"hockeyseo/internal/datasource"
	"hockeyseo/internal/models"
	"hockeyseo/internal/seo"

	"github.com/sirupsen/logrus"
)

const (
	// MaxAnalyzedKeywords caps how many keywords of a request are analyzed.
	MaxAnalyzedKeywords = 5
	// MaxCompetitors caps the competitors listed per keyword.
	MaxCompetitors = 3
)

// AnalysisEngine turns a request into ranked keyword analyses.
type AnalysisEngine struct {
	source     datasource.Source
	strategist Strategist
}

// NewAnalysisEngine creates a new AnalysisEngine. A nil strategist uses
// the static rules.
func NewAnalysisEngine(source datasource.Source, strategist Strategist) *AnalysisEngine {
	if strategist == nil {
		strategist = StaticStrategist{}
	}
	return &AnalysisEngine{
		source:     source,
		strategist: strategist,
	}
}

// RunAnalysis analyzes the first MaxAnalyzedKeywords keywords and returns
// them sorted by opportunity, highest first. TotalKeywords reports the full
// input count.
func (e *AnalysisEngine) RunAnalysis(ctx context.Context, req models.AnalyzeRequest) (*models.AnalysisResponse, error) {
	logrus.Infof("Starting analysis for: %s (%s)", req.TeamName, req.LeagueName())

	n := min(MaxAnalyzedKeywords, len(req.Keywords))
	analyses := make([]models.KeywordAnalysis, 0, n)
	for _, keyword := range req.Keywords[:n] {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("analysis for %s stopped: %w", req.TeamName, err)
		}
		a, err := e.analyzeKeyword(ctx, req, keyword)
		if err != nil {
			return nil, fmt.Errorf("keyword %q: %w", keyword, err)
		}
		analyses = append(analyses, a)
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].Opportunity > analyses[j].Opportunity
	})

	logrus.Infof("Analysis complete for %s", req.TeamName)

	return &models.AnalysisResponse{
		Success:       true,
		TeamName:      req.TeamName,
		League:        req.League,
		TotalKeywords: len(req.Keywords),
		Analyses:      analyses,
		Summary:       Summarize(analyses),
	}, nil
}

func (e *AnalysisEngine) analyzeKeyword(ctx context.Context, req models.AnalyzeRequest, keyword string) (models.KeywordAnalysis, error) {
	competitors, err := e.source.Competitors(ctx, keyword)
	if err != nil {
		return models.KeywordAnalysis{}, fmt.Errorf("competitors: %w", err)
	}
	if competitors == nil {
		competitors = []string{}
	}
	rank, err := e.source.TeamRank(ctx, req.TeamName, keyword)
	if err != nil {
		return models.KeywordAnalysis{}, fmt.Errorf("team rank: %w", err)
	}
	opportunity := seo.OpportunityScore(keyword, rank, competitors)
	gap := seo.ClassifyGap(keyword, competitors)
	content := seo.SuggestContent(keyword)
	strategy := e.strategist.Strategy(ctx, req.TeamName, req.LeagueName(), keyword)
	volume, err := e.source.SearchVolume(ctx, keyword)
	if err != nil {
		return models.KeywordAnalysis{}, fmt.Errorf("search volume: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"keyword":     keyword,
		"opportunity": opportunity,
		"rank":        rank.String(),
	}).Debug("Keyword analyzed")

	return models.KeywordAnalysis{
		Keyword:           keyword,
		Opportunity:       opportunity,
		GapType:           string(gap),
		TeamRank:          rank.String(),
		Competitors:       competitors[:min(MaxCompetitors, len(competitors))],
		ContentSuggestion: content,
		LLMStrategy:       strategy,
		SearchVolume:      volume,
		IsRealData:        e.source.IsRealData(),
		Cost:              0,
	}, nil
}

// Summarize aggregates analyses into the response summary.
func Summarize(analyses []models.KeywordAnalysis) models.Summary {
	var s models.Summary
	for _, a := range analyses {
		if a.Opportunity >= seo.HighOpportunityThreshold {
			s.HighOpportunity++
		}
		s.TotalSearchVolume += a.SearchVolume
		if a.IsRealData {
			s.RealDataCount++
		}
	}
	return s
}
