package engine

import (
	"context"
	"fmt"

	"hockeyseo/internal/llm"
	"hockeyseo/internal/seo"

	"github.com/sirupsen/logrus"
)

// Strategist produces the AI-search guidance for a keyword.
type Strategist interface {
	Strategy(ctx context.Context, teamName, league, keyword string) string
}

// StaticStrategist returns the rule-based guidance unchanged.
type StaticStrategist struct{}

func (StaticStrategist) Strategy(_ context.Context, _, _, keyword string) string {
	return seo.SearchStrategy(keyword)
}

const strategySystemMessage = `You are an SEO consultant for professional hockey teams.
Rewrite the given guidance as one actionable sentence for the team and keyword.
Answer with the sentence only.`

// LLMStrategist tailors the static guidance with a language model and falls
// back to it when the model fails.
type LLMStrategist struct {
	client llm.Client
}

// NewLLMStrategist creates an LLMStrategist backed by client.
func NewLLMStrategist(client llm.Client) *LLMStrategist {
	return &LLMStrategist{client: client}
}

func (s *LLMStrategist) Strategy(ctx context.Context, teamName, league, keyword string) string {
	base := seo.SearchStrategy(keyword)
	if ctx.Err() != nil {
		return base
	}

	prompt := fmt.Sprintf("Team: %s\nLeague: %s\nKeyword: %q\nGuidance: %s", teamName, league, keyword, base)
	answer, err := s.client.Request(strategySystemMessage, prompt)
	if err != nil {
		logrus.WithError(err).WithField("keyword", keyword).Warn("LLM strategy unavailable, using static guidance")
		return base
	}
	if answer == "" {
		return base
	}
	return answer
}
