package llm

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"hockeyseo/config"

	"github.com/JexSrs/go-ollama"
	"github.com/sirupsen/logrus"
)

// OllamaClient talks to a local Ollama server through the Generate API.
type OllamaClient struct {
	client          *ollama.Ollama
	model           string
	maxPromptLength int
}

// NewOllamaClient creates a new client for Ollama.
func NewOllamaClient(cfg config.OllamaConfig) (*OllamaClient, error) {
	ollamaURL, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL %q: %w", cfg.Host, err)
	}
	if cfg.Model == "" {
		return nil, errors.New("ollama model is not configured")
	}

	logrus.Infof("Using Ollama host %s with model %s", cfg.Host, cfg.Model)

	client := ollama.New(*ollamaURL)
	client.Http.Timeout = cfg.Timeout

	return &OllamaClient{
		client:          client,
		model:           cfg.Model,
		maxPromptLength: cfg.MaxPromptLength,
	}, nil
}

// Request sends a single non-streaming Generate call.
func (oc *OllamaClient) Request(systemMessage, userPrompt string) (string, error) {
	userPrompt = truncatePrompt(userPrompt, oc.maxPromptLength)

	res, err := oc.client.Generate(
		oc.client.Generate.WithModel(oc.model),
		oc.client.Generate.WithSystem(systemMessage),
		oc.client.Generate.WithPrompt(userPrompt),
	)
	if err != nil {
		return "", fmt.Errorf("ollama generate call failed: %w", err)
	}

	if !res.Done {
		return "", errors.New("ollama request did not complete (unexpected streaming response)")
	}
	answer := cleanAnswer(res.Response)
	if answer == "" {
		return "", errors.New("ollama returned an empty response")
	}
	logrus.Debug("Response received from Ollama")
	return answer, nil
}

func truncatePrompt(prompt string, limit int) string {
	if limit <= 0 || len(prompt) <= limit {
		return prompt
	}
	logrus.Warnf("Prompt truncated to %d characters", limit)
	return prompt[:limit]
}

// cleanAnswer strips the code fences and quotes models sometimes wrap
// short answers in.
func cleanAnswer(s string) string {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "`"))
	return strings.TrimSpace(strings.Trim(s, `"`))
}
