package llm

import (
	"context"
	"fmt"

	"github.com/rmarchuk/labelvet/internal/model"
)

// Summarizer wraps a provider and turns reports into model.LLMSummary
// attachments
type Summarizer struct {
	provider Provider
	config   model.LLMConfig
}

// NewSummarizer creates a summarizer for the configured provider
func NewSummarizer(config model.LLMConfig) (*Summarizer, error) {
	provider, err := newProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// newProvider selects the backend by name. The switch stays here so adding
// providers does not touch the summarizer.
func newProvider(config model.LLMConfig) (Provider, error) {
	switch config.Provider {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, fmt.Errorf("no LLM provider configured")
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", config.Provider)
	}
}

// IsEnabled reports whether summarization is active
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// Summarize generates a summary attachment for the report. The report's
// status and discrepancies are inputs only; nothing here modifies them.
func (s *Summarizer) Summarize(ctx context.Context, report *model.Report) (*model.LLMSummary, error) {
	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}, nil
}
