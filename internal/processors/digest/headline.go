package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/llm"
)

const headlineSystemPrompt = "You write one-line subject headlines for internship alert emails. " +
	"Given a list of new internship listings, reply with a single short headline " +
	"naming the most notable roles or companies. No markdown, no quotes."

// HeadlineProcessor asks the LLM for a one-line digest headline. Failures
// degrade to no headline rather than failing the run.
type HeadlineProcessor struct {
	name        string
	client      llm.Client
	model       string
	temperature float64
}

func NewHeadlineProcessor(client llm.Client, model string, temperature float64) (*HeadlineProcessor, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if model == "" {
		return nil, fmt.Errorf("llm model is required")
	}
	return &HeadlineProcessor{
		name:        "headline",
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

func (p *HeadlineProcessor) Name() string {
	return p.name
}

func (p *HeadlineProcessor) Validate() error {
	if p.client == nil {
		return fmt.Errorf("llm client is required")
	}
	return nil
}

func (p *HeadlineProcessor) Digest(ctx context.Context, blocks []*core.ListingBlock, current *core.RunDigest) (*core.RunDigest, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if current == nil || len(blocks) == 0 {
		return current, nil
	}

	var b strings.Builder
	for _, block := range blocks {
		if block.Company != "" {
			fmt.Fprintf(&b, "- %s at %s\n", block.Title, block.Company)
		} else {
			fmt.Fprintf(&b, "- %s\n", block.Title)
		}
	}

	response, err := p.client.ChatCompletion(ctx, llm.ChatRequest{
		Model:       p.model,
		Temperature: p.temperature,
		MaxTokens:   60,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: headlineSystemPrompt},
			{Role: llm.RoleUser, Content: b.String()},
		},
	})
	if err != nil {
		core.LoggerFromContext(ctx).Warn("headline generation failed", slog.String("error", err.Error()))
		return current, nil
	}

	headline := strings.TrimSpace(response.Content)
	if headline == "" {
		return current, nil
	}

	updated := *current
	updated.Headline = headline
	return &updated, nil
}
