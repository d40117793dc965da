// Package generate orchestrates README generation: it assembles the prompt
// from the ranked file set, calls the generation backend once, and appends
// the attribution footer.
package generate

import (
	"context"

	"readyou/internal/llm"
	"readyou/internal/logging"
	"readyou/internal/scan"
)

// Generator turns a ranked file set into README content.
type Generator struct {
	client llm.Client
	model  string
	logger *logging.Logger
}

// NewGenerator creates a generator using the given backend client and model.
func NewGenerator(client llm.Client, model string, logger *logging.Logger) *Generator {
	return &Generator{
		client: client,
		model:  model,
		logger: logger,
	}
}

// Generate produces README content for the scanned repository. detailed
// selects the long-form template and the higher token ceiling. Any backend
// failure is fatal and propagates to the caller.
func (g *Generator) Generate(ctx context.Context, set scan.RankedSet, projectType string, detailed bool) (string, error) {
	maxTokens := briefMaxTokens
	if detailed {
		maxTokens = detailedMaxTokens
	}

	req := &llm.Request{
		Model: g.model,
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt(projectType)},
			{Role: "user", Content: userPrompt(projectType, set, detailed)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	g.logger.Info("Requesting README generation", map[string]interface{}{
		"model":       g.model,
		"projectType": projectType,
		"detailed":    detailed,
		"maxTokens":   maxTokens,
	})

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}

	g.logger.Debug("Generation completed", map[string]interface{}{
		"promptTokens":     resp.Usage.PromptTokens,
		"completionTokens": resp.Usage.CompletionTokens,
	})

	return resp.Choices[0].Message.Content + footer, nil
}
