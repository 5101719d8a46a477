// Package enhance rewrites prompts to get better output from Claude
// models while keeping the result under a caller-chosen token limit.
package enhance

import (
	"context"
	"log"
	"strings"

	"github.com/HartBrook/burnish/internal/errors"
)

const (
	// MinTokenLimit is the smallest limit enhancement can usefully
	// target. Below this there is no room for the rewrite to add value.
	MinTokenLimit = 50

	// Compression runs cooler than enhancement so the retry stays
	// literal instead of rewriting further.
	enhanceTemperature  = 0.3
	compressTemperature = 0.2
)

// Options controls enhancement behavior.
type Options struct {
	TokenLimit  int    // Hard cap for the enhanced prompt
	TargetModel string // Tier the enhanced prompt will be used with
	Model       string // Upstream model id performing the rewrite ("" = default)
	APIKey      string // Credential override ("" = environment)
}

// Result contains the enhancement outcome.
type Result struct {
	OriginalText           string
	EnhancedText           string
	Stats                  TokenStats
	Usage                  Usage
	TargetModel            string // tier the prompt was written for
	Model                  string // upstream id that performed the rewrite
	Compressed             bool   // true when the compression retry ran
	EnhancementInstruction string
	CompressionInstruction string // empty unless compression ran
}

// Enhancer handles the enhancement pipeline.
type Enhancer struct {
	estimator   *Estimator
	client      *Client
	clientModel string // tracks which model the client was created with
}

// NewEnhancer creates a new enhancer.
func NewEnhancer(estimator *Estimator) *Enhancer {
	return &Enhancer{estimator: estimator}
}

// Enhance runs the full enhancement pipeline on text. It makes one
// generation call, and at most one compression call when the first
// reply overshoots the limit. All errors are terminal.
func (e *Enhancer) Enhance(ctx context.Context, text string, opts Options) (*Result, error) {
	// Step 1: Validate input and configuration
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.InvalidInput()
	}
	if opts.TokenLimit < MinTokenLimit {
		return nil, errors.TokenLimitTooLow(opts.TokenLimit, MinTokenLimit)
	}

	targetModel := opts.TargetModel
	if targetModel == "" {
		targetModel = DefaultTargetModel
	}
	if _, err := ResolveModel(targetModel); err != nil {
		return nil, err
	}

	model := opts.Model
	if model == "" {
		model = defaultModel
	}

	result := &Result{
		OriginalText: trimmed,
		TargetModel:  targetModel,
		Model:        model,
	}

	// Step 2: Estimate original size
	originalTokens := e.estimator.Count(trimmed)
	result.Stats.Original = originalTokens
	result.Stats.Limit = opts.TokenLimit
	if originalTokens > opts.TokenLimit {
		log.Printf("warning: original prompt is %d tokens, already above the %d token limit", originalTokens, opts.TokenLimit)
	}

	// Step 3: Generate the enhanced prompt
	client, err := e.getClient(opts.Model, opts.APIKey)
	if err != nil {
		return nil, err
	}

	instruction := buildEnhancementInstruction(trimmed, opts.TokenLimit, targetModel)
	result.EnhancementInstruction = instruction

	enhanced, usage, err := client.Generate(ctx, instruction, enhanceTemperature)
	if err != nil {
		return nil, err
	}
	result.Usage = usage

	// Step 4: Check the limit, compressing once if exceeded
	enhancedTokens := e.estimator.Count(enhanced)
	if enhancedTokens > opts.TokenLimit {
		log.Printf("enhanced prompt is %d tokens, compressing toward %d", enhancedTokens, opts.TokenLimit)

		compressionInstruction := buildCompressionInstruction(enhanced, opts.TokenLimit)
		result.CompressionInstruction = compressionInstruction

		compressed, compressUsage, err := client.Generate(ctx, compressionInstruction, compressTemperature)
		if err != nil {
			return nil, err
		}
		result.Usage.InputTokens += compressUsage.InputTokens
		result.Usage.OutputTokens += compressUsage.OutputTokens

		compressedTokens := e.estimator.Count(compressed)
		if compressedTokens > opts.TokenLimit {
			return nil, errors.CompressionFailed(compressedTokens, opts.TokenLimit)
		}

		enhanced = compressed
		enhancedTokens = compressedTokens
		result.Compressed = true
	}

	result.EnhancedText = enhanced
	result.Stats.Enhanced = enhancedTokens

	return result, nil
}

// getClient returns a Claude API client, creating one if needed.
// If the requested model differs from the cached client's model, a new client is created.
func (e *Enhancer) getClient(model, apiKey string) (*Client, error) {
	// Normalize empty model to default
	requestedModel := model
	if requestedModel == "" {
		requestedModel = defaultModel
	}

	// Reuse existing client if model matches
	if e.client != nil && e.clientModel == requestedModel {
		return e.client, nil
	}

	var opts []ClientOption
	if model != "" {
		opts = append(opts, WithModel(model))
	}
	if apiKey != "" {
		opts = append(opts, WithAPIKey(apiKey))
	}

	client, err := NewClient(opts...)
	if err != nil {
		return nil, err
	}

	e.client = client
	e.clientModel = requestedModel
	return client, nil
}

// SetClient allows injecting a client for testing.
func (e *Enhancer) SetClient(client *Client) {
	e.client = client
	e.clientModel = client.model
}
