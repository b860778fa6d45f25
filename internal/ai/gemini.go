// Package ai wraps the Gemini SDK behind the chat.Completer boundary.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"jeancro/internal/chat"
)

// Generation parameters tuned for short, chatty storefront answers.
const (
	temperature     float32 = 0.7
	topK            float32 = 40
	topP            float32 = 0.95
	maxOutputTokens int32   = 200
)

// ErrNoAPIKey is returned per call when the client was built without a key.
// The dispatcher turns it into the canned fallback like any other failure.
var ErrNoAPIKey = errors.New("gemini api key is not configured")

// Gemini implements chat.Completer against the Google generative API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds the client. An empty apiKey is not a constructor error:
// the store should boot without AI configured, so the key check happens on
// each Complete call instead.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	g := &Gemini{model: model}
	if apiKey == "" {
		return g, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

func (g *Gemini) Complete(ctx context.Context, systemPrompt string, history []chat.Turn, message string) (string, error) {
	if g.client == nil {
		return "", ErrNoAPIKey
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == chat.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	temp := temperature
	k := topK
	p := topP
	cfg := &genai.GenerateContentConfig{
		Temperature:       &temp,
		TopK:              &k,
		TopP:              &p,
		MaxOutputTokens:   maxOutputTokens,
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini returned no candidates")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", errors.New("gemini candidate has no content")
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", errors.New("gemini returned empty text")
	}
	return text, nil
}
