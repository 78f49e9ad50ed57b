package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ParseTransferIntent analyzes visitor input to extract transfer-booking intent.
func (p *GeminiProvider) ParseTransferIntent(ctx context.Context, message string, contextMap map[string]string) (*IntentResult, error) {
	fullPrompt := fmt.Sprintf("%s\n\nVisitor message: %s", buildSystemPrompt(contextMap), message)

	resp, err := p.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// JSON mode should prevent markdown fences, but strip them anyway.
	cleanJSON := cleanJSONString(responseText.String())

	var result IntentResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return &result, nil
}

func buildSystemPrompt(contextMap map[string]string) string {
	var b strings.Builder
	b.WriteString(`You are the booking concierge for Tima Green Tours, a Fiji
airport-transfer and tour operator. Read the visitor's message and answer
with a single JSON object with these fields:
  intent: "quote" | "availability" | "chat"
  route_id: one of the known route ids, or null when unclear
  date: "YYYY-MM-DD" or null
  time: "HH:MM" (24-hour, Fiji local) or null
  service_type: "private" | "shared" | "premium" or null
  passengers: integer, 0 when not mentioned
  reply: one or two friendly sentences for the visitor

Resolve relative dates ("tomorrow", "next Friday") against current_time.
Never invent a route id that is not in the known list.`)
	b.WriteString("\n\nContext:\n")
	for k, v := range contextMap {
		b.WriteString(fmt.Sprintf("  %s: %s\n", k, v))
	}
	return b.String()
}

func cleanJSONString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
