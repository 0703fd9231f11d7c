package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModelName is used when the configuration names no model.
const DefaultModelName = "gemini-2.0-flash"

// extractionPrompt instructs the model to emit the exact record shape the
// deterministic engine produces. Output must be raw JSON so the response
// parser can validate it strictly.
const extractionPrompt = `You are a bank SMS parser for UAE bank notification messages.

Task:
- Extract the single transaction described by the SMS below.
- Output STRICT JSON only (no comments, no extra text).
- Output a single JSON object.

The object must have these fields:
- "date": string, ISO format "YYYY-MM-DD"
- "amount": number (always positive)
- "currency": string, 3-letter uppercase code (default "AED")
- "type": string, exactly "Credit" or "Debit"
- "merchant": string (use "Bank Transfer", "ATM Withdrawal", "Bank Credit" or "Transaction" when no named counterparty exists)
- "card_last4": string, 4 digits or ""
- "category": string, one of "Groceries", "Shopping", "Fuel", "Food", "Other"

Return ONLY valid raw JSON.
Do NOT wrap the response in code fences.
Do NOT use ` + "```json" + ` or any Markdown.
Output must begin with "{" and end with "}".

SMS:
`

// geminiClient implements the Client interface using the Gemini API.
type geminiClient struct {
	client *genai.Client
	model  string
}

// newGeminiClient creates a new Gemini API client.
func newGeminiClient(ctx context.Context, cfg Config) (Client, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModelName
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiClient{
		client: client,
		model:  model,
	}, nil
}

// ExtractTransaction sends the SMS to Gemini and returns the raw model
// output, which the caller validates as strict JSON.
func (c *geminiClient) ExtractTransaction(ctx context.Context, message string) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: extractionPrompt + message},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}
