package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

// ParsedTransactionDraft is the structured shape the model must emit.
// The ledger treats it exactly like a manually entered draft - how the
// draft was produced is invisible downstream.
type ParsedTransactionDraft struct {
	Date     string   `json:"date"`
	Type     string   `json:"type"`
	Ticker   *string  `json:"ticker"`
	Quantity *float64 `json:"quantity"`
	Price    *float64 `json:"price"`
	Amount   float64  `json:"amount"`
	Notes    *string  `json:"notes"`
}

type GptRepository interface {
	ParseTransactionDraft(ctx context.Context, description string) (*ParsedTransactionDraft, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const parsePrompt = `
You are converting a free-text description of a brokerage transaction into JSON. Output ONLY a JSON object, no prose, with this shape:

{
  "date": "YYYY-MM-DD",
  "type": one of "BUY" | "SELL_WITHDRAWAL" | "CASH_CREDIT" | "CASH_DEBIT" | "DIVIDEND",
  "ticker": string or null (null for pure cash movements),
  "quantity": number or null (required for BUY and SELL_WITHDRAWAL),
  "price": number or null (per-unit price),
  "amount": number (total cash effect, always positive - the sign is derived from the type),
  "notes": string or null
}

Examples:
"comprei 100 PETR4 a 32,50 ontem" ->
{"date": "<yesterday>", "type": "BUY", "ticker": "PETR4", "quantity": 100, "price": 32.5, "amount": 3250, "notes": null}

"depositei 5000 reais na corretora dia 3" ->
{"date": "<day 3 of current month>", "type": "CASH_CREDIT", "ticker": null, "quantity": null, "price": null, "amount": 5000, "notes": null}

If the text does not describe a transaction, output {"error": "<reason>"}.

Text to parse:
`

func (h gptRepositoryHandler) ParseTransactionDraft(ctx context.Context, description string) (*ParsedTransactionDraft, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: parsePrompt + description,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction draft: %w", err)
	}

	if len(res.Choices) == 0 {
		return nil, fmt.Errorf("gpt returned no choices")
	}

	content := strings.TrimSpace(res.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	withError := struct {
		ParsedTransactionDraft
		Error *string `json:"error"`
	}{}
	if err := json.Unmarshal([]byte(content), &withError); err != nil {
		return nil, fmt.Errorf("gpt returned unparseable draft %q: %w", content, err)
	}
	if withError.Error != nil {
		return nil, fmt.Errorf("could not parse transaction from text: %s", *withError.Error)
	}

	return &withError.ParsedTransactionDraft, nil
}
