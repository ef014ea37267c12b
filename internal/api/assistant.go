package api

import (
	"context"
	"net/http"
	"time"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

type assistantQuery struct {
	Query     string                   `json:"query"`
	Context   *models.AssistantContext `json:"context,omitempty"`
	Timestamp string                   `json:"timestamp"`
}

// QueryAssistant sends a natural-language query and returns the single
// assistant reply (the backend does not stream). queryCtx may be nil.
func (c *Client) QueryAssistant(ctx context.Context, query string, queryCtx *models.AssistantContext) (models.ChatMessage, error) {
	body := assistantQuery{
		Query:     query,
		Context:   queryCtx,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return doJSON[models.ChatMessage](ctx, c, http.MethodPost, endpointAssistantQuery, body)
}
