package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Chat message authors.
const (
	MessageTypeUser      = "user"
	MessageTypeAssistant = "assistant"
)

// Chat message delivery statuses.
const (
	MessageStatusSending = "sending"
	MessageStatusSent    = "sent"
	MessageStatusFailed  = "failed"
)

// Message data kinds observed on the wire.
const (
	DataKindSpendingSummary    = "spending_summary"
	DataKindSpendingComparison = "spending_comparison"
)

// MessageData is the structured payload an assistant message may carry.
// Concrete kinds are SpendingSummary and SpendingComparison.
type MessageData interface {
	Kind() string
}

// SpendingSummary reports one category's spend against its budget.
type SpendingSummary struct {
	Type       string          `json:"type"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Budget     decimal.Decimal `json:"budget"`
	Percentage float64         `json:"percentage"`
	Trend      string          `json:"trend,omitempty"`
}

// Kind implements MessageData.
func (SpendingSummary) Kind() string { return DataKindSpendingSummary }

// SpendingComparison compares one category's spend across two periods.
type SpendingComparison struct {
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
	Change   string          `json:"change,omitempty"`
	Visits   int             `json:"visits,omitempty"`
}

// Kind implements MessageData.
func (SpendingComparison) Kind() string { return DataKindSpendingComparison }

// DecodeMessageData decodes a raw data payload by its "type" tag. A null or
// empty payload decodes to nil. Unknown kinds are an error so shape drift
// surfaces at the decode site instead of at render time.
func DecodeMessageData(raw json.RawMessage) (MessageData, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, fmt.Errorf("failed to read message data type: %w", err)
	}

	switch tag.Type {
	case DataKindSpendingSummary:
		var d SpendingSummary
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("failed to decode spending summary: %w", err)
		}
		return d, nil
	case DataKindSpendingComparison:
		var d SpendingComparison
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("failed to decode spending comparison: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown message data type %q", tag.Type)
	}
}

// ChatMessage is one entry in an ordered conversation. Messages are appended
// in timestamp order and never mutated or removed after insertion.
type ChatMessage struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Data      MessageData `json:"data,omitempty"`
	Status    string      `json:"status,omitempty"`
}

// UnmarshalJSON decodes the message and resolves the tagged data payload.
func (m *ChatMessage) UnmarshalJSON(b []byte) error {
	type alias ChatMessage
	aux := struct {
		*alias
		Data json.RawMessage `json:"data,omitempty"`
	}{alias: (*alias)(m)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	data, err := DecodeMessageData(aux.Data)
	if err != nil {
		return err
	}
	m.Data = data
	return nil
}
