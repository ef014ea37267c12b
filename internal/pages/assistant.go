package pages

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/thuraaung/receipt-wallet/internal/api"
	"gitlab.com/thuraaung/receipt-wallet/internal/assistant"
	"gitlab.com/thuraaung/receipt-wallet/internal/logger"
	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

// Assistant owns an ordered conversation. The user's message is appended
// optimistically before the network round trip; a remote failure yields a
// canned keyword-matched reply after an artificial delay instead of an
// error surfaced to the user.
type Assistant struct {
	api      *api.Client
	messages []models.ChatMessage

	// sleep and now are injectable for tests.
	sleep func(time.Duration)
	now   func() time.Time
}

// NewAssistant creates the assistant controller with the greeting already
// seeded as the first conversation entry.
func NewAssistant(client *api.Client) *Assistant {
	a := &Assistant{
		api:   client,
		sleep: time.Sleep,
		now:   time.Now,
	}
	a.append(models.ChatMessage{
		ID:        uuid.NewString(),
		Type:      models.MessageTypeAssistant,
		Content:   assistant.Greeting,
		Timestamp: a.now(),
	})
	return a
}

// Messages returns the conversation in insertion order. Entries are never
// mutated or removed after insertion.
func (a *Assistant) Messages() []models.ChatMessage {
	return a.messages
}

// QuickQuestions returns the suggested prompts for a fresh conversation.
func (a *Assistant) QuickQuestions() []string {
	return assistant.QuickQuestions
}

// Send appends the user's message immediately, then asks the backend. On
// failure it synthesizes a rule-based reply after a fixed delay and returns
// that instead; the error never reaches the user.
func (a *Assistant) Send(ctx context.Context, text string) models.ChatMessage {
	a.append(models.ChatMessage{
		ID:        uuid.NewString(),
		Type:      models.MessageTypeUser,
		Content:   text,
		Timestamp: a.now(),
	})

	reply, err := a.api.QueryAssistant(ctx, text, nil)
	if err != nil {
		logger.Log.Warn().Err(err).Str("query", logger.SanitizeQuery(text)).Msg("Assistant query failed, using canned reply")

		content, data := assistant.Reply(text)
		a.sleep(assistant.FallbackDelay)
		reply = models.ChatMessage{
			ID:        uuid.NewString(),
			Type:      models.MessageTypeAssistant,
			Content:   content,
			Timestamp: a.now(),
			Data:      data,
		}
	}

	a.append(reply)
	return reply
}

func (a *Assistant) append(msg models.ChatMessage) {
	a.messages = append(a.messages, msg)
}
