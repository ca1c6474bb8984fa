package assistant

import (
	"context"

	"github.com/Sridhar1233sri/consultancy/models"
)

// AssistantService answers patient questions, grounding doctor and
// availability queries in the same services the REST endpoints use.
type AssistantService interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// Generator produces a completion for a prompt. Satisfied by GeminiClient
// and by fakes in tests.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ConversationStore keeps a rolling window of chat exchanges per conversation.
type ConversationStore interface {
	Get(ctx context.Context, conversationID string) ([]models.ChatExchange, error)
	Append(ctx context.Context, conversationID string, exchange models.ChatExchange) error
	Clear(ctx context.Context, conversationID string) error
}
