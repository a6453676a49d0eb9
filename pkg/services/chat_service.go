package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/logger"
)

type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, messages []domain.Message) (string, error)
}

type chatService struct {
	completer ChatCompleter
}

func NewChatService(completer ChatCompleter) *chatService {
	return &chatService{
		completer: completer,
	}
}

// Relay appends content as a user turn, asks the model for the next turn and
// appends the answer. A successful call grows conv by exactly two messages.
func (s *chatService) Relay(ctx context.Context, content string, conv *domain.Conversation) domain.ChatResult {
	if content == "" || conv.Empty() {
		return domain.ChatFailure(domain.MissingParameterMessage, domain.ErrMissingParameter)
	}

	conv.Append(domain.MessageRoleUser, content)

	answer, err := s.completer.CreateChatCompletion(ctx, conv.Messages)
	if err != nil {
		slog.ErrorContext(ctx, "Chat relay failed", "history", conv.Len(), "retryable", domain.IsRetryable(err), logger.Err(err))
		return domain.ChatFailure(fmt.Sprintf("API Error: %v", err), err)
	}

	conv.Append(domain.MessageRoleAssistant, answer)
	return domain.ChatSuccess(answer)
}

// Chat answers a single customer-service question.
func (s *chatService) Chat(ctx context.Context, message string) domain.ChatResult {
	slog.InfoContext(ctx, "Starting customer chat", "length", len(message))

	return s.Relay(ctx, message, domain.NewConversation(domain.MessageRoleSystem, customerServicePrompt))
}
