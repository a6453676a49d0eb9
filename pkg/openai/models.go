package openai

import (
	goopenai "github.com/sashabaranov/go-openai"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
)

func toChatMessages(messages []domain.Message) []goopenai.ChatCompletionMessage {
	out := make([]goopenai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, goopenai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return out
}
