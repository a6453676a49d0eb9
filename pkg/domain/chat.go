package domain

const (
	MessageRoleSystem    = "system"
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered message history. It only grows.
type Conversation struct {
	Messages []Message
}

// NewConversation starts a history with a persona prompt as its first turn.
func NewConversation(role, persona string) *Conversation {
	return &Conversation{
		Messages: []Message{{Role: role, Content: persona}},
	}
}

func (c *Conversation) Append(role, content string) {
	c.Messages = append(c.Messages, Message{Role: role, Content: content})
}

func (c *Conversation) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Messages)
}

func (c *Conversation) Empty() bool {
	return c.Len() == 0
}
