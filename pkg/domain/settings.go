package domain

const (
	DefaultChatModel = "gpt-4o-mini"
	ServiceName      = "healthy-real-ai"
)
