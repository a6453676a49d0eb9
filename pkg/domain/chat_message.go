package domain

// ChatAnswer is the body returned by the chat route.
type ChatAnswer struct {
	Status string `json:"status,omitempty"`
	Answer string `json:"answer"`
}
