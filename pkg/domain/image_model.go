package domain

const (
	ImageModelGPTImage1 = "gpt-image-1"
	ImageModelDallE3    = "dall-e-3"

	ImageSize1024x1024 = "1024x1024"
)

type ImageRequest struct {
	Message string `json:"message"`
	ID      any    `json:"id"`
}

type GeneratedImage struct {
	URL     string
	B64JSON string
}

type ImageReply struct {
	Status string `json:"status"`
	ID     any    `json:"id,omitempty"`
	URL    string `json:"url,omitempty"`
	Stored string `json:"stored,omitempty"`
	Error  string `json:"error,omitempty"`
}
