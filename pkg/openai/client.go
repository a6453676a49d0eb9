package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/upstream"
)

const serviceName = "openai"

type Metrics interface {
	ObserveUpstream(service, operation string, start time.Time, err error)
}

type Config struct {
	Token      string
	BaseURL    string
	ChatModel  string
	ImageModel string
	ImageSize  string
	HTTPClient *http.Client
}

type client struct {
	api        *goopenai.Client
	chatModel  string
	imageModel string
	imageSize  string
	metrics    Metrics
}

func NewClient(cfg Config, metrics Metrics) (*client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("token is empty")
	}

	apiCfg := goopenai.DefaultConfig(cfg.Token)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		apiCfg.HTTPClient = cfg.HTTPClient
	}

	c := &client{
		api:        goopenai.NewClientWithConfig(apiCfg),
		chatModel:  cfg.ChatModel,
		imageModel: cfg.ImageModel,
		imageSize:  cfg.ImageSize,
		metrics:    metrics,
	}
	if c.chatModel == "" {
		c.chatModel = domain.DefaultChatModel
	}
	if c.imageModel == "" {
		c.imageModel = domain.ImageModelGPTImage1
	}
	if c.imageSize == "" {
		c.imageSize = domain.ImageSize1024x1024
	}
	return c, nil
}

// CreateChatCompletion sends the whole history and returns the first choice's content.
func (c *client) CreateChatCompletion(ctx context.Context, messages []domain.Message) (answer string, err error) {
	defer c.observe("chat", time.Now(), &err)

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:    c.chatModel,
		Messages: toChatMessages(messages),
	})
	if err != nil {
		return "", fmt.Errorf("creating completion: %w", upstream.Classify(serviceName, err))
	}

	if len(resp.Choices) == 0 {
		return "", upstream.Malformed(serviceName, "", errors.New("no choices in response"))
	}

	slog.DebugContext(ctx, "Chat completion received",
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)

	return resp.Choices[0].Message.Content, nil
}

func (c *client) GenerateImage(ctx context.Context, prompt string) (img domain.GeneratedImage, err error) {
	defer c.observe("image", time.Now(), &err)

	resp, err := c.api.CreateImage(ctx, goopenai.ImageRequest{
		Model:  c.imageModel,
		Prompt: prompt,
		Size:   c.imageSize,
		N:      1,
	})
	if err != nil {
		return domain.GeneratedImage{}, fmt.Errorf("creating image: %w", upstream.Classify(serviceName, err))
	}

	if len(resp.Data) == 0 {
		return domain.GeneratedImage{}, upstream.Malformed(serviceName, "", errors.New("no image data in response"))
	}

	return domain.GeneratedImage{
		URL:     resp.Data[0].URL,
		B64JSON: resp.Data[0].B64JSON,
	}, nil
}

func (c *client) observe(operation string, start time.Time, err *error) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(serviceName, operation, start, *err)
	}
}
