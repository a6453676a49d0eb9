package naver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/upstream"
)

const (
	serviceName = "naver_clova"

	DefaultSummaryURL = "https://naveropenapi.apigw.ntruss.com/text-summary/v1/summarize"
)

type Metrics interface {
	ObserveUpstream(service, operation string, start time.Time, err error)
}

type summaryRequest struct {
	Document summaryDocument `json:"document"`
	Option   summaryOption   `json:"option"`
}

type summaryDocument struct {
	Title    string `json:"title,omitempty"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

type summaryOption struct {
	Language     string `json:"language"`
	Model        string `json:"model"`
	Tone         int    `json:"tone"`
	SummaryCount int    `json:"summaryCount"`
}

type summaryResponse struct {
	Summary any `json:"summary"`
}

type client struct {
	api          *resty.Client
	summaryURL   string
	clientID     string
	clientSecret string
	metrics      Metrics
}

func NewClient(clientID, clientSecret, summaryURL string, timeout time.Duration, metrics Metrics) *client {
	if summaryURL == "" {
		summaryURL = DefaultSummaryURL
	}
	return &client{
		api:          resty.New().SetTimeout(timeout),
		summaryURL:   summaryURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		metrics:      metrics,
	}
}

// Summarize asks CLOVA for a three sentence Korean summary of content.
func (c *client) Summarize(ctx context.Context, content string) (summary string, err error) {
	start := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveUpstream(serviceName, "summarize", start, err)
		}
	}()

	if c.clientID == "" || c.clientSecret == "" {
		return "", &domain.AuthError{Service: serviceName, Err: errors.New("client id or secret is not configured")}
	}

	var out summaryResponse
	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader("X-NCP-APIGW-API-KEY-ID", c.clientID).
		SetHeader("X-NCP-APIGW-API-KEY", c.clientSecret).
		SetHeader("Content-Type", "application/json").
		SetBody(summaryRequest{
			Document: summaryDocument{Content: content, Language: "ko"},
			Option:   summaryOption{Language: "ko", Model: "general", Tone: 0, SummaryCount: 3},
		}).
		SetResult(&out).
		Post(c.summaryURL)
	if err != nil {
		return "", fmt.Errorf("sending summary request: %w", upstream.Classify(serviceName, err))
	}

	if resp.StatusCode() != http.StatusOK {
		return "", upstream.FromStatus(serviceName, resp.StatusCode(), resp.String(), nil)
	}

	summary, ok := flatten(out.Summary)
	if !ok {
		return "", upstream.Malformed(serviceName, resp.String(), errors.New("no summary in response"))
	}
	return summary, nil
}

// flatten accepts both the documented string summary and a list of sentences.
func flatten(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []any:
		parts := make([]string, 0, len(s))
		for _, p := range s {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, "\n"), true
	default:
		return "", false
	}
}
