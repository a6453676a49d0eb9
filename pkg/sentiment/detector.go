package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	language "cloud.google.com/go/language/apiv1"
	"cloud.google.com/go/language/apiv1/languagepb"
	"google.golang.org/api/option"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/logger"
	"github.com/dskvich/healthy-real-ai/pkg/upstream"
)

const serviceName = "google_language"

type Metrics interface {
	ObserveUpstream(service, operation string, start time.Time, err error)
}

// Analyzer is the subset of the Natural Language client used here.
type Analyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (domain.SentimentResult, error)
	Close() error
}

// AnalyzerFactory opens an Analyzer authenticated with a service-account file.
type AnalyzerFactory func(ctx context.Context, credentialsPath string) (Analyzer, error)

type detector struct {
	credentialsPath string
	newAnalyzer     AnalyzerFactory
	metrics         Metrics
	timeout         time.Duration
}

// NewDetector resolves credentialsPath to an absolute path. An empty path
// leaves the detector permanently in sentinel mode.
func NewDetector(credentialsPath string, newAnalyzer AnalyzerFactory, metrics Metrics) *detector {
	if credentialsPath != "" {
		if abs, err := filepath.Abs(credentialsPath); err == nil {
			credentialsPath = abs
		}
	}
	if newAnalyzer == nil {
		newAnalyzer = NewLanguageAnalyzer
	}

	slog.Info("Sentiment detector configured", "credentials_set", credentialsPath != "")

	return &detector{
		credentialsPath: credentialsPath,
		newAnalyzer:     newAnalyzer,
		metrics:         metrics,
	}
}

// WithTimeout bounds each remote analysis. Zero leaves only the caller's deadline.
func (d *detector) WithTimeout(timeout time.Duration) *detector {
	d.timeout = timeout
	return d
}

// Detect returns the document sentiment of text. Without a readable
// credentials file it returns the sentinel pair and never calls out.
func (d *detector) Detect(ctx context.Context, text string) (domain.SentimentResult, error) {
	if !d.credentialsAvailable() {
		slog.WarnContext(ctx, "Sentiment credentials unavailable, using sentinel values", "path", d.credentialsPath)
		return domain.UnavailableSentiment(), nil
	}

	start := time.Now()
	result, err := d.analyze(ctx, text)
	if d.metrics != nil {
		d.metrics.ObserveUpstream(serviceName, "analyze_sentiment", start, err)
	}
	if err != nil {
		return domain.UnavailableSentiment(), err
	}

	slog.InfoContext(ctx, "Sentiment analyzed", "score", result.Score, "mag", result.Magnitude)
	return result, nil
}

func (d *detector) analyze(ctx context.Context, text string) (domain.SentimentResult, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	analyzer, err := d.newAnalyzer(ctx, d.credentialsPath)
	if err != nil {
		return domain.SentimentResult{}, &domain.AuthError{Service: serviceName, Err: fmt.Errorf("creating language client: %w", err)}
	}
	defer func() {
		if err := analyzer.Close(); err != nil {
			slog.WarnContext(ctx, "Closing language client", logger.Err(err))
		}
	}()

	result, err := analyzer.AnalyzeSentiment(ctx, text)
	if err != nil {
		return domain.SentimentResult{}, fmt.Errorf("analyzing sentiment: %w", err)
	}
	return result, nil
}

func (d *detector) credentialsAvailable() bool {
	if d.credentialsPath == "" {
		return false
	}
	_, err := os.Stat(d.credentialsPath)
	return err == nil
}

type languageAnalyzer struct {
	client *language.Client
}

// NewLanguageAnalyzer opens a Cloud Natural Language client.
func NewLanguageAnalyzer(ctx context.Context, credentialsPath string) (Analyzer, error) {
	client, err := language.NewClient(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, err
	}
	return &languageAnalyzer{client: client}, nil
}

func (a *languageAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (domain.SentimentResult, error) {
	resp, err := a.client.AnalyzeSentiment(ctx, &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{Content: text},
			Type:   languagepb.Document_PLAIN_TEXT,
		},
	})
	if err != nil {
		return domain.SentimentResult{}, upstream.Classify(serviceName, err)
	}

	sentiment := resp.GetDocumentSentiment()
	if sentiment == nil {
		return domain.SentimentResult{}, upstream.Malformed(serviceName, "", errors.New("no document sentiment in response"))
	}

	return domain.SentimentResult{
		Score:     float64(sentiment.GetScore()),
		Magnitude: float64(sentiment.GetMagnitude()),
	}, nil
}

func (a *languageAnalyzer) Close() error {
	return a.client.Close()
}
