package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dskvich/healthy-real-ai/pkg/upstream"
)

const (
	serviceName = "storage_proxy"
	uploadPath  = "/file/upload"
)

var ErrNotConfigured = errors.New("storage proxy url is not configured")

type Metrics interface {
	ObserveUpstream(service, operation string, start time.Time, err error)
}

type uploader struct {
	api     *resty.Client
	baseURL string
	metrics Metrics
}

func NewUploader(baseURL string, timeout time.Duration, metrics Metrics) *uploader {
	return &uploader{
		api:     resty.New().SetTimeout(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
		metrics: metrics,
	}
}

func (u *uploader) Enabled() bool {
	return u.baseURL != ""
}

// Upload streams the file at path to the proxy as multipart field "file"
// and returns the proxy's response body, usually the stored object's URL.
func (u *uploader) Upload(ctx context.Context, path string) (stored string, err error) {
	if !u.Enabled() {
		return "", ErrNotConfigured
	}

	start := time.Now()
	defer func() {
		if u.metrics != nil {
			u.metrics.ObserveUpstream(serviceName, "upload", start, err)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	requestURL := u.baseURL + uploadPath
	slog.InfoContext(ctx, "Uploading file", "url", requestURL, "file", path)

	resp, err := u.api.R().
		SetContext(ctx).
		SetFileReader("file", filepath.Base(path), f).
		Post(requestURL)
	if err != nil {
		return "", fmt.Errorf("uploading file: %w", upstream.Classify(serviceName, err))
	}

	if !resp.IsSuccess() {
		slog.WarnContext(ctx, "Upload failed", "status", resp.StatusCode(), "body", resp.String())
		return "", upstream.FromStatus(serviceName, resp.StatusCode(), resp.String(), nil)
	}

	slog.InfoContext(ctx, "Upload succeeded", "body", resp.String())
	return strings.TrimSpace(resp.String()), nil
}
