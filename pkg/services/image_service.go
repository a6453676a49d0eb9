package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/logger"
)

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (domain.GeneratedImage, error)
}

type FileUploader interface {
	Enabled() bool
	Upload(ctx context.Context, path string) (string, error)
}

type imageService struct {
	generator ImageGenerator
	uploader  FileUploader
}

func NewImageService(generator ImageGenerator, uploader FileUploader) *imageService {
	return &imageService{
		generator: generator,
		uploader:  uploader,
	}
}

// CreateImage generates an image for prompt and, when a storage proxy is
// configured, uploads the generated file to it.
func (s *imageService) CreateImage(ctx context.Context, prompt string, id any) (domain.ImageReply, error) {
	if strings.TrimSpace(prompt) == "" {
		return domain.ImageReply{}, domain.ErrMissingParameter
	}

	slog.InfoContext(ctx, "Starting image generation", "id", id, "prompt", prompt)

	img, err := s.generator.GenerateImage(ctx, prompt)
	if err != nil {
		return domain.ImageReply{}, fmt.Errorf("generating image: %w", err)
	}

	slog.InfoContext(ctx, "Image generated", "id", id, "url", img.URL, "size", len(img.B64JSON))

	reply := domain.ImageReply{
		Status: string(domain.StatusSuccess),
		ID:     id,
		URL:    img.URL,
	}

	if s.uploader == nil || !s.uploader.Enabled() {
		return reply, nil
	}
	if img.B64JSON == "" {
		slog.WarnContext(ctx, "Generated image has no inline data, skipping upload", "id", id)
		return reply, nil
	}

	stored, err := s.store(ctx, img.B64JSON)
	if err != nil {
		return reply, fmt.Errorf("storing image: %w", err)
	}
	reply.Stored = stored

	return reply, nil
}

func (s *imageService) store(ctx context.Context, b64 string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("base64 decoding: %w", err)
	}

	f, err := os.CreateTemp("", "generated-*.png")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err := os.Remove(f.Name()); err != nil {
			slog.WarnContext(ctx, "Removing temp image", "file", f.Name(), logger.Err(err))
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	return s.uploader.Upload(ctx, f.Name())
}
