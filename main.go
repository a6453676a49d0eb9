package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/dskvich/healthy-real-ai/pkg/api"
	"github.com/dskvich/healthy-real-ai/pkg/api/handler"
	"github.com/dskvich/healthy-real-ai/pkg/logger"
	"github.com/dskvich/healthy-real-ai/pkg/metrics"
	"github.com/dskvich/healthy-real-ai/pkg/naver"
	"github.com/dskvich/healthy-real-ai/pkg/openai"
	"github.com/dskvich/healthy-real-ai/pkg/sentiment"
	"github.com/dskvich/healthy-real-ai/pkg/service"
	"github.com/dskvich/healthy-real-ai/pkg/services"
	"github.com/dskvich/healthy-real-ai/pkg/storage"
)

type Config struct {
	OpenAIToken       string        `env:"OPENAI_API_KEY,required,notEmpty"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL"`
	ChatModel         string        `env:"CHAT_MODEL" envDefault:"gpt-4o-mini"`
	ImageModel        string        `env:"IMAGE_MODEL" envDefault:"gpt-image-1"`
	ImageSize         string        `env:"IMAGE_SIZE" envDefault:"1024x1024"`
	StorageURL        string        `env:"SPRING_URL"`
	GoogleCredentials string        `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	NaverClientID     string        `env:"NAVER_CLIENT_ID"`
	NaverClientSecret string        `env:"NAVER_CLIENT_SECRET"`
	NaverSummaryURL   string        `env:"NAVER_SUMMARY_URL"`
	HTTPAddr          string        `env:"HTTP_ADDR" envDefault:":5000"`
	UpstreamTimeout   time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"60s"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	LogNoColor        bool          `env:"LOG_NO_COLOR"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.NewOptions(cfg.LogLevel, cfg.LogNoColor))))

	group, err := setupServices(cfg)
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return group.Run(ctx)
}

// loadConfig reads an optional .env file and then the process environment.
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing env config: %w", err)
	}
	return cfg, nil
}

func setupServices(cfg Config) (service.Group, error) {
	m := metrics.New()

	openAIClient, err := openai.NewClient(openai.Config{
		Token:      cfg.OpenAIToken,
		BaseURL:    cfg.OpenAIBaseURL,
		ChatModel:  cfg.ChatModel,
		ImageModel: cfg.ImageModel,
		ImageSize:  cfg.ImageSize,
		HTTPClient: &http.Client{Timeout: cfg.UpstreamTimeout},
	}, m)
	if err != nil {
		return nil, fmt.Errorf("creating open ai client: %w", err)
	}

	detector := sentiment.NewDetector(cfg.GoogleCredentials, nil, m).WithTimeout(cfg.UpstreamTimeout)
	naverClient := naver.NewClient(cfg.NaverClientID, cfg.NaverClientSecret, cfg.NaverSummaryURL, cfg.UpstreamTimeout, m)
	uploader := storage.NewUploader(cfg.StorageURL, cfg.UpstreamTimeout, m)

	chatService := services.NewChatService(openAIClient)
	nutritionService := services.NewNutritionService(chatService)
	empathyService := services.NewEmpathyService(detector, chatService)
	imageService := services.NewImageService(openAIClient, uploader)
	summaryService := services.NewSummaryService(naverClient)

	router := api.NewRouter(api.Routes{
		Chat:    handler.NewChat(chatService).Answer,
		Calorie: handler.NewCalorie(nutritionService).Calculate,
		Image:   handler.NewImage(imageService).Create,
		Diary:   handler.NewDiary(empathyService).Reply,
		Summary: handler.NewSummary(summaryService).Summarize,
		Health:  handler.Health,
		Metrics: m.Handler(),
	}, m)

	slog.Info("Services configured",
		"addr", cfg.HTTPAddr,
		"chat_model", cfg.ChatModel,
		"image_model", cfg.ImageModel,
		"storage_enabled", uploader.Enabled(),
		"naver_configured", cfg.NaverClientID != "" && cfg.NaverClientSecret != "",
	)

	return service.Group{
		service.NewHTTPServer(cfg.HTTPAddr, router, cfg.UpstreamTimeout),
	}, nil
}
