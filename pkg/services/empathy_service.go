package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/logger"
)

type SentimentDetector interface {
	Detect(ctx context.Context, text string) (domain.SentimentResult, error)
}

type empathyService struct {
	detector SentimentDetector
	relay    Relayer
}

func NewEmpathyService(detector SentimentDetector, relay Relayer) *empathyService {
	return &empathyService{
		detector: detector,
		relay:    relay,
	}
}

// Respond scores the diary's sentiment and asks the model for a short empathetic reply.
// The scores are returned even when the reply fails.
func (s *empathyService) Respond(ctx context.Context, diary string) (domain.DiaryReply, error) {
	if strings.TrimSpace(diary) == "" {
		return domain.DiaryReply{}, domain.ErrMissingParameter
	}

	sentiment, err := s.detector.Detect(ctx, diary)
	if err != nil {
		slog.WarnContext(ctx, "Sentiment analysis failed, continuing without scores", logger.Err(err))
		sentiment = domain.UnavailableSentiment()
	}

	result := s.relay.Relay(ctx, diaryContent(diary, sentiment), domain.NewConversation(domain.MessageRoleSystem, empathyPrompt))
	if !result.OK() {
		return domain.DiaryReply{
			Status:    string(domain.StatusFail),
			Answer:    result.Messages,
			Score:     sentiment.Score,
			Magnitude: sentiment.Magnitude,
		}, fmt.Errorf("generating empathy reply: %w", result.Err)
	}

	slog.InfoContext(ctx, "Empathy reply generated", "length", len([]rune(result.Messages)))

	return domain.DiaryReply{
		Answer:    result.Messages,
		Score:     sentiment.Score,
		Magnitude: sentiment.Magnitude,
	}, nil
}

func diaryContent(diary string, sentiment domain.SentimentResult) string {
	return fmt.Sprintf("1. 사용자가 작성한 일기 내용: %s\n\n2. 일기의 전반적인 정서에 대한 수치값: %s\n\n3. 일기에 담긴 감정의 복잡도: %s",
		diary,
		strconv.FormatFloat(sentiment.Score, 'f', -1, 64),
		strconv.FormatFloat(sentiment.Magnitude, 'f', -1, 64),
	)
}
