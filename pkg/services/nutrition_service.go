package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
)

type Relayer interface {
	Relay(ctx context.Context, content string, conv *domain.Conversation) domain.ChatResult
}

type nutritionService struct {
	relay Relayer
}

func NewNutritionService(relay Relayer) *nutritionService {
	return &nutritionService{
		relay: relay,
	}
}

// Estimate asks the model for a per-serving nutrition estimate of a dish.
// The ingredient list is optional.
func (s *nutritionService) Estimate(ctx context.Context, name, ingredient string) (domain.NutritionEstimate, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrMissingParameter
	}

	slog.InfoContext(ctx, "Estimating nutrition", "name", name)

	content := fmt.Sprintf("[음식 이름]\n%s\n\n[재료]\n%s", name, ingredient)
	result := s.relay.Relay(ctx, content, domain.NewConversation(domain.MessageRoleSystem, caloriePrompt))
	if !result.OK() {
		return nil, fmt.Errorf("estimating nutrition: %w", result.Err)
	}

	estimate, err := ParseNutrition(result.Messages)
	if err != nil {
		slog.WarnContext(ctx, "Unparsable nutrition reply", "reply", result.Messages)
		return nil, err
	}

	missing := lo.Filter(domain.NutritionFields, func(field string, _ int) bool {
		_, ok := estimate[field]
		return !ok
	})
	if len(missing) > 0 {
		slog.WarnContext(ctx, "Nutrition reply is missing fields", "name", name, "missing", missing)
	}

	return estimate, nil
}
