package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dskvich/healthy-real-ai/pkg/api/response"
	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/logger"
)

type NutritionService interface {
	Estimate(ctx context.Context, name, ingredient string) (domain.NutritionEstimate, error)
}

type calorie struct {
	service NutritionService
	writer  response.JSONResponseWriter
}

func NewCalorie(service NutritionService) *calorie {
	return &calorie{
		service: service,
		writer:  response.JSONResponseWriter{},
	}
}

func (c *calorie) Calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.FoodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		c.writer.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	estimate, err := c.service.Estimate(r.Context(), req.Name, req.Ingredient)
	if err != nil {
		slog.ErrorContext(r.Context(), "Calorie estimation failed", "name", req.Name, logger.Err(err))
		c.writer.WriteErrorResponse(w, statusFor(err), err.Error())
		return
	}

	c.writer.WriteSuccessResponse(w, estimate)
}
