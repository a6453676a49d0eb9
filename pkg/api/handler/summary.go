package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dskvich/healthy-real-ai/pkg/api/response"
	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/logger"
)

type SummaryService interface {
	SummarizeSchedule(ctx context.Context, items []domain.ScheduleItem) (string, error)
}

type summary struct {
	service SummaryService
	writer  response.JSONResponseWriter
}

func NewSummary(service SummaryService) *summary {
	return &summary{
		service: service,
		writer:  response.JSONResponseWriter{},
	}
}

func (s *summary) Summarize(w http.ResponseWriter, r *http.Request) {
	var req domain.SummaryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writer.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Content == nil {
		s.writer.WriteErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	text, err := s.service.SummarizeSchedule(r.Context(), *req.Content)
	if err != nil {
		slog.ErrorContext(r.Context(), "Schedule summary failed", "items", len(*req.Content), logger.Err(err))
		s.writer.WriteErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.writer.WriteSuccessResponse(w, domain.SummaryReply{Summary: text})
}
