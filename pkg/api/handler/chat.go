package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dskvich/healthy-real-ai/pkg/api/response"
	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/logger"
)

type ChatService interface {
	Chat(ctx context.Context, message string) domain.ChatResult
}

type chatRequest struct {
	Message string `json:"message"`
}

type chat struct {
	service ChatService
	writer  response.JSONResponseWriter
}

func NewChat(service ChatService) *chat {
	return &chat{
		service: service,
		writer:  response.JSONResponseWriter{},
	}
}

func (c *chat) Answer(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		c.writer.WriteResponse(w, http.StatusBadRequest, domain.ChatAnswer{Status: string(domain.StatusFail), Answer: err.Error()})
		return
	}

	result := c.service.Chat(r.Context(), req.Message)
	if !result.OK() {
		slog.ErrorContext(r.Context(), "Chat failed", logger.Err(result.Err))
		c.writer.WriteResponse(w, http.StatusInternalServerError, domain.ChatAnswer{Status: string(result.Status), Answer: result.Messages})
		return
	}

	c.writer.WriteSuccessResponse(w, domain.ChatAnswer{Answer: result.Messages})
}
