package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dskvich/healthy-real-ai/pkg/api/response"
	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/logger"
)

type ImageService interface {
	CreateImage(ctx context.Context, prompt string, id any) (domain.ImageReply, error)
}

type image struct {
	service ImageService
	writer  response.JSONResponseWriter
}

func NewImage(service ImageService) *image {
	return &image{
		service: service,
		writer:  response.JSONResponseWriter{},
	}
}

func (i *image) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.ImageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		i.writer.WriteResponse(w, http.StatusBadRequest, domain.ImageReply{Status: string(domain.StatusFail), Error: err.Error()})
		return
	}

	reply, err := i.service.CreateImage(r.Context(), req.Message, req.ID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Image creation failed", "id", req.ID, logger.Err(err))

		reply.Status = string(domain.StatusFail)
		reply.ID = req.ID
		reply.Error = err.Error()
		i.writer.WriteResponse(w, statusFor(err), reply)
		return
	}

	i.writer.WriteSuccessResponse(w, reply)
}
