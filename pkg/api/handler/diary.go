package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dskvich/healthy-real-ai/pkg/api/response"
	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/logger"
)

type EmpathyService interface {
	Respond(ctx context.Context, diary string) (domain.DiaryReply, error)
}

type diary struct {
	service EmpathyService
	writer  response.JSONResponseWriter
}

func NewDiary(service EmpathyService) *diary {
	return &diary{
		service: service,
		writer:  response.JSONResponseWriter{},
	}
}

func (d *diary) Reply(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("diary")

	reply, err := d.service.Respond(r.Context(), text)
	if err != nil {
		slog.ErrorContext(r.Context(), "Diary reply failed", logger.Err(err))

		if reply.Answer == "" {
			reply = domain.DiaryReply{
				Answer:    err.Error(),
				Score:     domain.SentimentUnavailable,
				Magnitude: domain.SentimentUnavailable,
			}
		}
		reply.Status = string(domain.StatusFail)
		d.writer.WriteResponse(w, statusFor(err), reply)
		return
	}

	d.writer.WriteSuccessResponse(w, reply)
}
