package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dskvich/healthy-real-ai/pkg/logger"
)

type JSONResponseWriter struct{}

func (j *JSONResponseWriter) WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	j.WriteResponse(w, http.StatusOK, data)
}

func (j *JSONResponseWriter) WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	j.WriteResponse(w, statusCode, ErrorResponse{Error: message})
}

// WriteResponse is used for failures whose body carries more than an error message.
func (j *JSONResponseWriter) WriteResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		slog.Error("encoding response", "status", statusCode, logger.Err(err))
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}
