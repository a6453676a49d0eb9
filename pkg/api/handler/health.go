package handler

import (
	"net/http"

	"github.com/dskvich/healthy-real-ai/pkg/api/response"
	"github.com/dskvich/healthy-real-ai/pkg/domain"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func Health(w http.ResponseWriter, _ *http.Request) {
	writer := response.JSONResponseWriter{}
	writer.WriteSuccessResponse(w, healthResponse{Status: "UP", Service: domain.ServiceName})
}
