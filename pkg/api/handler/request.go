package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
)

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	if errors.Is(err, domain.ErrMissingParameter) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
