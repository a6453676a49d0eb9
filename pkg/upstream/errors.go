package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
)

// Classify maps a client error onto the domain error taxonomy.
// Errors that are already classified are returned unchanged.
func Classify(service string, err error) error {
	if err == nil {
		return nil
	}

	var (
		netErr  *domain.NetworkError
		authErr *domain.AuthError
		malErr  *domain.MalformedResponseError
	)
	if errors.As(err, &netErr) || errors.As(err, &authErr) || errors.As(err, &malErr) {
		return err
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return FromStatus(service, apiErr.HTTPStatusCode, "", apiErr)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return FromStatus(service, reqErr.HTTPStatusCode, "", reqErr)
	}

	if st, ok := status.FromError(err); ok {
		return fromGRPC(service, st.Code(), err)
	}

	if isDecodeError(err) {
		return &domain.MalformedResponseError{Service: service, Err: err}
	}

	return &domain.NetworkError{Service: service, Err: err}
}

// FromStatus classifies a non-2xx HTTP status.
func FromStatus(service string, status int, body string, cause error) error {
	if cause == nil {
		cause = fmt.Errorf("unexpected status code: %d, response: %s", status, body)
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &domain.AuthError{Service: service, StatusCode: status, Err: cause}
	default:
		return &domain.NetworkError{Service: service, StatusCode: status, Err: cause}
	}
}

func fromGRPC(service string, code codes.Code, err error) error {
	switch code {
	case codes.Unauthenticated, codes.PermissionDenied:
		return &domain.AuthError{Service: service, Err: err}
	case codes.InvalidArgument, codes.FailedPrecondition:
		return &domain.NetworkError{Service: service, StatusCode: http.StatusBadRequest, Err: err}
	case codes.ResourceExhausted:
		return &domain.NetworkError{Service: service, StatusCode: http.StatusTooManyRequests, Err: err}
	default:
		return &domain.NetworkError{Service: service, Err: err}
	}
}

func Malformed(service, body string, err error) error {
	return &domain.MalformedResponseError{Service: service, Body: body, Err: err}
}

func isDecodeError(err error) bool {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
