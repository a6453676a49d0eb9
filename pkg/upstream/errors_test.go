package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"testing"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
)

func TestClassify(t *testing.T) {
	var syntaxErr error = &json.SyntaxError{Offset: 1}

	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{
			name:  "openai 401",
			err:   fmt.Errorf("wrap: %w", &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "bad key"}),
			check: isType[*domain.AuthError],
		},
		{
			name:  "openai 500",
			err:   &openai.APIError{HTTPStatusCode: http.StatusInternalServerError, Message: "oops"},
			check: isType[*domain.NetworkError],
		},
		{
			name:  "openai request error 403",
			err:   &openai.RequestError{HTTPStatusCode: http.StatusForbidden, Err: errors.New("html body")},
			check: isType[*domain.AuthError],
		},
		{
			name:  "json syntax",
			err:   syntaxErr,
			check: isType[*domain.MalformedResponseError],
		},
		{
			name:  "grpc unauthenticated",
			err:   status.Error(codes.Unauthenticated, "invalid credentials"),
			check: isType[*domain.AuthError],
		},
		{
			name:  "grpc unavailable",
			err:   status.Error(codes.Unavailable, "try later"),
			check: isType[*domain.NetworkError],
		},
		{
			name:  "connection refused",
			err:   syscall.ECONNREFUSED,
			check: isType[*domain.NetworkError],
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Classify("openai", test.err)
			if !test.check(got) {
				t.Errorf("Classify(%v) = %T", test.err, got)
			}
		})
	}
}

func TestClassifyKeepsClassified(t *testing.T) {
	orig := &domain.MalformedResponseError{Service: "naver", Err: errors.New("x")}
	if got := Classify("openai", orig); got != error(orig) {
		t.Errorf("expected classified error to pass through, got %v", got)
	}
	if Classify("openai", nil) != nil {
		t.Error("nil should stay nil")
	}
}

func TestFromStatus(t *testing.T) {
	err := FromStatus("naver", http.StatusTooManyRequests, "slow down", nil)

	var netErr *domain.NetworkError
	if !errors.As(err, &netErr) || netErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected error %#v", err)
	}
	if !netErr.Retryable() {
		t.Error("429 should be retryable")
	}
}

func isType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
