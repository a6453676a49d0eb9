package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
)

type fakeChat struct {
	result  domain.ChatResult
	message string
}

func (f *fakeChat) Chat(_ context.Context, message string) domain.ChatResult {
	f.message = message
	return f.result
}

type fakeNutrition struct {
	estimate domain.NutritionEstimate
	err      error
}

func (f *fakeNutrition) Estimate(context.Context, string, string) (domain.NutritionEstimate, error) {
	return f.estimate, f.err
}

type fakeImage struct {
	reply domain.ImageReply
	err   error
}

func (f *fakeImage) CreateImage(context.Context, string, any) (domain.ImageReply, error) {
	return f.reply, f.err
}

type fakeEmpathy struct {
	reply domain.DiaryReply
	err   error
	diary string
}

func (f *fakeEmpathy) Respond(_ context.Context, diary string) (domain.DiaryReply, error) {
	f.diary = diary
	return f.reply, f.err
}

type fakeSummary struct {
	summary string
	err     error
	items   []domain.ScheduleItem
	calls   int
}

func (f *fakeSummary) SummarizeSchedule(_ context.Context, items []domain.ScheduleItem) (string, error) {
	f.calls++
	f.items = items
	return f.summary, f.err
}

func serve(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding body %q: %v", rec.Body.String(), err)
	}
	return got
}

func TestChatAnswer(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		result     domain.ChatResult
		wantStatus int
		want       map[string]any
	}{
		{
			name:       "success",
			body:       `{"message":"배송은 얼마나 걸리나요?"}`,
			result:     domain.ChatSuccess("보통 2~3일 걸립니다."),
			wantStatus: http.StatusOK,
			want:       map[string]any{"answer": "보통 2~3일 걸립니다."},
		},
		{
			name:       "relay failure",
			body:       `{"message":"안녕"}`,
			result:     domain.ChatFailure("API Error: timeout", errors.New("timeout")),
			wantStatus: http.StatusInternalServerError,
			want:       map[string]any{"status": "FAIL", "answer": "API Error: timeout"},
		},
		{
			name:       "missing message",
			body:       `{}`,
			result:     domain.ChatFailure(domain.MissingParameterMessage, domain.ErrMissingParameter),
			wantStatus: http.StatusInternalServerError,
			want:       map[string]any{"status": "FAIL", "answer": domain.MissingParameterMessage},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(NewChat(&fakeChat{result: test.result}).Answer, http.MethodPost, "/ChatAI", test.body)

			if rec.Code != test.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, test.wantStatus)
			}
			if diff := cmp.Diff(test.want, decodeBody(t, rec)); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChatAnswerInvalidBody(t *testing.T) {
	rec := serve(NewChat(&fakeChat{}).Answer, http.MethodPost, "/ChatAI", `not json`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
	if got := decodeBody(t, rec); got["status"] != "FAIL" {
		t.Errorf("body = %v", got)
	}
}

func TestCalorieCalculate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		service    *fakeNutrition
		wantStatus int
		want       map[string]any
	}{
		{
			name:       "success",
			body:       `{"name":"닭가슴살 부추냉채무침","ingredient":"닭가슴살,300g"}`,
			service:    &fakeNutrition{estimate: domain.NutritionEstimate{"calorie": 200.0, "fat": 29.5}},
			wantStatus: http.StatusOK,
			want:       map[string]any{"calorie": 200.0, "fat": 29.5},
		},
		{
			name:       "missing name",
			body:       `{"ingredient":"쌀"}`,
			service:    &fakeNutrition{err: domain.ErrMissingParameter},
			wantStatus: http.StatusBadRequest,
			want:       map[string]any{"error": domain.MissingParameterMessage},
		},
		{
			name:       "malformed reply",
			body:       `{"name":"김밥"}`,
			service:    &fakeNutrition{err: &domain.MalformedResponseError{Service: "openai", Err: errors.New("no JSON object in reply")}},
			wantStatus: http.StatusInternalServerError,
			want:       map[string]any{"error": "openai: malformed response: no JSON object in reply"},
		},
		{
			name:       "invalid body",
			body:       `[`,
			service:    &fakeNutrition{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(NewCalorie(test.service).Calculate, http.MethodPost, "/calculate-calo", test.body)

			if rec.Code != test.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, test.wantStatus)
			}
			got := decodeBody(t, rec)
			if test.want == nil {
				if _, ok := got["error"]; !ok {
					t.Errorf("expected error body, got %v", got)
				}
				return
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImageCreate(t *testing.T) {
	tests := []struct {
		name       string
		service    *fakeImage
		wantStatus int
		want       map[string]any
	}{
		{
			name:       "success",
			service:    &fakeImage{reply: domain.ImageReply{Status: "SUCCESS", ID: 3.0, URL: "https://example.com/a.png", Stored: "a.png"}},
			wantStatus: http.StatusOK,
			want:       map[string]any{"status": "SUCCESS", "id": 3.0, "url": "https://example.com/a.png", "stored": "a.png"},
		},
		{
			name:       "generation failure",
			service:    &fakeImage{err: &domain.AuthError{Service: "openai", StatusCode: 401, Err: errors.New("bad key")}},
			wantStatus: http.StatusInternalServerError,
			want:       map[string]any{"status": "FAIL", "id": 3.0, "error": "openai: auth: bad key"},
		},
		{
			name:       "upload failure keeps url",
			service:    &fakeImage{reply: domain.ImageReply{Status: "SUCCESS", ID: 3.0, URL: "https://example.com/a.png"}, err: errors.New("storing image: refused")},
			wantStatus: http.StatusInternalServerError,
			want:       map[string]any{"status": "FAIL", "id": 3.0, "url": "https://example.com/a.png", "error": "storing image: refused"},
		},
		{
			name:       "missing prompt",
			service:    &fakeImage{err: domain.ErrMissingParameter},
			wantStatus: http.StatusBadRequest,
			want:       map[string]any{"status": "FAIL", "id": 3.0, "error": domain.MissingParameterMessage},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(NewImage(test.service).Create, http.MethodPost, "/CreateIm", `{"message":"푸른 바다","id":3}`)

			if rec.Code != test.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, test.wantStatus)
			}
			if diff := cmp.Diff(test.want, decodeBody(t, rec)); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiaryReply(t *testing.T) {
	tests := []struct {
		name       string
		service    *fakeEmpathy
		wantStatus int
		want       map[string]any
	}{
		{
			name:       "success",
			service:    &fakeEmpathy{reply: domain.DiaryReply{Answer: "수고했어요.", Score: 0.4, Magnitude: 0.9}},
			wantStatus: http.StatusOK,
			want:       map[string]any{"answer": "수고했어요.", "score": 0.4, "mag": 0.9},
		},
		{
			name: "relay failure keeps scores",
			service: &fakeEmpathy{
				reply: domain.DiaryReply{Status: "FAIL", Answer: "API Error: timeout", Score: 0.4, Magnitude: 0.9},
				err:   errors.New("generating empathy reply: timeout"),
			},
			wantStatus: http.StatusInternalServerError,
			want:       map[string]any{"status": "FAIL", "answer": "API Error: timeout", "score": 0.4, "mag": 0.9},
		},
		{
			name:       "empty diary",
			service:    &fakeEmpathy{err: domain.ErrMissingParameter},
			wantStatus: http.StatusBadRequest,
			want:       map[string]any{"status": "FAIL", "answer": domain.MissingParameterMessage, "score": -10000.0, "mag": -10000.0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(NewDiary(test.service).Reply, http.MethodGet, "/diary?diary=%EC%98%A4%EB%8A%98", "")

			if rec.Code != test.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, test.wantStatus)
			}
			if diff := cmp.Diff(test.want, decodeBody(t, rec)); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
			if test.service.diary != "오늘" {
				t.Errorf("diary = %q", test.service.diary)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	service := &fakeSummary{summary: "점심 일정이 있습니다."}

	rec := serve(NewSummary(service).Summarize, http.MethodPost, "/summaryAPI", `{"content":[{"stitle":"샐러드","cal":3,"seat":null}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if diff := cmp.Diff(map[string]any{"summary": "점심 일정이 있습니다."}, decodeBody(t, rec)); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if len(service.items) != 1 || service.items[0].Title != "샐러드" || service.items[0].Label() != "점심" {
		t.Errorf("items = %+v", service.items)
	}
}

func TestSummarizeErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		service    *fakeSummary
		wantStatus int
		wantCalls  int
	}{
		{"missing content", `{}`, &fakeSummary{}, http.StatusBadRequest, 0},
		{"null content", `{"content":null}`, &fakeSummary{}, http.StatusBadRequest, 0},
		{"invalid body", `{"content":`, &fakeSummary{}, http.StatusBadRequest, 0},
		{"upstream failure", `{"content":[{"stitle":"독서"}]}`, &fakeSummary{err: &domain.NetworkError{Service: "naver", StatusCode: 500, Err: errors.New("oops")}}, http.StatusBadGateway, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(NewSummary(test.service).Summarize, http.MethodPost, "/summaryAPI", test.body)

			if rec.Code != test.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, test.wantStatus)
			}
			if _, ok := decodeBody(t, rec)["error"]; !ok {
				t.Errorf("expected error body, got %s", rec.Body.String())
			}
			if test.service.calls != test.wantCalls {
				t.Errorf("calls = %d, want %d", test.service.calls, test.wantCalls)
			}
		})
	}
}

func TestSummarizeEmptyContent(t *testing.T) {
	service := &fakeSummary{}

	rec := serve(NewSummary(service).Summarize, http.MethodPost, "/summaryAPI", `{"content":[]}`)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if diff := cmp.Diff(map[string]any{"summary": ""}, decodeBody(t, rec)); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestHealth(t *testing.T) {
	rec := serve(Health, http.MethodGet, "/health", "")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if diff := cmp.Diff(map[string]any{"status": "UP", "service": "healthy-real-ai"}, decodeBody(t, rec)); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}
