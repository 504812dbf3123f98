package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
)

func quizPayload(n, k int) json.RawMessage {
	q := quiz.Quiz{Title: "Solar System"}
	for i := 0; i < n; i++ {
		opts := make([]string, k)
		for j := range opts {
			opts[j] = fmt.Sprintf("Planet %d-%d", i+1, j)
		}
		q.Questions = append(q.Questions, quiz.Question{
			ID:           i + 1,
			Question:     fmt.Sprintf("Question %d?", i+1),
			Options:      opts,
			CorrectIndex: (i + 1) % k,
			Explanation:  "Because of orbital mechanics.",
		})
	}
	b, _ := json.Marshal(q)
	return b
}

func newTestRouter(responses ...llm.MockResponse) (http.Handler, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	gen := quiz.New(mock, quiz.DefaultConfig())
	return New(gen, Options{Provider: "mock", Model: mock.ModelID()}), mock
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1, "error body must only carry the error field")
	msg, ok := body["error"].(string)
	require.True(t, ok)
	return msg
}

func TestIndex(t *testing.T) {
	h, _ := newTestRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "/api/generate")
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, healthResponse{Status: "ok", Provider: "mock", Model: "mock"}, body)
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty string", `{"prompt": ""}`},
		{"whitespace", `{"prompt": "   \n\t "}`},
		{"missing field", `{}`},
		{"null prompt", `{"prompt": null}`},
		{"not json", `prompt=capitals`},
		{"empty body", ``},
		{"wrong type", `{"prompt": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newTestRouter(llm.MockResponse{Content: quizPayload(3, 4)})

			rec := post(t, h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, MsgEmptyPrompt, decodeError(t, rec))
			assert.Equal(t, 0, mock.CallCount(), "provider must not be called")
		})
	}
}

func TestGenerate_Success(t *testing.T) {
	h, mock := newTestRouter(llm.MockResponse{Content: quizPayload(10, 4)})

	rec := post(t, h, `{"prompt": "  10 questions about planets  "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	_, err := uuid.Parse(rec.Header().Get(TraceIDHeader))
	assert.NoError(t, err, "trace id header should be a UUID")

	var q quiz.Quiz
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, "Solar System", q.Title)
	require.Len(t, q.Questions, 10)
	for i, question := range q.Questions {
		assert.Equal(t, i+1, question.ID)
		assert.NotEmpty(t, question.Question)
		assert.Len(t, question.Options, 4)
		assert.GreaterOrEqual(t, question.CorrectIndex, 0)
		assert.Less(t, question.CorrectIndex, len(question.Options))
		assert.NotEmpty(t, question.Explanation)
	}

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "10 questions about planets", calls[0].Messages[0].Content)
	assert.Equal(t, quiz.MaxTokens, calls[0].MaxTokens)
}

func TestGenerate_ResponseFieldsExact(t *testing.T) {
	h, _ := newTestRouter(llm.MockResponse{Content: quizPayload(1, 2)})

	rec := post(t, h, `{"prompt": "one question"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Len(t, raw, 2)
	assert.Contains(t, raw, "title")
	assert.Contains(t, raw, "questions")

	var questions []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["questions"], &questions))
	require.Len(t, questions, 1)
	for _, key := range []string{"id", "question", "options", "correct_index", "explanation"} {
		assert.Contains(t, questions[0], key)
	}
	assert.Len(t, questions[0], 5)
}

func TestGenerate_FiveQuestionsThreeOptions(t *testing.T) {
	h, _ := newTestRouter(llm.MockResponse{Content: quizPayload(5, 3)})

	rec := post(t, h, `{"prompt": "5 questions about the solar system, 3 options each"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var q quiz.Quiz
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	require.Len(t, q.Questions, 5)
	for _, question := range q.Questions {
		assert.Len(t, question.Options, 3)
		assert.Less(t, question.CorrectIndex, 3)
	}
}

func TestGenerate_UpstreamAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"auth failure", &llm.ErrAPI{Provider: "anthropic", StatusCode: 401, Err: errors.New("invalid x-api-key")}},
		{"server fault", &llm.ErrAPI{Provider: "anthropic", StatusCode: 529, Err: errors.New("overloaded")}},
		{"rate limited", &llm.ErrRateLimit{Err: errors.New("too many requests")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newTestRouter(llm.MockResponse{Err: tt.err})

			rec := post(t, h, `{"prompt": "capitals"}`)

			assert.Equal(t, http.StatusBadGateway, rec.Code)
			msg := decodeError(t, rec)
			assert.True(t, strings.HasPrefix(msg, "API error: "), msg)
			assert.Contains(t, msg, tt.err.Error())
			assert.Equal(t, 1, mock.CallCount())
		})
	}
}

func TestGenerate_GenericFailure(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"malformed json", llm.MockResponse{Content: json.RawMessage(`{"title": "cut off`)}},
		{"schema mismatch", llm.MockResponse{Content: json.RawMessage(`{"title": "x"}`)}},
		{"truncated", llm.MockResponse{Content: quizPayload(2, 4), StopReason: "max_tokens"}},
		{"transport", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("dial tcp: connection refused")}}},
		{"unexpected", llm.MockResponse{Err: errors.New("boom")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouter(tt.resp)

			rec := post(t, h, `{"prompt": "capitals"}`)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			msg := decodeError(t, rec)
			assert.True(t, strings.HasPrefix(msg, "Failed to generate quiz: "), msg)
		})
	}
}

func TestGenerate_RejectsInvalidQuiz(t *testing.T) {
	// Schema-valid but the ids skip a number.
	payload := json.RawMessage(`{"title":"T","questions":[
		{"id":1,"question":"Q1?","options":["a","b"],"correct_index":0,"explanation":"E."},
		{"id":3,"question":"Q2?","options":["a","b"],"correct_index":1,"explanation":"E."}]}`)
	h, _ := newTestRouter(llm.MockResponse{Content: payload})

	rec := post(t, h, `{"prompt": "two questions"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.HasPrefix(decodeError(t, rec), "Failed to generate quiz: "))
}

type panicGenerator struct{}

func (panicGenerator) Generate(context.Context, string) (*quiz.Quiz, error) {
	panic("generator exploded")
}

func TestGenerate_PanicRecovered(t *testing.T) {
	h := New(panicGenerator{}, Options{})

	rec := post(t, h, `{"prompt": "anything"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Failed to generate quiz: generator exploded", decodeError(t, rec))
}

func TestRecoverer_RepanicsAbortHandler(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestGenerate_BodyTooLarge(t *testing.T) {
	h, mock := newTestRouter(llm.MockResponse{Content: quizPayload(1, 4)})

	body := `{"prompt": "` + strings.Repeat("a", maxBodyBytes+1) + `"}`
	rec := post(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, MsgEmptyPrompt, decodeError(t, rec))
	assert.Equal(t, 0, mock.CallCount(), "provider must not be called")
}

func TestGenerate_MethodNotAllowed(t *testing.T) {
	h, _ := newTestRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/generate", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	req.Header.Set("Origin", "https://quiz.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRestrictedOrigins(t *testing.T) {
	gen := quiz.New(llm.NewMockProvider(), quiz.DefaultConfig())
	h := New(gen, Options{CORSOrigins: []string{"https://allowed.example.com"}})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://other.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestClassify(t *testing.T) {
	status, msg := classify(fmt.Errorf("wrapped: %w", &llm.ErrAPI{Provider: "openai", StatusCode: 400, Err: errors.New("bad schema")}))
	assert.Equal(t, http.StatusBadGateway, status)
	assert.True(t, strings.HasPrefix(msg, "API error: "))

	status, msg = classify(quiz.ErrEmptyPrompt)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, MsgEmptyPrompt, msg)

	status, _ = classify(errors.New("other"))
	assert.Equal(t, http.StatusInternalServerError, status)
}
