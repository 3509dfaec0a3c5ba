package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bourse-labs/regchat/internal/core/domain"
)

// mockChatService implements driving.ChatService for testing.
type mockChatService struct {
	text         string
	err          error
	calls        int
	lastQuestion string
}

func (m *mockChatService) Answer(_ context.Context, question string) (string, error) {
	m.calls++
	m.lastQuestion = question
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func postChat(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleChat_Success(t *testing.T) {
	chat := &mockChatService{text: "The listing fee is 5000 INR."}
	server := NewServer(chat, "")

	rec := postChat(t, server.Handler(), `{"message": "What is the listing fee?"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "The listing fee is 5000 INR.", resp["response"])
	assert.Equal(t, "What is the listing fee?", chat.lastQuestion)
	assert.Equal(t, 1, chat.calls)
}

func TestHandleChat_AnswerErrorFlattensTo500(t *testing.T) {
	cases := []struct {
		name string
		err  *domain.AnswerError
	}{
		{"configuration", domain.NewAnswerError(domain.KindConfiguration, "Configuration Error: API Key is missing or invalid.")},
		{"model unavailable", domain.NewAnswerError(domain.KindModelUnavailable, "Model Not Found (404). The API Key or Model region might be restricted.")},
		{"rate limited", domain.NewAnswerError(domain.KindRateLimited, "Rate Limited (429). The system is busy.")},
		{"upstream", domain.NewAnswerError(domain.KindUpstream, "API returned 503: overloaded")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := NewServer(&mockChatService{err: tc.err}, "")

			rec := postChat(t, server.Handler(), `{"message": "q"}`)

			// Every kind collapses to the same 500 + {error} shape.
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.err.Message, resp["error"])
		})
	}
}

func TestHandleChat_PlainErrorStill500(t *testing.T) {
	server := NewServer(&mockChatService{err: errors.New("boom")}, "")

	rec := postChat(t, server.Handler(), `{"message": "q"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "boom", resp["error"])
}

func TestHandleChat_BadBody(t *testing.T) {
	chat := &mockChatService{text: "never"}
	server := NewServer(chat, "")

	rec := postChat(t, server.Handler(), "{not json")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	assert.Zero(t, chat.calls)
}

func TestHandleChat_MethodNotAllowed(t *testing.T) {
	server := NewServer(&mockChatService{}, "")

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleIndex_ServesChatClient(t *testing.T) {
	server := NewServer(&mockChatService{}, "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "NSE Intelligence Hub")
}

func TestHandleIndex_UnknownPath404(t *testing.T) {
	server := NewServer(&mockChatService{}, "")

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	server := NewServer(&mockChatService{}, "")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
