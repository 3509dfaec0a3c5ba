// Package httpapi serves the browser chat client and the answering endpoint.
package httpapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bourse-labs/regchat/internal/core/domain"
	"github.com/bourse-labs/regchat/internal/core/ports/driving"
	"github.com/bourse-labs/regchat/internal/logger"
)

//go:embed static/index.html
var indexHTML []byte

// DefaultAddr is the default listen address.
const DefaultAddr = ":3000"

// chatRequest is the POST /api/chat request body.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the success response body.
type chatResponse struct {
	Response string `json:"response"`
}

// errorResponse is the failure response body. Every failure kind uses this
// shape with status 500.
type errorResponse struct {
	Error string `json:"error"`
}

// Server hosts the chat API and the embedded browser client.
type Server struct {
	chat driving.ChatService
	addr string
}

// NewServer creates an HTTP server over the given chat service.
func NewServer(chat driving.ChatService, addr string) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Server{chat: chat, addr: addr}
}

// Handler returns the routed handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/health", s.handleHealth)
	return corsMiddleware(loggingMiddleware(mux))
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:        s.addr,
		Handler:     s.Handler(),
		ReadTimeout: 15 * time.Second,
		// Generous write timeout: answers wait on the upstream model and
		// there is no outbound cancellation.
		WriteTimeout: 300 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("regchat server listening on %s", s.addr)
	return server.ListenAndServe()
}

// handleChat is the answering endpoint: {"message": string} in,
// {"response": string} or {"error": string} with status 500 out.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	text, err := s.chat.Answer(r.Context(), req.Message)
	if err != nil {
		status := http.StatusInternalServerError
		if ae, ok := domain.AsAnswerError(err); ok {
			status = ae.Status
			logger.Debug("chat request failed: kind=%s message=%q", ae.Kind, ae.Message)
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: text})
}

// handleIndex serves the embedded chat client at the root path only.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}
