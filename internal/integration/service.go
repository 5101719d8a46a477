package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/HartBrook/burnish/internal/enhance"
)

// CapturedRequest records one call made against the scripted service.
type CapturedRequest struct {
	Model       string
	MaxTokens   int
	Temperature float64
	Instruction string
}

// Service is a scripted stand-in for the Anthropic Messages API.
// Each request consumes the next canned reply in order; once the script
// is exhausted, further requests fail with a 500 error envelope.
type Service struct {
	t       *testing.T
	server  *httptest.Server
	mu      sync.Mutex
	replies []string
	calls   []CapturedRequest
}

// Local mirrors of the Messages API payloads. The production client
// keeps its wire types private, so the service decodes into its own.
type serviceRequest struct {
	Model       string           `json:"model"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
	Messages    []serviceMessage `json:"messages"`
}

type serviceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type serviceResponse struct {
	ID      string           `json:"id"`
	Type    string           `json:"type"`
	Role    string           `json:"role"`
	Model   string           `json:"model"`
	Content []serviceContent `json:"content"`
	Usage   serviceUsage     `json:"usage"`
}

type serviceContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type serviceUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// NewService starts a scripted service that will answer requests with
// the given replies in order. The server is shut down automatically
// when the test finishes.
func NewService(t *testing.T, replies ...string) *Service {
	t.Helper()

	svc := &Service{t: t, replies: replies}
	svc.server = httptest.NewServer(http.HandlerFunc(svc.handle))
	t.Cleanup(svc.server.Close)
	return svc
}

func (s *Service) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/messages" {
		s.t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Header.Get("x-api-key") == "" {
		s.t.Error("request missing x-api-key header")
	}
	if r.Header.Get("anthropic-version") == "" {
		s.t.Error("request missing anthropic-version header")
	}

	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.t.Errorf("failed to decode request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	captured := CapturedRequest{
		Model:       req.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if len(req.Messages) > 0 {
		captured.Instruction = req.Messages[0].Content
	}

	s.mu.Lock()
	s.calls = append(s.calls, captured)
	call := len(s.calls) - 1
	var reply string
	scripted := call < len(s.replies)
	if scripted {
		reply = s.replies[call]
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if !scripted {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"type":"error","error":{"type":"api_error","message":"scripted replies exhausted"}}`)
		return
	}

	resp := serviceResponse{
		ID:      fmt.Sprintf("msg_%03d", call+1),
		Type:    "message",
		Role:    "assistant",
		Model:   req.Model,
		Content: []serviceContent{{Type: "text", Text: reply}},
		Usage:   serviceUsage{InputTokens: 100, OutputTokens: 50},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.t.Errorf("failed to encode response: %v", err)
	}
}

// URL returns the base URL clients should use to reach the service.
func (s *Service) URL() string {
	return s.server.URL
}

// Client returns an API client wired to the scripted service.
func (s *Service) Client() *enhance.Client {
	s.t.Helper()

	client, err := enhance.NewClient(
		enhance.WithBaseURL(s.server.URL),
		enhance.WithAPIKey("test-key"),
	)
	if err != nil {
		s.t.Fatalf("failed to create client: %v", err)
	}
	return client
}

// Calls returns a copy of all requests seen so far.
func (s *Service) Calls() []CapturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	calls := make([]CapturedRequest, len(s.calls))
	copy(calls, s.calls)
	return calls
}

// CallCount returns the number of requests seen so far.
func (s *Service) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Temperatures returns the temperature of each request in order.
func (s *Service) Temperatures() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	temps := make([]float64, len(s.calls))
	for i, call := range s.calls {
		temps[i] = call.Temperature
	}
	return temps
}
