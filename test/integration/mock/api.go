package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ReceivedRequest is one call recorded by ApiMock.
type ReceivedRequest struct {
	Headers map[string]string
	Queries map[string]string
	Body    map[string]any
}

type cannedResponse struct {
	status int
	body   any
}

// ApiMock stands in for an external HTTP API. It records every call and
// answers with the response configured for the method and path.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	received  map[string][]ReceivedRequest
	responses map[string]cannedResponse
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		received:  map[string][]ReceivedRequest{},
		responses: map[string]cannedResponse{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	if a.server == nil {
		return ""
	}
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	body, _ := io.ReadAll(r.Body)
	var request map[string]any
	_ = json.Unmarshal(body, &request)
	if request == nil {
		request = map[string]any{}
	}

	received := ReceivedRequest{
		Headers: map[string]string{},
		Queries: map[string]string{},
		Body:    request,
	}
	for name, values := range r.Header {
		received.Headers[name] = values[0]
	}
	for name, values := range r.URL.Query() {
		received.Queries[name] = values[0]
	}

	a.mu.Lock()
	a.received[key] = append(a.received[key], received)
	response, ok := a.responses[key]
	a.mu.Unlock()

	if !ok {
		response = cannedResponse{status: http.StatusOK, body: map[string]any{}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.status)
	payload, _ := json.Marshal(response.body)
	_, _ = w.Write(payload)
}

// SetResponse configures the answer for every call to method and path.
func (a *ApiMock) SetResponse(method, path string, status int, body any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = cannedResponse{status: status, body: body}
}

// Requests returns the calls received for method and path, oldest first.
func (a *ApiMock) Requests(method, path string) []ReceivedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]ReceivedRequest, len(a.received[method+path]))
	copy(out, a.received[method+path])
	return out
}

// Reset forgets recorded calls and configured responses.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.received = map[string][]ReceivedRequest{}
	a.responses = map[string]cannedResponse{}
}
