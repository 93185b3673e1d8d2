package e2e_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"
)

// WebhookReceiver is a stub destination that records every call it receives.
type WebhookReceiver struct {
	server     *httptest.Server
	received   []WebhookCall
	mu         sync.RWMutex
	expectCall chan struct{}
	status     atomic.Int32
	delay      atomic.Int64
}

type WebhookCall struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
	Time    time.Time         `json:"time"`
}

// NewWebhookReceiver starts a receiver answering with status.
func NewWebhookReceiver(status int) *WebhookReceiver {
	wr := &WebhookReceiver{
		received:   make([]WebhookCall, 0),
		expectCall: make(chan struct{}, 16),
	}
	wr.status.Store(int32(status))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}

		headers := make(map[string]string)
		for key, values := range r.Header {
			if len(values) > 0 {
				headers[key] = values[0]
			}
		}

		call := WebhookCall{
			Method:  r.Method,
			URL:     r.URL.String(),
			Headers: headers,
			Body:    string(body),
			Time:    time.Now(),
		}

		wr.mu.Lock()
		wr.received = append(wr.received, call)
		wr.mu.Unlock()

		select {
		case wr.expectCall <- struct{}{}:
		default:
		}

		if delay := time.Duration(wr.delay.Load()); delay > 0 {
			time.Sleep(delay)
		}
		w.WriteHeader(int(wr.status.Load()))
	}))

	wr.server = server
	return wr
}

func (wr *WebhookReceiver) URL() string {
	return wr.server.URL
}

// SetDelay makes the receiver wait before answering.
func (wr *WebhookReceiver) SetDelay(d time.Duration) {
	wr.delay.Store(int64(d))
}

func (wr *WebhookReceiver) GetReceivedCalls() []WebhookCall {
	wr.mu.RLock()
	defer wr.mu.RUnlock()

	result := make([]WebhookCall, len(wr.received))
	copy(result, wr.received)
	return result
}

func (wr *WebhookReceiver) WaitForCall(timeout time.Duration) bool {
	select {
	case <-wr.expectCall:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (wr *WebhookReceiver) Close() {
	wr.server.Close()
}
