package webhooksender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// DeliveryFailureCode is the code returned when the destination could not be reached.
	DeliveryFailureCode = -1
	// DeliveryTimeoutCode is the code returned when the destination did not answer in time.
	DeliveryTimeoutCode = -2

	// Default timeout for webhook requests
	defaultWebhookTimeout = 10 * time.Second
	// Maximum response body size to read for logging
	maxResponseBodySize = 1024

	userAgent = "ALWX-Bridge/1.0"
	// RequestIDHeader carries the relay request id to the destination.
	RequestIDHeader = "X-Request-ID"
)

// Response is what the destination answered.
type Response struct {
	StatusCode int
	// Body is truncated to maxResponseBodySize.
	Body string
}

// WebhookSender posts JSON payloads to webhook destinations.
type WebhookSender struct {
	client *http.Client
}

// NewWebhookSender creates a new WebhookSender. A nil client gets a default client bounded by defaultWebhookTimeout.
func NewWebhookSender(client *http.Client) *WebhookSender {
	if client == nil {
		client = &http.Client{
			Timeout: defaultWebhookTimeout,
		}
	}
	return &WebhookSender{
		client: client,
	}
}

// NewWebhookSenderWithTimeout creates a WebhookSender whose client gives up after timeout.
func NewWebhookSenderWithTimeout(timeout time.Duration) *WebhookSender {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}
	return NewWebhookSender(&http.Client{Timeout: timeout})
}

// SendWebhook makes exactly one POST of body to targetURL.
// Any HTTP status is returned as a Response; only transport failures are errors.
func (w *WebhookSender) SendWebhook(ctx context.Context, targetURL string, requestID string, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, richerrors.Error{
				Code: DeliveryFailureCode,
				Err:  fmt.Errorf("invalid URL: %w", err),
			}
		}
		return nil, fmt.Errorf("failed to create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, richerrors.Error{
				Code: DeliveryTimeoutCode,
				Err:  fmt.Errorf("webhook timed out: %w", err),
			}
		}
		return nil, richerrors.Error{
			Code: DeliveryFailureCode,
			Err:  fmt.Errorf("failed to POST to webhook: %w", err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	return &Response{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsTimeout reports whether err is a delivery timeout returned by SendWebhook.
func IsTimeout(err error) bool {
	richErr, ok := richerrors.AsRichError(err)
	return ok && richErr.Code == DeliveryTimeoutCode
}
