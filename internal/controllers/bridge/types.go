package bridge

import "github.com/alwx/bridge/internal/services/deliverylog"

// AlertResponse is returned by the alert route.
type AlertResponse struct {
	// Status is a human-readable outcome, e.g. "Alert sent successfully".
	Status string `json:"status"`
	// Code is the destination status code, set on failure.
	Code int `json:"code,omitempty"`
}

// MockAlertResponse is returned by the mock alert trigger.
type MockAlertResponse struct {
	// Status is "success" or "error".
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DeliveriesResponse lists recent relay attempts.
type DeliveriesResponse struct {
	Deliveries []deliverylog.Record `json:"deliveries"`
}

// ErrorResponse is the body of every error answered by the error handler.
type ErrorResponse struct {
	Error string `json:"error"`
}
