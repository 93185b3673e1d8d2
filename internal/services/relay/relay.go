// Package relay forwards one inbound JSON payload to one configured destination.
package relay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/alwx/bridge/internal/celcondition"
	"github.com/alwx/bridge/internal/services/deliverylog"
	"github.com/alwx/bridge/internal/services/webhooksender"
	"github.com/google/cel-go/cel"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Outcome classifies a relay attempt.
type Outcome string

const (
	// OutcomeDelivered means the destination answered with the success status.
	OutcomeDelivered Outcome = "delivered"
	// OutcomeRejected means the destination answered with any other status.
	OutcomeRejected Outcome = "rejected"
	// OutcomeFailed means the destination could not be reached.
	OutcomeFailed Outcome = "failed"
	// OutcomeTimedOut means the destination did not answer within the timeout.
	OutcomeTimedOut Outcome = "timed_out"
	// OutcomeSkipped means the forward condition was false and nothing was sent.
	OutcomeSkipped Outcome = "skipped"
)

const noDataMessage = "No JSON data received"

// Sender makes the single outbound POST.
type Sender interface {
	SendWebhook(ctx context.Context, targetURL string, requestID string, body []byte) (*webhooksender.Response, error)
}

// Ledger records relay results.
type Ledger interface {
	Add(rec deliverylog.Record)
}

// Result is the outcome of one relay attempt.
type Result struct {
	RequestID string
	Route     string
	Outcome   Outcome
	// StatusCode is the destination status, 0 when no response was received.
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Relay is one configured route.
type Relay struct {
	route   Route
	program cel.Program
	sender  Sender
	ledger  Ledger
}

// New validates route and compiles its condition. ledger may be nil.
func New(route Route, sender Sender, ledger Ledger) (*Relay, error) {
	if err := route.validate(); err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, errors.New("sender is nil")
	}
	r := &Relay{
		route:  route,
		sender: sender,
		ledger: ledger,
	}
	if route.Condition != "" {
		prg, err := celcondition.PrepareCondition(route.Condition)
		if err != nil {
			return nil, fmt.Errorf("invalid condition for route %s: %w", route.Name, err)
		}
		r.program = prg
	}
	return r, nil
}

// Name is the route label.
func (r *Relay) Name() string {
	return r.route.Name
}

// Forward validates body and relays it with exactly one outbound call.
// The returned error is only set for invalid input, as a 400 richerrors.Error.
// Delivery problems are reported through the Result.
func (r *Relay) Forward(ctx context.Context, body []byte) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("route", r.route.Name).Logger()

	if err := r.validateBody(body); err != nil {
		logger.Debug().Err(err).Msg("Rejected inbound payload.")
		return nil, err
	}

	res := &Result{
		RequestID: uuid.NewString(),
		Route:     r.route.Name,
	}
	logger = logger.With().Str("requestId", res.RequestID).Logger()

	if r.program != nil {
		shouldForward, err := celcondition.EvaluateCondition(r.program, body)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to evaluate forward condition, not forwarding.")
		}
		if !shouldForward {
			res.Outcome = OutcomeSkipped
			r.finish(&logger, res)
			return res, nil
		}
	}

	payload, err := r.buildPayload(body)
	if err != nil {
		return nil, fmt.Errorf("failed to build outbound payload: %w", err)
	}

	start := time.Now()
	resp, err := r.sender.SendWebhook(ctx, r.route.DestinationURL, res.RequestID, payload)
	res.Duration = time.Since(start)
	switch {
	case err != nil && webhooksender.IsTimeout(err):
		res.Outcome = OutcomeTimedOut
		res.Err = err
	case err != nil:
		res.Outcome = OutcomeFailed
		res.Err = err
	default:
		res.StatusCode = resp.StatusCode
		if r.route.SuccessStatus == 0 || resp.StatusCode == r.route.SuccessStatus {
			res.Outcome = OutcomeDelivered
		} else {
			res.Outcome = OutcomeRejected
			logger = logger.With().Str("responseBody", resp.Body).Logger()
		}
	}
	r.finish(&logger, res)
	return res, nil
}

func (r *Relay) finish(logger *zerolog.Logger, res *Result) {
	observe(res)
	if r.ledger != nil {
		rec := deliverylog.Record{
			RequestID:  res.RequestID,
			Route:      res.Route,
			Outcome:    string(res.Outcome),
			StatusCode: res.StatusCode,
			DurationMs: res.Duration.Milliseconds(),
			CreatedAt:  time.Now(),
		}
		if res.Err != nil {
			rec.Error = res.Err.Error()
		}
		r.ledger.Add(rec)
	}

	event := logger.Info()
	if res.Outcome == OutcomeFailed || res.Outcome == OutcomeTimedOut || res.Outcome == OutcomeRejected {
		event = logger.Warn().Err(res.Err)
	}
	event.Str("outcome", string(res.Outcome)).
		Int("statusCode", res.StatusCode).
		Dur("duration", res.Duration).
		Msg("Relay attempt finished.")
}

func (r *Relay) validateBody(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return badRequest(noDataMessage)
	}
	if !gjson.ValidBytes(trimmed) {
		return badRequest("Invalid JSON payload")
	}
	doc := gjson.ParseBytes(trimmed)

	fields := r.route.requiredFields()
	if len(fields) == 0 {
		if isEmptyValue(doc) {
			return badRequest(noDataMessage)
		}
		return nil
	}
	for _, field := range fields {
		if !doc.IsObject() || isEmptyValue(doc.Get(field)) {
			return badRequest(fmt.Sprintf("Missing %s field", field))
		}
	}
	return nil
}

// isEmptyValue reports missing, null, "", {} and [] values.
func isEmptyValue(v gjson.Result) bool {
	if !v.Exists() {
		return true
	}
	switch v.Type {
	case gjson.Null:
		return true
	case gjson.String:
		return v.Str == ""
	case gjson.JSON:
		empty := true
		v.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return empty
	}
	return false
}

func (r *Relay) buildPayload(body []byte) ([]byte, error) {
	if r.route.Transform == TransformPassthrough {
		return body, nil
	}
	raw := gjson.GetBytes(body, r.route.SourceField).Raw
	return sjson.SetRawBytes([]byte(`{}`), r.route.TargetField, []byte(raw))
}

func badRequest(msg string) error {
	return richerrors.Error{
		ExternalMsg: msg,
		Err:         errors.New(msg),
		Code:        http.StatusBadRequest,
	}
}
