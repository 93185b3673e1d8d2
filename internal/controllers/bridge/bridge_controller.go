package bridge

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/alwx/bridge/internal/services/deliverylog"
	"github.com/alwx/bridge/internal/services/relay"
	"github.com/gofiber/fiber/v2"
)

const (
	homeMessage = "ALW-X Bridge is online!"
	testMessage = "Test route working!"
)

// Relay forwards one inbound payload to a configured destination.
type Relay interface {
	Forward(ctx context.Context, body []byte) (*relay.Result, error)
}

// DeliveryLog exposes recent relay attempts.
type DeliveryLog interface {
	List(route string) []deliverylog.Record
	Get(requestID string) (deliverylog.Record, bool)
}

// BridgeController serves the relay routes.
type BridgeController struct {
	alert            Relay
	forward          Relay
	deliveries       DeliveryLog
	mockAlertPayload []byte
}

// NewBridgeController creates a new BridgeController. alert and forward may be nil when the route is not configured.
func NewBridgeController(alert, forward Relay, deliveries DeliveryLog, mockAlertPayload []byte) *BridgeController {
	return &BridgeController{
		alert:            alert,
		forward:          forward,
		deliveries:       deliveries,
		mockAlertPayload: mockAlertPayload,
	}
}

// Home godoc
// @Summary      Liveness message
// @Tags         Bridge
// @Produce      plain
// @Success      200  {string}  string  "ALW-X Bridge is online!"
// @Router       / [get]
func (b *BridgeController) Home(c *fiber.Ctx) error {
	return c.SendString(homeMessage)
}

// Test godoc
// @Summary      Test route
// @Tags         Bridge
// @Produce      plain
// @Success      200  {string}  string  "Test route working!"
// @Router       /test [get]
func (b *BridgeController) Test(c *fiber.Ctx) error {
	return c.SendString(testMessage)
}

// MockAlert godoc
// @Summary      Send a test alert
// @Description  Sends the configured test message through the alert route.
// @Tags         Bridge
// @Produce      json
// @Success      200  {object}  MockAlertResponse  "Alert sent to Discord"
// @Success      202  {object}  MockAlertResponse  "Skipped by condition"
// @Failure      500  {object}  MockAlertResponse  "Destination rejected the alert"
// @Failure      502  {object}  MockAlertResponse  "Destination unreachable"
// @Failure      504  {object}  MockAlertResponse  "Destination timed out"
// @Router       /mock-alert [get]
func (b *BridgeController) MockAlert(c *fiber.Ctx) error {
	res, err := b.alert.Forward(c.UserContext(), b.mockAlertPayload)
	if err != nil {
		return err
	}
	switch res.Outcome {
	case relay.OutcomeDelivered:
		return c.JSON(MockAlertResponse{Status: "success", Message: "Alert sent to Discord!"})
	case relay.OutcomeSkipped:
		return c.Status(fiber.StatusAccepted).JSON(MockAlertResponse{Status: "skipped", Message: "Alert skipped by condition"})
	}
	status, code := failureStatus(res)
	return c.Status(status).JSON(MockAlertResponse{
		Status:  "error",
		Message: fmt.Sprintf("Failed to send. Code: %d", code),
	})
}

// SendAlert godoc
// @Summary      Relay an alert
// @Description  Forwards {"message": ...} to the alert destination as {"content": ...}.
// @Tags         Bridge
// @Accept       json
// @Produce      json
// @Param        request  body      object         true  "Alert with a message field"
// @Success      200      {object}  AlertResponse  "Alert sent successfully"
// @Success      202      {object}  AlertResponse  "Skipped by condition"
// @Failure      400      {object}  ErrorResponse  "Missing message field"
// @Failure      500      {object}  AlertResponse  "Destination rejected the alert"
// @Failure      502      {object}  AlertResponse  "Destination unreachable"
// @Failure      504      {object}  AlertResponse  "Destination timed out"
// @Router       /alert [post]
func (b *BridgeController) SendAlert(c *fiber.Ctx) error {
	res, err := b.alert.Forward(c.UserContext(), c.Body())
	if err != nil {
		return err
	}
	switch res.Outcome {
	case relay.OutcomeDelivered:
		return c.JSON(AlertResponse{Status: "Alert sent successfully"})
	case relay.OutcomeSkipped:
		return c.Status(fiber.StatusAccepted).JSON(AlertResponse{Status: "Alert skipped by condition"})
	}
	status, code := failureStatus(res)
	return c.Status(status).JSON(AlertResponse{
		Status: fmt.Sprintf("Failed to send alert. Code: %d", code),
		Code:   code,
	})
}

// Forward godoc
// @Summary      Relay any JSON payload
// @Description  Forwards the request body unchanged and mirrors the destination status.
// @Tags         Bridge
// @Accept       json
// @Produce      plain
// @Param        request  body      object  true  "Arbitrary JSON"
// @Success      200      {string}  string  "Forwarded with status 200"
// @Success      202      {string}  string  "Skipped by condition"
// @Failure      400      {object}  ErrorResponse  "No JSON data received"
// @Failure      502      {string}  string  "Forward failed: destination unreachable"
// @Failure      504      {string}  string  "Forward failed: destination timed out"
// @Router       /alwx [post]
func (b *BridgeController) Forward(c *fiber.Ctx) error {
	res, err := b.forward.Forward(c.UserContext(), c.Body())
	if err != nil {
		return err
	}
	switch res.Outcome {
	case relay.OutcomeSkipped:
		return c.Status(fiber.StatusAccepted).SendString("Skipped by condition")
	case relay.OutcomeTimedOut:
		return c.Status(fiber.StatusGatewayTimeout).SendString("Forward failed: destination timed out")
	case relay.OutcomeFailed:
		return c.Status(fiber.StatusBadGateway).SendString("Forward failed: destination unreachable")
	}
	return c.Status(res.StatusCode).SendString(fmt.Sprintf("Forwarded with status %d", res.StatusCode))
}

// ListDeliveries godoc
// @Summary      List recent relay attempts
// @Description  Returns unexpired delivery records, newest first.
// @Tags         Deliveries
// @Produce      json
// @Param        route  query     string              false  "Filter by route name"
// @Success      200    {object}  DeliveriesResponse  "Recent deliveries"
// @Router       /v1/deliveries [get]
func (b *BridgeController) ListDeliveries(c *fiber.Ctx) error {
	return c.JSON(DeliveriesResponse{Deliveries: b.deliveries.List(c.Query("route"))})
}

// GetDelivery godoc
// @Summary      Get one relay attempt
// @Description  Returns the delivery record for a request id while it has not expired.
// @Tags         Deliveries
// @Produce      json
// @Param        requestId  path      string              true  "Request ID sent as X-Request-ID"
// @Success      200        {object}  deliverylog.Record  "Delivery record"
// @Failure      404        {object}  ErrorResponse       "Delivery not found"
// @Router       /v1/deliveries/{requestId} [get]
func (b *BridgeController) GetDelivery(c *fiber.Ctx) error {
	rec, found := b.deliveries.Get(c.Params("requestId"))
	if !found {
		return richerrors.Error{
			ExternalMsg: "Delivery not found",
			Err:         fmt.Errorf("no delivery record for request %q", c.Params("requestId")),
			Code:        fiber.StatusNotFound,
		}
	}
	return c.JSON(rec)
}

// failureStatus returns the status to answer with and the code to report for a failed attempt.
func failureStatus(res *relay.Result) (int, int) {
	switch res.Outcome {
	case relay.OutcomeTimedOut:
		return fiber.StatusGatewayTimeout, fiber.StatusGatewayTimeout
	case relay.OutcomeFailed:
		return fiber.StatusBadGateway, fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError, res.StatusCode
}
