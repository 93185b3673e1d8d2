package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	_ "github.com/alwx/bridge/docs" // Import Swagger docs
	"github.com/alwx/bridge/internal/config"
	"github.com/alwx/bridge/internal/controllers/bridge"
	"github.com/alwx/bridge/internal/services/deliverylog"
	"github.com/alwx/bridge/internal/services/relay"
	"github.com/alwx/bridge/internal/services/webhooksender"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	"github.com/tidwall/sjson"
)

const (
	// AlertRouteName labels the Discord alert route.
	AlertRouteName = "alert"
	// ForwardRouteName labels the pass-through route.
	ForwardRouteName = "forward"
)

// CreateServers builds the relays from settings and returns the web app.
func CreateServers(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	sender := webhooksender.NewWebhookSenderWithTimeout(settings.OutboundTimeout)
	deliveries := deliverylog.New(settings.DeliveryLogTTL)

	alertRelay, forwardRelay, err := createRelays(settings, sender, deliveries, logger)
	if err != nil {
		return nil, err
	}

	mockAlertPayload, err := sjson.SetBytes([]byte(`{}`), settings.Alert.SourceField, settings.MockAlertMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to build mock alert payload: %w", err)
	}

	controller := bridge.NewBridgeController(nilIfUnset(alertRelay), nilIfUnset(forwardRelay), deliveries, mockAlertPayload)
	return CreateFiberApp(logger, controller, alertRelay != nil, forwardRelay != nil, settings), nil
}

// createRelays builds one relay per configured route. A route without a destination is left nil.
func createRelays(settings *config.Settings, sender relay.Sender, ledger relay.Ledger, logger zerolog.Logger) (*relay.Relay, *relay.Relay, error) {
	var alertRelay, forwardRelay *relay.Relay
	var err error

	if settings.Alert.DestinationURL == "" {
		logger.Warn().Str("route", AlertRouteName).Msg("ALERT_DESTINATION_URL is not set, alert routes are disabled.")
	} else {
		alertRelay, err = relay.New(relay.Route{
			Name:           AlertRouteName,
			DestinationURL: settings.Alert.DestinationURL,
			Transform:      relay.TransformWrap,
			SourceField:    settings.Alert.SourceField,
			TargetField:    settings.Alert.TargetField,
			SuccessStatus:  settings.Alert.SuccessStatus,
			Condition:      settings.Alert.Condition,
		}, sender, ledger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create alert relay: %w", err)
		}
	}

	if settings.Forward.DestinationURL == "" {
		logger.Warn().Str("route", ForwardRouteName).Msg("FORWARD_DESTINATION_URL is not set, forward route is disabled.")
	} else {
		forwardRelay, err = relay.New(relay.Route{
			Name:           ForwardRouteName,
			DestinationURL: settings.Forward.DestinationURL,
			Transform:      relay.TransformPassthrough,
			RequiredFields: settings.Forward.RequiredFields,
			SuccessStatus:  settings.Forward.SuccessStatus,
			Condition:      settings.Forward.Condition,
		}, sender, ledger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create forward relay: %w", err)
		}
	}
	return alertRelay, forwardRelay, nil
}

// nilIfUnset keeps a nil *relay.Relay from becoming a non-nil interface.
func nilIfUnset(r *relay.Relay) bridge.Relay {
	if r == nil {
		return nil
	}
	return r
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, controller *bridge.BridgeController, alertEnabled, forwardEnabled bool, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting ALW-X Bridge...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	logger.Info().Msg("Registering routes...")

	app.Get("/", controller.Home)
	app.Get("/test", controller.Test)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	if alertEnabled {
		app.Get("/mock-alert", controller.MockAlert)
		app.Post("/alert", controller.SendAlert)
	}
	if forwardEnabled {
		app.Post("/alwx", controller.Forward)
	}

	app.Get("/v1/deliveries", controller.ListDeliveries)
	app.Get("/v1/deliveries/:requestId", controller.GetDelivery)

	if settings.Debug {
		for _, route := range app.GetRoutes(true) {
			logger.Debug().Str("method", route.Method).Str("path", route.Path).Msg("Registered route.")
		}
	}

	return app
}

// ErrorHandler logs errors with the request logger and answers {"error": message}.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError // Default 500 statuscode
	message := "Internal error."

	var fiberErr *fiber.Error
	var richErr richerrors.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else if errors.As(err, &richErr) {
		if richErr.ExternalMsg != "" {
			message = richErr.ExternalMsg
		}
		if richErr.Code > 0 {
			code = richErr.Code
		}
	}

	// log all errors except 404
	if code != fiber.StatusNotFound {
		logger := zerolog.Ctx(ctx.UserContext())
		logger.Err(err).Int("httpStatusCode", code).
			Str("httpPath", strings.TrimPrefix(ctx.Path(), "/")).
			Str("httpMethod", ctx.Method()).
			Msg("caught an error from http request")
	}

	return ctx.Status(code).JSON(bridge.ErrorResponse{Error: message})
}
