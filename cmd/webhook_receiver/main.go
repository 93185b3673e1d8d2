package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// A local destination for manual testing. It logs every POST and answers with a fixed status.
func main() {
	port := flag.Int("port", 8081, "port to listen on")
	status := flag.Int("status", fiber.StatusNoContent, "status code to answer with")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Str("app", "webhook-receiver").Logger()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/*", func(c *fiber.Ctx) error {
		event := logger.Info().
			Str("path", c.Path()).
			Str("requestId", c.Get("X-Request-ID"))
		body := c.Body()
		if gjson.ValidBytes(body) {
			event = event.RawJSON("payload", body)
		} else {
			event = event.Bytes("payload", body)
		}
		event.Msg("Webhook received.")
		return c.SendStatus(*status)
	})

	logger.Info().Int("port", *port).Int("status", *status).Msg("Webhook receiver listening.")
	if err := app.Listen(":" + strconv.Itoa(*port)); err != nil {
		logger.Fatal().Err(err).Msg("Webhook receiver failed.")
	}
}
