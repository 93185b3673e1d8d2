package config

import (
	"strings"
	"time"
)

const (
	defaultHost             = "0.0.0.0"
	defaultPort             = 10000
	defaultMonPort          = 8888
	defaultLogLevel         = "info"
	defaultServiceName      = "alwx-bridge"
	defaultOutboundTimeout  = 10 * time.Second
	defaultDeliveryLogTTL   = 10 * time.Minute
	defaultMockAlertMessage = "**ALW-X Test Alert**: The Bridge is fully operational and ready to send trades!"
)

// Settings contains the application config
type Settings struct {
	Host             string        `env:"HOST"`
	Port             int           `env:"PORT"`
	MonPort          int           `env:"MON_PORT"`
	EnablePprof      bool          `env:"ENABLE_PPROF"`
	LogLevel         string        `env:"LOG_LEVEL"`
	Debug            bool          `env:"DEBUG"`
	ServiceName      string        `env:"SERVICE_NAME"`
	OutboundTimeout  time.Duration `env:"OUTBOUND_TIMEOUT"`
	DeliveryLogTTL   time.Duration `env:"DELIVERY_LOG_TTL"`
	MockAlertMessage string        `env:"MOCK_ALERT_MESSAGE"`

	// Alert relays {"message": ...} to a Discord webhook as {"content": ...}.
	Alert AlertRoute `envPrefix:"ALERT_"`
	// Forward relays any JSON body unchanged, e.g. to a Make.com scenario.
	Forward ForwardRoute `envPrefix:"FORWARD_"`
}

// AlertRoute configures the wrapping alert route.
type AlertRoute struct {
	DestinationURL string `env:"DESTINATION_URL"`
	SourceField    string `env:"SOURCE_FIELD"`
	TargetField    string `env:"TARGET_FIELD"`
	SuccessStatus  int    `env:"SUCCESS_STATUS"`
	Condition      string `env:"CONDITION"`
}

// ForwardRoute configures the pass-through route.
type ForwardRoute struct {
	DestinationURL string   `env:"DESTINATION_URL"`
	RequiredFields []string `env:"REQUIRED_FIELDS"`
	// SuccessStatus of 0 accepts any destination status.
	SuccessStatus int    `env:"SUCCESS_STATUS"`
	Condition     string `env:"CONDITION"`
}

// SetDefaults fills every unset field with its default.
func (s *Settings) SetDefaults() {
	if s.Host == "" {
		s.Host = defaultHost
	}
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.Debug {
		s.LogLevel = "debug"
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.OutboundTimeout <= 0 {
		s.OutboundTimeout = defaultOutboundTimeout
	}
	if s.DeliveryLogTTL <= 0 {
		s.DeliveryLogTTL = defaultDeliveryLogTTL
	}
	if s.MockAlertMessage == "" {
		s.MockAlertMessage = defaultMockAlertMessage
	}
	if s.Alert.SourceField == "" {
		s.Alert.SourceField = "message"
	}
	if s.Alert.TargetField == "" {
		s.Alert.TargetField = "content"
	}
	if s.Alert.SuccessStatus == 0 {
		s.Alert.SuccessStatus = 204
	}
	s.Forward.RequiredFields = cleanFields(s.Forward.RequiredFields)
}

// cleanFields trims each entry of a comma-separated list and drops blanks.
func cleanFields(fields []string) []string {
	cleaned := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			cleaned = append(cleaned, field)
		}
	}
	return cleaned
}
