package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type EnvConfig struct {
	WatchConfigPath          string
	FlowID                   string
	RunOnce                  bool
	AllowPartialSourceErrors bool
	Window                   time.Duration
	Seen                     SeenEnvConfig
	HTTP                     HTTPEnvConfig
	Email                    EmailEnvConfig
	SMTP                     SMTPEnvConfig
	OpenAI                   OpenAIEnvConfig
	OTel                     OTelEnvConfig
}

// SeenEnvConfig selects and configures the seen-listing store. The file
// backend is the default; sqlite is available for installations that want
// TTL-based expiry.
type SeenEnvConfig struct {
	Backend string // "file" or "sqlite"
	File    string
	DSN     string
	Table   string
	TTL     time.Duration
}

type HTTPEnvConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// EmailEnvConfig mirrors the secrets the scheduler injects. When To or
// AppPassword is empty the notifier falls back to printing the digest.
type EmailEnvConfig struct {
	To          string
	From        string
	AppPassword string
}

type SMTPEnvConfig struct {
	Host               string
	Port               int
	User               string
	Password           string
	TLSMode            string
	InsecureSkipVerify bool
}

type OpenAIEnvConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature *float64
}

type OTelEnvConfig struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
	Protocol    string // "grpc" or "http/protobuf"
	Headers     map[string]string
	Insecure    bool
	SampleRatio float64
}

func LoadEnv() EnvConfig {
	otlpEndpoint := strings.TrimSpace(envString("OTEL_EXPORTER_OTLP_ENDPOINT", ""))

	openAIModel := strings.TrimSpace(envString("OPENAI_MODEL", ""))
	if openAIModel == "" {
		openAIModel = "gpt-4o-mini"
	}

	return EnvConfig{
		WatchConfigPath:          envString("WATCH_CONFIG", "internwatch.yaml"),
		FlowID:                   envString("FLOW_ID", "flow-1"),
		RunOnce:                  envBool("RUN_ONCE", true),
		AllowPartialSourceErrors: envBool("ALLOW_PARTIAL_SOURCE_ERRORS", true),
		Window:                   envDuration("LISTING_WINDOW", 2*time.Hour),
		Seen: SeenEnvConfig{
			Backend: strings.ToLower(envString("SEEN_STORE", "file")),
			File:    envString("SEEN_FILE", "seen_ids.txt"),
			DSN:     envString("SEEN_DB", "seen.db"),
			Table:   envString("SEEN_TABLE", ""),
			TTL:     envDuration("SEEN_TTL", 0),
		},
		HTTP: HTTPEnvConfig{
			Timeout:   envDuration("HTTP_TIMEOUT", 15*time.Second),
			UserAgent: envString("USER_AGENT", "Mozilla/5.0 (compatible; internwatch/0.1)"),
		},
		Email: EmailEnvConfig{
			To:          strings.TrimSpace(envString("EMAIL_TO", "")),
			From:        strings.TrimSpace(envString("EMAIL_FROM", "")),
			AppPassword: envString("EMAIL_APP_PASSWORD", ""),
		},
		SMTP: SMTPEnvConfig{
			Host:               envString("SMTP_HOST", "smtp.gmail.com"),
			Port:               envInt("SMTP_PORT", 465),
			User:               envString("SMTP_USER", ""),
			Password:           envString("SMTP_PASSWORD", ""),
			TLSMode:            envString("SMTP_TLS_MODE", ""),
			InsecureSkipVerify: envBool("SMTP_INSECURE_SKIP_VERIFY", false),
		},
		OpenAI: OpenAIEnvConfig{
			APIKey:      strings.TrimSpace(envString("OPENAI_API_KEY", "")),
			BaseURL:     strings.TrimSpace(envString("OPENAI_BASE_URL", "")),
			Model:       openAIModel,
			Temperature: envFloatPtr("OPENAI_TEMPERATURE"),
		},
		OTel: OTelEnvConfig{
			Enabled:     envBool("OTEL_ENABLED", false),
			ServiceName: strings.TrimSpace(envString("OTEL_SERVICE_NAME", "internwatch")),
			Endpoint:    otlpEndpoint,
			Protocol:    strings.ToLower(strings.TrimSpace(envString("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"))),
			Headers:     parseHeaders(envString("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    envBool("OTEL_EXPORTER_OTLP_INSECURE", defaultInsecure(otlpEndpoint)),
			SampleRatio: clamp01(envFloat("OTEL_TRACES_SAMPLE_RATIO", 1.0)),
		},
	}
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func envFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envFloatPtr(key string) *float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := parseDurationExtended(v)
	if err != nil {
		return fallback
	}
	return d
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func parseHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := map[string]string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}

func defaultInsecure(endpoint string) bool {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return true
	}
	if strings.Contains(endpoint, "://") {
		return strings.HasPrefix(endpoint, "http://")
	}
	return strings.HasPrefix(endpoint, "localhost:") ||
		strings.HasPrefix(endpoint, "127.0.0.1:") ||
		strings.HasPrefix(endpoint, "0.0.0.0:")
}
