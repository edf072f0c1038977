package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppHost  string
	HTTPPort string
	AppEnv   string
	LogLevel string

	// SeedSampleData loads the demo tickets into the (otherwise empty)
	// in-memory store at startup.
	SeedSampleData bool

	// KafkaBrokers/KafkaTopicTicket — if set, ticket lifecycle events are
	// produced best-effort to this topic.
	KafkaBrokers     []string
	KafkaTopicTicket string

	// SearchServiceURL — if set, tickets are posted to search-service for
	// indexing (POST /search/index/ticket).
	SearchServiceURL string
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg := &Config{
		AppHost:          getEnv("APP_HOST", "0.0.0.0"),
		HTTPPort:         firstEnv("APP_PORT", "HTTP_PORT", "8094"),
		AppEnv:           getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SeedSampleData:   getBoolEnv("SEED_SAMPLE_DATA", false),
		KafkaBrokers:     splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopicTicket: getEnv("KAFKA_TOPIC_TICKET", ""),
		SearchServiceURL: getEnv("SEARCH_SERVICE_URL", ""),
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.HTTPPort); err != nil {
		return errors.New("config: APP_PORT must be a port number")
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopicTicket == "" {
		return errors.New("config: KAFKA_TOPIC_TICKET is required when KAFKA_BROKERS is set")
	}
	return nil
}

func (c *Config) Addr() string {
	return c.AppHost + ":" + c.HTTPPort
}

func splitList(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func firstEnv(keysAndDef ...string) string {
	if len(keysAndDef) == 0 {
		return ""
	}
	def := keysAndDef[len(keysAndDef)-1]
	for _, k := range keysAndDef[:len(keysAndDef)-1] {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
