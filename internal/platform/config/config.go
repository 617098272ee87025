package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures alert service configuration.
type Server struct {
	Addr        string
	PostgresDSN string
	KafkaConfig Kafka
}

// Kafka configures the optional alert event publisher.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Client captures client alert controller configuration.
type Client struct {
	RedisURL     string
	AlertAPIBase string
	FixTimeout   time.Duration
	FallbackLat  float64
	FallbackLon  float64
}

// Fallback coordinate when no real fix is available (Nairobi CBD).
const (
	DefaultFallbackLat = -1.2921
	DefaultFallbackLon = 36.8219
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SAFESIGNAL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	cfg := Server{
		Addr:        addr,
		PostgresDSN: os.Getenv("SAFESIGNAL_POSTGRES_DSN"),
	}

	if brokers := os.Getenv("SAFESIGNAL_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaConfig = Kafka{
			Brokers: strings.Split(brokers, ","),
			Topic:   envOr("SAFESIGNAL_KAFKA_TOPIC", "safesignal.alerts"),
		}
	}

	return cfg
}

// ClientFromEnv builds a Client config from environment variables.
func ClientFromEnv() Client {
	return Client{
		RedisURL:     os.Getenv("SAFESIGNAL_REDIS_URL"),
		AlertAPIBase: os.Getenv("SAFESIGNAL_ALERT_API"),
		FixTimeout:   envDuration("SAFESIGNAL_FIX_TIMEOUT", 10*time.Second),
		FallbackLat:  envFloat("SAFESIGNAL_FALLBACK_LAT", DefaultFallbackLat),
		FallbackLon:  envFloat("SAFESIGNAL_FALLBACK_LON", DefaultFallbackLon),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
