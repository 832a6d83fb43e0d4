package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultJWTAccessTTL  = "24h"
	defaultPaymentWindow = "5m"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultRazorpayKey   = ""
	defaultSweepInterval = "30s"
)

type RuntimeConfig struct {
	AppEnv            string
	JWTSecret         string
	JWTAccessTTL      time.Duration
	PaymentWindow     time.Duration
	SweepInterval     time.Duration
	RazorpayKeyID     string
	RazorpayKeySecret string
	RedisAddr         string
	RedisPassword     string
	SMTPHost          string
	SMTPPort          string
	EmailFrom         string
	EmailPassword     string
}

func LoadRuntimeConfig() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.RazorpayKeyID = strings.TrimSpace(getEnv("RAZORPAY_KEY_ID", defaultRazorpayKey))
	cfg.RazorpayKeySecret = strings.TrimSpace(getEnv("RAZORPAY_KEY_SECRET", defaultRazorpayKey))
	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.SMTPHost = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	cfg.SMTPPort = strings.TrimSpace(getEnv("SMTP_PORT", "587"))
	cfg.EmailFrom = strings.TrimSpace(os.Getenv("EMAIL_FROM"))
	cfg.EmailPassword = os.Getenv("EMAIL_PASSWORD")

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.PaymentWindow, err = parseDurationEnv("PAYMENT_WINDOW", defaultPaymentWindow)
	if err != nil {
		return nil, err
	}

	cfg.SweepInterval, err = parseDurationEnv("PAYMENT_SWEEP_INTERVAL", defaultSweepInterval)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("runtime config: env=%s payment_window=%s redis=%t smtp=%t",
		cfg.AppEnv, cfg.PaymentWindow, cfg.RedisAddr != "", cfg.SMTPHost != "")

	return cfg, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.PaymentWindow <= 0 {
		return fmt.Errorf("PAYMENT_WINDOW must be > 0")
	}
	if cfg.SweepInterval <= 0 {
		return fmt.Errorf("PAYMENT_SWEEP_INTERVAL must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
			return fmt.Errorf("in prod/release RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
