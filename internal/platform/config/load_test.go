package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/property-manager/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local", config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("CORS.AllowedOrigins = %v, want 2 local origins", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod", config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Client.RateLimit.RequestsPerSecond != 50 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want 50", cfg.Client.RateLimit.RequestsPerSecond)
	}
	if cfg.Client.BaseURL == config.DefaultBaseURL {
		t.Error("Client.BaseURL = default, want prod override")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local", config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.BaseURL != config.DefaultBaseURL {
		t.Errorf("Client.BaseURL = %q, want %q (from base)", cfg.Client.BaseURL, config.DefaultBaseURL)
	}
	if cfg.Client.Retry.MaxAttempts != 1 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 1 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Server.DetailsWorkers != 3 {
		t.Errorf("Server.DetailsWorkers = %d, want 3 (from base)", cfg.Server.DetailsWorkers)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "")

	cfg, err := config.Load("test", config.WithConfigDir(dir), config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
	if cfg.Client.BaseURL != config.DefaultBaseURL {
		t.Errorf("Client.BaseURL = %q, want default %q", cfg.Client.BaseURL, config.DefaultBaseURL)
	}
	if cfg.Server.RequestTimeout != 15*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 15s", cfg.Server.RequestTimeout)
	}
}

func TestLoad_EnvOverrideBaseURL(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_BASE_URL", "https://api.example.com/api")

	cfg, err := config.Load("local", config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.BaseURL != "https://api.example.com/api" {
		t.Errorf("Client.BaseURL = %q, want env override", cfg.Client.BaseURL)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local", config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "4")

	cfg, err := config.Load("local", config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 4 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 4 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_EnvOverrideList(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load("local", config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("CORS.AllowedOrigins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.CORS.AllowedOrigins[i] != want[i] {
			t.Errorf("CORS.AllowedOrigins[%d] = %q, want %q", i, cfg.CORS.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoad_EnvFileLayer(t *testing.T) {
	t.Chdir("../../..")

	envFile := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envFile, "APP_CLIENT_BASE_URL=http://from-dotenv:5000/api\nAPP_SERVER_PORT=9191\nUNRELATED=1\n")

	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local", config.WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.BaseURL != "http://from-dotenv:5000/api" {
		t.Errorf("Client.BaseURL = %q, want value from .env", cfg.Client.BaseURL)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (process env wins over .env)", cfg.Server.Port)
	}
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("local", config.WithEnvFile(filepath.Join(t.TempDir(), "absent.env")))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent", config.WithEnvFile(""))
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_RelativeBaseURL(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.BaseURL = "/api"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for relative base URL")
	}
}

func TestValidate_RateLimitWithoutBurst(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.RateLimit.RequestsPerSecond = 10

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for rate limit without burst")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_RequestTimeoutNotBelowWriteTimeout(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.RequestTimeout = cfg.Server.WriteTimeout

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "server.request_timeout") {
		t.Fatalf("Validate() = %v, want request_timeout error", err)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   20 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 15 * time.Second,
			DetailsWorkers: 3,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: config.DefaultBaseURL,
			Timeout: 10 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     1,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     2 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
