package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// ModelSource selects where the frozen model and label list are read from
type ModelSource string

const (
	// SourceFile reads the model artifacts from the local filesystem
	SourceFile ModelSource = "file"
	// SourceAzure reads the model artifacts from an Azure blob container
	SourceAzure ModelSource = "azure"
)

type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	MaxRequestBodySize int64

	// Model artifacts
	ModelSource ModelSource
	ModelPath   string
	LabelsPath  string

	// Azure settings, required when ModelSource is SourceAzure
	AzureAccountName string
	AzureAccountKey  string
	AzureContainer   string

	// Path to the onnxruntime shared library, empty for the platform default
	OrtLibraryPath string
}

func (c *Config) ServerAddress() string {
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

func LoadFromEnv() (*Config, error) {
	// Set defaults
	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 10*1024*1024), // 10MB
		ModelSource:        ModelSource(getEnvOrDefault("MODEL_SOURCE", string(SourceFile))),
		ModelPath:          getEnvOrDefault("MODEL_PATH", "models/mobilenet_v2.onnx"),
		LabelsPath:         getEnvOrDefault("LABELS_PATH", "models/labels.txt"),
		AzureAccountName:   os.Getenv("AZURE_ACCOUNT_NAME"),
		AzureAccountKey:    os.Getenv("AZURE_ACCOUNT_KEY"),
		AzureContainer:     os.Getenv("AZURE_CONTAINER"),
		OrtLibraryPath:     os.Getenv("ONNXRUNTIME_SHARED_LIBRARY"),
	}

	// Validate port is numeric and in range
	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxRequestBodySize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", cfg.MaxRequestBodySize)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be > 0 (got %s)", cfg.RequestTimeout)
	}
	if cfg.ModelPath == "" || cfg.LabelsPath == "" {
		return nil, fmt.Errorf("MODEL_PATH and LABELS_PATH must be set")
	}

	switch cfg.ModelSource {
	case SourceFile:
	case SourceAzure:
		if cfg.AzureAccountName == "" || cfg.AzureAccountKey == "" || cfg.AzureContainer == "" {
			return nil, fmt.Errorf("MODEL_SOURCE=azure requires AZURE_ACCOUNT_NAME, AZURE_ACCOUNT_KEY and AZURE_CONTAINER")
		}
	default:
		return nil, fmt.Errorf("invalid MODEL_SOURCE: %q", cfg.ModelSource)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
