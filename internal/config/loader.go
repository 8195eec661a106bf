package config

import (
	"basic_server/types"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultReadBufferSize = 1024
	minReadBufferSize     = 64
	maxReadBufferSize     = 1048576
)

type config struct {
	bindAddress string
	port        string

	mode            types.ServerMode
	documentRoot    string
	defaultDocument string

	readBufferSize int
	readTimeout    time.Duration
	writeTimeout   time.Duration
	workers        int
	closeHeader    bool

	logLevel  string
	logFormat string

	warnings []string
}

func parse() (*config, error) {
	cfg := &config{}

	mode, err := parseMode()
	if err != nil {
		return nil, err
	}
	cfg.mode = mode

	cfg.bindAddress = getenv("BIND_ADDRESS", "")
	cfg.port, err = parsePort()
	if err != nil {
		return nil, err
	}

	cfg.documentRoot = getenv("DOCUMENT_ROOT", ".")
	cfg.defaultDocument, err = parseDefaultDocument()
	if err != nil {
		return nil, err
	}

	cfg.readBufferSize = cfg.parseReadBufferSize()

	if cfg.readTimeout, err = getenvDuration("READ_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.writeTimeout, err = getenvDuration("WRITE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	workers, err := getenvInt("WORKERS", 1)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("WORKERS must be at least 1, got %d", workers)
	}
	cfg.workers = workers
	cfg.closeHeader = getenvBool("CONNECTION_CLOSE", true)

	cfg.logLevel = strings.ToLower(getenv("LOG_LEVEL", "info"))
	cfg.logFormat = strings.ToLower(getenv("LOG_FORMAT", "console"))
	if cfg.logFormat != "console" && cfg.logFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT value %q", cfg.logFormat)
	}

	return cfg, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseMode() (types.ServerMode, error) {
	switch strings.ToLower(getenv("MODE", "files")) {
	case "files":
		return types.ServerModeFILES, nil
	case "static":
		return types.ServerModeSTATIC, nil
	default:
		return 0, fmt.Errorf("invalid MODE value")
	}
}

func parsePort() (string, error) {
	raw := getenv("PORT", "8080")
	if _, err := strconv.ParseUint(raw, 10, 16); err != nil {
		return "", fmt.Errorf("invalid PORT value %q: %w", raw, err)
	}
	return raw, nil
}

func parseDefaultDocument() (string, error) {
	doc := getenv("DEFAULT_DOCUMENT", "/index.html")
	if !strings.HasPrefix(doc, "/") {
		return "", fmt.Errorf("DEFAULT_DOCUMENT must start with '/', got %q", doc)
	}
	return doc, nil
}

func (c *config) parseReadBufferSize() int {
	raw := getenv("READ_BUFFER_SIZE", strconv.Itoa(defaultReadBufferSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < minReadBufferSize || size > maxReadBufferSize {
		c.warnings = append(c.warnings, fmt.Sprintf("Invalid READ_BUFFER_SIZE %q, falling back to %d", raw, defaultReadBufferSize))
		return defaultReadBufferSize
	}
	return size
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}

func getenvInt(key string, def int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, val, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, val, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}
