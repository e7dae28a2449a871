package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config is read from the environment; .env is loaded by godotenv/autoload.
type Config struct {
	Port          string
	GinMode       string
	LogLevel      slog.Level
	ContentPath   string
	DatabasePath  string
	AdminUsername string
	AdminPassword string
	DefaultAdmin  bool // dev credentials in use
	MotifLayers   int
	MotifFPS      int
	TemplateGlob  string
	StaticDir     string
}

func loadConfig() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		GinMode:       getenv("GIN_MODE", "debug"),
		ContentPath:   getenv("CONTENT_PATH", "content.yaml"),
		DatabasePath:  os.Getenv("DATABASE_PATH"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		DefaultAdmin:  os.Getenv("ADMIN_USERNAME") == "" || os.Getenv("ADMIN_PASSWORD") == "",
		TemplateGlob:  "templates/*",
		StaticDir:     "./static",
	}

	var err error
	if cfg.LogLevel, err = parseLevel(getenv("LOG_LEVEL", "info")); err != nil {
		return cfg, err
	}
	if cfg.MotifLayers, err = getenvInt("MOTIF_LAYERS", 8, 1, 12); err != nil {
		return cfg, err
	}
	if cfg.MotifFPS, err = getenvInt("MOTIF_FPS", 30, 1, 120); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def, lo, hi int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("config: %s=%d out of range [%d, %d]", key, n, lo, hi)
	}
	return n, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return l, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
