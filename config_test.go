package main

import (
	"log/slog"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"GIN_MODE", "PORT", "LOG_LEVEL", "DATABASE_PATH", "ADMIN_USERNAME", "ADMIN_PASSWORD", "MOTIF_LAYERS", "MOTIF_FPS", "CONTENT_PATH"} {
		t.Setenv(k, "")
	}
	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" || cfg.MotifLayers != 8 || cfg.MotifFPS != 30 || cfg.LogLevel != slog.LevelInfo {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.GinMode != gin.DebugMode {
		t.Errorf("GinMode = %q, want %q", cfg.GinMode, gin.DebugMode)
	}
	if cfg.DatabasePath != "" || !cfg.DefaultAdmin {
		t.Errorf("database %q, default admin %v", cfg.DatabasePath, cfg.DefaultAdmin)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MOTIF_LAYERS", "5")
	t.Setenv("ADMIN_USERNAME", "me")
	t.Setenv("ADMIN_PASSWORD", "pw")
	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9000" || cfg.LogLevel != slog.LevelDebug || cfg.MotifLayers != 5 || cfg.DefaultAdmin {
		t.Errorf("overrides = %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct{ key, val string }{
		{"LOG_LEVEL", "loud"},
		{"MOTIF_LAYERS", "0"},
		{"MOTIF_LAYERS", "40"},
		{"MOTIF_FPS", "fast"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := loadConfig(); err == nil {
				t.Errorf("loadConfig accepted %s=%s", tt.key, tt.val)
			}
		})
	}
}
