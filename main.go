package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Jheathc1/jhWebsite/internal/content"
	"github.com/Jheathc1/jhWebsite/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(os.Stderr, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pages := content.NewStore(loadContent(cfg.ContentPath, log))
	if _, err := os.Stat(cfg.ContentPath); err == nil {
		go func() {
			if err := content.Watch(ctx, cfg.ContentPath, pages, log); err != nil {
				log.Warn("content hot reload disabled", "err", err)
			}
		}()
	}

	visits, err := store.Open(ctx, cfg.DatabasePath, log)
	if err != nil {
		return err
	}
	defer visits.Close()
	if cfg.DatabasePath == "" {
		log.Info("visitor metrics are in memory; set DATABASE_PATH to keep them")
	}
	go func() {
		if _, err := visits.Cleanup(ctx); err != nil {
			log.Error("visitor cleanup failed", "err", err)
		}
	}()

	srv, err := newServer(cfg, log, pages, visits)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", httpSrv.Addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// loadContent falls back to the built-in copy when the file is missing or
// invalid, so the site always has something to render.
func loadContent(path string, log *slog.Logger) *content.Content {
	c, err := content.Load(path)
	switch {
	case err == nil:
		log.Info("content loaded", "path", path)
		return c
	case errors.Is(err, os.ErrNotExist):
		log.Info("no content file, using built-in content", "path", path)
	default:
		log.Error("content file rejected, using built-in content", "path", path, "err", err)
	}
	return content.Default()
}
