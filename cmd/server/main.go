package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"google.golang.org/genai"

	"github.com/shouni/gemini-landscape-kit/internal/config"
	"github.com/shouni/gemini-landscape-kit/internal/history"
	"github.com/shouni/gemini-landscape-kit/internal/server"
	"github.com/shouni/gemini-landscape-kit/pkg/generator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("サーバーの起動に失敗しました", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogger(cfg.LogLevel)

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return err
	}

	designer, err := generator.NewGeminiDesigner(client.Models, cfg.Generator)
	if err != nil {
		return err
	}
	store, err := history.NewStore(cfg.HistoryCapacity)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           server.NewRouter(server.NewHandlers(designer, store)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("サーバーを起動します", "addr", cfg.Port, "imageEditModel", cfg.Generator.ImageEditModel)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("サーバーが異常終了しました", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("サーバーを停止しています")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupLogger は charmbracelet/log を slog のハンドラとして既定ロガーに設定します。
func setupLogger(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           lvl,
	})
	slog.SetDefault(slog.New(handler))
}
