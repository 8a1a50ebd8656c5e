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

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/godutch/internal/auth"
	"github.com/mmynk/godutch/internal/config"
	"github.com/mmynk/godutch/internal/metrics"
	"github.com/mmynk/godutch/internal/middleware"
	"github.com/mmynk/godutch/internal/service"
	"github.com/mmynk/godutch/internal/storage/sqlite"
	"github.com/mmynk/godutch/pkg/api/apiconnect"
	"github.com/mmynk/godutch/pkg/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})

	if cfg.GeneratedSecret {
		slog.Warn("TOKEN_SECRET not set, using a random secret; edit tokens will not survive a restart")
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	m := metrics.New()
	tokens := auth.NewJWTManager(cfg.TokenSecret, cfg.TokenTTL)

	interceptors := connect.WithInterceptors(
		middleware.SheetAuth(tokens),
		middleware.LoggingInterceptor(m),
	)

	mux := http.NewServeMux()

	// Register Connect services
	calcPath, calcHandler := apiconnect.NewCalculatorServiceHandler(service.NewCalculatorService(m), interceptors)
	mux.Handle(calcPath, calcHandler)

	sheetPath, sheetHandler := apiconnect.NewSheetServiceHandler(service.NewSheetService(store, tokens, m), interceptors)
	mux.Handle(sheetPath, sheetHandler)

	if cfg.MetricsEnabled {
		mux.Handle("/metrics", m.Handler())
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(middleware.HTTPLogging(middleware.CORS(mux)), &http2.Server{})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "url", "http://localhost"+server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
