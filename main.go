package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hockeyseo/config"
	"hockeyseo/internal/api"
	"hockeyseo/internal/datasource"
	"hockeyseo/internal/engine"
	"hockeyseo/internal/llm"
	"hockeyseo/logging"

	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	if err := config.LoadConfig(*configPath); err != nil {
		logrus.Fatalf("Error loading configuration: %v", err)
	}
	cfg := config.AppConfig

	closeLog := logging.InitLogger(cfg.Logging)
	defer closeLog()

	strategist, err := newStrategist(cfg.Strategy)
	if err != nil {
		logrus.Fatalf("Error initializing strategy provider: %v", err)
	}
	eng := engine.NewAnalysisEngine(datasource.NewSimulated(cfg.Simulation), strategist)
	handler := api.NewHandler(eng, cfg.Server.MaxBodyBytes)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("Starting server on port %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Graceful shutdown failed: %v", err)
	}
}

func newStrategist(cfg config.StrategyConfig) (engine.Strategist, error) {
	if strings.ToLower(cfg.Provider) != config.ProviderOllama {
		return engine.StaticStrategist{}, nil
	}
	client, err := llm.NewOllamaClient(cfg.Ollama)
	if err != nil {
		return nil, err
	}
	return engine.NewLLMStrategist(client), nil
}
