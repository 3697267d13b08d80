package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/netutil"

	"github.com/kevincorvallis/AI-ATC/internal/api"
	"github.com/kevincorvallis/AI-ATC/internal/charts"
	"github.com/kevincorvallis/AI-ATC/internal/config"
	"github.com/kevincorvallis/AI-ATC/internal/demo"
	"github.com/kevincorvallis/AI-ATC/internal/llm"
	"github.com/kevincorvallis/AI-ATC/internal/remote"
	"github.com/kevincorvallis/AI-ATC/internal/scenario"
	"github.com/kevincorvallis/AI-ATC/internal/session"
	"github.com/kevincorvallis/AI-ATC/internal/storage/sqlite"
	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := sqlite.NewDocumentStore(db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	remoteClient := remote.NewClient(cfg.Remote.Endpoint,
		time.Duration(cfg.Remote.TimeoutSeconds)*time.Second, log)
	llmClient := llm.NewClient(&cfg.LLM, log)
	demoResponder := demo.NewResponder(nil, log)

	// Generation and responder precedence: remote backend, then direct LLM,
	// then the offline demo controller.
	var generator scenario.RemoteGenerator
	var responders []session.Responder
	var chartFetcher charts.Fetcher
	if remoteClient.Configured() {
		generator = remoteClient
		responders = append(responders, remoteClient)
		chartFetcher = remoteClient
		log.Info("Remote backend configured", logger.String("endpoint", cfg.Remote.Endpoint))
	}
	if llmClient.Configured() {
		if generator == nil {
			generator = llmClient
		}
		responders = append(responders, llmClient)
		log.Info("LLM configured", logger.String("model", cfg.LLM.Model))
	}
	responders = append(responders, demoResponder)
	if generator == nil {
		log.Info("No remote backend or LLM configured, scenarios are local only")
	}

	synthesizer := scenario.NewSynthesizer(generator, nil, log)
	sessions := session.NewManager(&cfg.Sessions, responders, store, log)
	chartService := charts.NewService(chartFetcher,
		time.Duration(cfg.Charts.CacheMinutes)*time.Minute, log)

	router := api.NewRouter(synthesizer, sessions, chartService, store, cfg, log)

	server := &http.Server{
		Addr:        cfg.Server.Addr(),
		Handler:     router.Routes(),
		ReadTimeout: time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", logger.String("addr", server.Addr))
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.Info("Shutting down", logger.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
