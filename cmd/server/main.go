package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/config"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/ports"
	"github.com/baditaflorin/go_fuzzy_similarity/pkg/fuzzymatch"
	"github.com/valyala/fasthttp"
)

func main() {
	defaults := config.Default()

	configPath := flag.String("config", "", "Path to a YAML or TOML config file")
	port := flag.Int("port", defaults.Server.Port, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", defaults.Server.ReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", defaults.Server.WriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", defaults.Server.MaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", defaults.Server.Concurrency, "Maximum number of concurrent requests (0 = fasthttp default)")
	threshold := flag.Float64("threshold", defaults.Scoring.Threshold, "Default pass threshold (0.0-1.0)")
	normalizerName := flag.String("normalizer", defaults.Scoring.Normalizer, "Normalizer: default, optimized or fast")
	warmUp := flag.Bool("warm-up", defaults.Scoring.WarmUp, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	cfg := defaults
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Server.Port = *port
		case "read-timeout":
			cfg.Server.ReadTimeout = *readTimeout
		case "write-timeout":
			cfg.Server.WriteTimeout = *writeTimeout
		case "max-request-size":
			cfg.Server.MaxRequestSize = *maxRequestSize
		case "concurrency":
			cfg.Server.Concurrency = *concurrency
		case "threshold":
			cfg.Scoring.Threshold = *threshold
		case "normalizer":
			cfg.Scoring.Normalizer = *normalizerName
		case "warm-up":
			cfg.Scoring.WarmUp = *warmUp
		case "log-file":
			cfg.Log.File = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Options{File: cfg.Log.File, JSON: cfg.Log.JSON})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting fuzzy similarity HTTP server",
		"port", cfg.Server.Port,
		"read_timeout", cfg.Server.ReadTimeout,
		"write_timeout", cfg.Server.WriteTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", cfg.Server.Concurrency,
		"normalizer", cfg.Scoring.Normalizer,
	)

	similarity, err := newSimilarity(cfg.Scoring, log)
	if err != nil {
		log.Error("Failed to initialize fuzzy similarity", "error", err)
		log.Close()
		os.Exit(1)
	}

	srv := newServer(similarity, log)
	httpServer := &fasthttp.Server{
		Handler:               srv.handle,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		MaxRequestBodySize:    cfg.Server.MaxRequestSize,
		Concurrency:           cfg.Server.Concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := httpServer.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Server listening", "address", addr)
	if err := httpServer.ListenAndServe(addr); err != nil {
		log.Error("Server error", "error", err)
		return
	}

	<-idleConnsClosed
	log.Info("Server stopped")
}

// newSimilarity builds the scorer described by cfg.
func newSimilarity(cfg config.ScoringConfig, log ports.Logger) (*fuzzymatch.FuzzySimilarity, error) {
	normType, err := normalizer.ParseNormalizerType(cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	similarity, err := fuzzymatch.New(
		fuzzymatch.WithCustomLogger(log),
		fuzzymatch.WithThreshold(cfg.Threshold),
		fuzzymatch.WithNormalizerType(normType),
		fuzzymatch.WithWarmUp(cfg.WarmUp),
	)
	if err != nil {
		return nil, err
	}

	log.Info("Fuzzy similarity initialized",
		"warm_up", cfg.WarmUp,
		"threshold", similarity.Threshold(),
		"cpus", runtime.NumCPU(),
	)
	return similarity, nil
}
