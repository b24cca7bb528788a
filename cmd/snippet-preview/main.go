package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/edgecomet/snippet/internal/common/config"
	"github.com/edgecomet/snippet/internal/common/htmlprocessor"
	logutil "github.com/edgecomet/snippet/internal/common/logger"
	"github.com/edgecomet/snippet/internal/preview/metrics"
	"github.com/edgecomet/snippet/internal/preview/replay"
	"github.com/edgecomet/snippet/internal/preview/session"
)

func main() {
	// Parse command line flags
	configPath := flag.String("c", "", "Path to configuration file (defaults are used when empty)")
	postPath := flag.String("post", "", "Path to post fixture (required)")
	screenPath := flag.String("screen", "", "Path to edit screen HTML (built-in screen when empty)")
	outputPath := flag.String("o", "", "Write the rendered edit screen to this path")
	flag.Parse()

	if *postPath == "" {
		fmt.Fprintln(os.Stderr, "-post is required")
		flag.Usage()
		os.Exit(2)
	}

	// Initialize logger (will be reconfigured from config)
	initialLogger, err := logutil.NewDefaultLogger()
	if err != nil {
		panic(err)
	}

	cfg := config.Default()
	if *configPath != "" {
		initialLogger.Info("Loading configuration", zap.String("path", *configPath))

		absPath, err := config.GetConfigPath(*configPath)
		if err != nil {
			initialLogger.Fatal("Invalid config path", zap.Error(err))
		}
		cfg, err = config.Load(absPath, initialLogger.Logger)
		if err != nil {
			initialLogger.Fatal("Failed to load configuration", zap.Error(err))
		}
	}

	configuredLogger, err := logutil.NewLogger(cfg.Log)
	if err != nil {
		initialLogger.Fatal("Failed to create configured logger", zap.Error(err))
	}
	defer configuredLogger.Close()
	logger := configuredLogger.Logger

	fixture, err := replay.LoadFixture(*postPath)
	if err != nil {
		logger.Fatal("Failed to load post", zap.Error(err))
	}

	screenHTML := []byte(session.DefaultEditScreen)
	if *screenPath != "" {
		screenHTML, err = os.ReadFile(*screenPath)
		if err != nil {
			logger.Fatal("Failed to read edit screen", zap.String("path", *screenPath), zap.Error(err))
		}
	}
	doc, err := htmlprocessor.ParseEditScreen(screenHTML)
	if err != nil {
		logger.Fatal("Failed to parse edit screen", zap.Error(err))
	}

	opts := []session.Option{session.WithLogger(logger)}
	var misses session.MissRecorder
	var collector *metrics.MetricsCollector
	if cfg.Metrics.Enabled {
		collector = metrics.NewMetricsCollector(cfg.Metrics.Namespace, logger)
		misses = collector
		opts = append(opts, session.WithRecorder(collector))
	}

	screen := session.NewScreenTarget(doc, cfg.Preview.Fields, misses, logger)
	editor, err := replay.Open(fixture, screen, session.SettingsFromConfig(cfg.Preview), opts...)
	if err != nil {
		logger.Fatal("Failed to open post", zap.Error(err))
	}

	logger.Debug("Replaying edits",
		zap.String("session_id", editor.Session().ID()),
		zap.String("editor", string(fixture.Editor)),
		zap.Int("edits", len(fixture.Edits)))

	preview, err := editor.Replay()
	if err != nil {
		logger.Fatal("Failed to replay edits", zap.Error(err))
	}

	fmt.Printf("title:       %s\n", preview.Snippet.Title)
	fmt.Printf("description: %s\n", preview.Snippet.Description)

	if *outputPath != "" {
		if err := os.WriteFile(*outputPath, doc.HTML(), 0o644); err != nil {
			logger.Fatal("Failed to write edit screen", zap.String("path", *outputPath), zap.Error(err))
		}
		logger.Info("Edit screen written", zap.String("path", *outputPath))
	}

	if collector != nil && cfg.Metrics.TextfilePath != "" {
		if err := collector.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			logger.Fatal("Failed to write metrics", zap.Error(err))
		}
	}
}
