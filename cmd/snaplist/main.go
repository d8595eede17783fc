package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/snaplist-app/snaplist/config"
	"github.com/snaplist-app/snaplist/internal/catalog"
	"github.com/snaplist-app/snaplist/internal/pipeline"
	"github.com/snaplist-app/snaplist/internal/storage"
	"github.com/snaplist-app/snaplist/internal/vision"
	"golang.org/x/sync/errgroup"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()
	cfg := config.FromEnv()

	if missing := cfg.MissingRequired(); len(missing) > 0 {
		log.Fatal().Strs("missing", missing).Msg("missing required config")
	}

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s IMAGE [IMAGE...]\n", os.Args[0])
		os.Exit(2)
	}

	// Create context that cancels on SIGINT or SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	providers, err := buildProviders(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize providers")
	}

	orchestrator := vision.NewOrchestrator(providers, vision.OrchestratorOpts{
		AttemptTimeout: cfg.AttemptTimeout,
	})

	var analyzer vision.Analyzer = orchestrator
	var store storage.Store

	sqliteStore, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Warn().Err(err).Str("dbPath", cfg.DBPath).Msg("store unavailable, caching and listing log disabled")
	} else {
		defer sqliteStore.Close()
		store = sqliteStore
		analyzer = vision.NewCachedAnalyzer(orchestrator, sqliteStore)
		log.Info().Str("dbPath", cfg.DBPath).Msg("store initialized")
	}

	images, err := loadImages(ctx, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load images")
	}

	pipe := pipeline.New(analyzer, catalog.Default(), pipeline.Opts{Store: store})
	result := pipe.Process(ctx, images)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode result")
	}
	fmt.Println(string(out))

	if !result.Success {
		os.Exit(1)
	}
}

// buildProviders assembles the fallback chain: Gemini is the primary,
// OpenAI and OpenRouter join the chain when their keys are configured.
func buildProviders(ctx context.Context, cfg config.Config) ([]vision.Provider, error) {
	gemini, err := vision.NewGeminiProvider(ctx)
	if err != nil {
		return nil, err
	}
	providers := []vision.Provider{gemini}

	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, vision.NewOpenAIProvider())
	}
	if cfg.OpenRouterAPIKey != "" && cfg.OpenRouterModel != "" {
		providers = append(providers, vision.NewOpenRouterProvider(vision.OpenRouterOpts{
			APIKey: cfg.OpenRouterAPIKey,
			Model:  cfg.OpenRouterModel,
		}))
	}

	log.Info().Int("providerCount", len(providers)).Msg("provider chain initialized")
	return providers, nil
}

// loadImages reads all image files concurrently, preserving argument order.
func loadImages(ctx context.Context, paths []string) ([]vision.Image, error) {
	images := make([]vision.Image, len(paths))
	g, _ := errgroup.WithContext(ctx)
	for i := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(paths[i])
			if err != nil {
				return err
			}
			images[i] = vision.Image{
				Data:     data,
				MimeType: http.DetectContentType(data),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}
