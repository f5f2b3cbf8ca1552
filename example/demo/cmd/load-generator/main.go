package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/AntonStoeckl/game-platform-go/dispatch/oteladapters"
	"github.com/AntonStoeckl/game-platform-go/example/app"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/config"
)

const (
	defaultRate            = 30
	defaultPlayers         = 20
	defaultScenarioWeights = "60,40" // inventory, travel
	defaultReportInterval  = 10 * time.Second

	instrumentationName = "game-load-generator"
)

// Config holds the load generator settings given on the command line.
type Config struct {
	Rate            int
	Players         int
	ScenarioWeights []int
	ReportInterval  time.Duration
	MaxStep         float64
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	gameConfig, err := config.Load()
	if err != nil {
		return err
	}

	cfg, err := parseFlags(os.Args[1:], gameConfig.MaxStep)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := config.NewObservabilityProviders(ctx, gameConfig, os.Stderr)
	if err != nil {
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_ = providers.Shutdown(shutdownCtx)
	}()

	store, closeStore, err := app.OpenStore(ctx, gameConfig, providers.Logger)
	if err != nil {
		return err
	}
	defer closeStore()

	hasher, err := shell.NewBcryptHasher(gameConfig.BcryptCost)
	if err != nil {
		return err
	}

	a, err := app.New(gameConfig, app.Deps{
		Store:   store,
		Hasher:  hasher,
		Logger:  providers.Logger,
		Metrics: oteladapters.NewMetricsCollector(providers.MeterProvider.Meter(instrumentationName)),
		Tracing: oteladapters.NewTracingCollector(providers.TracerProvider.Tracer(instrumentationName)),
	})
	if err != nil {
		return err
	}

	loadGen := NewLoadGenerator(a, cfg, providers.Logger)
	if err = loadGen.Seed(ctx); err != nil {
		return err
	}

	return loadGen.Run(ctx)
}

func parseFlags(args []string, maxStep float64) (Config, error) {
	flagSet := pflag.NewFlagSet("load-generator", pflag.ContinueOnError)
	rate := flagSet.Int("rate", defaultRate, "scenarios per second")
	players := flagSet.Int("players", defaultPlayers, "number of players to seed")
	weights := flagSet.String("scenario-weights", defaultScenarioWeights, "comma-separated weights for inventory,travel scenarios")
	reportInterval := flagSet.Duration("report-interval", defaultReportInterval, "interval between stats log lines")

	if err := flagSet.Parse(args); err != nil {
		return Config{}, err
	}

	if *rate <= 0 || *players <= 0 || *reportInterval <= 0 {
		return Config{}, fmt.Errorf("rate, players and report-interval must be positive")
	}

	parsedWeights, err := parseScenarioWeights(*weights)
	if err != nil {
		return Config{}, fmt.Errorf("invalid scenario weights %q: %w", *weights, err)
	}

	return Config{
		Rate:            *rate,
		Players:         *players,
		ScenarioWeights: parsedWeights,
		ReportInterval:  *reportInterval,
		MaxStep:         maxStep,
	}, nil
}

func parseScenarioWeights(weightsStr string) ([]int, error) {
	parts := strings.Split(weightsStr, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected 2 weights, got %d", len(parts))
	}

	weights := make([]int, 2)
	total := 0

	for i, part := range parts {
		weight, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", part, err)
		}

		if weight < 0 || weight > 100 {
			return nil, fmt.Errorf("weight %d out of range [0, 100]", weight)
		}

		weights[i] = weight
		total += weight
	}

	if total != 100 {
		return nil, fmt.Errorf("weights must sum to 100, got %d", total)
	}

	return weights, nil
}
