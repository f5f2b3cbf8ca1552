package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/game-platform-go/dispatch/oteladapters"
	"github.com/AntonStoeckl/game-platform-go/example/app"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/config"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	instrumentationName = "gamectl"
)

var errUsage = errors.New("usage error")

type flags struct {
	op           string
	username     string
	email        string
	password     string
	accountID    string
	characterID  string
	name         string
	class        string
	item         string
	quantity     int
	properties   map[string]string
	x            float64
	y            float64
	printMetrics bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags

	flagSet := pflag.NewFlagSet("gamectl", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&f.op, "op", "",
		"operation: register, create-character, add-item, move, account, characters, inventory or play")
	flagSet.StringVar(&f.username, "username", "", "username for register")
	flagSet.StringVar(&f.email, "email", "", "email for register")
	flagSet.StringVar(&f.password, "password", "", "password for register")
	flagSet.StringVar(&f.accountID, "account", "", "account id")
	flagSet.StringVar(&f.characterID, "character", "", "character id")
	flagSet.StringVar(&f.name, "name", "", "character name for create-character")
	flagSet.StringVar(&f.class, "class", "", "character class for create-character")
	flagSet.StringVar(&f.item, "item", "", "item code for add-item")
	flagSet.IntVar(&f.quantity, "quantity", 1, "item quantity for add-item")
	flagSet.StringToStringVar(&f.properties, "property", nil, "item property for add-item, repeatable (key=value)")
	flagSet.Float64Var(&f.x, "x", 0, "destination x for move")
	flagSet.Float64Var(&f.y, "y", 0, "destination y for move")
	flagSet.BoolVar(&f.printMetrics, "print-metrics", false, "print the collected metric names to stderr")

	if err := flagSet.Parse(args); err != nil {
		return flags{}, errors.Join(errUsage, err)
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return flags{}, fmt.Errorf("%w: unexpected argument %q", errUsage, rest[0])
	}

	if f.op == "" {
		return flags{}, fmt.Errorf("%w: --op is required", errUsage)
	}

	return f, nil
}

func run(ctx context.Context, args []string, cfg config.Config, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	providers, err := config.NewObservabilityProviders(ctx, cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		_ = providers.Shutdown(shutdownCtx)
	}()

	store, closeStore, err := app.OpenStore(ctx, cfg, providers.Logger)
	if err != nil {
		providers.Logger.Error("open store failed", "error", err)
		return exitFailure
	}
	defer closeStore()

	hasher, err := shell.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		providers.Logger.Error("create password hasher failed", "error", err)
		return exitFailure
	}

	a, err := app.New(cfg, app.Deps{
		Store:   store,
		Hasher:  hasher,
		Logger:  providers.Logger,
		Metrics: oteladapters.NewMetricsCollector(providers.MeterProvider.Meter(instrumentationName)),
		Tracing: oteladapters.NewTracingCollector(providers.TracerProvider.Tracer(instrumentationName)),
	})
	if err != nil {
		providers.Logger.Error("assemble application failed", "error", err)
		return exitFailure
	}

	code := execute(ctx, a, f, stdout, stderr)

	if f.printMetrics {
		printMetricNames(ctx, providers, stderr)
	}

	return code
}

func execute(ctx context.Context, a *app.App, f flags, stdout, stderr io.Writer) int {
	result, err := dispatchOp(ctx, a, f)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	if err = printJSON(stdout, result.body); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	if result.failed {
		return exitFailure
	}

	return exitOK
}

type response struct {
	body   any
	failed bool
}

type failureBody struct {
	Status string   `json:"status"`
	Errors []string `json:"errors"`
}

type successBody struct {
	Status string `json:"status"`
	Value  any    `json:"value,omitempty"`
}

func fromOutcome(o outcome.Outcome) response {
	if o.IsFailure() {
		return response{body: failureBody{Status: "failure", Errors: o.Errors()}, failed: true}
	}

	return response{body: successBody{Status: "success"}}
}

func fromOutcomeOf[T any](o outcome.Of[T]) response {
	if o.IsFailure() {
		return response{body: failureBody{Status: "failure", Errors: o.Errors()}, failed: true}
	}

	return response{body: successBody{Status: "success", Value: o.MustValue()}}
}

func parseID(flag, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: --%s: %w", errUsage, flag, err)
	}

	return id, nil
}

func printJSON(w io.Writer, v any) error {
	data, err := shell.EncodeJSONIndent(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func printMetricNames(ctx context.Context, providers *config.ObservabilityProviders, w io.Writer) {
	var collected metricdata.ResourceMetrics
	if err := providers.MetricReader.Collect(ctx, &collected); err != nil {
		fmt.Fprintf(w, "error: collect metrics: %v\n", err)
		return
	}

	for _, scope := range collected.ScopeMetrics {
		for _, m := range scope.Metrics {
			fmt.Fprintln(w, m.Name)
		}
	}
}

func dispatchOp(ctx context.Context, a *app.App, f flags) (response, error) {
	switch f.op {
	case "register":
		return register(ctx, a.Commands, f), nil
	case "create-character":
		return createCharacter(ctx, a.Commands, f)
	case "add-item":
		return addItem(ctx, a.Commands, f)
	case "move":
		return move(ctx, a.Commands, f)
	case "account":
		return account(ctx, a.Queries, f)
	case "characters":
		return characters(ctx, a.Queries, f)
	case "inventory":
		return inventory(ctx, a.Queries, f)
	case "play":
		return play(ctx, a), nil
	default:
		return response{}, fmt.Errorf("%w: unknown operation %q", errUsage, f.op)
	}
}
