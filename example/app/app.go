package app

import (
	"errors"
	"log/slog"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/dispatch/behaviors"
	"github.com/AntonStoeckl/game-platform-go/dispatch/oteladapters"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/additem"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/createcharacter"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/movecharacter"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/registeraccount"
	"github.com/AntonStoeckl/game-platform-go/example/features/query/accountbyid"
	"github.com/AntonStoeckl/game-platform-go/example/features/query/charactersbyaccount"
	"github.com/AntonStoeckl/game-platform-go/example/features/query/inventoryofcharacter"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/config"
)

var (
	// ErrNilStore is returned when Deps carries no store.
	ErrNilStore = errors.New("store must not be nil")

	// ErrNilHasher is returned when Deps carries no password hasher.
	ErrNilHasher = errors.New("password hasher must not be nil")
)

// Deps are the collaborators the application is assembled from.
// Logger, Metrics and Tracing are optional; Roller defaults to shell.RandomRoller.
type Deps struct {
	Store   shell.Store
	Hasher  registeraccount.PasswordHasher
	Roller  core.Roller
	Logger  *slog.Logger
	Metrics dispatch.MetricsCollector
	Tracing dispatch.TracingCollector
}

// App holds the assembled registry and buses.
type App struct {
	Registry *dispatch.Registry
	Commands *dispatch.CommandBus
	Queries  *dispatch.QueryBus
}

// New builds the registry and both buses.
func New(cfg config.Config, deps Deps) (*App, error) {
	if deps.Store == nil {
		return nil, ErrNilStore
	}

	if deps.Hasher == nil {
		return nil, ErrNilHasher
	}

	if deps.Roller == nil {
		deps.Roller = shell.RandomRoller{}
	}

	registry, err := dispatch.Build(Modules(cfg, deps)...)
	if err != nil {
		return nil, err
	}

	options := busOptions(cfg, deps)

	commands, err := dispatch.NewCommandBus(registry, options...)
	if err != nil {
		return nil, err
	}

	queries, err := dispatch.NewQueryBus(registry, options...)
	if err != nil {
		return nil, err
	}

	return &App{Registry: registry, Commands: commands, Queries: queries}, nil
}

// Modules returns the behaviors module followed by all feature modules.
// Behaviors registered first wrap the ones registered later.
func Modules(cfg config.Config, deps Deps) []dispatch.Module {
	return []dispatch.Module{
		behaviorsModule(cfg, deps),
		registeraccount.Module(registeraccount.NewCommandHandler(deps.Store, deps.Hasher)),
		createcharacter.Module(createcharacter.NewCommandHandler(deps.Store)),
		additem.Module(additem.NewCommandHandler(deps.Store)),
		movecharacter.Module(movecharacter.NewCommandHandler(deps.Store, deps.Roller, cfg.MaxStep)),
		accountbyid.Module(accountbyid.NewQueryHandler(deps.Store)),
		charactersbyaccount.Module(charactersbyaccount.NewQueryHandler(deps.Store)),
		inventoryofcharacter.Module(inventoryofcharacter.NewQueryHandler(deps.Store)),
	}
}

func behaviorsModule(cfg config.Config, deps Deps) dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		var errs []error

		if deps.Logger != nil {
			logging, err := behaviors.NewLogging(logger(deps.Logger))
			errs = append(errs, err)
			if err == nil {
				b.RegisterOpenBehavior(logging)
			}
		}

		if deps.Tracing != nil {
			tracing, err := behaviors.NewTracing(deps.Tracing)
			errs = append(errs, err)
			if err == nil {
				b.RegisterOpenBehavior(tracing)
			}
		}

		if deps.Metrics != nil {
			timingOptions := []behaviors.TimingOption{behaviors.WithSlowThreshold(cfg.SlowThreshold)}
			if deps.Logger != nil {
				timingOptions = append(timingOptions, behaviors.WithSlowRequestLogger(logger(deps.Logger)))
			}

			timing, err := behaviors.NewTiming(deps.Metrics, timingOptions...)
			errs = append(errs, err)
			if err == nil {
				b.RegisterOpenBehavior(timing)
			}
		}

		retryOptions := []behaviors.RetryOption{behaviors.WithMaxAttempts(cfg.RetryMaxAttempts)}
		if deps.Metrics != nil {
			retryOptions = append(retryOptions, behaviors.WithRetryMetrics(deps.Metrics))
		}

		retry, err := behaviors.NewRetry(shell.IsRetryable, retryOptions...)
		errs = append(errs, err)
		if err == nil {
			b.RegisterOpenBehavior(retry)
		}

		b.RegisterOpenBehavior(behaviors.NewSelfValidation())

		return errors.Join(errs...)
	})
}

func busOptions(cfg config.Config, deps Deps) []dispatch.Option {
	options := []dispatch.Option{dispatch.WithDiagnostics(cfg.Diagnostics)}

	if deps.Logger != nil {
		options = append(options, dispatch.WithContextualLogger(logger(deps.Logger)))
	}

	if deps.Metrics != nil {
		options = append(options, dispatch.WithMetrics(deps.Metrics))
	}

	if deps.Tracing != nil {
		options = append(options, dispatch.WithTracing(deps.Tracing))
	}

	return options
}

func logger(l *slog.Logger) *oteladapters.SlogBridgeLogger {
	return oteladapters.NewSlogBridgeLoggerWithHandler(l.Handler())
}
