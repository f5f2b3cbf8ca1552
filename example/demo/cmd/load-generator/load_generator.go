// Package main implements a load generator for the game platform that fires concurrent
// commands and queries at a configurable rate against one set of seeded players.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/example/app"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/additem"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/createcharacter"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/movecharacter"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/registeraccount"
	"github.com/AntonStoeckl/game-platform-go/example/features/query/charactersbyaccount"
	"github.com/AntonStoeckl/game-platform-go/example/features/query/inventoryofcharacter"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

const (
	scenarioInventory = "inventory"
	scenarioTravel    = "travel"

	operationTimeout = 5 * time.Second
)

var itemCodes = []string{"arrow", "potion", "herb", "ore", "scroll"}

// Stats is a snapshot of the generated load.
// Failures are expected business outcomes, errors are faults reported by the buses.
type Stats struct {
	Requests int64
	Failures int64
	Errors   int64
	Duration time.Duration
}

type player struct {
	accountID   uuid.UUID
	characterID uuid.UUID
}

// LoadGenerator orchestrates load against one App.
type LoadGenerator struct {
	app     *app.App
	config  Config
	logger  *slog.Logger
	players []player

	wg sync.WaitGroup

	mu        sync.RWMutex
	requests  int64
	failures  int64
	errors    int64
	startTime time.Time
}

// NewLoadGenerator creates a new LoadGenerator for the given App.
func NewLoadGenerator(a *app.App, config Config, logger *slog.Logger) *LoadGenerator {
	return &LoadGenerator{
		app:    a,
		config: config,
		logger: logger,
	}
}

// Seed registers the configured number of players, each with one character.
func (lg *LoadGenerator) Seed(ctx context.Context) error {
	run := uuid.NewString()[:8]

	for i := range lg.config.Players {
		username := fmt.Sprintf("load_%s_%d", run, i)

		account := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](ctx, lg.app.Commands,
			registeraccount.BuildCommand(username, username+"@example.com", "L0adTester", time.Now()))
		if account.IsFailure() {
			return fmt.Errorf("seed account %s: %s", username, account.Summary())
		}

		class := core.CharacterClasses[i%len(core.CharacterClasses)]
		character := dispatch.SendWithResult[createcharacter.Command, uuid.UUID](ctx, lg.app.Commands,
			createcharacter.BuildCommand(account.MustValue(), fmt.Sprintf("hero_%s_%d", run, i), class, time.Now()))
		if character.IsFailure() {
			return fmt.Errorf("seed character for %s: %s", username, character.Summary())
		}

		lg.players = append(lg.players, player{accountID: account.MustValue(), characterID: character.MustValue()})
	}

	lg.logger.Info("players seeded", "players", len(lg.players))

	return nil
}

// Run generates load at the configured rate until ctx is done.
// It waits for all in-flight scenarios before returning.
func (lg *LoadGenerator) Run(ctx context.Context) error {
	if len(lg.players) == 0 {
		return errors.New("no players seeded")
	}

	lg.mu.Lock()
	lg.startTime = time.Now()
	lg.mu.Unlock()

	interval := time.Second / time.Duration(lg.config.Rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	report := time.NewTicker(lg.config.ReportInterval)
	defer report.Stop()

	lg.logger.Info("load generator started",
		"rate", lg.config.Rate, "interval", interval.String(), "goroutines", runtime.NumGoroutine())

	for {
		select {
		case <-ctx.Done():
			lg.wg.Wait()
			lg.logStats("load generator stopped")

			return nil

		case <-report.C:
			lg.logStats("load generator stats")

		case <-ticker.C:
			lg.wg.Add(1)
			go lg.executeScenario(context.WithoutCancel(ctx))
		}
	}
}

// Stats returns the current counters.
func (lg *LoadGenerator) Stats() Stats {
	lg.mu.RLock()
	defer lg.mu.RUnlock()

	return Stats{
		Requests: lg.requests,
		Failures: lg.failures,
		Errors:   lg.errors,
		Duration: time.Since(lg.startTime),
	}
}

func (lg *LoadGenerator) executeScenario(ctx context.Context) {
	defer lg.wg.Done()

	opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	p := lg.players[rand.IntN(len(lg.players))] //nolint:gosec // load test, weak random is fine

	var results []outcome.Outcome
	switch scenario := lg.selectScenario(); scenario {
	case scenarioInventory:
		results = lg.runInventoryScenario(opCtx, p)
	default:
		results = lg.runTravelScenario(opCtx, p)
	}

	lg.mu.Lock()
	defer lg.mu.Unlock()

	for _, result := range results {
		lg.requests++

		if result.IsFailure() {
			lg.failures++
			if isFault(result) {
				lg.errors++
				lg.logger.Warn("scenario fault", "errors", result.Errors())
			}
		}
	}
}

// selectScenario picks a scenario based on the configured weights.
func (lg *LoadGenerator) selectScenario() string {
	if rand.IntN(100) < lg.config.ScenarioWeights[0] { //nolint:gosec // load test, weak random is fine
		return scenarioInventory
	}

	return scenarioTravel
}

// runInventoryScenario adds a random stack of items and reads the inventory back.
func (lg *LoadGenerator) runInventoryScenario(ctx context.Context, p player) []outcome.Outcome {
	code := itemCodes[rand.IntN(len(itemCodes))] //nolint:gosec // load test, weak random is fine
	quantity := rand.IntN(core.MaxStackSize) + 1  //nolint:gosec // load test, weak random is fine

	added := lg.app.Commands.Send(ctx, additem.BuildCommand(p.characterID, code, quantity, nil))
	inventory := dispatch.Ask[inventoryofcharacter.Query, inventoryofcharacter.InventoryView](
		ctx, lg.app.Queries, inventoryofcharacter.BuildQuery(p.characterID))

	return []outcome.Outcome{added, inventory.Bare()}
}

// runTravelScenario looks up the character's position and takes a short step from there.
func (lg *LoadGenerator) runTravelScenario(ctx context.Context, p player) []outcome.Outcome {
	listed := dispatch.Ask[charactersbyaccount.Query, charactersbyaccount.Characters](
		ctx, lg.app.Queries, charactersbyaccount.BuildQuery(p.accountID))
	if listed.IsFailure() || len(listed.MustValue().Characters) == 0 {
		return []outcome.Outcome{listed.Bare()}
	}

	from := listed.MustValue().Characters[0].Position
	dx := (rand.Float64()*2 - 1) * lg.config.MaxStep / 2 //nolint:gosec // load test, weak random is fine
	dy := (rand.Float64()*2 - 1) * lg.config.MaxStep / 2 //nolint:gosec // load test, weak random is fine

	moved := dispatch.SendWithResult[movecharacter.Command, movecharacter.MoveResult](ctx, lg.app.Commands,
		movecharacter.BuildCommand(p.characterID, clamp(from.X+dx), clamp(from.Y+dy)))

	return []outcome.Outcome{listed.Bare(), moved.Bare()}
}

func (lg *LoadGenerator) logStats(msg string) {
	stats := lg.Stats()

	rps := 0.0
	if stats.Duration > 0 {
		rps = float64(stats.Requests) / stats.Duration.Seconds()
	}

	lg.logger.Info(msg,
		"requests", stats.Requests,
		"failures", stats.Failures,
		"errors", stats.Errors,
		"duration", stats.Duration.Truncate(time.Second).String(),
		"requests_per_second", rps,
		"goroutines", runtime.NumGoroutine(),
	)
}

func isFault(o outcome.Outcome) bool {
	prefix := dispatch.UnexpectedFailureMessage("")

	return slices.ContainsFunc(o.Errors(), func(msg string) bool {
		return strings.HasPrefix(msg, prefix)
	})
}

func clamp(v float64) float64 {
	return max(-movecharacter.WorldBound, min(movecharacter.WorldBound, v))
}
