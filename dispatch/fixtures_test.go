package dispatch_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

const (
	renamePlayerType   = "RenamePlayer"
	registerPlayerType = "RegisterPlayer"
	playerByNameType   = "PlayerByName"
)

type renamePlayer struct {
	Name string
}

func (renamePlayer) CommandType() string { return renamePlayerType }

type registerPlayer struct {
	Name string
}

func (registerPlayer) CommandType() string { return registerPlayerType }

type playerByName struct {
	Name string
}

func (playerByName) QueryType() string { return playerByNameType }

type unregisteredCommand struct{}

func (unregisteredCommand) CommandType() string { return "Unregistered" }

type panickingTag struct{}

func (panickingTag) CommandType() string { panic("no tag") }

type playerView struct {
	Name  string
	Level int
}

// trace records the order in which pipeline steps ran. It is safe for concurrent use.
type trace struct {
	mu    sync.Mutex
	steps []string
}

func (t *trace) add(step string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.steps = append(t.steps, step)
}

func (t *trace) get() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]string(nil), t.steps...)
}

func tracingBehavior[Req, Out any](t *trace, name string) dispatch.Behavior[Req, Out] {
	return func(ctx context.Context, request Req, next dispatch.Next[Out]) (Out, error) {
		t.add(name + "-before")
		out, err := next(ctx)
		t.add(name + "-after")

		return out, err
	}
}

func tracingOpenBehavior(t *trace, name string) dispatch.OpenBehavior {
	return dispatch.OpenBehaviorFunc(func(
		ctx context.Context,
		_ dispatch.RequestInfo,
		_ any,
		next dispatch.Next[outcome.Outcome],
	) (outcome.Outcome, error) {
		t.add(name + "-before")
		out, err := next(ctx)
		t.add(name + "-after")

		return out, err
	})
}

func renameHandler(t *trace) dispatch.CommandHandlerFunc[renamePlayer] {
	return func(_ context.Context, command renamePlayer) (outcome.Outcome, error) {
		t.add("handler")
		if command.Name == "" {
			return outcome.Failure("name must not be empty"), nil
		}

		return outcome.Success(), nil
	}
}

func registerHandler(t *trace) dispatch.CommandResultHandlerFunc[registerPlayer, string] {
	return func(_ context.Context, command registerPlayer) (outcome.Of[string], error) {
		t.add("handler")
		return outcome.SuccessOf(fmt.Sprintf("player-%s", command.Name))
	}
}

func playerHandler(t *trace) dispatch.QueryHandlerFunc[playerByName, playerView] {
	return func(_ context.Context, query playerByName) (outcome.Of[playerView], error) {
		t.add("handler")
		return outcome.SuccessOf(playerView{Name: query.Name, Level: 7})
	}
}

// handlersModule registers one handler of each shape.
func handlersModule(t *trace) dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		dispatch.RegisterCommandHandler[renamePlayer](b, renameHandler(t))
		dispatch.RegisterCommandResultHandler[registerPlayer, string](b, registerHandler(t))
		dispatch.RegisterQueryHandler[playerByName, playerView](b, playerHandler(t))

		return nil
	})
}
