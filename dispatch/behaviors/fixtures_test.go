package behaviors_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/outcome"
	"github.com/AntonStoeckl/game-platform-go/validation"
)

const (
	createGuildType  = "CreateGuild"
	disbandGuildType = "DisbandGuild"
	guildByTagType   = "GuildByTag"
)

type createGuild struct {
	Name string
	Tag  string
}

func (createGuild) CommandType() string { return createGuildType }

type disbandGuild struct {
	Tag string
}

func (disbandGuild) CommandType() string { return disbandGuildType }

// Validate makes disbandGuild self-validating.
func (c disbandGuild) Validate(context.Context) (validation.Result, error) {
	if c.Tag == "" {
		return validation.Invalid(validation.Error{Field: "Tag", Message: "tag is required", Code: validation.CodeNotEmpty}), nil
	}

	return validation.Valid(), nil
}

type guildByTag struct {
	Tag string
}

func (guildByTag) QueryType() string { return guildByTagType }

// counter counts handler invocations. It is safe for concurrent use.
type counter struct {
	calls atomic.Int32
}

func (c *counter) get() int {
	return int(c.calls.Load())
}

func guildsModule(c *counter) dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		dispatch.RegisterCommandResultHandler[createGuild, string](b, dispatch.CommandResultHandlerFunc[createGuild, string](
			func(_ context.Context, command createGuild) (outcome.Of[string], error) {
				c.calls.Add(1)
				return outcome.SuccessOf("guild-" + command.Tag)
			}))

		dispatch.RegisterCommandHandler[disbandGuild](b, dispatch.CommandHandlerFunc[disbandGuild](
			func(context.Context, disbandGuild) (outcome.Outcome, error) {
				c.calls.Add(1)
				return outcome.Success(), nil
			}))

		dispatch.RegisterQueryHandler[guildByTag, string](b, dispatch.QueryHandlerFunc[guildByTag, string](
			func(_ context.Context, query guildByTag) (outcome.Of[string], error) {
				c.calls.Add(1)
				if query.Tag == "none" {
					return outcome.FailureOf[string]("guild not found"), nil
				}

				return outcome.SuccessOf("guild " + query.Tag)
			}))

		return nil
	})
}

func behaviorsModule(open ...dispatch.OpenBehavior) dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		for _, behavior := range open {
			b.RegisterOpenBehavior(behavior)
		}

		return nil
	})
}

func buildBuses(t *testing.T, modules ...dispatch.Module) (*dispatch.CommandBus, *dispatch.QueryBus) {
	t.Helper()

	registry, err := dispatch.Build(modules...)
	require.NoError(t, err)

	commandBus, err := dispatch.NewCommandBus(registry)
	require.NoError(t, err)

	queryBus, err := dispatch.NewQueryBus(registry)
	require.NoError(t, err)

	return commandBus, queryBus
}

func successNext(context.Context) (outcome.Outcome, error) {
	return outcome.Success(), nil
}

var createGuildInfo = dispatch.RequestInfo{Kind: dispatch.KindCommandResult, Type: createGuildType}
