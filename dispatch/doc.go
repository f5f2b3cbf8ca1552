// Package dispatch provides in-process command and query dispatching with composable pipeline behaviors.
//
// Handlers and behaviors are registered once at start-up through Modules walked by Build.
// The resulting Registry is immutable and safe for concurrent use by any number of buses.
//
// Every dispatch yields exactly one well-formed outcome. A missing handler, a canceled context,
// a returned error or a panic inside a handler or behavior are all normalized into failure
// outcomes at the bus boundary; callers never have to handle a second failure channel.
//
// Key types:
//   - Command, Query: request markers identified by a type tag
//   - CommandHandler, CommandResultHandler, QueryHandler: the handler shapes
//   - Behavior, OpenBehavior: interceptors wrapped around handler execution
//   - Builder, Module, Registry: the start-up registration step
//   - CommandBus, QueryBus: the caller-facing entry points
//
// Common usage pattern:
//
//	registry, err := dispatch.Build(behaviorsModule, accountsModule)
//	if err != nil {
//		// configuration error, fail start-up
//	}
//
//	commandBus, _ := dispatch.NewCommandBus(registry, dispatch.WithContextualLogger(logger))
//	queryBus, _ := dispatch.NewQueryBus(registry)
//
//	accountID := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](ctx, commandBus, cmd)
//	view := dispatch.Ask[accountbyid.Query, accountbyid.AccountView](ctx, queryBus, query)
//
// Behaviors nest in registration order: the first registered behavior is the outermost one.
package dispatch
