package dispatch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/AntonStoeckl/game-platform-go/outcome"
)

// Module registers a group of handlers and behaviors, typically one feature area.
type Module interface {
	Register(b *Builder) error
}

// ModuleFunc adapts a function to a Module.
type ModuleFunc func(b *Builder) error

// Register calls f(b).
func (f ModuleFunc) Register(b *Builder) error {
	return f(b)
}

// RouteInfo describes one registered request type. It is what Registry.Describe returns.
type RouteInfo struct {
	Type      string
	Kind      Kind
	Result    string // empty for commands without a declared result
	Behaviors int
	Scoped    bool
}

// Builder collects handler and behavior registrations.
// Registration errors are collected and reported together by Build.
// The zero value is an empty Builder ready to use.
type Builder struct {
	handlers  []handlerEntry
	behaviors []behaviorEntry
	seen      map[string]struct{}
	errs      []error
}

type handlerEntry struct {
	info    RouteInfo
	compile func(behaviors []behaviorEntry) (any, int, error)
}

// behaviorEntry is either an open behavior or a typed behavior targeting one request type.
// The slice order of entries is the registration order.
type behaviorEntry struct {
	target string
	open   OpenBehavior
	typed  any
}

// routeBinder binds a request to the compiled pipeline of a route.
// It reports false if the request is not of the route's request type.
type routeBinder[Out any] func(request any) (Next[Out], bool)

type route struct {
	info RouteInfo
	bind any
}

// Registry is the immutable lookup table from request type to compiled pipeline.
// It is safe for concurrent use. Lookups never modify it.
type Registry struct {
	routes map[string]route
	table  []RouteInfo
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// Build walks modules in order, collects their registrations, and freezes them into a Registry.
func Build(modules ...Module) (*Registry, error) {
	b := NewBuilder()

	for i, m := range modules {
		if m == nil {
			b.errs = append(b.errs, fmt.Errorf("module %d: %w", i, ErrNilModule))
			continue
		}

		if err := m.Register(b); err != nil {
			b.errs = append(b.errs, fmt.Errorf("register module %T: %w", m, err))
		}
	}

	return b.Build()
}

// RegisterOpenBehavior registers a behavior that wraps every request type.
func (b *Builder) RegisterOpenBehavior(behavior OpenBehavior) {
	if behavior == nil {
		b.errs = append(b.errs, fmt.Errorf("open behavior: %w", ErrNilBehavior))
		return
	}

	b.behaviors = append(b.behaviors, behaviorEntry{open: behavior})
}

// Build compiles the pipelines of all registered handlers.
// It returns all registration errors joined together.
func (b *Builder) Build() (*Registry, error) {
	errs := slices.Clone(b.errs)
	routes := make(map[string]route, len(b.handlers))
	table := make([]RouteInfo, 0, len(b.handlers))

	for _, h := range b.handlers {
		bind, count, err := h.compile(b.behaviorsFor(h.info.Type))
		if err != nil {
			errs = append(errs, err)
			continue
		}

		info := h.info
		info.Behaviors = count
		routes[info.Type] = route{info: info, bind: bind}
		table = append(table, info)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	slices.SortFunc(table, func(a, b RouteInfo) int {
		return strings.Compare(a.Type, b.Type)
	})

	return &Registry{routes: routes, table: table}, nil
}

func (b *Builder) behaviorsFor(requestType string) []behaviorEntry {
	var matching []behaviorEntry
	for _, e := range b.behaviors {
		if e.open != nil || e.target == requestType {
			matching = append(matching, e)
		}
	}

	return matching
}

func (b *Builder) addHandler(info RouteInfo, compile func([]behaviorEntry) (any, int, error)) {
	if _, duplicate := b.seen[info.Type]; duplicate {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrDuplicateHandler, info.Type))
		return
	}

	if b.seen == nil {
		b.seen = make(map[string]struct{})
	}

	b.seen[info.Type] = struct{}{}
	b.handlers = append(b.handlers, handlerEntry{info: info, compile: compile})
}

func (b *Builder) addTypedBehavior(target string, behavior any) {
	b.behaviors = append(b.behaviors, behaviorEntry{target: target, typed: behavior})
}

// Describe returns the registration table sorted by request type.
func (r *Registry) Describe() []RouteInfo {
	return slices.Clone(r.table)
}

// Has reports whether a handler is registered for requestType.
func (r *Registry) Has(requestType string) bool {
	_, ok := r.routes[requestType]
	return ok
}

func (r *Registry) lookup(requestType string) (route, bool) {
	rt, ok := r.routes[requestType]
	return rt, ok
}

// RegisterCommandHandler registers the handler for commands of type C.
func RegisterCommandHandler[C Command](b *Builder, handler CommandHandler[C]) {
	if handler == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrNilHandler, typeName[C]()))
		return
	}

	registerCommand[C](b, false, func(context.Context) (CommandHandler[C], error) {
		return handler, nil
	})
}

// RegisterCommandHandlerFactory registers a factory resolving the handler for commands of type C per dispatch.
func RegisterCommandHandlerFactory[C Command](b *Builder, factory HandlerFactory[CommandHandler[C]]) {
	if factory == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrNilHandler, typeName[C]()))
		return
	}

	registerCommand[C](b, true, factory)
}

// RegisterCommandResultHandler registers the handler for commands of type C declaring a result of type R.
func RegisterCommandResultHandler[C Command, R any](b *Builder, handler CommandResultHandler[C, R]) {
	if handler == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrNilHandler, typeName[C]()))
		return
	}

	registerCommandResult[C, R](b, false, func(context.Context) (CommandResultHandler[C, R], error) {
		return handler, nil
	})
}

// RegisterCommandResultHandlerFactory registers a factory resolving the handler for commands of type C
// declaring a result of type R per dispatch.
func RegisterCommandResultHandlerFactory[C Command, R any](
	b *Builder,
	factory HandlerFactory[CommandResultHandler[C, R]],
) {
	if factory == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrNilHandler, typeName[C]()))
		return
	}

	registerCommandResult[C, R](b, true, factory)
}

// RegisterQueryHandler registers the handler for queries of type Q with a result of type R.
func RegisterQueryHandler[Q Query, R any](b *Builder, handler QueryHandler[Q, R]) {
	if handler == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrNilHandler, typeName[Q]()))
		return
	}

	registerQuery[Q, R](b, false, func(context.Context) (QueryHandler[Q, R], error) {
		return handler, nil
	})
}

// RegisterQueryHandlerFactory registers a factory resolving the handler for queries of type Q per dispatch.
func RegisterQueryHandlerFactory[Q Query, R any](b *Builder, factory HandlerFactory[QueryHandler[Q, R]]) {
	if factory == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrNilHandler, typeName[Q]()))
		return
	}

	registerQuery[Q, R](b, true, factory)
}

func registerCommand[C Command](b *Builder, scoped bool, factory HandlerFactory[CommandHandler[C]]) {
	tag, ok := b.requestTag(typeName[C](), commandType[C])
	if !ok {
		return
	}

	info := RouteInfo{Type: tag, Kind: KindCommand, Scoped: scoped}
	b.addHandler(info, compileRoute[C, outcome.Outcome](info, plainShape(), func(ctx context.Context) (handleFunc[C, outcome.Outcome], error) {
		h, err := factory(ctx)
		if err != nil {
			return nil, err
		}

		if h == nil {
			return nil, ErrNilHandler
		}

		return h.Handle, nil
	}))
}

func registerCommandResult[C Command, R any](
	b *Builder,
	scoped bool,
	factory HandlerFactory[CommandResultHandler[C, R]],
) {
	tag, ok := b.requestTag(typeName[C](), commandType[C])
	if !ok {
		return
	}

	info := RouteInfo{Type: tag, Kind: KindCommandResult, Result: typeName[R](), Scoped: scoped}
	b.addHandler(info, compileRoute[C, outcome.Of[R]](info, valueShape[R](), func(ctx context.Context) (handleFunc[C, outcome.Of[R]], error) {
		h, err := factory(ctx)
		if err != nil {
			return nil, err
		}

		if h == nil {
			return nil, ErrNilHandler
		}

		return h.Handle, nil
	}))
}

func registerQuery[Q Query, R any](b *Builder, scoped bool, factory HandlerFactory[QueryHandler[Q, R]]) {
	tag, ok := b.requestTag(typeName[Q](), queryType[Q])
	if !ok {
		return
	}

	info := RouteInfo{Type: tag, Kind: KindQuery, Result: typeName[R](), Scoped: scoped}
	b.addHandler(info, compileRoute[Q, outcome.Of[R]](info, valueShape[R](), func(ctx context.Context) (handleFunc[Q, outcome.Of[R]], error) {
		h, err := factory(ctx)
		if err != nil {
			return nil, err
		}

		if h == nil {
			return nil, ErrNilHandler
		}

		return h.Handle, nil
	}))
}

// RegisterCommandBehavior registers a behavior for commands of type C without a declared result.
func RegisterCommandBehavior[C Command](b *Builder, behavior Behavior[C, outcome.Outcome]) {
	registerTypedBehavior[C](b, commandType[C], behavior)
}

// RegisterCommandResultBehavior registers a behavior for commands of type C declaring a result of type R.
func RegisterCommandResultBehavior[C Command, R any](b *Builder, behavior Behavior[C, outcome.Of[R]]) {
	registerTypedBehavior[C](b, commandType[C], behavior)
}

// RegisterQueryBehavior registers a behavior for queries of type Q with a result of type R.
func RegisterQueryBehavior[Q Query, R any](b *Builder, behavior Behavior[Q, outcome.Of[R]]) {
	registerTypedBehavior[Q](b, queryType[Q], behavior)
}

func registerTypedBehavior[Req, Out any](b *Builder, tagOf func() string, behavior Behavior[Req, Out]) {
	tag, ok := b.requestTag(typeName[Req](), tagOf)
	if !ok {
		return
	}

	if behavior == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrNilBehavior, tag))
		return
	}

	b.addTypedBehavior(tag, behavior)
}

type handleFunc[Req, Out any] func(ctx context.Context, request Req) (Out, error)

func compileRoute[Req, Out any](
	info RouteInfo,
	s shape[Out],
	resolve func(ctx context.Context) (handleFunc[Req, Out], error),
) func([]behaviorEntry) (any, int, error) {
	request := RequestInfo{Kind: info.Kind, Type: info.Type}

	return func(entries []behaviorEntry) (any, int, error) {
		behaviors := make([]Behavior[Req, Out], 0, len(entries))

		for _, e := range entries {
			if e.open != nil {
				behaviors = append(behaviors, adaptOpen[Req, Out](request, e.open, s))
				continue
			}

			typed, ok := e.typed.(Behavior[Req, Out])
			if !ok {
				return nil, 0, fmt.Errorf("%w: %T registered for %s", ErrBehaviorMismatch, e.typed, info.Type)
			}

			behaviors = append(behaviors, typed)
		}

		bind := routeBinder[Out](func(r any) (Next[Out], bool) {
			req, ok := r.(Req)
			if !ok {
				return nil, false
			}

			terminal := func(ctx context.Context) (Out, error) {
				handle, err := resolve(ctx)
				if err != nil {
					var zero Out
					return zero, fmt.Errorf("resolve handler for %s: %w", info.Type, err)
				}

				return handle(ctx, req)
			}

			return func(ctx context.Context) (Out, error) {
				return Execute(ctx, req, behaviors, terminal)
			}, true
		})

		return bind, len(behaviors), nil
	}
}

// requestTag reads a request type tag from the zero value and records a registration error
// if it is unusable.
func (b *Builder) requestTag(name string, tagOf func() string) (tag string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.errs = append(b.errs, fmt.Errorf("%w: %s: %v", ErrInvalidRequestType, name, r))
			tag, ok = "", false
		}
	}()

	tag = tagOf()
	if tag == "" {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrEmptyRequestType, name))
		return "", false
	}

	return tag, true
}

func commandType[C Command]() string {
	var zero C
	return zero.CommandType()
}

func queryType[Q Query]() string {
	var zero Q
	return zero.QueryType()
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
