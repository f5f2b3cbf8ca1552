// Package behaviors provides ready-made pipeline behaviors for the dispatch buses.
//
// Open behaviors (Logging, Timing, Tracing, Retry, SelfValidation) wrap every request
// and are registered with (*dispatch.Builder).RegisterOpenBehavior. Typed validation
// behaviors are created with ValidateCommand and ValidateRequest and registered for one
// request type:
//
//	dispatch.ModuleFunc(func(b *dispatch.Builder) error {
//		b.RegisterOpenBehavior(behaviors.NewLogging(logger))
//		dispatch.RegisterCommandResultBehavior[RegisterAccount, uuid.UUID](b,
//			behaviors.ValidateRequest[RegisterAccount, uuid.UUID](registerAccountRules))
//		return nil
//	})
//
// Registration order is nesting order: the first registered behavior is the outermost.
package behaviors
