package dispatch

// Command represents an intent to change system state.
// CommandType must return a constant tag and must not depend on the command's fields,
// because the registry calls it on the zero value to index handlers.
type Command interface {
	CommandType() string
}

// Query represents an intent to read system state. A query always declares a result type.
// QueryType follows the same rules as Command.CommandType.
type Query interface {
	QueryType() string
}

// Kind classifies a request by its handler shape.
type Kind int

const (
	// KindCommand is a command without a declared result.
	KindCommand Kind = iota + 1

	// KindCommandResult is a command that declares a result type.
	KindCommandResult

	// KindQuery is a query.
	KindQuery
)

// String returns the kind as used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindCommandResult:
		return "command_result"
	case KindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// RequestInfo describes a request being dispatched.
type RequestInfo struct {
	Kind Kind
	Type string
}

// IsCommand reports whether the request is a command, with or without a result.
func (i RequestInfo) IsCommand() bool {
	return i.Kind == KindCommand || i.Kind == KindCommandResult
}
