package outcome

// Map transforms the value of a successful outcome.
// A failure is returned unchanged. If fn yields an absent value, the result is a failure
// carrying the ErrMissingValue message.
func Map[T, U any](o Of[T], fn func(T) U) Of[U] {
	if o.IsFailure() {
		return Of[U]{errs: o.Errors()}
	}

	mapped, err := SuccessOf(fn(o.value))
	if err != nil {
		return FailureOf[U](err.Error())
	}

	return mapped
}

// Bind chains an outcome-returning function onto a successful outcome.
// A failure is returned unchanged and fn is not called.
func Bind[T, U any](o Of[T], fn func(T) Of[U]) Of[U] {
	if o.IsFailure() {
		return Of[U]{errs: o.Errors()}
	}

	return fn(o.value)
}

// Combine merges any number of outcomes into one value-less Outcome.
// The result is a success if all inputs succeeded, otherwise a failure carrying
// the errors of all failed inputs, in argument order.
func Combine(outcomes ...Carrier) Outcome {
	var errs []string
	for _, o := range outcomes {
		if o.IsFailure() {
			errs = append(errs, o.Errors()...)
		}
	}

	if len(errs) == 0 {
		return Success()
	}

	return Outcome{errs: errs}
}

// CombineOf merges value-carrying outcomes of the same type.
// On success the values are collected in argument order; otherwise all errors are concatenated.
func CombineOf[T any](outcomes ...Of[T]) Of[[]T] {
	values := make([]T, 0, len(outcomes))
	var errs []string

	for _, o := range outcomes {
		if o.IsFailure() {
			errs = append(errs, o.Errors()...)
			continue
		}

		values = append(values, o.value)
	}

	if len(errs) > 0 {
		return Of[[]T]{errs: errs}
	}

	return Of[[]T]{value: values, ok: true}
}
