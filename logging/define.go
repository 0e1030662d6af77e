package logging

// Define0 builds a zero-argument log-action delegate for messageTemplate at
// the given level and event id. Define1 through Define6 are the same
// factory generalized over one to six typed arguments; Go's type
// parameters can't express LoggerMessage.Define<T1..T6>'s variable arity
// as a single generic, so the family is spelled out by arity instead, the
// idiomatic Go translation of that overload set. A DelegateFactory finding
// is recorded wherever one of these is called.
func Define0(level Level, eventID EventID, messageTemplate string) func(logger Logger) {
	return func(logger Logger) {
		logger.Log(level, messageTemplate)
	}
}

func Define1[T1 any](level Level, eventID EventID, messageTemplate string) func(logger Logger, arg1 T1) {
	return func(logger Logger, arg1 T1) {
		logger.Log(level, messageTemplate, arg1)
	}
}

func Define2[T1, T2 any](level Level, eventID EventID, messageTemplate string) func(logger Logger, arg1 T1, arg2 T2) {
	return func(logger Logger, arg1 T1, arg2 T2) {
		logger.Log(level, messageTemplate, arg1, arg2)
	}
}

func Define3[T1, T2, T3 any](level Level, eventID EventID, messageTemplate string) func(logger Logger, arg1 T1, arg2 T2, arg3 T3) {
	return func(logger Logger, arg1 T1, arg2 T2, arg3 T3) {
		logger.Log(level, messageTemplate, arg1, arg2, arg3)
	}
}

func Define4[T1, T2, T3, T4 any](level Level, eventID EventID, messageTemplate string) func(logger Logger, arg1 T1, arg2 T2, arg3 T3, arg4 T4) {
	return func(logger Logger, arg1 T1, arg2 T2, arg3 T3, arg4 T4) {
		logger.Log(level, messageTemplate, arg1, arg2, arg3, arg4)
	}
}

func Define5[T1, T2, T3, T4, T5 any](level Level, eventID EventID, messageTemplate string) func(logger Logger, arg1 T1, arg2 T2, arg3 T3, arg4 T4, arg5 T5) {
	return func(logger Logger, arg1 T1, arg2 T2, arg3 T3, arg4 T4, arg5 T5) {
		logger.Log(level, messageTemplate, arg1, arg2, arg3, arg4, arg5)
	}
}

func Define6[T1, T2, T3, T4, T5, T6 any](level Level, eventID EventID, messageTemplate string) func(logger Logger, arg1 T1, arg2 T2, arg3 T3, arg4 T4, arg5 T5, arg6 T6) {
	return func(logger Logger, arg1 T1, arg2 T2, arg3 T3, arg4 T4, arg5 T5, arg6 T6) {
		logger.Log(level, messageTemplate, arg1, arg2, arg3, arg4, arg5, arg6)
	}
}
