package computation

import (
	"go.uber.org/zap"
)

// MustMatch panics with the fixed message of the first violation. Use it
// where both lists are known ahead of time, for example in a package-level
// var, so a mismatched call never ships. It returns args unchanged.
func MustMatch(args []Argument, params []Parameter) []Argument {
	if _, err := matchArgs(args, params); err != nil {
		panic(err.StaticMessage())
	}
	return args
}

// Check is the call-construction-time entry point. On mismatch it logs a
// diagnostic naming the offending argument and returns the *MatchError.
// It never panics.
func Check(args []Argument, params []Parameter) error {
	_, err := matchArgs(args, params)
	if err == nil {
		return nil
	}
	Logger().Error(err.Diagnostic(args),
		zap.Stringer("code", err.Code),
		zap.Int("arg_index", err.ArgIndex),
		zap.Int("param_index", err.ParamIndex),
	)
	return err
}

// Args tags an argument list with the encrypted instruction it is meant for.
// It returns args unchanged; the argcheck analyzer validates its call sites
// against the instruction's interface file.
func Args(name string, args ...Argument) []Argument {
	return args
}
