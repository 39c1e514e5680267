package computation

import (
	"fmt"
	"strconv"
)

// Code identifies which structural rule a call violated.
type Code uint8

const (
	AccountLenNotMultipleOf32 Code = iota + 1
	AccountLenTooBig
	ArgumentMismatch
	NotEnoughParams
	NotEnoughArguments
)

var codeNames = [...]string{
	AccountLenNotMultipleOf32: "AccountLenNotMultipleOf32",
	AccountLenTooBig:          "AccountLenTooBig",
	ArgumentMismatch:          "ArgumentMismatch",
	NotEnoughParams:           "NotEnoughParams",
	NotEnoughArguments:        "NotEnoughArguments",
}

func (c Code) String() string {
	if c > 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "unknown"
}

// staticMessages are reported by MustMatch and by build-time tooling.
// They never contain argument values.
var staticMessages = [...]string{
	AccountLenNotMultipleOf32: "Invalid argument : account len is not a multiple of 32",
	AccountLenTooBig:          "Invalid argument : account is bigger than the circuit size",
	ArgumentMismatch:          "Invalid argument, mismatch with parameter",
	NotEnoughParams:           "Invalid argument : not enough params",
	NotEnoughArguments:        "Invalid arguments : not enough arguments",
}

// Sentinels for errors.Is. They compare by Code only.
var (
	ErrAccountLenNotMultipleOf32 = &MatchError{Code: AccountLenNotMultipleOf32, ArgIndex: -1, ParamIndex: -1}
	ErrAccountLenTooBig          = &MatchError{Code: AccountLenTooBig, ArgIndex: -1, ParamIndex: -1}
	ErrArgumentMismatch          = &MatchError{Code: ArgumentMismatch, ArgIndex: -1, ParamIndex: -1}
	ErrNotEnoughParams           = &MatchError{Code: NotEnoughParams, ArgIndex: -1, ParamIndex: -1}
	ErrNotEnoughArguments        = &MatchError{Code: NotEnoughArguments, ArgIndex: -1, ParamIndex: -1}
)

// MatchError is the first violation found while matching arguments to
// parameters.
type MatchError struct {
	Code Code

	// ArgIndex is the offending argument, or -1 for NotEnoughArguments.
	ArgIndex int

	// ParamIndex is the parameter cursor when matching stopped. For a
	// signature it points at the failing byte slot, not at the first slot
	// the signature consumed.
	ParamIndex int

	// Expected is the parameter at ParamIndex. Only set for ArgumentMismatch.
	Expected Parameter
}

func (e *MatchError) Error() string {
	switch e.Code {
	case AccountLenNotMultipleOf32:
		return fmt.Sprintf("argument %d: account length is not a multiple of %d", e.ArgIndex, SlotSize)
	case AccountLenTooBig:
		return fmt.Sprintf("argument %d: account needs more slots than remain after parameter %d", e.ArgIndex, e.ParamIndex)
	case ArgumentMismatch:
		return fmt.Sprintf("argument %d: does not satisfy parameter %d (%s)", e.ArgIndex, e.ParamIndex, e.Expected)
	case NotEnoughParams:
		return fmt.Sprintf("argument %d: parameters exhausted at %d", e.ArgIndex, e.ParamIndex)
	case NotEnoughArguments:
		return fmt.Sprintf("arguments exhausted at parameter %d", e.ParamIndex)
	default:
		return "unknown match error"
	}
}

// Is matches any *MatchError with the same Code.
func (e *MatchError) Is(target error) bool {
	t, ok := target.(*MatchError)
	return ok && t.Code == e.Code
}

// StaticMessage returns the fixed message for the error's code.
func (e *MatchError) StaticMessage() string {
	if e.Code > 0 && int(e.Code) < len(staticMessages) {
		return staticMessages[e.Code]
	}
	return "Invalid arguments"
}

// Diagnostic renders the dynamic-mode message. It names the offending
// argument taken from args and, for mismatches, the expected parameter.
func (e *MatchError) Diagnostic(args []Argument) string {
	arg := describeArg(args, e.ArgIndex)
	switch e.Code {
	case AccountLenNotMultipleOf32:
		return "Invalid argument : account " + arg + " len is not a multiple of " + strconv.Itoa(SlotSize)
	case AccountLenTooBig:
		return "Invalid argument : account " + arg + " is bigger than the circuit size"
	case ArgumentMismatch:
		return "Invalid argument " + arg + " for parameter " + e.Expected.String()
	case NotEnoughParams:
		return "Invalid argument : no parameter matching for " + arg
	default:
		return e.StaticMessage()
	}
}

func describeArg(args []Argument, i int) string {
	if i < 0 || i >= len(args) {
		return "<none>"
	}
	if args[i] == nil {
		return "<nil>"
	}
	return args[i].String()
}
