package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // interface file loading
	PhaseParse    Phase = "parse"    // interface files, manifests, argument text
	PhaseSchema   Phase = "schema"   // definition registry
	PhaseValidate Phase = "validate" // argument/parameter matching
	PhaseEncode   Phase = "encode"   // request wire encoding
	PhaseDispatch Phase = "dispatch" // handing a request to the network
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidData    Kind = "invalid_data"
	KindInvalidInput   Kind = "invalid_input"
	KindNotFound       Kind = "not_found"
	KindMismatch       Kind = "mismatch"
	KindUnsupported    Kind = "unsupported"
	KindOverflow       Kind = "overflow"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindDispatch       Kind = "dispatch"
	KindNotInitialized Kind = "not_initialized"
	KindIO             Kind = "io"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	ArgType   string
	ParamType string
	Detail    string
	Path      []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.ArgType != "" || e.ParamType != "" {
		b.WriteString(": ")
		if e.ArgType != "" && e.ParamType != "" {
			b.WriteString("argument ")
			b.WriteString(e.ArgType)
			b.WriteString(", parameter ")
			b.WriteString(e.ParamType)
		} else if e.ArgType != "" {
			b.WriteString("argument ")
			b.WriteString(e.ArgType)
		} else {
			b.WriteString("parameter ")
			b.WriteString(e.ParamType)
		}
	}

	if e.Detail != "" {
		if e.ArgType != "" || e.ParamType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// ArgType sets the argument kind name
func (b *Builder) ArgType(t string) *Builder {
	b.err.ArgType = t
	return b
}

// ParamType sets the parameter kind name
func (b *Builder) ParamType(t string) *Builder {
	b.err.ParamType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Validation wraps a matcher failure so callers can test Phase/Kind while
// errors.As still reaches the original cause.
func Validation(name string, cause error) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindMismatch,
		Path:   []string{name},
		Detail: "arguments do not match parameters",
		Cause:  cause,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindOverflow,
		Path:      path,
		ParamType: targetType,
		Detail:    fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:     value,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingDefinitionsError is returned when interface files for one or more
// encrypted instructions are absent from the build directory.
type MissingDefinitionsError struct {
	BuildDir string
	Names    []string
}

// NewMissingDefinitionsError creates an error listing names in sorted order
func NewMissingDefinitionsError(buildDir string, names []string) *MissingDefinitionsError {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return &MissingDefinitionsError{
		BuildDir: buildDir,
		Names:    sorted,
	}
}

func (e *MissingDefinitionsError) Error() string {
	if len(e.Names) == 0 {
		return "[schema] not_found: no definitions specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "missing %d interface file(s)", len(e.Names))
	if e.BuildDir != "" {
		fmt.Fprintf(&b, " in %s", e.BuildDir)
	}
	b.WriteString(":\n")
	for _, name := range e.Names {
		b.WriteString("  - ")
		b.WriteString(name)
		b.WriteByte('\n')
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *MissingDefinitionsError) Is(target error) bool {
	_, ok := target.(*MissingDefinitionsError)
	return ok
}

// NotInitialized creates a not-initialized error for missing collaborators
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Dispatch creates a dispatch failure error
func Dispatch(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindDispatch,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates an interface file loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindIO,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
