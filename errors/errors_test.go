package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:     PhaseValidate,
				Kind:      KindMismatch,
				Path:      []string{"add_together", "args", "1"},
				ArgType:   "EncryptedU8",
				ParamType: "PlaintextU8",
				Detail:    "encrypted value for plaintext slot",
			},
			contains: []string{"[validate]", "mismatch", "add_together.args.1", "EncryptedU8", "PlaintextU8", "encrypted value"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseSchema,
				Kind:  KindNotFound,
			},
			contains: []string{"[schema]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDispatch,
				Kind:   KindDispatch,
				Detail: "network unavailable",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[dispatch]", "dispatch", "network unavailable", "caused by", "underlying error"},
		},
		{
			name: "param only",
			err: &Error{
				Phase:     PhaseParse,
				Kind:      KindInvalidInput,
				ParamType: "Ciphertext",
				Detail:    "bad",
			},
			contains: []string{"parameter Ciphertext - bad"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindIO,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseValidate,
		Kind:  KindMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseValidate, Kind: KindMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseParse, Kind: KindMismatch}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseValidate, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseValidate, Kind: KindMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseParse, KindInvalidInput).
		Path("manifest", "3").
		ArgType("PlaintextU16").
		ParamType("PlaintextU16").
		Value("70000").
		Cause(cause).
		Detail("value %s exceeds %d bits", "70000", 16).
		Build()

	if err.Phase != PhaseParse {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseParse)
	}
	if err.Kind != KindInvalidInput {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
	}
	if len(err.Path) != 2 || err.Path[0] != "manifest" || err.Path[1] != "3" {
		t.Errorf("Path = %v, want [manifest 3]", err.Path)
	}
	if err.ArgType != "PlaintextU16" {
		t.Errorf("ArgType = %v, want 'PlaintextU16'", err.ArgType)
	}
	if err.ParamType != "PlaintextU16" {
		t.Errorf("ParamType = %v, want 'PlaintextU16'", err.ParamType)
	}
	if err.Value != "70000" {
		t.Errorf("Value = %v, want 70000", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "value 70000 exceeds 16 bits" {
		t.Errorf("Detail = %v, want 'value 70000 exceeds 16 bits'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Validation", func(t *testing.T) {
		cause := errors.New("argument 0 mismatch")
		err := Validation("vote", cause)
		if err.Phase != PhaseValidate || err.Kind != KindMismatch {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
		if !errors.Is(err, cause) {
			t.Error("Validation should wrap cause")
		}
		if err.Path[0] != "vote" {
			t.Errorf("Path = %v, want [vote]", err.Path)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseValidate, []string{"params"}, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseParse, []string{"val"}, 300, "u8")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if err.Value != 300 {
			t.Errorf("Value = %v, want 300", err.Value)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseSchema, "definition", "add_together")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, `"add_together"`) {
			t.Errorf("Detail = %v, should quote name", err.Detail)
		}
	})

	t.Run("Dispatch", func(t *testing.T) {
		cause := errors.New("timeout")
		err := Dispatch("queue computation", cause)
		if err.Phase != PhaseDispatch || !errors.Is(err, cause) {
			t.Errorf("unexpected dispatch error %v", err)
		}
	})

	t.Run("Load", func(t *testing.T) {
		err := Load("read interface file", errors.New("no such file"))
		if err.Phase != PhaseLoad || err.Kind != KindIO {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		err := ParseFailed("interface file", errors.New("yaml"))
		if err.Detail != "parse interface file" {
			t.Errorf("Detail = %q", err.Detail)
		}
	})
}

func TestMissingDefinitionsError(t *testing.T) {
	t.Run("sorted names", func(t *testing.T) {
		err := NewMissingDefinitionsError("build", []string{"vote", "init_vote_stats"})
		if len(err.Names) != 2 {
			t.Fatalf("expected 2 names, got %d", len(err.Names))
		}
		if err.Names[0] != "init_vote_stats" {
			t.Errorf("Names[0] = %q, want init_vote_stats", err.Names[0])
		}

		msg := err.Error()
		for _, s := range []string{"missing 2", "in build", "- vote", "- init_vote_stats"} {
			if !strings.Contains(msg, s) {
				t.Errorf("error %q should contain %q", msg, s)
			}
		}
	})

	t.Run("input not mutated", func(t *testing.T) {
		names := []string{"b", "a"}
		NewMissingDefinitionsError("", names)
		if names[0] != "b" {
			t.Error("constructor must not reorder caller slice")
		}
	})

	t.Run("empty names", func(t *testing.T) {
		err := NewMissingDefinitionsError("", nil)
		if !strings.Contains(err.Error(), "no definitions specified") {
			t.Errorf("empty error should have specific message, got: %s", err.Error())
		}
	})

	t.Run("errors.Is", func(t *testing.T) {
		err := NewMissingDefinitionsError("build", []string{"vote"})
		if !errors.Is(err, &MissingDefinitionsError{}) {
			t.Error("errors.Is should match MissingDefinitionsError")
		}
	})
}
