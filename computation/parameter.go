package computation

import (
	"strings"

	"github.com/wippyai/mxe-call/errors"
)

// Parameter is one slot of a compiled instruction's schema.
// Every parameter kind occupies exactly one slot.
type Parameter uint8

const (
	ParamPlaintextBool Parameter = iota
	ParamPlaintextU8
	ParamPlaintextU16
	ParamPlaintextU32
	ParamPlaintextU64
	ParamPlaintextU128
	ParamPlaintextFloat
	ParamCiphertext
	ParamArcisPubkey
	ParamManticoreAlgo
	ParamInputDataset
)

var parameterNames = [...]string{
	ParamPlaintextBool:  "PlaintextBool",
	ParamPlaintextU8:    "PlaintextU8",
	ParamPlaintextU16:   "PlaintextU16",
	ParamPlaintextU32:   "PlaintextU32",
	ParamPlaintextU64:   "PlaintextU64",
	ParamPlaintextU128:  "PlaintextU128",
	ParamPlaintextFloat: "PlaintextFloat",
	ParamCiphertext:     "Ciphertext",
	ParamArcisPubkey:    "ArcisPubkey",
	ParamManticoreAlgo:  "ManticoreAlgo",
	ParamInputDataset:   "InputDataset",
}

func (p Parameter) String() string {
	if int(p) < len(parameterNames) {
		return parameterNames[p]
	}
	return "unknown"
}

// Valid reports whether p is a known parameter kind.
func (p Parameter) Valid() bool {
	return int(p) < len(parameterNames)
}

// IsPlaintext reports whether the slot carries a plaintext value.
func (p Parameter) IsPlaintext() bool {
	return p.Valid() && p != ParamCiphertext
}

// ParseParameter resolves a schema name such as "PlaintextU8" or "ciphertext".
func ParseParameter(name string) (Parameter, error) {
	name = strings.TrimSpace(name)
	for i, n := range parameterNames {
		if strings.EqualFold(n, name) {
			return Parameter(i), nil
		}
	}
	return 0, errors.New(errors.PhaseParse, errors.KindInvalidInput).
		ParamType(name).
		Detail("unknown parameter kind").
		Build()
}

// MarshalText implements encoding.TextMarshaler
func (p Parameter) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, errors.InvalidData(errors.PhaseEncode, nil, "unknown parameter kind")
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Parameter) UnmarshalText(text []byte) error {
	v, err := ParseParameter(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
