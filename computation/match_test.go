package computation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(p Parameter, n int) []Parameter {
	out := make([]Parameter, n)
	for i := range out {
		out[i] = p
	}
	return out
}

func TestMatch(t *testing.T) {
	sigParams := repeat(ParamPlaintextU8, SignatureSlots)

	badSig := repeat(ParamPlaintextU8, SignatureSlots)
	badSig[10] = ParamPlaintextU16

	tests := []struct {
		name      string
		args      []Argument
		params    []Parameter
		wantCode  Code
		wantArg   int
		wantParam int
		expected  Parameter
		consumed  int
	}{
		{
			name:     "empty",
			consumed: 0,
		},
		{
			name:     "plaintext and ciphertext",
			args:     []Argument{PlaintextU8(5), EncryptedU8{}},
			params:   []Parameter{ParamPlaintextU8, ParamCiphertext},
			consumed: 2,
		},
		{
			name:     "account fills remaining slots exactly",
			args:     []Argument{PlaintextBool(true), Account{Length: 64}},
			params:   []Parameter{ParamPlaintextBool, ParamPlaintextU8, ParamCiphertext},
			consumed: 3,
		},
		{
			name:     "zero length account",
			args:     []Argument{Account{}, PlaintextU8(1)},
			params:   []Parameter{ParamPlaintextU8},
			consumed: 1,
		},
		{
			name:     "signature",
			args:     []Argument{ArcisSignature{}, EncryptedU64{}},
			params:   append(repeat(ParamPlaintextU8, SignatureSlots), ParamCiphertext),
			consumed: SignatureSlots + 1,
		},
		{
			name:      "account too big",
			args:      []Argument{Account{Length: 64}},
			params:    []Parameter{ParamPlaintextU8},
			wantCode:  AccountLenTooBig,
			wantArg:   0,
			wantParam: 0,
		},
		{
			name:      "account misaligned",
			args:      []Argument{PlaintextU8(1), Account{Length: 33}},
			params:    repeat(ParamPlaintextU8, 10),
			wantCode:  AccountLenNotMultipleOf32,
			wantArg:   1,
			wantParam: 1,
		},
		{
			name:      "signature leaves ciphertext unconsumed",
			args:      []Argument{ArcisSignature{}},
			params:    append(repeat(ParamPlaintextU8, SignatureSlots), ParamCiphertext),
			wantCode:  NotEnoughArguments,
			wantArg:   -1,
			wantParam: SignatureSlots,
		},
		{
			name:      "signature runs out of params",
			args:      []Argument{ArcisSignature{}},
			params:    repeat(ParamPlaintextU8, SignatureSlots-1),
			wantCode:  NotEnoughParams,
			wantArg:   0,
			wantParam: SignatureSlots - 1,
		},
		{
			name:      "signature slot mismatch",
			args:      []Argument{PlaintextU8(0), ArcisSignature{}},
			params:    append([]Parameter{ParamPlaintextU8}, badSig...),
			wantCode:  ArgumentMismatch,
			wantArg:   1,
			wantParam: 11,
			expected:  ParamPlaintextU16,
		},
		{
			name:      "scalar mismatch",
			args:      []Argument{PlaintextU8(5), PlaintextU8(6)},
			params:    []Parameter{ParamPlaintextU8, ParamCiphertext},
			wantCode:  ArgumentMismatch,
			wantArg:   1,
			wantParam: 1,
			expected:  ParamCiphertext,
		},
		{
			name:      "too many arguments",
			args:      []Argument{PlaintextU8(5), EncryptedU8{}},
			params:    []Parameter{ParamPlaintextU8},
			wantCode:  NotEnoughParams,
			wantArg:   1,
			wantParam: 1,
		},
		{
			name:      "too few arguments",
			args:      []Argument{PlaintextU8(5)},
			params:    []Parameter{ParamPlaintextU8, ParamCiphertext},
			wantCode:  NotEnoughArguments,
			wantArg:   -1,
			wantParam: 1,
		},
		{
			name:      "nil argument",
			args:      []Argument{nil},
			params:    []Parameter{ParamPlaintextU8},
			wantCode:  ArgumentMismatch,
			wantArg:   0,
			wantParam: 0,
			expected:  ParamPlaintextU8,
		},
		{
			name:      "stops at first violation",
			args:      []Argument{PlaintextU16(1), Account{Length: 7}},
			params:    []Parameter{ParamPlaintextU8, ParamPlaintextU8},
			wantCode:  ArgumentMismatch,
			wantArg:   0,
			wantParam: 0,
			expected:  ParamPlaintextU8,
		},
		{
			name:     "signature only",
			args:     []Argument{ArcisSignature{}},
			params:   sigParams,
			consumed: SignatureSlots,
		},
		{
			name:      "pointer scalars",
			args:      []Argument{ref(PlaintextU8(5)), ref(EncryptedU8{})},
			params:    []Parameter{ParamPlaintextU8, ParamCiphertext},
			wantCode:  ArgumentMismatch,
			wantArg:   0,
			wantParam: 0,
			expected:  ParamPlaintextU8,
		},
		{
			name:      "pointer account is not an account",
			args:      []Argument{&Account{Length: 64}},
			params:    repeat(ParamPlaintextU8, 2),
			wantCode:  ArgumentMismatch,
			wantArg:   0,
			wantParam: 0,
			expected:  ParamPlaintextU8,
		},
		{
			name:      "pointer signature is not a signature",
			args:      []Argument{&ArcisSignature{}},
			params:    sigParams,
			wantCode:  ArgumentMismatch,
			wantArg:   0,
			wantParam: 0,
			expected:  ParamPlaintextU8,
		},
		{
			name:      "pointer account past the end",
			args:      []Argument{PlaintextU8(1), &Account{}},
			params:    []Parameter{ParamPlaintextU8},
			wantCode:  NotEnoughParams,
			wantArg:   1,
			wantParam: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumed, err := MatchSlots(tt.args, tt.params)
			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.consumed, consumed)
				assert.NoError(t, Match(tt.args, tt.params))
				return
			}

			var me *MatchError
			require.True(t, errors.As(err, &me), "want *MatchError, got %v", err)
			assert.Equal(t, tt.wantCode, me.Code)
			assert.Equal(t, tt.wantArg, me.ArgIndex)
			assert.Equal(t, tt.wantParam, me.ParamIndex)
			if tt.wantCode == ArgumentMismatch {
				assert.Equal(t, tt.expected, me.Expected)
			}
		})
	}
}

func TestMatchSentinels(t *testing.T) {
	err := Match([]Argument{Account{Length: 31}}, []Parameter{ParamPlaintextU8})
	assert.ErrorIs(t, err, ErrAccountLenNotMultipleOf32)
	assert.NotErrorIs(t, err, ErrAccountLenTooBig)

	err = Match(nil, []Parameter{ParamPlaintextU8})
	assert.ErrorIs(t, err, ErrNotEnoughArguments)
}

func TestMatchNilOnSuccess(t *testing.T) {
	// must be an untyped nil so err == nil holds for callers
	err := Match([]Argument{PlaintextU8(1)}, []Parameter{ParamPlaintextU8})
	if err != nil {
		t.Fatalf("Match() = %v, want nil", err)
	}
}

func TestMatchScalarsOneToOne(t *testing.T) {
	var args []Argument
	var params []Parameter
	for i := range parameterNames {
		p := Parameter(i)
		for _, k := range Candidates(p) {
			args = append(args, Blank(k, 0))
			params = append(params, p)
		}
	}
	require.NotEmpty(t, args)
	assert.NoError(t, Match(args, params))
}

func TestMatchMisalignedAccountAlwaysFails(t *testing.T) {
	for _, length := range []uint32{1, 16, 31, 33, 63, 65, 1000} {
		for _, n := range []int{0, 1, 2, 100} {
			err := Match([]Argument{Account{Length: length}}, repeat(ParamCiphertext, n))
			assert.ErrorIs(t, err, ErrAccountLenNotMultipleOf32, "length %d with %d params", length, n)
		}
	}
}

func TestMatchAccountTooBig(t *testing.T) {
	for slots := 1; slots <= 8; slots++ {
		acc := Account{Length: uint32(slots * SlotSize)}
		assert.NoError(t, Match([]Argument{acc}, repeat(ParamPlaintextU8, slots)))
		assert.ErrorIs(t, Match([]Argument{acc}, repeat(ParamPlaintextU8, slots-1)), ErrAccountLenTooBig)
	}
}

func TestMatchIdempotent(t *testing.T) {
	args := []Argument{PlaintextU8(5), Account{Length: 96}, EncryptedBool{}}
	params := []Parameter{ParamPlaintextU8, ParamCiphertext, ParamCiphertext}

	first := Match(args, params)
	for n := 0; n < 10; n++ {
		assert.Equal(t, first, Match(args, params))
	}
}

func TestSlotsFor(t *testing.T) {
	tests := []struct {
		arg   Argument
		slots int
		rule  SlotRule
		err   error
	}{
		{PlaintextU8(1), 1, RuleClassify, nil},
		{EncryptedU128{}, 1, RuleClassify, nil},
		{Account{Length: 128}, 4, RuleUntyped, nil},
		{Account{Length: 100}, 0, RuleUntyped, ErrAccountLenNotMultipleOf32},
		{ArcisSignature{}, SignatureSlots, RuleSignatureBytes, nil},
		{&Account{Length: 64}, 1, RuleClassify, nil},
		{&ArcisSignature{}, 1, RuleClassify, nil},
	}

	for _, tt := range tests {
		t.Run(tt.arg.String(), func(t *testing.T) {
			slots, rule, err := SlotsFor(tt.arg)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.slots, slots)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestTotalSlots(t *testing.T) {
	n, err := TotalSlots([]Argument{PlaintextU8(1), Account{Length: 64}, ArcisSignature{}})
	require.NoError(t, err)
	assert.Equal(t, 1+2+SignatureSlots, n)

	_, err = TotalSlots([]Argument{PlaintextU8(1), Account{Length: 5}})
	var me *MatchError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 1, me.ArgIndex)
}

func ref[T any](v T) *T { return &v }
