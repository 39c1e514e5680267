package computation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mxecall "github.com/wippyai/mxe-call"
	"github.com/wippyai/mxe-call/errors"
)

func TestParseArgument(t *testing.T) {
	hex32 := "0x" + strings.Repeat("ab", 32)
	var ab [32]byte
	for i := range ab {
		ab[i] = 0xab
	}
	key := mxecall.Pubkey{1, 2, 3}

	tests := []struct {
		kind ArgKind
		text string
		want Argument
	}{
		{KindPlaintextBool, "true", PlaintextBool(true)},
		{KindPlaintextU8, "255", PlaintextU8(255)},
		{KindPlaintextU16, "0x10", PlaintextU16(16)},
		{KindPlaintextU32, " 42 ", PlaintextU32(42)},
		{KindPlaintextU64, "18446744073709551615", PlaintextU64(^uint64(0))},
		{KindPlaintextU128, "18446744073709551617", PlaintextU128{Lo: 1, Hi: 1}},
		{KindPlaintextU128, "0xffffffffffffffffffffffffffffffff", PlaintextU128{Lo: ^uint64(0), Hi: ^uint64(0)}},
		{KindPlaintextFloat, "-2.5", PlaintextFloat(-2.5)},
		{KindEncryptedU8, hex32, EncryptedU8(ab)},
		{KindEncryptedFloat, hex32, EncryptedFloat(ab)},
		{KindArcisPubkey, key.String(), ArcisPubkey(key)},
		{KindArcisSignature, "0x" + strings.Repeat("01", 64), func() Argument {
			var s ArcisSignature
			for i := range s {
				s[i] = 1
			}
			return s
		}()},
		{KindAccount, key.String() + ":64", Account{Key: key, Length: 64}},
		{KindAccount, key.String() + ":8:96", Account{Key: key, Offset: 8, Length: 96}},
		{KindManticoreAlgo, "kmeans", ManticoreAlgo("kmeans")},
		{KindInputDataset, "iris", InputDataset("iris")},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.text, func(t *testing.T) {
			got, err := ParseArgument(tt.kind, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgumentErrors(t *testing.T) {
	tests := []struct {
		kind ArgKind
		text string
		want errors.Kind
	}{
		{KindPlaintextBool, "maybe", errors.KindInvalidInput},
		{KindPlaintextU8, "256", errors.KindOverflow},
		{KindPlaintextU16, "-1", errors.KindInvalidInput},
		{KindPlaintextU128, "340282366920938463463374607431768211456", errors.KindOverflow},
		{KindPlaintextU128, "-5", errors.KindOverflow},
		{KindPlaintextU128, "abc", errors.KindInvalidInput},
		{KindPlaintextFloat, "x", errors.KindInvalidInput},
		{KindEncryptedU8, "0x1234", errors.KindInvalidData},
		{KindEncryptedU8, "0xzz", errors.KindInvalidInput},
		{KindArcisSignature, "0x" + strings.Repeat("00", 32), errors.KindInvalidData},
		{KindAccount, "nokey", errors.KindInvalidInput},
		{KindAccount, "1111:64", errors.KindInvalidInput},
		{KindAccount, mxecall.Pubkey{}.String() + ":x", errors.KindInvalidInput},
		{ArgKind(99), "1", errors.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.text, func(t *testing.T) {
			_, err := ParseArgument(tt.kind, tt.text)
			require.Error(t, err)
			var e *errors.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, errors.PhaseParse, e.Phase)
			assert.Equal(t, tt.want, e.Kind)
		})
	}
}
