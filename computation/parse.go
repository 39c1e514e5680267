package computation

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"

	mxecall "github.com/wippyai/mxe-call"
	"github.com/wippyai/mxe-call/errors"
)

var maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// ParseArgument builds an argument of the given kind from its text form:
//
//	PlaintextBool        true, false
//	PlaintextU8..U64     decimal, 0x hex, 0o octal, 0b binary
//	PlaintextU128        decimal or 0x hex up to 2^128-1
//	PlaintextFloat       any strconv.ParseFloat form
//	Encrypted*, Pubkey   32 bytes as 0x hex or base58
//	ArcisSignature       64 bytes as 0x hex or base58
//	Account              key:length or key:offset:length
//	ManticoreAlgo        free text
//	InputDataset         free text
func ParseArgument(kind ArgKind, text string) (Argument, error) {
	s := strings.TrimSpace(text)
	switch kind {
	case KindManticoreAlgo:
		return ManticoreAlgo(text), nil
	case KindInputDataset:
		return InputDataset(text), nil
	case KindPlaintextBool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, parseErr(kind, s, err)
		}
		return PlaintextBool(v), nil
	case KindPlaintextU8:
		v, err := parseUint(kind, s, 8)
		if err != nil {
			return nil, err
		}
		return PlaintextU8(v), nil
	case KindPlaintextU16:
		v, err := parseUint(kind, s, 16)
		if err != nil {
			return nil, err
		}
		return PlaintextU16(v), nil
	case KindPlaintextU32:
		v, err := parseUint(kind, s, 32)
		if err != nil {
			return nil, err
		}
		return PlaintextU32(v), nil
	case KindPlaintextU64:
		v, err := parseUint(kind, s, 64)
		if err != nil {
			return nil, err
		}
		return PlaintextU64(v), nil
	case KindPlaintextU128:
		return parseU128(s)
	case KindPlaintextFloat:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, parseErr(kind, s, err)
		}
		return PlaintextFloat(v), nil
	case KindEncryptedBool, KindEncryptedU8, KindEncryptedU16, KindEncryptedU32,
		KindEncryptedU64, KindEncryptedU128, KindEncryptedFloat, KindArcisPubkey:
		var b [CiphertextSize]byte
		if err := decodeFixed(kind, s, b[:]); err != nil {
			return nil, err
		}
		return FromFixed32(kind, b), nil
	case KindArcisSignature:
		var sig ArcisSignature
		if err := decodeFixed(kind, s, sig[:]); err != nil {
			return nil, err
		}
		return sig, nil
	case KindAccount:
		return parseAccount(s)
	default:
		return nil, errors.New(errors.PhaseParse, errors.KindUnsupported).
			ArgType(kind.String()).
			Detail("unknown argument kind").
			Build()
	}
}

func parseUint(kind ArgKind, s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, errors.Overflow(errors.PhaseParse, nil, s, kind.String())
		}
		return 0, parseErr(kind, s, err)
	}
	return v, nil
}

func parseU128(s string) (Argument, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			ArgType(KindPlaintextU128.String()).
			Value(s).
			Detail("invalid integer %q", s).
			Build()
	}
	if v.Sign() < 0 || v.Cmp(maxU128) > 0 {
		return nil, errors.Overflow(errors.PhaseParse, nil, s, KindPlaintextU128.String())
	}
	lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(v, 64)
	return PlaintextU128{Lo: lo.Uint64(), Hi: hi.Uint64()}, nil
}

func decodeFixed(kind ArgKind, s string, dst []byte) error {
	var raw []byte
	var err error
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		raw, err = hex.DecodeString(s[2:])
	} else {
		raw, err = base58.Decode(s)
	}
	if err != nil {
		return parseErr(kind, s, err)
	}
	if len(raw) != len(dst) {
		return errors.New(errors.PhaseParse, errors.KindInvalidData).
			ArgType(kind.String()).
			Value(s).
			Detail("decoded %d bytes, want %d", len(raw), len(dst)).
			Build()
	}
	copy(dst, raw)
	return nil
}

func parseAccount(s string) (Argument, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			ArgType(KindAccount.String()).
			Value(s).
			Detail("want key:length or key:offset:length").
			Build()
	}

	key, err := mxecall.ParsePubkey(parts[0])
	if err != nil {
		return nil, parseErr(KindAccount, s, err)
	}

	acc := Account{Key: key}
	lengthText := parts[len(parts)-1]
	if len(parts) == 3 {
		off, err := strconv.ParseUint(parts[1], 0, 32)
		if err != nil {
			return nil, parseErr(KindAccount, s, err)
		}
		acc.Offset = uint32(off)
	}
	n, err := strconv.ParseUint(lengthText, 0, 32)
	if err != nil {
		return nil, parseErr(KindAccount, s, err)
	}
	acc.Length = uint32(n)
	return acc, nil
}

func parseErr(kind ArgKind, s string, cause error) *errors.Error {
	return errors.New(errors.PhaseParse, errors.KindInvalidInput).
		ArgType(kind.String()).
		Value(s).
		Cause(cause).
		Build()
}
