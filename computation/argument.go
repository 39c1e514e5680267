package computation

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	mxecall "github.com/wippyai/mxe-call"
	"github.com/wippyai/mxe-call/errors"
)

// ArgKind names every argument variant. The order is the wire tag order.
type ArgKind uint8

const (
	KindManticoreAlgo ArgKind = iota
	KindInputDataset
	KindPlaintextBool
	KindPlaintextU8
	KindPlaintextU16
	KindPlaintextU32
	KindPlaintextU64
	KindPlaintextU128
	KindPlaintextFloat
	KindEncryptedBool
	KindEncryptedU8
	KindEncryptedU16
	KindEncryptedU32
	KindEncryptedU64
	KindEncryptedU128
	KindEncryptedFloat
	KindArcisPubkey
	KindArcisSignature
	KindAccount
)

var argKindNames = [...]string{
	KindManticoreAlgo:  "ManticoreAlgo",
	KindInputDataset:   "InputDataset",
	KindPlaintextBool:  "PlaintextBool",
	KindPlaintextU8:    "PlaintextU8",
	KindPlaintextU16:   "PlaintextU16",
	KindPlaintextU32:   "PlaintextU32",
	KindPlaintextU64:   "PlaintextU64",
	KindPlaintextU128:  "PlaintextU128",
	KindPlaintextFloat: "PlaintextFloat",
	KindEncryptedBool:  "EncryptedBool",
	KindEncryptedU8:    "EncryptedU8",
	KindEncryptedU16:   "EncryptedU16",
	KindEncryptedU32:   "EncryptedU32",
	KindEncryptedU64:   "EncryptedU64",
	KindEncryptedU128:  "EncryptedU128",
	KindEncryptedFloat: "EncryptedFloat",
	KindArcisPubkey:    "ArcisPubkey",
	KindArcisSignature: "ArcisSignature",
	KindAccount:        "Account",
}

func (k ArgKind) String() string {
	if int(k) < len(argKindNames) {
		return argKindNames[k]
	}
	return "unknown"
}

// IsEncrypted reports whether arguments of this kind carry a ciphertext.
func (k ArgKind) IsEncrypted() bool {
	return k >= KindEncryptedBool && k <= KindEncryptedFloat
}

// IsScalar reports whether arguments of this kind consume exactly one slot.
func (k ArgKind) IsScalar() bool {
	return int(k) < len(argKindNames) && k != KindArcisSignature && k != KindAccount
}

// ArgKinds returns every argument kind in wire order.
func ArgKinds() []ArgKind {
	kinds := make([]ArgKind, len(argKindNames))
	for i := range kinds {
		kinds[i] = ArgKind(i)
	}
	return kinds
}

// ParseArgKind resolves a variant name such as "EncryptedU8".
func ParseArgKind(name string) (ArgKind, error) {
	name = strings.TrimSpace(name)
	for i, n := range argKindNames {
		if strings.EqualFold(n, name) {
			return ArgKind(i), nil
		}
	}
	return 0, errors.New(errors.PhaseParse, errors.KindInvalidInput).
		ArgType(name).
		Detail("unknown argument kind").
		Build()
}

// Argument is one tagged value supplied by a caller. The set of variants is
// closed; use a type switch over the concrete types below.
type Argument interface {
	Kind() ArgKind
	String() string
	argument()
}

// Scalar is implemented by the one-slot variants only. Account and
// ArcisSignature do not implement it, so they can never reach Satisfies.
type Scalar interface {
	Argument
	scalar()
}

// Sizes of fixed-width argument payloads.
const (
	CiphertextSize  = 32
	ArcisPubkeySize = 32
	SignatureSize   = 64
)

type (
	PlaintextBool  bool
	PlaintextU8    uint8
	PlaintextU16   uint16
	PlaintextU32   uint32
	PlaintextU64   uint64
	PlaintextFloat float64
	ManticoreAlgo  string
	InputDataset   string

	EncryptedBool  [CiphertextSize]byte
	EncryptedU8    [CiphertextSize]byte
	EncryptedU16   [CiphertextSize]byte
	EncryptedU32   [CiphertextSize]byte
	EncryptedU64   [CiphertextSize]byte
	EncryptedU128  [CiphertextSize]byte
	EncryptedFloat [CiphertextSize]byte

	// ArcisPubkey is an x25519 public key passed in the clear.
	ArcisPubkey [ArcisPubkeySize]byte

	// ArcisSignature is serialized as 64 single-byte PlaintextU8 slots.
	ArcisSignature [SignatureSize]byte
)

// PlaintextU128 is an unsigned 128-bit integer split into two halves.
type PlaintextU128 struct {
	Lo uint64
	Hi uint64
}

// Account references Length bytes of an on-ledger account starting at
// Offset. Length must already be padded to a multiple of SlotSize.
type Account struct {
	Key    mxecall.Pubkey
	Offset uint32
	Length uint32
}

func (PlaintextBool) Kind() ArgKind  { return KindPlaintextBool }
func (PlaintextU8) Kind() ArgKind    { return KindPlaintextU8 }
func (PlaintextU16) Kind() ArgKind   { return KindPlaintextU16 }
func (PlaintextU32) Kind() ArgKind   { return KindPlaintextU32 }
func (PlaintextU64) Kind() ArgKind   { return KindPlaintextU64 }
func (PlaintextU128) Kind() ArgKind  { return KindPlaintextU128 }
func (PlaintextFloat) Kind() ArgKind { return KindPlaintextFloat }
func (ManticoreAlgo) Kind() ArgKind  { return KindManticoreAlgo }
func (InputDataset) Kind() ArgKind   { return KindInputDataset }
func (EncryptedBool) Kind() ArgKind  { return KindEncryptedBool }
func (EncryptedU8) Kind() ArgKind    { return KindEncryptedU8 }
func (EncryptedU16) Kind() ArgKind   { return KindEncryptedU16 }
func (EncryptedU32) Kind() ArgKind   { return KindEncryptedU32 }
func (EncryptedU64) Kind() ArgKind   { return KindEncryptedU64 }
func (EncryptedU128) Kind() ArgKind  { return KindEncryptedU128 }
func (EncryptedFloat) Kind() ArgKind { return KindEncryptedFloat }
func (ArcisPubkey) Kind() ArgKind    { return KindArcisPubkey }
func (ArcisSignature) Kind() ArgKind { return KindArcisSignature }
func (Account) Kind() ArgKind        { return KindAccount }

func (PlaintextBool) argument()  {}
func (PlaintextU8) argument()    {}
func (PlaintextU16) argument()   {}
func (PlaintextU32) argument()   {}
func (PlaintextU64) argument()   {}
func (PlaintextU128) argument()  {}
func (PlaintextFloat) argument() {}
func (ManticoreAlgo) argument()  {}
func (InputDataset) argument()   {}
func (EncryptedBool) argument()  {}
func (EncryptedU8) argument()    {}
func (EncryptedU16) argument()   {}
func (EncryptedU32) argument()   {}
func (EncryptedU64) argument()   {}
func (EncryptedU128) argument()  {}
func (EncryptedFloat) argument() {}
func (ArcisPubkey) argument()    {}
func (ArcisSignature) argument() {}
func (Account) argument()        {}

func (PlaintextBool) scalar()  {}
func (PlaintextU8) scalar()    {}
func (PlaintextU16) scalar()   {}
func (PlaintextU32) scalar()   {}
func (PlaintextU64) scalar()   {}
func (PlaintextU128) scalar()  {}
func (PlaintextFloat) scalar() {}
func (ManticoreAlgo) scalar()  {}
func (InputDataset) scalar()   {}
func (EncryptedBool) scalar()  {}
func (EncryptedU8) scalar()    {}
func (EncryptedU16) scalar()   {}
func (EncryptedU32) scalar()   {}
func (EncryptedU64) scalar()   {}
func (EncryptedU128) scalar()  {}
func (EncryptedFloat) scalar() {}
func (ArcisPubkey) scalar()    {}

func (a PlaintextBool) String() string {
	return "PlaintextBool(" + strconv.FormatBool(bool(a)) + ")"
}

func (a PlaintextU8) String() string {
	return "PlaintextU8(" + strconv.FormatUint(uint64(a), 10) + ")"
}

func (a PlaintextU16) String() string {
	return "PlaintextU16(" + strconv.FormatUint(uint64(a), 10) + ")"
}

func (a PlaintextU32) String() string {
	return "PlaintextU32(" + strconv.FormatUint(uint64(a), 10) + ")"
}

func (a PlaintextU64) String() string {
	return "PlaintextU64(" + strconv.FormatUint(uint64(a), 10) + ")"
}

func (a PlaintextU128) String() string {
	return "PlaintextU128(" + a.Big().String() + ")"
}

// Big returns the value as a big.Int.
func (a PlaintextU128) Big() *big.Int {
	v := new(big.Int).SetUint64(a.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(a.Lo))
}

func (a PlaintextFloat) String() string {
	return "PlaintextFloat(" + strconv.FormatFloat(float64(a), 'g', -1, 64) + ")"
}

func (a ManticoreAlgo) String() string { return "ManticoreAlgo(" + strconv.Quote(string(a)) + ")" }
func (a InputDataset) String() string  { return "InputDataset(" + strconv.Quote(string(a)) + ")" }

func (a EncryptedBool) String() string  { return fixedString(KindEncryptedBool, a[:]) }
func (a EncryptedU8) String() string    { return fixedString(KindEncryptedU8, a[:]) }
func (a EncryptedU16) String() string   { return fixedString(KindEncryptedU16, a[:]) }
func (a EncryptedU32) String() string   { return fixedString(KindEncryptedU32, a[:]) }
func (a EncryptedU64) String() string   { return fixedString(KindEncryptedU64, a[:]) }
func (a EncryptedU128) String() string  { return fixedString(KindEncryptedU128, a[:]) }
func (a EncryptedFloat) String() string { return fixedString(KindEncryptedFloat, a[:]) }
func (a ArcisPubkey) String() string    { return fixedString(KindArcisPubkey, a[:]) }
func (a ArcisSignature) String() string { return fixedString(KindArcisSignature, a[:]) }

func (a Account) String() string {
	return fmt.Sprintf("Account(%s, offset=%d, len=%d)", a.Key, a.Offset, a.Length)
}

// fixedString abbreviates long byte payloads to head and tail.
func fixedString(kind ArgKind, b []byte) string {
	h := hex.EncodeToString(b)
	if len(h) > 16 {
		h = h[:8] + ".." + h[len(h)-8:]
	}
	return kind.String() + "(0x" + h + ")"
}

// Blank returns a zero-valued argument of the given kind. accountLen is used
// only for KindAccount. It returns nil for unknown kinds.
func Blank(kind ArgKind, accountLen uint32) Argument {
	switch kind {
	case KindManticoreAlgo:
		return ManticoreAlgo("")
	case KindInputDataset:
		return InputDataset("")
	case KindPlaintextBool:
		return PlaintextBool(false)
	case KindPlaintextU8:
		return PlaintextU8(0)
	case KindPlaintextU16:
		return PlaintextU16(0)
	case KindPlaintextU32:
		return PlaintextU32(0)
	case KindPlaintextU64:
		return PlaintextU64(0)
	case KindPlaintextU128:
		return PlaintextU128{}
	case KindPlaintextFloat:
		return PlaintextFloat(0)
	case KindEncryptedBool:
		return EncryptedBool{}
	case KindEncryptedU8:
		return EncryptedU8{}
	case KindEncryptedU16:
		return EncryptedU16{}
	case KindEncryptedU32:
		return EncryptedU32{}
	case KindEncryptedU64:
		return EncryptedU64{}
	case KindEncryptedU128:
		return EncryptedU128{}
	case KindEncryptedFloat:
		return EncryptedFloat{}
	case KindArcisPubkey:
		return ArcisPubkey{}
	case KindArcisSignature:
		return ArcisSignature{}
	case KindAccount:
		return Account{Length: accountLen}
	default:
		return nil
	}
}

// FromFixed32 wraps a 32-byte payload as an argument of kind. kind must be
// an encrypted kind or KindArcisPubkey; other kinds return nil.
func FromFixed32(kind ArgKind, b [CiphertextSize]byte) Argument {
	switch kind {
	case KindEncryptedBool:
		return EncryptedBool(b)
	case KindEncryptedU8:
		return EncryptedU8(b)
	case KindEncryptedU16:
		return EncryptedU16(b)
	case KindEncryptedU32:
		return EncryptedU32(b)
	case KindEncryptedU64:
		return EncryptedU64(b)
	case KindEncryptedU128:
		return EncryptedU128(b)
	case KindEncryptedFloat:
		return EncryptedFloat(b)
	case KindArcisPubkey:
		return ArcisPubkey(b)
	default:
		return nil
	}
}
