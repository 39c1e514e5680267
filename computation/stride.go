package computation

// Wire-format constants shared with the compiled schema format.
const (
	// SlotSize is the serialized width in bytes of one parameter slot.
	// Account lengths are measured in multiples of it.
	SlotSize = 32

	// SignatureSlots is the number of single-byte PlaintextU8 slots one
	// ArcisSignature expands to.
	SignatureSlots = 64
)

// SlotRule says what is checked about the slots an argument consumes.
type SlotRule uint8

const (
	// RuleClassify checks the single slot with Satisfies.
	RuleClassify SlotRule = iota
	// RuleUntyped accepts any slot kind. Account slots are trusted to the
	// declared byte span.
	RuleUntyped
	// RuleSignatureBytes requires every slot to be ParamPlaintextU8.
	RuleSignatureBytes
)

var slotRuleNames = [...]string{
	RuleClassify:       "classify",
	RuleUntyped:        "untyped",
	RuleSignatureBytes: "signature_bytes",
}

func (r SlotRule) String() string {
	if int(r) < len(slotRuleNames) {
		return slotRuleNames[r]
	}
	return "unknown"
}

// SlotsFor returns how many parameter slots arg consumes and the rule applied
// to them. A misaligned account length returns ErrAccountLenNotMultipleOf32.
// Only Account and ArcisSignature values get their own stride; pointers to
// them, like nil, are a single classified slot.
func SlotsFor(arg Argument) (int, SlotRule, error) {
	switch a := arg.(type) {
	case Account:
		if a.Length%SlotSize != 0 {
			return 0, RuleUntyped, ErrAccountLenNotMultipleOf32
		}
		return int(a.Length / SlotSize), RuleUntyped, nil
	case ArcisSignature:
		return SignatureSlots, RuleSignatureBytes, nil
	default:
		return 1, RuleClassify, nil
	}
}

// TotalSlots sums the strides of args. The returned error carries the index
// of the first misaligned account.
func TotalSlots(args []Argument) (int, error) {
	total := 0
	for i, arg := range args {
		n, _, err := SlotsFor(arg)
		if err != nil {
			return 0, &MatchError{
				Code:       AccountLenNotMultipleOf32,
				ArgIndex:   i,
				ParamIndex: total,
			}
		}
		total += n
	}
	return total, nil
}
