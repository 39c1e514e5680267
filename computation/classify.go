package computation

// Satisfies reports whether a scalar argument can fill a slot of kind p.
// Plaintext kinds need the identically named parameter. Every encrypted kind
// is satisfied by ParamCiphertext regardless of its payload width. There is
// no widening between integer sizes.
func Satisfies(arg Scalar, p Parameter) bool {
	switch arg.(type) {
	case PlaintextBool:
		return p == ParamPlaintextBool
	case PlaintextU8:
		return p == ParamPlaintextU8
	case PlaintextU16:
		return p == ParamPlaintextU16
	case PlaintextU32:
		return p == ParamPlaintextU32
	case PlaintextU64:
		return p == ParamPlaintextU64
	case PlaintextU128:
		return p == ParamPlaintextU128
	case PlaintextFloat:
		return p == ParamPlaintextFloat
	case ArcisPubkey:
		return p == ParamArcisPubkey
	case ManticoreAlgo:
		return p == ParamManticoreAlgo
	case InputDataset:
		return p == ParamInputDataset
	case EncryptedBool, EncryptedU8, EncryptedU16, EncryptedU32,
		EncryptedU64, EncryptedU128, EncryptedFloat:
		return p == ParamCiphertext
	default:
		return false
	}
}

// Candidates lists the argument kinds that satisfy p.
func Candidates(p Parameter) []ArgKind {
	var kinds []ArgKind
	for _, k := range ArgKinds() {
		if !k.IsScalar() {
			continue
		}
		if s, ok := Blank(k, 0).(Scalar); ok && Satisfies(s, p) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
