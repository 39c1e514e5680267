package computation

// Match checks that args consume params exactly, left to right. It returns
// nil or a *MatchError describing the first violation. Later arguments are
// not inspected once a violation is found.
func Match(args []Argument, params []Parameter) error {
	if _, err := matchArgs(args, params); err != nil {
		return err
	}
	return nil
}

// MatchSlots is Match that also reports how many slots were consumed before
// success or failure.
func MatchSlots(args []Argument, params []Parameter) (int, error) {
	cursor, err := matchArgs(args, params)
	if err != nil {
		return cursor, err
	}
	return cursor, nil
}

func matchArgs(args []Argument, params []Parameter) (int, *MatchError) {
	cursor := 0
	for i, arg := range args {
		slots, rule, err := SlotsFor(arg)
		if err != nil {
			return cursor, &MatchError{Code: AccountLenNotMultipleOf32, ArgIndex: i, ParamIndex: cursor}
		}

		switch rule {
		case RuleUntyped:
			if cursor+slots > len(params) {
				return cursor, &MatchError{Code: AccountLenTooBig, ArgIndex: i, ParamIndex: cursor}
			}
			cursor += slots

		case RuleSignatureBytes:
			for n := 0; n < slots; n++ {
				if cursor >= len(params) {
					return cursor, &MatchError{Code: NotEnoughParams, ArgIndex: i, ParamIndex: cursor}
				}
				if params[cursor] != ParamPlaintextU8 {
					return cursor, mismatch(i, cursor, params[cursor])
				}
				cursor++
			}

		default:
			if cursor >= len(params) {
				return cursor, &MatchError{Code: NotEnoughParams, ArgIndex: i, ParamIndex: cursor}
			}
			// nil and pointer arguments take one slot that nothing satisfies
			s, ok := arg.(Scalar)
			if !ok || !Satisfies(s, params[cursor]) {
				return cursor, mismatch(i, cursor, params[cursor])
			}
			cursor++
		}
	}

	if cursor < len(params) {
		return cursor, &MatchError{Code: NotEnoughArguments, ArgIndex: -1, ParamIndex: cursor}
	}
	return cursor, nil
}

func mismatch(arg, param int, expected Parameter) *MatchError {
	return &MatchError{Code: ArgumentMismatch, ArgIndex: arg, ParamIndex: param, Expected: expected}
}
