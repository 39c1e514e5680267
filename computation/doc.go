// Package computation decides whether a caller's argument list fits the
// parameter schema an encrypted instruction was compiled with.
//
// # Slots
//
// Every Parameter is one slot. Arguments consume slots as follows:
//
//	Argument              Slots               Slot check
//	──────────────────────────────────────────────────────────────
//	Plaintext*, Pubkey    1                   same-named parameter
//	Encrypted*            1                   ParamCiphertext
//	Account               Length/SlotSize     none (untyped)
//	ArcisSignature        SignatureSlots      ParamPlaintextU8 each
//
// Match walks the arguments once, left to right, advancing a cursor over
// the parameters, and stops at the first violation. The result is nil or a
// *MatchError carrying one of five codes:
//
//	AccountLenNotMultipleOf32  account length is not a multiple of SlotSize
//	AccountLenTooBig           account needs more slots than remain
//	ArgumentMismatch           argument does not satisfy the parameter at the cursor
//	NotEnoughParams            parameters ran out inside an argument
//	NotEnoughArguments         arguments ran out before the parameters
//
// # Entry Points
//
// MustMatch panics with a fixed message and is meant for lists known ahead
// of time. Check logs a diagnostic that names the offending argument and
// returns the error. Both run the same matcher.
//
// Account lengths must be padded to SlotSize by the caller; nothing here
// pads on the caller's behalf.
package computation
