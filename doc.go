// Package mxecall validates and queues calls to confidential computations.
//
// A confidential computation is an encrypted instruction compiled to an MPC
// circuit and executed by an external computation network. Each compiled
// instruction exposes a parameter schema: an ordered list of one-slot
// parameter kinds. Callers supply an ordered list of tagged arguments, and
// this library guarantees the two lists are structurally compatible before
// anything is dispatched.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	mxecall/           Root package with the Pubkey address type
//	├── computation/   Arguments, parameters and the argument/parameter matcher
//	├── schema/        Interface files, comp-def offsets and the definition registry
//	├── queue/         Request construction, wire encoding and dispatch
//	├── pda/           Deterministic program-address derivation
//	├── config/        YAML configuration and logger construction
//	├── errors/        Structured error types for debugging
//	├── argcheck/      go/analysis pass that validates call sites at build time
//	└── cmd/           callcheck CLI and argcheck vet tool
//
// # Quick Start
//
// Validate arguments against a compiled instruction:
//
//	reg, err := schema.NewRegistry("build")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	def, err := reg.Get("add_together")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	args := []computation.Argument{
//	    computation.PlaintextU8(5),
//	    computation.EncryptedU8(ct),
//	}
//	if err := def.Check(args); err != nil {
//	    // *computation.MatchError describes the first mismatch
//	}
//
// # Slots
//
// Every parameter is one slot. Scalars consume one slot, an account argument
// consumes Length/32 slots and a signature consumes 64 single-byte slots.
// The 32-byte quantum and the 64-slot signature width are part of the
// schema wire format and are exposed as computation.SlotSize and
// computation.SignatureSlots.
//
// # Static and Dynamic Checks
//
// computation.MustMatch aborts on mismatch with a fixed message and is meant
// for inputs known ahead of time. computation.Check logs a diagnostic and
// returns the typed error. The argcheck analyzer runs the same matcher over
// computation.Args call sites during go vet.
//
// # Thread Safety
//
// Matching is a pure function and safe for concurrent use. schema.Registry and
// queue.Queue are safe for concurrent use.
package mxecall
