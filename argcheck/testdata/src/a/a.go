package a

import "github.com/wippyai/mxe-call/computation"

var (
	pt   computation.PlaintextU8
	ct   computation.EncryptedU8
	sig  computation.ArcisSignature
	name = "add_together"
	n    uint32
	dyn  computation.Argument
	list []computation.Argument
)

const blobLen = 64

func valid() {
	_ = computation.Args("add_together", computation.PlaintextU8(5), ct)
	_ = computation.Args("add_together", computation.Account{Length: blobLen})
	_ = computation.Args("add_together", computation.Account{Offset: 8, Length: 32}, ct)
	_ = computation.Args("verify", sig, ct)
	_ = computation.Args("empty")
}

func invalid() {
	_ = computation.Args("add_together", computation.PlaintextU8(5), computation.PlaintextU8(6)) // want "Invalid argument, mismatch with parameter"
	_ = computation.Args("add_together", computation.PlaintextU8(5))                             // want "Invalid arguments : not enough arguments"
	_ = computation.Args("add_together", computation.PlaintextU8(5), ct, ct)                     // want "Invalid argument : not enough params"
	_ = computation.Args("add_together", computation.Account{Length: 96})                        // want "Invalid argument : account is bigger than the circuit size"
	_ = computation.Args("add_together", computation.Account{Length: 40})                        // want "Invalid argument : account len is not a multiple of 32"
	_ = computation.Args("verify", sig)                                                          // want "Invalid arguments : not enough arguments"
	_ = computation.Args("add_together", sig)                                                    // want "Invalid argument, mismatch with parameter"
	_ = computation.Args("add_together", &pt, &ct)                                               // want "Invalid argument, mismatch with parameter"
	_ = computation.Args("add_together", pt, &ct)                                                // want "Invalid argument, mismatch with parameter"
	_ = computation.Args("add_together", &computation.Account{Length: blobLen})                  // want "Invalid argument, mismatch with parameter"
	_ = computation.Args("verify", &sig, ct)                                                     // want "Invalid argument, mismatch with parameter"
}

func notStatic() {
	_ = computation.Args(name, ct)                                       // want "arguments must be known at compile time"
	_ = computation.Args("add_together", computation.Account{Length: n}) // want "arguments must be known at compile time"
	_ = computation.Args("add_together", dyn, ct)                        // want "arguments must be known at compile time"
	_ = computation.Args("add_together", list...)                        // want "arguments must be known at compile time"
	_ = computation.Args("missing", ct)                                  // want `no interface file for "missing"`
}
