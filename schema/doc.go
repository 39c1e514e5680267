// Package schema loads the compiled interfaces of encrypted instructions.
//
// Each encrypted instruction is compiled to <build>/<name>.idarc, a YAML or
// JSON document listing its parameter slots:
//
//	name: add_together
//	inputs: [PlaintextU8, Ciphertext]
//	outputs: [Ciphertext]
//	circuit_len: 1024
//
// A Definition pairs those parameters with the instruction's comp-def
// offset, and a Registry resolves definitions by name or offset with an LRU
// cache that can follow changes to the build directory.
//
// Argument manifests are YAML lists of `Kind: value` entries used to check
// argument lists that are fixed ahead of time.
package schema
