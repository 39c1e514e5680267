// Command argcheck reports computation.Args call sites whose arguments do
// not fit the compiled interface of the named instruction.
//
// Usage:
//
//	argcheck -build ./build ./...
//	go vet -vettool=$(which argcheck) -argcheck.build=./build ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/wippyai/mxe-call/argcheck"
)

func main() {
	singlechecker.Main(argcheck.Analyzer)
}
