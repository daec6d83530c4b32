package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// CheckWitness checks witness of the passed caller. It panics with the
// provided message on fail.
func CheckWitness(caller interop.Hash160, panicMsg string) {
	if len(caller) != interop.Hash160Len || !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}

// CheckCallingContract checks that the current method is invoked by the
// contract with the provided hash. It panics with the provided message on
// fail.
func CheckCallingContract(h interop.Hash160, panicMsg string) {
	if !IsCalledBy(h) {
		panic(panicMsg)
	}
}

// IsCalledBy returns true if the current method is invoked by the contract
// with the provided hash.
func IsCalledBy(h interop.Hash160) bool {
	return len(h) == interop.Hash160Len && runtime.GetCallingScriptHash().Equals(h)
}
