package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// HasUpdateAccess returns true if contract can be updated.
func HasUpdateAccess(ctx storage.Context) bool {
	return runtime.CheckWitness(Owner(ctx))
}

// Update updates contract source code and manifest if the owner witnessed
// the transaction. Current contract version is appended to the data, so it
// can be checked by _deploy of the new contract.
func Update(nefFile, manifest []byte, data any, panicMsg string) {
	if !HasUpdateAccess(storage.GetReadOnlyContext()) {
		panic(panicMsg)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, AppendVersion(data))
}
