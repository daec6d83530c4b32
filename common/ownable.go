package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// OwnerKey is a storage key of the contract owner. It is shared by all
// PeerLedger contracts, so contract-specific prefixes must not start with 'o'.
const OwnerKey = "owner"

// ErrInvalidOwner is thrown when new owner is not a valid script hash.
const ErrInvalidOwner = "invalid owner"

// InitOwner stores the initial contract owner. It is called from _deploy.
func InitOwner(ctx storage.Context, owner interop.Hash160) {
	if len(owner) != interop.Hash160Len {
		panic(ErrInvalidOwner)
	}
	storage.Put(ctx, OwnerKey, owner)
}

// Owner returns current contract owner. Renounced contracts have an owner
// consisting of zero bytes.
func Owner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, OwnerKey).(interop.Hash160)
}

// IsOwner returns true if the caller is the contract owner and the
// transaction is witnessed by it.
func IsOwner(ctx storage.Context, caller interop.Hash160) bool {
	owner := Owner(ctx)
	return owner.Equals(caller) && runtime.CheckWitness(owner)
}

// CheckOwner checks owner witness. It panics with the provided message on
// fail.
func CheckOwner(ctx storage.Context, panicMsg string) {
	if !runtime.CheckWitness(Owner(ctx)) {
		panic(panicMsg)
	}
}

// TransferOwnership sets the new contract owner. It can be invoked only by the
// current owner and produces OwnershipTransferred notification.
func TransferOwnership(ctx storage.Context, newOwner interop.Hash160, panicMsg string) bool {
	if len(newOwner) != interop.Hash160Len {
		panic(ErrInvalidOwner)
	}
	CheckOwner(ctx, panicMsg)
	setOwner(ctx, newOwner)

	return true
}

// RenounceOwnership leaves the contract without an owner, so owner-only
// methods can't be invoked anymore.
func RenounceOwnership(ctx storage.Context, panicMsg string) bool {
	CheckOwner(ctx, panicMsg)
	setOwner(ctx, ZeroHash160())

	return true
}

// ZeroHash160 returns a script hash consisting of zero bytes.
func ZeroHash160() interop.Hash160 {
	return make([]byte, interop.Hash160Len)
}

// ZeroHash256 returns a hash consisting of zero bytes.
func ZeroHash256() interop.Hash256 {
	return make([]byte, interop.Hash256Len)
}

func setOwner(ctx storage.Context, newOwner interop.Hash160) {
	prev := Owner(ctx)
	storage.Put(ctx, OwnerKey, newOwner)
	runtime.Notify("OwnershipTransferred", prev, newOwner)
}
