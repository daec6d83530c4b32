package credential

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/peerledger/peerledger-contract/common"
	"github.com/peerledger/peerledger-contract/contracts/credential/credentialconst"
)

// Credentials structure stores academic credentials of a user.
type Credentials struct {
	Roles       []string
	Fields      []string
	Institution string
	// Verifier is an address of the trusted verifier that verified
	// credentials last time.
	Verifier interop.Hash160
	// VerifiedAt is a block of the last verification, 0 if unverified.
	VerifiedAt int
	// ExpiresAt is a block from which credentials are not valid, 0 if
	// credentials never expire.
	ExpiresAt int
	Revoked   bool
	ProofHash interop.Hash256
}

const (
	credentialsPrefix = 'c'
	verifierPrefix    = 'v'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	common.InitOwner(ctx, args[0].(interop.Hash160))

	runtime.Log("credential contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.Update(nefFile, manifest, data, credentialconst.ErrNotAuthorized)
	runtime.Log("credential contract updated")
}

// AddVerifier registers a trusted verifier. It can be invoked only by the
// contract owner.
func AddVerifier(caller, verifier interop.Hash160) {
	ctx := storage.GetContext()
	checkOwner(ctx, caller)

	if len(verifier) != interop.Hash160Len {
		panic(credentialconst.ErrInvalidInput)
	}

	key := verifierKey(verifier)
	if storage.Get(ctx, key) != nil {
		panic(credentialconst.ErrAlreadyExists)
	}
	storage.Put(ctx, key, true)

	runtime.Notify("VerifierAdded", verifier)
}

// RemoveVerifier removes a trusted verifier. It can be invoked only by the
// contract owner.
func RemoveVerifier(caller, verifier interop.Hash160) {
	ctx := storage.GetContext()
	checkOwner(ctx, caller)

	key := verifierKey(verifier)
	if storage.Get(ctx, key) == nil {
		panic(credentialconst.ErrDoesNotExist)
	}
	storage.Delete(ctx, key)

	runtime.Notify("VerifierRemoved", verifier)
}

// IsVerifier returns true if the address is a trusted verifier.
func IsVerifier(addr interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return isVerifier(ctx, addr)
}

// SubmitCredentials stores unverified credentials of the user. Credentials
// become valid after verification by one of the trusted verifiers.
func SubmitCredentials(user interop.Hash160, roles, fields []string, institution string, proofHash interop.Hash256) {
	ctx := storage.GetContext()
	common.CheckWitness(user, credentialconst.ErrNotAuthorized)
	checkContent(roles, fields, proofHash)

	key := credentialsKey(user)
	if storage.Get(ctx, key) != nil {
		panic(credentialconst.ErrAlreadyExists)
	}

	common.SetSerialized(ctx, key, Credentials{
		Roles:       roles,
		Fields:      fields,
		Institution: institution,
		Verifier:    common.ZeroHash160(),
		ProofHash:   proofHash,
	})

	runtime.Notify("CredentialsSubmitted", user, institution)
}

// UpdateCredentials overwrites credentials of the user. Updated credentials
// lose verification and must be verified again.
func UpdateCredentials(user interop.Hash160, roles, fields []string, institution string, proofHash interop.Hash256) {
	ctx := storage.GetContext()
	common.CheckWitness(user, credentialconst.ErrNotAuthorized)
	checkContent(roles, fields, proofHash)

	key := credentialsKey(user)
	if storage.Get(ctx, key) == nil {
		panic(credentialconst.ErrDoesNotExist)
	}

	common.SetSerialized(ctx, key, Credentials{
		Roles:       roles,
		Fields:      fields,
		Institution: institution,
		Verifier:    common.ZeroHash160(),
		ProofHash:   proofHash,
	})

	runtime.Notify("CredentialsUpdated", user)
}

// VerifyCredentials marks credentials of the user as verified. Credentials
// expire at the provided block, 0 means they never expire. Verification
// clears previous revocation. It can be invoked only by a trusted verifier.
func VerifyCredentials(verifier, user interop.Hash160, expiresAt int) {
	ctx := storage.GetContext()
	checkVerifier(ctx, verifier)

	if expiresAt != 0 && expiresAt <= ledger.CurrentIndex() {
		panic(credentialconst.ErrInvalidInput)
	}

	verify(ctx, verifier, user, expiresAt)
}

// VerifyWithZKProof verifies credentials of the user by the provided
// zero-knowledge proof. Proof checking is not implemented yet: any non-empty
// proof is accepted. Verified credentials never expire.
func VerifyWithZKProof(verifier, user interop.Hash160, proof []byte) {
	ctx := storage.GetContext()
	checkVerifier(ctx, verifier)

	if len(proof) == 0 {
		panic(credentialconst.ErrInvalidProof)
	}

	verify(ctx, verifier, user, 0)
}

// RevokeCredentials revokes credentials of the user. It can be invoked by the
// contract owner or any trusted verifier.
func RevokeCredentials(caller, user interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckWitness(caller, credentialconst.ErrNotAuthorized)
	if !common.Owner(ctx).Equals(caller) && !isVerifier(ctx, caller) {
		panic(credentialconst.ErrNotAuthorized)
	}

	key := credentialsKey(user)
	cred := getCredentials(ctx, user)
	if cred.Revoked {
		panic(credentialconst.ErrRevoked)
	}
	cred.Revoked = true
	common.SetSerialized(ctx, key, cred)

	runtime.Notify("CredentialsRevoked", user, caller)
}

// IsVerified returns true if the user has valid credentials: verified, not
// revoked and not expired.
func IsVerified(user interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()

	data := common.GetSerialized(ctx, credentialsKey(user))
	if data == nil {
		return false
	}

	return isValid(data.(Credentials))
}

// HasRole checks whether valid credentials of the user contain the role.
func HasRole(user interop.Hash160, role string) bool {
	cred := getValidCredentials(storage.GetReadOnlyContext(), user)
	return common.HasString(cred.Roles, role)
}

// HasFieldExpertise checks whether valid credentials of the user contain the
// expertise field.
func HasFieldExpertise(user interop.Hash160, field string) bool {
	cred := getValidCredentials(storage.GetReadOnlyContext(), user)
	return common.HasString(cred.Fields, field)
}

// GetCredentials returns credentials of the user.
func GetCredentials(user interop.Hash160) Credentials {
	return getCredentials(storage.GetReadOnlyContext(), user)
}

// ListVerifiers returns iterator over all trusted verifiers.
func ListVerifiers() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{verifierPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// GetOwner returns the contract owner.
func GetOwner() interop.Hash160 {
	return common.Owner(storage.GetReadOnlyContext())
}

// TransferOwnership sets the new contract owner. It can be invoked only by the
// current owner.
func TransferOwnership(newOwner interop.Hash160) bool {
	return common.TransferOwnership(storage.GetContext(), newOwner, credentialconst.ErrNotAuthorized)
}

// RenounceOwnership leaves the contract without an owner.
func RenounceOwnership() bool {
	return common.RenounceOwnership(storage.GetContext(), credentialconst.ErrNotAuthorized)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func verify(ctx storage.Context, verifier, user interop.Hash160, expiresAt int) {
	cred := getCredentials(ctx, user)
	cred.Verifier = verifier
	cred.VerifiedAt = ledger.CurrentIndex()
	cred.ExpiresAt = expiresAt
	cred.Revoked = false
	common.SetSerialized(ctx, credentialsKey(user), cred)

	runtime.Notify("CredentialsVerified", user, verifier, expiresAt)
}

func isValid(cred Credentials) bool {
	if cred.VerifiedAt == 0 || cred.Revoked {
		return false
	}

	return cred.ExpiresAt == 0 || ledger.CurrentIndex() < cred.ExpiresAt
}

func getCredentials(ctx storage.Context, user interop.Hash160) Credentials {
	data := common.GetSerialized(ctx, credentialsKey(user))
	if data == nil {
		panic(credentialconst.ErrDoesNotExist)
	}

	return data.(Credentials)
}

func getValidCredentials(ctx storage.Context, user interop.Hash160) Credentials {
	cred := getCredentials(ctx, user)
	if !isValid(cred) {
		panic(credentialconst.ErrExpired)
	}

	return cred
}

func checkContent(roles, fields []string, proofHash interop.Hash256) {
	if len(roles) > credentialconst.MaxRoles ||
		len(fields) > credentialconst.MaxFields ||
		len(proofHash) != interop.Hash256Len {
		panic(credentialconst.ErrInvalidInput)
	}
}

func checkOwner(ctx storage.Context, caller interop.Hash160) {
	if !common.IsOwner(ctx, caller) {
		panic(credentialconst.ErrNotAuthorized)
	}
}

func checkVerifier(ctx storage.Context, verifier interop.Hash160) {
	common.CheckWitness(verifier, credentialconst.ErrNotAuthorized)
	if !isVerifier(ctx, verifier) {
		panic(credentialconst.ErrNotAuthorized)
	}
}

func isVerifier(ctx storage.Context, addr interop.Hash160) bool {
	return storage.Get(ctx, verifierKey(addr)) != nil
}

func credentialsKey(user interop.Hash160) []byte {
	return append([]byte{credentialsPrefix}, user...)
}

func verifierKey(addr interop.Hash160) []byte {
	return append([]byte{verifierPrefix}, addr...)
}
