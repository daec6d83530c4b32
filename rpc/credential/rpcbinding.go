// Package credential contains RPC wrappers for PeerLedger Credential contract.
package credential

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// CredentialCredentials is a contract-specific credential.Credentials type used by its methods.
type CredentialCredentials struct {
	Roles []string
	Fields []string
	Institution string
	Verifier util.Uint160
	VerifiedAt *big.Int
	ExpiresAt *big.Int
	Revoked bool
	ProofHash util.Uint256
}

// CredentialsSubmittedEvent represents "CredentialsSubmitted" event emitted by the contract.
type CredentialsSubmittedEvent struct {
	User util.Uint160
	Institution string
}

// CredentialsVerifiedEvent represents "CredentialsVerified" event emitted by the contract.
type CredentialsVerifiedEvent struct {
	User util.Uint160
	Verifier util.Uint160
	ExpiresAt *big.Int
}

// CredentialsRevokedEvent represents "CredentialsRevoked" event emitted by the contract.
type CredentialsRevokedEvent struct {
	User util.Uint160
	RevokedBy util.Uint160
}

// CredentialsUpdatedEvent represents "CredentialsUpdated" event emitted by the contract.
type CredentialsUpdatedEvent struct {
	User util.Uint160
}

// VerifierAddedEvent represents "VerifierAdded" event emitted by the contract.
type VerifierAddedEvent struct {
	Verifier util.Uint160
}

// VerifierRemovedEvent represents "VerifierRemoved" event emitted by the contract.
type VerifierRemovedEvent struct {
	Verifier util.Uint160
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	PreviousOwner util.Uint160
	NewOwner util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetCredentials invokes `getCredentials` method of contract.
func (c *ContractReader) GetCredentials(user util.Uint160) (*CredentialCredentials, error) {
	return itemToCredentialCredentials(unwrap.Item(c.invoker.Call(c.hash, "getCredentials", user)))
}

// GetOwner invokes `getOwner` method of contract.
func (c *ContractReader) GetOwner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getOwner"))
}

// HasFieldExpertise invokes `hasFieldExpertise` method of contract.
func (c *ContractReader) HasFieldExpertise(user util.Uint160, field string) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasFieldExpertise", user, field))
}

// HasRole invokes `hasRole` method of contract.
func (c *ContractReader) HasRole(user util.Uint160, role string) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRole", user, role))
}

// IsVerified invokes `isVerified` method of contract.
func (c *ContractReader) IsVerified(user util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isVerified", user))
}

// IsVerifier invokes `isVerifier` method of contract.
func (c *ContractReader) IsVerifier(addr util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isVerifier", addr))
}

// ListVerifiers invokes `listVerifiers` method of contract.
func (c *ContractReader) ListVerifiers() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listVerifiers"))
}

// ListVerifiersExpanded is similar to ListVerifiers (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListVerifiersExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listVerifiers", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddVerifier creates a transaction invoking `addVerifier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddVerifier(caller util.Uint160, verifier util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addVerifier", caller, verifier)
}

// AddVerifierTransaction creates a transaction invoking `addVerifier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddVerifierTransaction(caller util.Uint160, verifier util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addVerifier", caller, verifier)
}

// AddVerifierUnsigned creates a transaction invoking `addVerifier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddVerifierUnsigned(caller util.Uint160, verifier util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addVerifier", nil, caller, verifier)
}

// RemoveVerifier creates a transaction invoking `removeVerifier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveVerifier(caller util.Uint160, verifier util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeVerifier", caller, verifier)
}

// RemoveVerifierTransaction creates a transaction invoking `removeVerifier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveVerifierTransaction(caller util.Uint160, verifier util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeVerifier", caller, verifier)
}

// RemoveVerifierUnsigned creates a transaction invoking `removeVerifier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveVerifierUnsigned(caller util.Uint160, verifier util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeVerifier", nil, caller, verifier)
}

// RenounceOwnership creates a transaction invoking `renounceOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RenounceOwnership() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "renounceOwnership")
}

// RenounceOwnershipTransaction creates a transaction invoking `renounceOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RenounceOwnershipTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "renounceOwnership")
}

// RenounceOwnershipUnsigned creates a transaction invoking `renounceOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RenounceOwnershipUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "renounceOwnership", nil)
}

// RevokeCredentials creates a transaction invoking `revokeCredentials` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeCredentials(caller util.Uint160, user util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeCredentials", caller, user)
}

// RevokeCredentialsTransaction creates a transaction invoking `revokeCredentials` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeCredentialsTransaction(caller util.Uint160, user util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeCredentials", caller, user)
}

// RevokeCredentialsUnsigned creates a transaction invoking `revokeCredentials` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeCredentialsUnsigned(caller util.Uint160, user util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeCredentials", nil, caller, user)
}

// SubmitCredentials creates a transaction invoking `submitCredentials` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitCredentials(user util.Uint160, roles []string, fields []string, institution string, proofHash util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitCredentials", user, roles, fields, institution, proofHash)
}

// SubmitCredentialsTransaction creates a transaction invoking `submitCredentials` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitCredentialsTransaction(user util.Uint160, roles []string, fields []string, institution string, proofHash util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitCredentials", user, roles, fields, institution, proofHash)
}

// SubmitCredentialsUnsigned creates a transaction invoking `submitCredentials` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitCredentialsUnsigned(user util.Uint160, roles []string, fields []string, institution string, proofHash util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitCredentials", nil, user, roles, fields, institution, proofHash)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// UpdateCredentials creates a transaction invoking `updateCredentials` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateCredentials(user util.Uint160, roles []string, fields []string, institution string, proofHash util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateCredentials", user, roles, fields, institution, proofHash)
}

// UpdateCredentialsTransaction creates a transaction invoking `updateCredentials` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateCredentialsTransaction(user util.Uint160, roles []string, fields []string, institution string, proofHash util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateCredentials", user, roles, fields, institution, proofHash)
}

// UpdateCredentialsUnsigned creates a transaction invoking `updateCredentials` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateCredentialsUnsigned(user util.Uint160, roles []string, fields []string, institution string, proofHash util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateCredentials", nil, user, roles, fields, institution, proofHash)
}

// VerifyCredentials creates a transaction invoking `verifyCredentials` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) VerifyCredentials(verifier util.Uint160, user util.Uint160, expiresAt *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "verifyCredentials", verifier, user, expiresAt)
}

// VerifyCredentialsTransaction creates a transaction invoking `verifyCredentials` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VerifyCredentialsTransaction(verifier util.Uint160, user util.Uint160, expiresAt *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "verifyCredentials", verifier, user, expiresAt)
}

// VerifyCredentialsUnsigned creates a transaction invoking `verifyCredentials` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VerifyCredentialsUnsigned(verifier util.Uint160, user util.Uint160, expiresAt *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "verifyCredentials", nil, verifier, user, expiresAt)
}

// VerifyWithZKProof creates a transaction invoking `verifyWithZKProof` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) VerifyWithZKProof(verifier util.Uint160, user util.Uint160, proof []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "verifyWithZKProof", verifier, user, proof)
}

// VerifyWithZKProofTransaction creates a transaction invoking `verifyWithZKProof` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VerifyWithZKProofTransaction(verifier util.Uint160, user util.Uint160, proof []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "verifyWithZKProof", verifier, user, proof)
}

// VerifyWithZKProofUnsigned creates a transaction invoking `verifyWithZKProof` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VerifyWithZKProofUnsigned(verifier util.Uint160, user util.Uint160, proof []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "verifyWithZKProof", nil, verifier, user, proof)
}

// itemToCredentialCredentials converts stack item into *CredentialCredentials.
func itemToCredentialCredentials(item stackitem.Item, err error) (*CredentialCredentials, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CredentialCredentials)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CredentialCredentials from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CredentialCredentials) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Roles, err = func (item stackitem.Item) ([]string, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]string, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (string, error) {
				b, err := item.TryBytes()
				if err != nil {
					return "", err
				}
				if !utf8.Valid(b) {
					return "", errors.New("not a UTF-8 string")
				}
				return string(b), nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Roles: %w", err)
	}

	index++
	res.Fields, err = func (item stackitem.Item) ([]string, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]string, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (string, error) {
				b, err := item.TryBytes()
				if err != nil {
					return "", err
				}
				if !utf8.Valid(b) {
					return "", errors.New("not a UTF-8 string")
				}
				return string(b), nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Fields: %w", err)
	}

	index++
	res.Institution, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Institution: %w", err)
	}

	index++
	res.Verifier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Verifier: %w", err)
	}

	index++
	res.VerifiedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VerifiedAt: %w", err)
	}

	index++
	res.ExpiresAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ExpiresAt: %w", err)
	}

	index++
	res.Revoked, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Revoked: %w", err)
	}

	index++
	res.ProofHash, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ProofHash: %w", err)
	}

	return nil
}

// CredentialsSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "CredentialsSubmitted" name from the provided [result.ApplicationLog].
func CredentialsSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CredentialsSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CredentialsSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CredentialsSubmitted" {
				continue
			}
			event := new(CredentialsSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CredentialsSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CredentialsSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *CredentialsSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.Institution, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Institution: %w", err)
	}

	return nil
}

// CredentialsVerifiedEventsFromApplicationLog retrieves a set of all emitted events
// with "CredentialsVerified" name from the provided [result.ApplicationLog].
func CredentialsVerifiedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CredentialsVerifiedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CredentialsVerifiedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CredentialsVerified" {
				continue
			}
			event := new(CredentialsVerifiedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CredentialsVerifiedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CredentialsVerifiedEvent or
// returns an error if it's not possible to do to so.
func (e *CredentialsVerifiedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.Verifier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Verifier: %w", err)
	}

	index++
	e.ExpiresAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ExpiresAt: %w", err)
	}

	return nil
}

// CredentialsRevokedEventsFromApplicationLog retrieves a set of all emitted events
// with "CredentialsRevoked" name from the provided [result.ApplicationLog].
func CredentialsRevokedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CredentialsRevokedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CredentialsRevokedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CredentialsRevoked" {
				continue
			}
			event := new(CredentialsRevokedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CredentialsRevokedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CredentialsRevokedEvent or
// returns an error if it's not possible to do to so.
func (e *CredentialsRevokedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.RevokedBy, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field RevokedBy: %w", err)
	}

	return nil
}

// CredentialsUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "CredentialsUpdated" name from the provided [result.ApplicationLog].
func CredentialsUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CredentialsUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CredentialsUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CredentialsUpdated" {
				continue
			}
			event := new(CredentialsUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CredentialsUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CredentialsUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *CredentialsUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	return nil
}

// VerifierAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "VerifierAdded" name from the provided [result.ApplicationLog].
func VerifierAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VerifierAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VerifierAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VerifierAdded" {
				continue
			}
			event := new(VerifierAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VerifierAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VerifierAddedEvent or
// returns an error if it's not possible to do to so.
func (e *VerifierAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Verifier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Verifier: %w", err)
	}

	return nil
}

// VerifierRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "VerifierRemoved" name from the provided [result.ApplicationLog].
func VerifierRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VerifierRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VerifierRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VerifierRemoved" {
				continue
			}
			event := new(VerifierRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VerifierRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VerifierRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *VerifierRemovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Verifier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Verifier: %w", err)
	}

	return nil
}

// OwnershipTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipTransferred" name from the provided [result.ApplicationLog].
func OwnershipTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipTransferredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnershipTransferredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnershipTransferred" {
				continue
			}
			event := new(OwnershipTransferredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnershipTransferredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipTransferredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.PreviousOwner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PreviousOwner: %w", err)
	}

	index++
	e.NewOwner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewOwner: %w", err)
	}

	return nil
}
