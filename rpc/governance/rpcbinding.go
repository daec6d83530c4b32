// Package governance contains RPC wrappers for PeerLedger Governance contract.
package governance

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

// GovernanceProposal is a contract-specific governance.Proposal type used by its methods.
type GovernanceProposal struct {
	ID *big.Int
	Title string
	Description string
	Proposer util.Uint160
	Type *big.Int
	Status *big.Int
	CreatedAt *big.Int
	VotingEndsAt *big.Int
	YesVotes *big.Int
	NoVotes *big.Int
	ParamKey string
	ParamValue *big.Int
	ContractAddress util.Uint160
	Payload []byte
}

// GovernanceBallot is a contract-specific governance.Ballot type used by its methods.
type GovernanceBallot struct {
	Support bool
	Weight *big.Int
}

// ProposalCreatedEvent represents "ProposalCreated" event emitted by the contract.
type ProposalCreatedEvent struct {
	ID *big.Int
	Proposer util.Uint160
	ProposalType *big.Int
	Title string
}

// VoteCastEvent represents "VoteCast" event emitted by the contract.
type VoteCastEvent struct {
	ID *big.Int
	Voter util.Uint160
	Support bool
	Weight *big.Int
}

// ProposalFinalizedEvent represents "ProposalFinalized" event emitted by the contract.
type ProposalFinalizedEvent struct {
	ID *big.Int
	Passed bool
	YesVotes *big.Int
	NoVotes *big.Int
}

// ProposalExecutedEvent represents "ProposalExecuted" event emitted by the contract.
type ProposalExecutedEvent struct {
	ID *big.Int
	Executor util.Uint160
}

// ProposalCancelledEvent represents "ProposalCancelled" event emitted by the contract.
type ProposalCancelledEvent struct {
	ID *big.Int
	CancelledBy util.Uint160
}

// ConfigChangedEvent represents "ConfigChanged" event emitted by the contract.
type ConfigChangedEvent struct {
	Key string
	Value *big.Int
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

// Config invokes `config` method of contract.
func (c *ContractReader) Config(key string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "config", key))
}

// GetOwner invokes `getOwner` method of contract.
func (c *ContractReader) GetOwner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getOwner"))
}

// GetProposal invokes `getProposal` method of contract.
func (c *ContractReader) GetProposal(proposalID *big.Int) (*GovernanceProposal, error) {
	return itemToGovernanceProposal(unwrap.Item(c.invoker.Call(c.hash, "getProposal", proposalID)))
}

// GetVote invokes `getVote` method of contract.
func (c *ContractReader) GetVote(proposalID *big.Int, voter util.Uint160) (*GovernanceBallot, error) {
	return itemToGovernanceBallot(unwrap.Item(c.invoker.Call(c.hash, "getVote", proposalID, voter)))
}

// HasVoted invokes `hasVoted` method of contract.
func (c *ContractReader) HasVoted(proposalID *big.Int, voter util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasVoted", proposalID, voter))
}

// IsApprovedContract invokes `isApprovedContract` method of contract.
func (c *ContractReader) IsApprovedContract(h util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isApprovedContract", h))
}

// IsFeatureEnabled invokes `isFeatureEnabled` method of contract.
func (c *ContractReader) IsFeatureEnabled(name string) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isFeatureEnabled", name))
}

// ListProposals invokes `listProposals` method of contract.
func (c *ContractReader) ListProposals() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listProposals"))
}

// ListProposalsExpanded is similar to ListProposals (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListProposalsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listProposals", _numOfIteratorItems))
}

// Parameter invokes `parameter` method of contract.
func (c *ContractReader) Parameter(key string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "parameter", key))
}

// ProposalCount invokes `proposalCount` method of contract.
func (c *ContractReader) ProposalCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "proposalCount"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CancelProposal creates a transaction invoking `cancelProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelProposal(caller util.Uint160, proposalID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelProposal", caller, proposalID)
}

// CancelProposalTransaction creates a transaction invoking `cancelProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelProposalTransaction(caller util.Uint160, proposalID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelProposal", caller, proposalID)
}

// CancelProposalUnsigned creates a transaction invoking `cancelProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelProposalUnsigned(caller util.Uint160, proposalID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelProposal", nil, caller, proposalID)
}

// CreateProposal creates a transaction invoking `createProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateProposal(proposer util.Uint160, title string, description string, proposalType *big.Int, paramKey string, paramValue *big.Int, contractAddress util.Uint160, payload []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createProposal", proposer, title, description, proposalType, paramKey, paramValue, contractAddress, payload)
}

// CreateProposalTransaction creates a transaction invoking `createProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateProposalTransaction(proposer util.Uint160, title string, description string, proposalType *big.Int, paramKey string, paramValue *big.Int, contractAddress util.Uint160, payload []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createProposal", proposer, title, description, proposalType, paramKey, paramValue, contractAddress, payload)
}

// CreateProposalUnsigned creates a transaction invoking `createProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateProposalUnsigned(proposer util.Uint160, title string, description string, proposalType *big.Int, paramKey string, paramValue *big.Int, contractAddress util.Uint160, payload []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createProposal", nil, proposer, title, description, proposalType, paramKey, paramValue, contractAddress, payload)
}

// ExecuteProposal creates a transaction invoking `executeProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ExecuteProposal(caller util.Uint160, proposalID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "executeProposal", caller, proposalID)
}

// ExecuteProposalTransaction creates a transaction invoking `executeProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ExecuteProposalTransaction(caller util.Uint160, proposalID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "executeProposal", caller, proposalID)
}

// ExecuteProposalUnsigned creates a transaction invoking `executeProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ExecuteProposalUnsigned(caller util.Uint160, proposalID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "executeProposal", nil, caller, proposalID)
}

// FinalizeProposal creates a transaction invoking `finalizeProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FinalizeProposal(proposalID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "finalizeProposal", proposalID)
}

// FinalizeProposalTransaction creates a transaction invoking `finalizeProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FinalizeProposalTransaction(proposalID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "finalizeProposal", proposalID)
}

// FinalizeProposalUnsigned creates a transaction invoking `finalizeProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FinalizeProposalUnsigned(proposalID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "finalizeProposal", nil, proposalID)
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

// SetConfig creates a transaction invoking `setConfig` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetConfig(caller util.Uint160, key string, value *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setConfig", caller, key, value)
}

// SetConfigTransaction creates a transaction invoking `setConfig` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetConfigTransaction(caller util.Uint160, key string, value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setConfig", caller, key, value)
}

// SetConfigUnsigned creates a transaction invoking `setConfig` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetConfigUnsigned(caller util.Uint160, key string, value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setConfig", nil, caller, key, value)
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

// Vote creates a transaction invoking `vote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Vote(voter util.Uint160, proposalID *big.Int, support bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "vote", voter, proposalID, support)
}

// VoteTransaction creates a transaction invoking `vote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VoteTransaction(voter util.Uint160, proposalID *big.Int, support bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "vote", voter, proposalID, support)
}

// VoteUnsigned creates a transaction invoking `vote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VoteUnsigned(voter util.Uint160, proposalID *big.Int, support bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "vote", nil, voter, proposalID, support)
}

// itemToGovernanceProposal converts stack item into *GovernanceProposal.
func itemToGovernanceProposal(item stackitem.Item, err error) (*GovernanceProposal, error) {
	if err != nil {
		return nil, err
	}
	var res = new(GovernanceProposal)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of GovernanceProposal from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *GovernanceProposal) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 14 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Title, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Title: %w", err)
	}

	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.Proposer, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Proposer: %w", err)
	}

	index++
	res.Type, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Type: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	index++
	res.VotingEndsAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VotingEndsAt: %w", err)
	}

	index++
	res.YesVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field YesVotes: %w", err)
	}

	index++
	res.NoVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NoVotes: %w", err)
	}

	index++
	res.ParamKey, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field ParamKey: %w", err)
	}

	index++
	res.ParamValue, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ParamValue: %w", err)
	}

	index++
	res.ContractAddress, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field ContractAddress: %w", err)
	}

	index++
	res.Payload, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Payload: %w", err)
	}

	return nil
}

// itemToGovernanceBallot converts stack item into *GovernanceBallot.
func itemToGovernanceBallot(item stackitem.Item, err error) (*GovernanceBallot, error) {
	if err != nil {
		return nil, err
	}
	var res = new(GovernanceBallot)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of GovernanceBallot from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *GovernanceBallot) FromStackItem(item stackitem.Item) error {
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
	res.Support, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Support: %w", err)
	}

	index++
	res.Weight, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Weight: %w", err)
	}

	return nil
}

// ProposalCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProposalCreated" name from the provided [result.ApplicationLog].
func ProposalCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProposalCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProposalCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProposalCreated" {
				continue
			}
			event := new(ProposalCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProposalCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProposalCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *ProposalCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Proposer, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Proposer: %w", err)
	}

	index++
	e.ProposalType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProposalType: %w", err)
	}

	index++
	e.Title, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Title: %w", err)
	}

	return nil
}

// VoteCastEventsFromApplicationLog retrieves a set of all emitted events
// with "VoteCast" name from the provided [result.ApplicationLog].
func VoteCastEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteCastEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VoteCastEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VoteCast" {
				continue
			}
			event := new(VoteCastEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VoteCastEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VoteCastEvent or
// returns an error if it's not possible to do to so.
func (e *VoteCastEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	e.Support, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Support: %w", err)
	}

	index++
	e.Weight, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Weight: %w", err)
	}

	return nil
}

// ProposalFinalizedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProposalFinalized" name from the provided [result.ApplicationLog].
func ProposalFinalizedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProposalFinalizedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProposalFinalizedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProposalFinalized" {
				continue
			}
			event := new(ProposalFinalizedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProposalFinalizedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProposalFinalizedEvent or
// returns an error if it's not possible to do to so.
func (e *ProposalFinalizedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Passed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Passed: %w", err)
	}

	index++
	e.YesVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field YesVotes: %w", err)
	}

	index++
	e.NoVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NoVotes: %w", err)
	}

	return nil
}

// ProposalExecutedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProposalExecuted" name from the provided [result.ApplicationLog].
func ProposalExecutedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProposalExecutedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProposalExecutedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProposalExecuted" {
				continue
			}
			event := new(ProposalExecutedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProposalExecutedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProposalExecutedEvent or
// returns an error if it's not possible to do to so.
func (e *ProposalExecutedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Executor, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Executor: %w", err)
	}

	return nil
}

// ProposalCancelledEventsFromApplicationLog retrieves a set of all emitted events
// with "ProposalCancelled" name from the provided [result.ApplicationLog].
func ProposalCancelledEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProposalCancelledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProposalCancelledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProposalCancelled" {
				continue
			}
			event := new(ProposalCancelledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProposalCancelledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProposalCancelledEvent or
// returns an error if it's not possible to do to so.
func (e *ProposalCancelledEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.CancelledBy, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field CancelledBy: %w", err)
	}

	return nil
}

// ConfigChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "ConfigChanged" name from the provided [result.ApplicationLog].
func ConfigChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ConfigChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ConfigChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ConfigChanged" {
				continue
			}
			event := new(ConfigChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ConfigChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ConfigChangedEvent or
// returns an error if it's not possible to do to so.
func (e *ConfigChangedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Key, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Key: %w", err)
	}

	index++
	e.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
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
