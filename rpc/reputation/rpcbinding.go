// Package reputation contains RPC wrappers for PeerLedger Reputation contract.
package reputation

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// ReputationChangedEvent represents "ReputationChanged" event emitted by the contract.
type ReputationChangedEvent struct {
	Account util.Uint160
	Category string
	Delta *big.Int
	Value *big.Int
}

// TokenManagerSetEvent represents "TokenManagerSet" event emitted by the contract.
type TokenManagerSetEvent struct {
	Manager util.Uint160
	Enabled bool
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	PreviousOwner util.Uint160
	NewOwner util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{ContractReader{nep17t.TokenReader, actor, hash}, nep17t.TokenWriter, actor, hash}
}

// GetOwner invokes `getOwner` method of contract.
func (c *ContractReader) GetOwner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getOwner"))
}

// GetReputationByCategory invokes `getReputationByCategory` method of contract.
func (c *ContractReader) GetReputationByCategory(account util.Uint160, category string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getReputationByCategory", account, category))
}

// IsTokenManager invokes `isTokenManager` method of contract.
func (c *ContractReader) IsTokenManager(addr util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isTokenManager", addr))
}

// Name invokes `name` method of contract.
func (c *ContractReader) Name() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "name"))
}

// TokenURI invokes `tokenURI` method of contract.
func (c *ContractReader) TokenURI() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "tokenURI"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Burn creates a transaction invoking `burn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Burn(caller util.Uint160, from util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burn", caller, from, amount)
}

// BurnTransaction creates a transaction invoking `burn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnTransaction(caller util.Uint160, from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burn", caller, from, amount)
}

// BurnUnsigned creates a transaction invoking `burn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnUnsigned(caller util.Uint160, from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burn", nil, caller, from, amount)
}

// BurnWithCategory creates a transaction invoking `burnWithCategory` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BurnWithCategory(caller util.Uint160, from util.Uint160, amount *big.Int, category string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burnWithCategory", caller, from, amount, category)
}

// BurnWithCategoryTransaction creates a transaction invoking `burnWithCategory` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnWithCategoryTransaction(caller util.Uint160, from util.Uint160, amount *big.Int, category string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burnWithCategory", caller, from, amount, category)
}

// BurnWithCategoryUnsigned creates a transaction invoking `burnWithCategory` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnWithCategoryUnsigned(caller util.Uint160, from util.Uint160, amount *big.Int, category string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burnWithCategory", nil, caller, from, amount, category)
}

// Mint creates a transaction invoking `mint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(caller util.Uint160, to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", caller, to, amount)
}

// MintTransaction creates a transaction invoking `mint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTransaction(caller util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", caller, to, amount)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintUnsigned(caller util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, caller, to, amount)
}

// MintWithCategory creates a transaction invoking `mintWithCategory` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MintWithCategory(caller util.Uint160, to util.Uint160, amount *big.Int, category string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mintWithCategory", caller, to, amount, category)
}

// MintWithCategoryTransaction creates a transaction invoking `mintWithCategory` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintWithCategoryTransaction(caller util.Uint160, to util.Uint160, amount *big.Int, category string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mintWithCategory", caller, to, amount, category)
}

// MintWithCategoryUnsigned creates a transaction invoking `mintWithCategory` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintWithCategoryUnsigned(caller util.Uint160, to util.Uint160, amount *big.Int, category string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mintWithCategory", nil, caller, to, amount, category)
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

// RewardPublicationAcceptance creates a transaction invoking `rewardPublicationAcceptance` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RewardPublicationAcceptance(caller util.Uint160, author util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rewardPublicationAcceptance", caller, author)
}

// RewardPublicationAcceptanceTransaction creates a transaction invoking `rewardPublicationAcceptance` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RewardPublicationAcceptanceTransaction(caller util.Uint160, author util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rewardPublicationAcceptance", caller, author)
}

// RewardPublicationAcceptanceUnsigned creates a transaction invoking `rewardPublicationAcceptance` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RewardPublicationAcceptanceUnsigned(caller util.Uint160, author util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rewardPublicationAcceptance", nil, caller, author)
}

// RewardQualityReview creates a transaction invoking `rewardQualityReview` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RewardQualityReview(caller util.Uint160, reviewer util.Uint160, score *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rewardQualityReview", caller, reviewer, score)
}

// RewardQualityReviewTransaction creates a transaction invoking `rewardQualityReview` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RewardQualityReviewTransaction(caller util.Uint160, reviewer util.Uint160, score *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rewardQualityReview", caller, reviewer, score)
}

// RewardQualityReviewUnsigned creates a transaction invoking `rewardQualityReview` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RewardQualityReviewUnsigned(caller util.Uint160, reviewer util.Uint160, score *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rewardQualityReview", nil, caller, reviewer, score)
}

// SetTokenManager creates a transaction invoking `setTokenManager` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTokenManager(caller util.Uint160, manager util.Uint160, enabled bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTokenManager", caller, manager, enabled)
}

// SetTokenManagerTransaction creates a transaction invoking `setTokenManager` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTokenManagerTransaction(caller util.Uint160, manager util.Uint160, enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTokenManager", caller, manager, enabled)
}

// SetTokenManagerUnsigned creates a transaction invoking `setTokenManager` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTokenManagerUnsigned(caller util.Uint160, manager util.Uint160, enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTokenManager", nil, caller, manager, enabled)
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

// ReputationChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReputationChanged" name from the provided [result.ApplicationLog].
func ReputationChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReputationChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReputationChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReputationChanged" {
				continue
			}
			event := new(ReputationChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReputationChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReputationChangedEvent or
// returns an error if it's not possible to do to so.
func (e *ReputationChangedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Category, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Category: %w", err)
	}

	index++
	e.Delta, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Delta: %w", err)
	}

	index++
	e.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	return nil
}

// TokenManagerSetEventsFromApplicationLog retrieves a set of all emitted events
// with "TokenManagerSet" name from the provided [result.ApplicationLog].
func TokenManagerSetEventsFromApplicationLog(log *result.ApplicationLog) ([]*TokenManagerSetEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TokenManagerSetEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TokenManagerSet" {
				continue
			}
			event := new(TokenManagerSetEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TokenManagerSetEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TokenManagerSetEvent or
// returns an error if it's not possible to do to so.
func (e *TokenManagerSetEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Manager, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Manager: %w", err)
	}

	index++
	e.Enabled, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Enabled: %w", err)
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
