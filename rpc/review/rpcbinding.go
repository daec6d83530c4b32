// Package review contains RPC wrappers for PeerLedger Review contract.
package review

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// ReviewAssignment is a contract-specific review.Assignment type used by its methods.
type ReviewAssignment struct {
	ReviewID *big.Int
	AssignedAt *big.Int
	Deadline *big.Int
}

// ReviewReview is a contract-specific review.Review type used by its methods.
type ReviewReview struct {
	ID *big.Int
	PublicationID *big.Int
	Reviewer util.Uint160
	ReviewerHash util.Uint256
	Recommendation *big.Int
	Comments string
	Status *big.Int
	SubmittedAt *big.Int
	RevealedAt *big.Int
	Confidence *big.Int
	Technical *big.Int
	Novelty *big.Int
	Clarity *big.Int
	MetadataHash util.Uint256
}

// ReviewerAssignedEvent represents "ReviewerAssigned" event emitted by the contract.
type ReviewerAssignedEvent struct {
	PublicationId *big.Int
	Reviewer util.Uint160
	Deadline *big.Int
}

// ReviewSubmittedEvent represents "ReviewSubmitted" event emitted by the contract.
type ReviewSubmittedEvent struct {
	ReviewId *big.Int
	PublicationId *big.Int
	ReviewerHash util.Uint256
}

// ReviewerRevealedEvent represents "ReviewerRevealed" event emitted by the contract.
type ReviewerRevealedEvent struct {
	ReviewId *big.Int
	Reviewer util.Uint160
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	PreviousOwner util.Uint160
	NewOwner util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
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

// GetAssignment invokes `getAssignment` method of contract.
func (c *ContractReader) GetAssignment(publicationID *big.Int, reviewer util.Uint160) (*ReviewAssignment, error) {
	return itemToReviewAssignment(unwrap.Item(c.invoker.Call(c.hash, "getAssignment", publicationID, reviewer)))
}

// GetOwner invokes `getOwner` method of contract.
func (c *ContractReader) GetOwner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getOwner"))
}

// GetReviewComplete invokes `getReviewComplete` method of contract.
func (c *ContractReader) GetReviewComplete(caller util.Uint160, reviewID *big.Int) (*ReviewReview, error) {
	return itemToReviewReview(unwrap.Item(c.invoker.Call(c.hash, "getReviewComplete", caller, reviewID)))
}

// GetReviewPublic invokes `getReviewPublic` method of contract.
func (c *ContractReader) GetReviewPublic(reviewID *big.Int) (*ReviewReview, error) {
	return itemToReviewReview(unwrap.Item(c.invoker.Call(c.hash, "getReviewPublic", reviewID)))
}

// HasReviewed invokes `hasReviewed` method of contract.
func (c *ContractReader) HasReviewed(publicationID *big.Int, reviewer util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasReviewed", publicationID, reviewer))
}

// ReviewCount invokes `reviewCount` method of contract.
func (c *ContractReader) ReviewCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reviewCount"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AssignReviewer creates a transaction invoking `assignReviewer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AssignReviewer(caller util.Uint160, publicationID *big.Int, reviewer util.Uint160, deadline *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "assignReviewer", caller, publicationID, reviewer, deadline)
}

// AssignReviewerTransaction creates a transaction invoking `assignReviewer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AssignReviewerTransaction(caller util.Uint160, publicationID *big.Int, reviewer util.Uint160, deadline *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "assignReviewer", caller, publicationID, reviewer, deadline)
}

// AssignReviewerUnsigned creates a transaction invoking `assignReviewer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AssignReviewerUnsigned(caller util.Uint160, publicationID *big.Int, reviewer util.Uint160, deadline *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "assignReviewer", nil, caller, publicationID, reviewer, deadline)
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

// RevealReviewerIdentity creates a transaction invoking `revealReviewerIdentity` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevealReviewerIdentity(caller util.Uint160, reviewID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revealReviewerIdentity", caller, reviewID)
}

// RevealReviewerIdentityTransaction creates a transaction invoking `revealReviewerIdentity` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevealReviewerIdentityTransaction(caller util.Uint160, reviewID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revealReviewerIdentity", caller, reviewID)
}

// RevealReviewerIdentityUnsigned creates a transaction invoking `revealReviewerIdentity` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevealReviewerIdentityUnsigned(caller util.Uint160, reviewID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revealReviewerIdentity", nil, caller, reviewID)
}

// SubmitReview creates a transaction invoking `submitReview` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitReview(caller util.Uint160, publicationID *big.Int, reviewerHash util.Uint256, recommendation *big.Int, comments string, confidence *big.Int, technical *big.Int, novelty *big.Int, clarity *big.Int, metadataHash util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitReview", caller, publicationID, reviewerHash, recommendation, comments, confidence, technical, novelty, clarity, metadataHash)
}

// SubmitReviewTransaction creates a transaction invoking `submitReview` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitReviewTransaction(caller util.Uint160, publicationID *big.Int, reviewerHash util.Uint256, recommendation *big.Int, comments string, confidence *big.Int, technical *big.Int, novelty *big.Int, clarity *big.Int, metadataHash util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitReview", caller, publicationID, reviewerHash, recommendation, comments, confidence, technical, novelty, clarity, metadataHash)
}

// SubmitReviewUnsigned creates a transaction invoking `submitReview` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitReviewUnsigned(caller util.Uint160, publicationID *big.Int, reviewerHash util.Uint256, recommendation *big.Int, comments string, confidence *big.Int, technical *big.Int, novelty *big.Int, clarity *big.Int, metadataHash util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitReview", nil, caller, publicationID, reviewerHash, recommendation, comments, confidence, technical, novelty, clarity, metadataHash)
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

// itemToReviewAssignment converts stack item into *ReviewAssignment.
func itemToReviewAssignment(item stackitem.Item, err error) (*ReviewAssignment, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ReviewAssignment)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ReviewAssignment from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ReviewAssignment) FromStackItem(item stackitem.Item) error {
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
	res.ReviewID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReviewID: %w", err)
	}

	index++
	res.AssignedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AssignedAt: %w", err)
	}

	index++
	res.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	return nil
}

// itemToReviewReview converts stack item into *ReviewReview.
func itemToReviewReview(item stackitem.Item, err error) (*ReviewReview, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ReviewReview)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ReviewReview from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ReviewReview) FromStackItem(item stackitem.Item) error {
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
	res.PublicationID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PublicationID: %w", err)
	}

	index++
	res.Reviewer, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Reviewer: %w", err)
	}

	index++
	res.ReviewerHash, err = func (item stackitem.Item) (util.Uint256, error) {
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
		return fmt.Errorf("field ReviewerHash: %w", err)
	}

	index++
	res.Recommendation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Recommendation: %w", err)
	}

	index++
	res.Comments, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Comments: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.SubmittedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmittedAt: %w", err)
	}

	index++
	res.RevealedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RevealedAt: %w", err)
	}

	index++
	res.Confidence, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Confidence: %w", err)
	}

	index++
	res.Technical, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Technical: %w", err)
	}

	index++
	res.Novelty, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Novelty: %w", err)
	}

	index++
	res.Clarity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Clarity: %w", err)
	}

	index++
	res.MetadataHash, err = func (item stackitem.Item) (util.Uint256, error) {
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
		return fmt.Errorf("field MetadataHash: %w", err)
	}

	return nil
}

// ReviewerAssignedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReviewerAssigned" name from the provided [result.ApplicationLog].
func ReviewerAssignedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReviewerAssignedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReviewerAssignedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReviewerAssigned" {
				continue
			}
			event := new(ReviewerAssignedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReviewerAssignedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReviewerAssignedEvent or
// returns an error if it's not possible to do to so.
func (e *ReviewerAssignedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.PublicationId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PublicationId: %w", err)
	}

	index++
	e.Reviewer, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Reviewer: %w", err)
	}

	index++
	e.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	return nil
}

// ReviewSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReviewSubmitted" name from the provided [result.ApplicationLog].
func ReviewSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReviewSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReviewSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReviewSubmitted" {
				continue
			}
			event := new(ReviewSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReviewSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReviewSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *ReviewSubmittedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ReviewId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReviewId: %w", err)
	}

	index++
	e.PublicationId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PublicationId: %w", err)
	}

	index++
	e.ReviewerHash, err = func (item stackitem.Item) (util.Uint256, error) {
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
		return fmt.Errorf("field ReviewerHash: %w", err)
	}

	return nil
}

// ReviewerRevealedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReviewerRevealed" name from the provided [result.ApplicationLog].
func ReviewerRevealedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReviewerRevealedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReviewerRevealedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReviewerRevealed" {
				continue
			}
			event := new(ReviewerRevealedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReviewerRevealedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReviewerRevealedEvent or
// returns an error if it's not possible to do to so.
func (e *ReviewerRevealedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ReviewId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReviewId: %w", err)
	}

	index++
	e.Reviewer, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Reviewer: %w", err)
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
