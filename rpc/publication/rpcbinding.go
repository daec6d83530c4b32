// Package publication contains RPC wrappers for PeerLedger Publication contract.
package publication

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

// PublicationPublication is a contract-specific publication.Publication type used by its methods.
type PublicationPublication struct {
	ID *big.Int
	Title string
	Abstract string
	Authors []util.Uint160
	ContentHash util.Uint256
	Status *big.Int
	SubmittedAt *big.Int
	UpdatedAt *big.Int
	Journal util.Uint160
	DOI string
}

// PublicationMetadata is a contract-specific publication.Metadata type used by its methods.
type PublicationMetadata struct {
	Keywords []string
	Field string
	Extra string
}

// PublicationReviewTracking is a contract-specific publication.ReviewTracking type used by its methods.
type PublicationReviewTracking struct {
	AssignedReviewers []util.Uint160
	CompletedReviews []*big.Int
	Deadline *big.Int
}

// PublicationRegisteredEvent represents "PublicationRegistered" event emitted by the contract.
type PublicationRegisteredEvent struct {
	ID *big.Int
	Submitter util.Uint160
	ContentHash util.Uint256
}

// PublicationStatusChangedEvent represents "PublicationStatusChanged" event emitted by the contract.
type PublicationStatusChangedEvent struct {
	ID *big.Int
	OldStatus *big.Int
	NewStatus *big.Int
}

// JournalAssignedEvent represents "JournalAssigned" event emitted by the contract.
type JournalAssignedEvent struct {
	ID *big.Int
	Journal util.Uint160
}

// DOIAssignedEvent represents "DOIAssigned" event emitted by the contract.
type DOIAssignedEvent struct {
	ID *big.Int
	Doi string
}

// ReviewersAssignedEvent represents "ReviewersAssigned" event emitted by the contract.
type ReviewersAssignedEvent struct {
	ID *big.Int
	Reviewers []any
}

// ReviewCompletedEvent represents "ReviewCompleted" event emitted by the contract.
type ReviewCompletedEvent struct {
	ID *big.Int
	ReviewId *big.Int
}

// ContentHashUpdatedEvent represents "ContentHashUpdated" event emitted by the contract.
type ContentHashUpdatedEvent struct {
	ID *big.Int
	ContentHash util.Uint256
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

// CheckIsAuthor invokes `checkIsAuthor` method of contract.
func (c *ContractReader) CheckIsAuthor(id *big.Int, addr util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "checkIsAuthor", id, addr))
}

// CheckIsReviewer invokes `checkIsReviewer` method of contract.
func (c *ContractReader) CheckIsReviewer(id *big.Int, addr util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "checkIsReviewer", id, addr))
}

// GetOwner invokes `getOwner` method of contract.
func (c *ContractReader) GetOwner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getOwner"))
}

// GetPublication invokes `getPublication` method of contract.
func (c *ContractReader) GetPublication(id *big.Int) (*PublicationPublication, error) {
	return itemToPublicationPublication(unwrap.Item(c.invoker.Call(c.hash, "getPublication", id)))
}

// GetPublicationMetadata invokes `getPublicationMetadata` method of contract.
func (c *ContractReader) GetPublicationMetadata(id *big.Int) (*PublicationMetadata, error) {
	return itemToPublicationMetadata(unwrap.Item(c.invoker.Call(c.hash, "getPublicationMetadata", id)))
}

// GetPublicationReviews invokes `getPublicationReviews` method of contract.
func (c *ContractReader) GetPublicationReviews(id *big.Int) ([]*big.Int, error) {
	return func (item stackitem.Item, err error) ([]*big.Int, error) {
		if err != nil {
			return nil, err
		}
		return func (item stackitem.Item) ([]*big.Int, error) {
			arr, ok := item.Value().([]stackitem.Item)
			if !ok {
				return nil, errors.New("not an array")
			}
			res := make([]*big.Int, len(arr))
			for i := range res {
				res[i], err = arr[i].TryInteger()
				if err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
			}
			return res, nil
		} (item)
	} (unwrap.Item(c.invoker.Call(c.hash, "getPublicationReviews", id)))
}

// GetReviewContract invokes `getReviewContract` method of contract.
func (c *ContractReader) GetReviewContract() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getReviewContract"))
}

// GetReviewTracking invokes `getReviewTracking` method of contract.
func (c *ContractReader) GetReviewTracking(id *big.Int) (*PublicationReviewTracking, error) {
	return itemToPublicationReviewTracking(unwrap.Item(c.invoker.Call(c.hash, "getReviewTracking", id)))
}

// PublicationCount invokes `publicationCount` method of contract.
func (c *ContractReader) PublicationCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "publicationCount"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddCompletedReview creates a transaction invoking `addCompletedReview` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddCompletedReview(caller util.Uint160, id *big.Int, reviewID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addCompletedReview", caller, id, reviewID)
}

// AddCompletedReviewTransaction creates a transaction invoking `addCompletedReview` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddCompletedReviewTransaction(caller util.Uint160, id *big.Int, reviewID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addCompletedReview", caller, id, reviewID)
}

// AddCompletedReviewUnsigned creates a transaction invoking `addCompletedReview` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddCompletedReviewUnsigned(caller util.Uint160, id *big.Int, reviewID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addCompletedReview", nil, caller, id, reviewID)
}

// AddReviewer creates a transaction invoking `addReviewer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddReviewer(caller util.Uint160, id *big.Int, reviewer util.Uint160, deadline *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addReviewer", caller, id, reviewer, deadline)
}

// AddReviewerTransaction creates a transaction invoking `addReviewer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddReviewerTransaction(caller util.Uint160, id *big.Int, reviewer util.Uint160, deadline *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addReviewer", caller, id, reviewer, deadline)
}

// AddReviewerUnsigned creates a transaction invoking `addReviewer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddReviewerUnsigned(caller util.Uint160, id *big.Int, reviewer util.Uint160, deadline *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addReviewer", nil, caller, id, reviewer, deadline)
}

// AssignReviewers creates a transaction invoking `assignReviewers` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AssignReviewers(caller util.Uint160, id *big.Int, reviewers []util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "assignReviewers", caller, id, reviewers)
}

// AssignReviewersTransaction creates a transaction invoking `assignReviewers` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AssignReviewersTransaction(caller util.Uint160, id *big.Int, reviewers []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "assignReviewers", caller, id, reviewers)
}

// AssignReviewersUnsigned creates a transaction invoking `assignReviewers` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AssignReviewersUnsigned(caller util.Uint160, id *big.Int, reviewers []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "assignReviewers", nil, caller, id, reviewers)
}

// AssignToJournal creates a transaction invoking `assignToJournal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AssignToJournal(caller util.Uint160, id *big.Int, journal util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "assignToJournal", caller, id, journal)
}

// AssignToJournalTransaction creates a transaction invoking `assignToJournal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AssignToJournalTransaction(caller util.Uint160, id *big.Int, journal util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "assignToJournal", caller, id, journal)
}

// AssignToJournalUnsigned creates a transaction invoking `assignToJournal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AssignToJournalUnsigned(caller util.Uint160, id *big.Int, journal util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "assignToJournal", nil, caller, id, journal)
}

// RegisterPublication creates a transaction invoking `registerPublication` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterPublication(caller util.Uint160, title string, abstract string, authors []util.Uint160, contentHash util.Uint256, keywords []string, field string, extra string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerPublication", caller, title, abstract, authors, contentHash, keywords, field, extra)
}

// RegisterPublicationTransaction creates a transaction invoking `registerPublication` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterPublicationTransaction(caller util.Uint160, title string, abstract string, authors []util.Uint160, contentHash util.Uint256, keywords []string, field string, extra string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerPublication", caller, title, abstract, authors, contentHash, keywords, field, extra)
}

// RegisterPublicationUnsigned creates a transaction invoking `registerPublication` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterPublicationUnsigned(caller util.Uint160, title string, abstract string, authors []util.Uint160, contentHash util.Uint256, keywords []string, field string, extra string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerPublication", nil, caller, title, abstract, authors, contentHash, keywords, field, extra)
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

// SetPublicationDOI creates a transaction invoking `setPublicationDOI` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetPublicationDOI(caller util.Uint160, id *big.Int, doi string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setPublicationDOI", caller, id, doi)
}

// SetPublicationDOITransaction creates a transaction invoking `setPublicationDOI` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetPublicationDOITransaction(caller util.Uint160, id *big.Int, doi string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setPublicationDOI", caller, id, doi)
}

// SetPublicationDOIUnsigned creates a transaction invoking `setPublicationDOI` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetPublicationDOIUnsigned(caller util.Uint160, id *big.Int, doi string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setPublicationDOI", nil, caller, id, doi)
}

// SetReviewContract creates a transaction invoking `setReviewContract` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetReviewContract(caller util.Uint160, h util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setReviewContract", caller, h)
}

// SetReviewContractTransaction creates a transaction invoking `setReviewContract` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetReviewContractTransaction(caller util.Uint160, h util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setReviewContract", caller, h)
}

// SetReviewContractUnsigned creates a transaction invoking `setReviewContract` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetReviewContractUnsigned(caller util.Uint160, h util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setReviewContract", nil, caller, h)
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

// UpdatePublicationIpfsHash creates a transaction invoking `updatePublicationIpfsHash` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdatePublicationIpfsHash(caller util.Uint160, id *big.Int, contentHash util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updatePublicationIpfsHash", caller, id, contentHash)
}

// UpdatePublicationIpfsHashTransaction creates a transaction invoking `updatePublicationIpfsHash` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdatePublicationIpfsHashTransaction(caller util.Uint160, id *big.Int, contentHash util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updatePublicationIpfsHash", caller, id, contentHash)
}

// UpdatePublicationIpfsHashUnsigned creates a transaction invoking `updatePublicationIpfsHash` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdatePublicationIpfsHashUnsigned(caller util.Uint160, id *big.Int, contentHash util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updatePublicationIpfsHash", nil, caller, id, contentHash)
}

// UpdatePublicationStatus creates a transaction invoking `updatePublicationStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdatePublicationStatus(caller util.Uint160, id *big.Int, status *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updatePublicationStatus", caller, id, status)
}

// UpdatePublicationStatusTransaction creates a transaction invoking `updatePublicationStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdatePublicationStatusTransaction(caller util.Uint160, id *big.Int, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updatePublicationStatus", caller, id, status)
}

// UpdatePublicationStatusUnsigned creates a transaction invoking `updatePublicationStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdatePublicationStatusUnsigned(caller util.Uint160, id *big.Int, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updatePublicationStatus", nil, caller, id, status)
}

// itemToPublicationPublication converts stack item into *PublicationPublication.
func itemToPublicationPublication(item stackitem.Item, err error) (*PublicationPublication, error) {
	if err != nil {
		return nil, err
	}
	var res = new(PublicationPublication)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of PublicationPublication from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *PublicationPublication) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 10 {
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
	res.Abstract, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Abstract: %w", err)
	}

	index++
	res.Authors, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Authors: %w", err)
	}

	index++
	res.ContentHash, err = func (item stackitem.Item) (util.Uint256, error) {
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
		return fmt.Errorf("field ContentHash: %w", err)
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
	res.UpdatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UpdatedAt: %w", err)
	}

	index++
	res.Journal, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Journal: %w", err)
	}

	index++
	res.DOI, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field DOI: %w", err)
	}

	return nil
}

// itemToPublicationMetadata converts stack item into *PublicationMetadata.
func itemToPublicationMetadata(item stackitem.Item, err error) (*PublicationMetadata, error) {
	if err != nil {
		return nil, err
	}
	var res = new(PublicationMetadata)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of PublicationMetadata from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *PublicationMetadata) FromStackItem(item stackitem.Item) error {
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
	res.Keywords, err = func (item stackitem.Item) ([]string, error) {
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
		return fmt.Errorf("field Keywords: %w", err)
	}

	index++
	res.Field, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Field: %w", err)
	}

	index++
	res.Extra, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Extra: %w", err)
	}

	return nil
}

// itemToPublicationReviewTracking converts stack item into *PublicationReviewTracking.
func itemToPublicationReviewTracking(item stackitem.Item, err error) (*PublicationReviewTracking, error) {
	if err != nil {
		return nil, err
	}
	var res = new(PublicationReviewTracking)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of PublicationReviewTracking from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *PublicationReviewTracking) FromStackItem(item stackitem.Item) error {
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
	res.AssignedReviewers, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field AssignedReviewers: %w", err)
	}

	index++
	res.CompletedReviews, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field CompletedReviews: %w", err)
	}

	index++
	res.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	return nil
}

// PublicationRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "PublicationRegistered" name from the provided [result.ApplicationLog].
func PublicationRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*PublicationRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PublicationRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PublicationRegistered" {
				continue
			}
			event := new(PublicationRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PublicationRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PublicationRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *PublicationRegisteredEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Submitter: %w", err)
	}

	index++
	e.ContentHash, err = func (item stackitem.Item) (util.Uint256, error) {
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
		return fmt.Errorf("field ContentHash: %w", err)
	}

	return nil
}

// PublicationStatusChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "PublicationStatusChanged" name from the provided [result.ApplicationLog].
func PublicationStatusChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PublicationStatusChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PublicationStatusChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PublicationStatusChanged" {
				continue
			}
			event := new(PublicationStatusChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PublicationStatusChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PublicationStatusChangedEvent or
// returns an error if it's not possible to do to so.
func (e *PublicationStatusChangedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.OldStatus, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldStatus: %w", err)
	}

	index++
	e.NewStatus, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewStatus: %w", err)
	}

	return nil
}

// JournalAssignedEventsFromApplicationLog retrieves a set of all emitted events
// with "JournalAssigned" name from the provided [result.ApplicationLog].
func JournalAssignedEventsFromApplicationLog(log *result.ApplicationLog) ([]*JournalAssignedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*JournalAssignedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "JournalAssigned" {
				continue
			}
			event := new(JournalAssignedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize JournalAssignedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to JournalAssignedEvent or
// returns an error if it's not possible to do to so.
func (e *JournalAssignedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Journal, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Journal: %w", err)
	}

	return nil
}

// DOIAssignedEventsFromApplicationLog retrieves a set of all emitted events
// with "DOIAssigned" name from the provided [result.ApplicationLog].
func DOIAssignedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DOIAssignedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DOIAssignedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DOIAssigned" {
				continue
			}
			event := new(DOIAssignedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DOIAssignedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DOIAssignedEvent or
// returns an error if it's not possible to do to so.
func (e *DOIAssignedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Doi, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Doi: %w", err)
	}

	return nil
}

// ReviewersAssignedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReviewersAssigned" name from the provided [result.ApplicationLog].
func ReviewersAssignedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReviewersAssignedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReviewersAssignedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReviewersAssigned" {
				continue
			}
			event := new(ReviewersAssignedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReviewersAssignedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReviewersAssignedEvent or
// returns an error if it's not possible to do to so.
func (e *ReviewersAssignedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Reviewers, err = func (item stackitem.Item) ([]any, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]any, len(arr))
		for i := range res {
			res[i], err = arr[i].Value(), error(nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reviewers: %w", err)
	}

	return nil
}

// ReviewCompletedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReviewCompleted" name from the provided [result.ApplicationLog].
func ReviewCompletedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReviewCompletedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReviewCompletedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReviewCompleted" {
				continue
			}
			event := new(ReviewCompletedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReviewCompletedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReviewCompletedEvent or
// returns an error if it's not possible to do to so.
func (e *ReviewCompletedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ReviewId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReviewId: %w", err)
	}

	return nil
}

// ContentHashUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ContentHashUpdated" name from the provided [result.ApplicationLog].
func ContentHashUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContentHashUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ContentHashUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ContentHashUpdated" {
				continue
			}
			event := new(ContentHashUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ContentHashUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContentHashUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ContentHashUpdatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ContentHash, err = func (item stackitem.Item) (util.Uint256, error) {
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
		return fmt.Errorf("field ContentHash: %w", err)
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
