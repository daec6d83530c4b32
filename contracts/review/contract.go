package review

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/peerledger/peerledger-contract/common"
	"github.com/peerledger/peerledger-contract/contracts/review/reviewconst"
)

type (
	// Assignment structure stores assignment of a reviewer to a publication.
	Assignment struct {
		// ReviewID is 0 until the reviewer submits a review.
		ReviewID   int
		AssignedAt int
		Deadline   int
	}

	// Review structure stores a submitted review. Reviewer is the actual
	// reviewer address, ReviewerHash is shown to the public until the reviewer
	// reveals identity.
	Review struct {
		ID             int
		PublicationID  int
		Reviewer       interop.Hash160
		ReviewerHash   interop.Hash256
		Recommendation int
		Comments       string
		Status         int
		SubmittedAt    int
		RevealedAt     int
		Confidence     int
		Technical      int
		Novelty        int
		Clarity        int
		MetadataHash   interop.Hash256
	}
)

// publication is a (sufficient) copy of
// github.com/peerledger/peerledger-contract/contracts/publication.Publication
// to prevent cross-contract imports that may fail due to internal `_deploy` calls.
type publication struct {
	ID          int
	Title       string
	Abstract    string
	Authors     []interop.Hash160
	ContentHash interop.Hash256
	Status      int
	// Other fields are irrelevant and therefore omitted.
}

// publicationUnderReview is a copy of
// github.com/peerledger/peerledger-contract/contracts/publication/publicationconst.StatusUnderReview.
const publicationUnderReview = 1

const (
	assignmentPrefix = 'a'
	reviewPrefix     = 'r'

	countKey               = 'n'
	credentialContractKey  = 'c'
	publicationContractKey = 'p'
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

	credentialContract := args[1].(interop.Hash160)
	publicationContract := args[2].(interop.Hash160)
	if len(credentialContract) != interop.Hash160Len || len(publicationContract) != interop.Hash160Len {
		panic("invalid dependency contract hash")
	}
	storage.Put(ctx, credentialContractKey, credentialContract)
	storage.Put(ctx, publicationContractKey, publicationContract)

	runtime.Log("review contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.Update(nefFile, manifest, data, reviewconst.ErrNotAuthorized)
	runtime.Log("review contract updated")
}

// AssignReviewer assigns the reviewer to the publication. Reviewer must have
// valid credentials and must not be an author of the publication. Deadline is
// the last block at which the review can be submitted. It can be invoked only
// by the contract owner.
//
// It produces ReviewerAssigned notification.
func AssignReviewer(caller interop.Hash160, publicationID int, reviewer interop.Hash160, deadline int) {
	ctx := storage.GetContext()
	if !common.IsOwner(ctx, caller) {
		panic(reviewconst.ErrNotAuthorized)
	}

	current := ledger.CurrentIndex()
	if deadline <= current || len(reviewer) != interop.Hash160Len {
		panic(reviewconst.ErrInvalidInput)
	}

	credentialContract := storage.Get(ctx, credentialContractKey).(interop.Hash160)
	publicationContract := storage.Get(ctx, publicationContractKey).(interop.Hash160)

	count := contract.Call(publicationContract, "publicationCount", contract.ReadOnly).(int)
	if publicationID < 1 || publicationID > count {
		panic(reviewconst.ErrDoesNotExist)
	}

	verified := contract.Call(credentialContract, "isVerified", contract.ReadOnly, reviewer).(bool)
	if !verified {
		panic(reviewconst.ErrNotVerified)
	}

	isAuthor := contract.Call(publicationContract, "checkIsAuthor", contract.ReadOnly, publicationID, reviewer).(bool)
	if isAuthor {
		panic(reviewconst.ErrConflictOfInterest)
	}

	key := assignmentKey(publicationID, reviewer)
	if storage.Get(ctx, key) != nil {
		panic(reviewconst.ErrAlreadyExists)
	}

	common.SetSerialized(ctx, key, Assignment{
		ReviewID:   0,
		AssignedAt: current,
		Deadline:   deadline,
	})

	contract.Call(publicationContract, "addReviewer", contract.All, caller, publicationID, reviewer, deadline)

	runtime.Notify("ReviewerAssigned", publicationID, reviewer, deadline)
}

// SubmitReview stores a review of the assigned reviewer and returns its
// identifier. Reviewer is publicly identified by reviewerHash until
// RevealReviewerIdentity call. Every assignment allows a single review.
//
// It produces ReviewSubmitted notification.
func SubmitReview(caller interop.Hash160, publicationID int, reviewerHash interop.Hash256,
	recommendation int, comments string, confidence, technical, novelty, clarity int,
	metadataHash interop.Hash256) int {
	ctx := storage.GetContext()
	common.CheckWitness(caller, reviewconst.ErrNotAuthorized)

	key := assignmentKey(publicationID, caller)
	data := common.GetSerialized(ctx, key)
	if data == nil {
		panic(reviewconst.ErrNotAuthorized)
	}
	assignment := data.(Assignment)
	if assignment.ReviewID != 0 {
		panic(reviewconst.ErrAlreadyReviewed)
	}

	current := ledger.CurrentIndex()
	if current > assignment.Deadline {
		panic(reviewconst.ErrReviewClosed)
	}

	if !reviewconst.IsValidScore(confidence) || !reviewconst.IsValidScore(technical) ||
		!reviewconst.IsValidScore(novelty) || !reviewconst.IsValidScore(clarity) ||
		!reviewconst.IsValidRecommendation(recommendation) ||
		len(reviewerHash) != interop.Hash256Len || len(metadataHash) != interop.Hash256Len {
		panic(reviewconst.ErrInvalidInput)
	}

	publicationContract := storage.Get(ctx, publicationContractKey).(interop.Hash160)
	pub := contract.Call(publicationContract, "getPublication", contract.ReadOnly, publicationID).(publication)
	if pub.Status != publicationUnderReview {
		panic(reviewconst.ErrReviewClosed)
	}

	id := common.NextID(ctx, countKey)
	common.SetSerialized(ctx, idKey(id), Review{
		ID:             id,
		PublicationID:  publicationID,
		Reviewer:       caller,
		ReviewerHash:   reviewerHash,
		Recommendation: recommendation,
		Comments:       comments,
		Status:         reviewconst.StatusSubmitted,
		SubmittedAt:    current,
		RevealedAt:     0,
		Confidence:     confidence,
		Technical:      technical,
		Novelty:        novelty,
		Clarity:        clarity,
		MetadataHash:   metadataHash,
	})

	assignment.ReviewID = id
	common.SetSerialized(ctx, key, assignment)

	contract.Call(publicationContract, "addCompletedReview", contract.All, caller, publicationID, id)

	runtime.Notify("ReviewSubmitted", id, publicationID, reviewerHash)

	return id
}

// RevealReviewerIdentity makes the actual reviewer of the review public. It can
// be invoked only by the reviewer.
//
// It produces ReviewerRevealed notification.
func RevealReviewerIdentity(caller interop.Hash160, reviewID int) {
	ctx := storage.GetContext()

	r := getReview(ctx, reviewID)
	common.CheckWitness(caller, reviewconst.ErrNotAuthorized)
	if !r.Reviewer.Equals(caller) {
		panic(reviewconst.ErrNotAuthorized)
	}
	if r.Status == reviewconst.StatusRevealed {
		panic(reviewconst.ErrAlreadyRevealed)
	}
	if r.Status != reviewconst.StatusSubmitted {
		panic(reviewconst.ErrInvalidStatus)
	}

	r.Status = reviewconst.StatusRevealed
	r.RevealedAt = ledger.CurrentIndex()
	common.SetSerialized(ctx, idKey(reviewID), r)

	runtime.Notify("ReviewerRevealed", reviewID, caller)
}

// GetReviewPublic returns the review as it is seen by the public. Reviewer and
// ReviewerHash consist of zero bytes until the reviewer reveals identity.
func GetReviewPublic(reviewID int) Review {
	r := getReview(storage.GetReadOnlyContext(), reviewID)
	if r.Status != reviewconst.StatusRevealed {
		r.Reviewer = common.ZeroHash160()
		r.ReviewerHash = common.ZeroHash256()
	}

	return r
}

// GetReviewComplete returns the review with the actual reviewer. It can be
// invoked only by the contract owner or the reviewer.
func GetReviewComplete(caller interop.Hash160, reviewID int) Review {
	ctx := storage.GetReadOnlyContext()

	r := getReview(ctx, reviewID)
	common.CheckWitness(caller, reviewconst.ErrNotAuthorized)
	if !common.Owner(ctx).Equals(caller) && !r.Reviewer.Equals(caller) {
		panic(reviewconst.ErrNotAuthorized)
	}

	return r
}

// GetAssignment returns assignment of the reviewer to the publication.
func GetAssignment(publicationID int, reviewer interop.Hash160) Assignment {
	data := common.GetSerialized(storage.GetReadOnlyContext(), assignmentKey(publicationID, reviewer))
	if data == nil {
		panic(reviewconst.ErrDoesNotExist)
	}

	return data.(Assignment)
}

// HasReviewed returns true if the reviewer has submitted a review of the
// publication.
func HasReviewed(publicationID int, reviewer interop.Hash160) bool {
	data := common.GetSerialized(storage.GetReadOnlyContext(), assignmentKey(publicationID, reviewer))
	if data == nil {
		return false
	}

	return data.(Assignment).ReviewID != 0
}

// ReviewCount returns the number of submitted reviews.
func ReviewCount() int {
	return common.Counter(storage.GetReadOnlyContext(), countKey)
}

// GetOwner returns the contract owner.
func GetOwner() interop.Hash160 {
	return common.Owner(storage.GetReadOnlyContext())
}

// TransferOwnership sets the new contract owner. It can be invoked only by the
// current owner.
func TransferOwnership(newOwner interop.Hash160) bool {
	return common.TransferOwnership(storage.GetContext(), newOwner, reviewconst.ErrNotAuthorized)
}

// RenounceOwnership leaves the contract without an owner.
func RenounceOwnership() bool {
	return common.RenounceOwnership(storage.GetContext(), reviewconst.ErrNotAuthorized)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getReview(ctx storage.Context, id int) Review {
	data := common.GetSerialized(ctx, idKey(id))
	if data == nil {
		panic(reviewconst.ErrDoesNotExist)
	}

	return data.(Review)
}

func idKey(id int) []byte {
	return append([]byte{reviewPrefix}, convert.ToBytes(id)...)
}

func assignmentKey(publicationID int, reviewer interop.Hash160) []byte {
	return append(append([]byte{assignmentPrefix}, convert.ToBytes(publicationID)...), reviewer...)
}
