package publication

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/peerledger/peerledger-contract/common"
	"github.com/peerledger/peerledger-contract/contracts/publication/publicationconst"
)

type (
	// Publication structure stores a registered scientific publication.
	Publication struct {
		ID          int
		Title       string
		Abstract    string
		Authors     []interop.Hash160
		ContentHash interop.Hash256
		Status      int
		SubmittedAt int
		UpdatedAt   int
		// Journal consists of zero bytes until the publication is assigned to
		// a journal.
		Journal interop.Hash160
		DOI     string
	}

	// Metadata structure stores searchable publication attributes.
	Metadata struct {
		Keywords []string
		Field    string
		Extra    string
	}

	// ReviewTracking structure stores reviewers of the publication and
	// identifiers of submitted reviews.
	ReviewTracking struct {
		AssignedReviewers []interop.Hash160
		CompletedReviews  []int
		Deadline          int
	}
)

const (
	publicationPrefix = 'p'
	metadataPrefix    = 'm'
	trackingPrefix    = 't'
	assignmentPrefix  = 'a'

	countKey          = 'n'
	reviewContractKey = 'r'
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

	runtime.Log("publication contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.Update(nefFile, manifest, data, publicationconst.ErrNotAuthorized)
	runtime.Log("publication contract updated")
}

// SetReviewContract registers Review contract which is allowed to add
// reviewers and completed reviews. It can be invoked only by the contract
// owner.
func SetReviewContract(caller, h interop.Hash160) {
	ctx := storage.GetContext()
	checkOwner(ctx, caller)

	if len(h) != interop.Hash160Len {
		panic(publicationconst.ErrInvalidInput)
	}
	storage.Put(ctx, reviewContractKey, h)

	runtime.Log("review contract registered")
}

// GetReviewContract returns the registered Review contract hash.
func GetReviewContract() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getReviewContract(ctx)
}

// RegisterPublication registers a new publication in Submitted status and
// returns its identifier. Caller must be one of the authors.
//
// It produces PublicationRegistered notification.
func RegisterPublication(caller interop.Hash160, title, abstract string, authors []interop.Hash160,
	contentHash interop.Hash256, keywords []string, field, extra string) int {
	ctx := storage.GetContext()
	common.CheckWitness(caller, publicationconst.ErrNotAuthorized)

	if len(title) == 0 ||
		len(authors) == 0 || len(authors) > publicationconst.MaxAuthors ||
		len(keywords) > publicationconst.MaxKeywords ||
		len(contentHash) != interop.Hash256Len {
		panic(publicationconst.ErrInvalidInput)
	}
	for i := range authors {
		if len(authors[i]) != interop.Hash160Len {
			panic(publicationconst.ErrInvalidInput)
		}
		for j := 0; j < i; j++ {
			if authors[j].Equals(authors[i]) {
				panic(publicationconst.ErrInvalidInput)
			}
		}
	}
	if !common.HasHash160(authors, caller) {
		panic(publicationconst.ErrNotAuthorized)
	}

	id := common.NextID(ctx, countKey)
	current := ledger.CurrentIndex()

	putPublication(ctx, Publication{
		ID:          id,
		Title:       title,
		Abstract:    abstract,
		Authors:     authors,
		ContentHash: contentHash,
		Status:      publicationconst.StatusSubmitted,
		SubmittedAt: current,
		UpdatedAt:   current,
		Journal:     common.ZeroHash160(),
		DOI:         "",
	})
	common.SetSerialized(ctx, idKey(metadataPrefix, id), Metadata{
		Keywords: keywords,
		Field:    field,
		Extra:    extra,
	})
	putTracking(ctx, id, ReviewTracking{
		AssignedReviewers: []interop.Hash160{},
		CompletedReviews:  []int{},
		Deadline:          0,
	})

	runtime.Notify("PublicationRegistered", id, caller, contentHash)

	return id
}

// UpdatePublicationStatus changes status of the publication. Statuses only
// move forward. It can be invoked by the contract owner or the journal the
// publication is assigned to.
//
// It produces PublicationStatusChanged notification.
func UpdatePublicationStatus(caller interop.Hash160, id, status int) {
	ctx := storage.GetContext()

	pub := getPublication(ctx, id)
	checkOwnerOrJournal(ctx, pub, caller)

	if !publicationconst.IsValidStatus(status) || !publicationconst.CanTransition(pub.Status, status) {
		panic(publicationconst.ErrInvalidStatus)
	}

	setStatus(ctx, pub, status)
}

// AssignToJournal assigns the publication to a journal. It can be invoked by
// the contract owner or any of the authors.
//
// It produces JournalAssigned notification.
func AssignToJournal(caller interop.Hash160, id int, journal interop.Hash160) {
	ctx := storage.GetContext()

	pub := getPublication(ctx, id)
	common.CheckWitness(caller, publicationconst.ErrNotAuthorized)
	if !common.Owner(ctx).Equals(caller) && !common.HasHash160(pub.Authors, caller) {
		panic(publicationconst.ErrNotAuthorized)
	}
	if len(journal) != interop.Hash160Len {
		panic(publicationconst.ErrInvalidInput)
	}

	pub.Journal = journal
	pub.UpdatedAt = ledger.CurrentIndex()
	putPublication(ctx, pub)

	runtime.Notify("JournalAssigned", id, journal)
}

// SetPublicationDOI sets DOI of an accepted or published publication. It can be
// invoked by the contract owner or the journal.
//
// It produces DOIAssigned notification.
func SetPublicationDOI(caller interop.Hash160, id int, doi string) {
	ctx := storage.GetContext()

	pub := getPublication(ctx, id)
	checkOwnerOrJournal(ctx, pub, caller)

	if pub.Status != publicationconst.StatusAccepted && pub.Status != publicationconst.StatusPublished {
		panic(publicationconst.ErrInvalidStatus)
	}
	if len(doi) == 0 {
		panic(publicationconst.ErrInvalidInput)
	}

	pub.DOI = doi
	pub.UpdatedAt = ledger.CurrentIndex()
	putPublication(ctx, pub)

	runtime.Notify("DOIAssigned", id, doi)
}

// AssignReviewers replaces the list of reviewers assigned to the publication
// and moves it to UnderReview status. Reviewers assigned by Review contract
// stay in the list. It can be invoked by the contract owner or the journal.
//
// It produces ReviewersAssigned notification.
func AssignReviewers(caller interop.Hash160, id int, reviewers []interop.Hash160) {
	ctx := storage.GetContext()

	pub := getPublication(ctx, id)
	checkOwnerOrJournal(ctx, pub, caller)

	if !publicationconst.IsReviewable(pub.Status) {
		panic(publicationconst.ErrInvalidStatus)
	}

	tracking := getTracking(ctx, id)

	list := []interop.Hash160{}
	for i := range tracking.AssignedReviewers {
		if isAssignedByReview(ctx, id, tracking.AssignedReviewers[i]) {
			list = append(list, tracking.AssignedReviewers[i])
		}
	}
	for i := range reviewers {
		if len(reviewers[i]) != interop.Hash160Len {
			panic(publicationconst.ErrInvalidInput)
		}
		if !common.HasHash160(list, reviewers[i]) {
			list = append(list, reviewers[i])
		}
	}
	if len(list) > publicationconst.MaxReviewers {
		panic(publicationconst.ErrListOverflow)
	}

	tracking.AssignedReviewers = list
	putTracking(ctx, id, tracking)

	startReview(ctx, pub)

	runtime.Notify("ReviewersAssigned", id, list)
}

// AddReviewer appends the reviewer to the list of assigned reviewers and moves
// the publication to UnderReview status. Already listed reviewers are kept as
// is. Review deadline of the publication is the latest deadline of its
// reviewers. It can be invoked by Review contract, the contract owner or the
// journal.
//
// It produces ReviewersAssigned notification.
func AddReviewer(caller interop.Hash160, id int, reviewer interop.Hash160, deadline int) {
	ctx := storage.GetContext()

	pub := getPublication(ctx, id)
	byReview := common.IsCalledBy(getReviewContract(ctx))
	if !byReview {
		checkOwnerOrJournal(ctx, pub, caller)
	}

	if !publicationconst.IsReviewable(pub.Status) {
		panic(publicationconst.ErrInvalidStatus)
	}
	if len(reviewer) != interop.Hash160Len {
		panic(publicationconst.ErrInvalidInput)
	}

	tracking := getTracking(ctx, id)
	if !common.HasHash160(tracking.AssignedReviewers, reviewer) {
		if len(tracking.AssignedReviewers) >= publicationconst.MaxReviewers {
			panic(publicationconst.ErrListOverflow)
		}
		tracking.AssignedReviewers = append(tracking.AssignedReviewers, reviewer)
	}
	if deadline > tracking.Deadline {
		tracking.Deadline = deadline
	}
	putTracking(ctx, id, tracking)

	if byReview {
		storage.Put(ctx, reviewAssignmentKey(id, reviewer), true)
	}

	startReview(ctx, pub)

	runtime.Notify("ReviewersAssigned", id, tracking.AssignedReviewers)
}

// AddCompletedReview links submitted review to the publication. It can be
// invoked by Review contract or the contract owner.
//
// It produces ReviewCompleted notification.
func AddCompletedReview(caller interop.Hash160, id, reviewID int) {
	ctx := storage.GetContext()

	pub := getPublication(ctx, id)
	if !common.IsCalledBy(getReviewContract(ctx)) {
		checkOwner(ctx, caller)
	}

	if pub.Status != publicationconst.StatusUnderReview {
		panic(publicationconst.ErrInvalidStatus)
	}

	tracking := getTracking(ctx, id)
	if len(tracking.CompletedReviews) >= publicationconst.MaxReviews {
		panic(publicationconst.ErrListOverflow)
	}
	tracking.CompletedReviews = append(tracking.CompletedReviews, reviewID)
	putTracking(ctx, id, tracking)

	runtime.Notify("ReviewCompleted", id, reviewID)
}

// UpdatePublicationIpfsHash replaces content hash of the publication. It can
// be invoked only by the authors until the publication is published.
//
// It produces ContentHashUpdated notification.
func UpdatePublicationIpfsHash(caller interop.Hash160, id int, contentHash interop.Hash256) {
	ctx := storage.GetContext()

	pub := getPublication(ctx, id)
	common.CheckWitness(caller, publicationconst.ErrNotAuthorized)
	if !common.HasHash160(pub.Authors, caller) {
		panic(publicationconst.ErrNotAuthorized)
	}
	if pub.Status == publicationconst.StatusPublished || pub.Status == publicationconst.StatusRetracted {
		panic(publicationconst.ErrInvalidStatus)
	}
	if len(contentHash) != interop.Hash256Len {
		panic(publicationconst.ErrInvalidInput)
	}

	pub.ContentHash = contentHash
	pub.UpdatedAt = ledger.CurrentIndex()
	putPublication(ctx, pub)

	runtime.Notify("ContentHashUpdated", id, contentHash)
}

// GetPublication returns the publication.
func GetPublication(id int) Publication {
	return getPublication(storage.GetReadOnlyContext(), id)
}

// GetPublicationMetadata returns metadata of the publication.
func GetPublicationMetadata(id int) Metadata {
	ctx := storage.GetReadOnlyContext()

	data := common.GetSerialized(ctx, idKey(metadataPrefix, id))
	if data == nil {
		panic(publicationconst.ErrDoesNotExist)
	}

	return data.(Metadata)
}

// GetReviewTracking returns reviewers and completed reviews of the
// publication.
func GetReviewTracking(id int) ReviewTracking {
	return getTracking(storage.GetReadOnlyContext(), id)
}

// GetPublicationReviews returns identifiers of the reviews submitted for the
// publication.
func GetPublicationReviews(id int) []int {
	return getTracking(storage.GetReadOnlyContext(), id).CompletedReviews
}

// CheckIsAuthor returns true if the address is an author of the publication.
// It returns false for unknown publications.
func CheckIsAuthor(id int, addr interop.Hash160) bool {
	data := common.GetSerialized(storage.GetReadOnlyContext(), idKey(publicationPrefix, id))
	if data == nil {
		return false
	}

	return common.HasHash160(data.(Publication).Authors, addr)
}

// CheckIsReviewer returns true if the address is assigned as a reviewer of
// the publication. It returns false for unknown publications.
func CheckIsReviewer(id int, addr interop.Hash160) bool {
	data := common.GetSerialized(storage.GetReadOnlyContext(), idKey(trackingPrefix, id))
	if data == nil {
		return false
	}

	return common.HasHash160(data.(ReviewTracking).AssignedReviewers, addr)
}

// PublicationCount returns the number of registered publications.
func PublicationCount() int {
	return common.Counter(storage.GetReadOnlyContext(), countKey)
}

// GetOwner returns the contract owner.
func GetOwner() interop.Hash160 {
	return common.Owner(storage.GetReadOnlyContext())
}

// TransferOwnership sets the new contract owner. It can be invoked only by the
// current owner.
func TransferOwnership(newOwner interop.Hash160) bool {
	return common.TransferOwnership(storage.GetContext(), newOwner, publicationconst.ErrNotAuthorized)
}

// RenounceOwnership leaves the contract without an owner.
func RenounceOwnership() bool {
	return common.RenounceOwnership(storage.GetContext(), publicationconst.ErrNotAuthorized)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func startReview(ctx storage.Context, pub Publication) {
	if pub.Status == publicationconst.StatusSubmitted {
		setStatus(ctx, pub, publicationconst.StatusUnderReview)
	}
}

func setStatus(ctx storage.Context, pub Publication, status int) {
	prev := pub.Status
	pub.Status = status
	pub.UpdatedAt = ledger.CurrentIndex()
	putPublication(ctx, pub)

	runtime.Notify("PublicationStatusChanged", pub.ID, prev, status)
}

func getPublication(ctx storage.Context, id int) Publication {
	data := common.GetSerialized(ctx, idKey(publicationPrefix, id))
	if data == nil {
		panic(publicationconst.ErrDoesNotExist)
	}

	return data.(Publication)
}

func putPublication(ctx storage.Context, pub Publication) {
	common.SetSerialized(ctx, idKey(publicationPrefix, pub.ID), pub)
}

func getTracking(ctx storage.Context, id int) ReviewTracking {
	data := common.GetSerialized(ctx, idKey(trackingPrefix, id))
	if data == nil {
		panic(publicationconst.ErrDoesNotExist)
	}

	return data.(ReviewTracking)
}

func putTracking(ctx storage.Context, id int, tracking ReviewTracking) {
	common.SetSerialized(ctx, idKey(trackingPrefix, id), tracking)
}

func getReviewContract(ctx storage.Context) interop.Hash160 {
	h := storage.Get(ctx, reviewContractKey)
	if h == nil {
		return nil
	}

	return h.(interop.Hash160)
}

func checkOwner(ctx storage.Context, caller interop.Hash160) {
	if !common.IsOwner(ctx, caller) {
		panic(publicationconst.ErrNotAuthorized)
	}
}

func checkOwnerOrJournal(ctx storage.Context, pub Publication, caller interop.Hash160) {
	common.CheckWitness(caller, publicationconst.ErrNotAuthorized)
	if common.Owner(ctx).Equals(caller) {
		return
	}
	if len(pub.Journal) == interop.Hash160Len && pub.Journal.Equals(caller) {
		return
	}

	panic(publicationconst.ErrNotAuthorized)
}

func isAssignedByReview(ctx storage.Context, id int, reviewer interop.Hash160) bool {
	return storage.Get(ctx, reviewAssignmentKey(id, reviewer)) != nil
}

func reviewAssignmentKey(id int, reviewer interop.Hash160) []byte {
	return append(idKey(assignmentPrefix, id), reviewer...)
}

func idKey(prefix byte, id int) []byte {
	return append([]byte{prefix}, convert.ToBytes(id)...)
}
