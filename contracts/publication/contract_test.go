package publication_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/peerledger/peerledger-contract/contracts/publication/publicationconst"
	"github.com/peerledger/peerledger-contract/internal/chaintest"
	"github.com/stretchr/testify/require"
)

// Publication structure field indexes.
const (
	fieldStatus  = 5
	fieldJournal = 8
	fieldDOI     = 9
)

func newPublicationInvoker(t *testing.T) *neotest.ContractInvoker {
	e := chaintest.NewExecutor(t)
	h := chaintest.DeployPublication(t, e)
	return e.CommitteeInvoker(h)
}

func register(t *testing.T, c *neotest.ContractInvoker, author neotest.Signer, coauthors ...util.Uint160) int64 {
	authors := []any{author.ScriptHash()}
	for i := range coauthors {
		authors = append(authors, coauthors[i])
	}

	var id int64
	c.WithSigners(author).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {
		require.Len(t, stack, 1)
		id = chaintest.Int(t, stack[0])
	}, "registerPublication", author.ScriptHash(),
		"Title", "Abstract", authors, chaintest.Hash256(1), []any{"blockchain"}, "cs", "")
	return id
}

func status(t *testing.T, c *neotest.ContractInvoker, id int64) int64 {
	return chaintest.Int(t, chaintest.Fields(t, c, "getPublication", id)[fieldStatus])
}

func TestPublication_Register(t *testing.T) {
	c := newPublicationInvoker(t)

	author := c.NewAccount(t)
	ca := c.WithSigners(author)
	stranger := c.NewAccount(t)

	t.Run("invalid input", func(t *testing.T) {
		ca.InvokeFail(t, publicationconst.ErrInvalidInput, "registerPublication", author.ScriptHash(),
			"", "Abstract", []any{author.ScriptHash()}, chaintest.Hash256(1), []any{}, "cs", "")
		ca.InvokeFail(t, publicationconst.ErrInvalidInput, "registerPublication", author.ScriptHash(),
			"Title", "Abstract", []any{}, chaintest.Hash256(1), []any{}, "cs", "")
		ca.InvokeFail(t, publicationconst.ErrInvalidInput, "registerPublication", author.ScriptHash(),
			"Title", "Abstract", []any{author.ScriptHash()}, []byte{1}, []any{}, "cs", "")
		ca.InvokeFail(t, publicationconst.ErrInvalidInput, "registerPublication", author.ScriptHash(),
			"Title", "Abstract", []any{author.ScriptHash(), author.ScriptHash()}, chaintest.Hash256(1), []any{}, "cs", "")

		tooMany := make([]any, publicationconst.MaxAuthors+1)
		for i := range tooMany {
			tooMany[i] = util.Uint160{byte(i + 1)}
		}
		ca.InvokeFail(t, publicationconst.ErrInvalidInput, "registerPublication", author.ScriptHash(),
			"Title", "Abstract", tooMany, chaintest.Hash256(1), []any{}, "cs", "")
	})

	t.Run("submitter is not an author", func(t *testing.T) {
		ca.InvokeFail(t, publicationconst.ErrNotAuthorized, "registerPublication", author.ScriptHash(),
			"Title", "Abstract", []any{stranger.ScriptHash()}, chaintest.Hash256(1), []any{}, "cs", "")
	})

	c.Invoke(t, 0, "publicationCount")
	id := register(t, c, author, stranger.ScriptHash())
	require.EqualValues(t, 1, id)
	require.EqualValues(t, 2, register(t, c, author))
	c.Invoke(t, 2, "publicationCount")

	fields := chaintest.Fields(t, c, "getPublication", id)
	require.EqualValues(t, id, chaintest.Int(t, fields[0]))
	require.Equal(t, "Title", string(chaintest.Bytes(t, fields[1])))
	require.Len(t, fields[3].Value().([]stackitem.Item), 2)
	require.Equal(t, chaintest.Hash256(1), chaintest.Bytes(t, fields[4]))
	require.EqualValues(t, publicationconst.StatusSubmitted, chaintest.Int(t, fields[fieldStatus]))
	require.Equal(t, make([]byte, util.Uint160Size), chaintest.Bytes(t, fields[fieldJournal]))

	meta := chaintest.Fields(t, c, "getPublicationMetadata", id)
	require.Len(t, meta[0].Value().([]stackitem.Item), 1)
	require.Equal(t, "cs", string(chaintest.Bytes(t, meta[1])))

	c.Invoke(t, true, "checkIsAuthor", id, stranger.ScriptHash())
	c.Invoke(t, false, "checkIsAuthor", id, c.CommitteeHash)
	c.Invoke(t, false, "checkIsAuthor", 42, author.ScriptHash())
	c.InvokeFail(t, publicationconst.ErrDoesNotExist, "getPublication", 42)
	c.InvokeFail(t, publicationconst.ErrDoesNotExist, "getPublicationMetadata", 42)
}

func TestPublication_StatusTransitions(t *testing.T) {
	c := newPublicationInvoker(t)

	author := c.NewAccount(t)
	id := register(t, c, author)

	c.WithSigners(author).InvokeFail(t, publicationconst.ErrNotAuthorized, "updatePublicationStatus",
		author.ScriptHash(), id, publicationconst.StatusUnderReview)
	c.InvokeFail(t, publicationconst.ErrInvalidStatus, "updatePublicationStatus",
		c.CommitteeHash, id, 42)
	c.InvokeFail(t, publicationconst.ErrInvalidStatus, "updatePublicationStatus",
		c.CommitteeHash, id, publicationconst.StatusPublished)

	path := []int{
		publicationconst.StatusUnderReview,
		publicationconst.StatusAccepted,
		publicationconst.StatusPublished,
		publicationconst.StatusRetracted,
	}
	for _, s := range path {
		c.Invoke(t, stackitem.Null{}, "updatePublicationStatus", c.CommitteeHash, id, s)
		require.EqualValues(t, s, status(t, c, id))
	}

	// Retracted is final.
	for s := publicationconst.StatusSubmitted; s <= publicationconst.StatusRetracted; s++ {
		c.InvokeFail(t, publicationconst.ErrInvalidStatus, "updatePublicationStatus", c.CommitteeHash, id, s)
	}

	t.Run("rejection is final", func(t *testing.T) {
		id := register(t, c, author)
		c.Invoke(t, stackitem.Null{}, "updatePublicationStatus", c.CommitteeHash, id, publicationconst.StatusRejected)
		c.InvokeFail(t, publicationconst.ErrInvalidStatus, "updatePublicationStatus",
			c.CommitteeHash, id, publicationconst.StatusUnderReview)
	})
}

func TestPublication_Journal(t *testing.T) {
	c := newPublicationInvoker(t)

	author := c.NewAccount(t)
	journal := c.NewAccount(t)
	stranger := c.NewAccount(t)
	cj := c.WithSigners(journal)
	id := register(t, c, author)

	c.WithSigners(stranger).InvokeFail(t, publicationconst.ErrNotAuthorized, "assignToJournal",
		stranger.ScriptHash(), id, journal.ScriptHash())
	cj.InvokeFail(t, publicationconst.ErrNotAuthorized, "updatePublicationStatus",
		journal.ScriptHash(), id, publicationconst.StatusUnderReview)

	c.WithSigners(author).Invoke(t, stackitem.Null{}, "assignToJournal", author.ScriptHash(), id, journal.ScriptHash())
	require.Equal(t, journal.ScriptHash().BytesBE(),
		chaintest.Bytes(t, chaintest.Fields(t, c, "getPublication", id)[fieldJournal]))

	cj.InvokeFail(t, publicationconst.ErrInvalidStatus, "setPublicationDOI", journal.ScriptHash(), id, "10.1000/182")

	cj.Invoke(t, stackitem.Null{}, "updatePublicationStatus", journal.ScriptHash(), id, publicationconst.StatusUnderReview)
	cj.Invoke(t, stackitem.Null{}, "updatePublicationStatus", journal.ScriptHash(), id, publicationconst.StatusAccepted)

	c.WithSigners(author).InvokeFail(t, publicationconst.ErrNotAuthorized, "setPublicationDOI",
		author.ScriptHash(), id, "10.1000/182")
	cj.InvokeFail(t, publicationconst.ErrInvalidInput, "setPublicationDOI", journal.ScriptHash(), id, "")
	cj.Invoke(t, stackitem.Null{}, "setPublicationDOI", journal.ScriptHash(), id, "10.1000/182")
	require.Equal(t, "10.1000/182",
		string(chaintest.Bytes(t, chaintest.Fields(t, c, "getPublication", id)[fieldDOI])))
}

func TestPublication_Reviewers(t *testing.T) {
	c := newPublicationInvoker(t)

	author := c.NewAccount(t)
	reviewer := c.NewAccount(t)
	id := register(t, c, author)

	c.WithSigners(author).InvokeFail(t, publicationconst.ErrNotAuthorized, "assignReviewers",
		author.ScriptHash(), id, []any{reviewer.ScriptHash()})

	tooMany := make([]any, publicationconst.MaxReviewers+1)
	for i := range tooMany {
		tooMany[i] = util.Uint160{byte(i + 1)}
	}
	c.InvokeFail(t, publicationconst.ErrListOverflow, "assignReviewers", c.CommitteeHash, id, tooMany)

	c.Invoke(t, stackitem.Null{}, "assignReviewers", c.CommitteeHash, id, []any{reviewer.ScriptHash()})
	require.EqualValues(t, publicationconst.StatusUnderReview, status(t, c, id))
	c.Invoke(t, true, "checkIsReviewer", id, reviewer.ScriptHash())
	c.Invoke(t, false, "checkIsReviewer", id, author.ScriptHash())
	c.Invoke(t, false, "checkIsReviewer", 42, reviewer.ScriptHash())

	// Listed reviewer is kept once, deadline is updated.
	c.Invoke(t, stackitem.Null{}, "addReviewer", c.CommitteeHash, id, reviewer.ScriptHash(), 100)
	tracking := chaintest.Fields(t, c, "getReviewTracking", id)
	require.Len(t, tracking[0].Value().([]stackitem.Item), 1)
	require.EqualValues(t, 100, chaintest.Int(t, tracking[2]))

	for i := 1; i < publicationconst.MaxReviewers; i++ {
		c.Invoke(t, stackitem.Null{}, "addReviewer", c.CommitteeHash, id, util.Uint160{byte(i)}, 100+i)
	}
	c.InvokeFail(t, publicationconst.ErrListOverflow, "addReviewer", c.CommitteeHash, id, util.Uint160{0xff}, 100)

	tracking = chaintest.Fields(t, c, "getReviewTracking", id)
	require.Len(t, tracking[0].Value().([]stackitem.Item), publicationconst.MaxReviewers)
	require.EqualValues(t, 100+publicationconst.MaxReviewers-1, chaintest.Int(t, tracking[2]))

	c.Invoke(t, stackitem.Null{}, "updatePublicationStatus", c.CommitteeHash, id, publicationconst.StatusAccepted)
	c.InvokeFail(t, publicationconst.ErrInvalidStatus, "assignReviewers", c.CommitteeHash, id, []any{})
}

func TestPublication_CompletedReviews(t *testing.T) {
	c := newPublicationInvoker(t)

	author := c.NewAccount(t)
	id := register(t, c, author)

	c.InvokeFail(t, publicationconst.ErrInvalidStatus, "addCompletedReview", c.CommitteeHash, id, 1)

	c.Invoke(t, stackitem.Null{}, "assignReviewers", c.CommitteeHash, id, []any{})
	c.WithSigners(author).InvokeFail(t, publicationconst.ErrNotAuthorized, "addCompletedReview",
		author.ScriptHash(), id, 1)

	for i := 1; i <= publicationconst.MaxReviews; i++ {
		c.Invoke(t, stackitem.Null{}, "addCompletedReview", c.CommitteeHash, id, i)
	}
	c.InvokeFail(t, publicationconst.ErrListOverflow, "addCompletedReview", c.CommitteeHash, id, 11)

	reviews := chaintest.Call(t, c, "getPublicationReviews", id).Value().([]stackitem.Item)
	require.Len(t, reviews, publicationconst.MaxReviews)
	for i := range reviews {
		require.EqualValues(t, i+1, chaintest.Int(t, reviews[i]))
	}
}

func TestPublication_ForeignContract(t *testing.T) {
	c := newPublicationInvoker(t)

	relay := chaintest.Compile(t, c.Executor, chaintest.RelayPath)
	c.DeployContract(t, relay, nil)
	cr := c.CommitteeInvoker(relay.Hash)

	author := c.NewAccount(t)
	id := register(t, c, author)
	c.Invoke(t, stackitem.Null{}, "assignReviewers", c.CommitteeHash, id, []any{})

	cr.InvokeFail(t, publicationconst.ErrNotAuthorized, "addCompletedReview", c.Hash, id, 1)
	cr.InvokeFail(t, publicationconst.ErrNotAuthorized, "addReviewer", c.Hash, id, author.ScriptHash(), 100)

	// Registered Review contract is trusted.
	c.Invoke(t, stackitem.Null{}, "setReviewContract", c.CommitteeHash, relay.Hash)
	cr.Invoke(t, stackitem.Null{}, "addCompletedReview", c.Hash, id, 1)
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{stackitem.Make(1)}), "getPublicationReviews", id)

	call := chaintest.Fields(t, cr, "get")
	require.Equal(t, "addCompletedReview", string(chaintest.Bytes(t, call[1])))
}

func TestPublication_ReviewContractReviewers(t *testing.T) {
	c := newPublicationInvoker(t)

	relay := chaintest.Compile(t, c.Executor, chaintest.RelayPath)
	c.DeployContract(t, relay, nil)
	cr := c.CommitteeInvoker(relay.Hash)
	c.Invoke(t, stackitem.Null{}, "setReviewContract", c.CommitteeHash, relay.Hash)

	author := c.NewAccount(t)
	id := register(t, c, author)

	reviewers := func() []util.Uint160 {
		items := chaintest.Fields(t, c, "getReviewTracking", id)[0].Value().([]stackitem.Item)
		res := make([]util.Uint160, len(items))
		for i := range items {
			var err error
			res[i], err = util.Uint160DecodeBytesBE(chaintest.Bytes(t, items[i]))
			require.NoError(t, err)
		}
		return res
	}

	listed := util.Uint160{1}
	assigned := util.Uint160{2}
	dropped := util.Uint160{3}

	t.Run("listed reviewer gets assignment", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "assignReviewers", c.CommitteeHash, id, []any{listed})
		cr.Invoke(t, stackitem.Null{}, "addReviewer", c.Hash, id, listed, 100)
		require.Equal(t, []util.Uint160{listed}, reviewers())
		c.Invoke(t, true, "checkIsReviewer", id, listed)
	})

	t.Run("assigned reviewer survives bulk replacement", func(t *testing.T) {
		cr.Invoke(t, stackitem.Null{}, "addReviewer", c.Hash, id, assigned, 100)
		c.Invoke(t, stackitem.Null{}, "assignReviewers", c.CommitteeHash, id, []any{dropped})
		require.Equal(t, []util.Uint160{listed, assigned, dropped}, reviewers())

		c.Invoke(t, stackitem.Null{}, "assignReviewers", c.CommitteeHash, id, []any{assigned})
		require.Equal(t, []util.Uint160{listed, assigned}, reviewers())
		c.Invoke(t, false, "checkIsReviewer", id, dropped)
		c.Invoke(t, true, "checkIsReviewer", id, assigned)
	})

	t.Run("overflow counts assigned reviewers", func(t *testing.T) {
		bulk := make([]any, publicationconst.MaxReviewers-1)
		for i := range bulk {
			bulk[i] = util.Uint160{0xf0, byte(i)}
		}
		c.InvokeFail(t, publicationconst.ErrListOverflow, "assignReviewers", c.CommitteeHash, id, bulk)
		c.Invoke(t, stackitem.Null{}, "assignReviewers", c.CommitteeHash, id, bulk[:publicationconst.MaxReviewers-2])
		require.Len(t, reviewers(), publicationconst.MaxReviewers)
	})
}

func TestPublication_ContentHash(t *testing.T) {
	c := newPublicationInvoker(t)

	author := c.NewAccount(t)
	ca := c.WithSigners(author)
	id := register(t, c, author)

	c.InvokeFail(t, publicationconst.ErrNotAuthorized, "updatePublicationIpfsHash",
		c.CommitteeHash, id, chaintest.Hash256(2))
	ca.InvokeFail(t, publicationconst.ErrInvalidInput, "updatePublicationIpfsHash",
		author.ScriptHash(), id, []byte{2})

	ca.Invoke(t, stackitem.Null{}, "updatePublicationIpfsHash", author.ScriptHash(), id, chaintest.Hash256(2))
	require.Equal(t, chaintest.Hash256(2), chaintest.Bytes(t, chaintest.Fields(t, c, "getPublication", id)[4]))

	for _, s := range []int{
		publicationconst.StatusUnderReview,
		publicationconst.StatusAccepted,
		publicationconst.StatusPublished,
	} {
		c.Invoke(t, stackitem.Null{}, "updatePublicationStatus", c.CommitteeHash, id, s)
	}
	ca.InvokeFail(t, publicationconst.ErrInvalidStatus, "updatePublicationIpfsHash",
		author.ScriptHash(), id, chaintest.Hash256(3))
}
