package main

import (
	"bytes"
	"context"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/peerledger/peerledger-contract/contracts"
	"github.com/peerledger/peerledger-contract/internal/chaintest"
	"github.com/peerledger/peerledger-contract/internal/ipfs"
	"github.com/peerledger/peerledger-contract/rpc/fault"
	"github.com/peerledger/peerledger-contract/rpc/governance"
	"github.com/peerledger/peerledger-contract/rpc/publication"
	"github.com/peerledger/peerledger-contract/rpc/review"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"
)

func testApp(t *testing.T) (*cli.App, *bytes.Buffer) {
	var out bytes.Buffer

	app := newApp(context.Background())
	app.Writer = &out
	app.ErrWriter = &out

	return app, &out
}

func TestCommandTree(t *testing.T) {
	app, _ := testApp(t)

	groups := make(map[string][]string)
	for _, cmd := range app.Commands {
		var sub []string
		for _, s := range cmd.Subcommands {
			sub = append(sub, s.Name)
		}
		groups[cmd.Name] = sub
	}

	require.Contains(t, groups, "deploy")
	require.Contains(t, groups, "dump")
	require.Subset(t, groups["credential"], []string{"submit", "verify", "revoke", "status", "add-verifier"})
	require.Subset(t, groups["publication"], []string{"register", "status", "show", "set-doi", "update-hash"})
	require.Subset(t, groups["review"], []string{"assign", "submit", "reveal", "show"})
	require.Subset(t, groups["reputation"], []string{"balance", "category", "reward-review", "reward-publication"})
	require.Subset(t, groups["governance"], []string{"propose", "vote", "finalize", "execute", "show", "list"})
}

func TestArgumentErrors(t *testing.T) {
	missingConfig := filepath.Join(t.TempDir(), "missing.yml")
	acc := address.Uint160ToString(util.Uint160{1})

	for _, tc := range []struct {
		args []string
		err  string
	}{
		{[]string{"credential", "status"}, "missing --user"},
		{[]string{"credential", "status", "--user", "invalid"}, "--user"},
		{[]string{"credential", "submit"}, "missing --institution"},
		{[]string{"credential", "submit", "--institution", "MIT", "--proof", "xyz"}, "--proof"},
		{[]string{"credential", "verify", "--user", acc, "--zk-proof", "zz"}, "--zk-proof"},
		{[]string{"publication", "register", "--title", "T"}, "missing --content"},
		{[]string{"publication", "register", "--title", "T", "--content", "Qm1"}, "--content"},
		{[]string{"publication", "status", "--id", "1", "--status", "draft"}, "--status"},
		{[]string{"publication", "show"}, "missing --id"},
		{[]string{"review", "assign", "--publication", "1", "--reviewer", acc}, "missing --deadline"},
		{[]string{"review", "submit", "--publication", "1", "--recommendation", "maybe"}, "--recommendation"},
		{[]string{"review", "submit", "--publication", "1", "--recommendation", "accept", "--confidence", "3"}, "missing --technical"},
		{[]string{"reputation", "category", "--account", acc}, "missing --category"},
		{[]string{"reputation", "mint", "--to", acc, "--amount", "-1"}, "--amount"},
		{[]string{"governance", "propose", "--title", "T", "--type", "unknown"}, "--type"},
		{[]string{"governance", "propose", "--title", "T", "--type", "parameter"}, "--key"},
		{[]string{"governance", "propose", "--title", "T", "--type", "contract"}, "missing --contract"},
		{[]string{"governance", "vote"}, "missing --id"},
		{[]string{"dump"}, "missing --label"},
		{[]string{"governance", "list"}, "open config file"},
		{[]string{"deploy"}, "open config file"},
	} {
		app, _ := testApp(t)

		err := app.Run(append([]string{"peerledger", "--config", missingConfig}, tc.args...))
		require.Error(t, err, tc.args)
		require.Contains(t, err.Error(), tc.err, tc.args)
	}
}

func TestContractError(t *testing.T) {
	err := contractError(errWithMessage(`at instruction 42 (THROW): unhandled exception: "1003 publication does not exist"`))

	var fe *fault.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 1003, fe.Code)
	require.Equal(t, fault.ComponentPublication, fe.Component())

	plain := errWithMessage("connection refused")
	require.Equal(t, plain, contractError(plain))
}

type errWithMessage string

func (e errWithMessage) Error() string { return string(e) }

func TestSaltedReviewerHash(t *testing.T) {
	reviewer := util.Uint160{1, 2, 3}
	salt := uuid.New()

	h := saltedReviewerHash(reviewer, salt)
	require.Equal(t, h, saltedReviewerHash(reviewer, salt))
	require.NotEqual(t, h, saltedReviewerHash(reviewer, uuid.New()))
	require.NotEqual(t, h, saltedReviewerHash(util.Uint160{3, 2, 1}, salt))
}

func TestViews(t *testing.T) {
	author := util.Uint160{7}
	content := util.Uint256{1, 2, 3}

	v := newPublicationView(&publication.PublicationPublication{
		ID:          big.NewInt(3),
		Title:       "Title",
		Authors:     []util.Uint160{author},
		ContentHash: content,
		Status:      big.NewInt(1),
		SubmittedAt: big.NewInt(10),
		UpdatedAt:   big.NewInt(12),
	}, &publication.PublicationMetadata{Keywords: []string{"neo"}, Field: "cs"},
		&publication.PublicationReviewTracking{
			AssignedReviewers: []util.Uint160{{8}},
			CompletedReviews:  []*big.Int{big.NewInt(1), big.NewInt(2)},
			Deadline:          big.NewInt(100),
		})

	require.EqualValues(t, 3, v.ID)
	require.Equal(t, "under-review", v.Status)
	require.Equal(t, []string{address.Uint160ToString(author)}, v.Authors)
	require.Equal(t, ipfs.FormatCIDv0(content), v.CID)
	require.Empty(t, v.Journal)
	require.Equal(t, []uint64{1, 2}, v.CompletedReviews)

	data, err := yaml.Marshal(v)
	require.NoError(t, err)
	require.Contains(t, string(data), "status: under-review")
	require.NotContains(t, string(data), "journal")

	rv := newReviewView(&review.ReviewReview{
		ID:             big.NewInt(1),
		PublicationID:  big.NewInt(3),
		Recommendation: big.NewInt(2),
		Status:         big.NewInt(1),
		Confidence:     big.NewInt(4),
	})
	require.Empty(t, rv.Reviewer)
	require.Equal(t, "major-revision", rv.Recommendation)
	require.Equal(t, "submitted", rv.Status)
	require.Empty(t, rv.MetadataHash)

	pv := newProposalView(&governance.GovernanceProposal{
		ID:         big.NewInt(1),
		Type:       big.NewInt(0),
		Status:     big.NewInt(3),
		YesVotes:   big.NewInt(1_500_000),
		NoVotes:    big.NewInt(0),
		ParamKey:   "VotingPeriod",
		ParamValue: big.NewInt(20),
		Payload:    []byte{0xca, 0xfe},
	})
	require.Equal(t, "parameter", pv.Type)
	require.Equal(t, "executed", pv.Status)
	require.Equal(t, "1.5", pv.YesVotes)
	require.Equal(t, "0", pv.NoVotes)
	require.Equal(t, "20", pv.ParamValue)
	require.Equal(t, "cafe", pv.Payload)
	require.Empty(t, pv.Contract)
}

func TestDeployPrm(t *testing.T) {
	cs, err := contracts.CompileAll(filepath.Join(chaintest.RootPath(), "contracts"))
	require.NoError(t, err)

	cfg, err := loadConfig(writeConfig(t, `
rpc:
  endpoint: http://localhost:30333
governance:
  voting_period: 30
token_manager: `+address.Uint160ToString(util.Uint160{5})+`
`))
	require.NoError(t, err)

	prm := deployPrm(&env{log: zaptest.NewLogger(t), cfg: cfg}, cs)
	require.Equal(t, "PeerLedger Credential", prm.CredentialContract.Manifest.Name)
	require.Equal(t, "PeerLedger Reputation", prm.ReputationContract.Manifest.Name)
	require.Equal(t, "PeerLedger Publication", prm.PublicationContract.Manifest.Name)
	require.Equal(t, "PeerLedger Review", prm.ReviewContract.Manifest.Name)
	require.Equal(t, "PeerLedger Governance", prm.GovernanceContract.Common.Manifest.Name)
	require.EqualValues(t, 30, prm.GovernanceContract.Config.VotingPeriod)
	require.Equal(t, util.Uint160{5}, prm.TokenManager)
}
