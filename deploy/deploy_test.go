package deploy

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/peerledger/peerledger-contract/contracts"
	"github.com/peerledger/peerledger-contract/contracts/governance/governanceconst"
	"github.com/peerledger/peerledger-contract/internal/chaintest"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestPeerLedgerTransactionModifier(t *testing.T) {
	t.Run("invalid invocation result state", func(t *testing.T) {
		var res result.Invoke
		res.State = "FAULT" // any non-HALT

		err := peerLedgerTransactionModifier(func() uint32 { return 0 })(&res, new(transaction.Transaction))
		require.Error(t, err)
	})

	var validRes result.Invoke
	validRes.State = "HALT"

	for _, tc := range []struct {
		curHeight     uint32
		expectedNonce uint32
		expectedVUB   uint32
	}{
		{curHeight: 0, expectedNonce: 0, expectedVUB: 100},
		{curHeight: 1, expectedNonce: 0, expectedVUB: 100},
		{curHeight: 99, expectedNonce: 0, expectedVUB: 100},
		{curHeight: 100, expectedNonce: 100, expectedVUB: 200},
		{curHeight: 199, expectedNonce: 100, expectedVUB: 200},
		{curHeight: 200, expectedNonce: 200, expectedVUB: 300},
		{curHeight: math.MaxUint32 - 50, expectedNonce: 100 * (math.MaxUint32 / 100), expectedVUB: math.MaxUint32},
	} {
		m := peerLedgerTransactionModifier(func() uint32 { return tc.curHeight })

		var tx transaction.Transaction

		err := m(&validRes, &tx)
		require.NoError(t, err, tc)
		require.EqualValues(t, tc.expectedNonce, tx.Nonce, tc)
		require.EqualValues(t, tc.expectedVUB, tx.ValidUntilBlock, tc)
	}
}

func TestGovernanceConfiguration(t *testing.T) {
	require.Equal(t, DefaultGovernanceConfiguration(), GovernanceConfiguration{}.withDefaults())

	c := GovernanceConfiguration{VotingPeriod: 20}.withDefaults()
	require.EqualValues(t, 20, c.VotingPeriod)
	require.EqualValues(t, governanceconst.DefaultPassThreshold, c.PassThreshold)
	require.NoError(t, c.validate())

	c.PassThreshold = 101
	require.Error(t, c.validate())

	c.PassThreshold = 51
	c.MinVotingBalance = math.MaxUint64
	require.Error(t, c.validate())
}

// neotestChain deploys contracts to the test chain on behalf of the
// committee.
type neotestChain struct {
	t *testing.T
	e *neotest.Executor

	deployed []string
	invoked  []string
}

func (c *neotestChain) sender() util.Uint160 {
	return c.e.CommitteeHash
}

func (c *neotestChain) isDeployed(addr util.Uint160) (bool, error) {
	return c.e.Chain.GetContractState(addr) != nil, nil
}

func (c *neotestChain) deploy(_ context.Context, prm CommonDeployPrm, data []any) error {
	c.e.DeployContract(c.t, &neotest.Contract{
		Hash:     state.CreateContractHash(c.e.CommitteeHash, prm.NEF.Checksum, prm.Manifest.Name),
		NEF:      &prm.NEF,
		Manifest: &prm.Manifest,
	}, data)
	c.deployed = append(c.deployed, prm.Manifest.Name)
	return nil
}

func (c *neotestChain) invoke(_ context.Context, contract util.Uint160, method string, args ...any) error {
	c.e.CommitteeInvoker(contract).Invoke(c.t, stackitem.Null{}, method, args...)
	c.invoked = append(c.invoked, method)
	return nil
}

type failingChain struct {
	neotestChain
	err error
}

func (c *failingChain) isDeployed(util.Uint160) (bool, error) {
	return false, c.err
}

func testPrm(t *testing.T) Prm {
	cs, err := contracts.CompileAll(filepath.Join(chaintest.RootPath(), "contracts"))
	require.NoError(t, err)
	require.Len(t, cs, 5)

	prm := Prm{Logger: zaptest.NewLogger(t)}
	for i, p := range []*CommonDeployPrm{
		&prm.CredentialContract,
		&prm.ReputationContract,
		&prm.PublicationContract,
		&prm.ReviewContract,
		&prm.GovernanceContract.Common,
	} {
		p.NEF = cs[i].NEF
		p.Manifest = cs[i].Manifest
	}

	return prm
}

func TestDeploy(t *testing.T) {
	e := chaintest.NewExecutor(t)
	c := &neotestChain{t: t, e: e}

	manager := util.Uint160{1, 2, 3}
	prm := testPrm(t)
	prm.TokenManager = manager
	prm.GovernanceContract.Config = GovernanceConfiguration{VotingPeriod: 42}

	addrs, err := deploy(context.Background(), prm, c)
	require.NoError(t, err)
	require.Equal(t, []string{
		"PeerLedger Credential",
		"PeerLedger Reputation",
		"PeerLedger Publication",
		"PeerLedger Review",
		"PeerLedger Governance",
	}, c.deployed)
	require.Equal(t, []string{"setReviewContract", "setTokenManager"}, c.invoked)

	for _, addr := range []util.Uint160{addrs.Credential, addrs.Reputation, addrs.Publication, addrs.Review, addrs.Governance} {
		require.NotNil(t, e.Chain.GetContractState(addr))
	}

	require.Equal(t, addrs.Review, chaintest.CallHash160(t, e.CommitteeInvoker(addrs.Publication), "getReviewContract"))
	e.CommitteeInvoker(addrs.Reputation).Invoke(t, true, "isTokenManager", manager)
	e.CommitteeInvoker(addrs.Governance).Invoke(t, 42, "config", governanceconst.VotingPeriodKey)
	e.CommitteeInvoker(addrs.Governance).Invoke(t, governanceconst.DefaultPassThreshold, "config", governanceconst.PassThresholdKey)
	require.Equal(t, e.CommitteeHash, chaintest.CallHash160(t, e.CommitteeInvoker(addrs.Credential), "getOwner"))

	t.Run("restart", func(t *testing.T) {
		c.deployed, c.invoked = nil, nil
		prm.TokenManager = util.Uint160{}

		again, err := deploy(context.Background(), prm, c)
		require.NoError(t, err)
		require.Equal(t, addrs, again)
		require.Empty(t, c.deployed)
		require.Equal(t, []string{"setReviewContract"}, c.invoked)
	})
}

func TestDeployFailures(t *testing.T) {
	e := chaintest.NewExecutor(t)

	t.Run("invalid governance config", func(t *testing.T) {
		prm := testPrm(t)
		prm.GovernanceContract.Config.PassThreshold = 200

		c := &neotestChain{t: t, e: e}
		_, err := deploy(context.Background(), prm, c)
		require.Error(t, err)
		require.Empty(t, c.deployed)
	})

	t.Run("chain failure", func(t *testing.T) {
		c := &failingChain{neotestChain: neotestChain{t: t, e: e}, err: errors.New("connection lost")}
		_, err := deploy(context.Background(), testPrm(t), c)
		require.ErrorIs(t, err, c.err)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := &neotestChain{t: t, e: e}
		_, err := deploy(ctx, testPrm(t), c)
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, c.deployed)
	})

	t.Run("missing account", func(t *testing.T) {
		_, err := Deploy(context.Background(), testPrm(t))
		require.Error(t, err)
	})
}
