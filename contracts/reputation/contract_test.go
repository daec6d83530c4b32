package reputation_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/peerledger/peerledger-contract/contracts/reputation/reputationconst"
	"github.com/peerledger/peerledger-contract/internal/chaintest"
	"github.com/stretchr/testify/require"
)

func newReputationInvoker(t *testing.T) *neotest.ContractInvoker {
	e := chaintest.NewExecutor(t)
	h := chaintest.DeployReputation(t, e)
	return e.CommitteeInvoker(h)
}

func TestReputation_NEP17(t *testing.T) {
	c := newReputationInvoker(t)

	c.Invoke(t, reputationconst.Symbol, "symbol")
	c.Invoke(t, reputationconst.Decimals, "decimals")
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, "PeerLedger Reputation", "name")

	acc := c.NewAccount(t)
	c.Invoke(t, 0, "balanceOf", acc.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "mint", c.CommitteeHash, acc.ScriptHash(), 5)
	c.WithSigners(acc).InvokeFail(t, reputationconst.ErrTransferFailed, "transfer",
		acc.ScriptHash(), c.CommitteeHash, 1, nil)
	c.Invoke(t, 5, "balanceOf", acc.ScriptHash())
}

func TestReputation_MintBurn(t *testing.T) {
	c := newReputationInvoker(t)

	a := c.NewAccount(t)
	b := c.NewAccount(t)

	t.Run("not authorized", func(t *testing.T) {
		c.WithSigners(a).InvokeFail(t, reputationconst.ErrNotAuthorized, "mint", a.ScriptHash(), a.ScriptHash(), 1)
	})
	t.Run("invalid amount", func(t *testing.T) {
		c.InvokeFail(t, reputationconst.ErrInvalidAmount, "mint", c.CommitteeHash, a.ScriptHash(), 0)
		c.InvokeFail(t, reputationconst.ErrInvalidAmount, "burn", c.CommitteeHash, a.ScriptHash(), -1)
	})

	h := c.Invoke(t, stackitem.Null{}, "mint", c.CommitteeHash, a.ScriptHash(), 3_000_000)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, stackitem.Null{}, aer.Events[0].Item.Value().([]stackitem.Item)[0])

	c.Invoke(t, stackitem.Null{}, "mintWithCategory", c.CommitteeHash, b.ScriptHash(), 2_500_000, "teaching")
	c.Invoke(t, 2_500_000, "getReputationByCategory", b.ScriptHash(), "teaching")

	// Amounts below one token are credited too.
	c.Invoke(t, stackitem.Null{}, "mintWithCategory", c.CommitteeHash, b.ScriptHash(), 999_999, "misc")
	c.Invoke(t, 999_999, "getReputationByCategory", b.ScriptHash(), "misc")
	c.Invoke(t, 3_499_999, "balanceOf", b.ScriptHash())

	checkSupply(t, c, a.ScriptHash(), b.ScriptHash())

	c.InvokeFail(t, reputationconst.ErrInvalidAmount, "burn", c.CommitteeHash, a.ScriptHash(), 3_000_001)
	c.Invoke(t, stackitem.Null{}, "burn", c.CommitteeHash, a.ScriptHash(), 1_000_000)
	c.Invoke(t, 2_000_000, "balanceOf", a.ScriptHash())

	checkSupply(t, c, a.ScriptHash(), b.ScriptHash())

	// Category value may go below zero.
	c.Invoke(t, stackitem.Null{}, "burnWithCategory", c.CommitteeHash, a.ScriptHash(), 2_000_000, "teaching")
	c.Invoke(t, -2_000_000, "getReputationByCategory", a.ScriptHash(), "teaching")
	c.Invoke(t, 0, "balanceOf", a.ScriptHash())

	checkSupply(t, c, a.ScriptHash(), b.ScriptHash())

	c.InvokeFail(t, reputationconst.ErrInvalidInput, "mintWithCategory", c.CommitteeHash, b.ScriptHash(), 1, "")
}

func checkSupply(t *testing.T, c *neotest.ContractInvoker, accounts ...util.Uint160) {
	var sum int64
	for i := range accounts {
		sum += chaintest.CallInt(t, c, "balanceOf", accounts[i])
	}
	require.Equal(t, sum, chaintest.CallInt(t, c, "totalSupply"))
}

func TestReputation_Rewards(t *testing.T) {
	c := newReputationInvoker(t)

	reviewer := c.NewAccount(t)
	author := c.NewAccount(t)

	c.InvokeFail(t, reputationconst.ErrInvalidInput, "rewardQualityReview", c.CommitteeHash, reviewer.ScriptHash(), 6)
	c.InvokeFail(t, reputationconst.ErrInvalidInput, "rewardQualityReview", c.CommitteeHash, reviewer.ScriptHash(), -1)

	c.Invoke(t, stackitem.Null{}, "rewardQualityReview", c.CommitteeHash, reviewer.ScriptHash(), 0)
	c.Invoke(t, 0, "balanceOf", reviewer.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "rewardQualityReview", c.CommitteeHash, reviewer.ScriptHash(), 5)
	c.Invoke(t, 5_000_000, "balanceOf", reviewer.ScriptHash())
	c.Invoke(t, 5, "getReputationByCategory", reviewer.ScriptHash(), reputationconst.CategoryReviewQuality)
	c.Invoke(t, 0, "getReputationByCategory", reviewer.ScriptHash(), reputationconst.CategoryPublicationAccepted)

	c.Invoke(t, stackitem.Null{}, "rewardPublicationAcceptance", c.CommitteeHash, author.ScriptHash())
	c.Invoke(t, 10_000_000, "balanceOf", author.ScriptHash())
	c.Invoke(t, 10, "getReputationByCategory", author.ScriptHash(), reputationconst.CategoryPublicationAccepted)

	c.Invoke(t, 15_000_000, "totalSupply")
}

func TestReputation_TokenManager(t *testing.T) {
	c := newReputationInvoker(t)

	manager := c.NewAccount(t)
	user := c.NewAccount(t)
	cm := c.WithSigners(manager)

	cm.InvokeFail(t, reputationconst.ErrNotAuthorized, "rewardQualityReview", manager.ScriptHash(), user.ScriptHash(), 3)
	cm.InvokeFail(t, reputationconst.ErrNotAuthorized, "setTokenManager", manager.ScriptHash(), manager.ScriptHash(), true)

	c.Invoke(t, stackitem.Null{}, "setTokenManager", c.CommitteeHash, manager.ScriptHash(), true)
	c.Invoke(t, true, "isTokenManager", manager.ScriptHash())

	cm.Invoke(t, stackitem.Null{}, "rewardQualityReview", manager.ScriptHash(), user.ScriptHash(), 3)
	c.Invoke(t, 3_000_000, "balanceOf", user.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "setTokenManager", c.CommitteeHash, manager.ScriptHash(), false)
	c.Invoke(t, false, "isTokenManager", manager.ScriptHash())
	cm.InvokeFail(t, reputationconst.ErrNotAuthorized, "burn", manager.ScriptHash(), user.ScriptHash(), 1)
}
