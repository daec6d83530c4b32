/*
Package chaintest provides helpers to deploy PeerLedger contracts to a test
chain and to invoke them in tests.
*/
package chaintest

import (
	"math/big"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/peerledger/peerledger-contract/contracts"
	"github.com/stretchr/testify/require"
)

// Contract directories relative to the repository root.
const (
	CredentialPath  = "contracts/credential"
	ReputationPath  = "contracts/reputation"
	PublicationPath = "contracts/publication"
	ReviewPath      = "contracts/review"
	GovernancePath  = "contracts/governance"
	RelayPath       = "internal/testcontracts/relay"
)

// Contracts groups hashes of deployed PeerLedger contracts.
type Contracts struct {
	Credential  util.Uint160
	Reputation  util.Uint160
	Publication util.Uint160
	Review      util.Uint160
	Governance  util.Uint160
}

// GovernanceConfig is a governance configuration passed on deploy.
type GovernanceConfig struct {
	MinProposalBalance int64
	MinVotingBalance   int64
	VotingPeriod       int64
	PassThreshold      int64
}

// DefaultGovernanceConfig returns configuration that Governance contract uses
// when nothing is passed on deploy.
func DefaultGovernanceConfig() GovernanceConfig {
	return GovernanceConfig{
		MinProposalBalance: 100_000_000,
		MinVotingBalance:   1_000_000,
		VotingPeriod:       10,
		PassThreshold:      51,
	}
}

// NewExecutor creates a new single-node test chain.
func NewExecutor(t testing.TB) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// RootPath returns absolute path of the repository root.
func RootPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

var (
	compiledMtx sync.Mutex
	compiled    = map[string]contracts.Contract{}
)

// Compile compiles the contract from the directory relative to the
// repository root. Contract hash is calculated for the committee sender.
// Compiled contracts are cached, so every directory is compiled once.
func Compile(t testing.TB, e *neotest.Executor, dir string) *neotest.Contract {
	compiledMtx.Lock()
	defer compiledMtx.Unlock()

	c, ok := compiled[dir]
	if !ok {
		var err error
		c, err = contracts.Compile(filepath.Join(RootPath(), dir))
		require.NoError(t, err)
		compiled[dir] = c
	}

	return &neotest.Contract{
		Hash:     c.Hash(e.CommitteeHash),
		NEF:      &c.NEF,
		Manifest: &c.Manifest,
	}
}

// DeployCredential deploys Credential contract owned by the committee.
func DeployCredential(t testing.TB, e *neotest.Executor) util.Uint160 {
	c := Compile(t, e, CredentialPath)
	e.DeployContract(t, c, []any{e.CommitteeHash})
	return c.Hash
}

// DeployReputation deploys Reputation contract owned by the committee.
func DeployReputation(t testing.TB, e *neotest.Executor) util.Uint160 {
	c := Compile(t, e, ReputationPath)
	e.DeployContract(t, c, []any{e.CommitteeHash})
	return c.Hash
}

// DeployPublication deploys Publication contract owned by the committee.
func DeployPublication(t testing.TB, e *neotest.Executor) util.Uint160 {
	c := Compile(t, e, PublicationPath)
	e.DeployContract(t, c, []any{e.CommitteeHash})
	return c.Hash
}

// DeployReview deploys Review contract owned by the committee and registers
// it in Publication contract.
func DeployReview(t testing.TB, e *neotest.Executor, credential, publication util.Uint160) util.Uint160 {
	c := Compile(t, e, ReviewPath)
	e.DeployContract(t, c, []any{e.CommitteeHash, credential, publication})

	e.CommitteeInvoker(publication).Invoke(t, stackitem.Null{}, "setReviewContract", e.CommitteeHash, c.Hash)
	return c.Hash
}

// DeployGovernance deploys Governance contract owned by the committee.
func DeployGovernance(t testing.TB, e *neotest.Executor, reputation util.Uint160, cfg GovernanceConfig) util.Uint160 {
	c := Compile(t, e, GovernancePath)
	e.DeployContract(t, c, []any{e.CommitteeHash, reputation,
		cfg.MinProposalBalance, cfg.MinVotingBalance, cfg.VotingPeriod, cfg.PassThreshold})
	return c.Hash
}

// DeployAll deploys all PeerLedger contracts in dependency order.
func DeployAll(t testing.TB, e *neotest.Executor) Contracts {
	var c Contracts

	c.Credential = DeployCredential(t, e)
	c.Reputation = DeployReputation(t, e)
	c.Publication = DeployPublication(t, e)
	c.Review = DeployReview(t, e, c.Credential, c.Publication)
	c.Governance = DeployGovernance(t, e, c.Reputation, DefaultGovernanceConfig())

	return c
}

// Call invokes the method in test mode and returns its result. Invoker
// signers witness the invocation.
func Call(t testing.TB, inv *neotest.ContractInvoker, method string, args ...any) stackitem.Item {
	script, err := smartcontract.CreateCallScript(inv.Hash, method, args...)
	require.NoError(t, err)

	s, err := inv.TestInvokeScript(t, script, inv.Signers)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	return s.Pop().Item()
}

// CallInt invokes the method in test mode and returns its integer result.
func CallInt(t testing.TB, inv *neotest.ContractInvoker, method string, args ...any) int64 {
	return Call(t, inv, method, args...).Value().(*big.Int).Int64()
}

// CallBool invokes the method in test mode and returns its boolean result.
func CallBool(t testing.TB, inv *neotest.ContractInvoker, method string, args ...any) bool {
	b, err := Call(t, inv, method, args...).TryBool()
	require.NoError(t, err)
	return b
}

// CallHash160 invokes the method in test mode and returns its script hash
// result.
func CallHash160(t testing.TB, inv *neotest.ContractInvoker, method string, args ...any) util.Uint160 {
	u, err := util.Uint160DecodeBytesBE(Bytes(t, Call(t, inv, method, args...)))
	require.NoError(t, err)
	return u
}

// Fields invokes the method in test mode and returns fields of the resulting
// structure.
func Fields(t testing.TB, inv *neotest.ContractInvoker, method string, args ...any) []stackitem.Item {
	fields, ok := Call(t, inv, method, args...).Value().([]stackitem.Item)
	require.True(t, ok, "%s result is not a structure", method)
	return fields
}

// Bytes returns bytes of the stack item.
func Bytes(t testing.TB, item stackitem.Item) []byte {
	b, err := item.TryBytes()
	require.NoError(t, err)
	return b
}

// Int returns integer value of the stack item.
func Int(t testing.TB, item stackitem.Item) int64 {
	i, err := item.TryInteger()
	require.NoError(t, err)
	return i.Int64()
}

// Iterate invokes the method returning an iterator in test mode and returns
// all iterated items.
func Iterate(t testing.TB, inv *neotest.ContractInvoker, method string, args ...any) []stackitem.Item {
	s, err := inv.TestInvoke(t, method, args...)
	require.NoError(t, err)

	iter, ok := s.Pop().Interop().Value().(*storage.Iterator)
	require.True(t, ok, "%s result is not an iterator", method)

	return iteratorToArray(iter)
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

// Hash256 returns a test 32-byte hash filled with the byte.
func Hash256(b byte) []byte {
	h := make([]byte, util.Uint256Size)
	for i := range h {
		h[i] = b
	}
	return h
}

// Height returns index of the last persisted block. This is the value
// contracts get from ledger.CurrentIndex.
func Height(e *neotest.Executor) int64 {
	return int64(e.Chain.BlockHeight())
}
