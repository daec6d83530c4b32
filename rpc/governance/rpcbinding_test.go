package governance

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}

func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func proposalItem(id int64, proposer util.Uint160) stackitem.Item {
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(id),
		stackitem.Make("Raise voting period"),
		stackitem.Make(""),
		stackitem.Make(proposer.BytesBE()),
		stackitem.Make(0),
		stackitem.Make(1),
		stackitem.Make(5),
		stackitem.Make(15),
		stackitem.Make(3_000_000),
		stackitem.Make(1_000_000),
		stackitem.Make("VotingPeriod"),
		stackitem.Make(20),
		stackitem.Make(make([]byte, util.Uint160Size)),
		stackitem.Make([]byte{}),
	})
}

func TestGetProposal(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("connection lost")
	_, err := r.GetProposal(big.NewInt(1))
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{State: "FAULT", FaultException: "5002 does not exist"}
	_, err = r.GetProposal(big.NewInt(1))
	require.Error(t, err)

	proposer := util.Uint160{4, 5, 6}
	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{proposalItem(1, proposer)}}
	p, err := r.GetProposal(big.NewInt(1))
	require.NoError(t, err)
	require.EqualValues(t, 1, p.ID.Int64())
	require.Equal(t, proposer, p.Proposer)
	require.EqualValues(t, 15, p.VotingEndsAt.Int64())
	require.EqualValues(t, 3_000_000, p.YesVotes.Int64())
	require.Equal(t, "VotingPeriod", p.ParamKey)
	require.EqualValues(t, 20, p.ParamValue.Int64())
	require.Equal(t, util.Uint160{}, p.ContractAddress)
	require.Empty(t, p.Payload)

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.NewStruct([]stackitem.Item{stackitem.Make(1)})}}
	_, err = r.GetProposal(big.NewInt(1))
	require.Error(t, err)
}

func TestListProposalsExpanded(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.Make([]stackitem.Item{
		proposalItem(1, util.Uint160{1}),
		proposalItem(2, util.Uint160{2}),
	})}}

	items, err := r.ListProposalsExpanded(10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	var p GovernanceProposal
	require.NoError(t, p.FromStackItem(items[1]))
	require.EqualValues(t, 2, p.ID.Int64())
}

func TestGetVote(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(false), stackitem.Make(2_000_000),
	})}}

	b, err := r.GetVote(big.NewInt(1), util.Uint160{7})
	require.NoError(t, err)
	require.False(t, b.Support)
	require.EqualValues(t, 2_000_000, b.Weight.Int64())
}

func TestVotingEvents(t *testing.T) {
	voter := util.Uint160{9}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "VoteCast", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(1), stackitem.Make(voter.BytesBE()), stackitem.Make(true), stackitem.Make(5_000_000),
				})},
				{Name: "ProposalFinalized", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(1), stackitem.Make(true), stackitem.Make(5_000_000), stackitem.Make(0),
				})},
			},
		}},
	}

	votes, err := VoteCastEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	require.Equal(t, voter, votes[0].Voter)
	require.True(t, votes[0].Support)

	finalized, err := ProposalFinalizedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, finalized, 1)
	require.True(t, finalized[0].Passed)
	require.EqualValues(t, 0, finalized[0].NoVotes.Int64())

	created, err := ProposalCreatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, created)
}
