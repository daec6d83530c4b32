package publication

import (
	"errors"
	"math/big"
	"testing"

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

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{State: "HALT", Stack: items}
}

func TestGetPublication(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.GetPublication(big.NewInt(1))
	require.Error(t, err)

	ti.err = nil
	ti.res = halt(stackitem.Make([]stackitem.Item{stackitem.Make(1)}))
	_, err = r.GetPublication(big.NewInt(1))
	require.Error(t, err)

	author := util.Uint160{4, 5, 6}
	content := util.Uint256{7, 8, 9}
	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(1),
		stackitem.Make("Title"),
		stackitem.Make("Abstract"),
		stackitem.Make([]stackitem.Item{stackitem.Make(author.BytesBE())}),
		stackitem.Make(content.BytesBE()),
		stackitem.Make(4),
		stackitem.Make(10),
		stackitem.Make(12),
		stackitem.Make(make([]byte, util.Uint160Size)),
		stackitem.Make("10.1000/182"),
	}))
	pub, err := r.GetPublication(big.NewInt(1))
	require.NoError(t, err)
	require.EqualValues(t, 1, pub.ID.Int64())
	require.Equal(t, "Title", pub.Title)
	require.Equal(t, []util.Uint160{author}, pub.Authors)
	require.Equal(t, content, pub.ContentHash)
	require.EqualValues(t, 4, pub.Status.Int64())
	require.Equal(t, util.Uint160{}, pub.Journal)
	require.Equal(t, "10.1000/182", pub.DOI)

	// Invalid hash length.
	ti.res.Stack[0].Value().([]stackitem.Item)[4] = stackitem.Make([]byte{1, 2, 3})
	_, err = r.GetPublication(big.NewInt(1))
	require.Error(t, err)
}

func TestGetPublicationReviews(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.res = halt(stackitem.Make([]stackitem.Item{stackitem.Make(3), stackitem.Make(5)}))
	ids, err := r.GetPublicationReviews(big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, []*big.Int{big.NewInt(3), big.NewInt(5)}, ids)

	ti.res = halt(stackitem.Make(1))
	_, err = r.GetPublicationReviews(big.NewInt(1))
	require.Error(t, err)

	ti.res = &result.Invoke{State: "FAULT", FaultException: "1003 publication does not exist"}
	_, err = r.GetPublicationReviews(big.NewInt(1))
	require.Error(t, err)
}

func TestPublicationRegisteredEvents(t *testing.T) {
	_, err := PublicationRegisteredEventsFromApplicationLog(nil)
	require.Error(t, err)

	submitter := util.Uint160{1}
	content := util.Uint256{2}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "PublicationRegistered", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(7), stackitem.Make(submitter.BytesBE()), stackitem.Make(content.BytesBE()),
				})},
				{Name: "PublicationStatusChanged", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(7), stackitem.Make(0), stackitem.Make(1),
				})},
			},
		}},
	}

	events, err := PublicationRegisteredEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.EqualValues(t, 7, events[0].ID.Int64())
	require.Equal(t, submitter, events[0].Submitter)
	require.Equal(t, content, events[0].ContentHash)

	changes, err := PublicationStatusChangedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	require.EqualValues(t, 1, changes[0].NewStatus.Int64())
}
