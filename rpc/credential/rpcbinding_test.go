package credential

import (
	"testing"

	"github.com/google/uuid"
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

func TestGetCredentials(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	verifier := util.Uint160{4}
	proof := util.Uint256{5}
	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.NewStruct([]stackitem.Item{
		stackitem.Make([]stackitem.Item{stackitem.Make("professor")}),
		stackitem.Make([]stackitem.Item{stackitem.Make("cryptography"), stackitem.Make("databases")}),
		stackitem.Make("MIT"),
		stackitem.Make(verifier.BytesBE()),
		stackitem.Make(10),
		stackitem.Make(0),
		stackitem.Make(false),
		stackitem.Make(proof.BytesBE()),
	})}}

	cr, err := r.GetCredentials(util.Uint160{7})
	require.NoError(t, err)
	require.Equal(t, []string{"professor"}, cr.Roles)
	require.Equal(t, []string{"cryptography", "databases"}, cr.Fields)
	require.Equal(t, "MIT", cr.Institution)
	require.Equal(t, verifier, cr.Verifier)
	require.EqualValues(t, 10, cr.VerifiedAt.Int64())
	require.Zero(t, cr.ExpiresAt.Sign())
	require.False(t, cr.Revoked)
	require.Equal(t, proof, cr.ProofHash)

	ti.res.Stack[0].Value().([]stackitem.Item)[2] = stackitem.Make([]byte{0xff, 0xfe})
	_, err = r.GetCredentials(util.Uint160{7})
	require.Error(t, err)
}

func TestIsVerified(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.Make(true)}}
	ok, err := r.IsVerified(util.Uint160{7})
	require.NoError(t, err)
	require.True(t, ok)

	ti.res = &result.Invoke{State: "FAULT", FaultException: "4003 credentials do not exist"}
	_, err = r.IsVerified(util.Uint160{7})
	require.Error(t, err)
}

func TestListVerifiersExpanded(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.Make([]stackitem.Item{
		stackitem.Make(util.Uint160{1}.BytesBE()),
		stackitem.Make(util.Uint160{2}.BytesBE()),
	})}}

	items, err := r.ListVerifiersExpanded(10)
	require.NoError(t, err)
	require.Len(t, items, 2)
}
