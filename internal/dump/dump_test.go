package dump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	id := ID{Label: "testnet", Block: 1024}
	require.Equal(t, "testnet-1024", id.String())
	require.Equal(t, "testnet-1024-contracts.json", id.statesFile())
	require.Equal(t, "testnet-1024-storage.csv", id.storageFile())

	parsed, ok := parseStatesFileName(id.statesFile())
	require.True(t, ok)
	require.Equal(t, id, parsed)

	for _, name := range []string{
		"testnet-1024-storage.csv",
		"testnet-contracts.json",
		"-1024-contracts.json",
		"testnet-x-contracts.json",
		"a-b-1-contracts.json",
	} {
		_, ok = parseStatesFileName(name)
		require.False(t, ok, name)
	}

	require.Error(t, ID{}.validate())
	require.Error(t, ID{Label: "main-net"}.validate())
}

func TestCreateAndOpen(t *testing.T) {
	dir := t.TempDir()
	id := ID{Label: "privnet", Block: 7}

	c, err := NewCreator(dir, id)
	require.NoError(t, err)

	credential := state.Contract{ContractBase: state.ContractBase{
		ID:       1,
		Hash:     util.Uint160{1},
		Manifest: *manifest.NewManifest("PeerLedger Credential"),
	}}
	review := state.Contract{ContractBase: state.ContractBase{
		ID:       4,
		Hash:     util.Uint160{4},
		Manifest: *manifest.NewManifest("PeerLedger Review"),
	}}

	w := c.AddContract("credential", credential)
	require.NoError(t, w.Write([]byte{'c', 1}, []byte("first")))
	require.NoError(t, w.Write([]byte{'c', 2}, []byte("second")))

	w = c.AddContract("review", review)
	require.NoError(t, w.Write([]byte{'r'}, []byte{}))

	require.NoError(t, c.Flush())
	require.NoError(t, c.Close())

	_, err = NewCreator(dir, id)
	require.ErrorIs(t, err, os.ErrExist)

	r, err := Open(dir, id)
	require.NoError(t, err)
	require.Equal(t, []string{"credential", "review"}, r.Contracts())

	st, ok := r.State("review")
	require.True(t, ok)
	require.Equal(t, review.Hash, st.Hash)
	require.EqualValues(t, 4, st.ID)
	require.Equal(t, review.Manifest.Name, st.Manifest.Name)

	_, ok = r.State("governance")
	require.False(t, ok)

	require.Equal(t, []StorageItem{
		{Key: []byte{'c', 1}, Value: []byte("first")},
		{Key: []byte{'c', 2}, Value: []byte("second")},
	}, r.Storage("credential"))
	require.Len(t, r.Storage("review"), 1)
	require.Empty(t, r.Storage("governance"))
}

func TestList(t *testing.T) {
	ids, err := List(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	require.Empty(t, ids)

	dir := t.TempDir()
	for _, id := range []ID{
		{Label: "testnet", Block: 20},
		{Label: "mainnet", Block: 5},
		{Label: "testnet", Block: 3},
	} {
		c, err := NewCreator(dir, id)
		require.NoError(t, err)
		require.NoError(t, c.Flush())
		require.NoError(t, c.Close())
	}

	// incomplete dump
	require.NoError(t, os.WriteFile(filepath.Join(dir, "devnet-1-contracts.json"), []byte("[]"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0600))

	ids, err = List(dir)
	require.NoError(t, err)
	require.Equal(t, []ID{
		{Label: "mainnet", Block: 5},
		{Label: "testnet", Block: 3},
		{Label: "testnet", Block: 20},
	}, ids)
}

func TestOpenCorrupted(t *testing.T) {
	dir := t.TempDir()
	id := ID{Label: "privnet", Block: 1}

	_, err := Open(dir, id)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, id.statesFile()), []byte("[]"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, id.storageFile()), []byte("credential,!!!,AA==\n"), 0600))

	_, err = Open(dir, id)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, id.storageFile()), []byte("credential,AA==\n"), 0600))

	_, err = Open(dir, id)
	require.Error(t, err)
}
