package contracts

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestCompileAll(t *testing.T) {
	c, err := CompileAll(".")
	require.NoError(t, err)
	require.Len(t, c, len(deployOrder))

	names := make([]string, len(c))
	for i := range c {
		names[i] = c[i].Manifest.Name
	}
	require.Equal(t, []string{
		"PeerLedger Credential",
		"PeerLedger Reputation",
		"PeerLedger Publication",
		"PeerLedger Review",
		"PeerLedger Governance",
	}, names)

	require.Equal(t, []string{"NEP-17"}, c[1].Manifest.SupportedStandards)
	require.True(t, c[1].Manifest.ABI.GetMethod("balanceOf", 1).Safe)
	require.False(t, c[3].Manifest.ABI.GetMethod("submitReview", 10).Safe)

	// Native contract calls are compiled into method tokens.
	for i := range c {
		require.NotEmpty(t, c[i].NEF.Tokens, names[i])
		require.Equal(t, c[i].NEF.CalculateChecksum(), c[i].NEF.Checksum, names[i])
	}
}

func TestCompileMissingDir(t *testing.T) {
	_, err := Compile("missing")
	require.Error(t, err)
}

func TestDeployOrder(t *testing.T) {
	order := DeployOrder()
	require.Equal(t, deployOrder, order)

	order[0] = "changed"
	require.Equal(t, CredentialDir, deployOrder[0])
}

func TestHash(t *testing.T) {
	_nef, _ := anyValidNEF(t)
	_manifest, _ := anyValidManifest(t, "zero")
	c := Contract{NEF: _nef, Manifest: _manifest}

	require.Equal(t, c.Hash(util.Uint160{1}), c.Hash(util.Uint160{1}))
	require.NotEqual(t, c.Hash(util.Uint160{1}), c.Hash(util.Uint160{2}))
}

func TestGetMissingFiles(t *testing.T) {
	_fs := fstest.MapFS{}

	// Missing NEF
	_, err := Read(_fs)
	require.Error(t, err)

	// Missing manifest.
	_fs[CredentialDir+"/"+nefName] = &fstest.MapFile{}
	_, err = read(_fs, []string{CredentialDir})
	require.Error(t, err)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = fstest.MapFS{}
		nefPath      = CredentialDir + "/" + nefName
		manifestPath = CredentialDir + "/" + manifestName
	)

	_, validNEF := anyValidNEF(t)
	_, validManifest := anyValidManifest(t, "zero")

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err := read(_fs, []string{CredentialDir})
	require.NoError(t, err)

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err = read(_fs, []string{CredentialDir})
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = read(_fs, []string{CredentialDir})
	require.ErrorIs(t, err, errInvalidManifest)
}

func TestReadAll(t *testing.T) {
	_fs := fstest.MapFS{}
	_, validNEF := anyValidNEF(t)

	for _, dir := range deployOrder {
		_, validManifest := anyValidManifest(t, dir)
		_fs[dir+"/"+nefName] = &fstest.MapFile{Data: validNEF}
		_fs[dir+"/"+manifestName] = &fstest.MapFile{Data: validManifest}
	}

	c, err := Read(_fs)
	require.NoError(t, err)
	require.Len(t, c, len(deployOrder))
	for i := range c {
		require.Equal(t, deployOrder[i], c[i].Manifest.Name)
	}
}

func anyValidNEF(tb testing.TB) (nef.File, []byte) {
	script := make([]byte, 32)

	_nef, err := nef.NewFile(script)
	require.NoError(tb, err)

	bNEF, err := _nef.Bytes()
	require.NoError(tb, err)

	return *_nef, bNEF
}

func anyValidManifest(tb testing.TB, name string) (manifest.Manifest, []byte) {
	_manifest := manifest.NewManifest(name)

	jManifest, err := json.Marshal(_manifest)
	require.NoError(tb, err)

	return *_manifest, jManifest
}
