package ipfs

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestCIDv0(t *testing.T) {
	digest := sha256.Sum256([]byte("PeerLedger"))
	h, err := util.Uint256DecodeBytesBE(digest[:])
	require.NoError(t, err)

	cid := FormatCIDv0(h)
	require.True(t, strings.HasPrefix(cid, "Qm"), cid)
	require.Len(t, cid, 46)

	parsed, err := ParseCIDv0(cid)
	require.NoError(t, err)
	require.Equal(t, h, parsed)

	parsed, err = ParseContentHash(cid)
	require.NoError(t, err)
	require.Equal(t, h, parsed)
	require.Equal(t, digest[:], parsed.BytesBE())
}

func TestParseCIDv0Errors(t *testing.T) {
	_, err := ParseCIDv0("Qm0OIl")
	require.Error(t, err)

	_, err = ParseCIDv0(base58.Encode([]byte{0x12, 0x20, 1, 2, 3}))
	require.Error(t, err)

	b := make([]byte, 34)
	b[0], b[1] = 0x13, 0x20
	_, err = ParseCIDv0(base58.Encode(b))
	require.ErrorIs(t, err, ErrUnsupportedMultihash)
}

func TestParseContentHash(t *testing.T) {
	digest := sha256.Sum256([]byte("content"))
	s := hex.EncodeToString(digest[:])

	for _, in := range []string{s, "0x" + s} {
		h, err := ParseContentHash(in)
		require.NoError(t, err)
		require.Equal(t, digest[:], h.BytesBE())
	}

	for _, in := range []string{"", "zz", s[:62], s + "00"} {
		_, err := ParseContentHash(in)
		require.Error(t, err, in)
	}
}
