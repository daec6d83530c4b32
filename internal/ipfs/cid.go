/*
Package ipfs converts between publication content hashes and IPFS content
identifiers.

Content hash of a publication is a SHA-256 digest of the content. IPFS CIDv0
wraps the same digest into a sha2-256 multihash encoded with base58, so both
forms are interchangeable.
*/
package ipfs

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Multihash header of sha2-256 digests.
const (
	sha256Code   = 0x12
	sha256Length = 0x20

	cidV0Length = 2 + sha256Length
	cidV0Prefix = "Qm"
)

// ErrUnsupportedMultihash is returned when CID references a digest other than
// sha2-256.
var ErrUnsupportedMultihash = errors.New("unsupported multihash, only sha2-256 is allowed")

// ParseContentHash parses content hash given either as 64 hex characters
// (with an optional 0x prefix) or as IPFS CIDv0.
func ParseContentHash(s string) (util.Uint256, error) {
	if strings.HasPrefix(s, cidV0Prefix) {
		return ParseCIDv0(s)
	}

	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return util.Uint256{}, fmt.Errorf("decode hex: %w", err)
	}

	h, err := util.Uint256DecodeBytesBE(b)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("invalid digest: %w", err)
	}

	return h, nil
}

// ParseCIDv0 extracts SHA-256 digest from the IPFS CIDv0.
func ParseCIDv0(s string) (util.Uint256, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("decode base58: %w", err)
	}

	if len(b) != cidV0Length {
		return util.Uint256{}, fmt.Errorf("invalid CIDv0 length %d, expected %d", len(b), cidV0Length)
	}

	if b[0] != sha256Code || b[1] != sha256Length {
		return util.Uint256{}, ErrUnsupportedMultihash
	}

	return util.Uint256DecodeBytesBE(b[2:])
}

// FormatCIDv0 returns IPFS CIDv0 of the SHA-256 digest.
func FormatCIDv0(h util.Uint256) string {
	b := make([]byte, 0, cidV0Length)
	b = append(b, sha256Code, sha256Length)
	b = append(b, h.BytesBE()...)

	return base58.Encode(b)
}
