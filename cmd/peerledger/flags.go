package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/peerledger/peerledger-contract/contracts/reputation/reputationconst"
	"github.com/peerledger/peerledger-contract/internal/ipfs"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// maxIteratorItems limits number of items fetched at once from the
// contract iterators.
const maxIteratorItems = 100

func idFlag(usage string) cli.Flag {
	return cli.Uint64Flag{Name: "id", Usage: usage}
}

func accountFlag(name, usage string) cli.Flag {
	return cli.StringFlag{Name: name, Usage: usage + " (address or LE script hash)"}
}

func requireUint(c *cli.Context, name string) (*big.Int, error) {
	if !c.IsSet(name) {
		return nil, fmt.Errorf("missing --%s", name)
	}
	return new(big.Int).SetUint64(c.Uint64(name)), nil
}

func requireString(c *cli.Context, name string) (string, error) {
	s := c.String(name)
	if s == "" {
		return "", fmt.Errorf("missing --%s", name)
	}
	return s, nil
}

func requireAccount(c *cli.Context, name string) (util.Uint160, error) {
	s, err := requireString(c, name)
	if err != nil {
		return util.Uint160{}, err
	}

	h, err := parseHash160(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("--%s: %w", name, err)
	}

	return h, nil
}

func requireContentHash(c *cli.Context, name string) (util.Uint256, error) {
	s, err := requireString(c, name)
	if err != nil {
		return util.Uint256{}, err
	}
	return contentHash(name, s)
}

// optionalContentHash returns zero hash if the flag is omitted.
func optionalContentHash(c *cli.Context, name string) (util.Uint256, error) {
	s := c.String(name)
	if s == "" {
		return util.Uint256{}, nil
	}
	return contentHash(name, s)
}

func contentHash(name, s string) (util.Uint256, error) {
	h, err := ipfs.ParseContentHash(s)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("--%s: %w", name, err)
	}
	return h, nil
}

func parseHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return b, nil
}

// parseAmount parses reputation amount given in whole tokens, e.g. '1.5'.
func parseAmount(name, s string) (*big.Int, error) {
	v, err := fixedn.FromString(s, reputationconst.Decimals)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("--%s: negative amount", name)
	}
	return v, nil
}

func formatAmount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return fixedn.ToString(v, reputationconst.Decimals)
}

func uint64Of(v *big.Int) uint64 {
	if v == nil || !v.IsUint64() {
		return 0
	}
	return v.Uint64()
}

func printYAML(c *cli.Context, v any) error {
	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	return enc.Close()
}

// readIterator reads all items of the contract iterator. Iterator sessions
// may be disabled on the RPC server, in this case expand is used to fetch up
// to maxIteratorItems items in a single call.
func readIterator(
	e *env,
	open func() (uuid.UUID, result.Iterator, error),
	expand func(int) ([]stackitem.Item, error),
) ([]stackitem.Item, error) {
	sess, iter, err := open()
	if err != nil {
		items, expandErr := expand(maxIteratorItems)
		if expandErr != nil {
			return nil, contractError(err)
		}
		e.log.Debug("iterator sessions are unavailable, expanded iterator in place", zap.Error(err))
		return items, nil
	}

	defer func() { _ = e.inv.TerminateSession(sess) }()

	var res []stackitem.Item

	for {
		items, err := e.inv.TraverseIterator(sess, &iter, maxIteratorItems)
		if err != nil {
			return nil, fmt.Errorf("traverse iterator: %w", err)
		}

		res = append(res, items...)

		if len(items) < maxIteratorItems {
			return res, nil
		}
	}
}

var errEmptyItem = errors.New("empty stack item")

func hash160Item(item stackitem.Item) (util.Uint160, error) {
	if item == nil {
		return util.Uint160{}, errEmptyItem
	}

	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}

	return util.Uint160DecodeBytesBE(b)
}
