package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/peerledger/peerledger-contract/contracts"
	"github.com/peerledger/peerledger-contract/internal/dump"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func dumpCommand() cli.Command {
	return cli.Command{
		Name:  "dump",
		Usage: "Save states and storages of the configured contracts at the latest block",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "label", Usage: "Label of the network, e.g. 'testnet'"},
			cli.StringFlag{Name: "dir", Value: "dumps", Usage: "Directory to save the dump to"},
		},
		Action: dumpContracts,
	}
}

func dumpContracts(c *cli.Context) error {
	label, err := requireString(c, "label")
	if err != nil {
		return err
	}

	dir := c.String("dir")

	err = os.MkdirAll(dir, 0700)
	if err != nil {
		return fmt.Errorf("create dump directory: %w", err)
	}

	e, err := openEnv(c, false)
	if err != nil {
		return err
	}
	defer e.close()

	height, err := e.rpc.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get number of the latest block: %w", err)
	}

	d, err := dump.NewCreator(dir, dump.ID{Label: label, Block: height})
	if err != nil {
		return fmt.Errorf("init local dumper: %w", err)
	}
	defer d.Close()

	for _, name := range contracts.DeployOrder() {
		h, err := e.contract(name)
		if err != nil {
			return err
		}

		e.log.Info("dumping contract...", zap.String("contract", name), zap.Stringer("address", h))

		st, err := e.rpc.GetContractStateByHash(h)
		if err != nil {
			return fmt.Errorf("get state of the %s contract: %w", name, err)
		}

		err = iterateContractStorage(e, height, h, d.AddContract(name, *st).Write)
		if err != nil {
			return fmt.Errorf("iterate %s contract storage: %w", name, err)
		}
	}

	err = d.Flush()
	if err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "PeerLedger contracts are successfully dumped to '%s/'\n", dir)

	return nil
}

// iterateContractStorage passes all storage items of the contract at the
// penultimate block to f. It breaks on any f's error and returns it.
func iterateContractStorage(e *env, height uint32, contract util.Uint160, f func(key, value []byte) error) error {
	if height == 0 {
		return errors.New("empty chain")
	}

	stateRoot, err := e.rpc.GetStateRootByHeight(height - 1)
	if err != nil {
		return fmt.Errorf("get state root at penult block #%d: %w", height-1, err)
	}

	var start []byte

	for {
		res, err := e.rpc.FindStates(stateRoot.Root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("find storage items at state root '%s': %w", stateRoot.Root.StringLE(), err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated || len(res.Results) == 0 {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
