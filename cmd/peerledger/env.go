package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/peerledger/peerledger-contract/rpc/fault"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// env groups services shared by all commands working with the network.
type env struct {
	ctx context.Context
	log *zap.Logger
	cfg *Config

	rpc *rpcclient.Client
	inv *invoker.Invoker

	// Set for signing environments only.
	acc *wallet.Account
	act *actor.Actor
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	c := zap.NewProductionConfig()
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return c.Build()
}

// openEnv reads configuration, dials the RPC server and, if signer is set,
// unlocks the wallet account used for transaction signing.
func openEnv(c *cli.Context, signer bool) (*env, error) {
	cfg, err := loadConfig(c.GlobalString("config"))
	if err != nil {
		return nil, err
	}

	log, err := newLogger(c.GlobalBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	ctx := appContext(c)

	client, err := rpcclient.New(ctx, cfg.RPC.Endpoint, rpcclient.Options{
		DialTimeout:    cfg.RPC.Timeout,
		RequestTimeout: cfg.RPC.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = client.Init()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	e := &env{
		ctx: ctx,
		log: log,
		cfg: cfg,
		rpc: client,
	}

	if !signer {
		e.inv = invoker.New(client, nil)
		return e, nil
	}

	e.acc, err = openAccount(cfg)
	if err != nil {
		client.Close()
		return nil, err
	}

	e.act, err = actor.NewSimple(client, e.acc)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("init actor: %w", err)
	}

	e.inv = &e.act.Invoker

	log.Debug("signing with local account", zap.String("address", e.acc.Address))

	return e, nil
}

func (e *env) close() {
	e.rpc.Close()
	_ = e.log.Sync()
}

func openAccount(cfg *Config) (*wallet.Account, error) {
	if cfg.Wallet.Path == "" {
		return nil, errors.New("missing wallet path, set wallet.path")
	}

	w, err := wallet.NewWalletFromFile(cfg.Wallet.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	h := cfg.Wallet.Address.Uint160
	if !cfg.Wallet.Address.IsSet() {
		h = w.GetChangeAddress()
	}

	acc := w.GetAccount(h)
	if acc == nil {
		return nil, fmt.Errorf("account %s is missing in the wallet", h.StringLE())
	}

	err = acc.Decrypt(cfg.Wallet.Password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("unlock account %s: %w", acc.Address, err)
	}

	return acc, nil
}

// sender returns script hash of the signing account.
func (e *env) sender() util.Uint160 {
	return e.acc.ScriptHash()
}

func (e *env) contract(name string) (util.Uint160, error) {
	return e.cfg.contract(name)
}

// await waits for the transaction sent by one of the binding methods to be
// accepted and checks that it succeeded. Returned log holds the only
// execution of the transaction.
func (e *env) await(h util.Uint256, vub uint32, err error) (*result.ApplicationLog, error) {
	if err != nil {
		return nil, contractError(fmt.Errorf("send transaction: %w", err))
	}

	e.log.Info("transaction sent, waiting...", zap.String("tx", h.StringLE()), zap.Uint32("vub", vub))

	res, err := e.act.Wait(h, vub, nil)
	if err != nil {
		return nil, fmt.Errorf("await transaction %s: %w", h.StringLE(), err)
	}

	if !res.VMState.HasFlag(vmstate.Halt) {
		if fe, parseErr := fault.Parse(res.FaultException); parseErr == nil {
			return nil, fe
		}
		return nil, fmt.Errorf("transaction %s failed: %s", h.StringLE(), res.FaultException)
	}

	e.log.Info("transaction accepted", zap.String("tx", h.StringLE()))

	return applicationLog(res), nil
}

func applicationLog(res *state.AppExecResult) *result.ApplicationLog {
	return &result.ApplicationLog{
		Container:     res.Container,
		IsTransaction: true,
		Executions:    []state.Execution{res.Execution},
	}
}

// contractError replaces invocation error with the contract failure it
// carries, if any.
func contractError(err error) error {
	if fe := fault.FromError(err); fe != nil {
		return fe
	}
	return err
}
