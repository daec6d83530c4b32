package deploy

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for PeerLedger deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)

	// GetApplicationLog returns execution results of the transaction. It is
	// used to await sent transactions.
	GetApplicationLog(util.Uint256, *trigger.Type) (*result.ApplicationLog, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// GovernanceContractPrm groups deployment parameters of the Governance
// contract.
type GovernanceContractPrm struct {
	Common CommonDeployPrm
	Config GovernanceConfiguration
}

// Prm groups all parameters of the PeerLedger deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy contracts to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It becomes the owner of all deployed contracts.
	LocalAccount *wallet.Account

	CredentialContract  CommonDeployPrm
	ReputationContract  CommonDeployPrm
	PublicationContract CommonDeployPrm
	ReviewContract      CommonDeployPrm
	GovernanceContract  GovernanceContractPrm

	// Optional account allowed to mint and burn reputation, for example a
	// service rewarding reviewers. Zero value means no token manager.
	TokenManager util.Uint160
}

// Addresses groups addresses of the deployed PeerLedger contracts.
type Addresses struct {
	Credential  util.Uint160
	Reputation  util.Uint160
	Publication util.Uint160
	Review      util.Uint160
	Governance  util.Uint160
}

// chain is a blockchain the deployment procedure works with.
type chain interface {
	// sender returns account deploying contracts and owning them.
	sender() util.Uint160
	// isDeployed checks whether the contract exists on the chain.
	isDeployed(util.Uint160) (bool, error)
	// deploy deploys the contract and waits for the transaction to be
	// accepted.
	deploy(ctx context.Context, c CommonDeployPrm, data []any) error
	// invoke calls state-changing method of the contract and waits for the
	// transaction to be accepted.
	invoke(ctx context.Context, contract util.Uint160, method string, args ...any) error
}

// Deploy deploys PeerLedger contracts into the Neo network represented by
// given Prm.Blockchain and links them with each other.
//
// Contracts are deployed in strict order: Credential, Reputation,
// Publication, Review and Governance. Contracts already present on the chain
// are not deployed again, so the procedure can be safely restarted. All
// contracts are owned by Prm.LocalAccount.
func Deploy(ctx context.Context, prm Prm) (Addresses, error) {
	if prm.LocalAccount == nil {
		return Addresses{}, errors.New("missing local account")
	}

	c, err := newRPCChain(prm.Logger, prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return Addresses{}, err
	}

	return deploy(ctx, prm, c)
}

func deploy(ctx context.Context, prm Prm, c chain) (Addresses, error) {
	var res Addresses

	govConfig := prm.GovernanceContract.Config.withDefaults()
	err := govConfig.validate()
	if err != nil {
		return res, fmt.Errorf("governance configuration: %w", err)
	}

	owner := c.sender()

	syncContract := func(name string, prmContract CommonDeployPrm, data []any) (util.Uint160, error) {
		l := prm.Logger.With(zap.String("contract", name))
		addr := state.CreateContractHash(owner, prmContract.NEF.Checksum, prmContract.Manifest.Name)

		if err := ctx.Err(); err != nil {
			return addr, err
		}

		exists, err := c.isDeployed(addr)
		if err != nil {
			return addr, fmt.Errorf("check %s contract presence: %w", name, err)
		}

		if exists {
			l.Info("contract is already deployed, skip", zap.Stringer("address", addr))
			return addr, nil
		}

		l.Info("deploying contract...", zap.Stringer("address", addr))

		err = c.deploy(ctx, prmContract, data)
		if err != nil {
			return addr, fmt.Errorf("deploy %s contract: %w", name, err)
		}

		l.Info("contract successfully deployed", zap.Stringer("address", addr))

		return addr, nil
	}

	// 1. Credential
	res.Credential, err = syncContract("Credential", prm.CredentialContract, []any{owner})
	if err != nil {
		return res, err
	}

	// 2. Reputation
	res.Reputation, err = syncContract("Reputation", prm.ReputationContract, []any{owner})
	if err != nil {
		return res, err
	}

	// 3. Publication
	res.Publication, err = syncContract("Publication", prm.PublicationContract, []any{owner})
	if err != nil {
		return res, err
	}

	// 4. Review
	//
	// Requires Credential and Publication.
	res.Review, err = syncContract("Review", prm.ReviewContract, []any{owner, res.Credential, res.Publication})
	if err != nil {
		return res, err
	}

	// 5. Governance
	//
	// Requires Reputation.
	res.Governance, err = syncContract("Governance", prm.GovernanceContract.Common,
		append([]any{owner, res.Reputation}, govConfig.deployArgs()...))
	if err != nil {
		return res, err
	}

	prm.Logger.Info("registering Review contract in Publication contract...")

	err = c.invoke(ctx, res.Publication, "setReviewContract", owner, res.Review)
	if err != nil {
		return res, fmt.Errorf("register Review contract: %w", err)
	}

	if !prm.TokenManager.Equals(util.Uint160{}) {
		prm.Logger.Info("registering reputation token manager...", zap.Stringer("manager", prm.TokenManager))

		err = c.invoke(ctx, res.Reputation, "setTokenManager", owner, prm.TokenManager, true)
		if err != nil {
			return res, fmt.Errorf("register reputation token manager: %w", err)
		}
	}

	prm.Logger.Info("PeerLedger contracts successfully deployed")

	return res, nil
}

type rpcChain struct {
	logger     *zap.Logger
	blockchain Blockchain
	account    *wallet.Account
	actor      *actor.Actor
	management *management.Contract
}

func newRPCChain(logger *zap.Logger, b Blockchain, acc *wallet.Account) (*rpcChain, error) {
	var opts actor.Options
	opts.CheckerModifier = peerLedgerTransactionModifier(func() uint32 {
		h, err := b.GetBlockCount()
		if err != nil {
			logger.Warn("failed to get block count, use zero", zap.Error(err))
			return 0
		}
		return h
	})

	act, err := actor.NewTuned(b, []actor.SignerAccount{{
		Signer: transaction.Signer{
			Account: acc.ScriptHash(),
			Scopes:  transaction.CalledByEntry,
		},
		Account: acc,
	}}, opts)
	if err != nil {
		return nil, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	return &rpcChain{
		logger:     logger,
		blockchain: b,
		account:    acc,
		actor:      act,
		management: management.New(act),
	}, nil
}

func (c *rpcChain) sender() util.Uint160 {
	return c.account.ScriptHash()
}

func (c *rpcChain) isDeployed(addr util.Uint160) (bool, error) {
	st, err := c.blockchain.GetContractStateByHash(addr)
	if err != nil {
		if isErrContractNotFound(err) {
			return false, nil
		}
		return false, err
	}

	return st != nil, nil
}

func (c *rpcChain) deploy(ctx context.Context, prm CommonDeployPrm, data []any) error {
	res, err := c.actor.Wait(c.management.Deploy(&prm.NEF, &prm.Manifest, data))
	return c.await(ctx, res, err)
}

func (c *rpcChain) invoke(ctx context.Context, contract util.Uint160, method string, args ...any) error {
	res, err := c.actor.Wait(c.actor.SendCall(contract, method, args...))
	return c.await(ctx, res, err)
}

func (c *rpcChain) await(ctx context.Context, res *state.AppExecResult, err error) error {
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if !res.VMState.HasFlag(vmstate.Halt) {
		return fmt.Errorf("transaction %s failed: %s", res.Container.StringLE(), res.FaultException)
	}

	c.logger.Debug("transaction accepted", zap.Stringer("tx", res.Container))

	return nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

// returns actor.TransactionCheckerModifier which checks that invocation
// finished with 'HALT' state and, if so, sets transaction's nonce and
// ValidUntilBlock to 100*N and 100*(N+1) correspondingly, where
// 100*N <= current height < 100*(N+1). Restarted deployment therefore sends
// the same transactions within the same span.
func peerLedgerTransactionModifier(getBlockchainHeight func() uint32) actor.TransactionCheckerModifier {
	return func(r *result.Invoke, tx *transaction.Transaction) error {
		err := actor.DefaultCheckerModifier(r, tx)
		if err != nil {
			return err
		}

		curHeight := getBlockchainHeight()
		const span = 100
		n := curHeight / span

		tx.Nonce = n * span

		if math.MaxUint32-span > tx.Nonce {
			tx.ValidUntilBlock = tx.Nonce + span
		} else {
			tx.ValidUntilBlock = math.MaxUint32
		}

		return nil
	}
}
