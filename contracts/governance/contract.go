package governance

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/peerledger/peerledger-contract/common"
	"github.com/peerledger/peerledger-contract/contracts/governance/governanceconst"
)

type (
	// Proposal structure stores a governance proposal. Parameter fields are
	// used by Parameter proposals, ContractAddress is used by Contract
	// proposals and consists of zero bytes otherwise. Payload is arbitrary
	// data attached to the proposal.
	Proposal struct {
		ID              int
		Title           string
		Description     string
		Proposer        interop.Hash160
		Type            int
		Status          int
		CreatedAt       int
		VotingEndsAt    int
		YesVotes        int
		NoVotes         int
		ParamKey        string
		ParamValue      int
		ContractAddress interop.Hash160
		Payload         []byte
	}

	// Ballot structure stores a single vote. Weight is reputation balance of
	// the voter at the moment of voting.
	Ballot struct {
		Support bool
		Weight  int
	}
)

const (
	proposalPrefix  = 'p'
	votePrefix      = 'v'
	configPrefix    = 'g'
	parameterPrefix = 'x'
	approvedPrefix  = 'a'
	featurePrefix   = 'f'

	countKey              = 'n'
	reputationContractKey = 'r'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	common.InitOwner(ctx, args[0].(interop.Hash160))

	reputationContract := args[1].(interop.Hash160)
	if len(reputationContract) != interop.Hash160Len {
		panic("invalid reputation contract hash")
	}
	storage.Put(ctx, reputationContractKey, reputationContract)

	cfg := []int{
		governanceconst.DefaultMinProposalBalance,
		governanceconst.DefaultMinVotingBalance,
		governanceconst.DefaultVotingPeriod,
		governanceconst.DefaultPassThreshold,
	}
	for i := 2; i < len(args) && i < 6; i++ {
		cfg[i-2] = args[i].(int)
	}

	setConfig(ctx, governanceconst.MinProposalBalanceKey, cfg[0])
	setConfig(ctx, governanceconst.MinVotingBalanceKey, cfg[1])
	setConfig(ctx, governanceconst.VotingPeriodKey, cfg[2])
	setConfig(ctx, governanceconst.PassThresholdKey, cfg[3])

	runtime.Log("governance contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.Update(nefFile, manifest, data, governanceconst.ErrNotAuthorized)
	runtime.Log("governance contract updated")
}

// CreateProposal creates a new proposal and returns its identifier. Proposer
// must have at least MinProposalBalance of reputation. Voting starts
// immediately and lasts VotingPeriod blocks.
//
// It produces ProposalCreated notification.
func CreateProposal(proposer interop.Hash160, title, description string, proposalType int,
	paramKey string, paramValue int, contractAddress interop.Hash160, payload []byte) int {
	ctx := storage.GetContext()
	common.CheckWitness(proposer, governanceconst.ErrNotAuthorized)

	if reputationOf(ctx, proposer) < getConfig(ctx, governanceconst.MinProposalBalanceKey) {
		panic(governanceconst.ErrInsufficientVotes)
	}

	if len(title) == 0 || !governanceconst.IsValidType(proposalType) {
		panic(governanceconst.ErrInvalidInput)
	}
	switch proposalType {
	case governanceconst.TypeParameter:
		if len(paramKey) == 0 {
			panic(governanceconst.ErrInvalidInput)
		}
		if governanceconst.IsConfigKey(paramKey) && !governanceconst.IsValidConfigValue(paramKey, paramValue) {
			panic(governanceconst.ErrInvalidInput)
		}
		contractAddress = common.ZeroHash160()
	case governanceconst.TypeContract:
		if len(contractAddress) != interop.Hash160Len {
			panic(governanceconst.ErrInvalidInput)
		}
	default:
		contractAddress = common.ZeroHash160()
	}
	if payload == nil {
		payload = []byte{}
	}

	id := common.NextID(ctx, countKey)
	current := ledger.CurrentIndex()

	putProposal(ctx, Proposal{
		ID:              id,
		Title:           title,
		Description:     description,
		Proposer:        proposer,
		Type:            proposalType,
		Status:          governanceconst.StatusActive,
		CreatedAt:       current,
		VotingEndsAt:    current + getConfig(ctx, governanceconst.VotingPeriodKey),
		YesVotes:        0,
		NoVotes:         0,
		ParamKey:        paramKey,
		ParamValue:      paramValue,
		ContractAddress: contractAddress,
		Payload:         payload,
	})

	runtime.Notify("ProposalCreated", id, proposer, proposalType, title)

	return id
}

// Vote casts a weighted vote for the proposal. Weight of the vote is the
// current reputation balance of the voter. Every address can vote only once.
//
// It produces VoteCast notification.
func Vote(voter interop.Hash160, proposalID int, support bool) {
	ctx := storage.GetContext()
	common.CheckWitness(voter, governanceconst.ErrNotAuthorized)

	p := getProposal(ctx, proposalID)

	weight := reputationOf(ctx, voter)
	if weight < getConfig(ctx, governanceconst.MinVotingBalanceKey) {
		panic(governanceconst.ErrInsufficientVotes)
	}
	if p.Status != governanceconst.StatusActive {
		panic(governanceconst.ErrInvalidState)
	}
	if ledger.CurrentIndex() >= p.VotingEndsAt {
		panic(governanceconst.ErrVotingEnded)
	}

	key := voteKey(proposalID, voter)
	if storage.Get(ctx, key) != nil {
		panic(governanceconst.ErrAlreadyVoted)
	}
	common.SetSerialized(ctx, key, Ballot{Support: support, Weight: weight})

	if support {
		p.YesVotes += weight
	} else {
		p.NoVotes += weight
	}
	putProposal(ctx, p)

	runtime.Notify("VoteCast", proposalID, voter, support, weight)
}

// FinalizeProposal closes voting on the proposal after the voting period and
// decides whether it is passed or rejected. It can be invoked by anyone.
//
// It produces ProposalFinalized notification.
func FinalizeProposal(proposalID int) {
	ctx := storage.GetContext()

	p := getProposal(ctx, proposalID)
	if p.Status != governanceconst.StatusActive {
		panic(governanceconst.ErrInvalidState)
	}
	if ledger.CurrentIndex() < p.VotingEndsAt {
		panic(governanceconst.ErrVotingActive)
	}

	passed := governanceconst.IsPassed(p.YesVotes, p.NoVotes, getConfig(ctx, governanceconst.PassThresholdKey))
	if passed {
		p.Status = governanceconst.StatusPassed
	} else {
		p.Status = governanceconst.StatusRejected
	}
	putProposal(ctx, p)

	runtime.Notify("ProposalFinalized", proposalID, passed, p.YesVotes, p.NoVotes)
}

// ExecuteProposal applies passed proposal. Parameter proposals change
// governance parameters, Contract proposals approve the contract and Feature
// proposals enable the feature named by the proposal title.
//
// It produces ProposalExecuted notification.
func ExecuteProposal(caller interop.Hash160, proposalID int) {
	ctx := storage.GetContext()
	common.CheckWitness(caller, governanceconst.ErrNotAuthorized)

	p := getProposal(ctx, proposalID)
	if p.Status != governanceconst.StatusPassed {
		panic(governanceconst.ErrInvalidState)
	}

	switch p.Type {
	case governanceconst.TypeParameter:
		if governanceconst.IsConfigKey(p.ParamKey) {
			setConfig(ctx, p.ParamKey, p.ParamValue)
		} else {
			storage.Put(ctx, stringKey(parameterPrefix, p.ParamKey), p.ParamValue)
		}
	case governanceconst.TypeContract:
		storage.Put(ctx, append([]byte{approvedPrefix}, p.ContractAddress...), proposalID)
	case governanceconst.TypeFeature:
		storage.Put(ctx, stringKey(featurePrefix, p.Title), proposalID)
	}

	p.Status = governanceconst.StatusExecuted
	putProposal(ctx, p)

	runtime.Notify("ProposalExecuted", proposalID, caller)
}

// CancelProposal rejects active proposal. It can be invoked by the proposer or
// the contract owner.
//
// It produces ProposalCancelled notification.
func CancelProposal(caller interop.Hash160, proposalID int) {
	ctx := storage.GetContext()
	common.CheckWitness(caller, governanceconst.ErrNotAuthorized)

	p := getProposal(ctx, proposalID)
	if !p.Proposer.Equals(caller) && !common.Owner(ctx).Equals(caller) {
		panic(governanceconst.ErrNotAuthorized)
	}
	if p.Status != governanceconst.StatusActive {
		panic(governanceconst.ErrInvalidState)
	}

	p.Status = governanceconst.StatusRejected
	putProposal(ctx, p)

	runtime.Notify("ProposalCancelled", proposalID, caller)
}

// SetConfig sets governance configuration value. It can be invoked only by the
// contract owner.
func SetConfig(caller interop.Hash160, key string, value int) {
	ctx := storage.GetContext()
	if !common.IsOwner(ctx, caller) {
		panic(governanceconst.ErrNotAuthorized)
	}
	if !governanceconst.IsValidConfigValue(key, value) {
		panic(governanceconst.ErrInvalidInput)
	}

	setConfig(ctx, key, value)
}

// Config returns governance configuration value.
func Config(key string) int {
	if !governanceconst.IsConfigKey(key) {
		panic(governanceconst.ErrInvalidInput)
	}

	return getConfig(storage.GetReadOnlyContext(), key)
}

// Parameter returns value of the parameter set by executed Parameter
// proposal.
func Parameter(key string) int {
	ctx := storage.GetReadOnlyContext()
	if governanceconst.IsConfigKey(key) {
		return getConfig(ctx, key)
	}

	value := storage.Get(ctx, stringKey(parameterPrefix, key))
	if value == nil {
		panic(governanceconst.ErrDoesNotExist)
	}

	return value.(int)
}

// IsApprovedContract returns true if the contract is approved by an executed
// Contract proposal.
func IsApprovedContract(h interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, append([]byte{approvedPrefix}, h...)) != nil
}

// IsFeatureEnabled returns true if the feature is enabled by an executed
// Feature proposal. Feature payload is available in the proposal.
func IsFeatureEnabled(name string) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, stringKey(featurePrefix, name)) != nil
}

// GetProposal returns the proposal.
func GetProposal(proposalID int) Proposal {
	return getProposal(storage.GetReadOnlyContext(), proposalID)
}

// ListProposals returns iterator over all proposals.
func ListProposals() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{proposalPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// GetVote returns the vote of the voter for the proposal.
func GetVote(proposalID int, voter interop.Hash160) Ballot {
	data := common.GetSerialized(storage.GetReadOnlyContext(), voteKey(proposalID, voter))
	if data == nil {
		panic(governanceconst.ErrDoesNotExist)
	}

	return data.(Ballot)
}

// HasVoted returns true if the voter has voted for the proposal.
func HasVoted(proposalID int, voter interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, voteKey(proposalID, voter)) != nil
}

// ProposalCount returns the number of created proposals.
func ProposalCount() int {
	return common.Counter(storage.GetReadOnlyContext(), countKey)
}

// GetOwner returns the contract owner.
func GetOwner() interop.Hash160 {
	return common.Owner(storage.GetReadOnlyContext())
}

// TransferOwnership sets the new contract owner. It can be invoked only by the
// current owner.
func TransferOwnership(newOwner interop.Hash160) bool {
	return common.TransferOwnership(storage.GetContext(), newOwner, governanceconst.ErrNotAuthorized)
}

// RenounceOwnership leaves the contract without an owner.
func RenounceOwnership() bool {
	return common.RenounceOwnership(storage.GetContext(), governanceconst.ErrNotAuthorized)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func reputationOf(ctx storage.Context, addr interop.Hash160) int {
	reputationContract := storage.Get(ctx, reputationContractKey).(interop.Hash160)
	return contract.Call(reputationContract, "balanceOf", contract.ReadOnly, addr).(int)
}

func getConfig(ctx storage.Context, key string) int {
	value := storage.Get(ctx, stringKey(configPrefix, key))
	if value == nil {
		return 0
	}

	return value.(int)
}

func setConfig(ctx storage.Context, key string, value int) {
	storage.Put(ctx, stringKey(configPrefix, key), value)
	runtime.Notify("ConfigChanged", key, value)
}

func getProposal(ctx storage.Context, id int) Proposal {
	data := common.GetSerialized(ctx, idKey(id))
	if data == nil {
		panic(governanceconst.ErrDoesNotExist)
	}

	return data.(Proposal)
}

func putProposal(ctx storage.Context, p Proposal) {
	common.SetSerialized(ctx, idKey(p.ID), p)
}

func idKey(id int) []byte {
	return append([]byte{proposalPrefix}, convert.ToBytes(id)...)
}

func voteKey(id int, voter interop.Hash160) []byte {
	return append(append([]byte{votePrefix}, convert.ToBytes(id)...), voter...)
}

func stringKey(prefix byte, s string) []byte {
	return append([]byte{prefix}, []byte(s)...)
}
