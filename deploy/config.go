package deploy

import (
	"fmt"
	"math"

	"github.com/peerledger/peerledger-contract/contracts/governance/governanceconst"
)

// Governance configuration keys passed to the Governance contract on deploy.
const (
	MinProposalBalanceConfig = governanceconst.MinProposalBalanceKey
	MinVotingBalanceConfig   = governanceconst.MinVotingBalanceKey
	VotingPeriodConfig       = governanceconst.VotingPeriodKey
	PassThresholdConfig      = governanceconst.PassThresholdKey
)

// GovernanceConfiguration represents initial configuration of the PeerLedger
// Governance contract. Zero values are replaced with contract defaults.
type GovernanceConfiguration struct {
	// Reputation balance (in the smallest token units) required to create a
	// proposal.
	MinProposalBalance uint64
	// Reputation balance (in the smallest token units) required to vote.
	MinVotingBalance uint64
	// Number of blocks proposals accept votes.
	VotingPeriod uint64
	// Percentage of weighted yes votes required for a proposal to pass.
	PassThreshold uint64
}

// DefaultGovernanceConfiguration returns configuration Governance contract
// uses by default.
func DefaultGovernanceConfiguration() GovernanceConfiguration {
	return GovernanceConfiguration{
		MinProposalBalance: governanceconst.DefaultMinProposalBalance,
		MinVotingBalance:   governanceconst.DefaultMinVotingBalance,
		VotingPeriod:       governanceconst.DefaultVotingPeriod,
		PassThreshold:      governanceconst.DefaultPassThreshold,
	}
}

// withDefaults returns the configuration with zero values replaced by
// defaults. MinProposalBalance and MinVotingBalance can't be zeroed this way.
func (c GovernanceConfiguration) withDefaults() GovernanceConfiguration {
	def := DefaultGovernanceConfiguration()
	if c.MinProposalBalance == 0 {
		c.MinProposalBalance = def.MinProposalBalance
	}
	if c.MinVotingBalance == 0 {
		c.MinVotingBalance = def.MinVotingBalance
	}
	if c.VotingPeriod == 0 {
		c.VotingPeriod = def.VotingPeriod
	}
	if c.PassThreshold == 0 {
		c.PassThreshold = def.PassThreshold
	}
	return c
}

// validate checks configuration the same way Governance contract does.
func (c GovernanceConfiguration) validate() error {
	for _, kv := range []struct {
		key   string
		value uint64
	}{
		{MinProposalBalanceConfig, c.MinProposalBalance},
		{MinVotingBalanceConfig, c.MinVotingBalance},
		{VotingPeriodConfig, c.VotingPeriod},
		{PassThresholdConfig, c.PassThreshold},
	} {
		if kv.value > math.MaxInt64 || !governanceconst.IsValidConfigValue(kv.key, int(kv.value)) {
			return fmt.Errorf("invalid %s value %d", kv.key, kv.value)
		}
	}
	return nil
}

func (c GovernanceConfiguration) deployArgs() []any {
	return []any{
		int64(c.MinProposalBalance),
		int64(c.MinVotingBalance),
		int64(c.VotingPeriod),
		int64(c.PassThreshold),
	}
}
