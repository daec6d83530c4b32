/*
Package governanceconst contains constants shared by Governance contract and
its clients.
*/
package governanceconst

// Failure messages of Governance contract. Every message starts with a numeric
// code from the 5000 range.
const (
	ErrNotAuthorized     = "5001 not authorized"
	ErrDoesNotExist      = "5002 does not exist"
	ErrInvalidState      = "5003 invalid proposal state"
	ErrVotingActive      = "5003 voting period has not ended"
	ErrInvalidInput      = "5004 invalid input"
	ErrInsufficientVotes = "5005 insufficient reputation"
	ErrVotingEnded       = "5006 voting period has ended"
	ErrAlreadyVoted      = "5007 already voted"
)

// Proposal types.
const (
	TypeParameter = iota
	TypeContract
	TypeFeature
)

// Proposal statuses.
const (
	StatusActive = iota
	StatusPassed
	StatusRejected
	StatusExecuted
)

// Configuration keys.
const (
	// MinProposalBalanceKey is a minimum reputation balance required to
	// create a proposal.
	MinProposalBalanceKey = "MinProposalBalance"
	// MinVotingBalanceKey is a minimum reputation balance required to vote.
	MinVotingBalanceKey = "MinVotingBalance"
	// VotingPeriodKey is a number of blocks proposal accepts votes.
	VotingPeriodKey = "VotingPeriod"
	// PassThresholdKey is a minimum percentage of weighted yes votes required
	// for a proposal to pass.
	PassThresholdKey = "PassThreshold"
)

// Default configuration values.
const (
	DefaultMinProposalBalance = 100_000_000
	DefaultMinVotingBalance   = 1_000_000
	DefaultVotingPeriod       = 10
	DefaultPassThreshold      = 51
)

// IsValidType checks whether the proposal type is known.
func IsValidType(t int) bool {
	return t >= TypeParameter && t <= TypeFeature
}

// IsConfigKey checks whether the key is a governance configuration key.
func IsConfigKey(key string) bool {
	return key == MinProposalBalanceKey || key == MinVotingBalanceKey ||
		key == VotingPeriodKey || key == PassThresholdKey
}

// IsValidConfigValue checks whether the value can be set for the
// configuration key.
func IsValidConfigValue(key string, value int) bool {
	switch key {
	case MinProposalBalanceKey, MinVotingBalanceKey:
		return value >= 0
	case VotingPeriodKey:
		return value > 0
	case PassThresholdKey:
		return value > 0 && value <= 100
	default:
		return false
	}
}

// IsPassed checks whether weighted votes reach the pass threshold. Proposals
// without votes never pass.
func IsPassed(yes, no, threshold int) bool {
	total := yes + no
	if total == 0 {
		return false
	}

	return yes*100/total >= threshold
}
