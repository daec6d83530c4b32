/*
Package governance implements Governance contract which is deployed to
PeerLedger chain.

Governance contract allows PeerLedger participants to change the system by
reputation-weighted voting. Participants with enough reputation in Reputation
contract create proposals. Voting lasts a fixed number of blocks, every vote is
weighted by the current reputation balance of the voter. After the voting
period anyone can finalize the proposal, passed proposals can then be executed.

Proposal types:
  - Parameter proposals change governance configuration or set an arbitrary
    integer parameter.
  - Contract proposals approve a contract.
  - Feature proposals enable a feature named by the proposal title.

# Contract notifications

ProposalCreated notification.

	ProposalCreated:
	  - name: id
	    type: Integer
	  - name: proposer
	    type: Hash160
	  - name: proposalType
	    type: Integer
	  - name: title
	    type: String

VoteCast notification.

	VoteCast:
	  - name: id
	    type: Integer
	  - name: voter
	    type: Hash160
	  - name: support
	    type: Boolean
	  - name: weight
	    type: Integer

ProposalFinalized notification.

	ProposalFinalized:
	  - name: id
	    type: Integer
	  - name: passed
	    type: Boolean
	  - name: yesVotes
	    type: Integer
	  - name: noVotes
	    type: Integer

ProposalExecuted notification.

	ProposalExecuted:
	  - name: id
	    type: Integer
	  - name: executor
	    type: Hash160

ProposalCancelled notification.

	ProposalCancelled:
	  - name: id
	    type: Integer
	  - name: cancelledBy
	    type: Hash160

ConfigChanged notification. This notification is produced on deploy, by
SetConfig and by executed Parameter proposals.

	ConfigChanged:
	  - name: key
	    type: String
	  - name: value
	    type: Integer

OwnershipTransferred notification.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package governance

/*
Contract storage model.

Current conventions:
 <id>: little-endian integer proposal identifier, starting from 1
 <voter>: script hash of the voter

# Summary
Key-value storage format:
 - 'owner' -> interop.Hash160
   contract owner
 - 'r' -> interop.Hash160
   Reputation contract hash
 - 'n' -> int
   number of created proposals, the last allocated identifier
 - 'p' + <id> -> std.Serialize(Proposal)
 - 'v' + <id> + <voter> -> std.Serialize(Ballot)
 - 'g' + <key> -> int
   governance configuration
 - 'x' + <key> -> int
   parameters set by executed Parameter proposals
 - 'a' + <contract> -> int
   contracts approved by executed Contract proposals, value is proposal id
 - 'f' + <feature> -> int
   features enabled by executed Feature proposals, value is proposal id
*/
