/*
Package reputation implements Reputation contract which is deployed to
PeerLedger chain.

Reputation contract stores reputation balances of PeerLedger participants. It
is a NEP-17 compatible contract, so balances can be tracked by N3 compatible
network monitors and wallet software, but tokens are bound to their holders
and can't be transferred. Reputation is minted by the owner and token managers
for quality reviews and accepted publications and is used by Governance
contract as voting weight.

Besides the plain balance, contract keeps a per-category ledger. MintWithCategory
and BurnWithCategory move it by the same amount as the balance, while rewards
credit whole tokens: the review score or the publication reward. Burning more
than has been credited to a category makes the category value negative.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. It is
produced on mint with empty from address and on burn with empty to address.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

ReputationChanged notification. This notification is produced when category
value of an account changes.

	ReputationChanged:
	  - name: account
	    type: Hash160
	  - name: category
	    type: String
	  - name: delta
	    type: Integer
	  - name: value
	    type: Integer

TokenManagerSet notification. This notification is produced when the owner
enables or disables a token manager.

	TokenManagerSet:
	  - name: manager
	    type: Hash160
	  - name: enabled
	    type: Boolean

OwnershipTransferred notification. This notification is produced when the
contract owner changes.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package reputation

/*
Contract storage model.

Current conventions:
 <account>: script hash of a reputation holder
 <category>: arbitrary non-empty string

# Summary
Key-value storage format:
 - 'owner' -> interop.Hash160
   contract owner
 - 'supply' -> int
   total amount of tokens
 - 'b' + <account> -> int
   token balance, removed when it drops to 0
 - 'g' + <account> + <category> -> int
   category value, may be negative
 - 'm' + <manager> -> bool
   token managers allowed to mint and burn
*/
