/*
Package credential implements Credential contract which is deployed to
PeerLedger chain.

Credential contract is a registry of academic credentials of PeerLedger
participants. Users submit their roles, expertise fields and institution
together with a hash of the supporting documents. Credentials become valid
after a trusted verifier checks them. Verifiers are managed by the contract
owner. Only users with valid credentials can be assigned as reviewers.

# Contract notifications

CredentialsSubmitted notification. This notification is produced when a user
submits new credentials.

	CredentialsSubmitted:
	  - name: user
	    type: Hash160
	  - name: institution
	    type: String

CredentialsVerified notification. This notification is produced when a trusted
verifier verifies credentials. Expiration block is 0 for credentials that never
expire.

	CredentialsVerified:
	  - name: user
	    type: Hash160
	  - name: verifier
	    type: Hash160
	  - name: expiresAt
	    type: Integer

CredentialsRevoked notification. This notification is produced when the owner
or a trusted verifier revokes credentials.

	CredentialsRevoked:
	  - name: user
	    type: Hash160
	  - name: revokedBy
	    type: Hash160

CredentialsUpdated notification. This notification is produced when a user
updates credentials. Updated credentials must be verified again.

	CredentialsUpdated:
	  - name: user
	    type: Hash160

VerifierAdded and VerifierRemoved notifications. These notifications are
produced when the owner changes the set of trusted verifiers.

	VerifierAdded:
	  - name: verifier
	    type: Hash160
	VerifierRemoved:
	  - name: verifier
	    type: Hash160

OwnershipTransferred notification. This notification is produced when the
contract owner changes.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package credential

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'owner' -> interop.Hash160
   contract owner
 - 'c' + user -> std.Serialize(Credentials)
   credentials of the user
 - 'v' + verifier -> bool
   trusted verifiers
*/
