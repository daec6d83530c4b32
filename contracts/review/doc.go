/*
Package review implements Review contract which is deployed to PeerLedger
chain.

Review contract implements blind peer review of publications registered in
Publication contract. The owner assigns reviewers that have valid credentials
in Credential contract and are not authors of the publication. Assigned
reviewers submit a single review each before the deadline. Reviews are public,
but the reviewer is identified only by a hash until the reviewer decides to
reveal identity.

# Contract notifications

ReviewerAssigned notification. This notification is produced when the owner
assigns a reviewer to a publication.

	ReviewerAssigned:
	  - name: publicationId
	    type: Integer
	  - name: reviewer
	    type: Hash160
	  - name: deadline
	    type: Integer

ReviewSubmitted notification. This notification is produced when a reviewer
submits a review. It never contains the actual reviewer address.

	ReviewSubmitted:
	  - name: reviewId
	    type: Integer
	  - name: publicationId
	    type: Integer
	  - name: reviewerHash
	    type: Hash256

ReviewerRevealed notification. This notification is produced when a reviewer
reveals identity.

	ReviewerRevealed:
	  - name: reviewId
	    type: Integer
	  - name: reviewer
	    type: Hash160

OwnershipTransferred notification.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package review

/*
Contract storage model.

Current conventions:
 <publication>: little-endian integer publication identifier
 <reviewer>: script hash of the reviewer
 <id>: little-endian integer review identifier, starting from 1

# Summary
Key-value storage format:
 - 'owner' -> interop.Hash160
   contract owner
 - 'c' -> interop.Hash160
   Credential contract hash
 - 'p' -> interop.Hash160
   Publication contract hash
 - 'n' -> int
   number of submitted reviews, the last allocated identifier
 - 'a' + <publication> + <reviewer> -> std.Serialize(Assignment)
 - 'r' + <id> -> std.Serialize(Review)
*/
