/*
Package publication implements Publication contract which is deployed to
PeerLedger chain.

Publication contract is a registry of scientific publications. Every
publication has a list of authors, a hash of its content stored off-chain,
searchable metadata and a review tracking record with assigned reviewers and
submitted reviews. Publication status moves forward only:

	Submitted -> UnderReview | Rejected
	UnderReview -> Accepted | Rejected
	Accepted -> Published | Retracted
	Published -> Retracted

Review contract registered with SetReviewContract assigns reviewers and links
submitted reviews to publications. Reviewers it assigns hold review
assignments, so AssignReviewers keeps them when it replaces the reviewer list.

# Contract notifications

PublicationRegistered notification. This notification is produced when an
author registers a publication.

	PublicationRegistered:
	  - name: id
	    type: Integer
	  - name: submitter
	    type: Hash160
	  - name: contentHash
	    type: Hash256

PublicationStatusChanged notification. This notification is produced on every
status change including implicit move to UnderReview on reviewer assignment.

	PublicationStatusChanged:
	  - name: id
	    type: Integer
	  - name: oldStatus
	    type: Integer
	  - name: newStatus
	    type: Integer

JournalAssigned notification.

	JournalAssigned:
	  - name: id
	    type: Integer
	  - name: journal
	    type: Hash160

DOIAssigned notification.

	DOIAssigned:
	  - name: id
	    type: Integer
	  - name: doi
	    type: String

ReviewersAssigned notification. It contains the full list of reviewers
assigned to the publication.

	ReviewersAssigned:
	  - name: id
	    type: Integer
	  - name: reviewers
	    type: Array

ReviewCompleted notification.

	ReviewCompleted:
	  - name: id
	    type: Integer
	  - name: reviewId
	    type: Integer

ContentHashUpdated notification.

	ContentHashUpdated:
	  - name: id
	    type: Integer
	  - name: contentHash
	    type: Hash256

OwnershipTransferred notification.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package publication

/*
Contract storage model.

Current conventions:
 <id>: little-endian integer publication identifier, starting from 1

# Summary
Key-value storage format:
 - 'owner' -> interop.Hash160
   contract owner
 - 'n' -> int
   number of registered publications, the last allocated identifier
 - 'r' -> interop.Hash160
   Review contract hash
 - 'p' + <id> -> std.Serialize(Publication)
 - 'm' + <id> -> std.Serialize(Metadata)
 - 't' + <id> -> std.Serialize(ReviewTracking)
 - 'a' + <id> + interop.Hash160 -> true
   reviewer assigned by Review contract, never dropped by AssignReviewers
*/
