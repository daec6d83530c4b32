/*
Package publicationconst contains constants shared by Publication contract and
its clients.
*/
package publicationconst

// Failure messages of Publication contract. Every message starts with a
// numeric code from the 1000 range.
const (
	ErrNotAuthorized = "1001 not authorized"
	ErrAlreadyExists = "1002 already exists"
	ErrDoesNotExist  = "1003 publication does not exist"
	ErrInvalidStatus = "1004 invalid publication status"
	ErrInvalidInput  = "1005 invalid input"
	ErrListOverflow  = "1006 list overflow"
)

// Publication statuses.
const (
	StatusSubmitted = iota
	StatusUnderReview
	StatusAccepted
	StatusRejected
	StatusPublished
	StatusRetracted
)

const (
	// MaxAuthors is a maximum number of publication authors.
	MaxAuthors = 10
	// MaxKeywords is a maximum number of publication keywords.
	MaxKeywords = 10
	// MaxReviewers is a maximum number of reviewers assigned to a
	// publication.
	MaxReviewers = 10
	// MaxReviews is a maximum number of completed reviews of a publication.
	MaxReviews = 10
)

// IsValidStatus checks whether the status is a known publication status.
func IsValidStatus(status int) bool {
	return status >= StatusSubmitted && status <= StatusRetracted
}

// CanTransition checks whether publication status can be changed from one
// value to another. Statuses only move forward, Rejected and Retracted are
// final.
func CanTransition(from, to int) bool {
	switch from {
	case StatusSubmitted:
		return to == StatusUnderReview || to == StatusRejected
	case StatusUnderReview:
		return to == StatusAccepted || to == StatusRejected
	case StatusAccepted:
		return to == StatusPublished || to == StatusRetracted
	case StatusPublished:
		return to == StatusRetracted
	default:
		return false
	}
}

// IsReviewable checks whether reviewers can be assigned to a publication in
// the status.
func IsReviewable(status int) bool {
	return status == StatusSubmitted || status == StatusUnderReview
}
