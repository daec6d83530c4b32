/*
Package reviewconst contains constants shared by Review contract and its
clients.
*/
package reviewconst

// Failure messages of Review contract. Every message starts with a numeric
// code from the 2000 range.
const (
	ErrNotAuthorized      = "2001 not authorized"
	ErrAlreadyExists      = "2002 reviewer already assigned"
	ErrDoesNotExist       = "2003 does not exist"
	ErrInvalidStatus      = "2004 invalid review status"
	ErrInvalidInput       = "2005 invalid input"
	ErrConflictOfInterest = "2006 conflict of interest"
	ErrNotVerified        = "2007 reviewer is not verified"
	ErrAlreadyRevealed    = "2008 reviewer identity already revealed"
	ErrAlreadyReviewed    = "2009 review already submitted"
	ErrReviewClosed       = "2010 review closed"
)

// Review statuses.
const (
	StatusAssigned = iota
	StatusSubmitted
	StatusRevealed
)

// Review recommendations.
const (
	RecommendationAccept = iota
	RecommendationMinorRevision
	RecommendationMajorRevision
	RecommendationReject
)

const (
	// MinScore is a minimum review score.
	MinScore = 1
	// MaxScore is a maximum review score.
	MaxScore = 5
)

// IsValidScore checks whether the score is within the score range.
func IsValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// IsValidRecommendation checks whether the recommendation is known.
func IsValidRecommendation(r int) bool {
	return r >= RecommendationAccept && r <= RecommendationReject
}
