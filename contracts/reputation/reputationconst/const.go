/*
Package reputationconst contains constants shared by Reputation contract and
its clients.
*/
package reputationconst

// Failure messages of Reputation contract. Every message starts with a numeric
// code from the 3000 range.
const (
	ErrNotAuthorized  = "3001 not authorized"
	ErrInvalidAmount  = "3002 invalid amount"
	ErrInvalidInput   = "3003 invalid input"
	ErrTransferFailed = "3004 reputation tokens are not transferable"
)

const (
	// Symbol is a NEP-17 symbol of the reputation token.
	Symbol = "REP"
	// Decimals is a precision of the reputation token.
	Decimals = 6
	// Unit is an amount of one whole token in the smallest units.
	Unit = 1_000_000

	// CategoryReviewQuality is a category of rewards for reviews.
	CategoryReviewQuality = "review-quality"
	// CategoryPublicationAccepted is a category of rewards for accepted
	// publications.
	CategoryPublicationAccepted = "publication-accepted"

	// MaxReviewScore is a maximum quality score of a review.
	MaxReviewScore = 5
	// PublicationReward is a number of whole tokens minted for an accepted
	// publication.
	PublicationReward = 10
)
