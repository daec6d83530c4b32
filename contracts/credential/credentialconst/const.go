/*
Package credentialconst contains constants shared by Credential contract and
its clients.
*/
package credentialconst

// Failure messages of Credential contract. Every message starts with a numeric
// code from the 4000 range.
const (
	ErrNotAuthorized = "4001 not authorized"
	ErrAlreadyExists = "4002 credentials already exist"
	ErrDoesNotExist  = "4003 credentials do not exist"
	ErrInvalidInput  = "4004 invalid input"
	ErrExpired       = "4005 credentials expired"
	ErrRevoked       = "4006 credentials revoked"
	ErrInvalidProof  = "4007 invalid proof"
)

const (
	// MaxRoles is a maximum number of roles in credentials.
	MaxRoles = 5
	// MaxFields is a maximum number of expertise fields in credentials.
	MaxFields = 10
)
