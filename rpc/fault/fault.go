/*
Package fault extracts PeerLedger contract failures from invocation errors.

Every PeerLedger contract aborts execution with a message that starts with a
four-digit code. Thousands of the code identify the contract:

	1xxx  Publication
	2xxx  Review
	3xxx  Reputation
	4xxx  Credential
	5xxx  Governance
*/
package fault

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Component is a contract that produced the failure.
type Component int

// Known components.
const (
	ComponentUnknown Component = iota
	ComponentPublication
	ComponentReview
	ComponentReputation
	ComponentCredential
	ComponentGovernance
)

var componentNames = map[Component]string{
	ComponentUnknown:     "unknown",
	ComponentPublication: "publication",
	ComponentReview:      "review",
	ComponentReputation:  "reputation",
	ComponentCredential:  "credential",
	ComponentGovernance:  "governance",
}

// String implements fmt.Stringer.
func (c Component) String() string {
	if s, ok := componentNames[c]; ok {
		return s
	}
	return componentNames[ComponentUnknown]
}

// Error is a contract failure.
type Error struct {
	Code    int
	Message string
}

// ErrNoFault is returned by Parse if the message carries no contract failure.
var ErrNoFault = errors.New("no contract failure in message")

var faultRegexp = regexp.MustCompile(`(?:^|")([1-5][0-9]{3}) ([^"\n]*)`)

// Error implements error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s contract failure %d: %s", e.Component(), e.Code, e.Message)
}

// Component returns the contract that produced the failure.
func (e *Error) Component() Component {
	c := Component(e.Code / 1000)
	if c < ComponentPublication || c > ComponentGovernance {
		return ComponentUnknown
	}
	return c
}

// Parse finds contract failure in the VM exception message. The failure is
// either the whole message or its first quoted part, the way the node reports
// unhandled exceptions.
func Parse(msg string) (*Error, error) {
	m := faultRegexp.FindStringSubmatch(msg)
	if m == nil {
		return nil, ErrNoFault
	}

	code, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fmt.Errorf("invalid failure code %q: %w", m[1], err)
	}

	return &Error{Code: code, Message: m[2]}, nil
}

// FromError returns contract failure carried by the error or nil if there is
// none.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}

	fe, parseErr := Parse(err.Error())
	if parseErr != nil {
		return nil
	}
	return fe
}

// Is checks whether the error carries the contract failure with the code.
func Is(err error, code int) bool {
	fe := FromError(err)
	return fe != nil && fe.Code == code
}

// Code returns numeric code of the failure message declared by a contract.
// It panics if the message is not a failure message, so it must be used for
// constant messages only.
func Code(msg string) int {
	fe, err := Parse(msg)
	if err != nil {
		panic(fmt.Sprintf("invalid failure message %q", msg))
	}
	return fe.Code
}
