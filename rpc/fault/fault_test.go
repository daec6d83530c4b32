package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/peerledger/peerledger-contract/contracts/credential/credentialconst"
	"github.com/peerledger/peerledger-contract/contracts/governance/governanceconst"
	"github.com/peerledger/peerledger-contract/contracts/publication/publicationconst"
	"github.com/peerledger/peerledger-contract/contracts/reputation/reputationconst"
	"github.com/peerledger/peerledger-contract/contracts/review/reviewconst"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		msg       string
		code      int
		message   string
		component Component
	}{
		{publicationconst.ErrDoesNotExist, 1003, "publication does not exist", ComponentPublication},
		{reviewconst.ErrConflictOfInterest, 2006, "conflict of interest", ComponentReview},
		{reputationconst.ErrTransferFailed, 3004, "reputation tokens are not transferable", ComponentReputation},
		{credentialconst.ErrExpired, 4005, "credentials expired", ComponentCredential},
		{governanceconst.ErrAlreadyVoted, 5007, "already voted", ComponentGovernance},
		{`at instruction 1021 (THROW): unhandled exception: "2009 review already submitted"`,
			2009, "review already submitted", ComponentReview},
	} {
		t.Run(tc.msg, func(t *testing.T) {
			fe, err := Parse(tc.msg)
			require.NoError(t, err)
			require.Equal(t, tc.code, fe.Code)
			require.Equal(t, tc.message, fe.Message)
			require.Equal(t, tc.component, fe.Component())
		})
	}

	for _, msg := range []string{"", "not authorized", "at instruction 10 (THROW): 12 bad", "6001 unknown"} {
		_, err := Parse(msg)
		require.ErrorIs(t, err, ErrNoFault, msg)
	}
}

func TestFromError(t *testing.T) {
	require.Nil(t, FromError(nil))
	require.Nil(t, FromError(errors.New("connection refused")))

	err := fmt.Errorf("invoke: %w", errors.New(`unhandled exception: "`+credentialconst.ErrNotAuthorized+`"`))
	fe := FromError(err)
	require.NotNil(t, fe)
	require.Equal(t, 4001, fe.Code)
	require.True(t, Is(err, 4001))
	require.False(t, Is(err, 4002))

	wrapped := fmt.Errorf("submit: %w", &Error{Code: 1005, Message: "invalid input"})
	require.True(t, Is(wrapped, Code(publicationconst.ErrInvalidInput)))
	require.Equal(t, "publication contract failure 1005: invalid input", FromError(wrapped).Error())
}

func TestCode(t *testing.T) {
	require.Equal(t, 5003, Code(governanceconst.ErrVotingActive))
	require.Equal(t, 5003, Code(governanceconst.ErrInvalidState))
	require.Panics(t, func() { Code("invalid") })
}

func TestComponent_String(t *testing.T) {
	require.Equal(t, "review", ComponentReview.String())
	require.Equal(t, "unknown", Component(42).String())
	require.Equal(t, ComponentUnknown, (&Error{Code: 9001}).Component())
}
