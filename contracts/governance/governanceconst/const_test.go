package governanceconst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPassed(t *testing.T) {
	testCases := []struct {
		name      string
		yes, no   int
		threshold int
		passed    bool
	}{
		{"no votes", 0, 0, 51, false},
		{"unanimous", 10, 0, 51, true},
		{"exactly at threshold", 51, 49, 51, true},
		{"below threshold", 50, 50, 51, false},
		{"rounded down", 2, 1, 67, false},
		{"low threshold", 1, 99, 1, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.passed, IsPassed(tc.yes, tc.no, tc.threshold))
		})
	}
}

func TestIsValidConfigValue(t *testing.T) {
	require.True(t, IsValidConfigValue(PassThresholdKey, 100))
	require.False(t, IsValidConfigValue(PassThresholdKey, 0))
	require.False(t, IsValidConfigValue(PassThresholdKey, 101))
	require.True(t, IsValidConfigValue(MinVotingBalanceKey, 0))
	require.False(t, IsValidConfigValue(VotingPeriodKey, 0))
	require.False(t, IsValidConfigValue("Unknown", 1))
	require.False(t, IsConfigKey("Unknown"))
}
