package main

import (
	"math/big"
	"testing"

	"github.com/peerledger/peerledger-contract/contracts/publication/publicationconst"
	"github.com/peerledger/peerledger-contract/contracts/review/reviewconst"
	"github.com/stretchr/testify/require"
)

func TestEnum(t *testing.T) {
	v, err := publicationStatuses.parse("Under-Review")
	require.NoError(t, err)
	require.Equal(t, publicationconst.StatusUnderReview, v)

	v, err = recommendations.parse("3")
	require.NoError(t, err)
	require.Equal(t, reviewconst.RecommendationReject, v)

	for _, s := range []string{"", "4", "-1", "approve"} {
		_, err = recommendations.parse(s)
		require.Error(t, err, s)
	}

	require.Equal(t, "minor-revision", recommendations.name(big.NewInt(reviewconst.RecommendationMinorRevision)))
	require.Equal(t, "17", reviewStatuses.name(big.NewInt(17)))
	require.Equal(t, "<nil>", reviewStatuses.name(nil))

	require.Equal(t, []string{"parameter", "contract", "feature"}, proposalTypes.names())
	require.Equal(t, []string{"active", "passed", "rejected", "executed"}, proposalStatuses.names())
}
