package publicationconst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := map[int][]int{
		StatusSubmitted:   {StatusUnderReview, StatusRejected},
		StatusUnderReview: {StatusAccepted, StatusRejected},
		StatusAccepted:    {StatusPublished, StatusRetracted},
		StatusPublished:   {StatusRetracted},
	}

	for from := StatusSubmitted; from <= StatusRetracted; from++ {
		for to := StatusSubmitted; to <= StatusRetracted; to++ {
			expected := false
			for _, s := range allowed[from] {
				if s == to {
					expected = true
				}
			}
			require.Equal(t, expected, CanTransition(from, to), "%d -> %d", from, to)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	require.True(t, IsValidStatus(StatusSubmitted))
	require.True(t, IsValidStatus(StatusRetracted))
	require.False(t, IsValidStatus(-1))
	require.False(t, IsValidStatus(StatusRetracted+1))
}
