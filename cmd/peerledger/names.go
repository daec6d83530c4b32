package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/peerledger/peerledger-contract/contracts/governance/governanceconst"
	"github.com/peerledger/peerledger-contract/contracts/publication/publicationconst"
	"github.com/peerledger/peerledger-contract/contracts/review/reviewconst"
)

// enum maps contract enumerations to human-readable names.
type enum map[int]string

var (
	publicationStatuses = enum{
		publicationconst.StatusSubmitted:   "submitted",
		publicationconst.StatusUnderReview: "under-review",
		publicationconst.StatusAccepted:    "accepted",
		publicationconst.StatusRejected:    "rejected",
		publicationconst.StatusPublished:   "published",
		publicationconst.StatusRetracted:   "retracted",
	}

	reviewStatuses = enum{
		reviewconst.StatusAssigned:  "assigned",
		reviewconst.StatusSubmitted: "submitted",
		reviewconst.StatusRevealed:  "revealed",
	}

	recommendations = enum{
		reviewconst.RecommendationAccept:        "accept",
		reviewconst.RecommendationMinorRevision: "minor-revision",
		reviewconst.RecommendationMajorRevision: "major-revision",
		reviewconst.RecommendationReject:        "reject",
	}

	proposalTypes = enum{
		governanceconst.TypeParameter: "parameter",
		governanceconst.TypeContract:  "contract",
		governanceconst.TypeFeature:   "feature",
	}

	proposalStatuses = enum{
		governanceconst.StatusActive:   "active",
		governanceconst.StatusPassed:   "passed",
		governanceconst.StatusRejected: "rejected",
		governanceconst.StatusExecuted: "executed",
	}
)

// parse accepts either the name or the number of the value.
func (x enum) parse(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for v, name := range x {
		if name == s {
			return v, nil
		}
	}

	v, err := strconv.Atoi(s)
	if err == nil {
		if _, ok := x[v]; ok {
			return v, nil
		}
	}

	return 0, fmt.Errorf("unknown value '%s', expected one of: %s", s, strings.Join(x.names(), ", "))
}

// name returns name of the value or its number if the value is unknown.
func (x enum) name(v *big.Int) string {
	if v != nil && v.IsInt64() {
		if name, ok := x[int(v.Int64())]; ok {
			return name
		}
	}
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

// names returns names ordered by values.
func (x enum) names() []string {
	res := make([]string, 0, len(x))
	for i := 0; len(res) < len(x); i++ {
		if name, ok := x[i]; ok {
			res = append(res, name)
		}
	}
	return res
}

func joinNames(x enum) string {
	return strings.Join(x.names(), ", ")
}
