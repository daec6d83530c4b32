package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/peerledger/peerledger-contract/rpc/review"
	"github.com/urfave/cli"
)

func reviewCommands() cli.Command {
	scoreFlag := func(name string) cli.Flag {
		return cli.Uint64Flag{Name: name, Usage: fmt.Sprintf("%s score from 1 to 5", name)}
	}

	return cli.Command{
		Name:  "review",
		Usage: "Run blind peer review of publications",
		Subcommands: []cli.Command{
			{
				Name:  "assign",
				Usage: "Assign reviewer to the publication",
				Flags: []cli.Flag{
					cli.Uint64Flag{Name: "publication", Usage: "Publication ID"},
					accountFlag("reviewer", "Reviewer account"),
					cli.Uint64Flag{Name: "deadline", Usage: "Last block to submit the review at"},
				},
				Action: assignReviewer,
			},
			{
				Name:  "submit",
				Usage: "Submit review of the publication by the signing account",
				Flags: []cli.Flag{
					cli.Uint64Flag{Name: "publication", Usage: "Publication ID"},
					cli.StringFlag{Name: "reviewer-hash", Usage: "Anonymized reviewer hash (hex), random salted hash of the signer by default"},
					cli.StringFlag{Name: "recommendation", Usage: "One of: " + joinNames(recommendations)},
					cli.StringFlag{Name: "comments", Usage: "Review comments"},
					scoreFlag("confidence"),
					scoreFlag("technical"),
					scoreFlag("novelty"),
					scoreFlag("clarity"),
					cli.StringFlag{Name: "metadata", Usage: "Hash of the extended review document (hex or IPFS CIDv0)"},
				},
				Action: submitReview,
			},
			{
				Name:   "reveal",
				Usage:  "Reveal identity of the review author",
				Flags:  []cli.Flag{idFlag("Review ID")},
				Action: revealReviewer,
			},
			{
				Name:  "show",
				Usage: "Show review",
				Flags: []cli.Flag{
					idFlag("Review ID"),
					cli.BoolFlag{Name: "complete", Usage: "Show complete review as its author or the contract owner"},
				},
				Action: showReview,
			},
		},
	}
}

func openReview(c *cli.Context, signer bool) (*env, *review.Contract, error) {
	e, err := openEnv(c, signer)
	if err != nil {
		return nil, nil, err
	}

	h, err := e.contract("review")
	if err != nil {
		e.close()
		return nil, nil, err
	}

	if !signer {
		return e, &review.Contract{ContractReader: *review.NewReader(e.inv, h)}, nil
	}

	return e, review.New(e.act, h), nil
}

func assignReviewer(c *cli.Context) error {
	pubID, err := requireUint(c, "publication")
	if err != nil {
		return err
	}

	reviewer, err := requireAccount(c, "reviewer")
	if err != nil {
		return err
	}

	deadline, err := requireUint(c, "deadline")
	if err != nil {
		return err
	}

	e, contract, err := openReview(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	_, err = e.await(contract.AssignReviewer(e.sender(), pubID, reviewer, deadline))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Reviewer %s assigned to publication #%s until block %s\n",
		address.Uint160ToString(reviewer), pubID, deadline)

	return nil
}

// saltedReviewerHash returns anonymized hash of the reviewer account.
func saltedReviewerHash(reviewer util.Uint160, salt uuid.UUID) util.Uint256 {
	return hash.Sha256(append(reviewer.BytesBE(), salt[:]...))
}

type reviewScores struct {
	confidence, technical, novelty, clarity *big.Int
}

func readScores(c *cli.Context) (reviewScores, error) {
	var (
		res reviewScores
		err error
	)

	for _, s := range []struct {
		name string
		dst  **big.Int
	}{
		{"confidence", &res.confidence},
		{"technical", &res.technical},
		{"novelty", &res.novelty},
		{"clarity", &res.clarity},
	} {
		*s.dst, err = requireUint(c, s.name)
		if err != nil {
			return res, err
		}
	}

	return res, nil
}

func submitReview(c *cli.Context) error {
	pubID, err := requireUint(c, "publication")
	if err != nil {
		return err
	}

	rec, err := requireString(c, "recommendation")
	if err != nil {
		return err
	}

	recommendation, err := recommendations.parse(rec)
	if err != nil {
		return fmt.Errorf("--recommendation: %w", err)
	}

	scores, err := readScores(c)
	if err != nil {
		return err
	}

	metadata, err := optionalContentHash(c, "metadata")
	if err != nil {
		return err
	}

	var reviewerHash util.Uint256
	if s := c.String("reviewer-hash"); s != "" {
		reviewerHash, err = util.Uint256DecodeStringBE(s)
		if err != nil {
			return fmt.Errorf("--reviewer-hash: %w", err)
		}
	}

	e, contract, err := openReview(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	if reviewerHash.Equals(util.Uint256{}) {
		salt := uuid.New()
		reviewerHash = saltedReviewerHash(e.sender(), salt)
		fmt.Fprintf(c.App.Writer, "Reviewer hash salt (keep it to prove authorship): %s\n", salt)
	}

	log, err := e.await(contract.SubmitReview(e.sender(), pubID, reviewerHash, big.NewInt(int64(recommendation)),
		c.String("comments"), scores.confidence, scores.technical, scores.novelty, scores.clarity, metadata))
	if err != nil {
		return err
	}

	evs, err := review.ReviewSubmittedEventsFromApplicationLog(log)
	if err != nil {
		return fmt.Errorf("decode submission event: %w", err)
	}
	if len(evs) == 0 {
		return errors.New("review submitted, but no submission event found")
	}

	fmt.Fprintf(c.App.Writer, "Review #%s of publication #%s submitted, reviewer hash %s\n",
		evs[0].ReviewId, evs[0].PublicationId, evs[0].ReviewerHash.StringBE())

	return nil
}

func revealReviewer(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	e, contract, err := openReview(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	_, err = e.await(contract.RevealReviewerIdentity(e.sender(), id))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Reviewer of review #%s revealed\n", id)

	return nil
}

type reviewView struct {
	ID             uint64 `yaml:"id"`
	PublicationID  uint64 `yaml:"publication_id"`
	Reviewer       string `yaml:"reviewer,omitempty"`
	ReviewerHash   string `yaml:"reviewer_hash"`
	Recommendation string `yaml:"recommendation"`
	Comments       string `yaml:"comments"`
	Status         string `yaml:"status"`
	SubmittedAt    uint64 `yaml:"submitted_at"`
	RevealedAt     uint64 `yaml:"revealed_at,omitempty"`
	Confidence     uint64 `yaml:"confidence"`
	Technical      uint64 `yaml:"technical"`
	Novelty        uint64 `yaml:"novelty"`
	Clarity        uint64 `yaml:"clarity"`
	MetadataHash   string `yaml:"metadata_hash,omitempty"`
}

func newReviewView(r *review.ReviewReview) reviewView {
	v := reviewView{
		ID:             uint64Of(r.ID),
		PublicationID:  uint64Of(r.PublicationID),
		ReviewerHash:   r.ReviewerHash.StringBE(),
		Recommendation: recommendations.name(r.Recommendation),
		Comments:       r.Comments,
		Status:         reviewStatuses.name(r.Status),
		SubmittedAt:    uint64Of(r.SubmittedAt),
		RevealedAt:     uint64Of(r.RevealedAt),
		Confidence:     uint64Of(r.Confidence),
		Technical:      uint64Of(r.Technical),
		Novelty:        uint64Of(r.Novelty),
		Clarity:        uint64Of(r.Clarity),
	}

	if !r.Reviewer.Equals(util.Uint160{}) {
		v.Reviewer = address.Uint160ToString(r.Reviewer)
	}

	if !r.MetadataHash.Equals(util.Uint256{}) {
		v.MetadataHash = r.MetadataHash.StringBE()
	}

	return v
}

func showReview(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	complete := c.Bool("complete")

	e, contract, err := openReview(c, complete)
	if err != nil {
		return err
	}
	defer e.close()

	var r *review.ReviewReview
	if complete {
		r, err = contract.GetReviewComplete(e.sender(), id)
	} else {
		r, err = contract.GetReviewPublic(id)
	}
	if err != nil {
		return contractError(err)
	}

	return printYAML(c, newReviewView(r))
}
