package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/peerledger/peerledger-contract/internal/ipfs"
	"github.com/peerledger/peerledger-contract/rpc/publication"
	"github.com/urfave/cli"
)

func publicationCommands() cli.Command {
	return cli.Command{
		Name:  "publication",
		Usage: "Manage research publications",
		Subcommands: []cli.Command{
			{
				Name:  "register",
				Usage: "Register new publication submitted by the signing account",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "title", Usage: "Publication title"},
					cli.StringFlag{Name: "abstract", Usage: "Publication abstract"},
					cli.StringSliceFlag{Name: "author", Usage: "Author account, may be repeated; defaults to the signer"},
					cli.StringFlag{Name: "content", Usage: "Content hash (hex or IPFS CIDv0)"},
					cli.StringSliceFlag{Name: "keyword", Usage: "Keyword, may be repeated"},
					cli.StringFlag{Name: "field", Usage: "Research field"},
					cli.StringFlag{Name: "extra", Usage: "Arbitrary extra metadata"},
				},
				Action: registerPublication,
			},
			{
				Name:  "status",
				Usage: "Change publication status",
				Flags: []cli.Flag{
					idFlag("Publication ID"),
					cli.StringFlag{Name: "status", Usage: "New status: " + joinNames(publicationStatuses)},
				},
				Action: updatePublicationStatus,
			},
			{
				Name:   "show",
				Usage:  "Show publication with its metadata and review tracking",
				Flags:  []cli.Flag{idFlag("Publication ID")},
				Action: showPublication,
			},
			{
				Name:  "set-doi",
				Usage: "Set DOI of the published publication",
				Flags: []cli.Flag{
					idFlag("Publication ID"),
					cli.StringFlag{Name: "doi", Usage: "Digital Object Identifier"},
				},
				Action: setPublicationDOI,
			},
			{
				Name:  "update-hash",
				Usage: "Update content hash of the publication",
				Flags: []cli.Flag{
					idFlag("Publication ID"),
					cli.StringFlag{Name: "content", Usage: "New content hash (hex or IPFS CIDv0)"},
				},
				Action: updatePublicationHash,
			},
			{
				Name:  "assign-journal",
				Usage: "Assign publication to the journal",
				Flags: []cli.Flag{
					idFlag("Publication ID"),
					accountFlag("journal", "Journal account"),
				},
				Action: assignJournal,
			},
		},
	}
}

func openPublication(c *cli.Context, signer bool) (*env, *publication.Contract, error) {
	e, err := openEnv(c, signer)
	if err != nil {
		return nil, nil, err
	}

	h, err := e.contract("publication")
	if err != nil {
		e.close()
		return nil, nil, err
	}

	if !signer {
		return e, &publication.Contract{ContractReader: *publication.NewReader(e.inv, h)}, nil
	}

	return e, publication.New(e.act, h), nil
}

func registerPublication(c *cli.Context) error {
	title, err := requireString(c, "title")
	if err != nil {
		return err
	}

	content, err := requireContentHash(c, "content")
	if err != nil {
		return err
	}

	var authors []util.Uint160
	for _, s := range c.StringSlice("author") {
		h, err := parseHash160(s)
		if err != nil {
			return fmt.Errorf("--author: %w", err)
		}
		authors = append(authors, h)
	}

	e, contract, err := openPublication(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	if len(authors) == 0 {
		authors = []util.Uint160{e.sender()}
	}

	log, err := e.await(contract.RegisterPublication(e.sender(), title, c.String("abstract"), authors, content,
		c.StringSlice("keyword"), c.String("field"), c.String("extra")))
	if err != nil {
		return err
	}

	evs, err := publication.PublicationRegisteredEventsFromApplicationLog(log)
	if err != nil {
		return fmt.Errorf("decode registration event: %w", err)
	}
	if len(evs) == 0 {
		return errors.New("publication registered, but no registration event found")
	}

	fmt.Fprintf(c.App.Writer, "Publication #%s registered, content %s\n", evs[0].ID, ipfs.FormatCIDv0(evs[0].ContentHash))

	return nil
}

func updatePublicationStatus(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	s, err := requireString(c, "status")
	if err != nil {
		return err
	}

	status, err := publicationStatuses.parse(s)
	if err != nil {
		return fmt.Errorf("--status: %w", err)
	}

	e, contract, err := openPublication(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	log, err := e.await(contract.UpdatePublicationStatus(e.sender(), id, big.NewInt(int64(status))))
	if err != nil {
		return err
	}

	evs, err := publication.PublicationStatusChangedEventsFromApplicationLog(log)
	if err == nil && len(evs) > 0 {
		fmt.Fprintf(c.App.Writer, "Publication #%s: %s -> %s\n", id,
			publicationStatuses.name(evs[0].OldStatus), publicationStatuses.name(evs[0].NewStatus))
	}

	return nil
}

type publicationView struct {
	ID          uint64   `yaml:"id"`
	Title       string   `yaml:"title"`
	Abstract    string   `yaml:"abstract"`
	Authors     []string `yaml:"authors"`
	ContentHash string   `yaml:"content_hash"`
	CID         string   `yaml:"cid"`
	Status      string   `yaml:"status"`
	SubmittedAt uint64   `yaml:"submitted_at"`
	UpdatedAt   uint64   `yaml:"updated_at"`
	Journal     string   `yaml:"journal,omitempty"`
	DOI         string   `yaml:"doi,omitempty"`

	Keywords []string `yaml:"keywords"`
	Field    string   `yaml:"field"`
	Extra    string   `yaml:"extra,omitempty"`

	Reviewers        []string `yaml:"reviewers"`
	CompletedReviews []uint64 `yaml:"completed_reviews"`
	ReviewDeadline   uint64   `yaml:"review_deadline,omitempty"`
}

func newPublicationView(p *publication.PublicationPublication, m *publication.PublicationMetadata, rt *publication.PublicationReviewTracking) publicationView {
	v := publicationView{
		ID:          uint64Of(p.ID),
		Title:       p.Title,
		Abstract:    p.Abstract,
		Authors:     addresses(p.Authors),
		ContentHash: p.ContentHash.StringBE(),
		CID:         ipfs.FormatCIDv0(p.ContentHash),
		Status:      publicationStatuses.name(p.Status),
		SubmittedAt: uint64Of(p.SubmittedAt),
		UpdatedAt:   uint64Of(p.UpdatedAt),
		DOI:         p.DOI,

		Keywords: m.Keywords,
		Field:    m.Field,
		Extra:    m.Extra,

		Reviewers:      addresses(rt.AssignedReviewers),
		ReviewDeadline: uint64Of(rt.Deadline),
	}

	if !p.Journal.Equals(util.Uint160{}) {
		v.Journal = address.Uint160ToString(p.Journal)
	}

	for i := range rt.CompletedReviews {
		v.CompletedReviews = append(v.CompletedReviews, uint64Of(rt.CompletedReviews[i]))
	}

	return v
}

func addresses(hs []util.Uint160) []string {
	res := make([]string, len(hs))
	for i := range hs {
		res[i] = address.Uint160ToString(hs[i])
	}
	return res
}

func showPublication(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	e, contract, err := openPublication(c, false)
	if err != nil {
		return err
	}
	defer e.close()

	p, err := contract.GetPublication(id)
	if err != nil {
		return contractError(err)
	}

	m, err := contract.GetPublicationMetadata(id)
	if err != nil {
		return contractError(err)
	}

	rt, err := contract.GetReviewTracking(id)
	if err != nil {
		return contractError(err)
	}

	return printYAML(c, newPublicationView(p, m, rt))
}

func setPublicationDOI(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	doi, err := requireString(c, "doi")
	if err != nil {
		return err
	}

	e, contract, err := openPublication(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	_, err = e.await(contract.SetPublicationDOI(e.sender(), id, doi))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Publication #%s DOI set to %s\n", id, doi)

	return nil
}

func updatePublicationHash(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	content, err := requireContentHash(c, "content")
	if err != nil {
		return err
	}

	e, contract, err := openPublication(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	_, err = e.await(contract.UpdatePublicationIpfsHash(e.sender(), id, content))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Publication #%s content updated to %s\n", id, ipfs.FormatCIDv0(content))

	return nil
}

func assignJournal(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	journal, err := requireAccount(c, "journal")
	if err != nil {
		return err
	}

	e, contract, err := openPublication(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	_, err = e.await(contract.AssignToJournal(e.sender(), id, journal))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Publication #%s assigned to journal %s\n", id, address.Uint160ToString(journal))

	return nil
}
