package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/peerledger/peerledger-contract/contracts/governance/governanceconst"
	"github.com/peerledger/peerledger-contract/rpc/governance"
	"github.com/urfave/cli"
)

func governanceCommands() cli.Command {
	return cli.Command{
		Name:  "governance",
		Usage: "Participate in reputation-weighted governance",
		Subcommands: []cli.Command{
			{
				Name:  "propose",
				Usage: "Create proposal on behalf of the signing account",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "title", Usage: "Proposal title, also the feature name of feature proposals"},
					cli.StringFlag{Name: "description", Usage: "Proposal description"},
					cli.StringFlag{Name: "type", Usage: "Proposal type: " + joinNames(proposalTypes)},
					cli.StringFlag{Name: "key", Usage: "Parameter key of parameter proposals"},
					cli.Int64Flag{Name: "value", Usage: "Parameter value of parameter proposals"},
					accountFlag("contract", "Contract to approve by contract proposals"),
					cli.StringFlag{Name: "payload", Usage: "Hex-encoded proposal payload"},
				},
				Action: createProposal,
			},
			{
				Name:  "vote",
				Usage: "Vote for the proposal with the reputation of the signing account",
				Flags: []cli.Flag{
					idFlag("Proposal ID"),
					cli.BoolFlag{Name: "against", Usage: "Vote against the proposal"},
				},
				Action: voteProposal,
			},
			{
				Name:   "finalize",
				Usage:  "Finalize proposal after its voting period",
				Flags:  []cli.Flag{idFlag("Proposal ID")},
				Action: finalizeProposal,
			},
			{
				Name:   "execute",
				Usage:  "Execute passed proposal",
				Flags:  []cli.Flag{idFlag("Proposal ID")},
				Action: executeProposal,
			},
			{
				Name:   "cancel",
				Usage:  "Cancel active proposal",
				Flags:  []cli.Flag{idFlag("Proposal ID")},
				Action: cancelProposal,
			},
			{
				Name:   "show",
				Usage:  "Show proposal",
				Flags:  []cli.Flag{idFlag("Proposal ID")},
				Action: showProposal,
			},
			{
				Name:   "list",
				Usage:  "List all proposals",
				Action: listProposals,
			},
		},
	}
}

func openGovernance(c *cli.Context, signer bool) (*env, *governance.Contract, error) {
	e, err := openEnv(c, signer)
	if err != nil {
		return nil, nil, err
	}

	h, err := e.contract("governance")
	if err != nil {
		e.close()
		return nil, nil, err
	}

	if !signer {
		return e, &governance.Contract{ContractReader: *governance.NewReader(e.inv, h)}, nil
	}

	return e, governance.New(e.act, h), nil
}

type proposalPrm struct {
	title, description string
	typ                int
	key                string
	value              *big.Int
	contract           util.Uint160
	payload            []byte
}

func readProposalPrm(c *cli.Context) (proposalPrm, error) {
	var (
		res proposalPrm
		err error
	)

	res.title, err = requireString(c, "title")
	if err != nil {
		return res, err
	}

	res.description = c.String("description")

	s, err := requireString(c, "type")
	if err != nil {
		return res, err
	}

	res.typ, err = proposalTypes.parse(s)
	if err != nil {
		return res, fmt.Errorf("--type: %w", err)
	}

	res.key = c.String("key")
	res.value = big.NewInt(c.Int64("value"))
	res.payload = []byte{}

	switch res.typ {
	case governanceconst.TypeParameter:
		if res.key == "" {
			return res, errors.New("parameter proposal requires --key")
		}
	case governanceconst.TypeContract:
		res.contract, err = requireAccount(c, "contract")
		if err != nil {
			return res, err
		}
	}

	if s := c.String("payload"); s != "" {
		res.payload, err = parseHex("payload", s)
		if err != nil {
			return res, err
		}
	}

	return res, nil
}

func createProposal(c *cli.Context) error {
	prm, err := readProposalPrm(c)
	if err != nil {
		return err
	}

	e, contract, err := openGovernance(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	log, err := e.await(contract.CreateProposal(e.sender(), prm.title, prm.description, big.NewInt(int64(prm.typ)),
		prm.key, prm.value, prm.contract, prm.payload))
	if err != nil {
		return err
	}

	evs, err := governance.ProposalCreatedEventsFromApplicationLog(log)
	if err != nil {
		return fmt.Errorf("decode proposal event: %w", err)
	}
	if len(evs) == 0 {
		return errors.New("proposal created, but no proposal event found")
	}

	fmt.Fprintf(c.App.Writer, "Proposal #%s created\n", evs[0].ID)

	return nil
}

func voteProposal(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	e, contract, err := openGovernance(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	log, err := e.await(contract.Vote(e.sender(), id, !c.Bool("against")))
	if err != nil {
		return err
	}

	evs, err := governance.VoteCastEventsFromApplicationLog(log)
	if err == nil && len(evs) > 0 {
		fmt.Fprintf(c.App.Writer, "Voted on proposal #%s with weight %s, support: %t\n",
			id, formatAmount(evs[0].Weight), evs[0].Support)
	}

	return nil
}

func finalizeProposal(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	e, contract, err := openGovernance(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	log, err := e.await(contract.FinalizeProposal(id))
	if err != nil {
		return err
	}

	evs, err := governance.ProposalFinalizedEventsFromApplicationLog(log)
	if err == nil && len(evs) > 0 {
		fmt.Fprintf(c.App.Writer, "Proposal #%s finalized, passed: %t (yes %s, no %s)\n",
			id, evs[0].Passed, formatAmount(evs[0].YesVotes), formatAmount(evs[0].NoVotes))
	}

	return nil
}

func executeProposal(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	e, contract, err := openGovernance(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	_, err = e.await(contract.ExecuteProposal(e.sender(), id))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Proposal #%s executed\n", id)

	return nil
}

func cancelProposal(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	e, contract, err := openGovernance(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	_, err = e.await(contract.CancelProposal(e.sender(), id))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Proposal #%s cancelled\n", id)

	return nil
}

type proposalView struct {
	ID           uint64 `yaml:"id"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description,omitempty"`
	Proposer     string `yaml:"proposer"`
	Type         string `yaml:"type"`
	Status       string `yaml:"status"`
	CreatedAt    uint64 `yaml:"created_at"`
	VotingEndsAt uint64 `yaml:"voting_ends_at"`
	YesVotes     string `yaml:"yes_votes"`
	NoVotes      string `yaml:"no_votes"`
	ParamKey     string `yaml:"param_key,omitempty"`
	ParamValue   string `yaml:"param_value,omitempty"`
	Contract     string `yaml:"contract,omitempty"`
	Payload      string `yaml:"payload,omitempty"`
}

func newProposalView(p *governance.GovernanceProposal) proposalView {
	v := proposalView{
		ID:           uint64Of(p.ID),
		Title:        p.Title,
		Description:  p.Description,
		Proposer:     address.Uint160ToString(p.Proposer),
		Type:         proposalTypes.name(p.Type),
		Status:       proposalStatuses.name(p.Status),
		CreatedAt:    uint64Of(p.CreatedAt),
		VotingEndsAt: uint64Of(p.VotingEndsAt),
		YesVotes:     formatAmount(p.YesVotes),
		NoVotes:      formatAmount(p.NoVotes),
		ParamKey:     p.ParamKey,
	}

	if p.ParamKey != "" && p.ParamValue != nil {
		v.ParamValue = p.ParamValue.String()
	}

	if !p.ContractAddress.Equals(util.Uint160{}) {
		v.Contract = p.ContractAddress.StringLE()
	}

	if len(p.Payload) > 0 {
		v.Payload = fmt.Sprintf("%x", p.Payload)
	}

	return v
}

func showProposal(c *cli.Context) error {
	id, err := requireUint(c, "id")
	if err != nil {
		return err
	}

	e, contract, err := openGovernance(c, false)
	if err != nil {
		return err
	}
	defer e.close()

	p, err := contract.GetProposal(id)
	if err != nil {
		return contractError(err)
	}

	return printYAML(c, newProposalView(p))
}

func listProposals(c *cli.Context) error {
	e, contract, err := openGovernance(c, false)
	if err != nil {
		return err
	}
	defer e.close()

	items, err := readIterator(e, contract.ListProposals, contract.ListProposalsExpanded)
	if err != nil {
		return err
	}

	res := make([]proposalView, 0, len(items))
	for i := range items {
		var p governance.GovernanceProposal

		err = p.FromStackItem(items[i])
		if err != nil {
			return fmt.Errorf("invalid proposal #%d: %w", i, err)
		}

		res = append(res, newProposalView(&p))
	}

	return printYAML(c, res)
}
