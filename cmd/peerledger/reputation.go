package main

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/peerledger/peerledger-contract/rpc/reputation"
	"github.com/urfave/cli"
)

func reputationCommands() cli.Command {
	return cli.Command{
		Name:  "reputation",
		Usage: "Inspect and reward researcher reputation",
		Subcommands: []cli.Command{
			{
				Name:   "balance",
				Usage:  "Show reputation balance of the account",
				Flags:  []cli.Flag{accountFlag("account", "Account")},
				Action: reputationBalance,
			},
			{
				Name:  "category",
				Usage: "Show reputation of the account in the category",
				Flags: []cli.Flag{
					accountFlag("account", "Account"),
					cli.StringFlag{Name: "category", Usage: "Reputation category, e.g. 'review'"},
				},
				Action: reputationCategory,
			},
			{
				Name:  "reward-review",
				Usage: "Reward reviewer for the review of the given quality",
				Flags: []cli.Flag{
					accountFlag("reviewer", "Reviewer account"),
					cli.Uint64Flag{Name: "score", Usage: "Review quality score from 1 to 5"},
				},
				Action: rewardReview,
			},
			{
				Name:   "reward-publication",
				Usage:  "Reward author for the accepted publication",
				Flags:  []cli.Flag{accountFlag("author", "Author account")},
				Action: rewardPublication,
			},
			{
				Name:  "mint",
				Usage: "Mint reputation tokens",
				Flags: []cli.Flag{
					accountFlag("to", "Receiver"),
					cli.StringFlag{Name: "amount", Usage: "Amount in whole tokens, e.g. '1.5'"},
					cli.StringFlag{Name: "category", Usage: "Optional reputation category credited along with the balance"},
				},
				Action: mintReputation,
			},
		},
	}
}

func openReputation(c *cli.Context, signer bool) (*env, *reputation.Contract, error) {
	e, err := openEnv(c, signer)
	if err != nil {
		return nil, nil, err
	}

	h, err := e.contract("reputation")
	if err != nil {
		e.close()
		return nil, nil, err
	}

	if !signer {
		return e, &reputation.Contract{ContractReader: *reputation.NewReader(e.inv, h)}, nil
	}

	return e, reputation.New(e.act, h), nil
}

func reputationBalance(c *cli.Context) error {
	acc, err := requireAccount(c, "account")
	if err != nil {
		return err
	}

	e, contract, err := openReputation(c, false)
	if err != nil {
		return err
	}
	defer e.close()

	balance, err := contract.BalanceOf(acc)
	if err != nil {
		return contractError(err)
	}

	symbol, err := contract.Symbol()
	if err != nil {
		return contractError(err)
	}

	fmt.Fprintf(c.App.Writer, "%s %s\n", formatAmount(balance), symbol)

	return nil
}

func reputationCategory(c *cli.Context) error {
	acc, err := requireAccount(c, "account")
	if err != nil {
		return err
	}

	category, err := requireString(c, "category")
	if err != nil {
		return err
	}

	e, contract, err := openReputation(c, false)
	if err != nil {
		return err
	}
	defer e.close()

	v, err := contract.GetReputationByCategory(acc, category)
	if err != nil {
		return contractError(err)
	}

	fmt.Fprintf(c.App.Writer, "%s: %s\n", category, v)

	return nil
}

func rewardReview(c *cli.Context) error {
	reviewer, err := requireAccount(c, "reviewer")
	if err != nil {
		return err
	}

	score, err := requireUint(c, "score")
	if err != nil {
		return err
	}

	e, contract, err := openReputation(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	log, err := e.await(contract.RewardQualityReview(e.sender(), reviewer, score))
	if err != nil {
		return err
	}

	return printReputationChanges(c, log)
}

func rewardPublication(c *cli.Context) error {
	author, err := requireAccount(c, "author")
	if err != nil {
		return err
	}

	e, contract, err := openReputation(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	log, err := e.await(contract.RewardPublicationAcceptance(e.sender(), author))
	if err != nil {
		return err
	}

	return printReputationChanges(c, log)
}

func mintReputation(c *cli.Context) error {
	to, err := requireAccount(c, "to")
	if err != nil {
		return err
	}

	s, err := requireString(c, "amount")
	if err != nil {
		return err
	}

	amount, err := parseAmount("amount", s)
	if err != nil {
		return err
	}

	e, contract, err := openReputation(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	if category := c.String("category"); category != "" {
		_, err = e.await(contract.MintWithCategory(e.sender(), to, amount, category))
	} else {
		_, err = e.await(contract.Mint(e.sender(), to, amount))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Minted %s to %s\n", formatAmount(amount), address.Uint160ToString(to))

	return nil
}

func printReputationChanges(c *cli.Context, log *result.ApplicationLog) error {
	evs, err := reputation.ReputationChangedEventsFromApplicationLog(log)
	if err != nil {
		return fmt.Errorf("decode reputation events: %w", err)
	}

	for _, ev := range evs {
		fmt.Fprintf(c.App.Writer, "%s: %s %+d (now %s)\n",
			address.Uint160ToString(ev.Account), ev.Category, ev.Delta, ev.Value)
	}

	return nil
}
