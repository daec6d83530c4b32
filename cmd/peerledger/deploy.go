package main

import (
	"fmt"
	"os"

	"github.com/peerledger/peerledger-contract/contracts"
	"github.com/peerledger/peerledger-contract/deploy"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func deployCommand() cli.Command {
	return cli.Command{
		Name:  "deploy",
		Usage: "Deploy PeerLedger contracts owned by the signing account",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "build",
				Usage: "Directory with prebuilt contracts (<name>/contract.nef and <name>/manifest.json), sources from the config are compiled if omitted",
			},
		},
		Action: deployContracts,
	}
}

func deployContracts(c *cli.Context) error {
	e, err := openEnv(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	var cs []contracts.Contract

	if dir := c.String("build"); dir != "" {
		e.log.Info("reading prebuilt contracts...", zap.String("dir", dir))
		cs, err = contracts.Read(os.DirFS(dir))
	} else {
		e.log.Info("compiling contracts...", zap.String("dir", e.cfg.Contracts.Source))
		cs, err = contracts.CompileAll(e.cfg.Contracts.Source)
	}
	if err != nil {
		return err
	}

	prm := deployPrm(e, cs)

	addrs, err := deploy.Deploy(e.ctx, prm)
	if err != nil {
		return contractError(err)
	}

	snippet, err := addressesSnippet(e.cfg.Contracts.Source, addrs)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "# add to %s\n%s", c.GlobalString("config"), snippet)

	return nil
}

// deployPrm fills deployment parameters. Contracts must be given in
// deployment order.
func deployPrm(e *env, cs []contracts.Contract) deploy.Prm {
	prm := deploy.Prm{
		Logger:       e.log,
		Blockchain:   e.rpc,
		LocalAccount: e.acc,
		GovernanceContract: deploy.GovernanceContractPrm{
			Config: e.cfg.governanceConfiguration(),
		},
		TokenManager: e.cfg.TokenManager.Uint160,
	}

	for i, p := range []*deploy.CommonDeployPrm{
		&prm.CredentialContract,
		&prm.ReputationContract,
		&prm.PublicationContract,
		&prm.ReviewContract,
		&prm.GovernanceContract.Common,
	} {
		p.NEF = cs[i].NEF
		p.Manifest = cs[i].Manifest
	}

	return prm
}
