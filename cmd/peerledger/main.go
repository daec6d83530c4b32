/*
Peerledger is a command line client of PeerLedger contracts. It deploys the
contracts and calls their methods on behalf of the configured wallet account.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
)

// Version is set on build.
var Version = "dev"

const contextKey = "context"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newApp(ctx).Run(os.Args)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(ctx context.Context) *cli.App {
	app := cli.NewApp()
	app.Name = "peerledger"
	app.Usage = "Blind peer review on the Neo blockchain"
	app.Version = Version
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Metadata = map[string]any{contextKey: ctx}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: defaultConfigPath,
			Usage: "Path to the YAML configuration file",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "Enable debug logging",
		},
	}
	app.Commands = []cli.Command{
		deployCommand(),
		credentialCommands(),
		publicationCommands(),
		reviewCommands(),
		reputationCommands(),
		governanceCommands(),
		dumpCommand(),
	}

	return app
}

func appContext(c *cli.Context) context.Context {
	if ctx, ok := c.App.Metadata[contextKey].(context.Context); ok {
		return ctx
	}
	return context.Background()
}
