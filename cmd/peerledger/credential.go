package main

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/peerledger/peerledger-contract/rpc/credential"
	"github.com/urfave/cli"
)

func credentialCommands() cli.Command {
	userFlag := accountFlag("user", "Credentials holder")
	verifierFlag := accountFlag("verifier", "Verifier account")

	return cli.Command{
		Name:  "credential",
		Usage: "Manage researcher credentials",
		Subcommands: []cli.Command{
			{
				Name:  "submit",
				Usage: "Submit credentials of the signing account",
				Flags: []cli.Flag{
					cli.StringSliceFlag{Name: "role", Usage: "Academic role, may be repeated"},
					cli.StringSliceFlag{Name: "field", Usage: "Field of expertise, may be repeated"},
					cli.StringFlag{Name: "institution", Usage: "Affiliated institution"},
					cli.StringFlag{Name: "proof", Usage: "Hash of the proof documents (hex or IPFS CIDv0)"},
					cli.BoolFlag{Name: "update", Usage: "Replace already submitted credentials"},
				},
				Action: submitCredentials,
			},
			{
				Name:  "verify",
				Usage: "Verify credentials of the user",
				Flags: []cli.Flag{
					userFlag,
					cli.Uint64Flag{Name: "expires-at", Usage: "Block after which the verification expires, 0 for no expiration"},
					cli.StringFlag{Name: "zk-proof", Usage: "Verify with hex-encoded zero-knowledge proof instead"},
				},
				Action: verifyCredentials,
			},
			{
				Name:   "revoke",
				Usage:  "Revoke credentials of the user",
				Flags:  []cli.Flag{userFlag},
				Action: revokeCredentials,
			},
			{
				Name:   "status",
				Usage:  "Show credentials of the user",
				Flags:  []cli.Flag{userFlag},
				Action: credentialStatus,
			},
			{
				Name:   "add-verifier",
				Usage:  "Authorize verifier account",
				Flags:  []cli.Flag{verifierFlag},
				Action: manageVerifier(true),
			},
			{
				Name:   "remove-verifier",
				Usage:  "Deauthorize verifier account",
				Flags:  []cli.Flag{verifierFlag},
				Action: manageVerifier(false),
			},
			{
				Name:   "verifiers",
				Usage:  "List authorized verifiers",
				Action: listVerifiers,
			},
		},
	}
}

func openCredential(c *cli.Context, signer bool) (*env, *credential.Contract, error) {
	e, err := openEnv(c, signer)
	if err != nil {
		return nil, nil, err
	}

	h, err := e.contract("credential")
	if err != nil {
		e.close()
		return nil, nil, err
	}

	if !signer {
		return e, &credential.Contract{ContractReader: *credential.NewReader(e.inv, h)}, nil
	}

	return e, credential.New(e.act, h), nil
}

func submitCredentials(c *cli.Context) error {
	institution, err := requireString(c, "institution")
	if err != nil {
		return err
	}

	proof, err := optionalContentHash(c, "proof")
	if err != nil {
		return err
	}

	e, contract, err := openCredential(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	send := contract.SubmitCredentials
	if c.Bool("update") {
		send = contract.UpdateCredentials
	}

	_, err = e.await(send(e.sender(), c.StringSlice("role"), c.StringSlice("field"), institution, proof))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Credentials of %s submitted, waiting for verification\n", e.acc.Address)

	return nil
}

func verifyCredentials(c *cli.Context) error {
	user, err := requireAccount(c, "user")
	if err != nil {
		return err
	}

	var proof []byte
	if s := c.String("zk-proof"); s != "" {
		if proof, err = parseHex("zk-proof", s); err != nil {
			return err
		}
	}

	e, contract, err := openCredential(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	if proof != nil {
		_, err = e.await(contract.VerifyWithZKProof(e.sender(), user, proof))
	} else {
		_, err = e.await(contract.VerifyCredentials(e.sender(), user, new(big.Int).SetUint64(c.Uint64("expires-at"))))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Credentials of %s verified\n", address.Uint160ToString(user))

	return nil
}

func revokeCredentials(c *cli.Context) error {
	user, err := requireAccount(c, "user")
	if err != nil {
		return err
	}

	e, contract, err := openCredential(c, true)
	if err != nil {
		return err
	}
	defer e.close()

	_, err = e.await(contract.RevokeCredentials(e.sender(), user))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Credentials of %s revoked\n", address.Uint160ToString(user))

	return nil
}

type credentialsView struct {
	User        string   `yaml:"user"`
	Verified    bool     `yaml:"verified"`
	Roles       []string `yaml:"roles"`
	Fields      []string `yaml:"fields"`
	Institution string   `yaml:"institution"`
	Verifier    string   `yaml:"verifier,omitempty"`
	VerifiedAt  uint64   `yaml:"verified_at,omitempty"`
	ExpiresAt   uint64   `yaml:"expires_at,omitempty"`
	Revoked     bool     `yaml:"revoked"`
	ProofHash   string   `yaml:"proof_hash,omitempty"`
}

func newCredentialsView(user util.Uint160, verified bool, cr *credential.CredentialCredentials) credentialsView {
	v := credentialsView{
		User:        address.Uint160ToString(user),
		Verified:    verified,
		Roles:       cr.Roles,
		Fields:      cr.Fields,
		Institution: cr.Institution,
		VerifiedAt:  uint64Of(cr.VerifiedAt),
		ExpiresAt:   uint64Of(cr.ExpiresAt),
		Revoked:     cr.Revoked,
	}

	if !cr.Verifier.Equals(util.Uint160{}) {
		v.Verifier = address.Uint160ToString(cr.Verifier)
	}

	if !cr.ProofHash.Equals(util.Uint256{}) {
		v.ProofHash = cr.ProofHash.StringBE()
	}

	return v
}

func credentialStatus(c *cli.Context) error {
	user, err := requireAccount(c, "user")
	if err != nil {
		return err
	}

	e, contract, err := openCredential(c, false)
	if err != nil {
		return err
	}
	defer e.close()

	cr, err := contract.GetCredentials(user)
	if err != nil {
		return contractError(err)
	}

	verified, err := contract.IsVerified(user)
	if err != nil {
		return contractError(err)
	}

	return printYAML(c, newCredentialsView(user, verified, cr))
}

func manageVerifier(add bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		verifier, err := requireAccount(c, "verifier")
		if err != nil {
			return err
		}

		e, contract, err := openCredential(c, true)
		if err != nil {
			return err
		}
		defer e.close()

		if add {
			_, err = e.await(contract.AddVerifier(e.sender(), verifier))
		} else {
			_, err = e.await(contract.RemoveVerifier(e.sender(), verifier))
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(c.App.Writer, "Verifier list updated: %s\n", address.Uint160ToString(verifier))

		return nil
	}
}

func listVerifiers(c *cli.Context) error {
	e, contract, err := openCredential(c, false)
	if err != nil {
		return err
	}
	defer e.close()

	items, err := readIterator(e, contract.ListVerifiers, contract.ListVerifiersExpanded)
	if err != nil {
		return err
	}

	res := make([]string, 0, len(items))
	for i := range items {
		h, err := hash160Item(items[i])
		if err != nil {
			return fmt.Errorf("invalid verifier #%d: %w", i, err)
		}
		res = append(res, address.Uint160ToString(h))
	}

	return printYAML(c, map[string][]string{"verifiers": res})
}
