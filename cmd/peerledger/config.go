package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/peerledger/peerledger-contract/deploy"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "peerledger.yml"
	defaultRPCTimeout = 15 * time.Second

	// passwordEnv overrides wallet password from the config file.
	passwordEnv = "PEERLEDGER_WALLET_PASSWORD"
)

// Config is a PeerLedger CLI configuration file.
type Config struct {
	RPC struct {
		Endpoint string        `yaml:"endpoint"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"rpc"`

	Wallet struct {
		Path     string  `yaml:"path"`
		Address  Hash160 `yaml:"address"`
		Password string  `yaml:"password"`
	} `yaml:"wallet"`

	Contracts struct {
		// Directory with contract sources.
		Source string `yaml:"source"`

		Credential  Hash160 `yaml:"credential"`
		Reputation  Hash160 `yaml:"reputation"`
		Publication Hash160 `yaml:"publication"`
		Review      Hash160 `yaml:"review"`
		Governance  Hash160 `yaml:"governance"`
	} `yaml:"contracts"`

	Governance struct {
		MinProposalBalance uint64 `yaml:"min_proposal_balance"`
		MinVotingBalance   uint64 `yaml:"min_voting_balance"`
		VotingPeriod       uint64 `yaml:"voting_period"`
		PassThreshold      uint64 `yaml:"pass_threshold"`
	} `yaml:"governance"`

	TokenManager Hash160 `yaml:"token_manager"`
}

// Hash160 is a script hash given either as Neo address or as LE hex string.
type Hash160 struct {
	util.Uint160
	set bool
}

// IsSet checks whether the hash was specified.
func (x Hash160) IsSet() bool {
	return x.set
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (x *Hash160) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}

	if s == "" {
		*x = Hash160{}
		return nil
	}

	h, err := parseHash160(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}

	*x = Hash160{Uint160: h, set: true}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (x Hash160) MarshalYAML() (any, error) {
	if !x.set {
		return "", nil
	}
	return x.StringLE(), nil
}

// parseHash160 decodes script hash from Neo address or LE hex string with
// optional 0x prefix.
func parseHash160(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	h, err = util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("'%s' is neither address nor script hash", s)
	}

	return h, nil
}

// loadConfig reads configuration from the YAML file. Unknown fields are
// rejected.
func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	var c Config

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	err = dec.Decode(&c)
	if err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if p := os.Getenv(passwordEnv); p != "" {
		c.Wallet.Password = p
	}

	if c.RPC.Timeout == 0 {
		c.RPC.Timeout = defaultRPCTimeout
	}

	if c.Contracts.Source == "" {
		c.Contracts.Source = "contracts"
	}

	err = c.validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &c, nil
}

func (c *Config) validate() error {
	switch {
	case c.RPC.Endpoint == "":
		return errors.New("missing RPC endpoint")
	case c.RPC.Timeout < 0:
		return errors.New("negative RPC timeout")
	}
	return nil
}

// governanceConfiguration returns governance parameters passed to the
// Governance contract on deployment.
func (c *Config) governanceConfiguration() deploy.GovernanceConfiguration {
	return deploy.GovernanceConfiguration{
		MinProposalBalance: c.Governance.MinProposalBalance,
		MinVotingBalance:   c.Governance.MinVotingBalance,
		VotingPeriod:       c.Governance.VotingPeriod,
		PassThreshold:      c.Governance.PassThreshold,
	}
}

// contract returns hash of the named PeerLedger contract.
func (c *Config) contract(name string) (util.Uint160, error) {
	var h Hash160

	switch name {
	case "credential":
		h = c.Contracts.Credential
	case "reputation":
		h = c.Contracts.Reputation
	case "publication":
		h = c.Contracts.Publication
	case "review":
		h = c.Contracts.Review
	case "governance":
		h = c.Contracts.Governance
	default:
		return util.Uint160{}, fmt.Errorf("unknown contract '%s'", name)
	}

	if !h.IsSet() {
		return util.Uint160{}, fmt.Errorf("%s contract hash is not configured, set contracts.%s", name, name)
	}

	return h.Uint160, nil
}

// addressesSnippet returns 'contracts' section of the config file
// referencing deployed contracts.
func addressesSnippet(source string, addrs deploy.Addresses) ([]byte, error) {
	var c Config

	c.Contracts.Source = source
	c.Contracts.Credential = Hash160{addrs.Credential, true}
	c.Contracts.Reputation = Hash160{addrs.Reputation, true}
	c.Contracts.Publication = Hash160{addrs.Publication, true}
	c.Contracts.Review = Hash160{addrs.Review, true}
	c.Contracts.Governance = Hash160{addrs.Governance, true}

	return yaml.Marshal(map[string]any{"contracts": c.Contracts})
}
