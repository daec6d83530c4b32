package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/peerledger/peerledger-contract/deploy"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, data string) string {
	p := filepath.Join(t.TempDir(), "peerledger.yml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0600))
	return p
}

func TestParseHash160(t *testing.T) {
	h := util.Uint160{1, 2, 3, 4, 5}

	for _, s := range []string{
		address.Uint160ToString(h),
		h.StringLE(),
		"0x" + h.StringLE(),
	} {
		parsed, err := parseHash160(s)
		require.NoError(t, err, s)
		require.Equal(t, h, parsed, s)
	}

	for _, s := range []string{"", "NotAnAddress", h.StringLE()[2:]} {
		_, err := parseHash160(s)
		require.Error(t, err, s)
	}
}

func TestLoadConfig(t *testing.T) {
	review := util.Uint160{9, 8, 7}

	t.Run("full", func(t *testing.T) {
		p := writeConfig(t, `
rpc:
  endpoint: http://localhost:30333
  timeout: 5s
wallet:
  path: wallet.json
  address: `+address.Uint160ToString(util.Uint160{1})+`
  password: secret
contracts:
  source: ./src
  review: `+review.StringLE()+`
governance:
  voting_period: 20
  pass_threshold: 60
token_manager: 0x`+util.Uint160{2}.StringLE()+`
`)

		c, err := loadConfig(p)
		require.NoError(t, err)
		require.Equal(t, "http://localhost:30333", c.RPC.Endpoint)
		require.Equal(t, 5*time.Second, c.RPC.Timeout)
		require.Equal(t, util.Uint160{1}, c.Wallet.Address.Uint160)
		require.Equal(t, "secret", c.Wallet.Password)
		require.Equal(t, "./src", c.Contracts.Source)
		require.True(t, c.TokenManager.IsSet())
		require.Equal(t, util.Uint160{2}, c.TokenManager.Uint160)
		require.Equal(t, deploy.GovernanceConfiguration{VotingPeriod: 20, PassThreshold: 60}, c.governanceConfiguration())

		h, err := c.contract("review")
		require.NoError(t, err)
		require.Equal(t, review, h)

		_, err = c.contract("credential")
		require.Error(t, err)

		_, err = c.contract("nns")
		require.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv(passwordEnv, "from-env")

		c, err := loadConfig(writeConfig(t, "rpc:\n  endpoint: http://localhost:30333\n"))
		require.NoError(t, err)
		require.Equal(t, defaultRPCTimeout, c.RPC.Timeout)
		require.Equal(t, "contracts", c.Contracts.Source)
		require.Equal(t, "from-env", c.Wallet.Password)
		require.False(t, c.Wallet.Address.IsSet())
		require.False(t, c.TokenManager.IsSet())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, data := range []string{
			"rpc:\n  timeout: 1s\n",
			"rpc:\n  endpoint: http://localhost:30333\n  unknown: 1\n",
			"rpc:\n  endpoint: http://localhost:30333\ncontracts:\n  review: abc\n",
			"rpc:\n  endpoint: http://localhost:30333\n  timeout: -1s\n",
		} {
			_, err := loadConfig(writeConfig(t, data))
			require.Error(t, err, data)
		}

		_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})
}

func TestAddressesSnippet(t *testing.T) {
	addrs := deploy.Addresses{
		Credential:  util.Uint160{1},
		Reputation:  util.Uint160{2},
		Publication: util.Uint160{3},
		Review:      util.Uint160{4},
		Governance:  util.Uint160{5},
	}

	data, err := addressesSnippet("contracts", addrs)
	require.NoError(t, err)

	var c Config
	require.NoError(t, yaml.Unmarshal(data, &c))
	require.Equal(t, "contracts", c.Contracts.Source)
	require.Equal(t, addrs.Credential, c.Contracts.Credential.Uint160)
	require.Equal(t, addrs.Governance, c.Contracts.Governance.Uint160)
	require.True(t, c.Contracts.Review.IsSet())
}
