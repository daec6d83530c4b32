package credential_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/peerledger/peerledger-contract/common"
	"github.com/peerledger/peerledger-contract/contracts/credential/credentialconst"
	"github.com/peerledger/peerledger-contract/internal/chaintest"
	credentialrpc "github.com/peerledger/peerledger-contract/rpc/credential"
	"github.com/stretchr/testify/require"
)

func newCredentialInvoker(t *testing.T) *neotest.ContractInvoker {
	e := chaintest.NewExecutor(t)
	h := chaintest.DeployCredential(t, e)
	return e.CommitteeInvoker(h)
}

func submit(t *testing.T, c *neotest.ContractInvoker, user neotest.Signer) {
	c.WithSigners(user).Invoke(t, stackitem.Null{}, "submitCredentials", user.ScriptHash(),
		[]any{"reviewer", "editor"}, []any{"physics"}, "MIT", chaintest.Hash256(1))
}

func addVerifier(t *testing.T, c *neotest.ContractInvoker) neotest.Signer {
	verifier := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "addVerifier", c.CommitteeHash, verifier.ScriptHash())
	return verifier
}

func TestCredential_Verifiers(t *testing.T) {
	c := newCredentialInvoker(t)

	verifier := c.NewAccount(t)
	stranger := c.NewAccount(t)

	c.WithSigners(stranger).InvokeFail(t, credentialconst.ErrNotAuthorized, "addVerifier",
		stranger.ScriptHash(), verifier.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "addVerifier", c.CommitteeHash, verifier.ScriptHash())
	c.Invoke(t, true, "isVerifier", verifier.ScriptHash())
	c.InvokeFail(t, credentialconst.ErrAlreadyExists, "addVerifier", c.CommitteeHash, verifier.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "removeVerifier", c.CommitteeHash, verifier.ScriptHash())
	c.Invoke(t, false, "isVerifier", verifier.ScriptHash())
	c.InvokeFail(t, credentialconst.ErrDoesNotExist, "removeVerifier", c.CommitteeHash, verifier.ScriptHash())
}

func TestCredential_Submit(t *testing.T) {
	c := newCredentialInvoker(t)

	user := c.NewAccount(t)
	cu := c.WithSigners(user)

	t.Run("invalid input", func(t *testing.T) {
		cu.InvokeFail(t, credentialconst.ErrInvalidInput, "submitCredentials", user.ScriptHash(),
			[]any{"a", "b", "c", "d", "e", "f"}, []any{}, "MIT", chaintest.Hash256(1))
		cu.InvokeFail(t, credentialconst.ErrInvalidInput, "submitCredentials", user.ScriptHash(),
			[]any{}, []any{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}, "MIT", chaintest.Hash256(1))
		cu.InvokeFail(t, credentialconst.ErrInvalidInput, "submitCredentials", user.ScriptHash(),
			[]any{}, []any{}, "MIT", []byte{1, 2, 3})
	})

	t.Run("foreign witness", func(t *testing.T) {
		other := c.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, credentialconst.ErrNotAuthorized, "submitCredentials", user.ScriptHash(),
			[]any{}, []any{}, "MIT", chaintest.Hash256(1))
	})

	submit(t, c, user)
	cu.InvokeFail(t, credentialconst.ErrAlreadyExists, "submitCredentials", user.ScriptHash(),
		[]any{}, []any{}, "MIT", chaintest.Hash256(1))
	c.Invoke(t, false, "isVerified", user.ScriptHash())

	fields := chaintest.Fields(t, c, "getCredentials", user.ScriptHash())
	require.Len(t, fields, 8)
	require.Len(t, fields[0].Value().([]stackitem.Item), 2)
	require.Equal(t, "MIT", string(chaintest.Bytes(t, fields[2])))
	require.EqualValues(t, 0, chaintest.Int(t, fields[4]))
	require.Equal(t, chaintest.Hash256(1), chaintest.Bytes(t, fields[7]))

	c.InvokeFail(t, credentialconst.ErrDoesNotExist, "getCredentials", c.NewAccount(t).ScriptHash())
}

func TestCredential_Decode(t *testing.T) {
	c := newCredentialInvoker(t)

	verifier := addVerifier(t, c)
	user := c.NewAccount(t)

	decode := func() *credentialrpc.CredentialCredentials {
		var cred credentialrpc.CredentialCredentials
		require.NoError(t, cred.FromStackItem(chaintest.Call(t, c, "getCredentials", user.ScriptHash())))
		return &cred
	}

	submit(t, c, user)

	cred := decode()
	require.Equal(t, []string{"reviewer", "editor"}, cred.Roles)
	require.Equal(t, util.Uint160{}, cred.Verifier)
	require.Zero(t, cred.VerifiedAt.Sign())
	require.False(t, cred.Revoked)

	c.WithSigners(verifier).Invoke(t, stackitem.Null{}, "verifyCredentials",
		verifier.ScriptHash(), user.ScriptHash(), 0)
	require.Equal(t, verifier.ScriptHash(), decode().Verifier)

	c.WithSigners(user).Invoke(t, stackitem.Null{}, "updateCredentials", user.ScriptHash(),
		[]any{"reviewer"}, []any{"chemistry"}, "ETH", chaintest.Hash256(2))

	cred = decode()
	require.Equal(t, util.Uint160{}, cred.Verifier)
	require.Equal(t, "ETH", cred.Institution)
	require.Zero(t, cred.VerifiedAt.Sign())
}

func TestCredential_VerificationLifecycle(t *testing.T) {
	c := newCredentialInvoker(t)

	verifier := addVerifier(t, c)
	cv := c.WithSigners(verifier)
	user := c.NewAccount(t)

	cv.InvokeFail(t, credentialconst.ErrDoesNotExist, "verifyCredentials",
		verifier.ScriptHash(), user.ScriptHash(), 0)

	submit(t, c, user)
	c.Invoke(t, false, "isVerified", user.ScriptHash())

	t.Run("not a verifier", func(t *testing.T) {
		stranger := c.NewAccount(t)
		c.WithSigners(stranger).InvokeFail(t, credentialconst.ErrNotAuthorized, "verifyCredentials",
			stranger.ScriptHash(), user.ScriptHash(), 0)
	})

	cv.Invoke(t, stackitem.Null{}, "verifyCredentials", verifier.ScriptHash(), user.ScriptHash(), 0)
	require.True(t, chaintest.CallBool(t, c, "isVerified", user.ScriptHash()))

	fields := chaintest.Fields(t, c, "getCredentials", user.ScriptHash())
	require.Equal(t, verifier.ScriptHash().BytesBE(), chaintest.Bytes(t, fields[3]))
	require.Equal(t, chaintest.Height(c.Executor)-1, chaintest.Int(t, fields[4]))

	cv.Invoke(t, stackitem.Null{}, "revokeCredentials", verifier.ScriptHash(), user.ScriptHash())
	c.Invoke(t, false, "isVerified", user.ScriptHash())
	cv.InvokeFail(t, credentialconst.ErrRevoked, "revokeCredentials", verifier.ScriptHash(), user.ScriptHash())

	// Verification clears revocation.
	cv.Invoke(t, stackitem.Null{}, "verifyCredentials", verifier.ScriptHash(), user.ScriptHash(), 0)
	c.Invoke(t, true, "isVerified", user.ScriptHash())

	c.WithSigners(user).Invoke(t, stackitem.Null{}, "updateCredentials", user.ScriptHash(),
		[]any{"reviewer"}, []any{"chemistry"}, "ETH", chaintest.Hash256(2))
	c.Invoke(t, false, "isVerified", user.ScriptHash())

	t.Run("update of missing credentials", func(t *testing.T) {
		other := c.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, credentialconst.ErrDoesNotExist, "updateCredentials", other.ScriptHash(),
			[]any{}, []any{}, "ETH", chaintest.Hash256(2))
	})
}

func TestCredential_Expiration(t *testing.T) {
	c := newCredentialInvoker(t)

	verifier := addVerifier(t, c)
	cv := c.WithSigners(verifier)
	user := c.NewAccount(t)
	submit(t, c, user)

	cv.InvokeFail(t, credentialconst.ErrInvalidInput, "verifyCredentials",
		verifier.ScriptHash(), user.ScriptHash(), chaintest.Height(c.Executor))

	expiresAt := chaintest.Height(c.Executor) + 3
	cv.Invoke(t, stackitem.Null{}, "verifyCredentials", verifier.ScriptHash(), user.ScriptHash(), expiresAt)

	for chaintest.Height(c.Executor) < expiresAt {
		require.True(t, chaintest.CallBool(t, c, "isVerified", user.ScriptHash()))
		require.True(t, chaintest.CallBool(t, c, "hasRole", user.ScriptHash(), "reviewer"))
		c.AddNewBlock(t)
	}

	require.False(t, chaintest.CallBool(t, c, "isVerified", user.ScriptHash()))
	c.InvokeFail(t, credentialconst.ErrExpired, "hasRole", user.ScriptHash(), "reviewer")
}

func TestCredential_RolesAndFields(t *testing.T) {
	c := newCredentialInvoker(t)

	verifier := addVerifier(t, c)
	user := c.NewAccount(t)

	c.InvokeFail(t, credentialconst.ErrDoesNotExist, "hasRole", user.ScriptHash(), "reviewer")

	submit(t, c, user)
	c.InvokeFail(t, credentialconst.ErrExpired, "hasRole", user.ScriptHash(), "reviewer")
	c.InvokeFail(t, credentialconst.ErrExpired, "hasFieldExpertise", user.ScriptHash(), "physics")

	c.WithSigners(verifier).Invoke(t, stackitem.Null{}, "verifyCredentials",
		verifier.ScriptHash(), user.ScriptHash(), 0)

	c.Invoke(t, true, "hasRole", user.ScriptHash(), "editor")
	c.Invoke(t, false, "hasRole", user.ScriptHash(), "author")
	c.Invoke(t, true, "hasFieldExpertise", user.ScriptHash(), "physics")
	c.Invoke(t, false, "hasFieldExpertise", user.ScriptHash(), "biology")
}

func TestCredential_VerifyWithZKProof(t *testing.T) {
	c := newCredentialInvoker(t)

	verifier := addVerifier(t, c)
	cv := c.WithSigners(verifier)
	user := c.NewAccount(t)
	submit(t, c, user)

	cv.InvokeFail(t, credentialconst.ErrInvalidProof, "verifyWithZKProof",
		verifier.ScriptHash(), user.ScriptHash(), []byte{})
	c.WithSigners(user).InvokeFail(t, credentialconst.ErrNotAuthorized, "verifyWithZKProof",
		user.ScriptHash(), user.ScriptHash(), []byte{1})

	cv.Invoke(t, stackitem.Null{}, "verifyWithZKProof", verifier.ScriptHash(), user.ScriptHash(), []byte{1, 2, 3})
	c.Invoke(t, true, "isVerified", user.ScriptHash())
}

func TestCredential_Revoke(t *testing.T) {
	c := newCredentialInvoker(t)

	verifier := addVerifier(t, c)
	user := c.NewAccount(t)

	c.InvokeFail(t, credentialconst.ErrDoesNotExist, "revokeCredentials", c.CommitteeHash, user.ScriptHash())

	submit(t, c, user)
	c.WithSigners(verifier).Invoke(t, stackitem.Null{}, "verifyCredentials",
		verifier.ScriptHash(), user.ScriptHash(), 0)

	c.WithSigners(user).InvokeFail(t, credentialconst.ErrNotAuthorized, "revokeCredentials",
		user.ScriptHash(), user.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "revokeCredentials", c.CommitteeHash, user.ScriptHash())
	c.Invoke(t, false, "isVerified", user.ScriptHash())
}

func TestCredential_Ownership(t *testing.T) {
	c := newCredentialInvoker(t)

	require.Equal(t, c.CommitteeHash, chaintest.CallHash160(t, c, "getOwner"))

	newOwner := c.NewAccount(t)
	c.WithSigners(newOwner).InvokeFail(t, credentialconst.ErrNotAuthorized, "transferOwnership", newOwner.ScriptHash())
	c.InvokeFail(t, common.ErrInvalidOwner, "transferOwnership", []byte{1, 2, 3})

	c.Invoke(t, true, "transferOwnership", newOwner.ScriptHash())
	require.Equal(t, newOwner.ScriptHash(), chaintest.CallHash160(t, c, "getOwner"))
	c.InvokeFail(t, credentialconst.ErrNotAuthorized, "addVerifier", c.CommitteeHash, newOwner.ScriptHash())

	cn := c.WithSigners(newOwner)
	cn.Invoke(t, stackitem.Null{}, "addVerifier", newOwner.ScriptHash(), newOwner.ScriptHash())

	cn.Invoke(t, true, "renounceOwnership")
	require.Equal(t, util.Uint160{}, chaintest.CallHash160(t, c, "getOwner"))
	cn.InvokeFail(t, credentialconst.ErrNotAuthorized, "removeVerifier", newOwner.ScriptHash(), newOwner.ScriptHash())
}

func TestCredential_Version(t *testing.T) {
	c := newCredentialInvoker(t)
	c.Invoke(t, common.Version, "version")
}
