package reputation

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/peerledger/peerledger-contract/common"
	"github.com/peerledger/peerledger-contract/contracts/reputation/reputationconst"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	name     = "PeerLedger Reputation"
	tokenURI = "https://peerledger.org/token/rep.json"

	circulation = "supply"

	balancePrefix  = 'b'
	categoryPrefix = 'g'
	managerPrefix  = 'm'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         reputationconst.Symbol,
		Decimals:       reputationconst.Decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	common.InitOwner(ctx, args[0].(interop.Hash160))

	runtime.Log("reputation contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.Update(nefFile, manifest, data, reputationconst.ErrNotAuthorized)
	runtime.Log("reputation contract updated")
}

// Symbol is a NEP-17 standard method that returns REP token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of reputation
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns total amount of
// reputation tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns reputation balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method. Reputation is bound to its holder, so
// Transfer always fails.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	panic(reputationconst.ErrTransferFailed)
}

// Name returns human-readable token name.
func Name() string {
	return name
}

// TokenURI returns location of the token metadata.
func TokenURI() string {
	return tokenURI
}

// Mint issues reputation tokens to the account. It can be invoked only by the
// owner or a token manager.
//
// It produces Transfer notification.
func Mint(caller, to interop.Hash160, amount int) {
	ctx := storage.GetContext()
	checkManager(ctx, caller)

	token.mint(ctx, to, amount)
}

// MintWithCategory issues reputation tokens to the account and credits
// category ledger with the minted amount.
//
// It produces Transfer and ReputationChanged notifications.
func MintWithCategory(caller, to interop.Hash160, amount int, category string) {
	ctx := storage.GetContext()
	checkManager(ctx, caller)
	checkCategory(category)

	token.mint(ctx, to, amount)
	changeCategory(ctx, to, category, amount)
}

// Burn destroys reputation tokens of the account. It can be invoked only by
// the owner or a token manager.
//
// It produces Transfer notification.
func Burn(caller, from interop.Hash160, amount int) {
	ctx := storage.GetContext()
	checkManager(ctx, caller)

	token.burn(ctx, from, amount)
}

// BurnWithCategory destroys reputation tokens of the account and debits
// category ledger with the burnt amount. Category value may become negative.
//
// It produces Transfer and ReputationChanged notifications.
func BurnWithCategory(caller, from interop.Hash160, amount int, category string) {
	ctx := storage.GetContext()
	checkManager(ctx, caller)
	checkCategory(category)

	token.burn(ctx, from, amount)
	changeCategory(ctx, from, category, -amount)
}

// RewardQualityReview mints reputation tokens for a review of the provided
// quality score and credits review-quality category with the score itself.
// Score 0 is a valid score that gives no reward.
func RewardQualityReview(caller, reviewer interop.Hash160, score int) {
	ctx := storage.GetContext()
	checkManager(ctx, caller)

	if score < 0 || score > reputationconst.MaxReviewScore {
		panic(reputationconst.ErrInvalidInput)
	}
	if score == 0 {
		return
	}

	amount := score * reputationconst.Unit
	token.mint(ctx, reviewer, amount)
	changeCategory(ctx, reviewer, reputationconst.CategoryReviewQuality, score)
}

// RewardPublicationAcceptance mints reputation tokens to an author of
// accepted publication and credits publication-accepted category with the
// number of whole tokens minted.
func RewardPublicationAcceptance(caller, author interop.Hash160) {
	ctx := storage.GetContext()
	checkManager(ctx, caller)

	token.mint(ctx, author, reputationconst.PublicationReward*reputationconst.Unit)
	changeCategory(ctx, author, reputationconst.CategoryPublicationAccepted, reputationconst.PublicationReward)
}

// GetReputationByCategory returns category value of the account. It returns
// 0 for unknown categories.
func GetReputationByCategory(account interop.Hash160, category string) int {
	ctx := storage.GetReadOnlyContext()
	return getCategory(ctx, account, category)
}

// SetTokenManager enables or disables a token manager which is allowed to
// mint and burn tokens. It can be invoked only by the contract owner.
func SetTokenManager(caller, manager interop.Hash160, enabled bool) {
	ctx := storage.GetContext()
	if !common.IsOwner(ctx, caller) {
		panic(reputationconst.ErrNotAuthorized)
	}
	if len(manager) != interop.Hash160Len {
		panic(reputationconst.ErrInvalidInput)
	}

	key := append([]byte{managerPrefix}, manager...)
	if enabled {
		storage.Put(ctx, key, true)
	} else {
		storage.Delete(ctx, key)
	}

	runtime.Notify("TokenManagerSet", manager, enabled)
}

// IsTokenManager returns true if the address is a token manager.
func IsTokenManager(addr interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return isManager(ctx, addr)
}

// GetOwner returns the contract owner.
func GetOwner() interop.Hash160 {
	return common.Owner(storage.GetReadOnlyContext())
}

// TransferOwnership sets the new contract owner. It can be invoked only by the
// current owner.
func TransferOwnership(newOwner interop.Hash160) bool {
	return common.TransferOwnership(storage.GetContext(), newOwner, reputationconst.ErrNotAuthorized)
}

// RenounceOwnership leaves the contract without an owner.
func RenounceOwnership() bool {
	return common.RenounceOwnership(storage.GetContext(), reputationconst.ErrNotAuthorized)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	balance := storage.Get(ctx, append([]byte{balancePrefix}, holder...))
	if balance != nil {
		return balance.(int)
	}

	return 0
}

func (t Token) mint(ctx storage.Context, to interop.Hash160, amount int) {
	if len(to) != interop.Hash160Len {
		panic(reputationconst.ErrInvalidInput)
	}
	if amount <= 0 {
		panic(reputationconst.ErrInvalidAmount)
	}

	storage.Put(ctx, append([]byte{balancePrefix}, to...), t.balanceOf(ctx, to)+amount)
	storage.Put(ctx, t.CirculationKey, t.getSupply(ctx)+amount)

	var from interop.Hash160
	runtime.Notify("Transfer", from, to, amount)
	runtime.Log("reputation was minted")
}

func (t Token) burn(ctx storage.Context, from interop.Hash160, amount int) {
	if len(from) != interop.Hash160Len {
		panic(reputationconst.ErrInvalidInput)
	}
	if amount <= 0 {
		panic(reputationconst.ErrInvalidAmount)
	}

	balance := t.balanceOf(ctx, from)
	if balance < amount {
		panic(reputationconst.ErrInvalidAmount)
	}

	key := append([]byte{balancePrefix}, from...)
	if balance == amount {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, balance-amount)
	}
	storage.Put(ctx, t.CirculationKey, t.getSupply(ctx)-amount)

	var to interop.Hash160
	runtime.Notify("Transfer", from, to, amount)
	runtime.Log("reputation was burnt")
}

func changeCategory(ctx storage.Context, account interop.Hash160, category string, delta int) {
	value := getCategory(ctx, account, category) + delta
	storage.Put(ctx, categoryKey(account, category), value)
	if value < 0 {
		runtime.Log("negative category reputation: " + category)
	}

	runtime.Notify("ReputationChanged", account, category, delta, value)
}

func getCategory(ctx storage.Context, account interop.Hash160, category string) int {
	value := storage.Get(ctx, categoryKey(account, category))
	if value != nil {
		return value.(int)
	}

	return 0
}

func categoryKey(account interop.Hash160, category string) []byte {
	return append(append([]byte{categoryPrefix}, account...), []byte(category)...)
}

func checkCategory(category string) {
	if len(category) == 0 {
		panic(reputationconst.ErrInvalidInput)
	}
}

func checkManager(ctx storage.Context, caller interop.Hash160) {
	common.CheckWitness(caller, reputationconst.ErrNotAuthorized)
	if !common.Owner(ctx).Equals(caller) && !isManager(ctx, caller) {
		panic(reputationconst.ErrNotAuthorized)
	}
}

func isManager(ctx storage.Context, addr interop.Hash160) bool {
	return storage.Get(ctx, append([]byte{managerPrefix}, addr...)) != nil
}
