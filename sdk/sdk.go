package sdk

// TokenAccount mirrors the host token ledger's view of a single holding:
// who owns it, which mint it belongs to and the current balance in base units.
type TokenAccount struct {
	Owner   Address
	Mint    Address
	Balance uint64
}

// Mint describes an issuance root on the host token ledger.
type Mint struct {
	Authority Address
	Decimals  uint8
	Supply    uint64
}

// Ledger is the host execution substrate. The contract never talks to chain
// state directly; every read/write/transfer goes through this interface so the
// same handlers run against the wasm host bindings on-chain and against
// MockLedger in tests and tooling.
type Ledger interface {
	Log(msg string)

	StateGet(key string) *string
	StateSet(key, value string)
	StateDelete(key string)

	Env() Env
	EnvKey(key string) *string

	// Balance returns the native-currency balance of any address, record
	// addresses included (records hold their own storage deposit).
	Balance(addr Address) uint64
	// Draw pulls native currency from the transaction sender into to.
	// The host enforces the sender signature and available balance.
	Draw(to Address, amount uint64)
	// Transfer moves native currency out of a program-derived address.
	// The host rejects transfers from addresses the program does not control.
	Transfer(from, to Address, amount uint64)

	CreateMint(mint, authority Address, decimals uint8)
	MintInfo(mint Address) *Mint
	TokenAccount(addr Address) *TokenAccount
	// TokenDraw moves tokens out of a token account owned by the tx sender.
	TokenDraw(from, to Address, amount uint64)
	// MintTo issues fresh supply. Only valid when the program controls the
	// mint's authority address.
	MintTo(mint, to Address, amount uint64)

	Abort(msg string)
	Revert(msg, symbol string)
}

// active is the singleton ledger used by the package-level wrappers, same
// pattern as the contract-wide state singleton: wasm builds install the host
// bindings in init(), everything else calls Use explicitly.
var active Ledger

// Use installs the ledger implementation for this process.
func Use(l Ledger) {
	active = l
}

// Current returns the installed ledger, aborting early when wiring is missing.
func Current() Ledger {
	if active == nil {
		panic("sdk: no ledger installed")
	}
	return active
}

// Log writes a message to the host console/event log.
// Example payload: sdk.Log("pc|id:0|by:wallet:alice")
func Log(msg string) { Current().Log(msg) }

// StateGet fetches a key and returns nil when missing.
func StateGet(key string) *string { return Current().StateGet(key) }

// StateSet stores a key/value string pair into contract kv storage.
func StateSet(key, value string) { Current().StateSet(key, value) }

// StateDelete removes the key entirely, handy for record cleanup.
func StateDelete(key string) { Current().StateDelete(key) }

// GetEnv returns the execution environment snapshot for the current tx.
func GetEnv() Env { return Current().Env() }

// GetEnvKey pulls a single env key (like tx.id) without the full struct.
func GetEnvKey(key string) *string { return Current().EnvKey(key) }

// Balance queries the native balance for the given address.
func Balance(addr Address) uint64 { return Current().Balance(addr) }

// Draw pulls native currency from the tx sender towards a program address.
func Draw(to Address, amount uint64) { Current().Draw(to, amount) }

// Transfer sends native currency from a program-controlled address.
func Transfer(from, to Address, amount uint64) { Current().Transfer(from, to, amount) }

// CreateMint provisions a new token mint under the given authority.
func CreateMint(mint, authority Address, decimals uint8) {
	Current().CreateMint(mint, authority, decimals)
}

// MintInfo returns the mint record or nil when the mint does not exist.
func MintInfo(mint Address) *Mint { return Current().MintInfo(mint) }

// GetTokenAccount returns the token account or nil when it does not exist.
func GetTokenAccount(addr Address) *TokenAccount { return Current().TokenAccount(addr) }

// TokenDraw moves tokens from a sender-owned token account into another one.
func TokenDraw(from, to Address, amount uint64) { Current().TokenDraw(from, to, amount) }

// MintTo issues fresh tokens into the destination token account.
func MintTo(mint, to Address, amount uint64) { Current().MintTo(mint, to, amount) }

// Abort stops execution immediately and surfaces the message to the chain.
func Abort(msg string) { Current().Abort(msg) }

// Revert throws a named error back to the caller with a short symbol, leaving
// no state changes behind (the host discards the transition's writes).
func Revert(msg string, symbol string) { Current().Revert(msg, symbol) }
