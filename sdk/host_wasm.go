//go:build wasm

package sdk

import "strconv"

//go:wasmimport sdk console.log
func hostLog(s *string) *string

//go:wasmimport sdk db.set_object
func hostStateSet(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func hostStateGet(key *string) *string

//go:wasmimport sdk db.rm_object
func hostStateDelete(key *string) *string

//go:wasmimport sdk system.get_env
func hostGetEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func hostGetEnvKey(arg *string) *string

//go:wasmimport sdk bank.get_balance
func hostGetBalance(addr *string) *string

//go:wasmimport sdk bank.draw
func hostDraw(to *string, amount *string) *string

//go:wasmimport sdk bank.transfer
func hostTransfer(from *string, to *string, amount *string) *string

//go:wasmimport sdk token.create_mint
func hostCreateMint(mint *string, authority *string, decimals *string) *string

//go:wasmimport sdk token.get_mint
func hostGetMint(mint *string) *string

//go:wasmimport sdk token.get_account
func hostGetTokenAccount(addr *string) *string

//go:wasmimport sdk token.draw
func hostTokenDraw(from *string, to *string, amount *string) *string

//go:wasmimport sdk token.mint_to
func hostMintTo(mint *string, to *string, amount *string) *string

//go:wasmimport env abort
func hostAbort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func hostRevert(msg, symbol *string)

// hostLedger adapts the raw wasm imports onto the Ledger interface.
type hostLedger struct{}

func init() {
	Use(hostLedger{})
}

func (hostLedger) Log(msg string) {
	hostLog(&msg)
}

func (hostLedger) StateGet(key string) *string {
	return hostStateGet(&key)
}

func (hostLedger) StateSet(key, value string) {
	hostStateSet(&key, &value)
}

func (hostLedger) StateDelete(key string) {
	hostStateDelete(&key)
}

func (hostLedger) Env() Env {
	raw := *hostGetEnv(nil)
	return parseEnvJSON(raw)
}

func (hostLedger) EnvKey(key string) *string {
	return hostGetEnvKey(&key)
}

func (hostLedger) Balance(addr Address) uint64 {
	a := addr.String()
	raw := *hostGetBalance(&a)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

func (hostLedger) Draw(to Address, amount uint64) {
	t := to.String()
	amt := strconv.FormatUint(amount, 10)
	hostDraw(&t, &amt)
}

func (hostLedger) Transfer(from, to Address, amount uint64) {
	f := from.String()
	t := to.String()
	amt := strconv.FormatUint(amount, 10)
	hostTransfer(&f, &t, &amt)
}

func (hostLedger) CreateMint(mint, authority Address, decimals uint8) {
	m := mint.String()
	a := authority.String()
	d := strconv.FormatUint(uint64(decimals), 10)
	hostCreateMint(&m, &a, &d)
}

func (hostLedger) MintInfo(mint Address) *Mint {
	m := mint.String()
	raw := hostGetMint(&m)
	if raw == nil || *raw == "" {
		return nil
	}
	return parseMintJSON(*raw)
}

func (hostLedger) TokenAccount(addr Address) *TokenAccount {
	a := addr.String()
	raw := hostGetTokenAccount(&a)
	if raw == nil || *raw == "" {
		return nil
	}
	return parseTokenAccountJSON(*raw)
}

func (hostLedger) TokenDraw(from, to Address, amount uint64) {
	f := from.String()
	t := to.String()
	amt := strconv.FormatUint(amount, 10)
	hostTokenDraw(&f, &t, &amt)
}

func (hostLedger) MintTo(mint, to Address, amount uint64) {
	m := mint.String()
	t := to.String()
	amt := strconv.FormatUint(amount, 10)
	hostMintTo(&m, &t, &amt)
}

func (hostLedger) Abort(msg string) {
	ln := int32(0)
	hostAbort(&msg, nil, &ln, &ln)
	panic(msg)
}

func (hostLedger) Revert(msg, symbol string) {
	hostRevert(&msg, &symbol)
	panic(symbol + ": " + msg)
}
