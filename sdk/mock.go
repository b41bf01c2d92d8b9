package sdk

import (
	"fmt"
	"strconv"
)

// RevertError is how a failed transition surfaces outside the mock ledger.
// On-chain the host discards the tx; here the journal rollback does the same.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}

// MockLedger is the in-memory host used by tests, the local driver and the
// CLI. It executes one transition at a time against a journal overlay and
// commits all-or-nothing, which is exactly the serialization model the real
// host provides: no partial mutation is ever observable.
type MockLedger struct {
	Program Address

	env  Env
	inTx bool

	state         map[string]string
	balances      map[Address]uint64
	tokenAccounts map[Address]TokenAccount
	mints         map[Address]Mint
	logs          []string

	txState         map[string]*string
	txBalances      map[Address]uint64
	txTokenAccounts map[Address]TokenAccount
	txMints         map[Address]Mint
	txLogs          []string
}

// NewMockLedger builds an empty ledger for the given program identity.
func NewMockLedger(program Address) *MockLedger {
	return &MockLedger{
		Program:       program,
		state:         make(map[string]string),
		balances:      make(map[Address]uint64),
		tokenAccounts: make(map[Address]TokenAccount),
		mints:         make(map[Address]Mint),
	}
}

// -----------------------------------------------------------------------------
// Transaction lifecycle
// -----------------------------------------------------------------------------

// Execute runs one transition under the given environment. A Revert (or
// Abort) unwinds the journal and is returned as *RevertError; on success the
// journal commits atomically and the handler's return value passes through.
func (m *MockLedger) Execute(env Env, fn func() *string) (ret *string, rerr *RevertError) {
	m.begin(env)
	defer func() {
		if r := recover(); r != nil {
			m.rollback()
			if re, ok := r.(*RevertError); ok {
				rerr = re
				return
			}
			panic(r)
		}
		m.commit()
	}()
	ret = fn()
	return ret, nil
}

func (m *MockLedger) begin(env Env) {
	if m.inTx {
		panic("mock ledger: nested transaction")
	}
	m.env = env
	m.inTx = true
	m.txState = make(map[string]*string)
	m.txBalances = make(map[Address]uint64)
	m.txTokenAccounts = make(map[Address]TokenAccount)
	m.txMints = make(map[Address]Mint)
	m.txLogs = nil
}

func (m *MockLedger) commit() {
	for k, v := range m.txState {
		if v == nil {
			delete(m.state, k)
		} else {
			m.state[k] = *v
		}
	}
	for a, v := range m.txBalances {
		m.balances[a] = v
	}
	for a, v := range m.txTokenAccounts {
		m.tokenAccounts[a] = v
	}
	for a, v := range m.txMints {
		m.mints[a] = v
	}
	m.logs = append(m.logs, m.txLogs...)
	m.rollback()
}

func (m *MockLedger) rollback() {
	m.inTx = false
	m.txState = nil
	m.txBalances = nil
	m.txTokenAccounts = nil
	m.txMints = nil
	m.txLogs = nil
}

// -----------------------------------------------------------------------------
// Ledger interface
// -----------------------------------------------------------------------------

func (m *MockLedger) Log(msg string) {
	if m.inTx {
		m.txLogs = append(m.txLogs, msg)
		return
	}
	m.logs = append(m.logs, msg)
}

func (m *MockLedger) StateGet(key string) *string {
	if m.inTx {
		if v, ok := m.txState[key]; ok {
			if v == nil {
				return nil
			}
			cp := *v
			return &cp
		}
	}
	v, ok := m.state[key]
	if !ok {
		return nil
	}
	return &v
}

func (m *MockLedger) StateSet(key, value string) {
	if m.inTx {
		m.txState[key] = &value
		return
	}
	m.state[key] = value
}

func (m *MockLedger) StateDelete(key string) {
	if m.inTx {
		m.txState[key] = nil
		return
	}
	delete(m.state, key)
}

func (m *MockLedger) Env() Env {
	return m.env
}

func (m *MockLedger) EnvKey(key string) *string {
	var val string
	switch key {
	case "tx.id":
		val = m.env.TxId
	case "block.id":
		val = m.env.BlockId
	case "block.timestamp":
		val = m.env.Timestamp
	case "block.height":
		val = strconv.FormatUint(m.env.BlockHeight, 10)
	case "contract.id":
		val = m.env.ContractId
	default:
		return nil
	}
	return &val
}

func (m *MockLedger) Balance(addr Address) uint64 {
	if m.inTx {
		if v, ok := m.txBalances[addr]; ok {
			return v
		}
	}
	return m.balances[addr]
}

func (m *MockLedger) Draw(to Address, amount uint64) {
	m.move(m.env.Sender.Address, to, amount)
}

func (m *MockLedger) Transfer(from, to Address, amount uint64) {
	if !from.IsDerivedFrom(m.Program) {
		m.Revert(fmt.Sprintf("program does not control %s", from), "host_error")
	}
	m.move(from, to, amount)
}

func (m *MockLedger) move(from, to Address, amount uint64) {
	fromBal := m.Balance(from)
	if fromBal < amount {
		m.Revert(fmt.Sprintf("balance %d below %d on %s", fromBal, amount, from), "host_error")
	}
	m.setBalance(from, fromBal-amount)
	m.setBalance(to, m.Balance(to)+amount)
}

func (m *MockLedger) setBalance(addr Address, v uint64) {
	if m.inTx {
		m.txBalances[addr] = v
		return
	}
	m.balances[addr] = v
}

func (m *MockLedger) CreateMint(mint, authority Address, decimals uint8) {
	if m.MintInfo(mint) != nil {
		m.Revert(fmt.Sprintf("mint %s already exists", mint), "host_error")
	}
	m.setMint(mint, Mint{Authority: authority, Decimals: decimals})
}

func (m *MockLedger) MintInfo(mint Address) *Mint {
	if m.inTx {
		if v, ok := m.txMints[mint]; ok {
			cp := v
			return &cp
		}
	}
	v, ok := m.mints[mint]
	if !ok {
		return nil
	}
	cp := v
	return &cp
}

func (m *MockLedger) setMint(mint Address, v Mint) {
	if m.inTx {
		m.txMints[mint] = v
		return
	}
	m.mints[mint] = v
}

func (m *MockLedger) TokenAccount(addr Address) *TokenAccount {
	if m.inTx {
		if v, ok := m.txTokenAccounts[addr]; ok {
			cp := v
			return &cp
		}
	}
	v, ok := m.tokenAccounts[addr]
	if !ok {
		return nil
	}
	cp := v
	return &cp
}

func (m *MockLedger) setTokenAccount(addr Address, v TokenAccount) {
	if m.inTx {
		m.txTokenAccounts[addr] = v
		return
	}
	m.tokenAccounts[addr] = v
}

func (m *MockLedger) TokenDraw(from, to Address, amount uint64) {
	src := m.TokenAccount(from)
	if src == nil {
		m.Revert(fmt.Sprintf("token account %s not found", from), "host_error")
	}
	if src.Owner != m.env.Sender.Address {
		m.Revert(fmt.Sprintf("sender does not own token account %s", from), "host_error")
	}
	dst := m.TokenAccount(to)
	if dst == nil {
		m.Revert(fmt.Sprintf("token account %s not found", to), "host_error")
	}
	if src.Mint != dst.Mint {
		m.Revert("token accounts belong to different mints", "host_error")
	}
	if src.Balance < amount {
		m.Revert(fmt.Sprintf("token balance %d below %d on %s", src.Balance, amount, from), "host_error")
	}
	src.Balance -= amount
	dst.Balance += amount
	m.setTokenAccount(from, *src)
	m.setTokenAccount(to, *dst)
}

func (m *MockLedger) MintTo(mint, to Address, amount uint64) {
	mi := m.MintInfo(mint)
	if mi == nil {
		m.Revert(fmt.Sprintf("mint %s not found", mint), "host_error")
	}
	if !mi.Authority.IsDerivedFrom(m.Program) {
		m.Revert("program does not control the mint authority", "host_error")
	}
	dst := m.TokenAccount(to)
	if dst == nil {
		m.Revert(fmt.Sprintf("token account %s not found", to), "host_error")
	}
	if dst.Mint != mint {
		m.Revert("destination token account belongs to a different mint", "host_error")
	}
	mi.Supply += amount
	dst.Balance += amount
	m.setMint(mint, *mi)
	m.setTokenAccount(to, *dst)
}

func (m *MockLedger) Abort(msg string) {
	panic(&RevertError{Msg: msg, Symbol: "abort"})
}

func (m *MockLedger) Revert(msg, symbol string) {
	panic(&RevertError{Msg: msg, Symbol: symbol})
}

// -----------------------------------------------------------------------------
// Setup helpers for tests and tooling (host-side actions, not contract calls)
// -----------------------------------------------------------------------------

// Credit deposits native currency onto an address, like a faucet.
func (m *MockLedger) Credit(addr Address, amount uint64) {
	m.balances[addr] += amount
}

// CreateTokenAccount provisions an empty token account. Wallets do this
// out-of-band before calling the contract.
func (m *MockLedger) CreateTokenAccount(addr, owner, mint Address) {
	m.tokenAccounts[addr] = TokenAccount{Owner: owner, Mint: mint}
}

// CreditToken funds a token account directly, bypassing the purchase path.
func (m *MockLedger) CreditToken(addr Address, amount uint64) {
	acct := m.tokenAccounts[addr]
	acct.Balance += amount
	m.tokenAccounts[addr] = acct
}

// Logs returns every event line committed so far.
func (m *MockLedger) Logs() []string {
	return append([]string(nil), m.logs...)
}

// DumpState exposes the committed kv map for the CLI state dump.
func (m *MockLedger) DumpState() map[string]string {
	out := make(map[string]string, len(m.state))
	for k, v := range m.state {
		out[k] = v
	}
	return out
}
