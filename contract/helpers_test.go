package contract_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"vote_dao/contract"
	"vote_dao/sdk"
)

const (
	authority = sdk.Address("wallet:authority")
	alice     = sdk.Address("wallet:alice")
	bob       = sdk.Address("wallet:bob")
	carol     = sdk.Address("wallet:carol")

	treasuryAcct = sdk.Address("token:treasury")
	aliceAcct    = sdk.Address("token:alice")
	bobAcct      = sdk.Address("token:bob")
	carolAcct    = sdk.Address("token:carol")
)

// baseTime anchors every test scenario; deadlines are offsets from it.
const baseTime int64 = 1_700_000_000

// txCounter keeps tx ids unique across the whole test binary so the per-tx
// env cache in the contract package never serves a stale snapshot.
var txCounter int

type harness struct {
	t      *testing.T
	ledger *sdk.MockLedger
}

// newHarness wires a fresh mock ledger with funded wallets.
func newHarness(t *testing.T) *harness {
	ledger := sdk.NewMockLedger(contract.ProgramID)
	sdk.Use(ledger)
	for _, w := range []sdk.Address{authority, alice, bob, carol} {
		ledger.Credit(w, 1_000_000)
	}
	return &harness{t: t, ledger: ledger}
}

func (h *harness) env(sender sdk.Address, ts int64) sdk.Env {
	txCounter++
	return sdk.Env{
		ContractId:  contract.ProgramID.String(),
		TxId:        "tx-" + strconv.Itoa(txCounter),
		BlockId:     "block-" + strconv.Itoa(txCounter),
		BlockHeight: uint64(txCounter),
		Timestamp:   strconv.FormatInt(ts, 10),
		Sender:      sdk.Sender{Address: sender, RequiredAuths: []sdk.Address{sender}},
	}
}

func (h *harness) call(sender sdk.Address, ts int64, method, payload string) (*string, *sdk.RevertError) {
	return h.ledger.Execute(h.env(sender, ts), func() *string {
		p := payload
		return contract.Dispatch(method, &p)
	})
}

// mustCall runs a transition and requires it to commit.
func (h *harness) mustCall(sender sdk.Address, ts int64, method, payload string) string {
	h.t.Helper()
	ret, rerr := h.call(sender, ts, method, payload)
	require.Nil(h.t, rerr, "%s unexpectedly reverted", method)
	require.NotNil(h.t, ret, "%s returned no message", method)
	return *ret
}

// mustFail runs a transition and requires it to revert with the given symbol.
func (h *harness) mustFail(sender sdk.Address, ts int64, method, payload, symbol string) {
	h.t.Helper()
	_, rerr := h.call(sender, ts, method, payload)
	require.NotNil(h.t, rerr, "%s unexpectedly succeeded", method)
	require.Equal(h.t, symbol, rerr.Symbol, "%s reverted with %q", method, rerr.Msg)
}

// setupTreasury initializes the treasury and counter, provisions every
// wallet's token account on the governance mint and binds the treasury one.
func (h *harness) setupTreasury(price, tokensPerPurchase uint64) {
	h.mustCall(authority, baseTime, "initialize_treasury",
		fmt.Sprintf(`{"solPrice":%d,"tokensPerPurchase":%d}`, price, tokensPerPurchase))

	mint := contract.XMintAddress()
	h.ledger.CreateTokenAccount(treasuryAcct, authority, mint)
	h.ledger.CreateTokenAccount(aliceAcct, alice, mint)
	h.ledger.CreateTokenAccount(bobAcct, bob, mint)
	h.ledger.CreateTokenAccount(carolAcct, carol, mint)

	h.mustCall(authority, baseTime, "configure_treasury_token_account",
		fmt.Sprintf(`{"treasuryTokenAccount":%q}`, treasuryAcct))
	h.mustCall(authority, baseTime, "initialize_proposal_counter", `{}`)
}

// fundTokens credits governance tokens directly, skipping the purchase path.
func (h *harness) fundTokens(acct sdk.Address, amount uint64) {
	h.ledger.CreditToken(acct, amount)
}

// registerProposal files a proposal for the sender and returns nothing;
// ids are assigned in submission order starting at 0.
func (h *harness) registerProposal(sender sdk.Address, acct sdk.Address, deadline int64, stake uint64) {
	h.t.Helper()
	h.mustCall(sender, baseTime, "register_proposal", fmt.Sprintf(
		`{"proposalInfo":"test proposal","deadline":%d,"tokenAmount":%d,"proposalTokenAccount":%q}`,
		deadline, stake, acct))
}

// tokenBalance reads a token account balance off the committed ledger.
func (h *harness) tokenBalance(acct sdk.Address) uint64 {
	ta := h.ledger.TokenAccount(acct)
	if ta == nil {
		return 0
	}
	return ta.Balance
}
