//go:build !wasm

package main

import (
	"fmt"
	"strconv"

	"vote_dao/contract"
	"vote_dao/sdk"
)

// Local driver: runs a full governance round against the mock ledger so the
// whole transition catalogue can be exercised without a chain. Handy for
// eyeballing event lines and record blobs during development.

const (
	authority = sdk.Address("wallet:authority")
	alice     = sdk.Address("wallet:alice")
	bob       = sdk.Address("wallet:bob")
)

var txSeq int

func call(ledger *sdk.MockLedger, sender sdk.Address, ts int64, method, payload string) {
	txSeq++
	env := sdk.Env{
		ContractId:  contract.ProgramID.String(),
		TxId:        "tx-" + strconv.Itoa(txSeq),
		BlockId:     "block-" + strconv.Itoa(txSeq),
		BlockHeight: uint64(txSeq),
		Timestamp:   strconv.FormatInt(ts, 10),
		Sender:      sdk.Sender{Address: sender, RequiredAuths: []sdk.Address{sender}},
	}
	ret, rerr := ledger.Execute(env, func() *string {
		p := payload
		return contract.Dispatch(method, &p)
	})
	if rerr != nil {
		fmt.Printf("%-34s -> REVERT %s\n", method, rerr.Error())
		return
	}
	msg := ""
	if ret != nil {
		msg = *ret
	}
	fmt.Printf("%-34s -> %s\n", method, msg)
}

func main() {
	ledger := sdk.NewMockLedger(contract.ProgramID)
	sdk.Use(ledger)

	ledger.Credit(authority, 1_000_000)
	ledger.Credit(alice, 1_000_000)
	ledger.Credit(bob, 1_000_000)

	mint := contract.XMintAddress()
	treasuryAcct := sdk.Address("token:treasury")
	aliceAcct := sdk.Address("token:alice")
	bobAcct := sdk.Address("token:bob")

	now := int64(1_700_000_000)

	call(ledger, authority, now, "initialize_treasury", `{"solPrice":1,"tokensPerPurchase":1000}`)

	ledger.CreateTokenAccount(treasuryAcct, authority, mint)
	ledger.CreateTokenAccount(aliceAcct, alice, mint)
	ledger.CreateTokenAccount(bobAcct, bob, mint)

	call(ledger, authority, now, "configure_treasury_token_account",
		fmt.Sprintf(`{"treasuryTokenAccount":%q}`, treasuryAcct))
	call(ledger, authority, now, "initialize_proposal_counter", `{}`)

	call(ledger, alice, now, "buy_tokens", fmt.Sprintf(`{"buyerTokenAccount":%q}`, aliceAcct))
	call(ledger, bob, now, "buy_tokens", fmt.Sprintf(`{"buyerTokenAccount":%q}`, bobAcct))

	deadline := now + 6
	call(ledger, alice, now, "register_proposal", fmt.Sprintf(
		`{"proposalInfo":"fund the community node","deadline":%d,"tokenAmount":100,"proposalTokenAccount":%q}`,
		deadline, aliceAcct))

	call(ledger, bob, now, "register_voter", `{}`)
	call(ledger, bob, now+1, "proposal_to_vote", fmt.Sprintf(
		`{"proposalId":0,"tokenAmount":50,"voterTokenAccount":%q}`, bobAcct))

	// one beat past the deadline
	call(ledger, authority, deadline, "pick_winner", `{"proposalId":0}`)
	call(ledger, alice, deadline, "close_proposal", `{"proposalId":0,"destination":""}`)
	call(ledger, bob, deadline, "close_voter", `{}`)
	call(ledger, authority, deadline, "withdraw_sol", `{"amount":2}`)

	fmt.Println("\nevent log:")
	for _, line := range ledger.Logs() {
		fmt.Println("  " + line)
	}
}
