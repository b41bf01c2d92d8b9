package contract

import (
	"fmt"

	"vote_dao/sdk"
)

// One terse pipe-delimited log line per committed transition. Indexing bots
// and explorers replay governance activity from these lines alone instead of
// scanning full storage diffs.

// emitTreasuryInitialized announces the singleton config with its pricing.
func emitTreasuryInitialized(authority string, solPrice, tokensPerPurchase uint64) {
	sdk.Log(fmt.Sprintf(
		"ti|by:%s|price:%d|tokens:%d",
		authority,
		solPrice,
		tokensPerPurchase,
	))
}

// emitTreasuryTokenAccountConfigured records which external token account now backs the treasury.
func emitTreasuryTokenAccountConfigured(account string) {
	sdk.Log(fmt.Sprintf(
		"tc|acct:%s",
		account,
	))
}

// emitTokensPurchased leaves the paid/received pair so supply growth can be audited per buyer.
func emitTokensPurchased(buyer string, solPaid, tokensReceived uint64) {
	sdk.Log(fmt.Sprintf(
		"tp|by:%s|paid:%d|recv:%d",
		buyer,
		solPaid,
		tokensReceived,
	))
}

// emitSolWithdrawn traces authority withdrawals from the vault.
func emitSolWithdrawn(to string, amount uint64) {
	sdk.Log(fmt.Sprintf(
		"tw|to:%s|am:%d",
		to,
		amount,
	))
}

// emitProposalCounterInitialized pings once when governance opens for business.
func emitProposalCounterInitialized(authority string) {
	sdk.Log(fmt.Sprintf(
		"ci|by:%s",
		authority,
	))
}

// emitProposalCreated keeps observers updated with a short pc line for every new idea.
func emitProposalCreated(proposalId uint8, creator string, deadline int64, stake uint64) {
	sdk.Log(fmt.Sprintf(
		"pc|id:%d|by:%s|dl:%d|stake:%d",
		proposalId,
		creator,
		deadline,
		stake,
	))
}

// emitProposalClosed reports the reclaimed deposit and where it went.
func emitProposalClosed(proposalId uint8, rentRecovered uint64, recoveredTo string) {
	sdk.Log(fmt.Sprintf(
		"px|id:%d|rent:%d|to:%s",
		proposalId,
		rentRecovered,
		recoveredTo,
	))
}

// emitVoterRegistered signals a fresh single-use ballot for the wallet.
func emitVoterRegistered(voter string) {
	sdk.Log(fmt.Sprintf(
		"vr|by:%s",
		voter,
	))
}

// emitVoterClosed marks the ballot destroyed, re-arming the wallet.
func emitVoterClosed(voter string, recoveredTo string) {
	sdk.Log(fmt.Sprintf(
		"vx|by:%s|to:%s",
		voter,
		recoveredTo,
	))
}

// emitVoteCast includes the running tally so counts can be replayed from logs only.
func emitVoteCast(proposalId uint8, voter string, totalVotes uint64, stake uint64) {
	sdk.Log(fmt.Sprintf(
		"v|id:%d|by:%s|n:%d|stake:%d",
		proposalId,
		voter,
		totalVotes,
		stake,
	))
}

// emitWinnerDeclared snapshots the finalization result.
func emitWinnerDeclared(proposalId uint8, votes uint64, declaredAt int64) {
	sdk.Log(fmt.Sprintf(
		"w|id:%d|votes:%d|at:%d",
		proposalId,
		votes,
		declaredAt,
	))
}
