//go:build wasm

package main

import (
	"vote_dao/contract"
)

// Transition entrypoints exported to the host runtime. Each wrapper stays a
// one-liner so the full handler logic remains testable off-chain.

//go:wasmexport initialize_treasury
func initializeTreasury(payload *string) *string { return contract.InitializeTreasury(payload) }

//go:wasmexport configure_treasury_token_account
func configureTreasuryTokenAccount(payload *string) *string {
	return contract.ConfigureTreasuryTokenAccount(payload)
}

//go:wasmexport buy_tokens
func buyTokens(payload *string) *string { return contract.BuyTokens(payload) }

//go:wasmexport initialize_proposal_counter
func initializeProposalCounter(payload *string) *string {
	return contract.InitializeProposalCounter(payload)
}

//go:wasmexport register_proposal
func registerProposal(payload *string) *string { return contract.RegisterProposal(payload) }

//go:wasmexport register_voter
func registerVoter(payload *string) *string { return contract.RegisterVoter(payload) }

//go:wasmexport proposal_to_vote
func proposalToVote(payload *string) *string { return contract.ProposalToVote(payload) }

//go:wasmexport pick_winner
func pickWinner(payload *string) *string { return contract.PickWinner(payload) }

//go:wasmexport close_proposal
func closeProposal(payload *string) *string { return contract.CloseProposal(payload) }

//go:wasmexport close_voter
func closeVoter(payload *string) *string { return contract.CloseVoter(payload) }

//go:wasmexport withdraw_sol
func withdrawSol(payload *string) *string { return contract.WithdrawSol(payload) }

func main() {}
