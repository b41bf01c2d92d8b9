package contract

import "vote_dao/sdk"

// Handler is one named transition over a JSON payload.
type Handler func(payload *string) *string

// handlers is the transition catalogue keyed by wire method name. The wasm
// entrypoints, the local driver and the test harness all route through it.
var handlers = map[string]Handler{
	"initialize_treasury":              InitializeTreasury,
	"configure_treasury_token_account": ConfigureTreasuryTokenAccount,
	"buy_tokens":                       BuyTokens,
	"initialize_proposal_counter":      InitializeProposalCounter,
	"register_proposal":                RegisterProposal,
	"register_voter":                   RegisterVoter,
	"proposal_to_vote":                 ProposalToVote,
	"pick_winner":                      PickWinner,
	"close_proposal":                   CloseProposal,
	"close_voter":                      CloseVoter,
	"withdraw_sol":                     WithdrawSol,
}

// Dispatch routes a wire method name to its handler, aborting on unknown names.
func Dispatch(method string, payload *string) *string {
	h, ok := handlers[method]
	if !ok {
		sdk.Abort("unknown method: " + method)
	}
	return h(payload)
}

// Methods lists the catalogued method names for tooling.
func Methods() []string {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	return names
}
