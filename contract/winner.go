package contract

import "fmt"

// PickWinner finalizes a proposal into the singleton winner record. Only the
// governance authority may call it, only after the proposal's deadline and
// only when at least one vote landed. Every qualifying call overwrites the
// previous winner; no history is kept.
func PickWinner(payload *string) *string {
	var args PickWinnerArgs
	unmarshalArgs(payload, &args, "pickWinner")

	counter := mustProposalCounter()
	sender := getSenderAddress()
	if sender != counter.Authority {
		fail(ErrUnauthorizedAccess, "only the governance authority can pick a winner")
	}

	proposal := loadProposal(args.ProposalID)
	now := nowUnix()
	if now < proposal.Deadline {
		fail(ErrVotingStillActive, "proposal deadline has not passed yet")
	}
	if proposal.NumberOfVotes == 0 {
		fail(ErrNoVotesCast, "proposal received no votes")
	}

	saveWinner(&Winner{
		WinningProposalID: proposal.ProposalID,
		WinningVotes:      proposal.NumberOfVotes,
		ProposalInfo:      proposal.ProposalInfo,
		DeclaredAt:        now,
	})

	emitWinnerDeclared(proposal.ProposalID, proposal.NumberOfVotes, now)
	return strptr(fmt.Sprintf("proposal %d declared winner with %d votes", proposal.ProposalID, proposal.NumberOfVotes))
}
