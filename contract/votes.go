package contract

import (
	"fmt"
	"math"

	"vote_dao/sdk"
)

// RegisterVoter creates the sender's single-use ballot record. The derived
// address is keyed by the wallet, so a second registration collides with the
// existing record instead of minting a fresh ballot.
func RegisterVoter(payload *string) *string {
	sender := getSenderAddress()
	if loadVoter(sender) != nil {
		fail(ErrVoterAlreadyRegistered, "voter record already exists for this wallet")
	}

	voter := &Voter{VoterID: sender}
	encoded := EncodeVoter(voter)
	sdk.Draw(VoterAddress(sender), rentDeposit(len(encoded)))
	sdk.StateSet(VoterAddress(sender).String(), string(encoded))

	emitVoterRegistered(sender.String())
	return strptr("voter registered")
}

// ProposalToVote casts the sender's one vote: stake moves to the treasury,
// the proposal tally increments by exactly one and the ballot is consumed for
// the rest of its lifetime.
func ProposalToVote(payload *string) *string {
	var args ProposalToVoteArgs
	unmarshalArgs(payload, &args, "proposalToVote")

	cfg := mustTreasuryConfig()
	if cfg.TreasuryTokenAccount.IsZero() {
		fail(ErrNotInitialized, "treasury token account not configured")
	}

	sender := getSenderAddress()
	voter := loadVoter(sender)
	if voter == nil {
		fail(ErrVoterNotRegistered, "no voter record for this wallet")
	}

	proposal := loadProposal(args.ProposalID)
	if nowUnix() >= proposal.Deadline {
		fail(ErrProposalEnded, "proposal deadline has passed")
	}
	if voter.Voted {
		fail(ErrVoterAlreadyVoted, "voter record already holds a vote")
	}

	stakeAddr := sdk.Address(args.VoterTokenAccount)
	stakeAcct := sdk.GetTokenAccount(stakeAddr)
	if stakeAcct == nil {
		fail(ErrInvalidTokenAccountOwner, "voter token account does not exist")
	}
	if stakeAcct.Mint != cfg.XMint {
		fail(ErrTokenMintMismatch, "voter token account is not on the governance mint")
	}
	if stakeAcct.Owner != sender {
		fail(ErrInvalidTokenAccountOwner, "voter token account is not owned by the sender")
	}

	if proposal.NumberOfVotes == math.MaxUint64 {
		fail(ErrProposalVotesOverflow, "vote tally would overflow")
	}

	sdk.TokenDraw(stakeAddr, cfg.TreasuryTokenAccount, args.TokenAmount)

	proposal.NumberOfVotes++
	voter.Voted = true
	voter.ProposalVoted = proposal.ProposalID
	saveProposal(proposal)
	saveVoter(voter)

	emitVoteCast(proposal.ProposalID, sender.String(), proposal.NumberOfVotes, args.TokenAmount)
	return strptr(fmt.Sprintf("voted for proposal %d", proposal.ProposalID))
}

// CloseVoter destroys the sender's ballot and refunds its storage deposit,
// re-arming the wallet to register and vote again later.
func CloseVoter(payload *string) *string {
	sender := getSenderAddress()
	if loadVoter(sender) == nil {
		fail(ErrVoterNotRegistered, "no voter record for this wallet")
	}

	recordAddr := VoterAddress(sender)
	deposit := sdk.Balance(recordAddr)
	if deposit > 0 {
		sdk.Transfer(recordAddr, sender, deposit)
	}
	deleteVoter(sender)

	emitVoterClosed(sender.String(), sender.String())
	return strptr("voter closed")
}
