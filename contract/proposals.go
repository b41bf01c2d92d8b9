package contract

import (
	"fmt"

	"vote_dao/sdk"
)

// InitializeProposalCounter creates the singleton id counter. The sender
// becomes the governance authority that later finalizes winners.
func InitializeProposalCounter(payload *string) *string {
	if loadProposalCounter() != nil {
		fail(ErrProposalCounterAlreadyInitialized, "proposal counter already exists")
	}

	sender := getSenderAddress()
	saveProposalCounter(&ProposalCounter{
		Authority:     sender,
		ProposalCount: 0,
	})

	emitProposalCounterInitialized(sender.String())
	return strptr("proposal counter initialized")
}

// RegisterProposal admits a new proposal: the creator stakes governance tokens
// into the treasury, pays the record's storage deposit and receives the next
// id in submission order. Ids are never reused, so the one-byte space running
// out is terminal for the counter.
func RegisterProposal(payload *string) *string {
	var args RegisterProposalArgs
	unmarshalArgs(payload, &args, "registerProposal")

	counter := mustProposalCounter()
	cfg := mustTreasuryConfig()
	if cfg.TreasuryTokenAccount.IsZero() {
		fail(ErrNotInitialized, "treasury token account not configured")
	}

	if args.Deadline <= nowUnix() {
		fail(ErrInvalidDeadline, "deadline must be in the future")
	}
	if len(args.ProposalInfo) > MaxProposalInfoLength {
		sdk.Abort(fmt.Sprintf("proposal info exceeds %d characters", MaxProposalInfoLength))
	}
	if counter.ProposalCount >= ProposalIDSpace {
		fail(ErrProposalCounterOverflow, "proposal id space exhausted")
	}

	sender := getSenderAddress()

	stakeAddr := sdk.Address(args.ProposalTokenAccount)
	stakeAcct := sdk.GetTokenAccount(stakeAddr)
	if stakeAcct == nil {
		fail(ErrInvalidTokenAccountOwner, "proposal token account does not exist")
	}
	if stakeAcct.Mint != cfg.XMint {
		fail(ErrInvalidMint, "proposal token account is not on the governance mint")
	}
	if stakeAcct.Owner != sender {
		fail(ErrInvalidTokenAccountOwner, "proposal token account is not owned by the sender")
	}

	id := uint8(counter.ProposalCount)
	proposal := &Proposal{
		ProposalID:    id,
		NumberOfVotes: 0,
		Deadline:      args.Deadline,
		ProposalInfo:  args.ProposalInfo,
		Authority:     sender,
	}

	encoded := EncodeProposal(proposal)
	sdk.Draw(ProposalAddress(id), rentDeposit(len(encoded)))
	sdk.TokenDraw(stakeAddr, cfg.TreasuryTokenAccount, args.TokenAmount)

	counter.ProposalCount++
	saveProposalCounter(counter)
	sdk.StateSet(ProposalAddress(id).String(), string(encoded))

	emitProposalCreated(id, sender.String(), args.Deadline, args.TokenAmount)
	return strptr(fmt.Sprintf("proposal %d registered", id))
}

// CloseProposal destroys a proposal after its deadline, returning the storage
// deposit to the destination the creator picks. The id stays burned; the
// record becomes permanently unaddressable.
func CloseProposal(payload *string) *string {
	var args CloseProposalArgs
	unmarshalArgs(payload, &args, "closeProposal")

	proposal := loadProposal(args.ProposalID)
	sender := getSenderAddress()
	if sender != proposal.Authority {
		fail(ErrUnauthorizedAccess, "only the proposal creator can close it")
	}
	if nowUnix() < proposal.Deadline {
		fail(ErrVotingStillActive, "proposal deadline has not passed yet")
	}

	destination := sdk.Address(args.Destination)
	if destination.IsZero() {
		destination = sender
	}

	recordAddr := ProposalAddress(proposal.ProposalID)
	deposit := sdk.Balance(recordAddr)
	if deposit > 0 {
		sdk.Transfer(recordAddr, destination, deposit)
	}
	deleteProposal(proposal.ProposalID)

	emitProposalClosed(proposal.ProposalID, deposit, destination.String())
	return strptr(fmt.Sprintf("proposal %d closed", proposal.ProposalID))
}
