package contract

import "vote_dao/sdk"

// Protocol error symbols. Every failure is synchronous and named; a revert
// leaves zero state changes behind (the host discards the transition).
const (
	ErrAlreadyInitialized                = "AlreadyInitialized"
	ErrProposalCounterAlreadyInitialized = "ProposalCounterAlreadyInitialized"
	ErrNotInitialized                    = "NotInitialized"
	ErrUnauthorizedAccess                = "UnauthorizedAccess"
	ErrInvalidMint                       = "InvalidMint"
	ErrInvalidTokenAccountOwner          = "InvalidTokenAccountOwner"
	ErrTokenMintMismatch                 = "TokenMintMismatch"
	ErrInvalidDeadline                   = "InvalidDeadline"
	ErrProposalCounterOverflow           = "ProposalCounterOverflow"
	ErrProposalEnded                     = "ProposalEnded"
	ErrVotingStillActive                 = "VotingStillActive"
	ErrNoVotesCast                       = "NoVotesCast"
	ErrVoterAlreadyRegistered            = "VoterAlreadyRegistered"
	ErrVoterNotRegistered                = "VoterNotRegistered"
	ErrVoterAlreadyVoted                 = "VoterAlreadyVoted"
	ErrProposalVotesOverflow             = "ProposalVotesOverflow"
	ErrProposalNotFound                  = "ProposalNotFound"
	ErrInsufficientVaultBalance          = "InsufficientVaultBalance"
)

// fail reverts the whole transition with a named symbol before any mutation
// lands. Handlers validate first, mutate last, so this is always safe to call.
func fail(symbol, msg string) {
	sdk.Revert(msg, symbol)
}
