package contract

import "vote_dao/sdk"

// -----------------------------------------------------------------------------
// Account records
// -----------------------------------------------------------------------------

// TreasuryConfig is the singleton pricing/issuance configuration. XMint is
// immutable after initialization; TreasuryTokenAccount stays zero until the
// authority binds it via configure.
type TreasuryConfig struct {
	Authority            sdk.Address
	XMint                sdk.Address
	TreasuryTokenAccount sdk.Address
	SolPrice             uint64
	TokensPerPurchase    uint64
}

// ProposalCounter hands out proposal ids in strict submission order. The count
// is stored wider than the id byte so all 256 ids can be issued before the
// explicit overflow check trips; ids themselves never leave 0..255.
type ProposalCounter struct {
	Authority     sdk.Address
	ProposalCount uint16
}

// Proposal is one registered proposal. NumberOfVotes only ever increases and
// every increment is overflow-checked.
type Proposal struct {
	ProposalID    uint8
	NumberOfVotes uint64
	Deadline      int64
	ProposalInfo  string
	Authority     sdk.Address
}

// Voter is the single-use ballot record of one wallet. Voted flags whether the
// record has been consumed; ProposalVoted is only meaningful when Voted is set
// (id 0 is a valid proposal, so no zero-sentinel here).
type Voter struct {
	VoterID       sdk.Address
	Voted         bool
	ProposalVoted uint8
}

// Winner is the singleton finalization record, overwritten by every
// qualifying pickWinner call. No history of past winners is kept.
type Winner struct {
	WinningProposalID uint8
	WinningVotes      uint64
	ProposalInfo      string
	DeclaredAt        int64
}

// -----------------------------------------------------------------------------
// Operation payloads
// -----------------------------------------------------------------------------

//tinyjson:json
type InitializeTreasuryArgs struct {
	SolPrice          uint64 `json:"solPrice"`
	TokensPerPurchase uint64 `json:"tokensPerPurchase"`
}

//tinyjson:json
type ConfigureTreasuryTokenAccountArgs struct {
	TreasuryTokenAccount string `json:"treasuryTokenAccount"`
}

//tinyjson:json
type BuyTokensArgs struct {
	BuyerTokenAccount string `json:"buyerTokenAccount"`
}

//tinyjson:json
type RegisterProposalArgs struct {
	ProposalInfo         string `json:"proposalInfo"`
	Deadline             int64  `json:"deadline"`
	TokenAmount          uint64 `json:"tokenAmount"`
	ProposalTokenAccount string `json:"proposalTokenAccount"`
}

//tinyjson:json
type ProposalToVoteArgs struct {
	ProposalID        uint8  `json:"proposalId"`
	TokenAmount       uint64 `json:"tokenAmount"`
	VoterTokenAccount string `json:"voterTokenAccount"`
}

//tinyjson:json
type PickWinnerArgs struct {
	ProposalID uint8 `json:"proposalId"`
}

//tinyjson:json
type CloseProposalArgs struct {
	ProposalID  uint8  `json:"proposalId"`
	Destination string `json:"destination"`
}

//tinyjson:json
type WithdrawSolArgs struct {
	Amount uint64 `json:"amount"`
}
