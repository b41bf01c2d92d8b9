package contract

import "vote_dao/sdk"

// ProgramID is the contract's own identity. Every record address is derived
// under this namespace, so external callers can compute addresses offline.
const ProgramID sdk.Address = "contract:vote_dao"

// -----------------------------------------------------------------------------
// Seed strings
// -----------------------------------------------------------------------------

// Fixed seeds for the protocol's derived accounts. Per-entity records add a
// discriminator: the proposal id as one big-endian byte, or the owner address.
const (
	seedTreasuryConfig  = "treasury_config"
	seedXMint           = "x_mint"
	seedSolVault        = "sol_vault"
	seedMintAuthority   = "mint_authority"
	seedProposalCounter = "proposal_counter"
	seedProposal        = "proposal"
	seedVoter           = "voter"
	seedWinner          = "winner"
)

// -----------------------------------------------------------------------------
// Token economy
// -----------------------------------------------------------------------------

// XMintDecimals is the governance token's decimal scaling.
const XMintDecimals = 6

// -----------------------------------------------------------------------------
// Proposal id space
// -----------------------------------------------------------------------------

// ProposalIDSpace is the closed one-byte id domain: ids 0..255. The counter
// rejects the registration that would leave this space instead of widening it,
// since every proposal address is derived from the single id byte.
const ProposalIDSpace = 256

// -----------------------------------------------------------------------------
// Validation limits
// -----------------------------------------------------------------------------

// MaxProposalInfoLength limits the free-text proposal description.
const MaxProposalInfoLength = 500

// -----------------------------------------------------------------------------
// Storage deposits
// -----------------------------------------------------------------------------

// Records carry a refundable deposit at their own derived address, returned to
// a chosen destination when the record is destroyed.
const (
	rentBaseDeposit  uint64 = 1024
	rentPerByte      uint64 = 8
)

// rentDeposit prices the storage deposit for a record of the given encoded size.
func rentDeposit(encodedLen int) uint64 {
	return rentBaseDeposit + rentPerByte*uint64(encodedLen)
}

// -----------------------------------------------------------------------------
// Record format bytes
// -----------------------------------------------------------------------------

// Leading byte of every stored record blob, so decoders never misread a blob
// written for a different record kind.
const (
	recTreasuryConfig  byte = 0x01
	recProposalCounter byte = 0x02
	recProposal        byte = 0x03
	recVoter           byte = 0x04
	recWinner          byte = 0x05
)
