package contract

import "vote_dao/sdk"

// Record addresses double as storage keys: each record blob lives at the kv
// key equal to its derived address, and its storage deposit sits at the same
// address on the native ledger.

// TreasuryConfigAddress locates the singleton pricing config.
func TreasuryConfigAddress() sdk.Address {
	return sdk.DeriveAddress(ProgramID, seedTreasuryConfig, nil)
}

// XMintAddress locates the governance token mint.
func XMintAddress() sdk.Address {
	return sdk.DeriveAddress(ProgramID, seedXMint, nil)
}

// SolVaultAddress locates the native-currency vault fed by token purchases.
func SolVaultAddress() sdk.Address {
	return sdk.DeriveAddress(ProgramID, seedSolVault, nil)
}

// MintAuthorityAddress locates the program-controlled mint authority.
func MintAuthorityAddress() sdk.Address {
	return sdk.DeriveAddress(ProgramID, seedMintAuthority, nil)
}

// ProposalCounterAddress locates the singleton proposal counter.
func ProposalCounterAddress() sdk.Address {
	return sdk.DeriveAddress(ProgramID, seedProposalCounter, nil)
}

// ProposalAddress locates a proposal record by its one-byte id.
func ProposalAddress(id uint8) sdk.Address {
	return sdk.DeriveAddress(ProgramID, seedProposal, []byte{id})
}

// VoterAddress locates the voter record of a wallet.
func VoterAddress(owner sdk.Address) sdk.Address {
	return sdk.DeriveAddress(ProgramID, seedVoter, []byte(owner))
}

// WinnerAddress locates the singleton winner record.
func WinnerAddress() sdk.Address {
	return sdk.DeriveAddress(ProgramID, seedWinner, nil)
}
