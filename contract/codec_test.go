package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vote_dao/contract"
)

func TestTreasuryConfigCodecRoundTrip(t *testing.T) {
	in := &contract.TreasuryConfig{
		Authority:            authority,
		XMint:                contract.XMintAddress(),
		TreasuryTokenAccount: treasuryAcct,
		SolPrice:             3,
		TokensPerPurchase:    1000,
	}
	out, err := contract.DecodeTreasuryConfig(contract.EncodeTreasuryConfig(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestProposalCounterCodecRoundTrip(t *testing.T) {
	in := &contract.ProposalCounter{Authority: authority, ProposalCount: 256}
	out, err := contract.DecodeProposalCounter(contract.EncodeProposalCounter(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestProposalCodecRoundTrip(t *testing.T) {
	in := &contract.Proposal{
		ProposalID:    255,
		NumberOfVotes: 42,
		Deadline:      baseTime + 6,
		ProposalInfo:  "unicode is fine: ✓",
		Authority:     alice,
	}
	out, err := contract.DecodeProposal(contract.EncodeProposal(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestVoterCodecRoundTrip(t *testing.T) {
	in := &contract.Voter{VoterID: bob, Voted: true, ProposalVoted: 0}
	out, err := contract.DecodeVoter(contract.EncodeVoter(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWinnerCodecRoundTrip(t *testing.T) {
	in := &contract.Winner{
		WinningProposalID: 7,
		WinningVotes:      1,
		ProposalInfo:      "snapshot",
		DeclaredAt:        baseTime,
	}
	out, err := contract.DecodeWinner(contract.EncodeWinner(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeRejectsWrongRecordKind(t *testing.T) {
	blob := contract.EncodeVoter(&contract.Voter{VoterID: bob})
	_, err := contract.DecodeProposal(blob)
	assert.Error(t, err, "a voter blob must not decode as a proposal")
}
