package contract_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vote_dao/contract"
	"vote_dao/sdk"
)

func votePayload(id uint8, amount uint64, acct sdk.Address) string {
	return fmt.Sprintf(`{"proposalId":%d,"tokenAmount":%d,"voterTokenAccount":%q}`,
		id, amount, acct.String())
}

func TestRegisterVoterOncePerWallet(t *testing.T) {
	h := newHarness(t)
	h.setupTreasury(1, 1000)

	h.mustCall(bob, baseTime, "register_voter", `{}`)
	h.mustFail(bob, baseTime, "register_voter", `{}`, contract.ErrVoterAlreadyRegistered)

	raw := h.ledger.StateGet(contract.VoterAddress(bob).String())
	require.NotNil(t, raw)
	v, err := contract.DecodeVoter([]byte(*raw))
	require.NoError(t, err)
	assert.Equal(t, bob, v.VoterID)
	assert.False(t, v.Voted)
}

func TestProposalToVote(t *testing.T) {
	h := newHarness(t)
	h.setupTreasury(1, 1000)
	h.fundTokens(aliceAcct, 100)
	h.fundTokens(bobAcct, 100)

	h.registerProposal(alice, aliceAcct, baseTime+100, 10)
	h.mustCall(bob, baseTime, "register_voter", `{}`)

	h.mustCall(bob, baseTime+1, "proposal_to_vote", votePayload(0, 50, bobAcct))

	raw := h.ledger.StateGet(contract.ProposalAddress(0).String())
	require.NotNil(t, raw)
	p, err := contract.DecodeProposal([]byte(*raw))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), p.NumberOfVotes)

	raw = h.ledger.StateGet(contract.VoterAddress(bob).String())
	require.NotNil(t, raw)
	v, err := contract.DecodeVoter([]byte(*raw))
	require.NoError(t, err)
	assert.True(t, v.Voted)
	assert.Equal(t, uint8(0), v.ProposalVoted)

	assert.Equal(t, uint64(50), h.tokenBalance(bobAcct))
	assert.Equal(t, uint64(60), h.tokenBalance(treasuryAcct))
}

func TestVoteRequiresRegistration(t *testing.T) {
	h := newHarness(t)
	h.setupTreasury(1, 1000)
	h.fundTokens(aliceAcct, 100)
	h.fundTokens(bobAcct, 100)

	h.registerProposal(alice, aliceAcct, baseTime+100, 10)
	h.mustFail(bob, baseTime+1, "proposal_to_vote", votePayload(0, 50, bobAcct),
		contract.ErrVoterNotRegistered)
}

func TestVoteAfterDeadlineRejected(t *testing.T) {
	h := newHarness(t)
	h.setupTreasury(1, 1000)
	h.fundTokens(aliceAcct, 100)
	h.fundTokens(bobAcct, 100)

	deadline := baseTime + 10
	h.registerProposal(alice, aliceAcct, deadline, 10)
	h.mustCall(bob, baseTime, "register_voter", `{}`)

	h.mustFail(bob, deadline, "proposal_to_vote", votePayload(0, 50, bobAcct),
		contract.ErrProposalEnded)
	h.mustFail(bob, deadline+100, "proposal_to_vote", votePayload(0, 50, bobAcct),
		contract.ErrProposalEnded)
	h.mustCall(bob, deadline-1, "proposal_to_vote", votePayload(0, 50, bobAcct))
}

func TestDoubleVoteRejected(t *testing.T) {
	h := newHarness(t)
	h.setupTreasury(1, 1000)
	h.fundTokens(aliceAcct, 100)
	h.fundTokens(bobAcct, 100)

	h.registerProposal(alice, aliceAcct, baseTime+100, 10)
	h.registerProposal(alice, aliceAcct, baseTime+100, 10)
	h.mustCall(bob, baseTime, "register_voter", `{}`)
	h.mustCall(bob, baseTime+1, "proposal_to_vote", votePayload(0, 10, bobAcct))

	// consumed for the whole registration epoch, other proposals included
	h.mustFail(bob, baseTime+2, "proposal_to_vote", votePayload(0, 10, bobAcct),
		contract.ErrVoterAlreadyVoted)
	h.mustFail(bob, baseTime+2, "proposal_to_vote", votePayload(1, 10, bobAcct),
		contract.ErrVoterAlreadyVoted)

	raw := h.ledger.StateGet(contract.ProposalAddress(0).String())
	require.NotNil(t, raw)
	p, err := contract.DecodeProposal([]byte(*raw))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), p.NumberOfVotes, "failed vote must leave the tally unchanged")
}

func TestVoteTokenAccountValidation(t *testing.T) {
	h := newHarness(t)
	h.setupTreasury(1, 1000)
	h.fundTokens(aliceAcct, 100)
	h.fundTokens(bobAcct, 100)

	h.registerProposal(alice, aliceAcct, baseTime+100, 10)
	h.mustCall(bob, baseTime, "register_voter", `{}`)

	wrongMintAcct := contract.ProgramID + ":foreign"
	h.ledger.CreateTokenAccount(wrongMintAcct, bob, "contract:other:mint")

	h.mustFail(bob, baseTime+1, "proposal_to_vote", votePayload(0, 10, wrongMintAcct),
		contract.ErrTokenMintMismatch)
	h.mustFail(bob, baseTime+1, "proposal_to_vote", votePayload(0, 10, aliceAcct),
		contract.ErrInvalidTokenAccountOwner)
}

func TestVoteTallyOverflowRejected(t *testing.T) {
	h := newHarness(t)
	h.setupTreasury(1, 1000)
	h.fundTokens(bobAcct, 100)

	// seed a proposal record already at the tally ceiling
	h.ledger.StateSet(contract.ProposalAddress(0).String(), string(contract.EncodeProposal(&contract.Proposal{
		ProposalID:    0,
		NumberOfVotes: math.MaxUint64,
		Deadline:      baseTime + 100,
		ProposalInfo:  "saturated",
		Authority:     alice,
	})))
	h.mustCall(bob, baseTime, "register_voter", `{}`)

	h.mustFail(bob, baseTime+1, "proposal_to_vote", votePayload(0, 10, bobAcct),
		contract.ErrProposalVotesOverflow)
	assert.Equal(t, uint64(100), h.tokenBalance(bobAcct), "stake must not move on overflow")
}

func TestCloseVoterReArmsWallet(t *testing.T) {
	h := newHarness(t)
	h.setupTreasury(1, 1000)
	h.fundTokens(aliceAcct, 100)
	h.fundTokens(bobAcct, 100)

	h.registerProposal(alice, aliceAcct, baseTime+100, 10)
	h.registerProposal(alice, aliceAcct, baseTime+100, 10)
	h.mustCall(bob, baseTime, "register_voter", `{}`)
	h.mustCall(bob, baseTime+1, "proposal_to_vote", votePayload(0, 10, bobAcct))

	recordAddr := contract.VoterAddress(bob)
	deposit := h.ledger.Balance(recordAddr)
	require.Positive(t, deposit)
	bobBefore := h.ledger.Balance(bob)

	h.mustCall(bob, baseTime+2, "close_voter", `{}`)
	assert.Nil(t, h.ledger.StateGet(recordAddr.String()))
	assert.Equal(t, bobBefore+deposit, h.ledger.Balance(bob))

	// fresh registration, fresh single-use ballot
	h.mustCall(bob, baseTime+3, "register_voter", `{}`)
	h.mustCall(bob, baseTime+4, "proposal_to_vote", votePayload(1, 10, bobAcct))

	h.mustFail(carol, baseTime+5, "close_voter", `{}`, contract.ErrVoterNotRegistered)
}
