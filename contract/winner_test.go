package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vote_dao/contract"
)

func loadWinnerRecord(t *testing.T, h *harness) *contract.Winner {
	t.Helper()
	raw := h.ledger.StateGet(contract.WinnerAddress().String())
	require.NotNil(t, raw, "winner record missing")
	w, err := contract.DecodeWinner([]byte(*raw))
	require.NoError(t, err)
	return w
}

func TestPickWinner(t *testing.T) {
	h := newHarness(t)
	h.setupTreasury(1, 1000)
	h.fundTokens(aliceAcct, 100)
	h.fundTokens(bobAcct, 100)

	deadline := baseTime + 10
	h.registerProposal(alice, aliceAcct, deadline, 10)
	h.mustCall(bob, baseTime, "register_voter", `{}`)
	h.mustCall(bob, baseTime+1, "proposal_to_vote", votePayload(0, 10, bobAcct))

	h.mustFail(alice, deadline+1, "pick_winner", `{"proposalId":0}`, contract.ErrUnauthorizedAccess)
	h.mustFail(authority, deadline-1, "pick_winner", `{"proposalId":0}`, contract.ErrVotingStillActive)
	assert.Nil(t, h.ledger.StateGet(contract.WinnerAddress().String()))

	h.mustCall(authority, deadline+5, "pick_winner", `{"proposalId":0}`)
	w := loadWinnerRecord(t, h)
	assert.Equal(t, uint8(0), w.WinningProposalID)
	assert.Equal(t, uint64(1), w.WinningVotes)
	assert.Equal(t, "test proposal", w.ProposalInfo)
	assert.Equal(t, deadline+5, w.DeclaredAt)
}

func TestPickWinnerRequiresVotes(t *testing.T) {
	h := newHarness(t)
	h.setupTreasury(1, 1000)
	h.fundTokens(aliceAcct, 100)

	deadline := baseTime + 10
	h.registerProposal(alice, aliceAcct, deadline, 10)

	h.mustFail(authority, deadline+1, "pick_winner", `{"proposalId":0}`, contract.ErrNoVotesCast)
	h.mustFail(authority, deadline+1, "pick_winner", `{"proposalId":7}`, contract.ErrProposalNotFound)
}

func TestPickWinnerOverwrites(t *testing.T) {
	h := newHarness(t)
	h.setupTreasury(1, 1000)
	h.fundTokens(aliceAcct, 100)
	h.fundTokens(bobAcct, 100)
	h.fundTokens(carolAcct, 100)

	deadline := baseTime + 10
	h.registerProposal(alice, aliceAcct, deadline, 10)
	h.registerProposal(alice, aliceAcct, deadline, 10)

	h.mustCall(bob, baseTime, "register_voter", `{}`)
	h.mustCall(carol, baseTime, "register_voter", `{}`)
	h.mustCall(bob, baseTime+1, "proposal_to_vote", votePayload(0, 10, bobAcct))
	h.mustCall(carol, baseTime+1, "proposal_to_vote", votePayload(1, 10, carolAcct))

	h.mustCall(authority, deadline+1, "pick_winner", `{"proposalId":0}`)
	assert.Equal(t, uint8(0), loadWinnerRecord(t, h).WinningProposalID)

	// a later qualifying call simply replaces the record, no history kept
	h.mustCall(authority, deadline+2, "pick_winner", `{"proposalId":1}`)
	w := loadWinnerRecord(t, h)
	assert.Equal(t, uint8(1), w.WinningProposalID)
	assert.Equal(t, uint64(1), w.WinningVotes)
}
