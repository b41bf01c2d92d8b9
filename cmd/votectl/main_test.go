package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vote_dao/contract"
)

func TestResolveAddr(t *testing.T) {
	addr, err := resolveAddr([]string{"treasury-config"})
	require.NoError(t, err)
	assert.Equal(t, contract.TreasuryConfigAddress(), addr)

	addr, err = resolveAddr([]string{"proposal", "7"})
	require.NoError(t, err)
	assert.Equal(t, contract.ProposalAddress(7), addr)

	addr, err = resolveAddr([]string{"voter", "wallet:alice"})
	require.NoError(t, err)
	assert.Equal(t, contract.VoterAddress("wallet:alice"), addr)

	_, err = resolveAddr([]string{"proposal", "300"})
	assert.Error(t, err)
	_, err = resolveAddr([]string{"nonsense"})
	assert.Error(t, err)
}

func TestDecodeRecord(t *testing.T) {
	blob := contract.EncodeProposal(&contract.Proposal{
		ProposalID:   3,
		Deadline:     1_700_000_000,
		ProposalInfo: "hello",
		Authority:    "wallet:alice",
	})
	record, err := decodeRecord(blob)
	require.NoError(t, err)
	p, ok := record.(*contract.Proposal)
	require.True(t, ok)
	assert.Equal(t, uint8(3), p.ProposalID)

	_, err = decodeRecord([]byte{0xff, 0x00})
	assert.Error(t, err)
}
