package indexer

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func apply(t *testing.T, store *Store, lines ...string) {
	t.Helper()
	ctx := context.Background()
	at := time.Unix(1_700_000_000, 0).UTC()
	for _, line := range lines {
		ev, err := ParseEvent(line)
		require.NoError(t, err)
		require.NoError(t, store.Apply(ctx, ev, at))
	}
}

func TestStoreProjectsProposalLifecycle(t *testing.T) {
	store := openTestStore(t)
	apply(t, store,
		"pc|id:0|by:wallet:alice|dl:1700000100|stake:100",
		"v|id:0|by:wallet:bob|n:1|stake:50",
		"v|id:0|by:wallet:carol|n:2|stake:25",
		"px|id:0|rent:1200|to:wallet:alice",
	)

	ctx := context.Background()
	p, found, err := store.GetProposal(ctx, 0)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "wallet:alice", p.Creator)
	assert.Equal(t, int64(1700000100), p.Deadline)
	assert.Equal(t, uint64(100), p.Stake)
	assert.Equal(t, uint64(2), p.Votes)
	assert.True(t, p.Closed)

	_, found, err = store.GetProposal(ctx, 9)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreListsProposalsInIdOrder(t *testing.T) {
	store := openTestStore(t)
	apply(t, store,
		"pc|id:1|by:wallet:bob|dl:1700000100|stake:10",
		"pc|id:0|by:wallet:alice|dl:1700000100|stake:10",
	)

	proposals, err := store.ListProposals(context.Background())
	require.NoError(t, err)
	require.Len(t, proposals, 2)
	assert.Equal(t, uint8(0), proposals[0].ID)
	assert.Equal(t, uint8(1), proposals[1].ID)
}

func TestStoreWinnerOverwrite(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, found, err := store.GetWinner(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	apply(t, store,
		"w|id:0|votes:1|at:1700000200",
		"w|id:1|votes:3|at:1700000300",
	)

	w, found, err := store.GetWinner(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint8(1), w.ProposalID)
	assert.Equal(t, uint64(3), w.Votes)
	assert.Equal(t, int64(1700000300), w.DeclaredAt)
}

func TestIngesterSkipsBadLines(t *testing.T) {
	store := openTestStore(t)
	metrics := NewMetrics(newTestRegistry())
	ing := NewIngester(store, metrics, nil)

	ctx := context.Background()
	require.Error(t, ing.IngestLine(ctx, "not an event"))
	require.NoError(t, ing.IngestLine(ctx, "pc|id:0|by:wallet:alice|dl:1700000100|stake:1"))

	proposals, err := store.ListProposals(ctx)
	require.NoError(t, err)
	assert.Len(t, proposals, 1)
}
