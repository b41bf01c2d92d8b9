package indexer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() prometheus.Registerer {
	return prometheus.NewRegistry()
}

func serveTest(t *testing.T, store *Store, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	NewServer(store).Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	store := openTestStore(t)
	rec := serveTest(t, store, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProposalEndpoints(t *testing.T) {
	store := openTestStore(t)
	apply(t, store,
		"pc|id:0|by:wallet:alice|dl:1700000100|stake:100",
		"v|id:0|by:wallet:bob|n:1|stake:50",
	)

	rec := serveTest(t, store, http.MethodGet, "/v1/proposals")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Proposals []ProposalRow `json:"proposals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Proposals, 1)
	assert.Equal(t, uint64(1), list.Proposals[0].Votes)

	rec = serveTest(t, store, http.MethodGet, "/v1/proposals/0")
	require.Equal(t, http.StatusOK, rec.Code)
	var p ProposalRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "wallet:alice", p.Creator)

	rec = serveTest(t, store, http.MethodGet, "/v1/proposals/7")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serveTest(t, store, http.MethodGet, "/v1/proposals/900")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWinnerEndpoint(t *testing.T) {
	store := openTestStore(t)

	rec := serveTest(t, store, http.MethodGet, "/v1/winner")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	apply(t, store, "w|id:0|votes:1|at:1700000200")
	rec = serveTest(t, store, http.MethodGet, "/v1/winner")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"proposalId":0`))
}
