package tonapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/status", r.URL.Path)
		w.Write([]byte(`{"rest_online":true,"indexing_latency":2}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.RestOnline)
	assert.Equal(t, 2, status.IndexingLatency)
}

func TestGetAccountTransactions_LTBounds(t *testing.T) {
	t.Run("before_lt is always sent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "0", q.Get("before_lt"))
			assert.Equal(t, "100", q.Get("limit"))
			assert.False(t, q.Has("after_lt"))
			w.Write([]byte(`{"transactions":[]}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.GetAccountTransactions(context.Background(), "EQB...")
		require.NoError(t, err)
	})

	t.Run("after_lt is sent when set", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "25758317000002", q.Get("before_lt"))
			assert.Equal(t, "25758316000001", q.Get("after_lt"))
			w.Write([]byte(`{"transactions":[]}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.GetAccountTransactions(context.Background(), "EQB...",
			WithBeforeLT(25758317000002),
			WithAfterLT(25758316000001),
		)
		require.NoError(t, err)
	})
}

func TestGetMasterchainShards(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/blockchain/masterchain/34835953/shards", r.URL.Path)
		w.Write([]byte(`{"shards":[{"workchain_id":0,"shard":"8000000000000000","seqno":40834445}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	shards, err := client.GetMasterchainShards(context.Background(), 34835953)
	require.NoError(t, err)
	require.Len(t, shards.Shards, 1)
	assert.Equal(t, int64(40834445), shards.Shards[0].Seqno)
}

func TestExecGetMethod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/blockchain/accounts/EQB.../methods/seqno", r.URL.Path)
		assert.Equal(t, "0x1", r.URL.Query().Get("args"))
		w.Write([]byte(`{"success":true,"exit_code":0,"stack":[{"type":"num","num":"0x1"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	result, err := client.ExecGetMethod(context.Background(), "EQB...", "seqno", "0x1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.Stack, 1)
	assert.Equal(t, "num", result.Stack[0].Type)
}

func TestExecGetMethod_NoArgs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("args"))
		w.Write([]byte(`{"success":true,"exit_code":0,"stack":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.ExecGetMethod(context.Background(), "EQB...", "seqno", "")
	require.NoError(t, err)
}
