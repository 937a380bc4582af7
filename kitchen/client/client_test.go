package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitchen-sim/kitchen-sim/kitchen"
)

func TestNewProblem_FetchesOrdersAndTestID(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/interview/challenge/new", r.URL.Path)
		gotQuery = map[string]string{
			"auth": r.URL.Query().Get("auth"),
			"seed": r.URL.Query().Get("seed"),
			"name": r.URL.Query().Get("name"),
		}
		w.Header().Set("x-test-id", "test-123")
		_, _ = w.Write([]byte(`[
			{"id":"a","name":"Pizza","temp":"hot","shelfLife":300,"decayRate":0.45},
			{"id":"b","name":"Gelato","temp":"frozen","shelfLife":120,"decayRate":1}
		]`))
	}))
	defer server.Close()

	c := New(server.URL, "token")
	testID, orders, err := c.NewProblem("tiny", 42)

	require.NoError(t, err)
	assert.Equal(t, "test-123", testID)
	assert.Equal(t, map[string]string{"auth": "token", "seed": "42", "name": "tiny"}, gotQuery)
	require.Len(t, orders, 2)
	assert.Equal(t, kitchen.Order{ID: "a", Name: "Pizza", Temp: kitchen.TempHot, ShelfLife: 300, DecayRate: 0.45}, orders[0])
	assert.Equal(t, kitchen.TempFrozen, orders[1].Temp)
}

func TestNewProblem_OmitsEmptyName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("name"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, _, err := New(server.URL, "token").NewProblem("", 1)
	require.NoError(t, err)
}

func TestNewProblem_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad auth", http.StatusForbidden)
	}))
	defer server.Close()

	_, _, err := New(server.URL, "wrong").NewProblem("", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSolve_SubmitsActionsWithOptions(t *testing.T) {
	var gotTestID string
	var gotBody solveRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/interview/challenge/solve", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "token", r.URL.Query().Get("auth"))
		gotTestID = r.Header.Get("x-test-id")
		payload, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(payload, &gotBody))
		_, _ = w.Write([]byte("PASS"))
	}))
	defer server.Close()

	actions := []kitchen.Action{
		{Timestamp: 1000, ID: "a", Action: kitchen.ActionPlace, Target: kitchen.ShelfHot},
		{Timestamp: 2000, ID: "a", Action: kitchen.ActionPickup, Target: kitchen.ShelfHot},
	}
	c := New(server.URL, "token")
	result, err := c.Solve("test-123", SolveOptions{
		Rate: 500 * time.Millisecond,
		Min:  4 * time.Second,
		Max:  8 * time.Second,
	}, actions)

	require.NoError(t, err)
	assert.Equal(t, "PASS", result)
	assert.Equal(t, "test-123", gotTestID)
	// durations travel as microseconds
	assert.Equal(t, int64(500_000), gotBody.Options.Rate)
	assert.Equal(t, int64(4_000_000), gotBody.Options.Min)
	assert.Equal(t, int64(8_000_000), gotBody.Options.Max)
	assert.Equal(t, actions, gotBody.Actions)
}

func TestSolve_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown test", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(server.URL, "token").Solve("nope", SolveOptions{}, nil)
	assert.Error(t, err)
}
