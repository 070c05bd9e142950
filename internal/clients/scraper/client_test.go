package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{BaseURL: server.URL + "/"})
	require.NoError(t, err)
	client.backoff = 0
	return client
}

func TestNewClientValidatesConfig(t *testing.T) {
	_, err := NewClient(nil)
	assert.Error(t, err)

	_, err = NewClient(&Config{})
	assert.Error(t, err)
}

func TestFetchLeaderboard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leaderboard", r.URL.Path)
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Write([]byte(`{"players":[
			{"external_id":"1234-5678","display_name":"ALPHA","rating":17.5,"rank":1},
			{"external_id":"","display_name":"BROKEN","rating":1,"rank":9},
			{"external_id":"87654321","display_name":"BRAVO","rating":16.25,"rank":2}
		]}`))
	})

	out, err := client.FetchLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "12345678", out.Rows[0].ExternalID)
	assert.Equal(t, "ALPHA", out.Rows[0].DisplayName)
	assert.InDelta(t, 17.5, out.Rows[0].Rating, 0.0001)
	assert.Equal(t, 2, out.Rows[1].Rank)
}

func TestFetchProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profiles/12345678", r.URL.Path)
		w.Write([]byte(`{"display_name":"ALPHA","recent_plays":[
			{"title":"Song A","chart":"MXM 19","grade":"S","score":"9,950,000","timestamp":"2025-06-15 11:58 AM","is_new_record":true},
			{"title":"Song B","chart":"EXH 17","grade":"AAA+","score":"9,800,000","timestamp":"2025-06-15 11:52 AM"}
		]}`))
	})

	out, err := client.FetchProfile(context.Background(), &FetchProfileInput{ExternalID: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, "ALPHA", out.DisplayName)
	require.Len(t, out.RecentPlays, 2)
	assert.True(t, out.RecentPlays[0].IsNewRecord)
	assert.False(t, out.RecentPlays[1].IsNewRecord)
	assert.Equal(t, "2025-06-15 11:58 AM", out.RecentPlays[0].Timestamp)
}

func TestFetchProfileNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := client.FetchProfile(context.Background(), &FetchProfileInput{ExternalID: "00000000"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRetriesOnceOnServerError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"players":[]}`))
	})

	out, err := client.FetchLeaderboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Rows)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGivesUpAfterRepeatedServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.FetchLeaderboard(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(maxAttempts), calls.Load())
}

func TestMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	})

	_, err := client.FetchLeaderboard(context.Background())
	assert.Error(t, err)
}
