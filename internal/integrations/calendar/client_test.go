package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBusyIntervals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/busy", r.URL.Path)
		assert.Equal(t, "2025-03-04", r.URL.Query().Get("date"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"busy":[{"start":"2025-03-04T11:00:00+03:00","end":"2025-03-04T12:00:00+03:00"}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret", time.Second)

	busy, err := client.GetBusyIntervals(context.Background(), "2025-03-04")
	require.NoError(t, err)
	require.Len(t, busy, 1)

	inside := busy[0].Start.Add(30 * time.Minute)
	assert.True(t, busy[0].Contains(busy[0].Start))
	assert.True(t, busy[0].Contains(inside))
	// End is exclusive: a slot starting exactly at the end is free.
	assert.False(t, busy[0].Contains(busy[0].End))
}

func TestGetBusyIntervals_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)

	_, err := client.GetBusyIntervals(context.Background(), "2025-03-04")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetBusyIntervals_Unconfigured(t *testing.T) {
	client := New("", "", time.Second)

	busy, err := client.GetBusyIntervals(context.Background(), "2025-03-04")
	assert.NoError(t, err)
	assert.Nil(t, busy)
}
