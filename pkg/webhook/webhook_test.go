package webhook_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"monarch-web/pkg/webhook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSONSuccess(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := webhook.NewClient(srv.URL, time.Second)
	err := client.PostJSON(context.Background(), map[string]string{"firstName": "Ada"})

	require.NoError(t, err)
	assert.Equal(t, "Ada", got["firstName"])
}

func TestPostJSONNon2xxIsStatusError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := webhook.NewClient(srv.URL, time.Second)
	err := client.PostJSON(context.Background(), map[string]string{})

	var statusErr *webhook.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "boom")
	// single attempt, no retry
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPostJSONNotConfigured(t *testing.T) {
	client := webhook.NewClient("", time.Second)

	assert.False(t, client.IsConfigured())
	assert.ErrorIs(t, client.PostJSON(context.Background(), nil), webhook.ErrNotConfigured)
}

func TestPostJSONHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := webhook.NewClient(srv.URL, time.Second)
	assert.Error(t, client.PostJSON(ctx, map[string]string{}))
}
