package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWebhookSend(t *testing.T) {
	t.Parallel()

	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	t.Cleanup(srv.Close)

	n := NewWebhookNotifier(srv.URL, "")
	require.NoError(t, n.Send(context.Background(), "hello"))
	require.Equal(t, "hello", got["text"])
}

func TestWebhookSend_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	n := NewWebhookNotifier(srv.URL, "")
	require.Error(t, n.Send(context.Background(), "hello"))
}

func TestWebhookDispatch_DeliversAsync(t *testing.T) {
	t.Parallel()

	delivered := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		delivered <- payload["text"]
	}))
	t.Cleanup(srv.Close)

	n := NewWebhookNotifier(srv.URL, "")
	n.Dispatch(context.Background(), "async")
	require.Equal(t, "async", <-delivered)
}
