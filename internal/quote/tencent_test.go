package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stocksentry/internal/model"
)

func tencentServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTencentFetch_Ok(t *testing.T) {
	t.Parallel()

	srv := tencentServer(t, `v_sh600438="1~通威股份~600438~19.17~19.30~19.25~12345";`, http.StatusOK)
	f := NewTencentFetcher(srv.URL, "", 5*time.Second)

	q, err := f.Fetch(context.Background(), "sh600438")
	require.NoError(t, err)
	require.Equal(t, model.StatusOk, q.Status)
	require.Equal(t, "sh600438", q.Symbol)
	require.Equal(t, 19.17, q.Current)
	require.Equal(t, 19.25, q.Open)
}

func TestTencentFetch_ShortPayloadIsPending(t *testing.T) {
	t.Parallel()

	srv := tencentServer(t, `v_sz301000="";`, http.StatusOK)
	f := NewTencentFetcher(srv.URL, "", 5*time.Second)

	q, err := f.Fetch(context.Background(), "sz301000")
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, q.Status)
}

func TestTencentFetch_ZeroOpenIsPending(t *testing.T) {
	t.Parallel()

	srv := tencentServer(t, `v_sz300035="1~中科电气~300035~0.00~18.40~0.00~0";`, http.StatusOK)
	f := NewTencentFetcher(srv.URL, "", 5*time.Second)

	q, err := f.Fetch(context.Background(), "sz300035")
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, q.Status)
}

func TestTencentFetch_MalformedBodyIsError(t *testing.T) {
	t.Parallel()

	srv := tencentServer(t, `<html>blocked</html>`, http.StatusOK)
	f := NewTencentFetcher(srv.URL, "", 5*time.Second)

	_, err := f.Fetch(context.Background(), "sh600438")
	require.Error(t, err)
}

func TestTencentFetch_BadPriceFieldIsError(t *testing.T) {
	t.Parallel()

	srv := tencentServer(t, `v_sh600438="1~通威股份~600438~N/A~19.30~19.25~0";`, http.StatusOK)
	f := NewTencentFetcher(srv.URL, "", 5*time.Second)

	_, err := f.Fetch(context.Background(), "sh600438")
	require.Error(t, err)
}

func TestTencentFetch_HTTPErrorIsError(t *testing.T) {
	t.Parallel()

	srv := tencentServer(t, "", http.StatusBadGateway)
	f := NewTencentFetcher(srv.URL, "", 5*time.Second)

	_, err := f.Fetch(context.Background(), "sh600438")
	require.Error(t, err)
}

func TestLookup_FoldsErrorIntoUnavailable(t *testing.T) {
	t.Parallel()

	srv := tencentServer(t, "", http.StatusBadGateway)
	f := NewTencentFetcher(srv.URL, "", 5*time.Second)

	q := Lookup(context.Background(), f, "sh600438")
	require.Equal(t, model.StatusUnavailable, q.Status)
	require.Equal(t, "sh600438", q.Symbol)
}
