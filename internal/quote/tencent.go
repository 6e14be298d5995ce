package quote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stocksentry/internal/model"
)

// TencentFetcher implements Fetcher against the Tencent realtime quote
// endpoint. The payload is a single assignment of a "~"-delimited string:
//
//	v_sh600438="1~通威股份~600438~19.17~19.30~19.25~...";
//
// Field 1 is the name, field 3 the current price, field 5 the session open.
type TencentFetcher struct {
	BaseURL string
	Client  *http.Client
}

// minTencentFields covers fields 0..5 (open is field 5).
const minTencentFields = 6

// NewTencentFetcher creates a fetcher with optional proxy support.
func NewTencentFetcher(baseURL, proxyURL string, timeout time.Duration) *TencentFetcher {
	if baseURL == "" {
		baseURL = "https://qt.gtimg.cn"
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TencentFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *TencentFetcher) Name() string { return "tencent" }

func (f *TencentFetcher) Fetch(ctx context.Context, symbol string) (model.Quote, error) {
	endpoint := fmt.Sprintf("%s/q=%s", f.BaseURL, symbol)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return model.Quote{}, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return model.Quote{}, fmt.Errorf("tencent fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.Quote{}, fmt.Errorf("tencent: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Quote{}, fmt.Errorf("tencent read body: %w", err)
	}
	return parseTencent(symbol, string(body))
}

func parseTencent(symbol, body string) (model.Quote, error) {
	payload, err := unquotePayload(body)
	if err != nil {
		return model.Quote{}, fmt.Errorf("tencent: %w", err)
	}
	fields := strings.Split(payload, "~")
	if len(fields) < minTencentFields {
		// Provider answered but has no quote yet for this symbol.
		return model.Quote{Symbol: symbol, Status: model.StatusPending}, nil
	}
	current, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return model.Quote{}, fmt.Errorf("tencent parse current %q: %w", fields[3], err)
	}
	open, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return model.Quote{}, fmt.Errorf("tencent parse open %q: %w", fields[5], err)
	}
	q := model.Quote{Symbol: symbol, Name: fields[1], Current: current, Open: open}
	if current <= 0 || open <= 0 {
		// Session open not struck yet; prices are zero-filled pre-market.
		q.Status = model.StatusPending
		return q, nil
	}
	q.Status = model.StatusOk
	return q, nil
}

// unquotePayload extracts the quoted string from a `v_xxx="..."` or
// `var hq_str_xxx="...";` style assignment.
func unquotePayload(body string) (string, error) {
	start := strings.Index(body, `"`)
	if start < 0 {
		return "", fmt.Errorf("malformed payload %q", truncate(body, 60))
	}
	end := strings.LastIndex(body, `"`)
	if end <= start {
		return "", fmt.Errorf("unterminated payload %q", truncate(body, 60))
	}
	return body[start+1 : end], nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
