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

// SinaFetcher implements Fetcher against the Sina hq endpoint. The payload
// is a comma-delimited assignment:
//
//	var hq_str_sh600438="通威股份,19.250,19.300,19.170,...";
//
// Field 0 is the name, field 1 the session open, field 3 the current price.
// Sina rejects requests without a finance.sina.com.cn Referer.
type SinaFetcher struct {
	BaseURL string
	Client  *http.Client
}

const minSinaFields = 4

// NewSinaFetcher creates a fetcher with optional proxy support.
func NewSinaFetcher(baseURL, proxyURL string, timeout time.Duration) *SinaFetcher {
	if baseURL == "" {
		baseURL = "https://hq.sinajs.cn"
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &SinaFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *SinaFetcher) Name() string { return "sina" }

func (f *SinaFetcher) Fetch(ctx context.Context, symbol string) (model.Quote, error) {
	endpoint := fmt.Sprintf("%s/list=%s", f.BaseURL, symbol)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return model.Quote{}, err
	}
	req.Header.Set("Referer", "https://finance.sina.com.cn")
	resp, err := f.Client.Do(req)
	if err != nil {
		return model.Quote{}, fmt.Errorf("sina fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.Quote{}, fmt.Errorf("sina: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Quote{}, fmt.Errorf("sina read body: %w", err)
	}
	return parseSina(symbol, string(body))
}

func parseSina(symbol, body string) (model.Quote, error) {
	payload, err := unquotePayload(body)
	if err != nil {
		return model.Quote{}, fmt.Errorf("sina: %w", err)
	}
	if strings.TrimSpace(payload) == "" {
		// Sina answers unknown or halted symbols with an empty string.
		return model.Quote{Symbol: symbol, Status: model.StatusPending}, nil
	}
	fields := strings.Split(payload, ",")
	if len(fields) < minSinaFields {
		return model.Quote{Symbol: symbol, Status: model.StatusPending}, nil
	}
	open, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return model.Quote{}, fmt.Errorf("sina parse open %q: %w", fields[1], err)
	}
	current, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return model.Quote{}, fmt.Errorf("sina parse current %q: %w", fields[3], err)
	}
	q := model.Quote{Symbol: symbol, Name: fields[0], Current: current, Open: open}
	if current <= 0 || open <= 0 {
		q.Status = model.StatusPending
		return q, nil
	}
	q.Status = model.StatusOk
	return q, nil
}
