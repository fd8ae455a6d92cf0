// Package marketdata fetches daily quotes and assembles valuation
// snapshots. The projection engine never imports it.
package marketdata

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const defaultChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base   http.RoundTripper
	logger *logrus.Logger
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// The key is unique per day, so the local cache expires every day.
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.log().Debugf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		c.log().Debugf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) error {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

func (c *diskCache) log() *logrus.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logrus.StandardLogger()
}

// daily returns a client with a cache all with daily expire
func daily(logger *logrus.Logger) *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{base: http.DefaultTransport, logger: logger}
	return client
}

// QuoteClient fetches current market prices from the Yahoo Finance chart
// API.
type QuoteClient struct {
	HTTP    *http.Client
	BaseURL string
	Logger  *logrus.Logger
}

// NewQuoteClient creates a quote client backed by a day-scoped disk cache.
func NewQuoteClient(logger *logrus.Logger) *QuoteClient {
	return &QuoteClient{HTTP: daily(logger), Logger: logger}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// TodayPrice fetches the current market price for one symbol, rounded to
// two places.
func (c *QuoteClient) TodayPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s/%s?range=1d&interval=1d", c.baseURL(), url.PathEscape(symbol))

	var chart chartResponse
	if err := c.jwget(ctx, addr, &chart); err != nil {
		return decimal.Decimal{}, err
	}

	if chart.Chart.Error != nil {
		return decimal.Decimal{}, fmt.Errorf("quote error for %s: %s", symbol, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || chart.Chart.Result[0].Meta.RegularMarketPrice == 0 {
		return decimal.Decimal{}, fmt.Errorf("no quote data for %s", symbol)
	}

	price := decimal.NewFromFloat(chart.Chart.Result[0].Meta.RegularMarketPrice)
	return price.RoundBank(2), nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func (c *QuoteClient) jwget(ctx context.Context, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.client().Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

func (c *QuoteClient) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *QuoteClient) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultChartURL
}
