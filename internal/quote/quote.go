// Package quote looks up live stock prices from the quote provider.
package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/stockfolio/internal/model"
)

// ErrUnknownSymbol is returned when the provider does not know a symbol.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ErrUnavailable is returned when the provider cannot be reached, times
// out, or returns a payload we cannot use.
var ErrUnavailable = errors.New("quote provider unavailable")

// Client fetches quotes from the provider's HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL string, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var defaultClient *Client

// Init creates the default client from environment variables or crashes
// the program with an error.
func Init() {
	baseURL := os.Getenv("QUOTE_API_URL")

	if len(baseURL) == 0 {
		fmt.Fprintf(os.Stderr, "No QUOTE_API_URL variable set!\n")
		os.Exit(1)
	}

	defaultClient = NewClient(baseURL, os.Getenv("QUOTE_API_KEY"), time.Second*5)
}

// Lookup fetches a quote for a symbol with the default client.
func Lookup(symbol string) (model.Quote, error) {
	return defaultClient.Lookup(symbol)
}

type quoteResult struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

// fetch sends a GET request, retrying once on transport errors and 5xx
// responses so a single transient provider failure does not fail a trade.
func (client *Client) fetch(address string) (*http.Response, error) {
	response, err := client.httpClient.Get(address)

	if err == nil && response.StatusCode < 500 {
		return response, nil
	}

	if err == nil {
		response.Body.Close()
	}

	return client.httpClient.Get(address)
}

// Lookup fetches the current quote for a symbol.
func (client *Client) Lookup(symbol string) (model.Quote, error) {
	var quote model.Quote

	address := fmt.Sprintf(
		"%s/quote?symbol=%s&token=%s",
		client.baseURL,
		url.QueryEscape(symbol),
		url.QueryEscape(client.apiKey),
	)

	response, err := client.fetch(address)

	if err != nil {
		return quote, ErrUnavailable
	}

	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return quote, ErrUnknownSymbol
	}

	if response.StatusCode != http.StatusOK {
		return quote, ErrUnavailable
	}

	content, err := io.ReadAll(response.Body)

	if err != nil {
		return quote, ErrUnavailable
	}

	var result quoteResult

	if err := json.Unmarshal(content, &result); err != nil {
		return quote, ErrUnavailable
	}

	price, err := decimal.NewFromString(result.Price)

	if err != nil || !price.IsPositive() {
		return quote, ErrUnavailable
	}

	quote.Symbol = result.Symbol
	quote.Name = result.Name
	quote.Price = price

	return quote, nil
}
