package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Failure taxonomy. Network trouble, timeouts and non-2xx statuses surface
// as ErrUnavailable; responses missing expected keys or fields (including an
// identifier the provider does not know) surface as ErrShapeMismatch.
var (
	ErrUnavailable   = errors.New("market: upstream unavailable")
	ErrShapeMismatch = errors.New("market: unexpected response shape")
)

// Metric selects the provider-side ordering for ranking queries.
type Metric string

const (
	MetricChange24h Metric = "price_change_percentage_24h_desc"
	MetricVolume    Metric = "volume_desc"
	MetricMarketCap Metric = "market_cap_desc"
)

// Quote is the terse per-coin answer from the simple price endpoint.
type Quote struct {
	Price     float64
	Change24h float64
	MarketCap float64
}

// Snapshot is a point-in-time record of a coin's market metrics.
type Snapshot struct {
	Name        string
	Symbol      string
	Price       float64
	Change24h   float64
	MarketCap   float64
	Volume      float64
	Description string
}

// Overview aggregates the global market figures.
type Overview struct {
	TotalMarketCap float64
	TotalVolume    float64
	BTCDominance   float64
	ActiveCoins    int
	Markets        int
}

// Client is a thin wrapper over the CoinGecko v3 HTTP API. It does not
// cache and does not retry; a failed call surfaces immediately and the
// caller decides what to do with it.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.coingecko.com/api/v3"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if c.HTTP == nil {
		return errors.New("market: http client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	return nil
}

// SimplePrice returns price, 24h change and market cap for one identifier.
// An identifier the provider does not recognize comes back as an absent key,
// which is a shape mismatch here rather than a partial record.
func (c *Client) SimplePrice(ctx context.Context, id string) (Quote, error) {
	path := fmt.Sprintf("/simple/price?ids=%s&vs_currencies=usd&include_24hr_change=true&include_market_cap=true",
		url.QueryEscape(id))

	var decoded map[string]struct {
		USD          *float64 `json:"usd"`
		USD24hChange *float64 `json:"usd_24h_change"`
		USDMarketCap *float64 `json:"usd_market_cap"`
	}
	if err := c.getJSON(ctx, path, &decoded); err != nil {
		return Quote{}, err
	}

	entry, ok := decoded[id]
	if !ok {
		return Quote{}, fmt.Errorf("%w: no data for %q", ErrShapeMismatch, id)
	}
	if entry.USD == nil || entry.USD24hChange == nil || entry.USDMarketCap == nil {
		return Quote{}, fmt.Errorf("%w: incomplete price data for %q", ErrShapeMismatch, id)
	}

	return Quote{
		Price:     *entry.USD,
		Change24h: *entry.USD24hChange,
		MarketCap: *entry.USDMarketCap,
	}, nil
}

// CoinDetail returns a full snapshot for one identifier, including the
// provider's English description.
func (c *Client) CoinDetail(ctx context.Context, id string) (Snapshot, error) {
	path := fmt.Sprintf("/coins/%s?localization=false&tickers=false&community_data=false&developer_data=false",
		url.PathEscape(id))

	var decoded struct {
		Name        string `json:"name"`
		Symbol      string `json:"symbol"`
		Description struct {
			En string `json:"en"`
		} `json:"description"`
		MarketData *struct {
			CurrentPrice   map[string]float64 `json:"current_price"`
			PriceChange24h *float64           `json:"price_change_percentage_24h"`
			MarketCap      map[string]float64 `json:"market_cap"`
			TotalVolume    map[string]float64 `json:"total_volume"`
		} `json:"market_data"`
	}
	if err := c.getJSON(ctx, path, &decoded); err != nil {
		return Snapshot{}, err
	}

	md := decoded.MarketData
	if md == nil || md.PriceChange24h == nil {
		return Snapshot{}, fmt.Errorf("%w: missing market data for %q", ErrShapeMismatch, id)
	}
	price, okPrice := md.CurrentPrice["usd"]
	mcap, okCap := md.MarketCap["usd"]
	vol, okVol := md.TotalVolume["usd"]
	if !okPrice || !okCap || !okVol {
		return Snapshot{}, fmt.Errorf("%w: missing usd fields for %q", ErrShapeMismatch, id)
	}

	return Snapshot{
		Name:        decoded.Name,
		Symbol:      decoded.Symbol,
		Price:       price,
		Change24h:   *md.PriceChange24h,
		MarketCap:   mcap,
		Volume:      vol,
		Description: decoded.Description.En,
	}, nil
}

// TopByMetric returns at most limit coins in the provider's own ordering
// for the given metric. The client never re-sorts.
func (c *Client) TopByMetric(ctx context.Context, metric Metric, limit int) ([]Snapshot, error) {
	path := fmt.Sprintf("/coins/markets?vs_currency=usd&order=%s&per_page=%d&page=1&sparkline=false",
		url.QueryEscape(string(metric)), limit)

	var decoded []struct {
		Name           string   `json:"name"`
		Symbol         string   `json:"symbol"`
		CurrentPrice   *float64 `json:"current_price"`
		PriceChange24h *float64 `json:"price_change_percentage_24h"`
		MarketCap      *float64 `json:"market_cap"`
		TotalVolume    *float64 `json:"total_volume"`
	}
	if err := c.getJSON(ctx, path, &decoded); err != nil {
		return nil, err
	}

	out := make([]Snapshot, 0, len(decoded))
	for _, e := range decoded {
		if e.CurrentPrice == nil || e.PriceChange24h == nil || e.MarketCap == nil || e.TotalVolume == nil {
			return nil, fmt.Errorf("%w: incomplete entry %q", ErrShapeMismatch, e.Name)
		}
		out = append(out, Snapshot{
			Name:      e.Name,
			Symbol:    e.Symbol,
			Price:     *e.CurrentPrice,
			Change24h: *e.PriceChange24h,
			MarketCap: *e.MarketCap,
			Volume:    *e.TotalVolume,
		})
	}
	return out, nil
}

// GlobalOverview returns the market-wide aggregates.
func (c *Client) GlobalOverview(ctx context.Context) (Overview, error) {
	var decoded struct {
		Data *struct {
			TotalMarketCap      map[string]float64 `json:"total_market_cap"`
			TotalVolume         map[string]float64 `json:"total_volume"`
			MarketCapPercentage map[string]float64 `json:"market_cap_percentage"`
			ActiveCoins         *int               `json:"active_cryptocurrencies"`
			Markets             *int               `json:"markets"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "/global", &decoded); err != nil {
		return Overview{}, err
	}

	d := decoded.Data
	if d == nil || d.ActiveCoins == nil || d.Markets == nil {
		return Overview{}, fmt.Errorf("%w: missing global data", ErrShapeMismatch)
	}
	mcap, okCap := d.TotalMarketCap["usd"]
	vol, okVol := d.TotalVolume["usd"]
	btc, okBTC := d.MarketCapPercentage["btc"]
	if !okCap || !okVol || !okBTC {
		return Overview{}, fmt.Errorf("%w: missing global usd fields", ErrShapeMismatch)
	}

	return Overview{
		TotalMarketCap: mcap,
		TotalVolume:    vol,
		BTCDominance:   btc,
		ActiveCoins:    *d.ActiveCoins,
		Markets:        *d.Markets,
	}, nil
}
