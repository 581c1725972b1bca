package market

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "", 5*time.Second), srv
}

func TestSimplePrice(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/simple/price" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("ids") != "bitcoin" || q.Get("vs_currencies") != "usd" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"bitcoin":{"usd":50000.5,"usd_24h_change":2.5,"usd_market_cap":1000000000000}}`)
	})

	q, err := c.SimplePrice(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("simple price: %v", err)
	}
	if q.Price != 50000.5 || q.Change24h != 2.5 || q.MarketCap != 1000000000000 {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestSimplePriceUnknownIdentifier(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	_, err := c.SimplePrice(context.Background(), "nosuchcoin")
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestSimplePriceMissingField(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// no usd_market_cap: a partial record is a hard failure
		fmt.Fprint(w, `{"bitcoin":{"usd":50000.5,"usd_24h_change":2.5}}`)
	})

	_, err := c.SimplePrice(context.Background(), "bitcoin")
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestNon2xxIsUnavailable(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.GlobalOverview(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestTimeoutIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "", 20*time.Millisecond)
	_, err := c.SimplePrice(context.Background(), "bitcoin")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on timeout, got %v", err)
	}
}

func TestTopByMetric(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/markets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("order") != string(MetricVolume) || q.Get("per_page") != "5" || q.Get("page") != "1" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `[
			{"name":"Bitcoin","symbol":"btc","current_price":50000,"price_change_percentage_24h":2.5,"market_cap":1000000000000,"total_volume":30000000000},
			{"name":"Ethereum","symbol":"eth","current_price":3000,"price_change_percentage_24h":-1.2,"market_cap":400000000000,"total_volume":15000000000}
		]`)
	})

	coins, err := c.TopByMetric(context.Background(), MetricVolume, 5)
	if err != nil {
		t.Fatalf("top by metric: %v", err)
	}
	if len(coins) != 2 {
		t.Fatalf("expected 2 coins, got %d", len(coins))
	}
	// provider ordering is preserved, never re-sorted
	if coins[0].Name != "Bitcoin" || coins[1].Name != "Ethereum" {
		t.Fatalf("order changed: %+v", coins)
	}
	if coins[1].Change24h != -1.2 || coins[1].Volume != 15000000000 {
		t.Fatalf("unexpected entry: %+v", coins[1])
	}
}

func TestTopByMetricIncompleteEntry(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"name":"Bitcoin","symbol":"btc","current_price":50000}]`)
	})

	_, err := c.TopByMetric(context.Background(), MetricMarketCap, 5)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestCoinDetail(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/bitcoin" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("localization") != "false" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{
			"name":"Bitcoin","symbol":"btc",
			"description":{"en":"Bitcoin is the first cryptocurrency. More."},
			"market_data":{
				"current_price":{"usd":50000},
				"price_change_percentage_24h":2.5,
				"market_cap":{"usd":1000000000000},
				"total_volume":{"usd":30000000000}
			}
		}`)
	})

	s, err := c.CoinDetail(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("coin detail: %v", err)
	}
	if s.Name != "Bitcoin" || s.Symbol != "btc" || s.Price != 50000 || s.Volume != 30000000000 {
		t.Fatalf("unexpected snapshot: %+v", s)
	}
	if s.Description == "" {
		t.Fatalf("description should be carried through")
	}
}

func TestCoinDetailMissingMarketData(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":"Bitcoin","symbol":"btc","description":{"en":"x"}}`)
	})

	_, err := c.CoinDetail(context.Background(), "bitcoin")
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestGlobalOverview(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/global" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"data":{
			"total_market_cap":{"usd":2500000000000},
			"total_volume":{"usd":120000000000},
			"market_cap_percentage":{"btc":52.3},
			"active_cryptocurrencies":11000,
			"markets":950
		}}`)
	})

	ov, err := c.GlobalOverview(context.Background())
	if err != nil {
		t.Fatalf("global overview: %v", err)
	}
	if ov.BTCDominance != 52.3 || ov.ActiveCoins != 11000 || ov.Markets != 950 {
		t.Fatalf("unexpected overview: %+v", ov)
	}
}
