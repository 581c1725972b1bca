package bot

import "strings"

// Resolver maps informal coin keywords and ticker symbols to the canonical
// identifiers the market data provider understands.
type Resolver struct {
	aliases map[string]string
}

func NewResolver() *Resolver {
	return &Resolver{
		aliases: map[string]string{
			"btc":  "bitcoin",
			"eth":  "ethereum",
			"usdt": "tether",
			"bnb":  "binance-coin",
			"xrp":  "ripple",
			"ada":  "cardano",
			"doge": "dogecoin",
		},
	}
}

// Resolve returns the canonical identifier for a keyword. Unknown keywords
// are assumed to already be valid identifiers and come back lower-cased.
// There is no error path.
func (r *Resolver) Resolve(keyword string) string {
	lower := strings.ToLower(keyword)
	if id, ok := r.aliases[lower]; ok {
		return id
	}
	return lower
}
