package bot

// Category is an intent label attached to a user prompt by keyword matching.
type Category string

const (
	CategoryPrice     Category = "price"
	CategoryTrend     Category = "trend"
	CategoryTop       Category = "top"
	CategoryGain      Category = "gain"
	CategoryLoss      Category = "loss"
	CategoryVolume    Category = "volume"
	CategoryMarketCap Category = "market_cap"
	CategoryWallet    Category = "wallet"
	CategoryInvest    Category = "invest"
	CategoryCoin      Category = "coin"
)

// CategorySet holds the categories detected in one prompt. Membership only,
// no ordering.
type CategorySet map[Category]struct{}

func (s CategorySet) Add(c Category) {
	s[c] = struct{}{}
}

func (s CategorySet) Has(c Category) bool {
	_, ok := s[c]
	return ok
}

// defaultKeywords is the fixed category -> keyword table. Built once at
// startup and never mutated afterwards.
func defaultKeywords() map[Category][]string {
	return map[Category][]string{
		CategoryPrice:     {"price", "cost", "worth", "value", "rate", "trading at", "current price"},
		CategoryTrend:     {"trend", "moving", "performance", "performing", "going", "market", "direction"},
		CategoryTop:       {"top", "best", "highest", "leading", "biggest", "largest", "most"},
		CategoryGain:      {"gain", "increase", "up", "risen", "growth", "growing", "profit"},
		CategoryLoss:      {"loss", "decrease", "down", "fallen", "dropping", "dip", "crash"},
		CategoryVolume:    {"volume", "trading volume", "liquidity", "traded", "exchange volume"},
		CategoryMarketCap: {"market cap", "capitalization", "market value", "valuation"},
		CategoryWallet:    {"wallet", "store", "hold", "keep", "storage", "save"},
		CategoryInvest:    {"invest", "buy", "purchase", "trade", "trading", "investment"},
		CategoryCoin:      {"bitcoin", "btc", "eth", "ethereum", "usdt", "bnb", "xrp", "ada", "doge"},
	}
}
