package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coinpulse/coinchat/internal/market"
)

const rankingSize = 5

// MarketData is the slice of the market client the composer needs. The
// composer owns all failure handling; implementations just report errors.
type MarketData interface {
	SimplePrice(ctx context.Context, id string) (market.Quote, error)
	CoinDetail(ctx context.Context, id string) (market.Snapshot, error)
	TopByMetric(ctx context.Context, metric market.Metric, limit int) ([]market.Snapshot, error)
	GlobalOverview(ctx context.Context) (market.Overview, error)
}

// Composer turns a prompt plus its detected categories into one reply
// string. The reply is prose for direct display, assembled from labeled
// sections in a fixed order.
type Composer struct {
	market     MarketData
	classifier *Classifier
	resolver   *Resolver
	steps      []step
}

// step is one entry of the ordered check sequence. when decides whether the
// step fires given the detected categories and whether any section has been
// produced so far; run appends sections and reports how many upstream calls
// it attempted and how many of those failed.
type step struct {
	when func(cats CategorySet, produced bool) bool
	run  func(ctx context.Context, st *composeState)
}

type composeState struct {
	lower     string
	sections  []string
	attempted int
	failed    int
}

func NewComposer(m MarketData, c *Classifier, r *Resolver) *Composer {
	cp := &Composer{market: m, classifier: c, resolver: r}
	cp.steps = []step{
		{
			when: func(cats CategorySet, _ bool) bool {
				return cats.Has(CategoryPrice) && cats.Has(CategoryCoin)
			},
			run: cp.coinPrices,
		},
		{
			when: func(cats CategorySet, _ bool) bool {
				return cats.Has(CategoryTop) && (cats.Has(CategoryGain) || cats.Has(CategoryLoss))
			},
			run: cp.topPerformers,
		},
		{
			when: func(cats CategorySet, _ bool) bool { return cats.Has(CategoryTrend) },
			run:  cp.marketOverview,
		},
		{
			when: func(cats CategorySet, _ bool) bool { return cats.Has(CategoryVolume) },
			run:  cp.topVolume,
		},
		{
			when: func(cats CategorySet, _ bool) bool { return cats.Has(CategoryMarketCap) },
			run:  cp.topMarketCap,
		},
		{
			when: func(cats CategorySet, _ bool) bool { return cats.Has(CategoryInvest) },
			run: func(_ context.Context, st *composeState) {
				st.sections = append(st.sections, investmentAdvice)
			},
		},
		{
			when: func(cats CategorySet, _ bool) bool { return cats.Has(CategoryWallet) },
			run: func(_ context.Context, st *composeState) {
				st.sections = append(st.sections, walletInfo)
			},
		},
		{
			// Comprehensive fallback: only when the prompt named a coin but
			// nothing above produced a section.
			when: func(cats CategorySet, produced bool) bool {
				return !produced && cats.Has(CategoryCoin)
			},
			run: cp.comprehensiveCoins,
		},
	}
	return cp
}

// Compose runs the check sequence and concatenates whatever sections it
// produced. It never returns an error and never returns an empty string:
// on no intent it falls back to general guidance, and when every attempted
// upstream call failed it returns a single apology line.
func (c *Composer) Compose(ctx context.Context, prompt string, cats CategorySet) string {
	lower := strings.ToLower(prompt)

	if len(cats) == 0 {
		return generalGuidance(lower)
	}

	st := &composeState{lower: lower}
	for _, s := range c.steps {
		if !s.when(cats, len(st.sections) > 0) {
			continue
		}
		s.run(ctx, st)
	}

	if len(st.sections) > 0 {
		return strings.Join(st.sections, "\n\n")
	}
	if st.attempted > 0 && st.failed == st.attempted {
		return apology
	}
	return generalGuidance(lower)
}

// promptCoins returns the coin keywords textually present in the prompt, in
// table order, each resolved to its canonical identifier.
func (c *Composer) promptCoins(lower string) []string {
	var ids []string
	for _, kw := range c.classifier.CoinKeywords() {
		if strings.Contains(lower, kw) {
			ids = append(ids, c.resolver.Resolve(kw))
		}
	}
	return ids
}

// coinPrices appends one terse price summary per coin mentioned in the
// prompt. Each lookup is independent: a failure drops that segment only.
func (c *Composer) coinPrices(ctx context.Context, st *composeState) {
	for _, id := range c.promptCoins(st.lower) {
		st.attempted++
		q, err := c.market.SimplePrice(ctx, id)
		if err != nil {
			st.failed++
			continue
		}
		st.sections = append(st.sections, fmt.Sprintf(
			"%s current price: %s\n24h Change: %s\nMarket Cap: %s",
			titleFirst(id), FormatUSD(q.Price), FormatPercent(q.Change24h), FormatUSD(q.MarketCap)))
	}
}

// topPerformers appends the most-changed-in-24h ranking. Gain and loss
// requests intentionally share the same call and direction.
func (c *Composer) topPerformers(ctx context.Context, st *composeState) {
	st.attempted++
	coins, err := c.market.TopByMetric(ctx, market.MetricChange24h, rankingSize)
	if err != nil {
		st.failed++
		return
	}

	var b strings.Builder
	b.WriteString("Top performing cryptocurrencies in the last 24 hours:\n")
	for i, coin := range coins {
		fmt.Fprintf(&b, "\n%d. %s (%s)\nPrice: %s\n24h Change: %s\n",
			i+1, coin.Name, strings.ToUpper(coin.Symbol),
			FormatUSD(coin.Price), FormatPercent(coin.Change24h))
	}
	st.sections = append(st.sections, strings.TrimRight(b.String(), "\n"))
}

func (c *Composer) marketOverview(ctx context.Context, st *composeState) {
	st.attempted++
	ov, err := c.market.GlobalOverview(ctx)
	if err != nil {
		st.failed++
		return
	}
	st.sections = append(st.sections, fmt.Sprintf(
		"Crypto Market Overview:\n\n"+
			"Total Market Cap: %s\n"+
			"24h Volume: %s\n"+
			"Bitcoin Dominance: %s\n"+
			"Active Cryptocurrencies: %d\n"+
			"Markets: %d",
		FormatUSDWhole(ov.TotalMarketCap), FormatUSDWhole(ov.TotalVolume),
		FormatPercent(ov.BTCDominance), ov.ActiveCoins, ov.Markets))
}

func (c *Composer) topVolume(ctx context.Context, st *composeState) {
	st.attempted++
	coins, err := c.market.TopByMetric(ctx, market.MetricVolume, rankingSize)
	if err != nil {
		st.failed++
		return
	}

	var b strings.Builder
	b.WriteString("Top cryptocurrencies by 24h trading volume:\n")
	for i, coin := range coins {
		fmt.Fprintf(&b, "\n%d. %s (%s)\nVolume: %s\nPrice: %s\n",
			i+1, coin.Name, strings.ToUpper(coin.Symbol),
			FormatUSDWhole(coin.Volume), FormatUSD(coin.Price))
	}
	st.sections = append(st.sections, strings.TrimRight(b.String(), "\n"))
}

func (c *Composer) topMarketCap(ctx context.Context, st *composeState) {
	st.attempted++
	coins, err := c.market.TopByMetric(ctx, market.MetricMarketCap, rankingSize)
	if err != nil {
		st.failed++
		return
	}

	var b strings.Builder
	b.WriteString("Top cryptocurrencies by market capitalization:\n")
	for i, coin := range coins {
		fmt.Fprintf(&b, "\n%d. %s (%s)\nMarket Cap: %s\nPrice: %s\n",
			i+1, coin.Name, strings.ToUpper(coin.Symbol),
			FormatUSDWhole(coin.MarketCap), FormatUSD(coin.Price))
	}
	st.sections = append(st.sections, strings.TrimRight(b.String(), "\n"))
}

// comprehensiveCoins appends a full overview per mentioned coin. A shape
// mismatch degrades to a one-line notice for that coin; an unavailable
// upstream skips the segment and counts toward the apology threshold.
func (c *Composer) comprehensiveCoins(ctx context.Context, st *composeState) {
	for _, id := range c.promptCoins(st.lower) {
		st.attempted++
		snap, err := c.market.CoinDetail(ctx, id)
		if err != nil {
			if errors.Is(err, market.ErrShapeMismatch) {
				st.sections = append(st.sections, fmt.Sprintf(
					"Unable to fetch detailed information for %s at the moment.", id))
				continue
			}
			st.failed++
			continue
		}
		st.sections = append(st.sections, fmt.Sprintf(
			"%s (%s) Overview:\n\n"+
				"Current Price: %s\n"+
				"24h Change: %s\n"+
				"Market Cap: %s\n"+
				"24h Volume: %s\n"+
				"Description: %s",
			snap.Name, strings.ToUpper(snap.Symbol),
			FormatUSD(snap.Price), FormatPercent(snap.Change24h),
			FormatUSDWhole(snap.MarketCap), FormatUSDWhole(snap.Volume),
			firstSentence(snap.Description)))
	}
}
