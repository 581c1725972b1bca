package chat

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/coinpulse/coinchat/internal/bot"
	"github.com/coinpulse/coinchat/internal/market"
	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// downMarket fails every upstream call; static composer branches still work.
type downMarket struct{}

func (downMarket) SimplePrice(ctx context.Context, id string) (market.Quote, error) {
	return market.Quote{}, fmt.Errorf("%w: down", market.ErrUnavailable)
}

func (downMarket) CoinDetail(ctx context.Context, id string) (market.Snapshot, error) {
	return market.Snapshot{}, fmt.Errorf("%w: down", market.ErrUnavailable)
}

func (downMarket) TopByMetric(ctx context.Context, metric market.Metric, limit int) ([]market.Snapshot, error) {
	return nil, fmt.Errorf("%w: down", market.ErrUnavailable)
}

func (downMarket) GlobalOverview(ctx context.Context) (market.Overview, error) {
	return market.Overview{}, fmt.Errorf("%w: down", market.ErrUnavailable)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(gormsqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Message{}, &QueryJob{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	classifier := bot.NewClassifier()
	composer := bot.NewComposer(downMarket{}, classifier, bot.NewResolver())
	return NewService(NewRepo(db), classifier, composer), db
}

func TestProcessUserMessage_WritesTurn(t *testing.T) {
	svc, db := newTestService(t)

	botMsg, err := svc.ProcessUserMessage(context.Background(), "alice-turn", "hello")
	if err != nil {
		t.Fatalf("process message: %v", err)
	}
	if botMsg.MessageType != MessageTypeBot {
		t.Fatalf("expected bot message back, got %s", botMsg.MessageType)
	}
	if !strings.Contains(botMsg.Content, "Hello!") {
		t.Fatalf("unexpected bot reply: %q", botMsg.Content)
	}

	var msgs []Message
	if err := db.Where("sender = ?", "alice-turn").Order("id ASC").Find(&msgs).Error; err != nil {
		t.Fatalf("query messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].MessageType != MessageTypeUser || msgs[0].Content != "hello" {
		t.Fatalf("unexpected user msg: %+v", msgs[0])
	}
	if msgs[1].MessageType != MessageTypeBot {
		t.Fatalf("unexpected bot msg: %+v", msgs[1])
	}
}

func TestHistoryOrdering(t *testing.T) {
	svc, _ := newTestService(t)

	const sender = "bob-history"
	for i := 0; i < 4; i++ {
		if _, err := svc.ProcessUserMessage(context.Background(), sender, fmt.Sprintf("msg %d", i)); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
	}

	history, err := svc.History(context.Background(), sender)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 8 {
		t.Fatalf("expected 8 messages (4 turns), got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		prev, cur := history[i-1], history[i]
		if cur.CreatedAt.Before(prev.CreatedAt) {
			t.Fatalf("history not ascending at %d: %v before %v", i, cur.CreatedAt, prev.CreatedAt)
		}
		if cur.ID <= prev.ID {
			t.Fatalf("duplicate or reordered row at %d", i)
		}
	}
	for i, m := range history {
		wantType := MessageTypeUser
		if i%2 == 1 {
			wantType = MessageTypeBot
		}
		if m.MessageType != wantType {
			t.Fatalf("message %d: expected %s, got %s", i, wantType, m.MessageType)
		}
	}
}

func TestCoinQueryDoesNotPersist(t *testing.T) {
	svc, db := newTestService(t)

	var before int64
	if err := db.Model(&Message{}).Count(&before).Error; err != nil {
		t.Fatalf("count: %v", err)
	}

	reply := svc.CoinQuery(context.Background(), "should I invest")
	if !strings.Contains(reply, "Investment") {
		t.Fatalf("unexpected reply: %q", reply)
	}

	var after int64
	if err := db.Model(&Message{}).Count(&after).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if after != before {
		t.Fatalf("coin query must not extend chat history: %d -> %d", before, after)
	}
}

func TestCoinQueryAlwaysText(t *testing.T) {
	svc, _ := newTestService(t)

	// upstream is fully down; the reply is still natural language
	reply := svc.CoinQuery(context.Background(), "bitcoin price")
	if reply == "" {
		t.Fatalf("reply must never be empty")
	}
	if !strings.Contains(reply, "I apologize") {
		t.Fatalf("expected apology on total failure, got: %q", reply)
	}
}

func TestQueryJobLifecycle(t *testing.T) {
	svc, _ := newTestService(t)

	j, err := svc.CreateQueryJob(context.Background(), "should I invest")
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	if len(j.ID) != 26 {
		t.Fatalf("expected ULID job id, got %q", j.ID)
	}
	if j.Status != JobQueued {
		t.Fatalf("expected queued, got %s", j.Status)
	}

	if err := svc.RunQueryJob(context.Background(), j.ID); err != nil {
		t.Fatalf("run job: %v", err)
	}

	got, err := svc.GetQueryJob(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if got.Status != JobSucceeded {
		t.Fatalf("expected succeeded, got %s", got.Status)
	}
	if got.Reply == nil || !strings.Contains(*got.Reply, "Investment") {
		t.Fatalf("expected composed reply on job row, got %v", got.Reply)
	}
}
