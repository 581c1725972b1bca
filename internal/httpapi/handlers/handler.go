package handlers

import (
	"github.com/coinpulse/coinchat/internal/bot"
	"github.com/coinpulse/coinchat/internal/chat"
	"github.com/coinpulse/coinchat/internal/common"
	"github.com/coinpulse/coinchat/internal/config"
	"github.com/coinpulse/coinchat/internal/market"
	"github.com/coinpulse/coinchat/internal/store/rabbitmq"
	"github.com/coinpulse/coinchat/internal/store/redisstore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB       *gorm.DB
	Cfg      config.Config
	Redis    *redisstore.Store
	Rabbit   *rabbitmq.Publisher
	Market   *market.Client
	Resolver *bot.Resolver
	ChatSvc  *chat.Service
}

func NewHandler(db *gorm.DB, cfg config.Config, rds *redisstore.Store, rabbit *rabbitmq.Publisher) *Handler {
	mkt := market.NewClient(cfg.CoinGeckoBaseURL, cfg.CoinGeckoAPIKey, cfg.MarketTimeout)
	classifier := bot.NewClassifier()
	resolver := bot.NewResolver()
	composer := bot.NewComposer(mkt, classifier, resolver)

	repo := chat.NewRepo(db)
	chatSvc := chat.NewService(repo, classifier, composer)

	return &Handler{
		DB:       db,
		Cfg:      cfg,
		Redis:    rds,
		Rabbit:   rabbit,
		Market:   mkt,
		Resolver: resolver,
		ChatSvc:  chatSvc,
	}
}

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"pong": true})
}
