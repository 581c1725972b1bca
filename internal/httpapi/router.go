package httpapi

import (
	"net/http"
	"time"

	"github.com/coinpulse/coinchat/internal/common"
	"github.com/coinpulse/coinchat/internal/config"
	"github.com/coinpulse/coinchat/internal/httpapi/handlers"
	"github.com/coinpulse/coinchat/internal/httpapi/middleware"
	"github.com/coinpulse/coinchat/internal/store/rabbitmq"
	"github.com/coinpulse/coinchat/internal/store/redisstore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, cfg config.Config, rds *redisstore.Store, rabbit *rabbitmq.Publisher) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	h := handlers.NewHandler(db, cfg, rds, rabbit)

	r.GET("/ping", h.Ping)

	// users & auth
	r.POST("/users", h.CreateUser)
	r.POST("/login", h.Login)

	authGroup := r.Group("/")
	authGroup.Use(middleware.AuthRequired(cfg.JWTSecret))
	authGroup.GET("/me", h.Me)

	// plain chat (persists history)
	chatLimit := middleware.RateLimit(rds, "chat", cfg.ChatRPM, time.Minute)
	r.POST("/api/chat/send", chatLimit, h.SendChatMessage)
	r.GET("/api/chat/history/:sender", h.GetChatHistory)

	// coin queries (market data budget, no history)
	marketLimit := middleware.RateLimit(rds, "market", cfg.MarketRPM, time.Minute)
	r.POST("/api/chat/bot/coin", marketLimit, h.CoinQuery)
	r.POST("/api/chat/bot/coin/async", marketLimit, h.CoinQueryAsync)
	r.GET("/api/chat/jobs/:job_id", h.GetQueryJob)
	r.GET("/chat/coin/:name", marketLimit, h.GetCoinDetails)

	return r
}
