package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/coinpulse/coinchat/internal/common"
	"github.com/coinpulse/coinchat/internal/market"
	"github.com/gin-gonic/gin"
)

type sendMessageReq struct {
	Sender  string `json:"sender" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *Handler) SendChatMessage(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	botMsg, err := h.ChatSvc.ProcessUserMessage(c.Request.Context(), req.Sender, req.Content)
	if err != nil {
		log.Printf("[SendChatMessage] insert turn failed sender=%s err=%v", req.Sender, err)
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to store message")
		return
	}

	common.OK(c, botMsg)
}

func (h *Handler) GetChatHistory(c *gin.Context) {
	sender := c.Param("sender")
	if sender == "" {
		common.Fail(c, http.StatusBadRequest, 10002, "sender required")
		return
	}

	msgs, err := h.ChatSvc.History(c.Request.Context(), sender)
	if err != nil {
		log.Printf("[GetChatHistory] query failed sender=%s err=%v", sender, err)
		common.Fail(c, http.StatusInternalServerError, 50002, "failed to load history")
		return
	}

	common.OK(c, gin.H{"messages": msgs})
}

type promptReq struct {
	Prompt string `json:"prompt" binding:"required"`
}

// CoinQuery is the synchronous coin-query path: classify, compose, return.
// The composer guarantees displayable text even on total upstream failure,
// so there is no error branch past binding.
func (h *Handler) CoinQuery(c *gin.Context) {
	var req promptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	reply := h.ChatSvc.CoinQuery(c.Request.Context(), req.Prompt)
	common.OK(c, gin.H{"message": reply})
}

func (h *Handler) CoinQueryAsync(c *gin.Context) {
	var req promptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	j, err := h.ChatSvc.CreateQueryJob(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("[CoinQueryAsync] create job failed err=%v", err)
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to create job")
		return
	}

	if err := h.Rabbit.PublishJob(c.Request.Context(), j.ID); err != nil {
		log.Printf("[CoinQueryAsync] publish failed job=%s err=%v", j.ID, err)
		common.Fail(c, http.StatusInternalServerError, 50003, "enqueue failed")
		return
	}

	common.OK(c, gin.H{"job_id": j.ID})
}

func (h *Handler) GetQueryJob(c *gin.Context) {
	jobID := c.Param("job_id")
	if jobID == "" {
		common.Fail(c, http.StatusBadRequest, 10003, "job_id required")
		return
	}

	j, err := h.ChatSvc.GetQueryJob(c.Request.Context(), jobID)
	if err != nil {
		common.Fail(c, http.StatusNotFound, 40402, "job not found")
		return
	}

	common.OK(c, gin.H{"job": j})
}

// GetCoinDetails relays a full provider snapshot for one coin as JSON.
func (h *Handler) GetCoinDetails(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		common.Fail(c, http.StatusBadRequest, 10004, "coin name required")
		return
	}

	id := h.Resolver.Resolve(name)
	snap, err := h.Market.CoinDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, market.ErrShapeMismatch) {
			common.Fail(c, http.StatusNotFound, 40403, "coin not found")
			return
		}
		log.Printf("[GetCoinDetails] upstream failed id=%s err=%v", id, err)
		common.Fail(c, http.StatusBadGateway, 50201, "market data unavailable")
		return
	}

	common.OK(c, gin.H{
		"name":       snap.Name,
		"symbol":     strings.ToUpper(snap.Symbol),
		"price":      snap.Price,
		"change_24h": snap.Change24h,
		"market_cap": snap.MarketCap,
		"volume_24h": snap.Volume,
	})
}
