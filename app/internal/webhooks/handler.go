package webhooks

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mszlu521/thunder/logs"

	"github.com/y-ymmt/ikitaitoko-bot/common/biz"
	"github.com/y-ymmt/ikitaitoko-bot/core/line"
)

type Handler struct {
	service *service
}

func NewHandler() *Handler {
	return &Handler{
		service: newService(),
	}
}

// Callback LINEプラットフォームからのWebhookを受け取る
// 署名検証のため、パース前に生のボディを読む必要がある
func (h *Handler) Callback(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logs.Errorf("リクエストボディの読み取りに失敗: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": biz.ErrInvalidWebhook.Error()})
		return
	}
	signature := c.GetHeader("X-Line-Signature")
	if !line.VerifySignature(h.service.channelSecret, body, signature) {
		logs.Warnf("署名検証に失敗")
		c.JSON(http.StatusBadRequest, gin.H{"message": biz.ErrInvalidSignature.Error()})
		return
	}
	var webhook line.WebhookBody
	if err = json.Unmarshal(body, &webhook); err != nil {
		logs.Errorf("Webhookペイロードの解析に失敗: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": biz.ErrInvalidWebhook.Error()})
		return
	}
	//エージェントの応答を待つとLINE側がリトライしてしまうので
	//処理は非同期にして即時に200を返す
	//イベントが空の場合は検証リクエストなのでそのまま200
	if len(webhook.Events) > 0 {
		go h.service.processEvents(context.Background(), webhook.Events)
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
