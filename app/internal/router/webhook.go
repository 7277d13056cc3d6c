package router

import (
	"github.com/gin-gonic/gin"

	"github.com/y-ymmt/ikitaitoko-bot/app/internal/webhooks"
)

type WebhookRouter struct {
}

func (u *WebhookRouter) Register(engine *gin.Engine) {
	webhookHandler := webhooks.NewHandler()
	engine.POST("/callback", webhookHandler.Callback)
	engine.GET("/health", webhookHandler.Health)
}
