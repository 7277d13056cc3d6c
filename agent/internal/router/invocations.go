package router

import (
	"github.com/gin-gonic/gin"

	"github.com/y-ymmt/ikitaitoko-bot/agent/internal/invocations"
)

type InvocationRouter struct {
}

func (u *InvocationRouter) Register(engine *gin.Engine) {
	handler := invocations.NewHandler()
	//エージェントランタイムのコントラクトに合わせたエンドポイント
	engine.POST("/invocations", handler.Invoke)
	engine.GET("/ping", handler.Ping)
}
