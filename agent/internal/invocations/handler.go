package invocations

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mszlu521/thunder/logs"
	"github.com/mszlu521/thunder/req"

	"github.com/y-ymmt/ikitaitoko-bot/common/biz"
	"github.com/y-ymmt/ikitaitoko-bot/core/ai"
)

type Handler struct {
	service *service
}

func NewHandler() *Handler {
	return &Handler{
		service: newService(),
	}
}

func (h *Handler) Invoke(c *gin.Context) {
	var invokeReq InvokeReq
	if err := req.JsonParam(c, &invokeReq); err != nil {
		return
	}
	if strings.TrimSpace(invokeReq.Prompt) == "" {
		c.JSON(http.StatusBadRequest, ai.BuildErrResponse(biz.ErrEmptyPrompt.Error(), ""))
		return
	}
	//モデルの応答は時間がかかるのでグローバルのタイムアウトを外す
	rc := http.NewResponseController(c.Writer)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		logs.Warnf("SetWriteDeadline error: %v", err)
	}
	result, err := h.service.invoke(c.Request.Context(), invokeReq)
	if err != nil {
		logs.Errorf("エージェントの実行に失敗: %v", err)
		c.JSON(http.StatusInternalServerError, ai.BuildErrResponse("エージェントの実行に失敗しました", err.Error()))
		return
	}
	c.JSON(http.StatusOK, ai.BuildResultResponse(result))
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
