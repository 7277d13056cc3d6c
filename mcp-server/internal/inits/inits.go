package inits

import (
	"github.com/mszlu521/thunder/config"
	"github.com/mszlu521/thunder/logs"
	"github.com/mszlu521/thunder/server"

	"github.com/y-ymmt/ikitaitoko-bot/common/utils"
	"github.com/y-ymmt/ikitaitoko-bot/mcp-server/internal/router"
)

func Init(s *server.Server, conf *config.Config) {
	if _, err := utils.RequireEnv(
		"NOTION_TOKEN",
		"NOTION_DATABASE_ID",
	); err != nil {
		logs.Errorf("起動に必要な環境変数が不足: %v", err)
		panic(err)
	}
	s.RegisterRouters(&router.McpRouter{})
}
