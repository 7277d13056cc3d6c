package inits

import (
	"github.com/mszlu521/thunder/config"
	"github.com/mszlu521/thunder/database"
	"github.com/mszlu521/thunder/logs"
	"github.com/mszlu521/thunder/server"

	"github.com/y-ymmt/ikitaitoko-bot/app/internal/router"
	"github.com/y-ymmt/ikitaitoko-bot/common/utils"
)

func Init(s *server.Server, conf *config.Config) {
	//認証情報は環境変数から取得する 不足していたら起動させない
	if _, err := utils.RequireEnv(
		"LINE_CHANNEL_SECRET",
		"LINE_CHANNEL_ACCESS_TOKEN",
		"AGENT_RUNTIME_URL",
	); err != nil {
		logs.Errorf("起動に必要な環境変数が不足: %v", err)
		panic(err)
	}
	//会話セッション用のデータベース初期化
	database.InitPostgres(conf.DB.Postgres)
	//イベント重複排除用のredis初期化
	database.InitRedis(conf.DB.Redis)
	s.RegisterRouters(
		&router.Event{},
		&router.WebhookRouter{},
	)
}
