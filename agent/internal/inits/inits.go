package inits

import (
	"github.com/mszlu521/thunder/config"
	"github.com/mszlu521/thunder/database"
	"github.com/mszlu521/thunder/logs"
	"github.com/mszlu521/thunder/server"

	"github.com/y-ymmt/ikitaitoko-bot/agent/internal/router"
	"github.com/y-ymmt/ikitaitoko-bot/common/utils"
	"github.com/y-ymmt/ikitaitoko-bot/core/ai/tools"
	"github.com/y-ymmt/ikitaitoko-bot/core/geo"
	"github.com/y-ymmt/ikitaitoko-bot/core/notion"
)

func Init(s *server.Server, conf *config.Config) {
	//認証情報は環境変数から取得する 不足していたら起動させない
	env, err := utils.RequireEnv(
		"NOTION_TOKEN",
		"NOTION_DATABASE_ID",
		"TAVILY_API_KEY",
	)
	if err != nil {
		logs.Errorf("起動に必要な環境変数が不足: %v", err)
		panic(err)
	}
	//会話履歴用のデータベース初期化
	database.InitPostgres(conf.DB.Postgres)
	//システムツール登録
	registerTools(env)
	s.RegisterRouters(&router.InvocationRouter{})
}

func registerTools(env map[string]string) {
	notionClient := notion.NewClient(env["NOTION_TOKEN"], env["NOTION_DATABASE_ID"])
	geocoder := geo.NewGeocoder()
	tools.RegisterSystemTools(
		tools.NewSearchTool(&tools.SearchConfig{ApiKey: env["TAVILY_API_KEY"]}),
		tools.NewAddPlaceTool(&tools.AddPlaceConfig{Notion: notionClient}),
		tools.NewNearbyTool(&tools.NearbyConfig{Notion: notionClient, Geocoder: geocoder}),
		tools.NewGeocodeTool(geocoder),
		tools.NewDistanceTool(geocoder),
		tools.NewDatetimeTool(),
		tools.NewRouteTool(),
	)
}
