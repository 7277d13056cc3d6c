package main

import (
	"github.com/mszlu521/thunder/config"
	"github.com/mszlu521/thunder/logs"
	"github.com/mszlu521/thunder/server"

	"github.com/y-ymmt/ikitaitoko-bot/mcp-server/internal/inits"
)

func main() {
	//etc/config.yml の設定を読み込む
	config.Init()
	conf := config.GetConfig()
	//ログ初期化
	logs.Init(conf.Log)
	//Ginサーバー初期化
	s := server.NewServer(conf)
	//各モジュールの初期化
	inits.Init(s, conf)
	//サーバー起動
	s.Start()
}
