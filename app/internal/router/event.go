package router

import (
	"github.com/mszlu521/thunder/event"

	"github.com/y-ymmt/ikitaitoko-bot/app/internal/sessions"
)

type Event struct {
}

func (u *Event) Register() {
	//webhooksパッケージからセッション記録を呼び出すためのイベント
	sessionService := sessions.NewPublicService()
	event.Register("recordConversation", sessionService.RecordConversation)
}
