package sessions

import (
	"context"
	"time"

	"github.com/mszlu521/thunder/database"
	"github.com/mszlu521/thunder/event"
	"github.com/mszlu521/thunder/logs"

	"github.com/y-ymmt/ikitaitoko-bot/app/shared"
	"github.com/y-ymmt/ikitaitoko-bot/model"
)

type PublicService struct {
	repo repository
}

func NewPublicService() *PublicService {
	return &PublicService{
		repo: newModels(database.GetPostgresDB().GormDB),
	}
}

// RecordConversation ユーザーの発言とエージェントの応答をセッションに記録する
// セッションが無ければ作成する
func (s *PublicService) RecordConversation(e event.Event) (any, error) {
	request := e.Data.(*shared.RecordConversationRequest)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	session, err := s.repo.getBySourceID(ctx, request.SourceID)
	if err != nil {
		logs.Errorf("セッションの取得に失敗: %v", err)
		return nil, err
	}
	if session == nil {
		session = &model.Session{
			SourceID:     request.SourceID,
			SourceType:   request.SourceType,
			LastActiveAt: time.Now(),
		}
		if err = s.repo.createSession(ctx, session); err != nil {
			logs.Errorf("セッションの作成に失敗: %v", err)
			return nil, err
		}
	}
	messages := []*model.Message{
		{
			SessionID: session.ID,
			ActorID:   request.ActorID,
			Role:      model.MessageRoleUser,
			Content:   request.UserText,
		},
		{
			SessionID: session.ID,
			Role:      model.MessageRoleAssistant,
			Content:   request.ReplyText,
		},
	}
	if err = s.repo.createMessages(ctx, messages); err != nil {
		logs.Errorf("メッセージの記録に失敗: %v", err)
		return nil, err
	}
	if err = s.repo.touchSession(ctx, session.ID, int64(len(messages))); err != nil {
		logs.Errorf("セッションの更新に失敗: %v", err)
		return nil, err
	}
	return &shared.RecordConversationResponse{SessionID: session.ID}, nil
}
