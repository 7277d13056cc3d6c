package shared

import (
	"github.com/google/uuid"

	"github.com/y-ymmt/ikitaitoko-bot/model"
)

type RecordConversationRequest struct {
	SourceID   string
	SourceType model.SourceType
	ActorID    string
	UserText   string
	ReplyText  string
}

type RecordConversationResponse struct {
	SessionID uuid.UUID
}
