package sessions

import (
	"context"

	"github.com/google/uuid"

	"github.com/y-ymmt/ikitaitoko-bot/model"
)

type repository interface {
	getBySourceID(ctx context.Context, sourceID string) (*model.Session, error)
	createSession(ctx context.Context, session *model.Session) error
	createMessages(ctx context.Context, messages []*model.Message) error
	touchSession(ctx context.Context, sessionID uuid.UUID, added int64) error
}
