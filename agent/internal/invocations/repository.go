package invocations

import (
	"context"

	"github.com/google/uuid"

	"github.com/y-ymmt/ikitaitoko-bot/model"
)

type repository interface {
	getSessionBySourceID(ctx context.Context, sourceID string) (*model.Session, error)
	listRecentMessages(ctx context.Context, sessionID uuid.UUID, limit int) ([]*model.Message, error)
}
