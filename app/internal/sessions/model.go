package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mszlu521/thunder/gorms"
	"gorm.io/gorm"

	"github.com/y-ymmt/ikitaitoko-bot/model"
)

type models struct {
	db *gorm.DB
}

func newModels(db *gorm.DB) *models {
	return &models{
		db: db,
	}
}

func (m *models) getBySourceID(ctx context.Context, sourceID string) (*model.Session, error) {
	var session model.Session
	err := m.db.WithContext(ctx).Where("source_id = ?", sourceID).First(&session).Error
	if gorms.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (m *models) createSession(ctx context.Context, session *model.Session) error {
	return m.db.WithContext(ctx).Create(session).Error
}

func (m *models) createMessages(ctx context.Context, messages []*model.Message) error {
	return m.db.WithContext(ctx).CreateInBatches(messages, len(messages)).Error
}

func (m *models) touchSession(ctx context.Context, sessionID uuid.UUID, added int64) error {
	return m.db.WithContext(ctx).Model(&model.Session{}).
		Where("id = ?", sessionID).
		Updates(map[string]any{
			"last_active_at": time.Now(),
			"message_count":  gorm.Expr("message_count + ?", added),
		}).Error
}
