package invocations

import (
	"context"
	"sort"

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

func (m *models) getSessionBySourceID(ctx context.Context, sourceID string) (*model.Session, error) {
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

func (m *models) listRecentMessages(ctx context.Context, sessionID uuid.UUID, limit int) ([]*model.Message, error) {
	var messages []*model.Message
	err := m.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at desc, seq desc").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	//新しい順で取得しているので古い順に並べ直す
	sortChronological(messages)
	return messages, nil
}

// sortChronological created_atの古い順に並べ替える
// 一括挿入でcreated_atが同時刻の場合はseqで順序を決める
func sortChronological(messages []*model.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].Seq < messages[j].Seq
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}
