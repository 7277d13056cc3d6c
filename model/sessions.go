package model

import (
	"time"

	"github.com/google/uuid"
)

// SourceType LINEのイベントソース種別
type SourceType string

const (
	SourceTypeUser  SourceType = "user"
	SourceTypeGroup SourceType = "group"
	SourceTypeRoom  SourceType = "room"
)

// Session 会話セッション
// グループ/ルームの場合はそのID、1対1の場合はユーザーIDで一意になる
type Session struct {
	BaseModel
	SourceID     string     `json:"sourceId" gorm:"column:source_id;type:varchar(64);not null;uniqueIndex"`
	SourceType   SourceType `json:"sourceType" gorm:"column:source_type;type:varchar(16);not null"`
	LastActiveAt time.Time  `json:"lastActiveAt" gorm:"column:last_active_at;not null"`
	MessageCount int64      `json:"messageCount" gorm:"column:message_count;type:bigint;not null;default:0"`

	// 関連関係
	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:SessionID"`
}

func (*Session) TableName() string {
	return "sessions"
}

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

// Message セッション内の1件の発言
// ActorID は発言したLINEユーザーのID（assistantの場合は空）
// Seq は一括挿入でcreated_atが同時刻になっても発言順が保てるよう採番する
type Message struct {
	BaseModel
	SessionID uuid.UUID   `json:"sessionId" gorm:"column:session_id;type:uuid;not null;index"`
	Seq       int64       `json:"-" gorm:"column:seq;autoIncrement"`
	ActorID   string      `json:"actorId" gorm:"column:actor_id;type:varchar(64);index"`
	Role      MessageRole `json:"role" gorm:"column:role;type:varchar(16);not null"`
	Content   string      `json:"content" gorm:"column:content;type:text;not null"`
}

func (*Message) TableName() string {
	return "messages"
}
