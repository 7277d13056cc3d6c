package invocations

import (
	"testing"
	"time"

	"github.com/y-ymmt/ikitaitoko-bot/model"
)

func TestSortChronological(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// 一括挿入されたuser/assistantペアはcreated_atが同時刻になる
	messages := []*model.Message{
		{BaseModel: model.BaseModel{CreatedAt: base.Add(time.Minute)}, Seq: 4, Role: model.MessageRoleAssistant, Content: "わかりました"},
		{BaseModel: model.BaseModel{CreatedAt: base.Add(time.Minute)}, Seq: 3, Role: model.MessageRoleUser, Content: "カフェを追加して"},
		{BaseModel: model.BaseModel{CreatedAt: base}, Seq: 2, Role: model.MessageRoleAssistant, Content: "こんにちは"},
		{BaseModel: model.BaseModel{CreatedAt: base}, Seq: 1, Role: model.MessageRoleUser, Content: "こんにちは"},
	}

	sortChronological(messages)

	wantRoles := []model.MessageRole{
		model.MessageRoleUser,
		model.MessageRoleAssistant,
		model.MessageRoleUser,
		model.MessageRoleAssistant,
	}
	for i, want := range wantRoles {
		if messages[i].Role != want {
			t.Fatalf("messages[%d].Role = %s, want %s", i, messages[i].Role, want)
		}
	}
	if messages[2].Content != "カフェを追加して" {
		t.Errorf("messages[2].Content = %s, want カフェを追加して", messages[2].Content)
	}
}
