package webhooks

import (
	"strings"
	"testing"

	"github.com/y-ymmt/ikitaitoko-bot/core/line"
)

func floatPtr(v float64) *float64 {
	return &v
}

type memoryDedupStore struct {
	keys map[string]bool
}

func (m *memoryDedupStore) seen(key string) bool {
	return m.keys[key]
}

func (m *memoryDedupStore) mark(key string) error {
	m.keys[key] = true
	return nil
}

func TestIsDuplicate(t *testing.T) {
	s := &service{dedup: &memoryDedupStore{keys: map[string]bool{}}}

	if s.isDuplicate("msg-1") {
		t.Error("初回のisDuplicate(msg-1) = true, want false")
	}
	//LINEの再配送は同じメッセージIDで届く
	if !s.isDuplicate("msg-1") {
		t.Error("2回目のisDuplicate(msg-1) = false, want true")
	}
	if s.isDuplicate("msg-2") {
		t.Error("isDuplicate(msg-2) = true, want false")
	}
	//メッセージIDが無いイベントは弾かない
	if s.isDuplicate("") {
		t.Error("isDuplicate(\"\") = true, want false")
	}
	if s.isDuplicate("") {
		t.Error("2回目のisDuplicate(\"\") = true, want false")
	}
}

func TestIsBotMentioned(t *testing.T) {
	tests := []struct {
		name string
		ev   line.Event
		want bool
	}{
		{
			name: "1対1は常にtrue",
			ev: line.Event{
				Source:  line.Source{Type: "user", UserID: "U1"},
				Message: &line.Message{Type: "text", Text: "こんにちは"},
			},
			want: true,
		},
		{
			name: "グループでメンション無し",
			ev: line.Event{
				Source:  line.Source{Type: "group", GroupID: "G1", UserID: "U1"},
				Message: &line.Message{Type: "text", Text: "こんにちは"},
			},
			want: false,
		},
		{
			name: "グループでBotへのメンションあり",
			ev: line.Event{
				Source: line.Source{Type: "group", GroupID: "G1", UserID: "U1"},
				Message: &line.Message{
					Type: "text",
					Text: "@bot こんにちは",
					Mention: &line.Mention{
						Mentionees: []line.Mentionee{{Index: 0, Length: 4, IsSelf: true}},
					},
				},
			},
			want: true,
		},
		{
			name: "グループで他人へのメンションのみ",
			ev: line.Event{
				Source: line.Source{Type: "room", RoomID: "R1", UserID: "U1"},
				Message: &line.Message{
					Type: "text",
					Text: "@taro こんにちは",
					Mention: &line.Mention{
						Mentionees: []line.Mentionee{{Index: 0, Length: 5, IsSelf: false}},
					},
				},
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBotMentioned(tt.ev); got != tt.want {
				t.Errorf("isBotMentioned() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractMessageText(t *testing.T) {
	tests := []struct {
		name    string
		message *line.Message
		want    string
	}{
		{
			name:    "メンション無し",
			message: &line.Message{Text: "渋谷のカフェを追加して"},
			want:    "渋谷のカフェを追加して",
		},
		{
			name: "先頭のメンションを除去",
			message: &line.Message{
				Text: "@bot 渋谷のカフェを追加して",
				Mention: &line.Mention{
					Mentionees: []line.Mentionee{{Index: 0, Length: 4, IsSelf: true}},
				},
			},
			want: "渋谷のカフェを追加して",
		},
		{
			name: "複数メンションは後ろから除去",
			message: &line.Message{
				Text: "@bot 追加して @bot お願い",
				Mention: &line.Mention{
					Mentionees: []line.Mentionee{
						{Index: 0, Length: 4, IsSelf: true},
						{Index: 10, Length: 4, IsSelf: true},
					},
				},
			},
			want: "追加して お願い",
		},
		{
			name: "範囲外のインデックスは無視",
			message: &line.Message{
				Text: "短い",
				Mention: &line.Mention{
					Mentionees: []line.Mentionee{{Index: 0, Length: 100, IsSelf: true}},
				},
			},
			want: "短い",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractMessageText(tt.message); got != tt.want {
				t.Errorf("extractMessageText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	locationEvent := line.Event{
		Type:   "message",
		Source: line.Source{Type: "group", GroupID: "G1", UserID: "U1"},
		Message: &line.Message{
			Type:      "location",
			Title:     "東京タワー",
			Address:   "東京都港区芝公園4-2-8",
			Latitude:  floatPtr(35.6586),
			Longitude: floatPtr(139.7454),
		},
	}
	got, ok := buildPrompt(locationEvent)
	if !ok {
		t.Fatal("location message should be handled")
	}
	for _, want := range []string{"現在地を共有しました", "東京タワー", "東京都港区芝公園4-2-8", "35.6586", "139.7454"} {
		if !strings.Contains(got, want) {
			t.Errorf("buildPrompt() = %q, want contains %q", got, want)
		}
	}

	//グループのlocationはメンション不要で処理される
	stickerEvent := line.Event{
		Type:    "message",
		Source:  line.Source{Type: "user", UserID: "U1"},
		Message: &line.Message{Type: "sticker"},
	}
	if _, ok = buildPrompt(stickerEvent); ok {
		t.Error("sticker message should be skipped")
	}

	mentionOnly := line.Event{
		Type:   "message",
		Source: line.Source{Type: "group", GroupID: "G1", UserID: "U1"},
		Message: &line.Message{
			Type: "text",
			Text: "@bot",
			Mention: &line.Mention{
				Mentionees: []line.Mentionee{{Index: 0, Length: 4, IsSelf: true}},
			},
		},
	}
	if _, ok = buildPrompt(mentionOnly); ok {
		t.Error("mention-only text should be skipped")
	}
}

func TestResolveSessionID(t *testing.T) {
	tests := []struct {
		name   string
		source line.Source
		want   string
	}{
		{"グループ", line.Source{Type: "group", GroupID: "G1", UserID: "U1"}, "G1"},
		{"ルーム", line.Source{Type: "room", RoomID: "R1", UserID: "U1"}, "R1"},
		{"1対1", line.Source{Type: "user", UserID: "U1"}, "U1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveSessionID(tt.source); got != tt.want {
				t.Errorf("resolveSessionID() = %v, want %v", got, tt.want)
			}
		})
	}
}
