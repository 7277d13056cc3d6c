package webhooks

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mszlu521/thunder/cache"
	"github.com/mszlu521/thunder/event"
	"github.com/mszlu521/thunder/logs"

	"github.com/y-ymmt/ikitaitoko-bot/app/shared"
	"github.com/y-ymmt/ikitaitoko-bot/common/utils"
	"github.com/y-ymmt/ikitaitoko-bot/core/agentruntime"
	"github.com/y-ymmt/ikitaitoko-bot/core/line"
	"github.com/y-ymmt/ikitaitoko-bot/model"
)

const (
	//重複配送の排除キーのTTL
	dedupKeyPrefix  = "webhook:event:"
	dedupTTLSeconds = 60 * 60

	//1イベントの処理時間の上限 エージェントの応答待ちを含む
	processTimeout = 3 * time.Minute

	apologyMessage = "申し訳ありません。エラーが発生しました。しばらくしてからもう一度お試しください。"
)

// dedupStore 処理済みイベントの記録
type dedupStore interface {
	seen(key string) bool
	mark(key string) error
}

type redisDedupStore struct {
	cache *cache.RedisCache
}

func (r *redisDedupStore) seen(key string) bool {
	v, err := r.cache.Get(key)
	return err == nil && v != ""
}

func (r *redisDedupStore) mark(key string) error {
	return r.cache.Set(key, "1", dedupTTLSeconds)
}

type service struct {
	channelSecret string
	lineClient    *line.Client
	runtime       *agentruntime.Client
	dedup         dedupStore
}

func newService() *service {
	return &service{
		channelSecret: os.Getenv("LINE_CHANNEL_SECRET"),
		lineClient:    line.NewClient(os.Getenv("LINE_CHANNEL_ACCESS_TOKEN")),
		runtime:       agentruntime.NewClient(os.Getenv("AGENT_RUNTIME_URL")),
		dedup:         &redisDedupStore{cache: cache.NewRedisCache()},
	}
}

func (s *service) processEvents(ctx context.Context, events []line.Event) {
	for _, ev := range events {
		s.processEvent(ctx, ev)
	}
}

func (s *service) processEvent(ctx context.Context, ev line.Event) {
	if ev.Type != "message" || ev.Message == nil {
		return
	}
	prompt, ok := buildPrompt(ev)
	if !ok {
		return
	}
	//LINEは応答が遅いと同じイベントを再配送するのでメッセージIDで弾く
	if s.isDuplicate(ev.Message.ID) {
		logs.Infof("重複イベントをスキップ: %s", ev.Message.ID)
		return
	}
	sessionID := resolveSessionID(ev.Source)
	if sessionID == "" {
		return
	}
	actorID := ev.Source.UserID
	logs.Infof("メッセージを処理: %s (session=%s)", prompt, sessionID)

	ctx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()
	result, err := s.runtime.Invoke(ctx, prompt, sessionID, actorID)
	if err != nil {
		logs.Errorf("エージェントの呼び出しに失敗: %v", err)
		if pushErr := s.lineClient.Push(ctx, sessionID, apologyMessage); pushErr != nil {
			logs.Errorf("エラーメッセージの送信に失敗: %v", pushErr)
		}
		return
	}
	if pushErr := s.lineClient.Push(ctx, sessionID, result); pushErr != nil {
		logs.Errorf("応答の送信に失敗: %v", pushErr)
		return
	}
	s.recordConversation(ev.Source, sessionID, actorID, prompt, result)
}

func (s *service) isDuplicate(messageID string) bool {
	if messageID == "" {
		return false
	}
	key := dedupKeyPrefix + messageID
	if s.dedup.seen(key) {
		return true
	}
	if err := s.dedup.mark(key); err != nil {
		logs.Warnf("重複排除キーの保存に失敗: %v", err)
	}
	return false
}

func (s *service) recordConversation(source line.Source, sessionID string, actorID string, userText string, replyText string) {
	_, err := event.Trigger("recordConversation", &shared.RecordConversationRequest{
		SourceID:   sessionID,
		SourceType: model.SourceType(source.Type),
		ActorID:    actorID,
		UserText:   userText,
		ReplyText:  replyText,
	})
	if err != nil {
		logs.Errorf("会話の記録に失敗: %v", err)
	}
}

// buildPrompt イベントからエージェントへのプロンプトを組み立てる
// 処理対象外のイベントはfalseを返す
func buildPrompt(ev line.Event) (string, bool) {
	switch ev.Message.Type {
	case "location":
		return buildLocationPrompt(ev.Message), true
	case "text":
		//グループ/ルームではBotへのメンションが必要
		if !isBotMentioned(ev) {
			logs.Infof("メンションが無いためスキップ")
			return "", false
		}
		text := extractMessageText(ev.Message)
		if text == "" {
			logs.Infof("メンション除去後のテキストが空のためスキップ")
			return "", false
		}
		return text, true
	default:
		return "", false
	}
}

// isBotMentioned 1対1チャットは常にtrue
// グループ/ルームはmentioneesにBot自身(isSelf)が含まれるかで判定する
func isBotMentioned(ev line.Event) bool {
	if ev.Source.Type == "user" {
		return true
	}
	if ev.Message.Mention == nil {
		return false
	}
	for _, m := range ev.Message.Mention.Mentionees {
		if m.IsSelf {
			return true
		}
	}
	return false
}

// extractMessageText メンション部分を除去したテキストを返す
// インデックスがずれないよう後ろから削除する
func extractMessageText(message *line.Message) string {
	text := []rune(message.Text)
	if message.Mention != nil {
		mentionees := make([]line.Mentionee, len(message.Mention.Mentionees))
		copy(mentionees, message.Mention.Mentionees)
		sort.Slice(mentionees, func(i, j int) bool {
			return mentionees[i].Index > mentionees[j].Index
		})
		for _, m := range mentionees {
			start := m.Index
			end := m.Index + m.Length
			if start < 0 || end > len(text) || start > end {
				continue
			}
			text = append(text[:start], text[end:]...)
		}
	}
	return utils.CleanSpaces(string(text))
}

// buildLocationPrompt 位置情報メッセージをエージェントが扱えるテキストにする
func buildLocationPrompt(message *line.Message) string {
	parts := []string{"ユーザーが現在地を共有しました。"}
	if message.Title != "" {
		parts = append(parts, fmt.Sprintf("場所名: %s", message.Title))
	}
	if message.Address != "" {
		parts = append(parts, fmt.Sprintf("住所: %s", message.Address))
	}
	if message.Latitude != nil && message.Longitude != nil {
		parts = append(parts, fmt.Sprintf("緯度: %v, 経度: %v", *message.Latitude, *message.Longitude))
	}
	return strings.Join(parts, "\n")
}

// resolveSessionID グループ/ルームはそのID、1対1はユーザーIDを使う
// 返信先IDも同じ値になる
func resolveSessionID(source line.Source) string {
	switch source.Type {
	case "group":
		return source.GroupID
	case "room":
		return source.RoomID
	default:
		return source.UserID
	}
}
