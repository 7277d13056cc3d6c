package line

// WebhookBody LINEプラットフォームから届くWebhookペイロード
type WebhookBody struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event Webhookの1イベント
type Event struct {
	Type       string   `json:"type"` // "message", "follow", "join" など
	Timestamp  int64    `json:"timestamp"`
	ReplyToken string   `json:"replyToken,omitempty"`
	Source     Source   `json:"source"`
	Message    *Message `json:"message,omitempty"`
}

// Source イベントの発生元
type Source struct {
	Type    string `json:"type"` // "user", "group", "room"
	UserID  string `json:"userId,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	RoomID  string `json:"roomId,omitempty"`
}

// Message 受信メッセージ
// textに加えて位置情報メッセージ(location)も扱う
type Message struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"` // "text", "location", "image" など
	Text      string   `json:"text,omitempty"`
	Mention   *Mention `json:"mention,omitempty"`
	Title     string   `json:"title,omitempty"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Mention メッセージ中のメンション情報
type Mention struct {
	Mentionees []Mentionee `json:"mentionees"`
}

// Mentionee メンション1件分 IsSelfがtrueならBot自身へのメンション
type Mentionee struct {
	Index  int  `json:"index"`
	Length int  `json:"length"`
	IsSelf bool `json:"isSelf"`
}

// TextMessage 送信するテキストメッセージ
type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
