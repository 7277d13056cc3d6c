package line

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/y-ymmt/ikitaitoko-bot/common/utils"

	"github.com/mszlu521/thunder/logs"
)

var apiBase = "https://api.line.me/v2/bot"

// LINEのテキストメッセージは最大5000文字
const maxTextLength = 5000

// Client LINE Messaging APIクライアント
type Client struct {
	accessToken string
	baseURL     string
	client      *http.Client
}

func NewClient(accessToken string) *Client {
	return &Client{
		accessToken: accessToken,
		baseURL:     apiBase,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Push 指定の宛先（ユーザー/グループ/ルームID）にテキストを送信する
func (c *Client) Push(ctx context.Context, to string, text string) error {
	if to == "" {
		return fmt.Errorf("line: empty push target")
	}
	payload := map[string]any{
		"to":       to,
		"messages": []TextMessage{{Type: "text", Text: utils.TruncateRunes(text, maxTextLength)}},
	}
	return c.post(ctx, "/message/push", payload)
}

// Reply replyTokenを使って返信する（受信から3分以内のみ有効）
func (c *Client) Reply(ctx context.Context, replyToken string, text string) error {
	if replyToken == "" {
		return fmt.Errorf("line: empty reply token")
	}
	payload := map[string]any{
		"replyToken": replyToken,
		"messages":   []TextMessage{{Type: "text", Text: utils.TruncateRunes(text, maxTextLength)}},
	}
	return c.post(ctx, "/message/reply", payload)
}

// Profile ユーザーの表示名を取得する
type Profile struct {
	DisplayName string `json:"displayName"`
	UserID      string `json:"userId"`
	PictureURL  string `json:"pictureUrl"`
}

func (c *Client) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/profile/"+userID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("line: HTTP %d: %s", resp.StatusCode, string(respBody))
	}
	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("line: HTTP %d: %s", resp.StatusCode, string(respBody))
	}
	logs.Infof("line: message sent path=%s status=%d", path, resp.StatusCode)
	return nil
}

// VerifySignature X-Line-Signatureヘッダーを検証する
// 署名はチャネルシークレットを鍵としたリクエストボディのHMAC-SHA256をbase64化したもの
func VerifySignature(channelSecret string, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
