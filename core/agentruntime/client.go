package agentruntime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mszlu521/thunder/logs"

	"github.com/y-ymmt/ikitaitoko-bot/core/ai"
)

// ランタイム側の制約でセッションIDは最低33文字必要
const minSessionIDLength = 33

// Client エージェントランタイムの呼び出しクライアント
// タイムアウトと有限回のリトライ付きで /invocations を叩く
type Client struct {
	baseURL    string
	maxRetries int
	backoff    time.Duration
	client     *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		maxRetries: 2,
		backoff:    2 * time.Second,
		//エージェントの応答はツール呼び出しを含めて長くなる
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

// Invoke プロンプトを送りエージェントの応答テキストを取得する
// 5xxと接続エラーのみリトライする 4xxは即時失敗
func (c *Client) Invoke(ctx context.Context, prompt string, sessionID string, actorID string) (string, error) {
	reqBody, err := json.Marshal(ai.InvokeRequest{
		Prompt:    prompt,
		SessionID: PadSessionID(sessionID),
		ActorID:   actorID,
	})
	if err != nil {
		return "", err
	}
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			logs.Warnf("agent runtime retry %d/%d: %v", attempt, c.maxRetries, lastErr)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.backoff * time.Duration(attempt)):
			}
		}
		result, retryable, err := c.invokeOnce(ctx, reqBody)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
	}
	return "", lastErr
}

func (c *Client) invokeOnce(ctx context.Context, reqBody []byte) (result string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/invocations", bytes.NewReader(reqBody))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		//接続エラーはリトライ対象
		return "", true, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, err
	}
	if resp.StatusCode >= 500 {
		return "", true, fmt.Errorf("agent runtime returned %d: %s", resp.StatusCode, string(body))
	}
	if resp.StatusCode >= 400 {
		return "", false, fmt.Errorf("agent runtime returned %d: %s", resp.StatusCode, string(body))
	}
	var invokeResp ai.InvokeResponse
	if err := json.Unmarshal(body, &invokeResp); err != nil {
		return "", false, fmt.Errorf("agent runtime: decode response: %w", err)
	}
	if invokeResp.Error != "" {
		return "", false, fmt.Errorf("agent runtime error: %s", invokeResp.Error)
	}
	return invokeResp.Result, false, nil
}

const sessionIDPrefix = "ikitaitoko_bot_session_"

// PadSessionID 33文字未満のセッションIDを決定的に33文字以上へ伸ばす
// 同じ会話が常に同じランタイムセッションへ届くよう、ランダム値は使わない
func PadSessionID(sessionID string) string {
	if sessionID == "" || len(sessionID) >= minSessionIDLength {
		return sessionID
	}
	padded := sessionIDPrefix + sessionID
	for len(padded) < minSessionIDLength {
		padded += "_"
	}
	return padded
}

// UnpadSessionID PadSessionIDで付けたプレフィックスと詰め文字を取り除く
func UnpadSessionID(sessionID string) string {
	if !strings.HasPrefix(sessionID, sessionIDPrefix) {
		return sessionID
	}
	return strings.TrimRight(strings.TrimPrefix(sessionID, sessionIDPrefix), "_")
}
