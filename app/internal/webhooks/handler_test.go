package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

const testChannelSecret = "test-channel-secret"

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{service: &service{channelSecret: testChannelSecret}}
	engine := gin.New()
	engine.POST("/callback", h.Callback)
	engine.GET("/health", h.Health)
	return engine
}

func signBody(body string) string {
	mac := hmac.New(sha256.New, []byte(testChannelSecret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestCallback(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		signature   string
		wantCode    int
		wantMessage string
	}{
		{
			name:        "署名が無効",
			body:        `{"events":[]}`,
			signature:   "invalid-signature",
			wantCode:    http.StatusBadRequest,
			wantMessage: "署名が無効です",
		},
		{
			name:        "署名ヘッダーが無い",
			body:        `{"events":[]}`,
			signature:   "",
			wantCode:    http.StatusBadRequest,
			wantMessage: "署名が無効です",
		},
		{
			name:        "ペイロードが不正なJSON",
			body:        `{"events":`,
			signature:   signBody(`{"events":`),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Webhookペイロードを解析できません",
		},
		{
			name:        "イベント無しの検証リクエスト",
			body:        `{"destination":"U0","events":[]}`,
			signature:   signBody(`{"destination":"U0","events":[]}`),
			wantCode:    http.StatusOK,
			wantMessage: "ok",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(tt.body))
			if tt.signature != "" {
				r.Header.Set("X-Line-Signature", tt.signature)
			}
			engine.ServeHTTP(w, r)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			var res struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
				t.Fatalf("json.Unmarshal error: %v", err)
			}
			if res.Message != tt.wantMessage {
				t.Errorf("message = %s, want %s", res.Message, tt.wantMessage)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	engine := newTestEngine()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
