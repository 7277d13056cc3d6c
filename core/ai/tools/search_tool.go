package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

var tavilyBaseURL = "https://api.tavily.com/search"

// SearchTool Tavily Search APIを使ったWeb検索ツール
type SearchTool struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type SearchConfig struct {
	ApiKey string
}

func NewSearchTool(c *SearchConfig) *SearchTool {
	if c == nil {
		panic("SearchConfig is nil")
	}
	return &SearchTool{
		apiKey:  c.ApiKey,
		baseURL: tavilyBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *SearchTool) Params() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{
		"query": {
			Desc:     "検索クエリ（場所の名前や知りたい情報）",
			Type:     schema.String,
			Required: true,
		},
		"max_results": {
			Desc: "取得する検索結果の最大件数（デフォルト5件）",
			Type: schema.Integer,
		},
	}
}

func (s *SearchTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name:        "tavily_search",
		Desc:        "Web検索を行い、場所やお店に関する最新の情報を取得する",
		ParamsOneOf: schema.NewParamsOneOfByParams(s.Params()),
	}, nil
}

func (s *SearchTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	var params map[string]any
	if err := json.Unmarshal([]byte(argumentsInJSON), &params); err != nil {
		return "", err
	}
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return "", fmt.Errorf("query is required")
	}
	maxResults := 5
	if mr, ok := params["max_results"].(float64); ok && mr > 0 {
		maxResults = int(mr)
	}
	reqBody, _ := json.Marshal(map[string]any{
		"query":               query,
		"max_results":         maxResults,
		"search_depth":        "basic",
		"include_answer":      false,
		"include_raw_content": false,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", s.apiKey)
	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tavily api error: %d %s", resp.StatusCode, string(body))
	}
	var tavilyResp struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &tavilyResp); err != nil {
		return "", fmt.Errorf("parse tavily response: %w", err)
	}
	//モデルが扱いやすいようtitle/url/snippetの配列に整形する
	var results []map[string]string
	for _, r := range tavilyResp.Results {
		results = append(results, map[string]string{
			"title":   r.Title,
			"url":     r.URL,
			"snippet": r.Content,
		})
	}
	out, _ := json.Marshal(results)
	return string(out), nil
}
