package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

var apiBase = "https://api.notion.com/v1"

const apiVersion = "2022-06-28"

// Client Notion APIクライアント
// 「行きたいところリスト」データベースに対する読み書きを提供する
type Client struct {
	token      string
	databaseID string
	baseURL    string
	client     *http.Client
}

func NewClient(token string, databaseID string) *Client {
	return &Client{
		token:      token,
		databaseID: databaseID,
		baseURL:    apiBase,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method string, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("notion API returned %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// QueryPlaces 行きたいところリストを全件取得する
// 論理削除が「削除済み」のアイテムは除外する
func (c *Client) QueryPlaces(ctx context.Context) ([]Place, error) {
	payload := map[string]any{
		"filter": map[string]any{
			"or": []map[string]any{
				{
					"property": "論理削除",
					"select":   map[string]any{"does_not_equal": "削除済み"},
				},
				{
					"property": "論理削除",
					"select":   map[string]any{"is_empty": true},
				},
			},
		},
	}
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/databases/%s/query", c.databaseID), payload)
	if err != nil {
		return nil, err
	}
	var result struct {
		Results []page `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("notion: decode query response: %w", err)
	}
	places := make([]Place, 0, len(result.Results))
	for _, p := range result.Results {
		places = append(places, p.toPlace())
	}
	return places, nil
}

// AddPlace 行きたいところリストに新しい場所を追加する
func (c *Client) AddPlace(ctx context.Context, place Place) error {
	properties := map[string]any{
		"名前": map[string]any{
			"title": []map[string]any{
				{"type": "text", "text": map[string]any{"content": place.Name}},
			},
		},
		"カテゴリ": map[string]any{
			"select": map[string]any{"name": place.Category},
		},
		"優先度": map[string]any{
			"select": map[string]any{"name": place.Priority},
		},
		"行った": map[string]any{
			"checkbox": false,
		},
	}
	if place.Memo != "" {
		properties["メモ"] = map[string]any{
			"rich_text": []map[string]any{
				{"type": "text", "text": map[string]any{"content": place.Memo}},
			},
		}
	}
	if place.Address != "" {
		properties["住所"] = map[string]any{
			"rich_text": []map[string]any{
				{"type": "text", "text": map[string]any{"content": place.Address}},
			},
		}
	}
	payload := map[string]any{
		"parent":     map[string]any{"database_id": c.databaseID},
		"properties": properties,
	}
	_, err := c.do(ctx, http.MethodPost, "/pages", payload)
	return err
}

// RetrieveDatabase データベースのメタ情報（プロパティ定義など）を取得する
func (c *Client) RetrieveDatabase(ctx context.Context) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/databases/%s", c.databaseID), nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
