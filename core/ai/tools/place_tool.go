package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/mszlu521/thunder/logs"

	"github.com/y-ymmt/ikitaitoko-bot/core/notion"
)

// AddPlaceTool 行きたいところリストに場所を追加するツール
type AddPlaceTool struct {
	notion *notion.Client
}

type AddPlaceConfig struct {
	Notion *notion.Client
}

func NewAddPlaceTool(c *AddPlaceConfig) *AddPlaceTool {
	if c == nil || c.Notion == nil {
		panic("AddPlaceConfig is nil")
	}
	return &AddPlaceTool{notion: c.Notion}
}

func (a *AddPlaceTool) Params() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{
		"name": {
			Desc:     "追加する場所の名前",
			Type:     schema.String,
			Required: true,
		},
		"category": {
			Desc: "カテゴリ（デフォルト: その他）",
			Type: schema.String,
			Enum: []string{"旅行", "飲食店", "買い物", "その他"},
		},
		"priority": {
			Desc: "優先度（デフォルト: 中）",
			Type: schema.String,
			Enum: []string{"高", "中", "低"},
		},
		"memo": {
			Desc: "メモ（任意）",
			Type: schema.String,
		},
		"address": {
			Desc: "住所（任意、距離検索に使用）",
			Type: schema.String,
		},
	}
}

func (a *AddPlaceTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name:        "add_place",
		Desc:        "行きたいところリストに新しい場所を追加する",
		ParamsOneOf: schema.NewParamsOneOfByParams(a.Params()),
	}, nil
}

func (a *AddPlaceTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	var params struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Priority string `json:"priority"`
		Memo     string `json:"memo"`
		Address  string `json:"address"`
	}
	if err := json.Unmarshal([]byte(argumentsInJSON), &params); err != nil {
		return "", err
	}
	if params.Name == "" {
		return "", fmt.Errorf("name is required")
	}
	place := notion.Place{
		Name:     params.Name,
		Category: notion.NormalizeCategory(params.Category),
		Priority: notion.NormalizePriority(params.Priority),
		Memo:     params.Memo,
		Address:  params.Address,
	}
	if err := a.notion.AddPlace(ctx, place); err != nil {
		logs.Errorf("add_place failed: %v", err)
		return fmt.Sprintf("場所の追加に失敗しました: %v", err), nil
	}
	result := fmt.Sprintf("「%s」を行きたいところリストに追加しました！\nカテゴリ: %s\n優先度: %s", place.Name, place.Category, place.Priority)
	if place.Address != "" {
		result += fmt.Sprintf("\n住所: %s", place.Address)
	}
	return result, nil
}
