package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/mszlu521/thunder/logs"

	"github.com/y-ymmt/ikitaitoko-bot/core/notion"
)

// QueryPlacesTool 行きたいところリストを取得するツール
// 論理削除済みのページは除外される
type QueryPlacesTool struct {
	notion *notion.Client
}

type QueryPlacesConfig struct {
	Notion *notion.Client
}

func NewQueryPlacesTool(c *QueryPlacesConfig) *QueryPlacesTool {
	if c == nil || c.Notion == nil {
		panic("QueryPlacesConfig is nil")
	}
	return &QueryPlacesTool{notion: c.Notion}
}

func (q *QueryPlacesTool) Params() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{
		"category": {
			Desc: "カテゴリで絞り込む（省略時は全件）",
			Type: schema.String,
			Enum: []string{"旅行", "飲食店", "買い物", "その他"},
		},
	}
}

func (q *QueryPlacesTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name:        "query_places",
		Desc:        "行きたいところリストの一覧を取得する",
		ParamsOneOf: schema.NewParamsOneOfByParams(q.Params()),
	}, nil
}

func (q *QueryPlacesTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	var params struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(argumentsInJSON), &params); err != nil {
		return "", err
	}
	places, err := q.notion.QueryPlaces(ctx)
	if err != nil {
		logs.Errorf("query_places failed: %v", err)
		return "行きたいところリストの取得に失敗しました。", nil
	}
	if params.Category != "" {
		var filtered []notion.Place
		for _, p := range places {
			if p.Category == params.Category {
				filtered = append(filtered, p)
			}
		}
		places = filtered
	}
	if len(places) == 0 {
		return "行きたいところはまだ登録されていません。", nil
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("行きたいところリスト（%d件）:\n", len(places)))
	for i, p := range places {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, p.Name))
		var attrs []string
		if p.Category != "" {
			attrs = append(attrs, fmt.Sprintf("カテゴリ: %s", p.Category))
		}
		if p.Priority != "" {
			attrs = append(attrs, fmt.Sprintf("優先度: %s", p.Priority))
		}
		if p.Visited {
			attrs = append(attrs, "行った: ✓")
		}
		if p.Address != "" {
			attrs = append(attrs, fmt.Sprintf("住所: %s", p.Address))
		}
		if p.Memo != "" {
			attrs = append(attrs, fmt.Sprintf("メモ: %s", p.Memo))
		}
		if len(attrs) > 0 {
			sb.WriteString("（" + strings.Join(attrs, " / ") + "）")
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
