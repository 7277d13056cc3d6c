package tools

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/y-ymmt/ikitaitoko-bot/core/notion"
)

// DatabaseInfoTool データベースのメタデータ（プロパティ定義）を取得するツール
type DatabaseInfoTool struct {
	notion *notion.Client
}

func NewDatabaseInfoTool(c *notion.Client) *DatabaseInfoTool {
	return &DatabaseInfoTool{notion: c}
}

func (d *DatabaseInfoTool) Params() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{}
}

func (d *DatabaseInfoTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name:        "retrieve_database",
		Desc:        "行きたいところリストのデータベース定義（プロパティ構成）を取得する",
		ParamsOneOf: schema.NewParamsOneOfByParams(d.Params()),
	}, nil
}

func (d *DatabaseInfoTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	raw, err := d.notion.RetrieveDatabase(ctx)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
