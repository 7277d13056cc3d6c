package tool

import (
	"context"
	"encoding/json"

	"github.com/cloudwego/eino/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mszlu521/thunder/ai/einos"
)

// MCPTool mcp-goサーバーに登録できるツール
type MCPTool interface {
	Build() mcp.Tool
	Invoke(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// PlaceTool einoのツールをMCPツールとして公開するラッパー
// nameが空の場合はeinoのツール名をそのまま使う
type PlaceTool struct {
	name string
	tool einos.InvokeParamTool
}

func NewPlaceTool(name string, t einos.InvokeParamTool) *PlaceTool {
	return &PlaceTool{name: name, tool: t}
}

func (p *PlaceTool) Build() mcp.Tool {
	info, _ := p.tool.Info(context.Background())
	name := p.name
	if name == "" {
		name = info.Name
	}
	//einoのパラメータ定義をmcpのものに変換する
	options := ToMCPOptions(p.tool.Params(), info.Desc)
	return mcp.NewTool(name, options...)
}

func (p *PlaceTool) Invoke(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params, err := json.Marshal(request.GetArguments())
	if err != nil {
		return nil, err
	}
	invokableRun, err := p.tool.InvokableRun(ctx, string(params))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(invokableRun), nil
}

func ToMCPOptions(params map[string]*schema.ParameterInfo, desc string) []mcp.ToolOption {
	var options []mcp.ToolOption
	options = append(options, mcp.WithDescription(desc))
	for k, v := range params {
		var propertyOptions []mcp.PropertyOption
		if v.Required {
			propertyOptions = append(propertyOptions, mcp.Required())
		}
		propertyOptions = append(propertyOptions, mcp.Description(v.Desc))
		if len(v.Enum) > 0 {
			propertyOptions = append(propertyOptions, mcp.Enum(v.Enum...))
		}
		switch v.Type {
		case schema.String:
			options = append(options, mcp.WithString(k, propertyOptions...))
		case schema.Number:
			options = append(options, mcp.WithNumber(k, propertyOptions...))
		case schema.Boolean:
			options = append(options, mcp.WithBoolean(k, propertyOptions...))
		case schema.Integer:
			options = append(options, mcp.WithNumber(k, propertyOptions...))
		case schema.Array:
			options = append(options, mcp.WithArray(k, propertyOptions...))
		case schema.Object:
			options = append(options, mcp.WithObject(k, propertyOptions...))
		}
	}
	return options
}
