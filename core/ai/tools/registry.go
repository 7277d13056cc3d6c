package tools

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	"github.com/mszlu521/thunder/ai/einos"
)

var _register *Registry

type Registry struct {
	tools []einos.InvokeParamTool
}

// RegisterSystemTools システムツールを登録する 各サービスの起動時に1回呼ぶ
func RegisterSystemTools(inputs ...einos.InvokeParamTool) {
	var tools []einos.InvokeParamTool
	tools = append(tools, inputs...)
	_register = &Registry{tools: tools}
}

// FindTool ツール名からツールを取得する
func FindTool(toolName string) einos.InvokeParamTool {
	for _, t := range _register.tools {
		info, _ := t.Info(context.Background())
		if info.Name == toolName {
			return t
		}
	}
	return nil
}

// GetTools 登録済みの全ツールを取得する
func GetTools() []tool.BaseTool {
	var tools []tool.BaseTool
	for _, t := range _register.tools {
		tools = append(tools, t)
	}
	return tools
}
