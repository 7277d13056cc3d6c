package tool

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/y-ymmt/ikitaitoko-bot/core/ai/tools"
)

func newCallToolRequest(args map[string]any) mcp.CallToolRequest {
	var request mcp.CallToolRequest
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type: %T", result.Content[0])
	}
	return text.Text
}

func TestPlaceToolBuild(t *testing.T) {
	placeTool := NewPlaceTool("current-datetime", tools.NewDatetimeTool())
	built := placeTool.Build()
	if built.Name != "current-datetime" {
		t.Errorf("Build() name = %v, want current-datetime", built.Name)
	}

	//名前を指定しない場合はeinoのツール名が使われる
	defaultName := NewPlaceTool("", tools.NewDatetimeTool())
	if got := defaultName.Build().Name; got != "get_current_datetime" {
		t.Errorf("Build() name = %v, want get_current_datetime", got)
	}
}

func TestPlaceToolInvoke(t *testing.T) {
	placeTool := NewPlaceTool("", tools.NewDatetimeTool())
	placeTool.Build()
	result, err := placeTool.Invoke(context.Background(), newCallToolRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "現在の日時") {
		t.Errorf("Invoke() = %v, want datetime text", text)
	}
}

func TestToMCPOptions(t *testing.T) {
	params := map[string]*schema.ParameterInfo{
		"name": {
			Desc:     "場所の名前",
			Type:     schema.String,
			Required: true,
		},
		"category": {
			Desc: "カテゴリ",
			Type: schema.String,
			Enum: []string{"旅行", "飲食店"},
		},
	}
	options := ToMCPOptions(params, "テスト用ツール")
	//説明 + パラメータ2つ
	if len(options) != 3 {
		t.Errorf("ToMCPOptions() len = %v, want 3", len(options))
	}
}
