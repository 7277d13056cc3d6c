package mcps

import (
	"context"
	"fmt"
	"strings"

	mcpp "github.com/cloudwego/eino-ext/components/tool/mcp"
	"github.com/cloudwego/eino/components/tool"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mszlu521/thunder/ai/einos"
)

// connect URL末尾が /sse ならSSE、それ以外はstreamable httpで接続する
func connect(ctx context.Context, config *einos.McpConfig) (*client.Client, error) {
	headers := make(map[string]string)
	if config.Token != "" {
		headers["Authorization"] = fmt.Sprintf("Bearer %s", config.Token)
	}
	url := config.BaseUrl
	var cli *client.Client
	var err error
	if strings.HasSuffix(url, "/sse") {
		cli, err = client.NewSSEMCPClient(url, transport.WithHeaders(headers))
	} else {
		cli, err = client.NewStreamableHttpClient(url, transport.WithHTTPHeaders(headers))
	}
	if err != nil {
		return nil, err
	}
	if err = cli.Start(ctx); err != nil {
		return nil, err
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    config.Name,
		Version: config.Version,
	}
	if _, err = cli.Initialize(ctx, initRequest); err != nil {
		return nil, err
	}
	return cli, nil
}

// GetEinoBaseTools MCPサーバーのツールをeinoのツールとして取得する
func GetEinoBaseTools(ctx context.Context, config *einos.McpConfig) ([]tool.BaseTool, error) {
	cli, err := connect(ctx, config)
	if err != nil {
		return nil, err
	}
	return mcpp.GetTools(ctx, &mcpp.Config{Cli: cli})
}

func GetMCPTool(ctx context.Context, config *einos.McpConfig) ([]mcp.Tool, error) {
	cli, err := connect(ctx, config)
	if err != nil {
		return nil, err
	}
	tools, err := cli.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, err
	}
	return tools.Tools, nil
}
