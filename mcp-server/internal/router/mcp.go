package router

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/y-ymmt/ikitaitoko-bot/common/utils"
	"github.com/y-ymmt/ikitaitoko-bot/core/ai/tools"
	"github.com/y-ymmt/ikitaitoko-bot/core/notion"
	"github.com/y-ymmt/ikitaitoko-bot/mcp-server/internal/tool"
)

type McpRouter struct {
}

func (u *McpRouter) Register(engine *gin.Engine) {
	//mcp-goでMCPサーバーを作成 /sse と /message の2つのエンドポイントを公開する
	mcpServer := server.NewMCPServer(
		"ikitaitoko-bot mcp server",
		mcp.LATEST_PROTOCOL_VERSION,
		server.WithToolCapabilities(true),
	)
	notionClient := notion.NewClient(os.Getenv("NOTION_TOKEN"), os.Getenv("NOTION_DATABASE_ID"))
	placeTools := []tool.MCPTool{
		tool.NewPlaceTool("query-places", tools.NewQueryPlacesTool(&tools.QueryPlacesConfig{Notion: notionClient})),
		tool.NewPlaceTool("add-place", tools.NewAddPlaceTool(&tools.AddPlaceConfig{Notion: notionClient})),
		tool.NewPlaceTool("retrieve-database", tools.NewDatabaseInfoTool(notionClient)),
	}
	for _, t := range placeTools {
		mcpServer.AddTool(t.Build(), t.Invoke)
	}
	sseServer := server.NewSSEServer(
		mcpServer,
		server.WithBaseURL(utils.EnvOrDefault("MCP_PUBLIC_URL", "http://localhost:7777")),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
	)
	engine.GET("/sse", gin.WrapH(sseServer.SSEHandler()))
	engine.POST("/message", gin.WrapH(sseServer.MessageHandler()))
}
