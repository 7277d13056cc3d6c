package invocations

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino-ext/components/model/qwen"
	"github.com/cloudwego/eino/adk"
	aiModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/eino-contrib/ollama/api"
	"github.com/mszlu521/thunder/ai/einos"
	"github.com/mszlu521/thunder/database"
	"github.com/mszlu521/thunder/logs"

	"github.com/y-ymmt/ikitaitoko-bot/common/biz"
	"github.com/y-ymmt/ikitaitoko-bot/common/utils"
	"github.com/y-ymmt/ikitaitoko-bot/core/agentruntime"
	"github.com/y-ymmt/ikitaitoko-bot/core/ai"
	"github.com/y-ymmt/ikitaitoko-bot/core/ai/mcps"
	"github.com/y-ymmt/ikitaitoko-bot/core/ai/tools"
	"github.com/y-ymmt/ikitaitoko-bot/model"
)

// 直近の会話履歴として読み込むメッセージ数
const historyLimit = 20

const defaultTemperature = float32(0.7)

const (
	ollamaProvider = "ollama"
	openAIProvider = "openai"
	qwenProvider   = "qwen"
)

type service struct {
	repo repository
}

func newService() *service {
	return &service{
		repo: newModels(database.GetPostgresDB().GormDB),
	}
}

func (s *service) invoke(ctx context.Context, req InvokeReq) (string, error) {
	//会話履歴をPostgresから読み込んでプロンプトの前に再生する
	history := s.loadHistory(ctx, req.SessionID)
	mainAgent, err := s.buildMainAgent(ctx, history)
	if err != nil {
		logs.Errorf("エージェントの構築に失敗: %v", err)
		return "", err
	}
	runner := adk.NewRunner(ctx, adk.RunnerConfig{
		Agent: mainAgent,
	})
	iter := runner.Query(ctx, req.Prompt)
	var result string
	for {
		events, ok := iter.Next()
		if !ok {
			break
		}
		select {
		case <-ctx.Done():
			logs.Warnf("クライアントがリクエストを取り消した")
			return "", ctx.Err()
		default:
		}
		if events.Err != nil {
			return "", events.Err
		}
		if events.Output != nil && events.Output.MessageOutput != nil {
			msg, err := events.Output.MessageOutput.GetMessage()
			if err != nil {
				logs.Errorf("モデルの応答取得に失敗: %v", err)
				return "", err
			}
			logs.Infof("Agent名称[%s], ツール名:[%s], 応答: %s", events.AgentName, msg.ToolName, msg.Content)
			//ツール呼び出し途中の出力もここを通るので、最後の内容を最終応答とする
			if msg.Content != "" {
				result = msg.Content
			}
		}
	}
	if result == "" {
		return "", biz.ErrAgentInvoke
	}
	return result, nil
}

func (s *service) loadHistory(ctx context.Context, sessionID string) []adk.Message {
	if sessionID == "" {
		return nil
	}
	//ランタイム契約で埋められたIDを元のソースIDに戻す
	sourceID := agentruntime.UnpadSessionID(sessionID)
	session, err := s.repo.getSessionBySourceID(ctx, sourceID)
	if err != nil {
		logs.Warnf("セッションの取得に失敗: %v", err)
		return nil
	}
	if session == nil {
		return nil
	}
	messages, err := s.repo.listRecentMessages(ctx, session.ID, historyLimit)
	if err != nil {
		logs.Warnf("会話履歴の取得に失敗: %v", err)
		return nil
	}
	var history []adk.Message
	for _, m := range messages {
		switch m.Role {
		case model.MessageRoleUser:
			history = append(history, schema.UserMessage(m.Content))
		case model.MessageRoleAssistant:
			history = append(history, schema.AssistantMessage(m.Content, nil))
		}
	}
	return history
}

func (s *service) buildMainAgent(ctx context.Context, history []adk.Message) (adk.Agent, error) {
	chatModel, err := s.buildToolCallingChatModel(ctx)
	if err != nil {
		logs.Errorf("chatmodelの構築に失敗: %v", err)
		return nil, err
	}
	allTools := tools.GetTools()
	//MCPサーバーが設定されていればそのツールも使えるようにする
	if mcpURL := utils.EnvOrDefault("MCP_SERVER_URL", ""); mcpURL != "" {
		mcpConfig := einos.McpConfig{
			BaseUrl: mcpURL,
			Name:    "ikitaitoko-bot",
			Version: "1.0.0",
		}
		baseTools, err := mcps.GetEinoBaseTools(ctx, &mcpConfig)
		if err != nil {
			logs.Errorf("mcp toolsの取得に失敗: %v", err)
		} else {
			allTools = append(allTools, baseTools...)
		}
	}
	modelAgent, err := adk.NewChatModelAgent(ctx, &adk.ChatModelAgentConfig{
		Model:       chatModel,
		Name:        "ikitaitoko-bot",
		Description: "行きたいところリストを管理するアシスタント",
		Instruction: ai.BaseSystemPrompt,
		GenModelInput: func(ctx context.Context, instruction string, input *adk.AgentInput) ([]adk.Message, error) {
			//システムプロンプトにNotionの情報とツール一覧を埋め込む
			template := prompt.FromMessages(schema.FString, schema.SystemMessage(ai.BaseSystemPrompt))
			messages, err2 := template.Format(ctx, map[string]any{
				"notionDatabaseId":   os.Getenv("NOTION_DATABASE_ID"),
				"notionDataSourceId": os.Getenv("NOTION_DATA_SOURCE_ID"),
				"toolsInfo":          s.formatToolsInfo(allTools),
			})
			if err2 != nil {
				logs.Errorf("テンプレートの展開に失敗: %v", err2)
				return nil, err2
			}
			messages = append(messages, history...)
			messages = append(messages, input.Messages...)
			return messages, nil
		},
		ToolsConfig: adk.ToolsConfig{
			ToolsNodeConfig: compose.ToolsNodeConfig{
				Tools: allTools,
			},
		},
	})
	if err != nil {
		logs.Errorf("ChatModelAgentの構築に失敗: %v", err)
		return nil, err
	}
	return modelAgent, nil
}

func (s *service) buildToolCallingChatModel(ctx context.Context) (aiModel.ToolCallingChatModel, error) {
	provider := utils.EnvOrDefault("MODEL_PROVIDER", openAIProvider)
	modelName := os.Getenv("MODEL_NAME")
	apiKey := os.Getenv("MODEL_API_KEY")
	apiBase := os.Getenv("MODEL_API_BASE")
	temperature := defaultTemperature

	var chatModel aiModel.ToolCallingChatModel
	var err error
	if provider == ollamaProvider {
		chatModel, err = ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			Model:   modelName,
			BaseURL: apiBase,
			Options: &api.Options{
				Temperature: temperature,
			},
		})
	} else if provider == qwenProvider {
		chatModel, err = qwen.NewChatModel(ctx, &qwen.ChatModelConfig{
			Model:       modelName,
			BaseURL:     apiBase,
			APIKey:      apiKey,
			Temperature: &temperature,
		})
	} else if provider == openAIProvider {
		chatModel, err = openai.NewChatModel(ctx, &openai.ChatModelConfig{
			Model:       modelName,
			BaseURL:     apiBase,
			APIKey:      apiKey,
			Temperature: &temperature,
		})
	} else {
		//ほとんどのプロバイダーはopenai互換なのでデフォルトはopenai
		chatModel, err = openai.NewChatModel(ctx, &openai.ChatModelConfig{
			Model:       modelName,
			BaseURL:     apiBase,
			APIKey:      apiKey,
			Temperature: &temperature,
		})
	}
	return chatModel, err
}

func (s *service) formatToolsInfo(allTools []tool.BaseTool) string {
	var builder strings.Builder
	builder.WriteString("## 利用可能なツール\n")
	for _, t := range allTools {
		info, _ := t.Info(context.Background())
		builder.WriteString(fmt.Sprintf("- name: `%s` \n", info.Name))
		builder.WriteString(fmt.Sprintf("  description: `%s` \n", info.Desc))
		marshal, _ := json.Marshal(info.ParamsOneOf)
		builder.WriteString(fmt.Sprintf("  params: `%s` \n", string(marshal)))
	}
	return builder.String()
}
