package biz

import "github.com/mszlu521/thunder/errs"

var (
	ErrInvalidSignature = errs.NewError(10001, "署名が無効です")
	ErrInvalidWebhook   = errs.NewError(10002, "Webhookペイロードを解析できません")
)

var (
	ErrEmptyPrompt = errs.NewError(20001, "プロンプトが空です")
	ErrAgentInvoke = errs.NewError(20002, "エージェントの呼び出しに失敗しました")
)
