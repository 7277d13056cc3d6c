package ai

// InvokeRequest エージェントランタイムへのリクエスト
type InvokeRequest struct {
	Prompt    string `json:"prompt"`
	SessionID string `json:"sessionId,omitempty"`
	ActorID   string `json:"actorId,omitempty"`
}

// InvokeResponse エージェントランタイムからのレスポンス
// 正常時はResult、異常時はError/Detailsが入る
type InvokeResponse struct {
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

func BuildResultResponse(result string) InvokeResponse {
	return InvokeResponse{Result: result}
}

func BuildErrResponse(errMsg string, details string) InvokeResponse {
	return InvokeResponse{Error: errMsg, Details: details}
}
