package invocations

type InvokeReq struct {
	Prompt    string `json:"prompt"`
	SessionID string `json:"sessionId"`
	ActorID   string `json:"actorId"`
}
