package ai

import (
	"encoding/json"
	"testing"
)

func TestInvokeResponseShape(t *testing.T) {
	tests := []struct {
		name string
		res  InvokeResponse
		want string
	}{
		{
			name: "成功応答はresultのみ",
			res:  BuildResultResponse("追加しました"),
			want: `{"result":"追加しました"}`,
		},
		{
			name: "エラー応答はerrorとdetails",
			res:  BuildErrResponse("エージェントの実行に失敗しました", "timeout"),
			want: `{"error":"エージェントの実行に失敗しました","details":"timeout"}`,
		},
		{
			name: "detailsが空なら省略される",
			res:  BuildErrResponse("プロンプトが空です", ""),
			want: `{"error":"プロンプトが空です"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.res)
			if err != nil {
				t.Fatalf("json.Marshal error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("json = %s, want %s", got, tt.want)
			}
		})
	}
}
