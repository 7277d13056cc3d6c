package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

var jst = time.FixedZone("Asia/Tokyo", 9*60*60)

var jaWeekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// DatetimeTool 日本時間の現在日時を返すツール
type DatetimeTool struct {
	now func() time.Time
}

func NewDatetimeTool() *DatetimeTool {
	return &DatetimeTool{now: time.Now}
}

func (d *DatetimeTool) Params() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{}
}

func (d *DatetimeTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name:        "get_current_datetime",
		Desc:        "日本時間の現在日時（曜日・週番号付き）を取得する",
		ParamsOneOf: schema.NewParamsOneOfByParams(d.Params()),
	}, nil
}

func (d *DatetimeTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	now := d.now().In(jst)
	_, week := now.ISOWeek()
	return fmt.Sprintf("現在の日時: %s（%s曜日） 第%d週",
		now.Format("2006年01月02日 15:04:05"), jaWeekdays[now.Weekday()], week), nil
}
