package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/y-ymmt/ikitaitoko-bot/core/geo"
)

// DistanceTool 2地点間の直線距離を計算するツール
type DistanceTool struct {
	geocoder *geo.Geocoder
}

func NewDistanceTool(geocoder *geo.Geocoder) *DistanceTool {
	return &DistanceTool{geocoder: geocoder}
}

func (d *DistanceTool) Params() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{
		"origin": {
			Desc:     "出発地点（住所または場所名、例: 新宿駅）",
			Type:     schema.String,
			Required: true,
		},
		"destination": {
			Desc:     "目的地（住所または場所名、例: 東京タワー）",
			Type:     schema.String,
			Required: true,
		},
	}
}

func (d *DistanceTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name:        "get_distance",
		Desc:        "2つの場所間の直線距離を計算する",
		ParamsOneOf: schema.NewParamsOneOfByParams(d.Params()),
	}, nil
}

func (d *DistanceTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	var params struct {
		Origin      string `json:"origin"`
		Destination string `json:"destination"`
	}
	if err := json.Unmarshal([]byte(argumentsInJSON), &params); err != nil {
		return "", err
	}
	if params.Origin == "" || params.Destination == "" {
		return "", fmt.Errorf("origin and destination are required")
	}
	originCoord, err := d.geocoder.Geocode(ctx, params.Origin)
	if err != nil {
		return "", err
	}
	if originCoord == nil {
		return fmt.Sprintf("出発地点「%s」の座標を取得できませんでした。", params.Origin), nil
	}
	destCoord, err := d.geocoder.Geocode(ctx, params.Destination)
	if err != nil {
		return "", err
	}
	if destCoord == nil {
		return fmt.Sprintf("目的地「%s」の座標を取得できませんでした。", params.Destination), nil
	}
	distance := geo.HaversineKm(*originCoord, *destCoord)
	return fmt.Sprintf("「%s」から「%s」までの直線距離: 約 %.1f km", params.Origin, params.Destination, distance), nil
}
