package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/y-ymmt/ikitaitoko-bot/core/geo"
)

// GeocodeTool 住所や場所名から座標を取得するツール
type GeocodeTool struct {
	geocoder *geo.Geocoder
}

func NewGeocodeTool(geocoder *geo.Geocoder) *GeocodeTool {
	return &GeocodeTool{geocoder: geocoder}
}

func (g *GeocodeTool) Params() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{
		"query": {
			Desc:     "住所または場所名（例: 東京都渋谷区、新宿駅、東京タワー）",
			Type:     schema.String,
			Required: true,
		},
	}
}

func (g *GeocodeTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name:        "geocode",
		Desc:        "住所や場所名から座標（緯度・経度）を取得する",
		ParamsOneOf: schema.NewParamsOneOfByParams(g.Params()),
	}, nil
}

func (g *GeocodeTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	var params struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(argumentsInJSON), &params); err != nil {
		return "", err
	}
	if params.Query == "" {
		return "", fmt.Errorf("query is required")
	}
	coord, err := g.geocoder.Geocode(ctx, params.Query)
	if err != nil {
		return "", err
	}
	if coord == nil {
		return fmt.Sprintf("「%s」の座標を取得できませんでした。より具体的な住所や場所名を指定してください。", params.Query), nil
	}
	return fmt.Sprintf("「%s」の座標:\n緯度: %v\n経度: %v", params.Query, coord.Lat, coord.Lon), nil
}
