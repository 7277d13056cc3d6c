package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/mszlu521/thunder/logs"

	"github.com/y-ymmt/ikitaitoko-bot/core/geo"
	"github.com/y-ymmt/ikitaitoko-bot/core/notion"
)

const (
	defaultMaxDistanceKm = 10.0
	maxUnresolvedReport  = 5
)

// NearbyTool リスト内の場所から基準地点の近くにあるものを探すツール
type NearbyTool struct {
	notion   *notion.Client
	geocoder *geo.Geocoder
}

type NearbyConfig struct {
	Notion   *notion.Client
	Geocoder *geo.Geocoder
}

func NewNearbyTool(conf *NearbyConfig) *NearbyTool {
	if conf == nil || conf.Notion == nil || conf.Geocoder == nil {
		panic("nearby tool config is required")
	}
	return &NearbyTool{notion: conf.Notion, geocoder: conf.Geocoder}
}

func (n *NearbyTool) Params() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{
		"location": {
			Desc:     "基準地点（住所または場所名、例: 渋谷駅）",
			Type:     schema.String,
			Required: true,
		},
		"max_distance_km": {
			Desc: "検索する最大距離（km、省略時は10km）",
			Type: schema.Number,
		},
	}
}

func (n *NearbyTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name:        "find_nearby_places",
		Desc:        "行きたいところリストの中から指定した場所の近くにあるものを距離順で探す",
		ParamsOneOf: schema.NewParamsOneOfByParams(n.Params()),
	}, nil
}

type nearbyPlace struct {
	place      notion.Place
	distanceKm float64
}

func (n *NearbyTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	var params struct {
		Location      string   `json:"location"`
		MaxDistanceKm *float64 `json:"max_distance_km"`
	}
	if err := json.Unmarshal([]byte(argumentsInJSON), &params); err != nil {
		return "", err
	}
	if params.Location == "" {
		return "", fmt.Errorf("location is required")
	}
	maxDistance := defaultMaxDistanceKm
	if params.MaxDistanceKm != nil && *params.MaxDistanceKm > 0 {
		maxDistance = *params.MaxDistanceKm
	}
	base, err := n.geocoder.Geocode(ctx, params.Location)
	if err != nil {
		return "", err
	}
	if base == nil {
		return fmt.Sprintf("基準地点「%s」の座標を取得できませんでした。", params.Location), nil
	}
	places, err := n.notion.QueryPlaces(ctx)
	if err != nil {
		logs.Errorf("query places err: %v", err)
		return "行きたいところリストの取得に失敗しました。", nil
	}
	var nearby []nearbyPlace
	var unresolved []string
	for _, p := range places {
		if p.Address == "" {
			unresolved = append(unresolved, p.Name)
			continue
		}
		coord, err := n.geocoder.Geocode(ctx, p.Address)
		if err != nil || coord == nil {
			unresolved = append(unresolved, p.Name)
			continue
		}
		d := geo.HaversineKm(*base, *coord)
		if d <= maxDistance {
			nearby = append(nearby, nearbyPlace{place: p, distanceKm: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].distanceKm < nearby[j].distanceKm
	})

	var sb strings.Builder
	if len(nearby) == 0 {
		sb.WriteString(fmt.Sprintf("「%s」から%.0fkm以内に行きたいところは見つかりませんでした。", params.Location, maxDistance))
	} else {
		sb.WriteString(fmt.Sprintf("「%s」から%.0fkm以内の行きたいところ:\n", params.Location, maxDistance))
		for i, np := range nearby {
			sb.WriteString(fmt.Sprintf("%d. %s（約%.1fkm）", i+1, np.place.Name, np.distanceKm))
			if np.place.Address != "" {
				sb.WriteString(fmt.Sprintf(" 住所: %s", np.place.Address))
			}
			sb.WriteString("\n")
		}
	}
	if len(unresolved) > 0 {
		sb.WriteString("\n住所から位置を特定できなかった場所: ")
		show := unresolved
		if len(show) > maxUnresolvedReport {
			show = show[:maxUnresolvedReport]
		}
		sb.WriteString(strings.Join(show, "、"))
		if len(unresolved) > maxUnresolvedReport {
			sb.WriteString(fmt.Sprintf(" ... 他 %d 件", len(unresolved)-maxUnresolvedReport))
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
