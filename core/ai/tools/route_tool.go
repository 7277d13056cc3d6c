package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

var travelModes = map[string]string{
	"車":   "driving",
	"電車":  "transit",
	"徒歩":  "walking",
	"自転車": "bicycling",
}

// RouteTool Google Mapsの経路URLを生成するツール
type RouteTool struct{}

func NewRouteTool() *RouteTool {
	return &RouteTool{}
}

func (r *RouteTool) Params() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{
		"origin": {
			Desc:     "出発地点（住所または場所名）",
			Type:     schema.String,
			Required: true,
		},
		"destination": {
			Desc:     "目的地（住所または場所名）",
			Type:     schema.String,
			Required: true,
		},
		"waypoints": {
			Desc: "経由地。複数ある場合は「|」で区切る（例: 渋谷駅|品川駅）。省略可",
			Type: schema.String,
		},
		"travel_mode": {
			Desc: "移動手段（車・電車・徒歩・自転車）。省略するとGoogleマップのデフォルト",
			Type: schema.String,
			Enum: []string{"車", "電車", "徒歩", "自転車"},
		},
	}
}

func (r *RouteTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name:        "generate_route_url",
		Desc:        "出発地から目的地までのGoogle Maps経路URLを生成する",
		ParamsOneOf: schema.NewParamsOneOfByParams(r.Params()),
	}, nil
}

func (r *RouteTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	var params struct {
		Origin      string `json:"origin"`
		Destination string `json:"destination"`
		Waypoints   string `json:"waypoints"`
		TravelMode  string `json:"travel_mode"`
	}
	if err := json.Unmarshal([]byte(argumentsInJSON), &params); err != nil {
		return "", err
	}
	if params.Origin == "" || params.Destination == "" {
		return "", fmt.Errorf("origin and destination are required")
	}
	waypoints := splitWaypoints(params.Waypoints)
	//未対応の移動手段はtravelmodeを付けずGoogleマップのデフォルトに任せる
	mode := travelModes[params.TravelMode]
	routeURL := BuildRouteURL(params.Origin, params.Destination, waypoints, mode)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Googleマップで経路を確認:\n%s", routeURL))
	sb.WriteString(fmt.Sprintf("\n\n出発地: %s\n目的地: %s", params.Origin, params.Destination))
	if len(waypoints) > 0 {
		sb.WriteString(fmt.Sprintf("\n経由地: %s", strings.Join(waypoints, " → ")))
	}
	if params.TravelMode != "" {
		if mode != "" {
			sb.WriteString(fmt.Sprintf("\n移動手段: %s", params.TravelMode))
		} else {
			sb.WriteString(fmt.Sprintf("\n※ 移動手段「%s」は無効です。Googleマップのデフォルトが使用されます。", params.TravelMode))
		}
	}
	return sb.String(), nil
}

func splitWaypoints(waypoints string) []string {
	if waypoints == "" {
		return nil
	}
	var list []string
	for _, w := range strings.Split(waypoints, "|") {
		if w = strings.TrimSpace(w); w != "" {
			list = append(list, w)
		}
	}
	return list
}

// BuildRouteURL 経由地は個別にエスケープし | で連結する（| 自体はエスケープしない）
// travelModeが空の場合はtravelmodeパラメータを付けない
func BuildRouteURL(origin, destination string, waypoints []string, travelMode string) string {
	u := fmt.Sprintf("https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s",
		url.QueryEscape(origin), url.QueryEscape(destination))
	if len(waypoints) > 0 {
		escaped := make([]string, 0, len(waypoints))
		for _, w := range waypoints {
			escaped = append(escaped, url.QueryEscape(w))
		}
		u += "&waypoints=" + strings.Join(escaped, "|")
	}
	if travelMode != "" {
		u += "&travelmode=" + travelMode
	}
	return u
}
