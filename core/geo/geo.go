package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/mszlu521/thunder/logs"
)

// 国土地理院の住所検索API
var gsiBaseURL = "https://msearch.gsi.go.jp/address-search/AddressSearch"

// Coordinate 緯度経度
type Coordinate struct {
	Lat float64
	Lon float64
}

type Geocoder struct {
	baseURL string
	client  *http.Client
}

func NewGeocoder() *Geocoder {
	return &Geocoder{
		baseURL: gsiBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Geocode 住所や場所名から座標を取得する
// 見つからない場合は (nil, nil) を返す
func (g *Geocoder) Geocode(ctx context.Context, query string) (*Coordinate, error) {
	fullURL := fmt.Sprintf("%s?q=%s", g.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gsi geocode failed with status code %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	//geometry.coordinates は [経度, 緯度] の順で返ってくるので注意
	var results []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 || len(results[0].Geometry.Coordinates) < 2 {
		logs.Infof("gsi geocode: no results for %s", query)
		return nil, nil
	}
	lon, lat := results[0].Geometry.Coordinates[0], results[0].Geometry.Coordinates[1]
	return &Coordinate{Lat: lat, Lon: lon}, nil
}

// HaversineKm 2点間の直線距離(km)をHaversine公式で計算する
func HaversineKm(a, b Coordinate) float64 {
	//地球の半径(km)
	const r = 6371.0
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return r * c
}
