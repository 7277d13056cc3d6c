package notion

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		token:      "test-token",
		databaseID: "test-db",
		baseURL:    serverURL,
		client:     &http.Client{Timeout: time.Second},
	}
}

func TestQueryPlaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/databases/test-db/query" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Notion-Version"); got != apiVersion {
			t.Errorf("Notion-Version = %s, want %s", got, apiVersion)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %s", got)
		}
		//論理削除フィルタが送られていること
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("request body is not json: %v", err)
		}
		if _, ok := payload["filter"]; !ok {
			t.Errorf("query payload has no filter: %s", string(body))
		}
		w.Write([]byte(`{"results":[
			{"id":"p1","properties":{
				"名前":{"title":[{"plain_text":"東京タワー"}]},
				"カテゴリ":{"select":{"name":"旅行"}},
				"優先度":{"select":{"name":"高"}},
				"行った":{"checkbox":false},
				"住所":{"rich_text":[{"plain_text":"東京都港区芝公園4-2-8"}]}
			}},
			{"id":"p2","properties":{
				"名前":{"title":[]},
				"カテゴリ":{"select":null},
				"優先度":{"select":null},
				"行った":{"checkbox":true}
			}}
		]}`))
	}))
	defer server.Close()

	places, err := newTestClient(server.URL).QueryPlaces(context.Background())
	if err != nil {
		t.Fatalf("QueryPlaces() error = %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("QueryPlaces() returned %d places, want 2", len(places))
	}
	first := places[0]
	if first.Name != "東京タワー" || first.Category != "旅行" || first.Priority != "高" {
		t.Errorf("unexpected place: %+v", first)
	}
	if first.Address != "東京都港区芝公園4-2-8" {
		t.Errorf("address = %q", first.Address)
	}
	//プロパティ欠落はゼロ値に落ちる
	second := places[1]
	if second.Name != "" || second.Category != "" || !second.Visited {
		t.Errorf("unexpected place: %+v", second)
	}
}

func TestAddPlace(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pages" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		w.Write([]byte(`{"id":"new-page"}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL).AddPlace(context.Background(), Place{
		Name:     "叙々苑",
		Category: "飲食店",
		Priority: "中",
		Address:  "東京都新宿区",
	})
	if err != nil {
		t.Fatalf("AddPlace() error = %v", err)
	}
	props, ok := captured["properties"].(map[string]any)
	if !ok {
		t.Fatalf("no properties in payload: %v", captured)
	}
	for _, key := range []string{"名前", "カテゴリ", "優先度", "行った", "住所"} {
		if _, ok := props[key]; !ok {
			t.Errorf("property %s missing", key)
		}
	}
	//メモ未指定ならプロパティ自体を送らない
	if _, ok := props["メモ"]; ok {
		t.Errorf("empty memo should be omitted")
	}
}

func TestAddPlaceAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"validation_error"}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL).AddPlace(context.Background(), Place{Name: "x", Category: "その他", Priority: "中"})
	if err == nil {
		t.Fatal("AddPlace() should fail on 400")
	}
}

func TestNormalize(t *testing.T) {
	if got := NormalizeCategory("温泉"); got != "その他" {
		t.Errorf("NormalizeCategory(温泉) = %s", got)
	}
	if got := NormalizeCategory("旅行"); got != "旅行" {
		t.Errorf("NormalizeCategory(旅行) = %s", got)
	}
	if got := NormalizePriority(""); got != "中" {
		t.Errorf("NormalizePriority() = %s", got)
	}
	if got := NormalizePriority("高"); got != "高" {
		t.Errorf("NormalizePriority(高) = %s", got)
	}
}
