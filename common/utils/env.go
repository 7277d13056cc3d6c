package utils

import (
	"fmt"
	"os"
	"strings"
)

// RequireEnv 必須環境変数をまとめて取得する
// 1つでも未設定なら不足しているキーを列挙したエラーを返す
func RequireEnv(keys ...string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	var missing []string
	for _, key := range keys {
		v := os.Getenv(key)
		if v == "" {
			missing = append(missing, key)
			continue
		}
		values[key] = v
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are missing: %s", strings.Join(missing, ", "))
	}
	return values, nil
}

// EnvOrDefault 未設定時はデフォルト値を返す
func EnvOrDefault(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
