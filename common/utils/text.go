package utils

import "strings"

// CleanSpaces 連続する空白を1つにまとめて前後をトリムする
func CleanSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateRunes 文字数（rune単位）で切り詰める
// LINEのテキストメッセージは最大5000文字
func TruncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
