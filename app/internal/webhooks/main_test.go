package webhooks

import (
	"testing"

	"github.com/mszlu521/thunder/config"
	"github.com/mszlu521/thunder/logs"
)

func TestMain(m *testing.M) {
	logs.Init(&config.LogConfig{})
	m.Run()
}
