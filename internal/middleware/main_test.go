package middleware

import (
	"os"
	"testing"

	"forever-captured-server/internal/config"
	"forever-captured-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	tmpDir, err := os.MkdirTemp("", "forever-captured-config-*")
	if err != nil {
		panic(err)
	}

	envs := []testutils.SavedEnv{
		testutils.SetEnv("FOREVER_CAPTURED_SERVER_MODE", "debug"),
		testutils.SetEnv("FOREVER_CAPTURED_JWT_SECRET", "test_secret"),
		testutils.SetEnv("FOREVER_CAPTURED_REDIS_ENABLED", "false"),
	}
	config.InitConfigWithoutWatch(tmpDir)

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}
