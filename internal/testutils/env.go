package testutils

import "os"

// SavedEnv 记录某个环境变量被覆盖前的状态，用于测试结束后还原。
// 配置层以 FOREVER_CAPTURED_ 前缀读取环境变量，测试覆盖后必须恢复现场。
type SavedEnv struct {
	Key   string
	Had   bool
	Value string
}

// SetEnv 覆盖环境变量并返回其先前状态。
func SetEnv(key, value string) SavedEnv {
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{Key: key, Had: had, Value: prev}
}

// RestoreEnv 按保存的状态还原环境变量；之前不存在的键会被删除。
func RestoreEnv(envs []SavedEnv) {
	for _, env := range envs {
		if env.Had {
			_ = os.Setenv(env.Key, env.Value)
		} else {
			_ = os.Unsetenv(env.Key)
		}
	}
}
