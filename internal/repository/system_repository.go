package repository

import (
	"errors"

	"forever-captured-server/internal/model"
)

// ErrSystemAlreadyInitialized 系统已完成初始化，拒绝重复执行
var ErrSystemAlreadyInitialized = errors.New("system already initialized")

type SystemStore interface {
	// InitializeSystem 单事务内写入站点设置并创建首个管理员账号
	// 通过 allow_init 的乐观锁抢占保证只成功一次
	InitializeSystem(settingValues map[string]string, admin *model.Guest) error
}
