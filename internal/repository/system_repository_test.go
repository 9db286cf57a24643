package repository

import (
	"errors"
	"testing"

	"forever-captured-server/internal/consts"
	"forever-captured-server/internal/model"
	"forever-captured-server/internal/testutils"
)

// 测试内容：验证系统初始化的乐观锁抢占只成功一次。
func TestInitializeSystem_ClaimOnce(t *testing.T) {
	gdb := testutils.SetupDB(t)
	repo := NewSystemRepository(gdb)

	seeds := []model.Setting{
		{Key: consts.ConfigAllowInit, Value: "true", Desc: "是否允许初始化管理员账号"},
		{Key: consts.ConfigSiteName, Value: "Forever Captured", Desc: "网站名称"},
	}
	for i := range seeds {
		if err := gdb.Create(&seeds[i]).Error; err != nil {
			t.Fatalf("预置设置失败: %v", err)
		}
	}

	admin := &model.Guest{DisplayName: "Admin", Password: "hashed", Admin: true, Status: 1}
	err := repo.InitializeSystem(map[string]string{
		consts.ConfigSiteName:  "Priya & Rahul",
		consts.ConfigAllowInit: "false",
	}, admin)
	if err != nil {
		t.Fatalf("InitializeSystem: %v", err)
	}

	var siteName model.Setting
	if err := gdb.Where("key = ?", consts.ConfigSiteName).First(&siteName).Error; err != nil {
		t.Fatalf("加载站点名失败: %v", err)
	}
	if siteName.Value != "Priya & Rahul" {
		t.Fatalf("期望站点名被更新，实际为 %q", siteName.Value)
	}

	second := &model.Guest{DisplayName: "Admin2", Password: "hashed", Admin: true, Status: 1}
	err = repo.InitializeSystem(map[string]string{}, second)
	if !errors.Is(err, ErrSystemAlreadyInitialized) {
		t.Fatalf("期望 ErrSystemAlreadyInitialized，实际为 %v", err)
	}

	var adminCount int64
	if err := gdb.Model(&model.Guest{}).Count(&adminCount).Error; err != nil {
		t.Fatalf("统计账号失败: %v", err)
	}
	if adminCount != 1 {
		t.Fatalf("期望只创建 1 个账号，实际为 %d", adminCount)
	}
}
