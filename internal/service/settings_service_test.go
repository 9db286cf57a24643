package service

import (
	"testing"

	"forever-captured-server/internal/consts"
	"forever-captured-server/internal/db"
	"forever-captured-server/internal/model"
)

// 测试内容：验证 InitializeSettings 补齐全部默认设置项。
func TestInitializeSettings_SeedsDefaults(t *testing.T) {
	env := setupTestService(t)

	if err := env.svc.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}

	var count int64
	if err := db.DB.Model(&model.Setting{}).Count(&count).Error; err != nil {
		t.Fatalf("统计设置项失败: %v", err)
	}
	if count != int64(len(DefaultSettings)) {
		t.Fatalf("期望 %d 个默认设置项，实际为 %d", len(DefaultSettings), count)
	}

	// 重复执行不应覆盖已有值
	if err := db.DB.Model(&model.Setting{}).Where("key = ?", consts.ConfigSiteName).
		Update("value", "Custom Name").Error; err != nil {
		t.Fatalf("修改设置失败: %v", err)
	}
	if err := env.svc.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings(第二次): %v", err)
	}
	env.svc.ClearCache()
	if got := env.svc.GetString(consts.ConfigSiteName); got != "Custom Name" {
		t.Fatalf("期望已有值不被覆盖，实际为 %q", got)
	}
}

// 测试内容：验证 GetString 的缓存行为与未知键的 NotFound 标记。
func TestGetString_Caching(t *testing.T) {
	env := setupTestService(t)

	// 未入库的键回退到默认值并落库
	if got := env.svc.GetString(consts.ConfigSiteName); got != "Forever Captured" {
		t.Fatalf("期望默认站点名，实际为 %q", got)
	}
	var setting model.Setting
	if err := db.DB.Where("key = ?", consts.ConfigSiteName).First(&setting).Error; err != nil {
		t.Fatalf("期望默认值已落库: %v", err)
	}

	// 数据库直接改值后命中缓存，清缓存才能读到新值
	if err := db.DB.Model(&model.Setting{}).Where("key = ?", consts.ConfigSiteName).
		Update("value", "Renamed").Error; err != nil {
		t.Fatalf("修改设置失败: %v", err)
	}
	if got := env.svc.GetString(consts.ConfigSiteName); got != "Forever Captured" {
		t.Fatalf("期望命中缓存旧值，实际为 %q", got)
	}
	env.svc.ClearCache()
	if got := env.svc.GetString(consts.ConfigSiteName); got != "Renamed" {
		t.Fatalf("期望缓存清空后读到新值，实际为 %q", got)
	}

	// 未知键返回空串且不落库
	if got := env.svc.GetString("no_such_key"); got != "" {
		t.Fatalf("期望未知键返回空串，实际为 %q", got)
	}
	var missCount int64
	_ = db.DB.Model(&model.Setting{}).Where("key = ?", "no_such_key").Count(&missCount).Error
	if missCount != 0 {
		t.Fatalf("期望未知键不落库，实际为 %d", missCount)
	}
}

// 测试内容：验证各类型 getter 的解析与非法值兜底。
func TestSettingGetters(t *testing.T) {
	env := setupTestService(t)

	if got := env.svc.GetInt(consts.ConfigMaxUploadSize); got != 10 {
		t.Fatalf("期望 10，实际为 %d", got)
	}
	if got := env.svc.GetFloat64(consts.ConfigRateLimitAuthRPS); got != 0.5 {
		t.Fatalf("期望 0.5，实际为 %v", got)
	}
	if !env.svc.GetBool(consts.ConfigAllowRegister) {
		t.Fatalf("期望 allow_register 默认为 true")
	}

	if err := env.svc.AdminUpdateSettings([]UpdateSettingPayload{
		{Key: consts.ConfigMaxUploadSize, Value: "not-a-number"},
	}); err != nil {
		t.Fatalf("AdminUpdateSettings: %v", err)
	}
	if got := env.svc.GetInt(consts.ConfigMaxUploadSize); got != 0 {
		t.Fatalf("期望非法数字兜底为 0，实际为 %d", got)
	}
}

// 测试内容：验证管理端设置列表对敏感项脱敏。
func TestAdminListSettings_MasksSensitive(t *testing.T) {
	env := setupTestService(t)

	secret := model.Setting{Key: "storage_s3_secret_key", Value: "super-secret", Desc: "S3 密钥", Sensitive: true}
	if err := db.DB.Create(&secret).Error; err != nil {
		t.Fatalf("创建敏感设置失败: %v", err)
	}
	plain := model.Setting{Key: consts.ConfigSiteName, Value: "Forever Captured", Desc: "网站名称"}
	if err := db.DB.Create(&plain).Error; err != nil {
		t.Fatalf("创建普通设置失败: %v", err)
	}

	settings, err := env.svc.AdminListSettings()
	if err != nil {
		t.Fatalf("AdminListSettings: %v", err)
	}
	for _, s := range settings {
		switch s.Key {
		case "storage_s3_secret_key":
			if s.Value != maskedSettingValue {
				t.Fatalf("期望敏感值脱敏，实际为 %q", s.Value)
			}
		case consts.ConfigSiteName:
			if s.Value != "Forever Captured" {
				t.Fatalf("期望普通值原样返回，实际为 %q", s.Value)
			}
		}
	}
}

// 测试内容：验证批量更新设置会清空缓存并跳过掩码值。
func TestAdminUpdateSettings(t *testing.T) {
	env := setupTestService(t)

	if err := env.svc.AdminUpdateSettings(nil); err == nil {
		t.Fatalf("期望空更新被拒绝")
	}
	if err := env.svc.AdminUpdateSettings([]UpdateSettingPayload{{Key: "", Value: "x"}}); err == nil {
		t.Fatalf("期望空 key 被拒绝")
	}

	// 先读一次把默认值写入缓存
	if got := env.svc.GetString(consts.ConfigSiteName); got != "Forever Captured" {
		t.Fatalf("期望默认站点名，实际为 %q", got)
	}

	if err := env.svc.AdminUpdateSettings([]UpdateSettingPayload{
		{Key: consts.ConfigSiteName, Value: "Priya & Rahul"},
	}); err != nil {
		t.Fatalf("AdminUpdateSettings: %v", err)
	}
	if got := env.svc.GetString(consts.ConfigSiteName); got != "Priya & Rahul" {
		t.Fatalf("期望更新后缓存失效读到新值，实际为 %q", got)
	}

	// 敏感项提交掩码值时保持原值
	secret := model.Setting{Key: "storage_s3_secret_key", Value: "super-secret", Desc: "S3 密钥", Sensitive: true}
	if err := db.DB.Create(&secret).Error; err != nil {
		t.Fatalf("创建敏感设置失败: %v", err)
	}
	if err := env.svc.AdminUpdateSettings([]UpdateSettingPayload{
		{Key: "storage_s3_secret_key", Value: maskedSettingValue},
	}); err != nil {
		t.Fatalf("AdminUpdateSettings(掩码): %v", err)
	}
	var reloaded model.Setting
	if err := db.DB.Where("key = ?", "storage_s3_secret_key").First(&reloaded).Error; err != nil {
		t.Fatalf("加载设置失败: %v", err)
	}
	if reloaded.Value != "super-secret" {
		t.Fatalf("期望掩码提交被跳过，实际为 %q", reloaded.Value)
	}
}
