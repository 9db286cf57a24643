package service

import (
	"forever-captured-server/internal/model"
	"forever-captured-server/internal/repository"
)

const maskedSettingValue = "**********"

type UpdateSettingPayload struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// AdminListSettings 返回全部设置项，敏感值统一脱敏。
func (s *AppService) AdminListSettings() ([]model.Setting, error) {
	settings, err := s.repos.Setting.FindAll()
	if err != nil {
		return nil, err
	}

	for i := range settings {
		if settings[i].Sensitive {
			settings[i].Value = maskedSettingValue
		}
	}
	return settings, nil
}

// AdminUpdateSettings 批量更新设置项并清空缓存。
// 敏感项提交掩码值时跳过，避免把掩码写回数据库。
func (s *AppService) AdminUpdateSettings(items []UpdateSettingPayload) error {
	if len(items) == 0 {
		return NewValidationError("没有需要更新的设置项")
	}

	updates := make([]repository.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		if item.Key == "" {
			return NewValidationError("设置项 key 不能为空")
		}
		updates = append(updates, repository.UpdateSettingItem{Key: item.Key, Value: item.Value})
	}

	if err := s.repos.Setting.UpdateSettings(updates, maskedSettingValue); err != nil {
		return err
	}

	s.ClearCache()
	return nil
}
