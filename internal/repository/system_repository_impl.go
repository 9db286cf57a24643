package repository

import (
	"forever-captured-server/internal/consts"
	"forever-captured-server/internal/model"

	"gorm.io/gorm"
)

type SystemRepository struct {
	db *gorm.DB
}

func (r *SystemRepository) InitializeSystem(settingValues map[string]string, admin *model.Guest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 乐观锁抢占：只有把 allow_init 从 true 翻成 false 的事务才能继续
		claim := tx.Model(&model.Setting{}).
			Where("key = ? AND value = ?", consts.ConfigAllowInit, "true").
			Update("value", "false")
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return ErrSystemAlreadyInitialized
		}

		for key, value := range settingValues {
			if key == consts.ConfigAllowInit {
				continue
			}
			if err := tx.Model(&model.Setting{}).Where("key = ?", key).Update("value", value).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		return nil
	})
}
