package service

import (
	"errors"

	"forever-captured-server/internal/consts"
	"forever-captured-server/internal/model"
	"forever-captured-server/internal/repository"
	"forever-captured-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type InitPayload struct {
	DisplayName     string
	Password        string
	SiteName        string
	SiteDescription string
}

// IsSystemInitialized 返回系统是否已完成初始化。
func (s *AppService) IsSystemInitialized() bool {
	return !s.GetBool(consts.ConfigAllowInit)
}

// InitializeSystem 执行系统初始化：写入站点设置并创建首个管理员账号。
// 依赖 allow_init 的乐观锁抢占，重复调用返回冲突错误。
func (s *AppService) InitializeSystem(payload InitPayload) error {
	if ok, msg := utils.ValidateDisplayName(payload.DisplayName); !ok {
		return NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(payload.Password); !ok {
		return NewValidationError(msg)
	}

	passwordHashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	settingsToUpdate := map[string]string{
		consts.ConfigSiteName:        payload.SiteName,
		consts.ConfigSiteDescription: payload.SiteDescription,
		consts.ConfigAllowInit:       "false",
	}
	admin := model.Guest{
		DisplayName: payload.DisplayName,
		Password:    string(passwordHashed),
		Admin:       true,
		Status:      1,
	}

	if err := s.repos.System.InitializeSystem(settingsToUpdate, &admin); err != nil {
		if errors.Is(err, repository.ErrSystemAlreadyInitialized) {
			return NewConflictError("系统已完成初始化")
		}
		return err
	}

	s.ClearCache()
	return nil
}
