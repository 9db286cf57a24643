package service

import (
	"errors"
	"log"
	"time"

	"forever-captured-server/internal/config"
	"forever-captured-server/internal/consts"
	"forever-captured-server/internal/model"
	"forever-captured-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// VerifyCaptcha 在开启图形验证码时校验答案，未开启时直接放行。
func (s *AppService) VerifyCaptcha(captchaID, captchaAnswer string) error {
	if !s.GetBool(consts.ConfigCaptchaEnabled) {
		return nil
	}

	if captchaID == "" || captchaAnswer == "" {
		return NewValidationError("验证码不能为空")
	}
	if !utils.VerifyCaptcha(captchaID, captchaAnswer) {
		return NewValidationError("验证码错误或已过期")
	}
	return nil
}

// Register 注册新宾客账号。
func (s *AppService) Register(displayName, password string) (*model.Guest, error) {
	if !s.GetBool(consts.ConfigAllowRegister) {
		return nil, NewForbiddenError("当前未开放注册")
	}

	if ok, msg := utils.ValidateDisplayName(displayName); !ok {
		return nil, NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, NewValidationError(msg)
	}

	taken, err := s.repos.Guest.IsDisplayNameTaken(displayName, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewConflictError("该昵称已被使用")
	}

	passwordHashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	guest := model.Guest{
		DisplayName: displayName,
		Password:    string(passwordHashed),
		Admin:       false,
		Status:      1,
	}
	if err := s.repos.Guest.Create(&guest); err != nil {
		log.Printf("❌ 创建宾客账号失败: %v", err)
		return nil, NewInternalError("注册失败，请稍后重试")
	}

	return &guest, nil
}

// Login 校验昵称与密码，成功后签发登录令牌。
// 失败时统一返回相同提示，避免暴露账号是否存在。
func (s *AppService) Login(displayName, password string) (string, *model.Guest, error) {
	guest, err := s.repos.Guest.FindByDisplayName(displayName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, NewUnauthorizedError("昵称或密码错误")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(guest.Password), []byte(password)); err != nil {
		return "", nil, NewUnauthorizedError("昵称或密码错误")
	}

	token, err := s.IssueLoginToken(guest)
	if err != nil {
		return "", nil, err
	}
	return token, guest, nil
}

// IssueLoginToken 为指定宾客签发登录令牌，封禁账号拒绝签发。
func (s *AppService) IssueLoginToken(guest *model.Guest) (string, error) {
	if guest.Status == 2 {
		return "", NewForbiddenError("该账号已被封禁")
	}

	cfg := config.Get()
	token, err := utils.GenerateLoginToken(guest.ID, guest.DisplayName, guest.Admin, time.Hour*time.Duration(cfg.JWT.ExpirationHours))
	if err != nil {
		return "", NewInternalError("登录失败，请稍后重试")
	}
	return token, nil
}
