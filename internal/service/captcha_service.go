package service

import (
	"forever-captured-server/internal/consts"
	"forever-captured-server/internal/utils"
)

type CaptchaResponse struct {
	Enabled bool   `json:"enabled"`
	ID      string `json:"id,omitempty"`
	Image   string `json:"image,omitempty"`
}

// GenerateImageCaptcha 生成图形验证码；未开启时只返回开关状态。
func (s *AppService) GenerateImageCaptcha() (*CaptchaResponse, error) {
	if !s.GetBool(consts.ConfigCaptchaEnabled) {
		return &CaptchaResponse{Enabled: false}, nil
	}

	id, b64s, _, err := utils.MakeCaptcha()
	if err != nil {
		return nil, NewInternalError("生成验证码失败")
	}

	return &CaptchaResponse{Enabled: true, ID: id, Image: b64s}, nil
}
