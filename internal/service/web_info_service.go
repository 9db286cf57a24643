package service

import "forever-captured-server/internal/consts"

type WebInfo struct {
	SiteName        string `json:"site_name"`
	SiteDescription string `json:"site_description"`
	SiteLogo        string `json:"site_logo"`
	AllowRegister   bool   `json:"allow_register"`
	CaptchaEnabled  bool   `json:"captcha_enabled"`
	Initialized     bool   `json:"initialized"`
}

// GetWebInfo 返回前端启动所需的站点公开信息。
func (s *AppService) GetWebInfo() WebInfo {
	return WebInfo{
		SiteName:        s.GetString(consts.ConfigSiteName),
		SiteDescription: s.GetString(consts.ConfigSiteDescription),
		SiteLogo:        s.GetString(consts.ConfigSiteLogo),
		AllowRegister:   s.GetBool(consts.ConfigAllowRegister),
		CaptchaEnabled:  s.GetBool(consts.ConfigCaptchaEnabled),
		Initialized:     s.IsSystemInitialized(),
	}
}
