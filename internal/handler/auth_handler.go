package handler

import (
	"net/http"

	"forever-captured-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	DisplayName   string `json:"display_name" binding:"required"`
	Password      string `json:"password" binding:"required"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

type loginRequest struct {
	DisplayName   string `json:"display_name" binding:"required"`
	Password      string `json:"password" binding:"required"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if err := h.appService.VerifyCaptcha(req.CaptchaID, req.CaptchaAnswer); err != nil {
		httpx.WriteServiceError(c, err, "验证码校验失败")
		return
	}

	guest, err := h.appService.Register(req.DisplayName, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	token, err := h.appService.IssueLoginToken(guest)
	if err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "注册成功",
		"token":        token,
		"id":           guest.ID,
		"display_name": guest.DisplayName,
		"admin":        guest.Admin,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	if err := h.appService.VerifyCaptcha(req.CaptchaID, req.CaptchaAnswer); err != nil {
		httpx.WriteServiceError(c, err, "验证码校验失败")
		return
	}

	token, guest, err := h.appService.Login(req.DisplayName, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "登录成功",
		"token":        token,
		"id":           guest.ID,
		"display_name": guest.DisplayName,
		"admin":        guest.Admin,
	})
}

func (h *Handler) GetCaptcha(c *gin.Context) {
	resp, err := h.appService.GenerateImageCaptcha()
	if err != nil {
		httpx.WriteServiceError(c, err, "生成验证码失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}
