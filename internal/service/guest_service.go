package service

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"forever-captured-server/internal/config"
	"forever-captured-server/internal/model"
	"forever-captured-server/internal/storage"
	"forever-captured-server/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestProfile struct {
	ID          uint   `json:"id"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	Admin       bool   `json:"admin"`
	Status      int    `json:"status"`
}

// GetGuestProfile 获取宾客个人资料。
func (s *AppService) GetGuestProfile(guestID uint) (*GuestProfile, error) {
	guest, err := s.repos.Guest.FindByID(guestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("账号不存在")
		}
		return nil, err
	}
	return toGuestProfile(guest), nil
}

// UpdateDisplayNameAndGenerateToken 更新昵称并签发新登录令牌。
// 昵称变更后旧令牌中的昵称失真，返回新令牌由客户端替换。
func (s *AppService) UpdateDisplayNameAndGenerateToken(guestID uint, newDisplayName string, isAdmin bool) (string, error) {
	if ok, msg := utils.ValidateDisplayName(newDisplayName); !ok {
		return "", NewValidationError(msg)
	}

	excludeID := guestID
	taken, err := s.repos.Guest.IsDisplayNameTaken(newDisplayName, &excludeID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", NewConflictError("该昵称已被使用")
	}

	if err := s.repos.Guest.UpdateDisplayNameByID(guestID, newDisplayName); err != nil {
		log.Printf("❌ 更新昵称失败 (guest=%d): %v", guestID, err)
		return "", NewInternalError("昵称修改失败")
	}

	cfg := config.Get()
	token, err := utils.GenerateLoginToken(guestID, newDisplayName, isAdmin, time.Hour*time.Duration(cfg.JWT.ExpirationHours))
	if err != nil {
		return "", NewInternalError("令牌签发失败")
	}
	return token, nil
}

// UploadAvatar 上传并替换头像，返回新头像的公开地址。
// 元数据更新失败时回收刚写入的对象；替换成功后清理旧对象。
func (s *AppService) UploadAvatar(guestID uint, file *multipart.FileHeader) (string, error) {
	ext, err := s.validatePhotoFile(file)
	if err != nil {
		return "", err
	}

	guest, err := s.repos.Guest.FindByID(guestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", NewNotFoundError("账号不存在")
		}
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", NewValidationError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	objectKey := fmt.Sprintf("%d/%s%s", guestID, uuid.New().String(), ext)
	store := storage.Avatars()
	if err := store.Save(objectKey, src, mimeTypeForExt(ext)); err != nil {
		log.Printf("❌ 头像写入存储失败 (backend=%s): %v", store.Backend(), err)
		return "", NewInternalError("头像保存失败")
	}

	oldKey := guest.Avatar
	if err := s.repos.Guest.UpdateAvatar(guest, objectKey); err != nil {
		if delErr := store.Delete(objectKey); delErr != nil {
			log.Printf("⚠️ 补偿删除头像失败 (key=%s): %v", objectKey, delErr)
		}
		log.Printf("❌ 更新头像记录失败 (guest=%d): %v", guestID, err)
		return "", NewInternalError("头像保存失败")
	}

	if oldKey != "" {
		if err := store.Delete(oldKey); err != nil {
			log.Printf("⚠️ 清理旧头像失败 (key=%s): %v", oldKey, err)
		}
	}

	return store.PublicURL(objectKey), nil
}

// RemoveAvatar 移除头像。先删存储对象，失败则保留记录。
func (s *AppService) RemoveAvatar(guestID uint) error {
	guest, err := s.repos.Guest.FindByID(guestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("账号不存在")
		}
		return err
	}
	if guest.Avatar == "" {
		return nil
	}

	if err := storage.Avatars().Delete(guest.Avatar); err != nil {
		log.Printf("❌ 删除头像对象失败 (key=%s): %v", guest.Avatar, err)
		return NewInternalError("头像删除失败，请稍后重试")
	}

	if err := s.repos.Guest.ClearAvatar(guest); err != nil {
		log.Printf("❌ 清除头像记录失败 (guest=%d): %v", guestID, err)
		return NewInternalError("头像删除失败")
	}
	return nil
}

type AdminGuestItem struct {
	ID          uint   `json:"id"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	Admin       bool   `json:"admin"`
	Status      int    `json:"status"`
}

type AdminGuestList struct {
	Guests []AdminGuestItem `json:"guests"`
	Total  int64            `json:"total"`
}

// AdminListGuests 管理端宾客列表，支持昵称关键字过滤与分页。
func (s *AppService) AdminListGuests(keyword string, page, pageSize int) (*AdminGuestList, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	guests, total, err := s.repos.Guest.AdminListGuests(strings.TrimSpace(keyword), (page-1)*pageSize, pageSize)
	if err != nil {
		log.Printf("❌ 查询宾客列表失败: %v", err)
		return nil, NewInternalError("宾客列表加载失败")
	}

	items := make([]AdminGuestItem, 0, len(guests))
	for i := range guests {
		items = append(items, AdminGuestItem{
			ID:          guests[i].ID,
			DisplayName: guests[i].DisplayName,
			Avatar:      guestAvatarURL(&guests[i]),
			Admin:       guests[i].Admin,
			Status:      guests[i].Status,
		})
	}
	return &AdminGuestList{Guests: items, Total: total}, nil
}

// AdminUpdateGuestStatus 封禁/解封宾客账号。管理员不能操作自己的状态。
func (s *AppService) AdminUpdateGuestStatus(actorID, guestID uint, status int) error {
	if status != 1 && status != 2 {
		return NewValidationError("无效的账号状态")
	}
	if actorID == guestID {
		return NewValidationError("不能修改自己的账号状态")
	}

	guest, err := s.repos.Guest.FindByID(guestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("账号不存在")
		}
		return err
	}

	if guest.Status == status {
		return nil
	}
	if err := s.repos.Guest.UpdateStatusByID(guestID, status); err != nil {
		log.Printf("❌ 更新账号状态失败 (guest=%d): %v", guestID, err)
		return NewInternalError("账号状态更新失败")
	}
	return nil
}

func toGuestProfile(guest *model.Guest) *GuestProfile {
	return &GuestProfile{
		ID:          guest.ID,
		DisplayName: guest.DisplayName,
		Avatar:      guestAvatarURL(guest),
		Admin:       guest.Admin,
		Status:      guest.Status,
	}
}
