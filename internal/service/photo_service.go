package service

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"forever-captured-server/internal/consts"
	"forever-captured-server/internal/model"
	"forever-captured-server/internal/repository"
	"forever-captured-server/internal/storage"
	"forever-captured-server/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhotoResponse struct {
	ID             uint     `json:"id"`
	URL            string   `json:"url"`
	Size           int64    `json:"size,omitempty"`
	MimeType       string   `json:"mime_type,omitempty"`
	EventTag       string   `json:"event_tag,omitempty"`
	Likes          int64    `json:"likes"`
	LikedBy        []string `json:"liked_by"`
	LikedByMe      bool     `json:"liked_by_me"`
	UploadedAt     int64    `json:"uploaded_at"`
	Uploader       string   `json:"uploader"`
	UploaderAvatar string   `json:"uploader_avatar,omitempty"`
	Mine           bool     `json:"mine"`
}

// ListPhotos 返回全部照片，按上传时间倒序。
func (s *AppService) ListPhotos(viewerID uint) ([]PhotoResponse, error) {
	photos, err := s.repos.Photo.ListAll()
	if err != nil {
		log.Printf("❌ 查询照片列表失败: %v", err)
		return nil, NewInternalError("照片列表加载失败")
	}

	responses := make([]PhotoResponse, 0, len(photos))
	for i := range photos {
		responses = append(responses, toPhotoResponse(&photos[i], viewerID))
	}
	return responses, nil
}

// CreatePhoto 登记一张外部直传的照片（仅元数据，object_key 为空）。
// 上传者取自已验证的会话身份。
func (s *AppService) CreatePhoto(guestID uint, photoURL, eventTag string) (*PhotoResponse, error) {
	photoURL = strings.TrimSpace(photoURL)
	if photoURL == "" {
		return nil, NewValidationError("照片地址不能为空")
	}
	parsed, err := url.Parse(photoURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, NewValidationError("照片地址必须是 http(s) 链接")
	}
	if !consts.IsValidEventTag(eventTag) {
		return nil, NewValidationError("未知的仪式标签: " + eventTag)
	}

	photo := model.Photo{
		URL:        photoURL,
		EventTag:   eventTag,
		GuestID:    guestID,
		UploadedAt: time.Now().Unix(),
	}
	if err := s.repos.Photo.Create(&photo); err != nil {
		log.Printf("❌ 创建照片记录失败: %v", err)
		return nil, NewInternalError("照片保存失败")
	}

	return s.photoResponseByID(photo.ID, guestID)
}

// UploadPhoto 两阶段上传：先写入图片存储，再写元数据记录。
// 元数据写入失败时删除刚存储的对象，不留孤儿文件。
func (s *AppService) UploadPhoto(guestID uint, file *multipart.FileHeader, eventTag string) (*PhotoResponse, error) {
	if !consts.IsValidEventTag(eventTag) {
		return nil, NewValidationError("未知的仪式标签: " + eventTag)
	}

	ext, err := s.validatePhotoFile(file)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, NewValidationError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	now := time.Now()
	objectKey := fmt.Sprintf("%s/%s%s", now.Format("2006/01/02"), uuid.New().String(), ext)
	mimeType := mimeTypeForExt(ext)

	store := storage.Photos()
	if err := store.Save(objectKey, src, mimeType); err != nil {
		log.Printf("❌ 照片写入存储失败 (backend=%s): %v", store.Backend(), err)
		return nil, NewInternalError("照片保存失败")
	}

	photo := model.Photo{
		URL:        store.PublicURL(objectKey),
		ObjectKey:  objectKey,
		Size:       file.Size,
		MimeType:   mimeType,
		EventTag:   eventTag,
		GuestID:    guestID,
		UploadedAt: now.Unix(),
	}
	if err := s.repos.Photo.Create(&photo); err != nil {
		// 补偿：回收已写入的对象
		if delErr := store.Delete(objectKey); delErr != nil {
			log.Printf("⚠️ 补偿删除对象失败 (key=%s): %v", objectKey, delErr)
		}
		log.Printf("❌ 创建照片记录失败: %v", err)
		return nil, NewInternalError("照片保存失败")
	}

	return s.photoResponseByID(photo.ID, guestID)
}

// ToggleLike 翻转点赞状态，返回更新后的照片。
func (s *AppService) ToggleLike(photoID uint, guestID uint) (*PhotoResponse, error) {
	err := s.repos.Photo.ToggleLike(photoID, guestID)
	if errors.Is(err, repository.ErrLikeRaced) {
		// 并发翻转撞上唯一索引，重试一次即可收敛
		err = s.repos.Photo.ToggleLike(photoID, guestID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("照片不存在")
		}
		if errors.Is(err, repository.ErrLikeRaced) {
			return nil, NewConflictError("操作冲突，请重试")
		}
		log.Printf("❌ 点赞操作失败 (photo=%d): %v", photoID, err)
		return nil, NewInternalError("点赞操作失败")
	}

	return s.photoResponseByID(photoID, guestID)
}

// DeletePhoto 删除照片，仅上传者本人或管理员可执行。
// 先删外部存储对象，失败则中止并保留记录；object_key 为空的外链照片跳过外部清理。
func (s *AppService) DeletePhoto(photoID uint, actorID uint, actorAdmin bool) error {
	photo, err := s.repos.Photo.FindByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("照片不存在")
		}
		return err
	}

	if photo.GuestID != actorID && !actorAdmin {
		return NewForbiddenError("只能删除自己上传的照片")
	}

	if photo.ObjectKey != "" {
		if err := storage.Photos().Delete(photo.ObjectKey); err != nil {
			log.Printf("❌ 删除存储对象失败 (key=%s): %v", photo.ObjectKey, err)
			return NewInternalError("照片文件删除失败，请稍后重试")
		}
	}

	if err := s.repos.Photo.DeleteWithLikes(photoID); err != nil {
		log.Printf("❌ 删除照片记录失败 (photo=%d): %v", photoID, err)
		return NewInternalError("照片删除失败")
	}
	return nil
}

// validatePhotoFile 校验上传文件的大小、扩展名与真实内容。
// 返回小写扩展名 (如 .jpg)。
func (s *AppService) validatePhotoFile(file *multipart.FileHeader) (string, error) {
	maxSizeMB := s.GetInt(consts.ConfigMaxUploadSize)
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return "", NewValidationError(fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return "", NewValidationError("无法识别文件类型")
	}

	allowed := false
	for _, allowExt := range strings.Split(s.GetString(consts.ConfigAllowFileExtensions), ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", NewValidationError("不支持的文件类型: " + ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", NewValidationError("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateImageContent(src, ext); !valid {
		return "", NewValidationError(msg)
	}

	return ext, nil
}

func (s *AppService) photoResponseByID(photoID uint, viewerID uint) (*PhotoResponse, error) {
	photo, err := s.repos.Photo.FindByIDFull(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("照片不存在")
		}
		return nil, err
	}
	resp := toPhotoResponse(photo, viewerID)
	return &resp, nil
}

func toPhotoResponse(photo *model.Photo, viewerID uint) PhotoResponse {
	likedBy := make([]string, 0, len(photo.LikedBy))
	likedByMe := false
	for _, like := range photo.LikedBy {
		likedBy = append(likedBy, like.Guest.DisplayName)
		if like.GuestID == viewerID {
			likedByMe = true
		}
	}

	return PhotoResponse{
		ID:             photo.ID,
		URL:            photo.URL,
		Size:           photo.Size,
		MimeType:       photo.MimeType,
		EventTag:       photo.EventTag,
		Likes:          photo.LikeCount,
		LikedBy:        likedBy,
		LikedByMe:      likedByMe,
		UploadedAt:     photo.UploadedAt,
		Uploader:       photo.Guest.DisplayName,
		UploaderAvatar: guestAvatarURL(&photo.Guest),
		Mine:           photo.GuestID == viewerID,
	}
}

func guestAvatarURL(guest *model.Guest) string {
	if guest.Avatar == "" {
		return ""
	}
	return storage.Avatars().PublicURL(guest.Avatar)
}

func mimeTypeForExt(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
