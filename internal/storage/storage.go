package storage

import (
	"io"
	"log"

	"forever-captured-server/internal/config"
)

// ImageStore 图片对象存储抽象
// 照片字节与元数据记录分离：Save/Delete 只负责对象本身
type ImageStore interface {
	// Save 写入对象，key 为相对存储路径
	Save(key string, reader io.Reader, mimeType string) error
	// Delete 删除对象；对象不存在视为成功
	Delete(key string) error
	// PublicURL 返回对象的公开访问地址
	PublicURL(key string) string
	// Backend 返回后端名称 (disk/s3)
	Backend() string
}

var (
	photoStore  ImageStore
	avatarStore ImageStore
)

// Init 根据配置初始化照片与头像存储
func Init() {
	cfg := config.Get()

	switch cfg.Storage.Backend {
	case "s3":
		client := newS3Client(cfg.Storage)
		photoStore = newS3Store(client, cfg.Storage, "photos/")
		avatarStore = newS3Store(client, cfg.Storage, "avatars/")
		log.Printf("✅ 图片存储已就绪: s3 (bucket=%s)", cfg.Storage.S3Bucket)
	case "disk":
		fallthrough
	default:
		photoStore = newDiskStore(cfg.Upload.Path, cfg.Upload.URLPrefix)
		avatarStore = newDiskStore(cfg.Upload.AvatarPath, cfg.Upload.AvatarURLPrefix)
		log.Printf("✅ 图片存储已就绪: disk (path=%s)", cfg.Upload.Path)
	}
}

// Photos 照片存储
func Photos() ImageStore {
	return photoStore
}

// Avatars 头像存储
func Avatars() ImageStore {
	return avatarStore
}

// SetStoresForTest 测试替换存储实例
func SetStoresForTest(photos, avatars ImageStore) {
	photoStore = photos
	avatarStore = avatars
}
