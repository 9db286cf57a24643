package repository

import (
	"errors"

	"forever-captured-server/internal/model"
)

// ErrLikeRaced 并发点赞冲突，调用方可直接重试
var ErrLikeRaced = errors.New("photo like raced")

type PhotoStore interface {
	Create(photo *model.Photo) error
	FindByID(id uint) (*model.Photo, error)
	// FindByIDFull 加载照片及上传者、点赞宾客
	FindByIDFull(id uint) (*model.Photo, error)
	// ListAll 按上传时间倒序返回全部照片（含上传者与点赞宾客）
	ListAll() ([]model.Photo, error)
	// ToggleLike 单事务内翻转点赞状态并联动计数器
	ToggleLike(photoID uint, guestID uint) error
	// DeleteWithLikes 单事务内删除照片记录及其点赞行
	DeleteWithLikes(photoID uint) error
	CountAll() (int64, error)
	CountLikes() (int64, error)
	SumAllSize() (int64, error)
}
