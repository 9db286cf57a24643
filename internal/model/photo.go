package model

import "time"

type Photo struct {
	ID uint `json:"id" gorm:"primaryKey"`
	// URL 照片的公开访问地址，创建后不可变
	URL string `json:"url" gorm:"not null"`
	// ObjectKey 图片存储中的对象 Key；外部直传的照片为空，删除时跳过外部清理
	ObjectKey  string      `json:"-" gorm:"index"`
	Size       int64       `json:"size"`
	MimeType   string      `json:"mime_type"`
	EventTag   string      `json:"event_tag" gorm:"size:32;index"`
	LikeCount  int64       `json:"likes" gorm:"not null;default:0"`
	UploadedAt int64       `json:"uploaded_at" gorm:"not null;index"`
	GuestID    uint        `json:"guest_id" gorm:"not null;index"`
	Guest      Guest       `gorm:"foreignKey:GuestID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	LikedBy    []PhotoLike `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE;" json:"-"`
}

// PhotoLike 点赞关系，(photo_id, guest_id) 唯一索引保证同一宾客至多点赞一次
// Photo.LikeCount 与本表行数在同一事务内联动，保持 likes == |likedBy|
type PhotoLike struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	PhotoID   uint  `gorm:"not null;uniqueIndex:idx_photo_like_once"`
	GuestID   uint  `gorm:"not null;uniqueIndex:idx_photo_like_once"`
	Guest     Guest `gorm:"foreignKey:GuestID;references:ID;constraint:OnDelete:CASCADE;"`
}
