package service

import "log"

type ServerStats struct {
	GuestCount   int64 `json:"guest_count"`
	PhotoCount   int64 `json:"photo_count"`
	EventCount   int64 `json:"event_count"`
	LikeCount    int64 `json:"like_count"`
	StorageUsage int64 `json:"storage_usage"`
}

// AdminGetServerStats 获取后台仪表盘统计数据。
func (s *AppService) AdminGetServerStats() (*ServerStats, error) {
	guestCount, err := s.repos.Guest.CountAll()
	if err != nil {
		log.Printf("❌ 统计宾客数失败: %v", err)
		return nil, NewInternalError("统计数据加载失败")
	}

	photoCount, err := s.repos.Photo.CountAll()
	if err != nil {
		log.Printf("❌ 统计照片数失败: %v", err)
		return nil, NewInternalError("统计数据加载失败")
	}

	eventCount, err := s.repos.Event.CountAll()
	if err != nil {
		log.Printf("❌ 统计日程数失败: %v", err)
		return nil, NewInternalError("统计数据加载失败")
	}

	likeCount, err := s.repos.Photo.CountLikes()
	if err != nil {
		log.Printf("❌ 统计点赞数失败: %v", err)
		return nil, NewInternalError("统计数据加载失败")
	}

	storageUsage, err := s.repos.Photo.SumAllSize()
	if err != nil {
		log.Printf("❌ 统计存储用量失败: %v", err)
		return nil, NewInternalError("统计数据加载失败")
	}

	return &ServerStats{
		GuestCount:   guestCount,
		PhotoCount:   photoCount,
		EventCount:   eventCount,
		LikeCount:    likeCount,
		StorageUsage: storageUsage,
	}, nil
}
