package model

import "time"

// Event 婚礼日程条目，仅管理员可写
type Event struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string `json:"title" gorm:"not null;size:128"`
	Time        string `json:"time" gorm:"not null;size:64"` // 自由文本，如 "10:00 AM"
	Location    string `json:"location" gorm:"not null;size:128"`
	Description string `json:"description" gorm:"not null"`
	Icon        string `json:"icon" gorm:"not null;size:32"` // consts.EventIcons 之一
}
