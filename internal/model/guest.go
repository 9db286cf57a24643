package model

import (
	"time"

	"gorm.io/gorm"
)

type Guest struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	DisplayName string         `json:"display_name" gorm:"unique;not null;size:64"`
	Password    string         `json:"-" gorm:"not null"`
	Admin       bool           `json:"admin" gorm:"not null"`
	Status      int            `json:"status" gorm:"default:1"` // 1: 正常, 2: 封禁
	Avatar      string         `json:"avatar"`                  // 头像对象 Key，空表示未设置
	Photos      []Photo        `json:"-"`
}
