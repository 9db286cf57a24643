package repository

import "forever-captured-server/internal/model"

type EventStore interface {
	Create(event *model.Event) error
	FindByID(id uint) (*model.Event, error)
	FindAll() ([]model.Event, error)
	Save(event *model.Event) error
	// DeleteByID 返回是否确有记录被删除
	DeleteByID(id uint) (bool, error)
	CountAll() (int64, error)
}
