package repository

import (
	"forever-captured-server/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func (r *EventRepository) Create(event *model.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepository) FindByID(id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindAll() ([]model.Event, error) {
	var events []model.Event
	if err := r.db.Order("id asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Save(event *model.Event) error {
	return r.db.Save(event).Error
}

func (r *EventRepository) DeleteByID(id uint) (bool, error) {
	result := r.db.Delete(&model.Event{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *EventRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Event{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
