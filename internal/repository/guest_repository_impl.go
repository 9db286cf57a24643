package repository

import (
	"forever-captured-server/internal/model"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func (r *GuestRepository) FindByID(id uint) (*model.Guest, error) {
	var guest model.Guest
	if err := r.db.First(&guest, id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) FindByDisplayName(displayName string) (*model.Guest, error) {
	var guest model.Guest
	if err := r.db.Where("display_name = ?", displayName).First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) Create(guest *model.Guest) error {
	return r.db.Create(guest).Error
}

func (r *GuestRepository) Save(guest *model.Guest) error {
	return r.db.Save(guest).Error
}

func (r *GuestRepository) UpdateDisplayNameByID(guestID uint, displayName string) error {
	return r.db.Model(&model.Guest{}).Where("id = ?", guestID).
		Update("display_name", displayName).Error
}

func (r *GuestRepository) UpdateStatusByID(guestID uint, status int) error {
	return r.db.Model(&model.Guest{}).Where("id = ?", guestID).
		Update("status", status).Error
}

func (r *GuestRepository) UpdateAvatar(guest *model.Guest, objectKey string) error {
	return r.db.Model(guest).Update("avatar", objectKey).Error
}

func (r *GuestRepository) ClearAvatar(guest *model.Guest) error {
	return r.db.Model(guest).Select("Avatar").Updates(map[string]interface{}{"avatar": ""}).Error
}

func (r *GuestRepository) IsDisplayNameTaken(displayName string, excludeGuestID *uint) (bool, error) {
	query := r.db.Model(&model.Guest{}).Unscoped().Where("display_name = ?", displayName)
	if excludeGuestID != nil {
		query = query.Where("id <> ?", *excludeGuestID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GuestRepository) AdminListGuests(keyword string, offset int, limit int) ([]model.Guest, int64, error) {
	var guests []model.Guest
	var total int64

	query := r.db.Model(&model.Guest{})
	if keyword != "" {
		query = query.Where("display_name LIKE ?", "%"+keyword+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("id desc").Offset(offset).Limit(limit).Find(&guests).Error; err != nil {
		return nil, 0, err
	}

	return guests, total, nil
}

func (r *GuestRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Guest{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
