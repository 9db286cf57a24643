package repository

import "forever-captured-server/internal/model"

type GuestStore interface {
	FindByID(id uint) (*model.Guest, error)
	FindByDisplayName(displayName string) (*model.Guest, error)
	Create(guest *model.Guest) error
	Save(guest *model.Guest) error
	UpdateDisplayNameByID(guestID uint, displayName string) error
	UpdateStatusByID(guestID uint, status int) error
	UpdateAvatar(guest *model.Guest, objectKey string) error
	ClearAvatar(guest *model.Guest) error
	IsDisplayNameTaken(displayName string, excludeGuestID *uint) (bool, error)
	AdminListGuests(keyword string, offset int, limit int) ([]model.Guest, int64, error)
	CountAll() (int64, error)
}
