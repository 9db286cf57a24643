package repository

import "gorm.io/gorm"

type Repositories struct {
	Guest   GuestStore
	Photo   PhotoStore
	Event   EventStore
	Setting SettingStore
	System  SystemStore
}

func NewGuestRepository(db *gorm.DB) GuestStore {
	return &GuestRepository{db: db}
}

func NewPhotoRepository(db *gorm.DB) PhotoStore {
	return &PhotoRepository{db: db}
}

func NewEventRepository(db *gorm.DB) EventStore {
	return &EventRepository{db: db}
}

func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}

func NewSystemRepository(db *gorm.DB) SystemStore {
	return &SystemRepository{db: db}
}

func NewRepositories(guest GuestStore, photo PhotoStore, event EventStore, setting SettingStore, system SystemStore) *Repositories {
	return &Repositories{
		Guest:   guest,
		Photo:   photo,
		Event:   event,
		Setting: setting,
		System:  system,
	}
}
