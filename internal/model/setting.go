package model

type Setting struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Key       string `json:"key" gorm:"unique;not null;size:64"`
	Value     string `json:"value"`
	Desc      string `json:"desc"`
	Sensitive bool   `json:"sensitive" gorm:"default:false"`
}
