package service

import (
	"errors"
	"log"
	"strings"

	"forever-captured-server/internal/consts"
	"forever-captured-server/internal/model"

	"gorm.io/gorm"
)

type EventPayload struct {
	Title       string `json:"title"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ListEvents 按创建顺序返回全部日程。
func (s *AppService) ListEvents() ([]model.Event, error) {
	events, err := s.repos.Event.FindAll()
	if err != nil {
		log.Printf("❌ 查询日程失败: %v", err)
		return nil, NewInternalError("日程加载失败")
	}
	return events, nil
}

// CreateEvent 新建日程条目。
func (s *AppService) CreateEvent(payload EventPayload) (*model.Event, error) {
	if err := validateEventPayload(&payload); err != nil {
		return nil, err
	}

	event := model.Event{
		Title:       payload.Title,
		Time:        payload.Time,
		Location:    payload.Location,
		Description: payload.Description,
		Icon:        payload.Icon,
	}
	if err := s.repos.Event.Create(&event); err != nil {
		log.Printf("❌ 创建日程失败: %v", err)
		return nil, NewInternalError("日程保存失败")
	}
	return &event, nil
}

// UpdateEvent 按 id 整体更新日程条目。
func (s *AppService) UpdateEvent(id uint, payload EventPayload) (*model.Event, error) {
	if err := validateEventPayload(&payload); err != nil {
		return nil, err
	}

	event, err := s.repos.Event.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("日程不存在")
		}
		return nil, err
	}

	event.Title = payload.Title
	event.Time = payload.Time
	event.Location = payload.Location
	event.Description = payload.Description
	event.Icon = payload.Icon

	if err := s.repos.Event.Save(event); err != nil {
		log.Printf("❌ 更新日程失败 (event=%d): %v", id, err)
		return nil, NewInternalError("日程保存失败")
	}
	return event, nil
}

// DeleteEvent 按 id 删除日程条目。
func (s *AppService) DeleteEvent(id uint) error {
	deleted, err := s.repos.Event.DeleteByID(id)
	if err != nil {
		log.Printf("❌ 删除日程失败 (event=%d): %v", id, err)
		return NewInternalError("日程删除失败")
	}
	if !deleted {
		return NewNotFoundError("日程不存在")
	}
	return nil
}

// validateEventPayload 校验必填字段并做首尾去空格，图标按闭合枚举校验。
func validateEventPayload(payload *EventPayload) error {
	payload.Title = strings.TrimSpace(payload.Title)
	payload.Time = strings.TrimSpace(payload.Time)
	payload.Location = strings.TrimSpace(payload.Location)
	payload.Description = strings.TrimSpace(payload.Description)
	payload.Icon = strings.TrimSpace(payload.Icon)

	if payload.Title == "" {
		return NewValidationError("日程标题不能为空")
	}
	if payload.Time == "" {
		return NewValidationError("日程时间不能为空")
	}
	if payload.Location == "" {
		return NewValidationError("日程地点不能为空")
	}
	if payload.Description == "" {
		return NewValidationError("日程描述不能为空")
	}
	if !consts.IsValidEventIcon(payload.Icon) {
		return NewValidationError("未知的日程图标: " + payload.Icon)
	}
	return nil
}
