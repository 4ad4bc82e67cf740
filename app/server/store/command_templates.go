package store

import (
	"context"
	"gorm.io/gorm"
	"mc-command-center/app/server/models"
)

type CommandTemplates struct {
	db *gorm.DB
}

func NewCommandTemplates(db *gorm.DB) *CommandTemplates {
	return &CommandTemplates{db: db}
}

func (s *CommandTemplates) Create(ctx context.Context, name string, command string, createdBy *uint) (uint, error) {
	template := models.CommandTemplate{
		Name:            name,
		CommandTemplate: command,
		CreatedBy:       createdBy,
	}
	if err := s.db.WithContext(ctx).Create(&template).Error; err != nil {
		return 0, unavailable("create command template", err)
	}

	return template.ID, nil
}

// List 新建的排在前面，附带创建者的 username
func (s *CommandTemplates) List(ctx context.Context) ([]models.CommandTemplateView, error) {
	list := []models.CommandTemplateView{}
	if err := s.db.WithContext(ctx).
		Table("command_builders AS cb").
		Select("cb.id, cb.name, cb.command_template, u.username AS created_by_name, cb.created_at").
		Joins("LEFT JOIN users u ON cb.created_by = u.id").
		Order("cb.id DESC").
		Scan(&list).Error; err != nil {
		return nil, unavailable("list command templates", err)
	}

	return list, nil
}

func (s *CommandTemplates) Count(ctx context.Context) (int64, error) {
	var counter int64
	if err := s.db.WithContext(ctx).Model(&models.CommandTemplate{}).Count(&counter).Error; err != nil {
		return 0, unavailable("count command templates", err)
	}

	return counter, nil
}

// CreateBatch 用于初始化内置模板
func (s *CommandTemplates) CreateBatch(ctx context.Context, templates []*models.CommandTemplate) error {
	if err := s.db.WithContext(ctx).Create(templates).Error; err != nil {
		return unavailable("create command templates", err)
	}

	return nil
}
