package models

import "time"

type CommandTemplate struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement"`

	Name            string `gorm:"column:name"`             // 模板名字
	CommandTemplate string `gorm:"column:command_template"` // 指令模板内容
	CreatedBy       *uint  `gorm:"column:created_by;index"` // 创建者 ID ， NULL 表示系统内置

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;<-:create"`

	Creator *User `gorm:"foreignKey:CreatedBy"`
}

func (CommandTemplate) TableName() string {
	return "command_builders"
}

// CommandTemplateView 列表展示用，附带创建者的显示名称
type CommandTemplateView struct {
	ID              uint      `gorm:"column:id" json:"id"`
	Name            string    `gorm:"column:name" json:"name"`
	CommandTemplate string    `gorm:"column:command_template" json:"command_template"`
	CreatedByName   *string   `gorm:"column:created_by_name" json:"created_by_name"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}
