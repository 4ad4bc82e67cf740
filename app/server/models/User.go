package models

import "time"

type User struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement"`

	// 基础信息
	Email    string `gorm:"column:email;uniqueIndex;not null"` // 登录用邮箱，全局唯一，按原样精确匹配（区分大小写）
	Username string `gorm:"column:username"`                   // 显示名称，不要求唯一
	IsAdmin  bool   `gorm:"column:is_admin;default:false"`     // 是否为管理员

	// 登录认证相关
	PasswordDigest string `gorm:"column:password;not null"` // 密码摘要，新记录使用 argon2id ，兼容旧库导入的 bcrypt

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;<-:create"` // 创建时间，写入后不再更新
}

// PublicUser 是 User 去掉密码摘要后的投影，所有读接口都只返回这个类型
type PublicUser struct {
	ID        uint      `gorm:"column:id" json:"id"`
	Email     string    `gorm:"column:email" json:"email"`
	Username  string    `gorm:"column:username" json:"username"`
	IsAdmin   bool      `gorm:"column:is_admin" json:"is_admin"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
