package store

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"mc-command-center/app/server/models"
)

// 公开字段，永远不包含 password 列
var publicUserColumns = []string{"id", "email", "username", "is_admin", "created_at"}

// Users 是用户凭据的存储适配器：只做字段投影和唯一性约束的映射，不含业务逻辑
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// FindByEmail 精确匹配邮箱，只在登录时使用，返回包含密码摘要的完整记录
func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, unavailable("find user by email", err)
	}

	return &user, nil
}

func (s *Users) FindByID(ctx context.Context, id uint) (*models.PublicUser, error) {
	var user models.PublicUser
	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Select(publicUserColumns).
		Where("id = ?", id).
		Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, unavailable("find user by id", err)
	}

	return &user, nil
}

// Create 插入一条新记录，邮箱唯一性由数据库约束保证，单条 INSERT 要么成功要么失败
func (s *Users) Create(ctx context.Context, user *models.User) (uint, error) {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, unavailable("create user", err)
	}

	return user.ID, nil
}

// List 按创建顺序倒序返回全部用户
func (s *Users) List(ctx context.Context) ([]models.PublicUser, error) {
	users := []models.PublicUser{}
	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Select(publicUserColumns).
		Order("id DESC").
		Find(&users).Error; err != nil {
		return nil, unavailable("list users", err)
	}

	return users, nil
}

func (s *Users) Count(ctx context.Context) (int64, error) {
	var counter int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&counter).Error; err != nil {
		return 0, unavailable("count users", err)
	}

	return counter, nil
}
