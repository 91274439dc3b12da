package repository

import (
	"mathquest_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDForUpdate 以 SELECT ... FOR UPDATE 读取并锁定用户行，
// 事务提交前同一用户的其他写事务会在此阻塞。
func (r *UserRepository) FindByIDForUpdate(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateStats 只更新传入的统计字段（total_xp / current_streak / best_streak / last_active_date）
func (r *UserRepository) UpdateStats(userID uint, updates map[string]interface{}) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(updates).
		Error
}
