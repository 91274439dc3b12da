package repository

import (
	"mathquest_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// ListOrdered 按课程顺序返回全部课程
func (r *LessonRepository) ListOrdered() ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Order("display_order ASC").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).Count(&count).Error
	return count, err
}
