package repository

import (
	"mathquest_backend/internal/model"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	DB *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

// FindByLessonWithOptions 返回课程下的全部题目并预加载选项，判分时需要 IsCorrect
func (r *ProblemRepository) FindByLessonWithOptions(lessonID uint) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.DB.Preload("Options").
		Where("lesson_id = ?", lessonID).
		Order("id ASC").
		Find(&problems).Error
	return problems, err
}

func (r *ProblemRepository) CountByLesson(lessonID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Problem{}).Where("lesson_id = ?", lessonID).Count(&count).Error
	return count, err
}
