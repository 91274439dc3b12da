package repository

import (
	"mathquest_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) FindByAttemptID(attemptID string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.Where("attempt_id = ?", attemptID).Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) Create(submission *model.Submission) error {
	return r.DB.Create(submission).Error
}

// HasCorrect 用户是否曾经答对过该题（跨所有历史 attempt）
func (r *SubmissionRepository) HasCorrect(userID, problemID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Submission{}).
		Where("user_id = ? AND problem_id = ? AND is_correct = ?", userID, problemID, true).
		Count(&count).Error
	return count > 0, err
}
