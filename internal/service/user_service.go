package service

import (
	"errors"
	"math"

	"mathquest_backend/internal/model"
	"mathquest_backend/internal/repository"
	"mathquest_backend/internal/util"

	"gorm.io/gorm"
)

// UserService 处理用户档案相关的业务逻辑
type UserService struct {
	UserRepo     *repository.UserRepository
	LessonRepo   *repository.LessonRepository
	ProgressRepo *repository.ProgressRepository
}

func NewUserService(userRepo *repository.UserRepository, lessonRepo *repository.LessonRepository, progressRepo *repository.ProgressRepository) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		LessonRepo:   lessonRepo,
		ProgressRepo: progressRepo,
	}
}

// GetProfile 用户统计 + 总体完成度（已完成课程数 / 课程总数）
func (s *UserService) GetProfile(userID uint) (*model.UserProfile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	totalLessons, err := s.LessonRepo.Count()
	if err != nil {
		return nil, err
	}
	completed, err := s.ProgressRepo.CountCompleted(userID)
	if err != nil {
		return nil, err
	}

	percent := 0
	if totalLessons > 0 {
		percent = int(math.Round(float64(completed) / float64(totalLessons) * 100))
	}

	return &model.UserProfile{
		ID:              user.ID,
		Username:        user.Username,
		TotalXP:         user.TotalXP,
		CurrentStreak:   user.CurrentStreak,
		BestStreak:      user.BestStreak,
		ProgressPercent: percent,
		LastActiveDate:  user.LastActiveDate,
	}, nil
}
