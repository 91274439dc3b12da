package model

import (
	"time"
)

// LessonProgress 用户在单个课程上的累计完成情况，每个 (user, lesson) 一行。
// swagger:model LessonProgress
type LessonProgress struct {
	BaseModel
	UserID          uint       `gorm:"not null;uniqueIndex:idx_user_lesson" json:"userId"`
	LessonID        uint       `gorm:"not null;uniqueIndex:idx_user_lesson" json:"lessonId"`
	TotalProblems   int        `gorm:"not null" json:"totalProblems"`
	CorrectAnswers  int        `gorm:"default:0" json:"correctAnswers"`
	ProgressPercent float64    `gorm:"default:0" json:"progressPercent"`
	IsCompleted     bool       `gorm:"default:false" json:"isCompleted"`
	CompletedAt     *time.Time `json:"completedAt"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
