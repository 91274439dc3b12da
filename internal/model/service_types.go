package model

import (
	"time"
)

// LessonWithProgress 课程列表项：课程信息 + 当前用户的进度与解锁状态。
// swagger:model LessonWithProgress
type LessonWithProgress struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	Order           int     `json:"order"`
	TotalProblems   int     `json:"totalProblems"`
	CorrectAnswers  int     `json:"correctAnswers"`
	ProgressPercent float64 `json:"progressPercent"`
	IsCompleted     bool    `json:"isCompleted"`
	IsUnlocked      bool    `json:"isUnlocked"`
}

// ProblemOptionView 选项的客户端视图，绝不携带 is_correct。
type ProblemOptionView struct {
	ID    uint    `json:"id"`
	Value float64 `json:"value"`
}

// ProblemView 题目的客户端视图，绝不携带 correct_answer。
type ProblemView struct {
	ID       uint                `json:"id"`
	Type     ProblemType         `json:"type"`
	Question string              `json:"question"`
	XP       int                 `json:"xp"`
	Options  []ProblemOptionView `json:"options,omitempty"`
}

// LessonDetailView 课程详情（客户端安全视图）。
// swagger:model LessonDetailView
type LessonDetailView struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Order       int           `json:"order"`
	Problems    []ProblemView `json:"problems"`
}

// UserProfile 用户档案：统计字段 + 全部课程的总体完成百分比。
// swagger:model UserProfile
type UserProfile struct {
	ID              uint       `json:"id"`
	Username        string     `json:"username"`
	TotalXP         int        `json:"totalXp"`
	CurrentStreak   int        `json:"currentStreak"`
	BestStreak      int        `json:"bestStreak"`
	ProgressPercent int        `json:"progressPercent"`
	LastActiveDate  *time.Time `json:"lastActiveDate,omitempty"`
}
