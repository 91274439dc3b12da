package model

// Submission 一次作答的审计记录，按 (attempt_id, problem_id) 唯一，只增不改。
// swagger:model Submission
type Submission struct {
	BaseModel
	AttemptID string   `gorm:"size:64;not null;uniqueIndex:idx_attempt_problem;index" json:"attemptId"`
	UserID    uint     `gorm:"index;not null" json:"userId"`
	LessonID  uint     `gorm:"index;not null" json:"lessonId"`
	ProblemID uint     `gorm:"not null;uniqueIndex:idx_attempt_problem" json:"problemId"`
	Answer    *float64 `json:"answer"`
	IsCorrect bool     `gorm:"default:false" json:"isCorrect"`
	XPAwarded int      `gorm:"default:0" json:"xpAwarded"`
}

func (Submission) TableName() string {
	return "submissions"
}
