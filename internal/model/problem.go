package model

type ProblemType string

const (
	MultipleChoice ProblemType = "MULTIPLE_CHOICE"
	Input          ProblemType = "INPUT"
)

// Problem 题目：选择题持有选项集合，填空题持有唯一正确数值。
// CorrectAnswer 与 ProblemOption.IsCorrect 不允许出现在任何响应中。
// swagger:model Problem
type Problem struct {
	BaseModel
	LessonID      uint        `gorm:"index;not null" json:"lessonId"`
	Type          ProblemType `gorm:"size:20;not null" json:"type"`
	Question      string      `gorm:"size:500;not null" json:"question"`
	CorrectAnswer *float64    `json:"-"`
	XP            int         `gorm:"not null" json:"xp"`

	Options []ProblemOption `gorm:"foreignKey:ProblemID" json:"options,omitempty"`
}

func (Problem) TableName() string {
	return "problems"
}

// swagger:model ProblemOption
type ProblemOption struct {
	BaseModel
	ProblemID uint    `gorm:"index;not null" json:"problemId"`
	Value     float64 `gorm:"not null" json:"value"`
	IsCorrect bool    `gorm:"default:false" json:"-"`
}

func (ProblemOption) TableName() string {
	return "problem_options"
}
