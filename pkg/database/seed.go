package database

import (
	"mathquest_backend/internal/model"

	"gorm.io/gorm"
)

type seedProblem struct {
	Type          model.ProblemType
	Question      string
	CorrectAnswer *float64
	XP            int
	Options       []seedOption
}

type seedOption struct {
	Value     float64
	IsCorrect bool
}

type seedLesson struct {
	Title       string
	Description string
	Order       int
	Problems    []seedProblem
}

func f(v float64) *float64 { return &v }

var defaultLessons = []seedLesson{
	{
		Title:       "Basic Arithmetic",
		Description: "Master addition and subtraction fundamentals",
		Order:       1,
		Problems: []seedProblem{
			{Type: model.MultipleChoice, Question: "What is 15 + 23?", XP: 10, Options: []seedOption{
				{Value: 35}, {Value: 38, IsCorrect: true}, {Value: 40}, {Value: 33},
			}},
			{Type: model.MultipleChoice, Question: "What is 47 - 19?", XP: 10, Options: []seedOption{
				{Value: 28, IsCorrect: true}, {Value: 26}, {Value: 30}, {Value: 32},
			}},
			{Type: model.Input, Question: "Calculate: 156 + 87", CorrectAnswer: f(243), XP: 15},
			{Type: model.MultipleChoice, Question: "What is 91 - 36?", XP: 10, Options: []seedOption{
				{Value: 53}, {Value: 55, IsCorrect: true}, {Value: 57}, {Value: 59},
			}},
		},
	},
	{
		Title:       "Multiplication Mastery",
		Description: "Practice your times tables",
		Order:       2,
		Problems: []seedProblem{
			{Type: model.MultipleChoice, Question: "What is 7 × 8?", XP: 10, Options: []seedOption{
				{Value: 54}, {Value: 56, IsCorrect: true}, {Value: 58}, {Value: 52},
			}},
			{Type: model.Input, Question: "Calculate: 12 × 9", CorrectAnswer: f(108), XP: 15},
			{Type: model.MultipleChoice, Question: "What is 6 × 7?", XP: 10, Options: []seedOption{
				{Value: 40}, {Value: 42, IsCorrect: true}, {Value: 44}, {Value: 48},
			}},
			{Type: model.MultipleChoice, Question: "What is 9 × 4?", XP: 10, Options: []seedOption{
				{Value: 32}, {Value: 36, IsCorrect: true}, {Value: 38}, {Value: 40},
			}},
			{Type: model.Input, Question: "Calculate: 15 × 6", CorrectAnswer: f(90), XP: 15},
		},
	},
	{
		Title:       "Division Basics",
		Description: "Learn division fundamentals",
		Order:       3,
		Problems: []seedProblem{
			{Type: model.MultipleChoice, Question: "What is 56 ÷ 8?", XP: 10, Options: []seedOption{
				{Value: 6}, {Value: 7, IsCorrect: true}, {Value: 8}, {Value: 9},
			}},
			{Type: model.Input, Question: "Calculate: 144 ÷ 12", CorrectAnswer: f(12), XP: 15},
			{Type: model.MultipleChoice, Question: "What is 81 ÷ 9?", XP: 10, Options: []seedOption{
				{Value: 8}, {Value: 9, IsCorrect: true}, {Value: 10}, {Value: 7},
			}},
			{Type: model.MultipleChoice, Question: "What is 72 ÷ 6?", XP: 10, Options: []seedOption{
				{Value: 10}, {Value: 11}, {Value: 12, IsCorrect: true}, {Value: 13},
			}},
		},
	},
}

// Seed 首次启动时写入演示用户与默认课程（表非空时跳过）
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&model.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		demo := &model.User{Username: "demo_user"}
		if err := db.Create(demo).Error; err != nil {
			return err
		}
	}

	var lessonCount int64
	if err := db.Model(&model.Lesson{}).Count(&lessonCount).Error; err != nil {
		return err
	}
	if lessonCount > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, l := range defaultLessons {
			lesson := &model.Lesson{
				Title:       l.Title,
				Description: l.Description,
				Order:       l.Order,
			}
			if err := tx.Create(lesson).Error; err != nil {
				return err
			}
			for _, p := range l.Problems {
				problem := &model.Problem{
					LessonID:      lesson.ID,
					Type:          p.Type,
					Question:      p.Question,
					CorrectAnswer: p.CorrectAnswer,
					XP:            p.XP,
				}
				if err := tx.Create(problem).Error; err != nil {
					return err
				}
				for _, o := range p.Options {
					option := &model.ProblemOption{
						ProblemID: problem.ID,
						Value:     o.Value,
						IsCorrect: o.IsCorrect,
					}
					if err := tx.Create(option).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
