package service

import (
	"mathquest_backend/internal/model"
)

// gradeAnswer 纯判分函数：选择题匹配本题下被标记为正确的选项，
// 填空题与正确数值做精确比较。选项不属于本题或缺失一律判错，不报错。
func gradeAnswer(problem *model.Problem, answer SubmitAnswer) bool {
	switch problem.Type {
	case model.MultipleChoice:
		if answer.OptionID == nil {
			return false
		}
		for _, option := range problem.Options {
			if option.ID == *answer.OptionID {
				return option.IsCorrect
			}
		}
		return false
	case model.Input:
		if answer.Value == nil || problem.CorrectAnswer == nil {
			return false
		}
		return *answer.Value == *problem.CorrectAnswer
	}
	return false
}
