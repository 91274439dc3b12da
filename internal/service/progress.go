package service

// progressFold 累计进度折算结果
type progressFold struct {
	CorrectAnswers  int
	ProgressPercent float64
	IsCompleted     bool
}

// foldProgress 把本次 attempt 首次答对的题数并入课程累计进度。
// totalProblems 必须大于 0，调用方负责提前拦截空课程。
func foldProgress(existingCorrect, newlyCorrect, totalProblems int) progressFold {
	correct := existingCorrect + newlyCorrect
	return progressFold{
		CorrectAnswers:  correct,
		ProgressPercent: float64(correct) / float64(totalProblems) * 100,
		IsCompleted:     correct == totalProblems,
	}
}
