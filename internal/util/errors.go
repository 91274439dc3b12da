package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrAttemptConflict    = errors.New("attempt_id was already processed")
	ErrProblemNotInLesson = errors.New("problem does not belong to this lesson")
	ErrEmptyLesson        = errors.New("lesson has no problems")
	ErrEmptyAnswers       = errors.New("answers must be non-empty")
	ErrEmptyAttemptID     = errors.New("attempt_id must be non-empty")
	ErrDuplicateProblem   = errors.New("duplicate problem_id in one attempt")
)
