package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"mathquest_backend/internal/model"

	"github.com/google/uuid"
)

func TestDetailNeverLeaksAnswerKeys(t *testing.T) {
	f := newFixture(t)

	detail, err := f.svc.Detail(context.Background(), f.lesson.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(detail.Problems) != 4 {
		t.Fatalf("problems = %d, want 4", len(detail.Problems))
	}

	data, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	payload := strings.ToLower(string(data))
	for _, leaked := range []string{"is_correct", "iscorrect", "correct_answer", "correctanswer"} {
		if strings.Contains(payload, leaked) {
			t.Fatalf("lesson detail leaks %q: %s", leaked, data)
		}
	}
}

func TestProblemModelHidesAnswerKeysInJSON(t *testing.T) {
	problem := model.Problem{
		Type:          model.Input,
		Question:      "q",
		CorrectAnswer: fptr(42),
		Options: []model.ProblemOption{
			{Value: 42, IsCorrect: true},
		},
	}

	data, err := json.Marshal(problem)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	payload := strings.ToLower(string(data))
	if strings.Contains(payload, "correct") {
		t.Fatalf("model JSON leaks answer key: %s", data)
	}
}

func TestListMergesProgressAndGatesLessons(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	second := &model.Lesson{Title: "Multiplication Mastery", Order: 2}
	if err := f.db.Create(second).Error; err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	if err := f.db.Create(&model.Problem{
		LessonID: second.ID,
		Type:     model.Input,
		Question: "q",
		XP:       15,
	}).Error; err != nil {
		t.Fatalf("create problem: %v", err)
	}

	list, err := f.svc.List(f.user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("lessons = %d, want 2", len(list))
	}
	if !list[0].IsUnlocked {
		t.Fatal("first lesson must be unlocked")
	}
	if list[1].IsUnlocked {
		t.Fatal("second lesson unlocked before completing first")
	}
	if list[0].TotalProblems != 4 || list[1].TotalProblems != 1 {
		t.Fatalf("total problems = %d/%d, want 4/1", list[0].TotalProblems, list[1].TotalProblems)
	}

	// 完成第一课后第二课解锁
	_, err = f.svc.SubmitAnswers(ctx, f.user.ID, f.lesson.ID, SubmitAnswersRequest{
		AttemptID: uuid.NewString(),
		Answers: []SubmitAnswer{
			{ProblemID: f.problems[0].ID, OptionID: f.correctOption(t, 0)},
			{ProblemID: f.problems[1].ID, OptionID: f.correctOption(t, 1)},
			{ProblemID: f.problems[2].ID, Value: fptr(243)},
			{ProblemID: f.problems[3].ID, OptionID: f.correctOption(t, 3)},
		},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	list, err = f.svc.List(f.user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !list[0].IsCompleted || list[0].ProgressPercent != 100 {
		t.Fatalf("first lesson = %+v, want completed", list[0])
	}
	if !list[1].IsUnlocked {
		t.Fatal("second lesson must unlock after first is completed")
	}
}

func TestDetailUnknownLesson(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Detail(context.Background(), 9999)
	if err == nil {
		t.Fatal("expected error for unknown lesson")
	}
}
