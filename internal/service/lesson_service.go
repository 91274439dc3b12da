package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mathquest_backend/internal/model"
	"mathquest_backend/internal/repository"
	"mathquest_backend/internal/util"
	"mathquest_backend/pkg/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

const lessonDetailCacheTTL = 24 * time.Hour

type LessonService struct {
	LessonRepo   *repository.LessonRepository
	ProblemRepo  *repository.ProblemRepository
	ProgressRepo *repository.ProgressRepository
	Redis        *redis.Client
	DB           *gorm.DB
}

func NewLessonService(
	lessonRepo *repository.LessonRepository,
	problemRepo *repository.ProblemRepository,
	progressRepo *repository.ProgressRepository,
	rdb *redis.Client,
	db *gorm.DB,
) *LessonService {
	return &LessonService{
		LessonRepo:   lessonRepo,
		ProblemRepo:  problemRepo,
		ProgressRepo: progressRepo,
		Redis:        rdb,
		DB:           db,
	}
}

type SubmitAnswer struct {
	ProblemID uint     `json:"problem_id" binding:"required"`
	Value     *float64 `json:"value"`
	OptionID  *uint    `json:"option_id"`
}

type SubmitAnswersRequest struct {
	AttemptID string         `json:"attempt_id"`
	Answers   []SubmitAnswer `json:"answers"`
}

type StreakInfo struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

type SubmitAnswersResult struct {
	CorrectCount   int        `json:"correct_count"`
	EarnedXP       int        `json:"earned_xp"`
	NewTotalXP     int        `json:"new_total_xp"`
	Streak         StreakInfo `json:"streak"`
	LessonProgress float64    `json:"lesson_progress"`
}

// SubmitAnswers 提交一批答案并在单个事务内完成判分、经验、连续天数与进度更新。
// 同一个 attempt_id 只会被处理一次；任何一步失败整体回滚，不留部分写入。
func (s *LessonService) SubmitAnswers(ctx context.Context, userID, lessonID uint, req SubmitAnswersRequest) (*SubmitAnswersResult, error) {
	if req.AttemptID == "" {
		return nil, util.ErrEmptyAttemptID
	}
	if len(req.Answers) == 0 {
		return nil, util.ErrEmptyAnswers
	}
	seen := make(map[uint]bool, len(req.Answers))
	for _, a := range req.Answers {
		if seen[a.ProblemID] {
			return nil, fmt.Errorf("%w: problem %d", util.ErrDuplicateProblem, a.ProblemID)
		}
		seen[a.ProblemID] = true
	}

	ctx, span := tracing.StartSpan(ctx, "lesson.submit",
		attribute.Int("lesson.id", int(lessonID)),
		attribute.Int("answers.count", len(req.Answers)),
	)
	defer span.End()

	var result *SubmitAnswersResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		lessonRepo := repository.NewLessonRepository(tx)
		problemRepo := repository.NewProblemRepository(tx)
		submissionRepo := repository.NewSubmissionRepository(tx)
		progressRepo := repository.NewProgressRepository(tx)

		// 先对用户行加锁，作为整个 attempt 的用户级互斥：
		// 同一用户并发的不同 attempt 在此串行，后续读到的都是已提交数据。
		// 放在所有普通读之前，避免快照先于锁建立。
		user, err := userRepo.FindByIDForUpdate(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrUserNotFound
			}
			return err
		}

		// 幂等检查：同一 attempt_id 已有记录则整体拒绝
		existing, err := submissionRepo.FindByAttemptID(req.AttemptID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return util.ErrAttemptConflict
		}

		if _, err := lessonRepo.FindByID(lessonID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrLessonNotFound
			}
			return err
		}

		problems, err := problemRepo.FindByLessonWithOptions(lessonID)
		if err != nil {
			return err
		}
		if len(problems) == 0 {
			return util.ErrEmptyLesson
		}

		problemByID := make(map[uint]*model.Problem, len(problems))
		for i := range problems {
			problemByID[problems[i].ID] = &problems[i]
		}
		for _, a := range req.Answers {
			if _, ok := problemByID[a.ProblemID]; !ok {
				return fmt.Errorf("%w: problem %d not in lesson %d", util.ErrProblemNotInLesson, a.ProblemID, lessonID)
			}
		}

		correctCount := 0
		earnedXP := 0
		newlyCorrect := 0

		for _, a := range req.Answers {
			problem := problemByID[a.ProblemID]
			isCorrect := gradeAnswer(problem, a)

			awarded := 0
			if isCorrect {
				correctCount++
				solved, err := submissionRepo.HasCorrect(userID, problem.ID)
				if err != nil {
					return err
				}
				// 每道题的经验终身只发一次
				if !solved {
					awarded = problem.XP
					earnedXP += problem.XP
					newlyCorrect++
				}
			}

			var raw *float64
			if problem.Type == model.MultipleChoice {
				if a.OptionID != nil {
					v := float64(*a.OptionID)
					raw = &v
				}
			} else {
				raw = a.Value
			}

			if err := submissionRepo.Create(&model.Submission{
				AttemptID: req.AttemptID,
				UserID:    userID,
				LessonID:  lessonID,
				ProblemID: problem.ID,
				Answer:    raw,
				IsCorrect: isCorrect,
				XPAwarded: awarded,
			}); err != nil {
				return err
			}
		}

		newTotalXP := user.TotalXP + earnedXP
		currentStreak := user.CurrentStreak
		bestStreak := user.BestStreak

		// 没有新经验的 attempt 不触碰用户统计
		if earnedXP > 0 {
			today := truncateToDay(time.Now())
			currentStreak = nextStreak(user.LastActiveDate, today, user.CurrentStreak)
			if currentStreak > bestStreak {
				bestStreak = currentStreak
			}
			if err := userRepo.UpdateStats(userID, map[string]interface{}{
				"total_xp":         newTotalXP,
				"current_streak":   currentStreak,
				"best_streak":      bestStreak,
				"last_active_date": today,
			}); err != nil {
				return err
			}
		}

		prev, err := progressRepo.FindByUserAndLesson(userID, lessonID)
		if err != nil {
			return err
		}
		existingCorrect := 0
		var completedAt *time.Time
		if prev != nil {
			existingCorrect = prev.CorrectAnswers
			completedAt = prev.CompletedAt
		}

		fold := foldProgress(existingCorrect, newlyCorrect, len(problems))
		if fold.IsCompleted && completedAt == nil {
			now := time.Now()
			completedAt = &now
		}

		if err := progressRepo.Upsert(&model.LessonProgress{
			UserID:          userID,
			LessonID:        lessonID,
			TotalProblems:   len(problems),
			CorrectAnswers:  fold.CorrectAnswers,
			ProgressPercent: fold.ProgressPercent,
			IsCompleted:     fold.IsCompleted,
			CompletedAt:     completedAt,
		}); err != nil {
			return err
		}

		result = &SubmitAnswersResult{
			CorrectCount: correctCount,
			EarnedXP:     earnedXP,
			NewTotalXP:   newTotalXP,
			Streak: StreakInfo{
				Current: currentStreak,
				Best:    bestStreak,
			},
			LessonProgress: fold.ProgressPercent,
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("xp.earned", result.EarnedXP))
	return result, nil
}

// List 按课程顺序返回全部课程及当前用户的进度；
// 首个课程始终解锁，其余课程要求前一课程已完成。
func (s *LessonService) List(userID uint) ([]model.LessonWithProgress, error) {
	lessons, err := s.LessonRepo.ListOrdered()
	if err != nil {
		return nil, err
	}

	progressRows, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	progressByLesson := make(map[uint]*model.LessonProgress, len(progressRows))
	for i := range progressRows {
		progressByLesson[progressRows[i].LessonID] = &progressRows[i]
	}

	list := make([]model.LessonWithProgress, 0, len(lessons))
	prevCompleted := true
	for _, lesson := range lessons {
		item := model.LessonWithProgress{
			ID:          lesson.ID,
			Title:       lesson.Title,
			Description: lesson.Description,
			Order:       lesson.Order,
			IsUnlocked:  prevCompleted,
		}

		if p, ok := progressByLesson[lesson.ID]; ok {
			item.TotalProblems = p.TotalProblems
			item.CorrectAnswers = p.CorrectAnswers
			item.ProgressPercent = p.ProgressPercent
			item.IsCompleted = p.IsCompleted
		} else {
			count, err := s.ProblemRepo.CountByLesson(lesson.ID)
			if err != nil {
				return nil, err
			}
			item.TotalProblems = int(count)
		}

		prevCompleted = item.IsCompleted
		list = append(list, item)
	}
	return list, nil
}

// Detail 返回课程详情的客户端安全视图：选项不携带 is_correct，
// 填空题不携带 correct_answer。结果经 Redis 缓存。
func (s *LessonService) Detail(ctx context.Context, lessonID uint) (*model.LessonDetailView, error) {
	cacheKey := fmt.Sprintf("lesson:detail:%d", lessonID)
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached model.LessonDetailView
			if json.Unmarshal([]byte(val), &cached) == nil {
				return &cached, nil
			}
		}
	}

	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	problems, err := s.ProblemRepo.FindByLessonWithOptions(lessonID)
	if err != nil {
		return nil, err
	}

	views := make([]model.ProblemView, 0, len(problems))
	for _, p := range problems {
		view := model.ProblemView{
			ID:       p.ID,
			Type:     p.Type,
			Question: p.Question,
			XP:       p.XP,
		}
		for _, o := range p.Options {
			view.Options = append(view.Options, model.ProblemOptionView{
				ID:    o.ID,
				Value: o.Value,
			})
		}
		views = append(views, view)
	}

	detail := &model.LessonDetailView{
		ID:          lesson.ID,
		Title:       lesson.Title,
		Description: lesson.Description,
		Order:       lesson.Order,
		Problems:    views,
	}

	if s.Redis != nil {
		if data, err := json.Marshal(detail); err == nil {
			s.Redis.Set(ctx, cacheKey, data, lessonDetailCacheTTL)
		}
	}
	return detail, nil
}
