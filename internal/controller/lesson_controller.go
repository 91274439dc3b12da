package controller

import (
	"errors"
	"strconv"

	"mathquest_backend/internal/middleware"
	"mathquest_backend/internal/service"
	"mathquest_backend/internal/util"
	"mathquest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// @Summary 课程列表（含当前用户进度与解锁状态）
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/lessons [get]
func (c *LessonController) List(ctx *gin.Context) {
	userID := middleware.CurrentUserID(ctx)

	lessons, err := c.LessonService.List(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// @Summary 课程详情（客户端安全视图，不含答案）
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *LessonController) Detail(ctx *gin.Context) {
	lessonID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "lesson id must be a number")
		return
	}

	detail, err := c.LessonService.Detail(ctx.Request.Context(), uint(lessonID))
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// @Summary 提交一批答案
// @Tags 课程
// @Accept json
// @Produce json
// @Param id path int true "课程ID"
// @Param request body service.SubmitAnswersRequest true "答案批次"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id}/submit [post]
func (c *LessonController) SubmitAnswers(ctx *gin.Context) {
	userID := middleware.CurrentUserID(ctx)

	lessonID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "lesson id must be a number")
		return
	}

	var req service.SubmitAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.LessonService.SubmitAnswers(ctx.Request.Context(), userID, uint(lessonID), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAttemptConflict):
			monitoring.SubmissionCounter.WithLabelValues("conflict").Inc()
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrLessonNotFound):
			monitoring.SubmissionCounter.WithLabelValues("rejected").Inc()
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrProblemNotInLesson), errors.Is(err, util.ErrEmptyLesson):
			monitoring.SubmissionCounter.WithLabelValues("rejected").Inc()
			util.UnprocessableEntity(ctx, err.Error())
		case errors.Is(err, util.ErrEmptyAnswers), errors.Is(err, util.ErrEmptyAttemptID), errors.Is(err, util.ErrDuplicateProblem):
			monitoring.SubmissionCounter.WithLabelValues("rejected").Inc()
			util.BadRequest(ctx, err.Error())
		default:
			monitoring.SubmissionCounter.WithLabelValues("error").Inc()
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.SubmissionCounter.WithLabelValues("ok").Inc()
	util.Success(ctx, result)
}
