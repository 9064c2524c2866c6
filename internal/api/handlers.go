package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/httputil"
)

type CreateTaskRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Complexity    int    `json:"complexity"`
	CognitiveLoad string `json:"cognitive_load"`
	TimeEstimate  int    `json:"time_estimate"`
	ParentID      *int   `json:"parent_id"`
}

type UpdateTaskRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Complexity    int    `json:"complexity"`
	CognitiveLoad string `json:"cognitive_load"`
	TimeEstimate  int    `json:"time_estimate"`
	Archived      bool   `json:"archived"`
}

type SetParentRequest struct {
	ParentID *int `json:"parent_id"`
}

type AddToDayRequest struct {
	TaskID int `json:"task_id"`
}

type QuickAddRequest struct {
	Title         string `json:"title"`
	Complexity    int    `json:"complexity"`
	CognitiveLoad string `json:"cognitive_load"`
	TimeEstimate  int    `json:"time_estimate"`
}

type ReorderRequest struct {
	Order []int `json:"order"`
}

type StatusRequest struct {
	Status     string `json:"status"`
	ActualTime *int   `json:"actual_time"`
}

type RolloverRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func getIDParam(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

func getDateParam(r *http.Request) (time.Time, error) {
	return time.Parse(time.DateOnly, r.PathValue("date"))
}

func getDaysQuery(r *http.Request) int {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		return 0
	}
	return days
}

func isValidationError(err error) bool {
	var fieldErr validator.FieldError
	return errors.As(err, &fieldErr)
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateTaskRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create task error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.CreateTask(ctx, &service.CreateTaskRequest{
		Title:         req.Title,
		Description:   req.Description,
		Complexity:    req.Complexity,
		CognitiveLoad: req.CognitiveLoad,
		TimeEstimate:  req.TimeEstimate,
		ParentID:      req.ParentID,
	})
	if err != nil {
		switch {
		case isValidationError(err):
			logger.Error("create task error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("create task error: unknown parent")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "parent task doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNestedSubtask):
			logger.Error("create task error: nested subtask")
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			logger.Error("create task error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating task", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created")
}

func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := getIDParam(r)
	if err != nil {
		logger.Error("get task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			logger.Error("get task error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
			return
		}
		logger.Error("get task error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting task", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	includeArchived := r.URL.Query().Get("include_archived") == "true"
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	tasks, err := s.tasksService.ListTasks(ctx, includeArchived)
	if err != nil {
		logger.Error("listing tasks error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting tasks list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"tasks": tasks})
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := getIDParam(r)
	if err != nil {
		logger.Error("update task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req UpdateTaskRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update task error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.UpdateTask(ctx, id, &service.UpdateTaskRequest{
		Title:         req.Title,
		Description:   req.Description,
		Complexity:    req.Complexity,
		CognitiveLoad: req.CognitiveLoad,
		TimeEstimate:  req.TimeEstimate,
		Archived:      req.Archived,
	})
	if err != nil {
		switch {
		case isValidationError(err):
			logger.Error("update task error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("update task error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
		default:
			logger.Error("update task error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating task", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task updated")
}

func (s *Server) SetTaskParent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := getIDParam(r)
	if err != nil {
		logger.Error("set parent error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req SetParentRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set parent error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.tasksService.SetTaskParent(ctx, id, req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("set parent error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrSelfParent),
			errors.Is(err, errorvalues.ErrNestedSubtask),
			errors.Is(err, errorvalues.ErrHasSubtasks):
			logger.Error("set parent error: hierarchy rule violated")
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			logger.Error("set parent error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while setting parent", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("task parent updated")
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := getIDParam(r)
	if err != nil {
		logger.Error("task deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.tasksService.DeleteTask(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			logger.Error("task deletion error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
			return
		}
		logger.Error("task deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting task", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("task deleted")
}

func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, err := getDateParam(r)
	if err != nil {
		logger.Error("get day error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	plan, err := s.scheduleService.GetDay(ctx, date)
	if err != nil {
		logger.Error("get day error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting daily plan", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

func (s *Server) AddToDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, err := getDateParam(r)
	if err != nil {
		logger.Error("add to day error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value, expected YYYY-MM-DD", nil)
		return
	}
	var req AddToDayRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add to day error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	row, err := s.scheduleService.AddToDay(ctx, date, req.TaskID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("add to day error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrAlreadyScheduled):
			logger.Error("add to day error: duplicate schedule")
			httputil.WriteErrorResponse(w, http.StatusConflict, "task already scheduled for this day", nil)
		default:
			logger.Error("add to day error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while scheduling task", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, row)
	logger.Info("task scheduled")
}

func (s *Server) QuickAdd(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, err := getDateParam(r)
	if err != nil {
		logger.Error("quick add error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value, expected YYYY-MM-DD", nil)
		return
	}
	var req QuickAddRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("quick add error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	row, err := s.scheduleService.QuickAdd(ctx, date, &service.QuickAddRequest{
		Title:         req.Title,
		Complexity:    req.Complexity,
		CognitiveLoad: req.CognitiveLoad,
		TimeEstimate:  req.TimeEstimate,
	})
	if err != nil {
		if isValidationError(err) {
			logger.Error("quick add error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		logger.Error("quick add error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while quick-adding task", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, row)
	logger.Info("task quick-added")
}

func (s *Server) ReorderDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, err := getDateParam(r)
	if err != nil {
		logger.Error("reorder error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value, expected YYYY-MM-DD", nil)
		return
	}
	var req ReorderRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("reorder error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.scheduleService.ReorderDay(ctx, date, req.Order)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyTaskNotFound) {
			logger.Error("reorder error: unknown daily task in order")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "daily task doesn't exist on this day", nil)
			return
		}
		logger.Error("reorder error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reordering day", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("day reordered")
}

func (s *Server) SetStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := getIDParam(r)
	if err != nil {
		logger.Error("set status error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid daily task id in path value", nil)
		return
	}
	var req StatusRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set status error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	row, err := s.scheduleService.SetStatus(ctx, id, &service.StatusRequest{
		Status:     req.Status,
		ActualTime: req.ActualTime,
	})
	if err != nil {
		switch {
		case isValidationError(err):
			logger.Error("set status error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrDailyTaskNotFound):
			logger.Error("set status error: unexist daily task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "daily task doesn't exist", nil)
		default:
			logger.Error("set status error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating status", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, row)
	logger.Info("daily task status updated")
}

func (s *Server) RemoveFromDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := getIDParam(r)
	if err != nil {
		logger.Error("remove from day error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid daily task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.scheduleService.RemoveFromDay(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyTaskNotFound) {
			logger.Error("remove from day error: unexist daily task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "daily task doesn't exist", nil)
			return
		}
		logger.Error("remove from day error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while removing daily task", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("daily task removed")
}

func (s *Server) ProcessRollover(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RolloverRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("rollover error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	from, err := time.Parse(time.DateOnly, req.From)
	if err != nil {
		logger.Error("rollover error: invalid from date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD", nil)
		return
	}
	to, err := time.Parse(time.DateOnly, req.To)
	if err != nil {
		logger.Error("rollover error: invalid to date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	result, err := s.scheduleService.ProcessRollover(ctx, from, to)
	if err != nil {
		logger.Error("rollover error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while processing rollover", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("rollover processed", slog.Int("moved", len(result.RolledOver)))
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	info, err := s.statsService.GetStreak(ctx)
	if err != nil {
		logger.Error("get streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, info)
}

func (s *Server) GetUserStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.statsService.GetUserStats(ctx)
	if err != nil {
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) ListAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	overview, err := s.statsService.ListAchievements(ctx)
	if err != nil {
		logger.Error("list achievements error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
}

func (s *Server) CheckAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	earned, err := s.statsService.CheckAchievements(ctx)
	if err != nil {
		logger.Error("check achievements error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while checking achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"unlocked": earned})
	logger.Info("achievements checked", slog.Int("newly_unlocked", len(earned)))
}

func (s *Server) GetDailyChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, err := getDateParam(r)
	if err != nil {
		logger.Error("get challenge error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	status, err := s.challengeService.GetDaily(ctx, date)
	if err != nil {
		logger.Error("get challenge error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting challenge", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}

func (s *Server) DailyQuote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	session := r.URL.Query().Get("session")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	resp, err := s.quoteService.DailyQuote(ctx, session)
	if err != nil {
		logger.Error("quote error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while picking quote", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) Trends(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	report, err := s.analyticsService.Trends(ctx, getDaysQuery(r))
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotEnoughData) {
			logger.Error("trends error: not enough data")
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "not enough history for this window", nil)
			return
		}
		logger.Error("trends error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while analyzing trends", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

func (s *Server) Insights(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	report, err := s.analyticsService.Insights(ctx, getDaysQuery(r))
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotEnoughData) {
			logger.Error("insights error: not enough data")
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "not enough history for insights", nil)
			return
		}
		logger.Error("insights error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while generating insights", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

func (s *Server) Burnout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	report, err := s.analyticsService.Burnout(ctx, getDaysQuery(r))
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotEnoughData) {
			logger.Error("burnout error: not enough data")
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "not enough history for this window", nil)
			return
		}
		logger.Error("burnout error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while assessing burnout", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

func (s *Server) Summary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	summary, err := s.analyticsService.Summary(ctx, getDaysQuery(r))
	if err != nil {
		logger.Error("summary error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building summary", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}
