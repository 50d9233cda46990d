package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lamare/creator-studio/internal/api/metrics"
	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/service"
)

// TaskHandler handles the content planner: scheduling tasks and the
// per-day calendar read.
type TaskHandler struct {
	tasks *service.TaskStore
}

func NewTaskHandler(tasks *service.TaskStore) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type createTaskRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=VIDEO CAPTION STRATEGY"`
	Platform string `json:"platform" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Color    string `json:"color"`
}

type taskListResponse struct {
	Tasks []domain.PlannerTask `json:"tasks"`
}

// Create schedules a new planner task. Ids are assigned when absent;
// duplicate ids are accepted.
//
// @Summary      Schedule a planner task
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.PlannerTask
// @Failure      400   {object}  map[string]string
// @Router       /v1/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be RFC 3339")
	}

	task := domain.PlannerTask{
		ID:       req.ID,
		Title:    req.Title,
		Type:     domain.TaskType(req.Type),
		Platform: req.Platform,
		Date:     date,
		Status:   domain.TaskPending,
		Color:    req.Color,
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	if err := h.tasks.Add(c.Request().Context(), task); err != nil {
		return err
	}

	metrics.TasksScheduledTotal.WithLabelValues(string(task.Type), task.Platform).Inc()
	return c.JSON(http.StatusCreated, task)
}

// List returns every scheduled task in insertion order.
//
// @Summary      List planner tasks
// @Tags         planner
// @Produce      json
// @Success      200  {object}  taskListResponse
// @Router       /v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, taskListResponse{Tasks: h.tasks.All()})
}

// OnDate returns the tasks falling on one calendar day.
//
// @Summary      List tasks for a day
// @Tags         planner
// @Produce      json
// @Param        date  query     string  true  "Calendar day (2006-01-02)"
// @Success      200   {object}  taskListResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/planner [get]
func (h *TaskHandler) OnDate(c echo.Context) error {
	raw := c.QueryParam("date")
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be 2006-01-02")
	}
	return c.JSON(http.StatusOK, taskListResponse{Tasks: h.tasks.OnDate(day)})
}
