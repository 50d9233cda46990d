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

// GenerationQueue accepts jobs for asynchronous processing.
type GenerationQueue interface {
	Enqueue(job service.GenerationJob)
}

// StudioHandler drives the content workflows: submitting generation
// requests, polling their output, and scheduling the result as a planner
// task.
type StudioHandler struct {
	studio    *service.StudioService
	queue     GenerationQueue
	workspace *service.Workspace
	tasks     *service.TaskStore
}

func NewStudioHandler(studio *service.StudioService, queue GenerationQueue, workspace *service.Workspace, tasks *service.TaskStore) *StudioHandler {
	return &StudioHandler{studio: studio, queue: queue, workspace: workspace, tasks: tasks}
}

type generateRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=CAPTION SCRIPT IDEAS STRATEGY IMAGE"`
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

type generateResponse struct {
	Kind    domain.GenerationKind `json:"kind"`
	Pending bool                  `json:"pending"`
}

type scheduleRequest struct {
	Kind string `json:"kind" validate:"required,oneof=CAPTION SCRIPT IDEAS STRATEGY IMAGE"`
	ID   string `json:"id"`
	Date string `json:"date"`
}

// Generate submits a generation request. A newer request for the same
// kind supersedes any still-outstanding one; completion is observed by
// polling Output.
//
// @Summary      Request content generation
// @Tags         studio
// @Accept       json
// @Produce      json
// @Param        body  body      generateRequest  true  "Workflow kind and inputs"
// @Success      202   {object}  generateResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/studio/generate [post]
func (h *StudioHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	kind := domain.GenerationKind(req.Kind)
	subject, topic := h.fillDefaults(kind, req.Subject, req.Topic)

	job, err := h.studio.Begin(kind, subject, topic)
	if err != nil {
		return err
	}
	h.queue.Enqueue(job)

	metrics.GenerationRequestsTotal.WithLabelValues(req.Kind).Inc()
	return c.JSON(http.StatusAccepted, generateResponse{Kind: kind, Pending: true})
}

// Output returns the latest result slot for one workflow kind.
//
// @Summary      Get the latest generation output
// @Tags         studio
// @Produce      json
// @Param        kind  path      string  true  "Workflow kind (e.g. CAPTION)"
// @Success      200   {object}  service.StudioOutput
// @Failure      404   {object}  map[string]string
// @Router       /v1/studio/output/{kind} [get]
func (h *StudioHandler) Output(c echo.Context) error {
	kind := domain.GenerationKind(c.Param("kind"))
	if !kind.Valid() {
		return domain.ErrUnknownGenerationKind
	}
	out, ok := h.studio.Output(kind)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no output for this workflow yet")
	}
	return c.JSON(http.StatusOK, out)
}

// Schedule turns the workflow's output into a planner task for the
// selected product.
//
// @Summary      Schedule generated content
// @Tags         studio
// @Accept       json
// @Produce      json
// @Param        body  body      scheduleRequest  true  "Workflow kind and optional task overrides"
// @Success      201   {object}  domain.PlannerTask
// @Failure      400   {object}  map[string]string
// @Router       /v1/studio/schedule [post]
func (h *StudioHandler) Schedule(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be RFC 3339")
		}
		date = parsed
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	task := service.NewStudioTask(domain.GenerationKind(req.Kind), h.workspace.Selected().Name, id, date)
	if err := h.tasks.Add(c.Request().Context(), task); err != nil {
		return err
	}

	metrics.TasksScheduledTotal.WithLabelValues(string(task.Type), task.Platform).Inc()
	return c.JSON(http.StatusCreated, task)
}

// fillDefaults derives the missing generation inputs from the workspace:
// the selected product is the subject, its category (or the fixed stats
// summary, for strategy advice) the topic.
func (h *StudioHandler) fillDefaults(kind domain.GenerationKind, subject, topic string) (string, string) {
	product := h.workspace.Selected()
	if subject == "" {
		subject = product.Name
	}
	if topic == "" {
		if kind == domain.GenerateStrategy {
			topic = domain.DefaultStatsSummary
		} else {
			topic = product.Category
		}
	}
	return subject, topic
}
