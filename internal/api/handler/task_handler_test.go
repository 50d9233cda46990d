package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lamare/creator-studio/internal/core/domain"
)

func TestTaskHandler_CreateAssignsID(t *testing.T) {
	env := newTestEnv(t)
	h := NewTaskHandler(env.tasks)

	body := `{"title":"Video: Linen Shirt","type":"VIDEO","platform":"TikTok","date":"2026-09-10T09:00:00Z"}`
	c, rec := env.request(http.MethodPost, "/v1/tasks", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var task domain.PlannerTask
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if task.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if task.Status != domain.TaskPending {
		t.Fatalf("new tasks start pending, got %s", task.Status)
	}

	all := env.tasks.All()
	if len(all) != 1 || all[0].ID != task.ID {
		t.Fatalf("task not stored: %+v", all)
	}
}

func TestTaskHandler_CreateRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	h := NewTaskHandler(env.tasks)

	cases := map[string]string{
		"unknown type": `{"title":"x","type":"PODCAST","platform":"TikTok","date":"2026-09-10T09:00:00Z"}`,
		"missing date": `{"title":"x","type":"VIDEO","platform":"TikTok"}`,
		"bad date":     `{"title":"x","type":"VIDEO","platform":"TikTok","date":"tomorrow"}`,
	}
	for name, body := range cases {
		c, _ := env.request(http.MethodPost, "/v1/tasks", body)
		err := h.Create(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", name, err)
		}
	}
	if len(env.tasks.All()) != 0 {
		t.Fatal("rejected tasks must not be stored")
	}
}

func TestTaskHandler_OnDate(t *testing.T) {
	env := newTestEnv(t)
	h := NewTaskHandler(env.tasks)

	for _, body := range []string{
		`{"id":"a","title":"a","type":"CAPTION","platform":"Instagram","date":"2026-09-10T09:00:00Z"}`,
		`{"id":"b","title":"b","type":"VIDEO","platform":"TikTok","date":"2026-09-11T09:00:00Z"}`,
		`{"id":"c","title":"c","type":"STRATEGY","platform":"Instagram","date":"2026-09-10T23:30:00Z"}`,
	} {
		c, _ := env.request(http.MethodPost, "/v1/tasks", body)
		if err := h.Create(c); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	c, rec := env.request(http.MethodGet, "/v1/planner?date=2026-09-10", "")
	if err := h.OnDate(c); err != nil {
		t.Fatalf("on date error: %v", err)
	}

	var resp struct {
		Tasks []domain.PlannerTask `json:"tasks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Tasks) != 2 || resp.Tasks[0].ID != "a" || resp.Tasks[1].ID != "c" {
		t.Fatalf("expected tasks a and c in order, got %+v", resp.Tasks)
	}
}

func TestTaskHandler_OnDateRequiresDay(t *testing.T) {
	env := newTestEnv(t)
	h := NewTaskHandler(env.tasks)

	c, _ := env.request(http.MethodGet, "/v1/planner", "")
	err := h.OnDate(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
