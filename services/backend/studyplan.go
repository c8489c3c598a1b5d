package backend

import (
	"context"

	"github.com/sendgrid/rest"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/studyplan"
)

const tasksPath = "/api/tasks"

type taskResponse struct {
	Task studyplan.Task `json:"task"`
}

func (c *Client) ListTasks(ctx context.Context, token string) ([]studyplan.Task, error) {
	var res struct {
		Tasks []studyplan.Task `json:"tasks"`
	}
	if err := c.call(ctx, token, rest.Get, tasksPath, nil, &res); err != nil {
		return nil, err
	}
	return res.Tasks, nil
}

func (c *Client) TodaySessions(ctx context.Context, token string) ([]studyplan.Session, error) {
	var res struct {
		Sessions []studyplan.Session `json:"sessions"`
	}
	if err := c.call(ctx, token, rest.Get, tasksPath+"/today", nil, &res); err != nil {
		return nil, err
	}
	return res.Sessions, nil
}

func (c *Client) CreateTask(ctx context.Context, token string, payload studyplan.TaskPayload) (studyplan.Task, error) {
	var res taskResponse
	if err := c.call(ctx, token, rest.Post, tasksPath, payload, &res); err != nil {
		return studyplan.Task{}, err
	}
	return res.Task, nil
}

func (c *Client) UpdateTask(ctx context.Context, token string, id core.ID, payload studyplan.TaskPayload) (studyplan.Task, error) {
	var res taskResponse
	if err := c.call(ctx, token, rest.Put, idPath(tasksPath, id), payload, &res); err != nil {
		return studyplan.Task{}, err
	}
	return res.Task, nil
}

func (c *Client) UpdateTaskStatus(ctx context.Context, token string, id core.ID, status studyplan.Status) (studyplan.Task, error) {
	var res taskResponse
	body := map[string]studyplan.Status{"status": status}
	if err := c.call(ctx, token, rest.Put, idPath(tasksPath, id, "/status"), body, &res); err != nil {
		return studyplan.Task{}, err
	}
	return res.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, token string, id core.ID) error {
	return c.call(ctx, token, rest.Delete, idPath(tasksPath, id), nil, nil)
}
