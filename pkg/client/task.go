package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) ListTasks(ctx context.Context) (*api.ListTasksResponse, error) {
	var res api.ListTasksResponse
	if err := c.jsonRequest(ctx, http.MethodGet, "/tasks", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) GetTask(ctx context.Context, taskID model.TaskID) (*api.Task, error) {
	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodGet, taskPath(taskID), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Task, nil
}

func (c *Client) CreateTask(ctx context.Context, title string, description string) (*api.Task, error) {
	req := api.CreateTaskRequest{
		Title:       title,
		Description: description,
	}

	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/tasks", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, taskID model.TaskID) error {
	if err := c.jsonRequest(ctx, http.MethodDelete, taskPath(taskID), nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// MoveTask sends a move gesture for the given task. The returned response
// tells whether the gesture was dispatched and, if so, how it settled.
func (c *Client) MoveTask(ctx context.Context, taskID model.TaskID, target model.TaskStatus) (*api.MoveTaskResponse, error) {
	req := api.MoveTaskRequest{
		Target: string(target),
	}

	var res api.MoveTaskResponse
	if err := c.jsonRequest(ctx, http.MethodPost, taskPath(taskID)+"/moves", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func taskPath(taskID model.TaskID) string {
	return fmt.Sprintf("/tasks/%s", url.PathEscape(string(taskID)))
}
