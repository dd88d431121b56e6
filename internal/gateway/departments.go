package gateway

import (
	"context"
	"fmt"
	"net/http"

	"meetapp/internal/model"
)

// ListDepartments returns all departments.
func (c *Client) ListDepartments(ctx context.Context) ([]model.Department, error) {
	var departments []model.Department
	if err := c.do(ctx, http.MethodGet, "/api/department", nil, nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// GetDepartment returns one department by id.
func (c *Client) GetDepartment(ctx context.Context, id int64) (model.Department, error) {
	var department model.Department
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/department/%d", id), nil, nil, &department); err != nil {
		return model.Department{}, err
	}
	return department, nil
}

// CreateDepartment creates a department.
func (c *Client) CreateDepartment(ctx context.Context, department model.Department) (model.Department, error) {
	var created model.Department
	if err := c.do(ctx, http.MethodPost, "/api/department", nil, department, &created); err != nil {
		return model.Department{}, err
	}
	return created, nil
}

// UpdateDepartment updates a department.
func (c *Client) UpdateDepartment(ctx context.Context, id int64, department model.Department) (model.Department, error) {
	var updated model.Department
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/department/%d", id), nil, department, &updated); err != nil {
		return model.Department{}, err
	}
	return updated, nil
}

// DeleteDepartment deletes a department.
func (c *Client) DeleteDepartment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/department/%d", id), nil, nil, nil)
}
