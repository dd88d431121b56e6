package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"meetapp/internal/model"
)

// ListPersons returns all persons.
func (c *Client) ListPersons(ctx context.Context) ([]model.Person, error) {
	var persons []model.Person
	if err := c.do(ctx, http.MethodGet, "/api/person", nil, nil, &persons); err != nil {
		return nil, err
	}
	return persons, nil
}

// ListPersonsPaginated returns one page of the person listing.
func (c *Client) ListPersonsPaginated(ctx context.Context, page, size int) (model.PersonPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var result model.PersonPage
	if err := c.do(ctx, http.MethodGet, "/api/person/paginated", query, nil, &result); err != nil {
		return model.PersonPage{}, err
	}
	return result, nil
}

// GetPerson returns one person by id.
func (c *Client) GetPerson(ctx context.Context, id int64) (model.Person, error) {
	var person model.Person
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/person/%d", id), nil, nil, &person); err != nil {
		return model.Person{}, err
	}
	return person, nil
}

// LookupByLogin resolves a login to the backend's raw response string.
func (c *Client) LookupByLogin(ctx context.Context, login string) (string, error) {
	return c.doText(ctx, http.MethodGet, "/api/person/login/"+url.PathEscape(login))
}

// Login returns the person matching the credentials the dispatcher attached.
func (c *Client) Login(ctx context.Context) (model.Person, error) {
	var person model.Person
	if err := c.do(ctx, http.MethodGet, "/api/person/login", nil, nil, &person); err != nil {
		return model.Person{}, err
	}
	return person, nil
}

// RegisterPerson creates a person.
func (c *Client) RegisterPerson(ctx context.Context, registration model.PersonRegistration) (model.PersonShort, error) {
	var person model.PersonShort
	if err := c.do(ctx, http.MethodPost, "/api/person/register", nil, registration, &person); err != nil {
		return model.PersonShort{}, err
	}
	return person, nil
}

// UpdatePerson updates a person's short form and returns the full record.
func (c *Client) UpdatePerson(ctx context.Context, id int64, person model.PersonShort) (model.Person, error) {
	var updated model.Person
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/person/%d", id), nil, person, &updated); err != nil {
		return model.Person{}, err
	}
	return updated, nil
}

// DeletePerson deletes a person.
func (c *Client) DeletePerson(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/person/%d", id), nil, nil, nil)
}
