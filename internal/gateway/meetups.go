package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"meetapp/internal/model"
)

// ListMeetups returns all meetups.
func (c *Client) ListMeetups(ctx context.Context) ([]model.MeetupWithInvites, error) {
	var meetups []model.MeetupWithInvites
	if err := c.do(ctx, http.MethodGet, "/api/meetup", nil, nil, &meetups); err != nil {
		return nil, err
	}
	return meetups, nil
}

// ListPersonMeetups returns the meetups involving one person.
func (c *Client) ListPersonMeetups(ctx context.Context, personID int64) ([]model.MeetupWithInvites, error) {
	query := url.Values{}
	query.Set("id", strconv.FormatInt(personID, 10))

	var meetups []model.MeetupWithInvites
	if err := c.do(ctx, http.MethodGet, "/api/meetup", query, nil, &meetups); err != nil {
		return nil, err
	}
	return meetups, nil
}

// GetMeetup returns one meetup with its invites.
func (c *Client) GetMeetup(ctx context.Context, id int64) (model.MeetupWithInvites, error) {
	var meetup model.MeetupWithInvites
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/meetup/%d", id), nil, nil, &meetup); err != nil {
		return model.MeetupWithInvites{}, err
	}
	return meetup, nil
}

// CreateMeetup creates a meetup.
func (c *Client) CreateMeetup(ctx context.Context, creation model.MeetupCreation) (model.Meetup, error) {
	var meetup model.Meetup
	if err := c.do(ctx, http.MethodPost, "/api/meetup", nil, creation, &meetup); err != nil {
		return model.Meetup{}, err
	}
	return meetup, nil
}

// UpdateMeetup updates a meetup's date and time.
func (c *Client) UpdateMeetup(ctx context.Context, id int64, meetup model.MeetupShort) (model.MeetupShort, error) {
	var updated model.MeetupShort
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/meetup/%d", id), nil, meetup, &updated); err != nil {
		return model.MeetupShort{}, err
	}
	return updated, nil
}

// DeleteMeetup deletes a meetup.
func (c *Client) DeleteMeetup(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/meetup/%d", id), nil, nil, nil)
}
