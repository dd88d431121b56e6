package controller

import (
	"context"
	"log/slog"

	"meetapp/internal/model"
	"meetapp/internal/session"
)

// Meetups drives the meetup list screen.
type Meetups struct {
	logger  *slog.Logger
	session *session.Facade

	state       *Observable[Result[[]model.MeetupWithInvites]]
	createState *Observable[Result[model.Meetup]]
}

func NewMeetups(logger *slog.Logger, facade *session.Facade) *Meetups {
	return &Meetups{
		logger:      logger,
		session:     facade,
		state:       NewObservable(Idle[[]model.MeetupWithInvites]()),
		createState: NewObservable(Idle[model.Meetup]()),
	}
}

func (c *Meetups) State() *Observable[Result[[]model.MeetupWithInvites]] {
	return c.state
}

func (c *Meetups) CreateState() *Observable[Result[model.Meetup]] {
	return c.createState
}

// LoadAll loads every meetup.
func (c *Meetups) LoadAll(ctx context.Context) {
	c.state.Set(Loading[[]model.MeetupWithInvites]())

	meetups, err := c.session.Gateway().ListMeetups(ctx)
	if err != nil {
		c.state.Set(Failure[[]model.MeetupWithInvites](errorMessage(err, "Unknown error")))
		return
	}

	c.state.Set(Success(meetups))
}

// LoadMine loads the meetups involving the current user.
func (c *Meetups) LoadMine(ctx context.Context) {
	c.state.Set(Loading[[]model.MeetupWithInvites]())

	meetups, err := c.session.CurrentPersonMeetups(ctx)
	if err != nil {
		c.state.Set(Failure[[]model.MeetupWithInvites](errorMessage(err, "Unknown error")))
		return
	}

	c.state.Set(Success(meetups))
}

// Create creates a plain meetup (no invites) for the current user and
// refreshes the list on success.
func (c *Meetups) Create(ctx context.Context, date, wallTime string) {
	c.createState.Set(Loading[model.Meetup]())

	creation := model.MeetupCreation{
		Date:      date,
		Time:      wallTime,
		PlannerID: c.session.CurrentUserID(),
	}
	meetup, err := c.session.Gateway().CreateMeetup(ctx, creation)
	if err != nil {
		c.createState.Set(Failure[model.Meetup](errorMessage(err, "Failed to create meetup")))
		return
	}

	c.createState.Set(Success(meetup))
	c.LoadAll(ctx)
}

// Delete deletes a meetup and refreshes the list.
func (c *Meetups) Delete(ctx context.Context, id int64) {
	if err := c.session.Gateway().DeleteMeetup(ctx, id); err != nil {
		c.state.Set(Failure[[]model.MeetupWithInvites](errorMessage(err, "Failed to delete meetup")))
		return
	}
	c.LoadAll(ctx)
}

// ResetCreateState returns the creation state to idle.
func (c *Meetups) ResetCreateState() {
	c.createState.Set(Idle[model.Meetup]())
}
