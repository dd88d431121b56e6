package controller

import (
	"context"
	"log/slog"

	"meetapp/internal/model"
	"meetapp/internal/session"
)

// InvitesState is the invite inbox screen state.
type InvitesState struct {
	Loading         bool
	Invites         []model.InviteWithMeetup
	ErrorMessage    string
	ResponseSuccess bool
}

// Invites drives the invite inbox: load the current user's invites and
// respond to them.
type Invites struct {
	logger  *slog.Logger
	session *session.Facade

	state *Observable[InvitesState]
}

func NewInvites(logger *slog.Logger, facade *session.Facade) *Invites {
	return &Invites{
		logger:  logger,
		session: facade,
		state:   NewObservable(InvitesState{}),
	}
}

func (c *Invites) State() *Observable[InvitesState] {
	return c.state
}

// Load fetches the current person's invites.
func (c *Invites) Load(ctx context.Context) {
	state := c.state.Get()
	state.Loading = true
	state.ErrorMessage = ""
	c.state.Set(state)

	person, err := c.session.CurrentPerson(ctx)
	state = c.state.Get()
	state.Loading = false
	if err != nil {
		state.ErrorMessage = errorMessage(err, "ошибка загрузки приглашений")
		c.state.Set(state)
		return
	}

	state.Invites = person.Invites
	c.state.Set(state)
}

// Respond accepts or declines one invite. The update overwrites the
// agreement status, so repeating the same answer changes nothing.
func (c *Invites) Respond(ctx context.Context, inviteID int64, agree bool) {
	state := c.state.Get()
	state.Loading = true
	state.ErrorMessage = ""
	c.state.Set(state)

	var invite *model.InviteWithMeetup
	for i := range state.Invites {
		if state.Invites[i].ID == inviteID {
			invite = &state.Invites[i]
			break
		}
	}
	if invite == nil {
		state = c.state.Get()
		state.Loading = false
		state.ErrorMessage = "приглашение не найдено"
		c.state.Set(state)
		return
	}

	person, err := c.session.CurrentPerson(ctx)
	if err != nil {
		state = c.state.Get()
		state.Loading = false
		state.ErrorMessage = errorMessage(err, "ошибка ответа на приглашение")
		c.state.Set(state)
		return
	}

	update := model.Invite{
		ID:     inviteID,
		Agree:  &agree,
		Meetup: invite.Meetup,
		Participant: model.PersonShort{
			ID:         person.ID,
			Name:       person.Name,
			Login:      person.Login,
			Photo:      person.Photo,
			Department: person.Department,
		},
	}

	if _, err := c.session.Gateway().UpdateInvite(ctx, inviteID, update); err != nil {
		state = c.state.Get()
		state.Loading = false
		state.ErrorMessage = errorMessage(err, "ошибка ответа на приглашение")
		c.state.Set(state)
		return
	}

	state = c.state.Get()
	state.Loading = false
	state.ResponseSuccess = true
	c.state.Set(state)

	c.Load(ctx)
}

// ClearResponseSuccess resets the response flag.
func (c *Invites) ClearResponseSuccess() {
	state := c.state.Get()
	state.ResponseSuccess = false
	c.state.Set(state)
}

// ClearError resets the error message.
func (c *Invites) ClearError() {
	state := c.state.Get()
	state.ErrorMessage = ""
	c.state.Set(state)
}
