package controller

import (
	"context"
	"log/slog"

	"meetapp/internal/model"
	"meetapp/internal/session"
)

// ProfileState is the profile screen state.
type ProfileState struct {
	Loading          bool
	Person           *model.Person
	OrganizedMeetups []model.Meetup
	ErrorMessage     string
	UpdateSuccess    bool
}

// Profile drives the profile screen: load the current user and edit name and
// department.
type Profile struct {
	logger  *slog.Logger
	session *session.Facade

	state *Observable[ProfileState]
}

func NewProfile(logger *slog.Logger, facade *session.Facade) *Profile {
	return &Profile{
		logger:  logger,
		session: facade,
		state:   NewObservable(ProfileState{}),
	}
}

func (c *Profile) State() *Observable[ProfileState] {
	return c.state
}

// Load fetches the current person and their authored meetups.
func (c *Profile) Load(ctx context.Context) {
	state := c.state.Get()
	state.Loading = true
	state.ErrorMessage = ""
	c.state.Set(state)

	person, err := c.session.CurrentPerson(ctx)
	state = c.state.Get()
	state.Loading = false
	if err != nil {
		state.ErrorMessage = errorMessage(err, "ошибка загрузки профиля")
		c.state.Set(state)
		return
	}

	state.Person = &person
	state.OrganizedMeetups = person.Meetups
	c.state.Set(state)
}

// Update changes the current user's name and department, keeping login and
// photo from the loaded record. The department travels by name, as the
// backend expects.
func (c *Profile) Update(ctx context.Context, name, department string) {
	state := c.state.Get()
	state.Loading = true
	state.ErrorMessage = ""
	c.state.Set(state)

	current := state.Person
	if current == nil {
		state = c.state.Get()
		state.Loading = false
		state.ErrorMessage = "нет данных пользователя"
		c.state.Set(state)
		return
	}

	update := model.PersonShort{
		ID:         current.ID,
		Name:       name,
		Login:      current.Login,
		Photo:      current.Photo,
		Department: &department,
	}

	updated, err := c.session.Gateway().UpdatePerson(ctx, current.ID, update)
	state = c.state.Get()
	state.Loading = false
	if err != nil {
		state.ErrorMessage = errorMessage(err, "ошибка обновления профиля")
		state.UpdateSuccess = false
		c.state.Set(state)
		return
	}

	state.Person = &updated
	state.UpdateSuccess = true
	state.ErrorMessage = ""
	c.state.Set(state)
}

// ClearError resets the error message.
func (c *Profile) ClearError() {
	state := c.state.Get()
	state.ErrorMessage = ""
	c.state.Set(state)
}

// ClearUpdateSuccess resets the update flag.
func (c *Profile) ClearUpdateSuccess() {
	state := c.state.Get()
	state.UpdateSuccess = false
	c.state.Set(state)
}
