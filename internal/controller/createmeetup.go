package controller

import (
	"context"
	"log/slog"
	"sort"

	"meetapp/internal/model"
	"meetapp/internal/session"
)

// BatchReport is the outcome of a best-effort invite fan-out: which
// participant ids got an invite and which did not, with the reason. The
// parent meetup is never rolled back over invite failures.
type BatchReport struct {
	Succeeded []int64
	Failed    map[int64]string
}

// CreateMeetupState is the meetup-creation screen state.
type CreateMeetupState struct {
	Loading         bool
	AvailableUsers  []model.Person
	SelectedUserIDs map[int64]bool
	CreatedMeetup   *model.Meetup
	InviteReport    *BatchReport
	ErrorMessage    string
}

// CreateMeetup drives the meetup-creation screen: pick participants, create
// the meetup, then fire one invite per participant.
type CreateMeetup struct {
	logger  *slog.Logger
	session *session.Facade

	state *Observable[CreateMeetupState]
}

func NewCreateMeetup(logger *slog.Logger, facade *session.Facade) *CreateMeetup {
	return &CreateMeetup{
		logger:  logger,
		session: facade,
		state:   NewObservable(CreateMeetupState{SelectedUserIDs: map[int64]bool{}}),
	}
}

func (c *CreateMeetup) State() *Observable[CreateMeetupState] {
	return c.state
}

// LoadUsers loads the people available for invitation.
func (c *CreateMeetup) LoadUsers(ctx context.Context) {
	state := c.state.Get()
	state.Loading = true
	c.state.Set(state)

	users, err := c.session.Gateway().ListPersons(ctx)
	state = c.state.Get()
	state.Loading = false
	if err != nil {
		state.ErrorMessage = errorMessage(err, "Error loading users")
	} else {
		state.AvailableUsers = users
	}
	c.state.Set(state)
}

// ToggleUser flips one participant's selection.
func (c *CreateMeetup) ToggleUser(id int64) {
	state := c.state.Get()

	selected := make(map[int64]bool, len(state.SelectedUserIDs))
	for uid := range state.SelectedUserIDs {
		selected[uid] = true
	}
	if selected[id] {
		delete(selected, id)
	} else {
		selected[id] = true
	}

	state.SelectedUserIDs = selected
	c.state.Set(state)
}

// CreateWithInvites creates the meetup, then issues one invite per selected
// participant, sequentially, continuing past individual failures. Only the
// meetup creation itself decides success or error; per-invite outcomes land
// in the report.
func (c *CreateMeetup) CreateWithInvites(ctx context.Context, date, wallTime string) {
	state := c.state.Get()
	state.Loading = true
	state.ErrorMessage = ""
	c.state.Set(state)

	creation := model.MeetupCreation{
		Date:      date,
		Time:      wallTime,
		PlannerID: c.session.CurrentUserID(),
	}
	meetup, err := c.session.Gateway().CreateMeetup(ctx, creation)
	if err != nil {
		state = c.state.Get()
		state.Loading = false
		state.ErrorMessage = errorMessage(err, "Error creating meetup")
		c.state.Set(state)
		return
	}

	selected := make([]int64, 0, len(c.state.Get().SelectedUserIDs))
	for uid := range c.state.Get().SelectedUserIDs {
		selected = append(selected, uid)
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i] < selected[j] })

	report := &BatchReport{Failed: map[int64]string{}}
	agree := false
	for _, uid := range selected {
		_, err := c.session.Gateway().CreateInvite(ctx, model.InviteCreation{
			Agree:         &agree,
			MeetupID:      meetup.ID,
			ParticipantID: uid,
		})
		if err != nil {
			c.logger.Warn("Invite creation failed", "meetup_id", meetup.ID, "participant_id", uid, "error", err)
			report.Failed[uid] = err.Error()
			continue
		}
		report.Succeeded = append(report.Succeeded, uid)
	}

	state = c.state.Get()
	state.Loading = false
	state.CreatedMeetup = &meetup
	state.InviteReport = report
	state.ErrorMessage = ""
	c.state.Set(state)
}

// ClearCreatedMeetup resets the creation outcome.
func (c *CreateMeetup) ClearCreatedMeetup() {
	state := c.state.Get()
	state.CreatedMeetup = nil
	state.InviteReport = nil
	c.state.Set(state)
}

// ClearError resets the error message.
func (c *CreateMeetup) ClearError() {
	state := c.state.Get()
	state.ErrorMessage = ""
	c.state.Set(state)
}
