package controller_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	"meetapp/internal/controller"
	"meetapp/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inviteBackend is a minimal stateful invite store for controller tests.
type inviteBackend struct {
	mu      sync.Mutex
	agree   *bool
	updates int
}

func (b *inviteBackend) snapshot() (*bool, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.agree, b.updates
}

func (b *inviteBackend) handler(t *testing.T) http.Handler {
	meetup := model.Meetup{
		ID: 2, Date: "2026-09-01", Time: "15:00:00",
		Planner: model.PersonShort{ID: 3, Name: "Eve", Login: "eve"},
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/person/42":
			b.mu.Lock()
			agree := b.agree
			b.mu.Unlock()
			json.NewEncoder(w).Encode(model.Person{
				ID: 42, Name: "Bob", Login: "bob",
				Invites: []model.InviteWithMeetup{{ID: 10, Agree: agree, Meetup: meetup}},
			})
		case strings.HasPrefix(r.URL.Path, "/api/invites/") && r.Method == http.MethodPut:
			var invite model.Invite
			require.NoError(t, json.NewDecoder(r.Body).Decode(&invite))

			b.mu.Lock()
			b.agree = invite.Agree
			b.updates++
			b.mu.Unlock()

			json.NewEncoder(w).Encode(invite)
		default:
			http.NotFound(w, r)
		}
	})
}

func TestLoad_FetchesCurrentPersonsInvites(t *testing.T) {
	backend := &inviteBackend{}
	facade, _ := newStack(t, backend.handler(t))
	facade.SetCurrentUserID(42)

	c := controller.NewInvites(discardLogger(), facade)
	c.Load(t.Context())

	state := c.State().Get()
	assert.False(t, state.Loading)
	assert.Empty(t, state.ErrorMessage)
	require.Len(t, state.Invites, 1)
	assert.Equal(t, int64(10), state.Invites[0].ID)
	assert.Nil(t, state.Invites[0].Agree, "fresh invite is pending")
}

func TestLoad_NotAuthenticated(t *testing.T) {
	backend := &inviteBackend{}
	facade, _ := newStack(t, backend.handler(t))

	c := controller.NewInvites(discardLogger(), facade)
	c.Load(t.Context())

	state := c.State().Get()
	assert.False(t, state.Loading)
	assert.Contains(t, state.ErrorMessage, "not authenticated")
	assert.Empty(t, state.Invites)
}

func TestRespond_IsIdempotent(t *testing.T) {
	backend := &inviteBackend{}
	facade, _ := newStack(t, backend.handler(t))
	facade.SetCurrentUserID(42)

	c := controller.NewInvites(discardLogger(), facade)
	c.Load(t.Context())

	c.Respond(t.Context(), 10, true)
	agree, _ := backend.snapshot()
	require.NotNil(t, agree)
	assert.True(t, *agree)
	assert.True(t, c.State().Get().ResponseSuccess)

	// Same answer again overwrites, it does not accumulate.
	c.Respond(t.Context(), 10, true)
	agree, updates := backend.snapshot()
	require.NotNil(t, agree)
	assert.True(t, *agree)
	assert.Equal(t, 2, updates)
	assert.Empty(t, c.State().Get().ErrorMessage)
}

func TestRespond_UnknownInvite(t *testing.T) {
	backend := &inviteBackend{}
	facade, _ := newStack(t, backend.handler(t))
	facade.SetCurrentUserID(42)

	c := controller.NewInvites(discardLogger(), facade)
	c.Load(t.Context())
	c.Respond(t.Context(), 999, true)

	state := c.State().Get()
	assert.Equal(t, "приглашение не найдено", state.ErrorMessage)
	_, updates := backend.snapshot()
	assert.Equal(t, 0, updates)
}

func TestClearHelpers(t *testing.T) {
	backend := &inviteBackend{}
	facade, _ := newStack(t, backend.handler(t))
	facade.SetCurrentUserID(42)

	c := controller.NewInvites(discardLogger(), facade)
	c.Load(t.Context())
	c.Respond(t.Context(), 10, false)

	c.ClearResponseSuccess()
	assert.False(t, c.State().Get().ResponseSuccess)

	c.ClearError()
	assert.Empty(t, c.State().Get().ErrorMessage)
}
